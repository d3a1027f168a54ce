package authRoutes

import (
	authController "elimu/controllers/auth"
	"elimu/middleware"
	authValidator "elimu/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authController.Login)
	authGroup.Post("/onboarding", middleware.JWTMiddleware, authController.Onboarding)

	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, authController.GetProfile)
	userGroup.Patch("/profile", middleware.JWTMiddleware, authController.UpdateProfile)
}
