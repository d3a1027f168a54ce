package adminRoutes

import (
	adminController "elimu/controllers/admin"
	"elimu/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	adminGroup.Get("/stats", adminController.GetStats)
	adminGroup.Get("/users", adminController.ListUsers)
}
