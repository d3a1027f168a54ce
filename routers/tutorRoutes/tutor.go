package tutorRoutes

import (
	tutorController "elimu/controllers/tutor"
	"elimu/middleware"
	tutorValidator "elimu/validators/tutor"

	"github.com/gofiber/fiber/v2"
)

func SetupTutorRoutes(app *fiber.App) {
	tutorGroup := app.Group("/tutor")

	tutorGroup.Post("/content", middleware.JWTMiddleware, tutorValidator.SaveContent(), tutorController.SaveContent)
	tutorGroup.Get("/content", middleware.JWTMiddleware, tutorController.GetContent)
	tutorGroup.Get("/curriculum", middleware.JWTMiddleware, tutorController.GetCurriculum)
}
