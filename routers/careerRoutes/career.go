package careerRoutes

import (
	careerController "elimu/controllers/career"
	"elimu/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupCareerRoutes(app *fiber.App) {
	careerGroup := app.Group("/career")

	careerGroup.Post("/generate", middleware.JWTMiddleware, careerController.GenerateCareerPath)
	careerGroup.Get("/list", middleware.JWTMiddleware, careerController.ListCareerPaths)
	careerGroup.Get("/saved", middleware.JWTMiddleware, careerController.GetSavedCareerPaths)
	careerGroup.Get("/:id", middleware.JWTMiddleware, careerController.GetCareerPath)
	careerGroup.Post("/:id/save", middleware.JWTMiddleware, careerController.SaveCareerPath)
	careerGroup.Delete("/:id/save", middleware.JWTMiddleware, careerController.UnsaveCareerPath)
}
