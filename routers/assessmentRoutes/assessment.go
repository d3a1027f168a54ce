package assessmentRoutes

import (
	assessmentController "elimu/controllers/assessment"
	"elimu/middleware"
	assessmentValidator "elimu/validators/assessment"

	"github.com/gofiber/fiber/v2"
)

func SetupAssessmentRoutes(app *fiber.App) {
	assessmentGroup := app.Group("/assessment", middleware.JWTMiddleware, middleware.RequireRole("TEACHER"))

	assessmentGroup.Post("/", assessmentValidator.Create(), assessmentController.CreateAssessment)
	assessmentGroup.Get("/list", assessmentController.ListAssessments)
	assessmentGroup.Delete("/:id", assessmentController.DeleteAssessment)
	assessmentGroup.Post("/:id/material", assessmentController.UploadMaterial)
	assessmentGroup.Delete("/:id/material/:materialId", assessmentController.DeleteMaterial)
}
