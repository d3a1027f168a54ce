package textbookRoutes

import (
	textbookController "elimu/controllers/textbook"
	"elimu/middleware"
	textbookValidator "elimu/validators/textbook"

	"github.com/gofiber/fiber/v2"
)

func SetupTextbookRoutes(app *fiber.App) {
	textbookGroup := app.Group("/textbook")

	textbookGroup.Post("/generate/stream", middleware.JWTMiddleware, textbookValidator.Generate(), textbookController.GenerateTextbookStream)
	textbookGroup.Get("/list", middleware.JWTMiddleware, textbookController.ListTextbooks)
	textbookGroup.Get("/:id", middleware.JWTMiddleware, textbookController.GetTextbook)
	textbookGroup.Delete("/:id", middleware.JWTMiddleware, textbookController.DeleteTextbook)
}
