package speechRoutes

import (
	speechController "elimu/controllers/speech"
	"elimu/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupSpeechRoutes(app *fiber.App) {
	speechGroup := app.Group("/speech", middleware.JWTMiddleware)

	speechGroup.Post("/tts", speechController.TextToSpeech)
	speechGroup.Post("/stt", speechController.SpeechToText)
}
