package speechController

import (
	"context"
	"elimu/middleware"
	"elimu/utils"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
)

// TextToSpeech synthesizes narration audio for tutor content and returns the
// public URL of the stored mp3
func TextToSpeech(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		Text    string `json:"text"`
		VoiceID string `json:"voice_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Text == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Text is required!", nil)
	}

	audio, err := utils.SynthesizeSpeech(reqData.Text, reqData.VoiceID)
	if err != nil {
		log.Printf("Speech synthesis failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to synthesize speech!", nil)
	}

	key := utils.ObjectKey("audio", "narration.mp3")
	audioURL, err := utils.UploadToBucket(context.Background(), key, "audio/mpeg", audio)
	if err != nil {
		log.Printf("Error uploading narration audio: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store audio!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Speech synthesized successfully!", fiber.Map{
		"audio_url": audioURL,
	})
}

// SpeechToText transcribes an uploaded audio clip
func SpeechToText(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Audio file is required!", nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read audio file!", nil)
	}
	defer src.Close()

	audio, err := io.ReadAll(src)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read audio file!", nil)
	}

	transcript, err := utils.TranscribeAudio(c.Context(), audio, c.FormValue("language"))
	if err != nil {
		log.Printf("Speech transcription failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to transcribe audio!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Audio transcribed successfully!", fiber.Map{
		"transcript": transcript,
	})
}
