package utils

import (
	"elimu/config"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// SynthesizeSpeech converts text to audio bytes via the hosted TTS API.
// Returns raw mp3 bytes.
func SynthesizeSpeech(text, voiceID string) ([]byte, error) {
	if voiceID == "" {
		voiceID = config.AppConfig.TTSVoice
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("xi-api-key", config.AppConfig.TTSApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"text":     text,
			"model_id": "eleven_multilingual_v2",
			"voice_settings": map[string]interface{}{
				"stability":        0.5,
				"similarity_boost": 0.75,
			},
		}).
		Post(fmt.Sprintf("%s/%s", config.AppConfig.TTSApiURL, voiceID))
	if err != nil {
		log.Printf("TTS request failed: %v", err)
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		log.Printf("TTS API error: %s", resp.String())
		return nil, fmt.Errorf("tts API error: status %d", resp.StatusCode())
	}

	return resp.Body(), nil
}
