package utils

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
)

var (
	speechClient *speech.Client
	speechOnce   sync.Once
	speechErr    error
)

// getSpeechClient returns the process-wide Speech-to-Text client
func getSpeechClient(ctx context.Context) (*speech.Client, error) {
	speechOnce.Do(func() {
		speechClient, speechErr = speech.NewClient(ctx)
		if speechErr != nil {
			log.Printf("Error creating speech client: %v", speechErr)
		}
	})
	return speechClient, speechErr
}

// TranscribeAudio runs batch speech recognition over uploaded audio bytes
// and returns the combined transcript
func TranscribeAudio(ctx context.Context, audio []byte, languageCode string) (string, error) {
	if languageCode == "" {
		languageCode = "en-KE"
	}

	client, err := getSpeechClient(ctx)
	if err != nil {
		return "", fmt.Errorf("speech client: %w", err)
	}

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   speechpb.RecognitionConfig_ENCODING_UNSPECIFIED,
			LanguageCode:               languageCode,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("speech recognize: %w", err)
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			parts = append(parts, result.Alternatives[0].Transcript)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}
