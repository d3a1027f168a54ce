package agents

import (
	"context"
	"elimu/config"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"google.golang.org/genai"
)

var (
	geminiClient *genai.Client
	geminiOnce   sync.Once
	geminiErr    error
)

// getClient returns the process-wide Gemini client, constructing it once
func getClient(ctx context.Context) (*genai.Client, error) {
	geminiOnce.Do(func() {
		geminiClient, geminiErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  config.AppConfig.GeminiApiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if geminiErr != nil {
			log.Printf("Error creating Gemini client: %v", geminiErr)
		}
	})
	return geminiClient, geminiErr
}

// GenerateJSON renders one prompt against Gemini in JSON response mode and
// unmarshals the reply into out. No retries: any failure aborts the caller's
// pipeline.
func GenerateJSON(ctx context.Context, prompt string, out interface{}) error {
	client, err := getClient(ctx)
	if err != nil {
		return fmt.Errorf("gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, config.AppConfig.GeminiModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      genai.Ptr[float32](0.7),
		})
	if err != nil {
		return fmt.Errorf("gemini generate: %w", err)
	}

	raw := StripJSONFences(resp.Text())
	if raw == "" {
		return fmt.Errorf("gemini returned an empty response")
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to parse gemini response: %w", err)
	}
	return nil
}

// GenerateText renders one prompt against Gemini and returns the plain text reply
func GenerateText(ctx context.Context, prompt string) (string, error) {
	client, err := getClient(ctx)
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, config.AppConfig.GeminiModel,
		genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}
