package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	GeminiApiKey string
	GeminiModel  string

	GCSBucket string

	TTSApiURL string
	TTSApiKey string
	TTSVoice  string

	SendGridApiKey string
	EmailSender    string

	CurriculumFile string

	WeeklyFreezeAllowance int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		GeminiApiKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		GCSBucket: getEnv("GCS_BUCKET_NAME", "elimu-content"),

		TTSApiURL: getEnv("TTS_API_URL", "https://api.elevenlabs.io/v1/text-to-speech"),
		TTSApiKey: getEnv("TTS_API_KEY", ""),
		TTSVoice:  getEnv("TTS_VOICE_ID", "21m00Tcm4TlvDq8ikWAM"),

		SendGridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "hello@elimu.app"),

		CurriculumFile: getEnv("CURRICULUM_FILE", "data/cbc_curriculum.json"),

		WeeklyFreezeAllowance: getEnvInt("WEEKLY_FREEZE_ALLOWANCE", 1),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.GeminiApiKey == "" {
		log.Println("Warning: GEMINI_API_KEY is not set. Content generation will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
