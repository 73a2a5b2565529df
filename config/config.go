package config

import (
	"os"
)

// GetGeminiModel returns the Gemini model to use from environment variable
// Defaults to "gemini-2.5-flash" if not set
func GetGeminiModel() string {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		return "gemini-2.5-flash"
	}
	return model
}

// GetGeminiSmallModel returns the small/fast Gemini model used for
// latency-sensitive yes-or-no decisions. Defaults to "gemini-2.5-flash-lite".
func GetGeminiSmallModel() string {
	model := os.Getenv("GEMINI_SMALL_MODEL")
	if model == "" {
		return "gemini-2.5-flash-lite"
	}
	return model
}

// GetGeminiAPIKey returns the Gemini API key from environment variable
func GetGeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// GetMongoDBURI returns the MongoDB connection URI from environment variable
func GetMongoDBURI() string {
	return os.Getenv("MONGODB_URI")
}

// GetMongoDBName returns the MongoDB database name, defaulting to "roomagent"
func GetMongoDBName() string {
	name := os.Getenv("MONGODB_DATABASE")
	if name == "" {
		return "roomagent"
	}
	return name
}

// GetAllowedOrigins returns the allowed CORS origins from environment variable
func GetAllowedOrigins() string {
	return os.Getenv("ALLOWED_ORIGINS")
}

// GetPort returns the HTTP listen port, defaulting to 8080
func GetPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		return "8080"
	}
	return port
}
