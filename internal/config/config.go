// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Provider mode values. "static" substitutes fixed responses for live
// external-provider calls so the pipeline can run without network access.
const (
	ProviderStatic   = "static"
	ProviderOpenAI   = "openai"
	ProviderGemini   = "gemini"
	ProviderGoogle   = "google"
	ProviderUnsplash = "unsplash"
)

type Config struct {
	Port        string
	PostgresURL string
	JWTSecret   string
	ClientURL   string

	// LLMProvider selects the itinerary generator: openai, gemini or static.
	LLMProvider string
	OpenAIKey   string
	OpenAIModel string
	GeminiKey   string
	GeminiModel string

	// PlacesProvider selects the place resolver: google or static.
	PlacesProvider string
	PlacesKey      string

	// ImageProvider selects the image resolver: unsplash or static.
	ImageProvider string
	UnsplashKey   string
}

// Load reads configuration from the environment. Live providers require
// their API keys; the static providers need no credentials.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnvWithDefault("PORT", "4000"),
		PostgresURL:    os.Getenv("POSTGRES_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		ClientURL:      getEnvWithDefault("CLIENT_URL", "http://localhost:5173"),
		LLMProvider:    strings.ToLower(getEnvWithDefault("LLM_PROVIDER", ProviderOpenAI)),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getEnvWithDefault("OPENAI_MODEL", "gpt-4"),
		GeminiKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		PlacesProvider: strings.ToLower(getEnvWithDefault("PLACES_PROVIDER", ProviderGoogle)),
		PlacesKey:      os.Getenv("GOOGLE_PLACES_API_KEY"),
		ImageProvider:  strings.ToLower(getEnvWithDefault("IMAGE_PROVIDER", ProviderUnsplash)),
		UnsplashKey:    os.Getenv("UNSPLASH_ACCESS_KEY"),
	}

	var missing []string
	if cfg.PostgresURL == "" {
		missing = append(missing, "POSTGRES_URL")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.LLMProvider == ProviderOpenAI && cfg.OpenAIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if cfg.LLMProvider == ProviderGemini && cfg.GeminiKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if cfg.PlacesProvider == ProviderGoogle && cfg.PlacesKey == "" {
		missing = append(missing, "GOOGLE_PLACES_API_KEY")
	}
	if cfg.ImageProvider == ProviderUnsplash && cfg.UnsplashKey == "" {
		missing = append(missing, "UNSPLASH_ACCESS_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
