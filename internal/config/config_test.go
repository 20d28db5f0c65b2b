package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_URL", "postgres://localhost/tripwise_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("LLM_PROVIDER", "static")
	t.Setenv("PLACES_PROVIDER", "static")
	t.Setenv("IMAGE_PROVIDER", "static")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_PLACES_API_KEY", "")
	t.Setenv("UNSPLASH_ACCESS_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("CLIENT_URL", "")
}

func TestLoad_StaticProvidersNeedNoKeys(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "http://localhost:5173", cfg.ClientURL)
	assert.Equal(t, ProviderStatic, cfg.LLMProvider)
	assert.Equal(t, ProviderStatic, cfg.PlacesProvider)
	assert.Equal(t, ProviderStatic, cfg.ImageProvider)
}

func TestLoad_MissingRequired(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("POSTGRES_URL", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_URL")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_LiveProvidersRequireKeys(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("PLACES_PROVIDER", "google")
	t.Setenv("IMAGE_PROVIDER", "unsplash")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	assert.Contains(t, err.Error(), "GOOGLE_PLACES_API_KEY")
	assert.Contains(t, err.Error(), "UNSPLASH_ACCESS_KEY")
}

func TestLoad_ProviderNameIsCaseInsensitive(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "k")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
}
