package handlers

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearGeminiEnv removes the env vars the constructor falls back to, so the
// config passed in is the only input.
func clearGeminiEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"GOOGLE_API_KEY",
		"GOOGLE_GENAI_USE_VERTEXAI",
		"GOOGLE_CLOUD_PROJECT",
		"GOOGLE_CLOUD_LOCATION",
	} {
		old, ok := os.LookupEnv(v)
		os.Unsetenv(v)
		if ok {
			t.Cleanup(func() { os.Setenv(v, old) })
		}
	}
}

func TestNewGeminiFallbackHandler_MissingAPIKey(t *testing.T) {
	clearGeminiEnv(t)

	handler, err := NewGeminiFallbackHandler(GeminiFallbackConfig{})

	assert.Nil(t, handler)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Google API key is required")
}

func TestNewGeminiFallbackHandler_VertexRequiresProject(t *testing.T) {
	clearGeminiEnv(t)

	handler, err := NewGeminiFallbackHandler(GeminiFallbackConfig{
		UseVertexAI: true,
		GCPLocation: "us-central1",
	})

	assert.Nil(t, handler)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GCP Project is required")
}

func TestNewGeminiFallbackHandler_VertexRequiresLocation(t *testing.T) {
	clearGeminiEnv(t)

	handler, err := NewGeminiFallbackHandler(GeminiFallbackConfig{
		UseVertexAI: true,
		GCPProject:  "my-project",
	})

	assert.Nil(t, handler)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GCP Location is required")
}

func TestBuildFallbackInstruction(t *testing.T) {
	instruction := buildFallbackInstruction()

	assert.Contains(t, instruction, "português brasileiro")
	assert.Contains(t, instruction, "VAGO")
	assert.Contains(t, instruction, "LIVRE")
	assert.Contains(t, instruction, "DD/MM/YYYY")
}
