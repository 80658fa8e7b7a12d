package config

import (
	"os"
	"strings"
)

// Config holds the application configuration
type Config struct {
	Port string

	// Supabase record store
	SupabaseURL string
	SupabaseKey string

	// Gemini generative fallback (optional)
	GoogleAPIKey string
	GeminiModel  string
	UseVertexAI  bool
	GCPProject   string
	GCPLocation  string

	// APISecret guards mutating endpoints (Bearer token)
	APISecret string

	// Consultants overrides the built-in known-name registry
	Consultants []string
}

// Load reads configuration from environment variables
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:         port,
		SupabaseURL:  os.Getenv("SUPABASE_URL"),
		SupabaseKey:  getEnvWithFallback("SUPABASE_KEY", "SUPABASE_ANON_KEY"),
		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		UseVertexAI:  os.Getenv("GOOGLE_GENAI_USE_VERTEXAI") == "true",
		GCPProject:   os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GCPLocation:  os.Getenv("GOOGLE_CLOUD_LOCATION"),
		APISecret:    os.Getenv("API_SECRET"),
		Consultants:  splitList(os.Getenv("CONSULTORES")),
	}
}

// getEnvWithFallback returns the primary env var, or the fallback when the
// primary is empty.
func getEnvWithFallback(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}

// splitList parses a comma-separated env value, dropping empty entries.
func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
