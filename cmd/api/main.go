package main

import (
	"log"

	"azimute/agenda-assistant-api/internal/api"
	"azimute/agenda-assistant-api/internal/api/controllers"
	"azimute/agenda-assistant-api/internal/assistant"
	"azimute/agenda-assistant-api/internal/config"
	"azimute/agenda-assistant-api/internal/handlers"
	"azimute/agenda-assistant-api/internal/services"

	"github.com/joho/godotenv"

	_ "azimute/agenda-assistant-api/docs" // Swagger generated docs
)

// @title Agenda Assistant API
// @version 1.0
// @description REST API for a Portuguese natural-language scheduling assistant over consultant agendas stored in Supabase. Supports availability checks, open-slot queries, listings and record creation via chat.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @schemes http https
func main() {
	// Load .env when present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Printf(".env file not found - using process environment")
	}

	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize SupabaseHandler if credentials are configured
	var supabaseHandler *handlers.SupabaseHandler
	if cfg.SupabaseURL != "" && cfg.SupabaseKey != "" {
		var err error
		supabaseHandler, err = handlers.NewSupabaseHandler(cfg.SupabaseURL, cfg.SupabaseKey)
		if err != nil {
			log.Printf("Warning: Failed to initialize SupabaseHandler: %v", err)
			log.Printf("Continuing without database access")
		} else {
			log.Printf("SupabaseHandler initialized - database access enabled")
		}
	} else {
		log.Printf("SUPABASE_URL or SUPABASE_KEY not set - database access disabled")
	}

	// Initialize GeminiFallbackHandler if Google API key or Vertex AI is configured
	var fallbackHandler *handlers.GeminiFallbackHandler
	if cfg.GoogleAPIKey != "" || cfg.UseVertexAI {
		var err error
		fallbackHandler, err = handlers.NewGeminiFallbackHandler(handlers.GeminiFallbackConfig{
			APIKey:      cfg.GoogleAPIKey,
			Model:       cfg.GeminiModel, // Uses GEMINI_MODEL env var, falls back to DefaultFallbackModel in handler
			UseVertexAI: cfg.UseVertexAI,
			GCPProject:  cfg.GCPProject,
			GCPLocation: cfg.GCPLocation,
		})
		if err != nil {
			log.Printf("Warning: Failed to initialize GeminiFallbackHandler: %v", err)
			log.Printf("Continuing without generative fallback")
		} else {
			backend := "Google AI Studio"
			if cfg.UseVertexAI {
				backend = "Vertex AI"
			}
			model := cfg.GeminiModel
			if model == "" {
				model = handlers.DefaultFallbackModel
			}
			log.Printf("GeminiFallbackHandler initialized - generative fallback enabled (backend: %s, model: %s)",
				backend, model)
		}
	} else {
		log.Printf("GOOGLE_API_KEY or Vertex AI not configured - generative fallback disabled")
	}

	// Build the rule-based assistant
	opts := []assistant.Option{}
	if len(cfg.Consultants) > 0 {
		opts = append(opts, assistant.WithConsultants(cfg.Consultants))
		log.Printf("Consultant registry overridden via CONSULTORES (%d names)", len(cfg.Consultants))
	}
	if fallbackHandler != nil {
		opts = append(opts, assistant.WithFallback(fallbackHandler))
	}
	asst := assistant.New(opts...)

	// Initialize ChatProcessor and controllers if Supabase is configured
	var chatController *controllers.ChatController
	var agendaController *controllers.AgendaController
	if supabaseHandler != nil {
		chatProcessor := services.NewChatProcessor(supabaseHandler, asst)
		chatController = controllers.NewChatController(cfg.APISecret, chatProcessor)
		agendaController = controllers.NewAgendaController(cfg.APISecret, supabaseHandler)
		log.Printf("ChatProcessor initialized - chat and agenda endpoints enabled")
		if cfg.APISecret == "" {
			log.Printf("Warning: API_SECRET not set - mutating endpoints will reject all requests")
		}
	} else {
		log.Printf("ChatProcessor not initialized - chat and agenda endpoints disabled (requires Supabase)")
	}

	// Setup router
	router := api.NewRouter(chatController, agendaController)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
