package handlers

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const (
	// DefaultFallbackTimeout bounds a single generative call.
	DefaultFallbackTimeout = 30 * time.Second
	// DefaultFallbackModel is the Gemini model used for chat answers.
	DefaultFallbackModel = "gemini-2.5-flash"

	fallbackAppName = "agenda_assistant"
)

// GeminiFallbackConfig holds configuration for the GeminiFallbackHandler.
type GeminiFallbackConfig struct {
	// APIKey is the Google API key (Google AI Studio backend)
	APIKey string
	// Model is the Gemini model to use
	Model string
	// Timeout for a single answer
	Timeout time.Duration
	// UseVertexAI enables the Vertex AI backend instead of AI Studio
	UseVertexAI bool
	// GCPProject is the Google Cloud project ID (Vertex AI backend)
	GCPProject string
	// GCPLocation is the Google Cloud region (Vertex AI backend)
	GCPLocation string
}

// GeminiFallbackHandler answers free-form schedule questions the rule-based
// interpreter could not, using a Gemini agent. It is only constructed when
// credentials are configured; the assistant runs deterministically without it.
type GeminiFallbackHandler struct {
	config         GeminiFallbackConfig
	agent          agent.Agent
	runner         *runner.Runner
	sessionService session.Service
}

// NewGeminiFallbackHandler creates a new GeminiFallbackHandler instance.
func NewGeminiFallbackHandler(config GeminiFallbackConfig) (*GeminiFallbackHandler, error) {
	if os.Getenv("GOOGLE_GENAI_USE_VERTEXAI") == "true" {
		config.UseVertexAI = true
	}
	if config.GCPProject == "" {
		config.GCPProject = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}
	if config.GCPLocation == "" {
		config.GCPLocation = os.Getenv("GOOGLE_CLOUD_LOCATION")
	}

	if config.UseVertexAI {
		if config.GCPProject == "" {
			return nil, fmt.Errorf("GCP Project is required for Vertex AI (set GOOGLE_CLOUD_PROJECT env var)")
		}
		if config.GCPLocation == "" {
			return nil, fmt.Errorf("GCP Location is required for Vertex AI (set GOOGLE_CLOUD_LOCATION env var)")
		}
	} else {
		if config.APIKey == "" {
			config.APIKey = os.Getenv("GOOGLE_API_KEY")
		}
		if config.APIKey == "" {
			return nil, fmt.Errorf("Google API key is required (set GOOGLE_API_KEY env var)")
		}
	}

	if config.Model == "" {
		config.Model = DefaultFallbackModel
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultFallbackTimeout
	}

	ctx := context.Background()

	var clientConfig *genai.ClientConfig
	if config.UseVertexAI {
		log.Printf("[GeminiFallbackHandler] Initializing with Vertex AI backend (project: %s, location: %s, model: %s)",
			config.GCPProject, config.GCPLocation, config.Model)
		clientConfig = &genai.ClientConfig{
			Project:  config.GCPProject,
			Location: config.GCPLocation,
			Backend:  genai.BackendVertexAI,
		}
	} else {
		log.Printf("[GeminiFallbackHandler] Initializing with Google AI Studio backend (model: %s)", config.Model)
		clientConfig = &genai.ClientConfig{
			APIKey:  config.APIKey,
			Backend: genai.BackendGeminiAPI,
		}
	}

	model, err := gemini.NewModel(ctx, config.Model, clientConfig)
	if err != nil {
		log.Printf("[GeminiFallbackHandler] Failed to create Gemini model: %v", err)
		return nil, fmt.Errorf("failed to create Gemini model: %w", err)
	}

	chatAgent, err := llmagent.New(llmagent.Config{
		Name:        "agenda_assistant_agent",
		Model:       model,
		Description: "An assistant that answers questions about consultant schedules in Brazilian Portuguese.",
		Instruction: buildFallbackInstruction(),
	})
	if err != nil {
		log.Printf("[GeminiFallbackHandler] Failed to create agent: %v", err)
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	sessionService := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        fallbackAppName,
		Agent:          chatAgent,
		SessionService: sessionService,
	})
	if err != nil {
		log.Printf("[GeminiFallbackHandler] Failed to create runner: %v", err)
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	log.Printf("[GeminiFallbackHandler] Successfully initialized with model: %s", config.Model)

	return &GeminiFallbackHandler{
		config:         config,
		agent:          chatAgent,
		runner:         r,
		sessionService: sessionService,
	}, nil
}

// buildFallbackInstruction creates the system instruction for the chat agent.
func buildFallbackInstruction() string {
	return `Você é um assistente de agendamento de consultores. Você recebe a pergunta de um usuário
junto com os filtros deterministicamente extraídos e uma listagem das agendas encontradas.

REGRAS:
- Responda SEMPRE em português brasileiro, de forma clara e objetiva
- Agendas com projeto "VAGO" ou "LIVRE" significam que o consultor está DISPONÍVEL nesse período
- Use apenas as agendas listadas no prompt; nunca invente consultores, projetos ou datas
- Datas devem ser exibidas no formato DD/MM/YYYY
- Se a listagem estiver vazia, explique e sugira verificar o nome ou a data`
}

// Answer sends a prompt to the agent and returns its text response. Each
// call gets a throwaway session so calls never share state.
func (h *GeminiFallbackHandler) Answer(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	userMessage := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	userID := "system"
	createResp, err := h.sessionService.Create(ctx, &session.CreateRequest{
		AppName: fallbackAppName,
		UserID:  userID,
	})
	if err != nil {
		log.Printf("[GeminiFallbackHandler] Failed to create session: %v", err)
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	sessionID := createResp.Session.ID()
	defer func() {
		_ = h.sessionService.Delete(ctx, &session.DeleteRequest{
			AppName:   fallbackAppName,
			UserID:    userID,
			SessionID: sessionID,
		})
	}()

	runConfig := agent.RunConfig{
		StreamingMode: agent.StreamingModeNone,
	}

	var responseText string
	for event, err := range h.runner.Run(ctx, userID, sessionID, userMessage, runConfig) {
		if err != nil {
			log.Printf("[GeminiFallbackHandler] Error during answer: %v", err)
			return "", fmt.Errorf("generative answer failed: %w", err)
		}
		if event.Content != nil {
			for _, part := range event.Content.Parts {
				if part.Text != "" {
					responseText += part.Text
				}
			}
		}
	}

	if responseText == "" {
		return "", fmt.Errorf("empty response from model")
	}

	log.Printf("[GeminiFallbackHandler] Answer generated: %d characters", len(responseText))
	return responseText, nil
}
