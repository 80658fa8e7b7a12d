package assistant

import (
	"context"
	"log"
	"time"

	"azimute/agenda-assistant-api/internal/dto"
)

// FallbackClient answers free-form questions the rule-based core cannot.
// Implemented by handlers.GeminiFallbackHandler; nil means the generative
// fallback is disabled and the core degrades to deterministic answers.
type FallbackClient interface {
	Answer(ctx context.Context, prompt string) (string, error)
}

// Assistant interprets Portuguese natural-language questions about schedule
// records. It is stateless: every call receives a fresh record snapshot and
// concurrent calls are safe by construction.
type Assistant struct {
	registry []string
	fallback FallbackClient
	now      func() time.Time
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithConsultants replaces the known-name registry.
func WithConsultants(names []string) Option {
	return func(a *Assistant) {
		if len(names) > 0 {
			a.registry = names
		}
	}
}

// WithFallback attaches a generative fallback client.
func WithFallback(c FallbackClient) Option {
	return func(a *Assistant) { a.fallback = c }
}

// WithClock injects the time source. Tests pin it to a fixed date.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) {
		if now != nil {
			a.now = now
		}
	}
}

// New creates an Assistant with the default registry and real clock.
func New(opts ...Option) *Assistant {
	a := &Assistant{
		registry: DefaultConsultants,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Response is the result of processing one message.
type Response struct {
	// Text is the formatted answer, always non-empty.
	Text string
	// Action is set only when the message was a complete create command;
	// executing it is the caller's responsibility.
	Action *dto.CreateAction
}

// Parse extracts entities from the message and classifies its intent. Pure
// and idempotent: the same text always yields the same ParsedQuery for a
// fixed clock.
func (a *Assistant) Parse(text string) ParsedQuery {
	q := ParsedQuery{
		Consultant: a.ExtractConsultant(text),
		Project:    ExtractProject(text),
		WorkOrder:  ExtractWorkOrder(text),
		Dates:      ExtractDates(text, a.now()),
	}
	q.Intent, q.Rule = classifyIntent(text, q.Consultant != "", q.Dates != nil)
	return q
}

// ProcessQuery answers one message against a snapshot of schedule records.
// history is the caller-owned conversation log, threaded only into the
// generative fallback prompt. The returned text is always usable; handlers
// convert missing entities into clarification prompts rather than errors.
func (a *Assistant) ProcessQuery(ctx context.Context, query string, records []dto.ScheduleRecord, history []dto.ChatMessage) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Assistant] Recovered from panic while processing query: %v", r)
			resp = Response{Text: "❌ Erro ao processar pergunta.\n\nTente reformular ou use o Dashboard."}
		}
	}()

	q := a.Parse(query)
	log.Printf("[Assistant] Intent=%s rule=%s consultor=%q datas=%v projeto=%q os=%q",
		q.Intent, q.Rule, q.Consultant, q.Dates != nil, q.Project, q.WorkOrder)

	switch q.Intent {
	case IntentAvailability:
		return Response{Text: a.handleDisponibilidade(records, q)}
	case IntentOpenSlot:
		return Response{Text: handleVaga(records, q)}
	case IntentList:
		return Response{Text: handleListar(records, q)}
	case IntentCreate:
		return a.handleCriar(q)
	default:
		// Only the pure fall-through with no extractable filter may reach
		// the generative fallback; everything else stays deterministic.
		if q.Rule == defaultRule && q.Project == "" && q.WorkOrder == "" && a.fallback != nil {
			return Response{Text: a.generativeAnswer(ctx, query, records, q, history)}
		}
		return Response{Text: handleConsulta(records, q)}
	}
}

// today returns the clock's current calendar date.
func (a *Assistant) today() time.Time {
	return dateOnly(a.now())
}
