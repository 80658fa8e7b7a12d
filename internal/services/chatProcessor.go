package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"azimute/agenda-assistant-api/internal/assistant"
	"azimute/agenda-assistant-api/internal/dto"
)

// AgendaStore is the slice of the record store the chat flow needs.
// *handlers.SupabaseHandler satisfies it.
type AgendaStore interface {
	ListAgendas() ([]dto.ScheduleRecord, error)
	GetAgendasByConsultant(consultant string) ([]dto.ScheduleRecord, error)
	CreateAgenda(req dto.CreateAgendaRequest) (*dto.ScheduleRecord, error)
}

// ChatProcessor wires the stateless assistant to the record store: it
// supplies a fresh snapshot per message and executes confirmed actions.
type ChatProcessor struct {
	store     AgendaStore
	assistant *assistant.Assistant
}

// NewChatProcessor creates a new ChatProcessor instance.
func NewChatProcessor(store AgendaStore, asst *assistant.Assistant) *ChatProcessor {
	return &ChatProcessor{
		store:     store,
		assistant: asst,
	}
}

// ProcessMessage answers one chat message against the current snapshot.
func (p *ChatProcessor) ProcessMessage(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	records, err := p.store.ListAgendas()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule snapshot: %w", err)
	}

	resp := p.assistant.ProcessQuery(ctx, req.Message, records, req.History)
	return &dto.ChatResponse{Text: resp.Text, Action: resp.Action}, nil
}

// ConfirmCreate executes a create_record action the user confirmed.
// Inverted ranges are rejected before anything reaches the store. Overlaps
// with existing non-vacant assignments produce a warning, not a rejection;
// deliberately double-booking is the scheduler's call.
func (p *ChatProcessor) ConfirmCreate(ctx context.Context, action dto.CreateAction) (*dto.ConfirmActionResponse, error) {
	if action.Type != dto.ActionTypeCreateRecord {
		return nil, fmt.Errorf("unsupported action type %q", action.Type)
	}

	f := action.Fields
	if f.Consultant == "" || f.Project == "" || f.StartDate == "" || f.EndDate == "" {
		return nil, fmt.Errorf("action is missing required fields")
	}

	start, err := assistant.ParseStoreDate(f.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", f.StartDate, err)
	}
	end, err := assistant.ParseStoreDate(f.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", f.EndDate, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s", f.EndDate, f.StartDate)
	}

	req := dto.CreateAgendaRequest{
		Consultant: f.Consultant,
		Project:    f.Project,
		WorkOrder:  f.WorkOrder,
		StartDate:  f.StartDate,
		EndDate:    f.EndDate,
	}

	warning := ""
	if !(dto.ScheduleRecord{Project: f.Project}).Vacant() {
		warning = p.conflictWarning(f.Consultant, assistant.DateRange{Start: start, End: end})
	}

	created, err := p.store.CreateAgenda(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create agenda: %w", err)
	}
	log.Printf("[ChatProcessor] Agenda created via chat confirmation: id=%d consultor=%s", created.ID, created.Consultant)

	text := fmt.Sprintf("✅ Agenda criada: **%s** em **%s** de %s a %s.",
		created.Consultant, created.Project,
		assistant.FormatDisplay(start), assistant.FormatDisplay(end))

	return &dto.ConfirmActionResponse{Text: text, Warning: warning}, nil
}

// conflictWarning lists existing non-vacant bookings of the consultant that
// overlap the new period. Store errors only suppress the warning; creation
// itself is not blocked by a failed lookup.
func (p *ChatProcessor) conflictWarning(consultant string, period assistant.DateRange) string {
	existing, err := p.store.GetAgendasByConsultant(consultant)
	if err != nil {
		log.Printf("[ChatProcessor] Conflict check skipped: %v", err)
		return ""
	}

	var lines []string
	for _, r := range existing {
		if r.Vacant() {
			continue
		}
		start, err := assistant.ParseStoreDate(r.StartDate)
		if err != nil {
			continue
		}
		end, err := assistant.ParseStoreDate(r.EndDate)
		if err != nil {
			continue
		}
		if period.Overlaps(assistant.DateRange{Start: start, End: end}) {
			osInfo := ""
			if r.WorkOrder != "" {
				osInfo = fmt.Sprintf(" (OS %s)", r.WorkOrder)
			}
			lines = append(lines, fmt.Sprintf("• %s%s: %s a %s",
				r.Project, osInfo, assistant.FormatDisplay(start), assistant.FormatDisplay(end)))
		}
	}

	if len(lines) == 0 {
		return ""
	}
	return fmt.Sprintf("⚠️ Atenção: O consultor %s já possui agendas no período:\n\n%s",
		consultant, strings.Join(lines, "\n"))
}
