package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"azimute/agenda-assistant-api/internal/dto"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// agendasTable is the Supabase table holding schedule records.
const agendasTable = "agendas"

// SupabaseHandler handles database operations against Supabase.
type SupabaseHandler struct {
	client *supabase.Client
}

// NewSupabaseHandler creates a new SupabaseHandler instance.
// url is the Supabase project URL (e.g., "https://xxx.supabase.co");
// key is the anon or service role key.
func NewSupabaseHandler(url, key string) (*SupabaseHandler, error) {
	if url == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if key == "" {
		return nil, fmt.Errorf("supabase key is required")
	}

	log.Printf("[SupabaseHandler] Initializing with URL: %s", url)

	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		log.Printf("[SupabaseHandler] Failed to create client: %v", err)
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &SupabaseHandler{client: client}, nil
}

// parseAgendas decodes a PostgREST response body into records.
func parseAgendas(data []byte) ([]dto.ScheduleRecord, error) {
	var records []dto.ScheduleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse agendas response: %w", err)
	}
	return records, nil
}

// ListAgendas returns every schedule record.
func (h *SupabaseHandler) ListAgendas() ([]dto.ScheduleRecord, error) {
	data, _, err := h.client.From(agendasTable).
		Select("*", "exact", false).
		Order("data_inicio", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] ListAgendas failed: %v", err)
		return nil, fmt.Errorf("failed to list agendas: %w", err)
	}

	records, err := parseAgendas(data)
	if err != nil {
		return nil, err
	}
	log.Printf("[SupabaseHandler] ListAgendas: %d records", len(records))
	return records, nil
}

// GetAgendasByConsultant returns records whose consultant name contains the
// given fragment (case-insensitive, via ilike).
func (h *SupabaseHandler) GetAgendasByConsultant(consultant string) ([]dto.ScheduleRecord, error) {
	if consultant == "" {
		return nil, fmt.Errorf("consultant is required")
	}

	data, _, err := h.client.From(agendasTable).
		Select("*", "exact", false).
		Ilike("consultor", "%"+consultant+"%").
		Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] GetAgendasByConsultant failed: %v", err)
		return nil, fmt.Errorf("failed to query agendas for consultant %s: %w", consultant, err)
	}
	return parseAgendas(data)
}

// GetAgendasByProject returns records whose project name contains the given
// fragment.
func (h *SupabaseHandler) GetAgendasByProject(project string) ([]dto.ScheduleRecord, error) {
	if project == "" {
		return nil, fmt.Errorf("project is required")
	}

	data, _, err := h.client.From(agendasTable).
		Select("*", "exact", false).
		Ilike("projeto", "%"+project+"%").
		Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] GetAgendasByProject failed: %v", err)
		return nil, fmt.Errorf("failed to query agendas for project %s: %w", project, err)
	}
	return parseAgendas(data)
}

// GetAgendasByDateRange returns records overlapping [start, end]. Both dates
// are YYYY-MM-DD; overlap means data_fim >= start AND data_inicio <= end.
func (h *SupabaseHandler) GetAgendasByDateRange(start, end string) ([]dto.ScheduleRecord, error) {
	data, _, err := h.client.From(agendasTable).
		Select("*", "exact", false).
		Gte("data_fim", start).
		Lte("data_inicio", end).
		Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] GetAgendasByDateRange failed: %v", err)
		return nil, fmt.Errorf("failed to query agendas by date range: %w", err)
	}
	return parseAgendas(data)
}

// CreateAgenda inserts a new schedule record. The vacancy flag is derived
// from the project sentinel so the stored flag and the sentinel agree.
func (h *SupabaseHandler) CreateAgenda(req dto.CreateAgendaRequest) (*dto.ScheduleRecord, error) {
	log.Printf("[SupabaseHandler] CreateAgenda: consultor=%s projeto=%s periodo=%s..%s",
		req.Consultant, req.Project, req.StartDate, req.EndDate)

	vacant := dto.ScheduleRecord{Project: req.Project}.Vacant()

	insertData := map[string]interface{}{
		"consultor":   req.Consultant,
		"projeto":     req.Project,
		"data_inicio": req.StartDate,
		"data_fim":    req.EndDate,
		"is_vago":     vacant,
		"created_at":  time.Now().UTC().Format(time.RFC3339),
	}
	if req.WorkOrder != "" {
		insertData["os"] = req.WorkOrder
	}
	if req.Manager != "" {
		insertData["gerente"] = req.Manager
	}

	data, _, err := h.client.From(agendasTable).Insert(insertData, false, "", "", "").Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] CreateAgenda failed: %v", err)
		return nil, fmt.Errorf("failed to create agenda: %w", err)
	}

	inserted, err := parseAgendas(data)
	if err != nil {
		return nil, err
	}
	if len(inserted) == 0 {
		return nil, fmt.Errorf("no agenda was inserted")
	}
	log.Printf("[SupabaseHandler] Agenda created: id=%d", inserted[0].ID)
	return &inserted[0], nil
}

// UpdateAgendaDetails updates the supplementary hours/delivery fields of a
// record. Nil fields are left untouched; calling with nothing to update is
// a no-op, not an error.
func (h *SupabaseHandler) UpdateAgendaDetails(id int64, hours *float64, notes *string) error {
	update := map[string]interface{}{}
	if hours != nil {
		update["horas_cliente"] = *hours
	}
	if notes != nil {
		update["descricao_entrega"] = *notes
	}
	if len(update) == 0 {
		return nil
	}

	log.Printf("[SupabaseHandler] UpdateAgendaDetails: id=%d", id)

	_, _, err := h.client.From(agendasTable).
		Update(update, "", "").
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] UpdateAgendaDetails failed: %v", err)
		return fmt.Errorf("failed to update agenda details: %w", err)
	}
	return nil
}

// DeleteAgenda removes a schedule record.
func (h *SupabaseHandler) DeleteAgenda(id int64) error {
	log.Printf("[SupabaseHandler] DeleteAgenda: id=%d", id)

	_, _, err := h.client.From(agendasTable).
		Delete("", "").
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	if err != nil {
		log.Printf("[SupabaseHandler] DeleteAgenda failed: %v", err)
		return fmt.Errorf("failed to delete agenda %d: %w", id, err)
	}
	return nil
}

// GetClient returns the underlying Supabase client for advanced operations.
func (h *SupabaseHandler) GetClient() *supabase.Client {
	return h.client
}
