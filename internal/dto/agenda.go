package dto

import (
	"encoding/json"
	"strings"
)

// ScheduleRecord represents one row of the "agendas" table: a consultant
// allocated to a project over an inclusive date range, or a vacancy marker.
// @Description Schedule record for a consultant
type ScheduleRecord struct {
	// Database ID
	ID int64 `json:"id,omitempty"`
	// Consultant name
	Consultant string `json:"consultor"`
	// Project name; "VAGO" or "LIVRE" mark the period as open
	Project string `json:"projeto"`
	// Work order number (optional)
	WorkOrder string `json:"os,omitempty"`
	// Manager name (optional)
	Manager string `json:"gerente,omitempty"`
	// Start date in YYYY-MM-DD
	StartDate string `json:"data_inicio"`
	// End date in YYYY-MM-DD (inclusive)
	EndDate string `json:"data_fim"`
	// IsVacant marks the record as an open slot
	IsVacant bool `json:"is_vago,omitempty"`
	// Hours logged at the client (supplementary, optional)
	HoursLogged *float64 `json:"horas_cliente,omitempty"`
	// Delivery notes (supplementary, optional)
	DeliveryNotes string `json:"descricao_entrega,omitempty"`
	// Creation timestamp set by the store
	CreatedAt string `json:"created_at,omitempty"`
}

// Vacant reports whether the record represents availability rather than an
// assignment: the is_vago flag OR the VAGO/LIVRE project sentinel. Every
// vacancy check in the system must go through this method.
func (r ScheduleRecord) Vacant() bool {
	p := strings.ToUpper(strings.TrimSpace(r.Project))
	return r.IsVacant || p == "VAGO" || p == "LIVRE"
}

// scheduleRecordRow mirrors ScheduleRecord but tolerates work orders stored
// as JSON numbers, which older imports produced.
type scheduleRecordRow struct {
	ID            int64           `json:"id"`
	Consultant    string          `json:"consultor"`
	Project       string          `json:"projeto"`
	WorkOrder     json.RawMessage `json:"os"`
	Manager       string          `json:"gerente"`
	StartDate     string          `json:"data_inicio"`
	EndDate       string          `json:"data_fim"`
	IsVacant      bool            `json:"is_vago"`
	HoursLogged   *float64        `json:"horas_cliente"`
	DeliveryNotes string          `json:"descricao_entrega"`
	CreatedAt     string          `json:"created_at"`
}

// UnmarshalJSON accepts both string and numeric "os" values.
func (r *ScheduleRecord) UnmarshalJSON(data []byte) error {
	var row scheduleRecordRow
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	*r = ScheduleRecord{
		ID:            row.ID,
		Consultant:    row.Consultant,
		Project:       row.Project,
		Manager:       row.Manager,
		StartDate:     row.StartDate,
		EndDate:       row.EndDate,
		IsVacant:      row.IsVacant,
		HoursLogged:   row.HoursLogged,
		DeliveryNotes: row.DeliveryNotes,
		CreatedAt:     row.CreatedAt,
	}
	if len(row.WorkOrder) > 0 && string(row.WorkOrder) != "null" {
		var s string
		if err := json.Unmarshal(row.WorkOrder, &s); err == nil {
			r.WorkOrder = s
		} else {
			r.WorkOrder = strings.Trim(string(row.WorkOrder), `"`)
		}
	}
	return nil
}

// CreateAgendaRequest is the quick-form creation payload.
// @Description Payload to create a schedule record
type CreateAgendaRequest struct {
	// Consultant name
	Consultant string `json:"consultor" binding:"required" example:"André"`
	// Project name (use "VAGO" to register availability)
	Project string `json:"projeto" binding:"required" example:"Projeto Alpha"`
	// Work order number
	WorkOrder string `json:"os" example:"12345"`
	// Manager name
	Manager string `json:"gerente" example:"Carla"`
	// Start date in YYYY-MM-DD
	StartDate string `json:"data_inicio" binding:"required" example:"2025-01-15"`
	// End date in YYYY-MM-DD (inclusive)
	EndDate string `json:"data_fim" binding:"required" example:"2025-01-20"`
}

// UpdateAgendaDetailsRequest carries the supplementary fields mutated after
// creation. Both fields are optional; absent fields are left untouched.
// @Description Supplementary detail update for a schedule record
type UpdateAgendaDetailsRequest struct {
	// Hours logged at the client
	HoursLogged *float64 `json:"horas_cliente" example:"16"`
	// Description of what was delivered
	DeliveryNotes *string `json:"descricao_entrega" example:"Entrega do módulo fiscal"`
}

// ErrorResponse represents an error response
// @Description Error response returned when a request fails
type ErrorResponse struct {
	// Error message describing what went wrong
	Error string `json:"error" example:"consultor is required"`
}
