package dto

// ChatMessage is one turn of a caller-owned conversation log. The server keeps
// no chat state; clients send back whatever history they want threaded into
// the generative fallback.
// @Description One conversation turn
type ChatMessage struct {
	// Role is either "user" or "assistant"
	Role string `json:"role" example:"user"`
	// Message text
	Text string `json:"text" example:"André está livre amanhã?"`
}

// ChatRequest is the incoming chat payload.
// @Description Natural-language question about the schedules
type ChatRequest struct {
	// The user's question or command, in Portuguese
	Message string `json:"message" binding:"required" example:"Quem está livre na próxima semana?"`
	// Optional prior turns, oldest first
	History []ChatMessage `json:"history,omitempty"`
}

// CreateActionFields carries the extracted fields of a proposed schedule
// record. Dates are in YYYY-MM-DD.
// @Description Fields of a proposed schedule record
type CreateActionFields struct {
	Consultant string `json:"consultant" example:"João"`
	Project    string `json:"project" example:"Projeto Alpha"`
	WorkOrder  string `json:"work_order" example:"999"`
	StartDate  string `json:"start_date" example:"2025-01-15"`
	EndDate    string `json:"end_date" example:"2025-01-20"`
}

// CreateAction is a structured action the assistant proposes but never
// executes itself; the caller must confirm it via /chat/confirm.
// @Description Deferred create action awaiting user confirmation
type CreateAction struct {
	// Action type; currently always "create_record"
	Type string `json:"type" example:"create_record"`
	// Extracted record fields
	Fields CreateActionFields `json:"fields"`
}

// ActionTypeCreateRecord is the only action type the assistant emits.
const ActionTypeCreateRecord = "create_record"

// ChatResponse is the assistant's answer.
// @Description Assistant answer with optional deferred action
type ChatResponse struct {
	// Formatted answer text (markdown)
	Text string `json:"text"`
	// Present only when the message was a complete create command
	Action *CreateAction `json:"action,omitempty"`
}

// ConfirmActionRequest asks the server to execute a previously returned
// action.
// @Description Confirmation of a deferred action
type ConfirmActionRequest struct {
	Action CreateAction `json:"action" binding:"required"`
}

// ConfirmActionResponse reports the outcome of an executed action.
// @Description Result of executing a confirmed action
type ConfirmActionResponse struct {
	// Human-readable outcome
	Text string `json:"text"`
	// Conflict warning when the new record overlaps existing assignments
	Warning string `json:"warning,omitempty"`
}
