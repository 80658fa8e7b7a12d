package dto

// AvailabilityResponse reports whether a consultant is free in a period.
// @Description Availability check result
type AvailabilityResponse struct {
	// True when no non-vacant record overlaps the period
	Available bool `json:"disponivel"`
	// Conflicting records, empty when available
	Conflicts []ScheduleRecord `json:"agendas"`
	// Human-readable summary
	Message string `json:"mensagem"`
}
