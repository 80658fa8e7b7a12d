package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"azimute/agenda-assistant-api/internal/assistant"
	"azimute/agenda-assistant-api/internal/dto"

	"github.com/gin-gonic/gin"
)

// AgendaStore is what the agenda endpoints need from the record store.
// *handlers.SupabaseHandler satisfies it.
type AgendaStore interface {
	ListAgendas() ([]dto.ScheduleRecord, error)
	GetAgendasByConsultant(consultant string) ([]dto.ScheduleRecord, error)
	GetAgendasByProject(project string) ([]dto.ScheduleRecord, error)
	GetAgendasByDateRange(start, end string) ([]dto.ScheduleRecord, error)
	CreateAgenda(req dto.CreateAgendaRequest) (*dto.ScheduleRecord, error)
	UpdateAgendaDetails(id int64, hours *float64, notes *string) error
	DeleteAgenda(id int64) error
}

// AgendaController handles schedule-record CRUD and availability requests.
type AgendaController struct {
	apiSecret string
	store     AgendaStore
}

// NewAgendaController creates a new AgendaController instance.
func NewAgendaController(apiSecret string, store AgendaStore) *AgendaController {
	return &AgendaController{
		apiSecret: apiSecret,
		store:     store,
	}
}

// List godoc
// @Summary      List schedule records
// @Description  Lists schedule records, optionally filtered by consultant, project or an overlapping date range (inicio+fim, YYYY-MM-DD).
// @Tags         agendas
// @Produce      json
// @Param        consultor query string false "Consultant name fragment"
// @Param        projeto query string false "Project name fragment"
// @Param        inicio query string false "Range start (YYYY-MM-DD)"
// @Param        fim query string false "Range end (YYYY-MM-DD)"
// @Success      200 {array} dto.ScheduleRecord
// @Failure      500 {object} dto.ErrorResponse
// @Router       /agendas [get]
func (ctrl *AgendaController) List(c *gin.Context) {
	var (
		records []dto.ScheduleRecord
		err     error
	)

	consultant := c.Query("consultor")
	project := c.Query("projeto")
	start := c.Query("inicio")
	end := c.Query("fim")

	switch {
	case consultant != "":
		records, err = ctrl.store.GetAgendasByConsultant(consultant)
	case project != "":
		records, err = ctrl.store.GetAgendasByProject(project)
	case start != "" && end != "":
		records, err = ctrl.store.GetAgendasByDateRange(start, end)
	default:
		records, err = ctrl.store.ListAgendas()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if records == nil {
		records = []dto.ScheduleRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// Create godoc
// @Summary      Create a schedule record
// @Description  Creates a schedule record via the quick-form path. Rejects inverted date ranges. Requires the API secret.
// @Tags         agendas
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token with API secret"
// @Param        request body dto.CreateAgendaRequest true "Record fields"
// @Success      201 {object} dto.ScheduleRecord
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /agendas [post]
func (ctrl *AgendaController) Create(c *gin.Context) {
	if !authorized(c, ctrl.apiSecret) {
		return
	}

	var req dto.CreateAgendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := assistant.ParseStoreDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: fmt.Sprintf("invalid data_inicio: %v", err)})
		return
	}
	end, err := assistant.ParseStoreDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: fmt.Sprintf("invalid data_fim: %v", err)})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "data_fim is before data_inicio"})
		return
	}

	created, err := ctrl.store.CreateAgenda(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateDetails godoc
// @Summary      Update supplementary record details
// @Description  Updates the hours-logged and delivery-notes fields of a record. Requires the API secret.
// @Tags         agendas
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token with API secret"
// @Param        id path int true "Record ID"
// @Param        request body dto.UpdateAgendaDetailsRequest true "Fields to update"
// @Success      200 {object} map[string]string
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /agendas/{id}/detalhes [patch]
func (ctrl *AgendaController) UpdateDetails(c *gin.Context) {
	if !authorized(c, ctrl.apiSecret) {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid agenda id"})
		return
	}

	var req dto.UpdateAgendaDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := ctrl.store.UpdateAgendaDetails(id, req.HoursLogged, req.DeliveryNotes); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// Delete godoc
// @Summary      Delete a schedule record
// @Description  Deletes a schedule record by ID. Requires the API secret.
// @Tags         agendas
// @Produce      json
// @Param        Authorization header string true "Bearer token with API secret"
// @Param        id path int true "Record ID"
// @Success      200 {object} map[string]string
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /agendas/{id} [delete]
func (ctrl *AgendaController) Delete(c *gin.Context) {
	if !authorized(c, ctrl.apiSecret) {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid agenda id"})
		return
	}

	if err := ctrl.store.DeleteAgenda(id); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Availability godoc
// @Summary      Check a consultant's availability
// @Description  Reports whether a consultant has non-vacant records overlapping [inicio, fim] (YYYY-MM-DD, inclusive).
// @Tags         agendas
// @Produce      json
// @Param        consultor query string true "Consultant name fragment"
// @Param        inicio query string true "Range start (YYYY-MM-DD)"
// @Param        fim query string true "Range end (YYYY-MM-DD)"
// @Success      200 {object} dto.AvailabilityResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /agendas/disponibilidade [get]
func (ctrl *AgendaController) Availability(c *gin.Context) {
	consultant := c.Query("consultor")
	if consultant == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "consultor is required"})
		return
	}

	start, err := assistant.ParseStoreDate(c.Query("inicio"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: fmt.Sprintf("invalid inicio: %v", err)})
		return
	}
	end, err := assistant.ParseStoreDate(c.Query("fim"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: fmt.Sprintf("invalid fim: %v", err)})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "fim is before inicio"})
		return
	}
	period := assistant.DateRange{Start: start, End: end}

	records, err := ctrl.store.GetAgendasByConsultant(consultant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	conflicts := []dto.ScheduleRecord{}
	for _, r := range records {
		if r.Vacant() {
			continue
		}
		rs, err := assistant.ParseStoreDate(r.StartDate)
		if err != nil {
			log.Printf("[AgendaController] Skipping record %d with bad data_inicio: %v", r.ID, err)
			continue
		}
		re, err := assistant.ParseStoreDate(r.EndDate)
		if err != nil {
			log.Printf("[AgendaController] Skipping record %d with bad data_fim: %v", r.ID, err)
			continue
		}
		if period.Overlaps(assistant.DateRange{Start: rs, End: re}) {
			conflicts = append(conflicts, r)
		}
	}

	resp := dto.AvailabilityResponse{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}
	if resp.Available {
		resp.Message = fmt.Sprintf("✅ %s está livre no período solicitado.", consultant)
	} else {
		resp.Message = fmt.Sprintf("❌ %s está ocupado(a) no período solicitado.", consultant)
	}

	c.JSON(http.StatusOK, resp)
}
