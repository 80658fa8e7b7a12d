package controllers

import (
	"context"
	"log"
	"net/http"

	"azimute/agenda-assistant-api/internal/dto"

	"github.com/gin-gonic/gin"
)

// ChatService is what the chat endpoints need from the service layer.
// *services.ChatProcessor satisfies it.
type ChatService interface {
	ProcessMessage(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error)
	ConfirmCreate(ctx context.Context, action dto.CreateAction) (*dto.ConfirmActionResponse, error)
}

// ChatController handles the natural-language chat endpoints.
type ChatController struct {
	apiSecret string
	service   ChatService
}

// NewChatController creates a new ChatController instance.
func NewChatController(apiSecret string, service ChatService) *ChatController {
	return &ChatController{
		apiSecret: apiSecret,
		service:   service,
	}
}

// Chat godoc
// @Summary      Ask the scheduling assistant
// @Description  Interprets a Portuguese natural-language question about consultant schedules and answers it. Complete create commands return a deferred action for confirmation.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body dto.ChatRequest true "Question and optional conversation history"
// @Success      200 {object} dto.ChatResponse "Assistant answer"
// @Failure      400 {object} dto.ErrorResponse "Bad request - validation error"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /chat [post]
func (ctrl *ChatController) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.service.ProcessMessage(c.Request.Context(), req)
	if err != nil {
		log.Printf("[ChatController] ProcessMessage failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Confirm godoc
// @Summary      Confirm a deferred action
// @Description  Executes a create_record action previously returned by the chat endpoint. Requires the API secret.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token with API secret"
// @Param        request body dto.ConfirmActionRequest true "The action to execute"
// @Success      200 {object} dto.ConfirmActionResponse "Execution result"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Router       /chat/confirm [post]
func (ctrl *ChatController) Confirm(c *gin.Context) {
	if !authorized(c, ctrl.apiSecret) {
		return
	}

	var req dto.ConfirmActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.service.ConfirmCreate(c.Request.Context(), req.Action)
	if err != nil {
		log.Printf("[ChatController] ConfirmCreate failed: %v", err)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// authorized validates the Bearer secret on mutating endpoints and writes
// the 401 itself when the check fails.
func authorized(c *gin.Context, secret string) bool {
	if c.GetHeader("Authorization") != "Bearer "+secret {
		log.Printf("[Controllers] Unauthorized request: invalid Authorization header")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized: invalid API secret"})
		return false
	}
	return true
}
