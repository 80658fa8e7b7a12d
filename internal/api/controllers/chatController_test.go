package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"azimute/agenda-assistant-api/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockChatService is a scripted ChatService for tests.
type mockChatService struct {
	resp       *dto.ChatResponse
	processErr error
	confirm    *dto.ConfirmActionResponse
	confirmErr error
	lastReq    *dto.ChatRequest
}

func (m *mockChatService) ProcessMessage(_ context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	m.lastReq = &req
	return m.resp, m.processErr
}

func (m *mockChatService) ConfirmCreate(_ context.Context, _ dto.CreateAction) (*dto.ConfirmActionResponse, error) {
	return m.confirm, m.confirmErr
}

func chatTestRouter(svc ChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewChatController("test-secret", svc)
	r.POST("/chat", ctrl.Chat)
	r.POST("/chat/confirm", ctrl.Confirm)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChat(t *testing.T) {
	svc := &mockChatService{resp: &dto.ChatResponse{Text: "✅ resposta"}}
	router := chatTestRouter(svc)

	w := postJSON(t, router, "/chat", dto.ChatRequest{Message: "Liste todas as agendas"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "✅ resposta", resp.Text)

	require.NotNil(t, svc.lastReq)
	assert.Equal(t, "Liste todas as agendas", svc.lastReq.Message)
}

func TestChat_MissingMessage(t *testing.T) {
	svc := &mockChatService{}
	router := chatTestRouter(svc)

	w := postJSON(t, router, "/chat", map[string]string{}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastReq, "invalid payloads never reach the service")
}

func TestChat_ServiceError(t *testing.T) {
	svc := &mockChatService{processErr: errors.New("snapshot failed")}
	router := chatTestRouter(svc)

	w := postJSON(t, router, "/chat", dto.ChatRequest{Message: "oi"}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestConfirm_Unauthorized(t *testing.T) {
	svc := &mockChatService{}
	router := chatTestRouter(svc)

	body := dto.ConfirmActionRequest{Action: dto.CreateAction{Type: dto.ActionTypeCreateRecord}}

	tests := []struct {
		name   string
		header map[string]string
	}{
		{"no header", nil},
		{"wrong secret", map[string]string{"Authorization": "Bearer wrong"}},
		{"missing bearer prefix", map[string]string{"Authorization": "test-secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/chat/confirm", body, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestConfirm(t *testing.T) {
	svc := &mockChatService{confirm: &dto.ConfirmActionResponse{Text: "✅ Agenda criada", Warning: "⚠️ conflito"}}
	router := chatTestRouter(svc)

	body := dto.ConfirmActionRequest{Action: dto.CreateAction{Type: dto.ActionTypeCreateRecord}}
	w := postJSON(t, router, "/chat/confirm", body, map[string]string{"Authorization": "Bearer test-secret"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ConfirmActionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "✅ Agenda criada", resp.Text)
	assert.Equal(t, "⚠️ conflito", resp.Warning)
}

func TestConfirm_ServiceError(t *testing.T) {
	svc := &mockChatService{confirmErr: errors.New("unsupported action type")}
	router := chatTestRouter(svc)

	body := dto.ConfirmActionRequest{Action: dto.CreateAction{Type: "outro"}}
	w := postJSON(t, router, "/chat/confirm", body, map[string]string{"Authorization": "Bearer test-secret"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
