package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"azimute/agenda-assistant-api/internal/api/controllers"
	"azimute/agenda-assistant-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatService struct{}

func (stubChatService) ProcessMessage(context.Context, dto.ChatRequest) (*dto.ChatResponse, error) {
	return &dto.ChatResponse{Text: "ok"}, nil
}

func (stubChatService) ConfirmCreate(context.Context, dto.CreateAction) (*dto.ConfirmActionResponse, error) {
	return &dto.ConfirmActionResponse{Text: "ok"}, nil
}

type stubAgendaStore struct{}

func (stubAgendaStore) ListAgendas() ([]dto.ScheduleRecord, error) { return nil, nil }
func (stubAgendaStore) GetAgendasByConsultant(string) ([]dto.ScheduleRecord, error) {
	return nil, nil
}
func (stubAgendaStore) GetAgendasByProject(string) ([]dto.ScheduleRecord, error) {
	return nil, nil
}
func (stubAgendaStore) GetAgendasByDateRange(string, string) ([]dto.ScheduleRecord, error) {
	return nil, nil
}
func (stubAgendaStore) CreateAgenda(dto.CreateAgendaRequest) (*dto.ScheduleRecord, error) {
	return nil, nil
}
func (stubAgendaStore) UpdateAgendaDetails(int64, *float64, *string) error { return nil }
func (stubAgendaStore) DeleteAgenda(int64) error                           { return nil }

func fullRouter() http.Handler {
	chatController := controllers.NewChatController("secret", stubChatService{})
	agendaController := controllers.NewAgendaController("secret", stubAgendaStore{})
	return NewRouter(chatController, agendaController)
}

// TestHealthCheck tests the /health endpoint
func TestHealthCheck(t *testing.T) {
	router := fullRouter()

	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "ok", response["status"])
}

// TestSwaggerRoute tests that the Swagger UI route is registered
func TestSwaggerRoute(t *testing.T) {
	router := fullRouter()

	reqPost, err := http.NewRequest(http.MethodPost, "/swagger/", nil)
	require.NoError(t, err)

	wPost := httptest.NewRecorder()
	router.ServeHTTP(wPost, reqPost)

	// Gin returns 404 for POST on the registered GET wildcard route
	assert.Equal(t, http.StatusNotFound, wPost.Code, "Swagger route should be registered")
}

// TestChatRoute_Exists tests that the chat route is registered
func TestChatRoute_Exists(t *testing.T) {
	router := fullRouter()

	// Empty body should return 400 (bad request), not 404 (not found)
	req, err := http.NewRequest(http.MethodPost, "/api/v1/chat", nil)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAgendaRoutes_Exist(t *testing.T) {
	router := fullRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/agendas"},
		{http.MethodPost, "/api/v1/agendas"},
		{http.MethodPatch, "/api/v1/agendas/1/detalhes"},
		{http.MethodDelete, "/api/v1/agendas/1"},
		{http.MethodGet, "/api/v1/agendas/disponibilidade"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, tt.path, nil)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.NotEqual(t, http.StatusNotFound, w.Code, "route should be registered")
		})
	}
}

// TestNilControllersOmitRoutes tests that missing configuration disables routes
func TestNilControllersOmitRoutes(t *testing.T) {
	router := NewRouter(nil, nil)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/chat"},
		{http.MethodGet, "/api/v1/agendas"},
	}

	for _, r := range routes {
		req, err := http.NewRequest(r.method, r.path, nil)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	// Health stays up regardless
	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

// TestNotFoundRoute tests that non-existent routes return 404
func TestNotFoundRoute(t *testing.T) {
	router := fullRouter()

	routes := []string{
		"/nonexistent",
		"/api/v1/nonexistent",
		"/api/v2/chat",
		"/chat",
	}

	for _, route := range routes {
		t.Run(route, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, route, nil)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}
