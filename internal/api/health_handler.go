package api

import (
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
)

// HealthResponse represents the response data for the health endpoint.
type HealthResponse struct {
	Status         string `json:"status"`
	CacheAvailable bool   `json:"cacheAvailable"`
}

// WelcomeResponse represents the response data for the root endpoint.
type WelcomeResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// HealthHandler handles the health and root endpoints.
type HealthHandler struct {
	taskService TaskService
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(taskService TaskService) *HealthHandler {
	return &HealthHandler{taskService: taskService}
}

// Health handles GET /health requests. The service itself is healthy as
// long as it can answer; the cache probe only affects the reported flag,
// never the status code.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:         "ok",
		CacheAvailable: h.taskService.CacheAvailable(r.Context()),
	})
}

// Welcome handles GET / requests with a short pointer to the API surface.
func (h *HealthHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, WelcomeResponse{
		Message:   "Welcome to the Tasks API",
		Endpoints: []string{"/health", "/tasks"},
	})
}
