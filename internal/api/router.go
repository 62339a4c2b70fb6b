package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/tasks-api/internal/api/middleware"
)

// NewRouter assembles the full HTTP surface of the service.
func NewRouter(taskHandler *TaskHandler, healthHandler *HealthHandler) chi.Router {
	r := chi.NewRouter()

	// Trace first so every later log line carries the trace ID; Recoverer
	// keeps a panicking handler from taking the process down.
	r.Use(middleware.TraceMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/", healthHandler.Welcome)
	r.Get("/health", healthHandler.Health)

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Put("/{id}", taskHandler.UpdateTask)
	})

	return r
}
