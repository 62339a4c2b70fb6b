package api

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskService defines the application operations the handlers depend on.
// Satisfied by service.TaskService; declared here so handler tests can
// substitute fakes.
type TaskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, title string, description *string, completed bool) (*domain.Task, error)
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	CacheAvailable(ctx context.Context) bool
}
