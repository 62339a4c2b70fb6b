package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// listCacheKey is the single cache key in use: it holds the JSON-serialized
// full task list.
const listCacheKey = "tasks:all"

// TaskStore is the persistence dependency of the service: the durable,
// authoritative owner of the task list.
type TaskStore interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
}

// ListCache is the optional acceleration dependency. Implementations absorb
// every backend failure: Get reports a miss, Set and Delete are no-ops.
type ListCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Available(ctx context.Context) bool
}

// TaskService orchestrates the store and the cache for each task operation.
// The cache may be nil, in which case every read goes to the store.
type TaskService struct {
	store  TaskStore
	cache  ListCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewTaskService creates a TaskService. cache may be nil to run without
// caching; store and logger are required.
func NewTaskService(taskStore TaskStore, cache ListCache, ttl time.Duration, logger *slog.Logger) *TaskService {
	if taskStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("store cannot be nil for TaskService")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskService")
	}

	return &TaskService{
		store:  taskStore,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "task_service")),
	}
}

// List returns all tasks. It tries the cached list first and falls back to
// the store on a miss, repopulating the cache best-effort. Cache failures
// never affect the response.
func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	if s.cache != nil {
		if data, ok := s.cache.Get(ctx, listCacheKey); ok {
			var tasks []domain.Task
			if err := json.Unmarshal(data, &tasks); err == nil {
				s.logger.Debug("task list served from cache", slog.Int("count", len(tasks)))
				return tasks, nil
			}
			// A cache entry we cannot decode is treated as a miss; the
			// store remains the source of truth.
			s.logger.Debug("discarding undecodable cache entry", slog.String("key", listCacheKey))
		}
	}

	tasks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(tasks); err == nil {
			s.cache.Set(ctx, listCacheKey, data, s.ttl)
		}
	}

	return tasks, nil
}

// Create appends a new task with the next sequential ID and persists the
// full list, then invalidates the cached list.
func (s *TaskService) Create(ctx context.Context, title string, description *string, completed bool) (*domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	task, err := domain.NewTask(store.NextID(tasks), title, description, completed)
	if err != nil {
		return nil, err
	}

	tasks = append(tasks, *task)
	if err := s.store.Save(ctx, tasks); err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	s.logger.Debug("task created", slog.Int64("task_id", task.ID))
	return task, nil
}

// Update applies a partial patch to the task with the given ID and persists
// the full list, then invalidates the cached list. Only fields supplied in
// the patch change. Returns ErrTaskNotFound if no task carries the ID; the
// persisted list is left untouched in that case.
func (s *TaskService) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}

		if err := tasks[i].Apply(patch); err != nil {
			return nil, err
		}

		if err := s.store.Save(ctx, tasks); err != nil {
			return nil, err
		}

		s.invalidate(ctx)

		updated := tasks[i]
		s.logger.Debug("task updated", slog.Int64("task_id", updated.ID))
		return &updated, nil
	}

	return nil, fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
}

// CacheAvailable reports whether the cache backend currently answers.
// Used by the health endpoint.
func (s *TaskService) CacheAvailable(ctx context.Context) bool {
	return s.cache != nil && s.cache.Available(ctx)
}

// invalidate drops the cached task list after a mutation, best-effort.
func (s *TaskService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Delete(ctx, listCacheKey)
	}
}
