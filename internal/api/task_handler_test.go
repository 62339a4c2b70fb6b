package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
)

// mockTaskService is a mock implementation of the TaskService interface
type mockTaskService struct {
	listFn   func(ctx context.Context) ([]domain.Task, error)
	createFn func(ctx context.Context, title string, description *string, completed bool) (*domain.Task, error)
	updateFn func(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	cacheUp  bool
}

func (m *mockTaskService) List(ctx context.Context) ([]domain.Task, error) {
	return m.listFn(ctx)
}

func (m *mockTaskService) Create(ctx context.Context, title string, description *string, completed bool) (*domain.Task, error) {
	return m.createFn(ctx, title, description, completed)
}

func (m *mockTaskService) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	return m.updateFn(ctx, id, patch)
}

func (m *mockTaskService) CacheAvailable(ctx context.Context) bool {
	return m.cacheUp
}

func newTestServer(svc TaskService) http.Handler {
	return NewRouter(NewTaskHandler(svc, slog.Default()), NewHealthHandler(svc))
}

func strPtr(s string) *string { return &s }

func TestListTasks(t *testing.T) {
	tests := []struct {
		name           string
		serviceResult  []domain.Task
		serviceError   error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "empty list serializes as JSON array",
			serviceResult:  []domain.Task{},
			expectedStatus: http.StatusOK,
			expectedBody:   "[]",
		},
		{
			name: "tasks returned in order",
			serviceResult: []domain.Task{
				{ID: 1, Title: "Buy milk"},
				{ID: 2, Title: "Walk dog", Description: strPtr("around the block"), Completed: true},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "storage failure maps to 500",
			serviceError:   fmt.Errorf("%w: reading data file", store.ErrStorageIO),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockTaskService{
				listFn: func(ctx context.Context) ([]domain.Task, error) {
					return tc.serviceResult, tc.serviceError
				},
			}

			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			rec := httptest.NewRecorder()
			newTestServer(svc).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rec.Body.String())
			}

			if tc.expectedStatus == http.StatusOK && len(tc.serviceResult) > 0 {
				var got []TaskResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				require.Len(t, got, len(tc.serviceResult))
				assert.Equal(t, tc.serviceResult[0].Title, got[0].Title)
				assert.Equal(t, tc.serviceResult[1].Title, got[1].Title)
			}

			if tc.serviceError != nil {
				assert.NotContains(t, rec.Body.String(), "data file",
					"internal error detail must not leak to the client")
			}
		})
	}
}

func TestCreateTask(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		serviceError   error
		expectedStatus int
	}{
		{
			name:           "valid task",
			body:           `{"title": "Buy milk"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing title",
			body:           `{"description": "no title here"}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "empty title",
			body:           `{"title": ""}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "title too long",
			body:           fmt.Sprintf(`{"title": %q}`, strings.Repeat("x", 201)),
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "description too long",
			body:           fmt.Sprintf(`{"title": "ok", "description": %q}`, strings.Repeat("x", 2001)),
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "malformed JSON",
			body:           `{"title": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "storage failure maps to 500",
			body:           `{"title": "Buy milk"}`,
			serviceError:   fmt.Errorf("%w: disk full", store.ErrStorageIO),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockTaskService{
				createFn: func(ctx context.Context, title string, description *string, completed bool) (*domain.Task, error) {
					if tc.serviceError != nil {
						return nil, tc.serviceError
					}
					return &domain.Task{ID: 1, Title: title, Description: description, Completed: completed}, nil
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()
			newTestServer(svc).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestCreateTaskOnEmptyStoreScenario(t *testing.T) {
	svc := &mockTaskService{
		createFn: func(ctx context.Context, title string, description *string, completed bool) (*domain.Task, error) {
			return &domain.Task{ID: 1, Title: title, Description: description, Completed: completed}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBufferString(`{"title": "Buy milk"}`))
	rec := httptest.NewRecorder()
	newTestServer(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"id": 1, "title": "Buy milk", "description": null, "completed": false}`,
		rec.Body.String())
}

func TestUpdateTask(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           string
		serviceError   error
		expectedStatus int
		wantPatch      *domain.TaskPatch
	}{
		{
			name:           "completed-only patch",
			path:           "/tasks/1",
			body:           `{"completed": true}`,
			expectedStatus: http.StatusOK,
			wantPatch:      &domain.TaskPatch{Completed: func() *bool { b := true; return &b }()},
		},
		{
			name:           "unknown id maps to 404",
			path:           "/tasks/999",
			body:           `{"completed": true}`,
			serviceError:   fmt.Errorf("%w: id 999", service.ErrTaskNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id",
			path:           "/tasks/abc",
			body:           `{"completed": true}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative id",
			path:           "/tasks/-1",
			body:           `{"completed": true}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty title rejected",
			path:           "/tasks/1",
			body:           `{"title": ""}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "malformed JSON",
			path:           "/tasks/1",
			body:           `{"completed": `,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotPatch domain.TaskPatch
			svc := &mockTaskService{
				updateFn: func(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
					gotPatch = patch
					if tc.serviceError != nil {
						return nil, tc.serviceError
					}
					return &domain.Task{ID: id, Title: "Buy milk", Completed: patch.Completed != nil && *patch.Completed}, nil
				},
			}

			req := httptest.NewRequest(http.MethodPut, tc.path, bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()
			newTestServer(svc).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)

			if tc.wantPatch != nil {
				require.NotNil(t, gotPatch.Completed, "patch should carry the completed field")
				assert.Equal(t, *tc.wantPatch.Completed, *gotPatch.Completed)
				assert.Nil(t, gotPatch.Title, "patch must not invent a title")
				assert.False(t, gotPatch.DescriptionSet, "absent description must not be marked as set")
			}
		})
	}
}

func TestUpdateTaskExplicitNullDescription(t *testing.T) {
	var gotPatch domain.TaskPatch
	svc := &mockTaskService{
		updateFn: func(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
			gotPatch = patch
			return &domain.Task{ID: id, Title: "Buy milk"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/tasks/1", bytes.NewBufferString(`{"description": null}`))
	rec := httptest.NewRecorder()
	newTestServer(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotPatch.DescriptionSet, "explicit null must be distinguishable from an absent key")
	assert.Nil(t, gotPatch.Description)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name    string
		cacheUp bool
		want    string
	}{
		{name: "cache available", cacheUp: true, want: `{"status": "ok", "cacheAvailable": true}`},
		{name: "cache down", cacheUp: false, want: `{"status": "ok", "cacheAvailable": false}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockTaskService{cacheUp: tc.cacheUp}

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			newTestServer(svc).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tc.want, rec.Body.String())
		})
	}
}

func TestWelcome(t *testing.T) {
	svc := &mockTaskService{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	newTestServer(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp WelcomeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
	assert.Contains(t, resp.Endpoints, "/tasks")
	assert.Contains(t, resp.Endpoints, "/health")
}
