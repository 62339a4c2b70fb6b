package api

import (
	"encoding/json"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// CreateTaskRequest represents the request body for creating a new task
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitnil,max=2000"`
	Completed   bool    `json:"completed"`
}

// UpdateTaskRequest represents the request body for partially updating a
// task. Every field is optional; only supplied fields are changed. An
// explicit `"description": null` clears the description, which is why key
// presence is tracked separately from the pointer value.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=200"`
	Description *string `json:"description" validate:"omitnil,max=2000"`
	Completed   *bool   `json:"completed"`

	descriptionSet bool
}

// UnmarshalJSON decodes the patch body and records whether the description
// key was present at all.
func (r *UpdateTaskRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateTaskRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*r = UpdateTaskRequest(a)
	_, r.descriptionSet = keys["description"]
	return nil
}

// Patch converts the request into a domain patch.
func (r *UpdateTaskRequest) Patch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:          r.Title,
		Description:    r.Description,
		DescriptionSet: r.descriptionSet,
		Completed:      r.Completed,
	}
}

// TaskResponse represents the response data for a task
type TaskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
	}
}

// tasksToResponse converts a task list to response form, never nil so an
// empty list serializes as [] rather than null.
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskToResponse(&tasks[i]))
	}
	return out
}
