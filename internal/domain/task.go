package domain

import (
	"fmt"
	"unicode/utf8"
)

// Field length limits for a Task.
const (
	// MaxTitleLength is the maximum number of characters in a task title.
	MaxTitleLength = 200

	// MaxDescriptionLength is the maximum number of characters in a task
	// description.
	MaxDescriptionLength = 2000
)

// Task-specific validation errors. All of them wrap ErrValidation so the
// API layer can map them to a single status code.
var (
	// ErrTaskIDInvalid is returned when a task ID is zero or negative.
	ErrTaskIDInvalid = fmt.Errorf("%w: task ID must be a positive integer", ErrValidation)

	// ErrTaskTitleEmpty is returned when a task title is empty.
	ErrTaskTitleEmpty = fmt.Errorf("%w: task title cannot be empty", ErrValidation)

	// ErrTaskTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTaskTitleTooLong = fmt.Errorf("%w: task title cannot exceed %d characters", ErrValidation, MaxTitleLength)

	// ErrTaskDescriptionTooLong is returned when a task description exceeds
	// MaxDescriptionLength.
	ErrTaskDescriptionTooLong = fmt.Errorf("%w: task description cannot exceed %d characters", ErrValidation, MaxDescriptionLength)
)

// Task represents a single tracked task. Description is a pointer so that
// an unset description serializes as JSON null rather than an empty string.
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// NewTask creates a new Task with the given ID and fields.
// IDs are assigned by the caller (the store owns the sequence).
// Returns an error if validation fails.
func NewTask(id int64, title string, description *string, completed bool) (*Task, error) {
	task := &Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   completed,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return ErrTaskIDInvalid
	}

	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return ErrTaskTitleTooLong
	}

	if t.Description != nil && utf8.RuneCountInString(*t.Description) > MaxDescriptionLength {
		return ErrTaskDescriptionTooLong
	}

	return nil
}

// TaskPatch carries a partial update for a Task. A nil field means "leave
// unchanged". DescriptionSet distinguishes an absent description from an
// explicit null, which clears it.
type TaskPatch struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Completed      *bool
}

// IsZero reports whether the patch carries no changes at all.
func (p TaskPatch) IsZero() bool {
	return p.Title == nil && !p.DescriptionSet && p.Completed == nil
}

// Apply overwrites only the fields supplied in the patch, then re-validates
// the task. If validation fails the task is left unmodified.
func (t *Task) Apply(patch TaskPatch) error {
	updated := *t

	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.DescriptionSet {
		updated.Description = patch.Description
	}
	if patch.Completed != nil {
		updated.Completed = *patch.Completed
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	*t = updated
	return nil
}
