package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// FileStore persists the full task list as a pretty-printed JSON array in a
// single file. Every write rewrites the file in full.
//
// A single mutex serializes all file access from this process, scoped to
// each Load and each Save individually. It is NOT held across a
// load-mutate-save sequence, so two concurrent mutations can race and the
// second save wins (lost update). A single serving process is assumed to
// own the file; concurrent external edits are not defended against.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a FileStore backed by the file at path. The parent
// directory is created if missing, and an absent file is initialized to an
// empty JSON array so a fresh deployment starts with zero tasks.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", ErrStorageIO, err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("%w: initializing data file: %v", ErrStorageIO, err)
		}
	}

	return &FileStore{path: path}, nil
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and parses the full task list. An absent or whitespace-only
// file is an empty list. Content that fails to parse as a task list, or
// that contains tasks violating field constraints, returns ErrStorageCorrupt.
func (s *FileStore) Load(ctx context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Task{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStorageIO, s.path, err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return []domain.Task{}, nil
	}

	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrStorageCorrupt, s.path, err)
	}

	for i := range tasks {
		if err := tasks[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: task at index %d: %v", ErrStorageCorrupt, i, err)
		}
	}

	return tasks, nil
}

// Save serializes the given task list (preserving order) and overwrites the
// backing file in full.
func (s *FileStore) Save(ctx context.Context, tasks []domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tasks == nil {
		// A nil slice would serialize as JSON null, not an empty array.
		tasks = []domain.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding task list: %v", ErrStorageIO, err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrStorageIO, s.path, err)
	}

	return nil
}

// NextID returns the ID to assign to the next created task: one greater
// than the highest existing ID, starting at 1 for an empty list. Pure
// function, no side effects.
func NextID(tasks []domain.Task) int64 {
	var max int64
	for i := range tasks {
		if tasks[i].ID > max {
			max = tasks[i].ID
		}
	}
	return max + 1
}
