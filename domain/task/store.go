package task

import (
	"context"

	"github.com/adgenhq/adgen/domain/store"
)

// TaskStore defines the interface for Task persistence operations.
type TaskStore interface {
	// Get retrieves a task by ID.
	Get(ctx context.Context, id int64) (Task, error)

	// FindPending retrieves pending tasks ordered by priority.
	FindPending(ctx context.Context, options ...store.Option) ([]Task, error)

	// Save creates a new task or updates an existing one. If a task with
	// the same dedup_key exists its priority is raised instead of
	// creating a duplicate.
	Save(ctx context.Context, t Task) (Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, t Task) error

	// CountPending returns the number of pending tasks.
	CountPending(ctx context.Context, options ...store.Option) (int64, error)

	// Dequeue retrieves and removes the highest priority task atomically.
	// Returns false when the queue is empty.
	Dequeue(ctx context.Context) (Task, bool, error)
}
