// Package task provides task queue domain types for async work processing.
package task

import (
	"encoding/json"
	"fmt"
	"maps"
	"time"
)

// Priority represents task queue priority levels.
type Priority int

// Priority values.
const (
	PriorityBackground    Priority = 1000
	PriorityNormal        Priority = 2000
	PriorityUserInitiated Priority = 5000
)

// Task represents an item in the queue waiting to be processed.
// Existence implies pending; processed tasks are deleted.
type Task struct {
	id        int64
	dedupKey  string
	operation Operation
	priority  int
	payload   map[string]any
	createdAt time.Time
	updatedAt time.Time
}

// NewTask creates a Task with the given operation, priority, and payload.
// The dedup key is derived from the operation and payload so re-enqueuing
// the same work updates priority instead of duplicating the task.
func NewTask(operation Operation, priority Priority, payload map[string]any) Task {
	p := copyPayload(payload)
	return Task{
		dedupKey:  dedupKey(operation, p),
		operation: operation,
		priority:  int(priority),
		payload:   p,
	}
}

// ReconstructTask rebuilds a Task from persisted state.
func ReconstructTask(
	id int64,
	dedupKey string,
	operation Operation,
	priority int,
	payload map[string]any,
	createdAt, updatedAt time.Time,
) Task {
	return Task{
		id:        id,
		dedupKey:  dedupKey,
		operation: operation,
		priority:  priority,
		payload:   copyPayload(payload),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the task ID.
func (t Task) ID() int64 { return t.id }

// DedupKey returns the deduplication key.
func (t Task) DedupKey() string { return t.dedupKey }

// Operation returns the task operation.
func (t Task) Operation() Operation { return t.operation }

// Priority returns the task priority.
func (t Task) Priority() int { return t.priority }

// Payload returns a copy of the task payload.
func (t Task) Payload() map[string]any { return copyPayload(t.payload) }

// CreatedAt returns when the task was created.
func (t Task) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns when the task was last updated.
func (t Task) UpdatedAt() time.Time { return t.updatedAt }

// WithID returns a copy of the task with the given ID.
func (t Task) WithID(id int64) Task {
	t.id = id
	return t
}

// PayloadJSON returns the payload as JSON bytes.
func (t Task) PayloadJSON() ([]byte, error) {
	return json.Marshal(t.payload)
}

// dedupKey derives a deduplication key. Payloads here carry a single
// identifying value (e.g. workflow_id), so "{operation}:{value}" is
// stable and unique per unit of work.
func dedupKey(operation Operation, payload map[string]any) string {
	var firstVal any
	for _, v := range payload {
		firstVal = v
		break
	}
	return fmt.Sprintf("%s:%v", operation, firstVal)
}

func copyPayload(payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload))
	maps.Copy(out, payload)
	return out
}
