package workflow

import (
	"context"

	"github.com/adgenhq/adgen/domain/store"
)

// Store defines persistence operations for workflows.
type Store interface {
	Get(ctx context.Context, id int64) (Workflow, error)
	Find(ctx context.Context, options ...store.Option) ([]Workflow, error)
	Save(ctx context.Context, w Workflow) (Workflow, error)
}
