package persistence

import (
	"context"
	"fmt"

	"github.com/adgenhq/adgen/domain/store"
	"github.com/adgenhq/adgen/domain/workflow"
	"github.com/adgenhq/adgen/internal/database"
)

// WorkflowStore implements workflow.Store using GORM.
type WorkflowStore struct {
	database.Repository[workflow.Workflow, WorkflowModel]
}

// NewWorkflowStore creates a new WorkflowStore.
func NewWorkflowStore(db database.Database) WorkflowStore {
	return WorkflowStore{
		Repository: database.NewRepository[workflow.Workflow, WorkflowModel](db, WorkflowMapper{}, "workflow"),
	}
}

// Get retrieves a workflow by ID.
func (s WorkflowStore) Get(ctx context.Context, id int64) (workflow.Workflow, error) {
	return s.FindOne(ctx, store.WithID(id))
}

// Save creates or updates a workflow.
func (s WorkflowStore) Save(ctx context.Context, w workflow.Workflow) (workflow.Workflow, error) {
	model := s.Mapper().ToModel(w)

	if model.ID == 0 {
		if result := s.DB(ctx).Create(&model); result.Error != nil {
			return workflow.Workflow{}, fmt.Errorf("create workflow: %w", result.Error)
		}
	} else {
		if result := s.DB(ctx).Save(&model); result.Error != nil {
			return workflow.Workflow{}, fmt.Errorf("update workflow: %w", result.Error)
		}
	}

	return s.Mapper().ToDomain(model), nil
}
