package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/adgenhq/adgen/domain/store"
	"github.com/adgenhq/adgen/domain/task"
	"github.com/adgenhq/adgen/internal/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskStore implements task.TaskStore using GORM.
type TaskStore struct {
	db     database.Database
	mapper TaskMapper
}

// NewTaskStore creates a new TaskStore.
func NewTaskStore(db database.Database) TaskStore {
	return TaskStore{db: db, mapper: TaskMapper{}}
}

// Get retrieves a task by ID.
func (s TaskStore) Get(ctx context.Context, id int64) (task.Task, error) {
	var model TaskModel
	result := s.db.Session(ctx).First(&model, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return task.Task{}, fmt.Errorf("%w: task", database.ErrNotFound)
		}
		return task.Task{}, fmt.Errorf("get task: %w", result.Error)
	}
	return s.mapper.ToDomain(model), nil
}

// FindPending retrieves pending tasks ordered by priority then age.
func (s TaskStore) FindPending(ctx context.Context, options ...store.Option) ([]task.Task, error) {
	var models []TaskModel
	db := database.ApplyOptions(s.db.Session(ctx).Model(&TaskModel{}), options...)
	result := db.Order("priority DESC, created_at ASC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("find pending tasks: %w", result.Error)
	}

	tasks := make([]task.Task, len(models))
	for i, model := range models {
		tasks[i] = s.mapper.ToDomain(model)
	}
	return tasks, nil
}

// Save creates a task, or raises the priority of an existing task with
// the same dedup key.
func (s TaskStore) Save(ctx context.Context, t task.Task) (task.Task, error) {
	model := s.mapper.ToModel(t)

	result := s.db.Session(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "dedup_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"priority", "updated_at"}),
	}).Create(&model)
	if result.Error != nil {
		return task.Task{}, fmt.Errorf("save task: %w", result.Error)
	}

	return s.mapper.ToDomain(model), nil
}

// Delete removes a task.
func (s TaskStore) Delete(ctx context.Context, t task.Task) error {
	result := s.db.Session(ctx).Delete(&TaskModel{}, t.ID())
	if result.Error != nil {
		return fmt.Errorf("delete task: %w", result.Error)
	}
	return nil
}

// CountPending returns the number of pending tasks.
func (s TaskStore) CountPending(ctx context.Context, options ...store.Option) (int64, error) {
	var count int64
	db := database.ApplyConditions(s.db.Session(ctx).Model(&TaskModel{}), options...)
	if result := db.Count(&count); result.Error != nil {
		return 0, fmt.Errorf("count pending tasks: %w", result.Error)
	}
	return count, nil
}

// Dequeue retrieves and removes the highest priority task atomically.
// Returns false when the queue is empty.
func (s TaskStore) Dequeue(ctx context.Context) (task.Task, bool, error) {
	var model TaskModel

	err := s.db.Session(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Order("priority DESC, created_at ASC").First(&model)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil
			}
			return result.Error
		}
		return tx.Delete(&model).Error
	})
	if err != nil {
		return task.Task{}, false, fmt.Errorf("dequeue task: %w", err)
	}

	if model.ID == 0 {
		return task.Task{}, false, nil
	}
	return s.mapper.ToDomain(model), true, nil
}
