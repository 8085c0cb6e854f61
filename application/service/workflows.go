package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adgenhq/adgen/domain/campaign"
	"github.com/adgenhq/adgen/domain/store"
	"github.com/adgenhq/adgen/domain/task"
	"github.com/adgenhq/adgen/domain/workflow"
)

// Workflows triggers and inspects generation workflows. Triggering is
// fire-and-forget: the workflow row is created, a task is enqueued, and
// the call returns before any generation runs.
type Workflows struct {
	workflows workflow.Store
	campaigns campaign.Store
	queue     *Queue
	logger    *slog.Logger
}

// NewWorkflows creates a Workflows service.
func NewWorkflows(workflows workflow.Store, campaigns campaign.Store, queue *Queue, logger *slog.Logger) *Workflows {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflows{
		workflows: workflows,
		campaigns: campaigns,
		queue:     queue,
		logger:    logger,
	}
}

// Trigger creates a started workflow for the campaign and enqueues the
// generation task. The returned workflow has not run yet.
func (s *Workflows) Trigger(ctx context.Context, campaignID int64) (workflow.Workflow, error) {
	if _, err := s.campaigns.Get(ctx, campaignID); err != nil {
		return workflow.Workflow{}, err
	}

	newWf, err := workflow.NewWorkflow(campaignID)
	if err != nil {
		return workflow.Workflow{}, err
	}

	wf, err := s.workflows.Save(ctx, newWf)
	if err != nil {
		return workflow.Workflow{}, fmt.Errorf("create workflow: %w", err)
	}

	t := task.NewTask(task.OperationGenerateCampaign, task.PriorityUserInitiated, map[string]any{
		task.PayloadWorkflowID: wf.ID(),
	})
	if err := s.queue.Enqueue(ctx, t); err != nil {
		return workflow.Workflow{}, fmt.Errorf("enqueue generation task: %w", err)
	}

	s.logger.Info("generation workflow triggered",
		slog.Int64("workflow_id", wf.ID()),
		slog.Int64("campaign_id", campaignID),
	)
	return wf, nil
}

// Get retrieves a workflow by ID.
func (s *Workflows) Get(ctx context.Context, id int64) (workflow.Workflow, error) {
	return s.workflows.Get(ctx, id)
}

// List returns all workflows.
func (s *Workflows) List(ctx context.Context, options ...store.Option) ([]workflow.Workflow, error) {
	return s.workflows.Find(ctx, options...)
}
