package generation

import (
	"context"
	"fmt"

	"github.com/adgenhq/adgen/application/handler"
	"github.com/adgenhq/adgen/domain/task"
)

// GenerateHandler processes queued campaign generation tasks by running
// the workflow orchestrator.
type GenerateHandler struct {
	orchestrator Orchestrator
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(orchestrator Orchestrator) *GenerateHandler {
	return &GenerateHandler{orchestrator: orchestrator}
}

// Execute runs the generation workflow identified by the task payload.
func (h *GenerateHandler) Execute(ctx context.Context, payload map[string]any) error {
	workflowID, err := handler.ExtractInt64(payload, task.PayloadWorkflowID)
	if err != nil {
		return fmt.Errorf("%s: %w", task.OperationGenerateCampaign, err)
	}
	return h.orchestrator.Run(ctx, workflowID)
}

// Register wires the handler into a registry under its operation.
func (h *GenerateHandler) Register(registry *handler.Registry) {
	registry.Register(task.OperationGenerateCampaign, h)
}
