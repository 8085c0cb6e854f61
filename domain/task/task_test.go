package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskDedupKey(t *testing.T) {
	a := NewTask(OperationGenerateCampaign, PriorityNormal, map[string]any{PayloadWorkflowID: int64(7)})
	b := NewTask(OperationGenerateCampaign, PriorityUserInitiated, map[string]any{PayloadWorkflowID: int64(7)})

	// Same operation and payload dedupe to the same key regardless of priority.
	assert.Equal(t, "adgen.campaign.generate:7", a.DedupKey())
	assert.Equal(t, a.DedupKey(), b.DedupKey())

	other := NewTask(OperationGenerateCampaign, PriorityNormal, map[string]any{PayloadWorkflowID: int64(8)})
	assert.NotEqual(t, a.DedupKey(), other.DedupKey())
}

func TestTaskPayloadIsCopied(t *testing.T) {
	payload := map[string]any{PayloadWorkflowID: int64(1)}
	task := NewTask(OperationGenerateCampaign, PriorityNormal, payload)

	payload[PayloadWorkflowID] = int64(99)
	assert.Equal(t, int64(1), task.Payload()[PayloadWorkflowID])

	// Mutating the returned copy does not affect the task.
	got := task.Payload()
	got[PayloadWorkflowID] = int64(42)
	assert.Equal(t, int64(1), task.Payload()[PayloadWorkflowID])
}

func TestPayloadJSON(t *testing.T) {
	task := NewTask(OperationGenerateCampaign, PriorityNormal, map[string]any{PayloadWorkflowID: int64(7)})

	data, err := task.PayloadJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"workflow_id":7}`, string(data))
}
