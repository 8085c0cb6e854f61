package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adgenhq/adgen/internal/domain"
)

func TestNewWorkflow(t *testing.T) {
	wf, err := NewWorkflow(42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), wf.CampaignID())
	assert.Equal(t, StatusStarted, wf.Status())
	assert.False(t, wf.StartedAt().IsZero())
	assert.Nil(t, wf.FinishedAt())

	_, err = NewWorkflow(0)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestWorkflowLifecycle(t *testing.T) {
	wf, err := NewWorkflow(1)
	require.NoError(t, err)

	running, err := wf.Run()
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, running.Status())

	done, err := running.Complete()
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, done.Status())
	require.NotNil(t, done.FinishedAt())
	assert.WithinDuration(t, time.Now().UTC(), *done.FinishedAt(), time.Minute)
}

func TestWorkflowFail(t *testing.T) {
	wf, err := NewWorkflow(1)
	require.NoError(t, err)

	// Failing is allowed before the run starts (setup failures).
	failed, err := wf.Fail("brand missing")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, failed.Status())
	assert.Equal(t, "brand missing", failed.ErrorMessage())
	require.NotNil(t, failed.FinishedAt())

	running, err := wf.Run()
	require.NoError(t, err)
	failed, err = running.Fail("generation error")
	require.NoError(t, err)
	assert.Equal(t, "generation error", failed.ErrorMessage())
}

func TestWorkflowInvalidTransitions(t *testing.T) {
	wf, err := NewWorkflow(1)
	require.NoError(t, err)

	// Complete requires Running.
	_, err = wf.Complete()
	require.ErrorIs(t, err, domain.ErrConflict)

	running, err := wf.Run()
	require.NoError(t, err)

	// Run is not re-entrant.
	_, err = running.Run()
	require.ErrorIs(t, err, domain.ErrConflict)

	done, err := running.Complete()
	require.NoError(t, err)

	// Terminal states cannot transition further.
	_, err = done.Fail("too late")
	require.ErrorIs(t, err, domain.ErrConflict)
	_, err = done.Complete()
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusStarted.IsTerminal())
	assert.False(t, StatusRunning.IsTerminal())
	assert.True(t, StatusComplete.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
}
