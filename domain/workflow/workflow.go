// Package workflow provides the generation-run aggregate and its state
// machine.
package workflow

import (
	"fmt"
	"time"

	"github.com/adgenhq/adgen/internal/domain"
)

// Status is the lifecycle state of a generation run.
type Status int

// Status values. Started means accepted but not yet picked up; Running
// means the orchestrator owns it; Complete and Failed are terminal.
const (
	StatusStarted  Status = 1
	StatusRunning  Status = 2
	StatusComplete Status = 3
	StatusFailed   Status = 4
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusStarted:
		return "started"
	case StatusRunning:
		return "running"
	case StatusComplete:
		return "complete"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// IsTerminal reports whether the status is final.
func (s Status) IsTerminal() bool {
	return s == StatusComplete || s == StatusFailed
}

// Workflow tracks one generation run for a campaign.
type Workflow struct {
	id           int64
	campaignID   int64
	status       Status
	startedAt    time.Time
	finishedAt   *time.Time
	errorMessage string
}

// NewWorkflow creates a Workflow in the Started state.
func NewWorkflow(campaignID int64) (Workflow, error) {
	if campaignID <= 0 {
		return Workflow{}, fmt.Errorf("%w: workflow requires a campaign", domain.ErrValidation)
	}
	return Workflow{
		campaignID: campaignID,
		status:     StatusStarted,
		startedAt:  time.Now().UTC(),
	}, nil
}

// ReconstructWorkflow rebuilds a Workflow from persisted state.
func ReconstructWorkflow(
	id, campaignID int64,
	status Status,
	startedAt time.Time,
	finishedAt *time.Time,
	errorMessage string,
) Workflow {
	return Workflow{
		id:           id,
		campaignID:   campaignID,
		status:       status,
		startedAt:    startedAt,
		finishedAt:   finishedAt,
		errorMessage: errorMessage,
	}
}

// ID returns the workflow ID.
func (w Workflow) ID() int64 { return w.id }

// CampaignID returns the campaign this run belongs to.
func (w Workflow) CampaignID() int64 { return w.campaignID }

// Status returns the current lifecycle state.
func (w Workflow) Status() Status { return w.status }

// StartedAt returns when the run was accepted.
func (w Workflow) StartedAt() time.Time { return w.startedAt }

// FinishedAt returns when the run reached a terminal state, nil while
// the run is live.
func (w Workflow) FinishedAt() *time.Time { return w.finishedAt }

// ErrorMessage returns the failure summary, empty unless Failed.
func (w Workflow) ErrorMessage() string { return w.errorMessage }

// WithID returns a copy with the given ID.
func (w Workflow) WithID(id int64) Workflow {
	w.id = id
	return w
}

// Run transitions Started -> Running.
func (w Workflow) Run() (Workflow, error) {
	if w.status != StatusStarted {
		return Workflow{}, fmt.Errorf("%w: cannot run workflow in state %s", domain.ErrConflict, w.status)
	}
	w.status = StatusRunning
	return w, nil
}

// Complete transitions Running -> Complete and stamps the finish time.
func (w Workflow) Complete() (Workflow, error) {
	if w.status != StatusRunning {
		return Workflow{}, fmt.Errorf("%w: cannot complete workflow in state %s", domain.ErrConflict, w.status)
	}
	now := time.Now().UTC()
	w.status = StatusComplete
	w.finishedAt = &now
	return w, nil
}

// Fail transitions any non-terminal state -> Failed, recording the
// failure summary and stamping the finish time.
func (w Workflow) Fail(message string) (Workflow, error) {
	if w.status.IsTerminal() {
		return Workflow{}, fmt.Errorf("%w: cannot fail workflow in state %s", domain.ErrConflict, w.status)
	}
	now := time.Now().UTC()
	w.status = StatusFailed
	w.finishedAt = &now
	w.errorMessage = message
	return w, nil
}
