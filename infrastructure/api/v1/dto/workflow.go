package dto

import "time"

// WorkflowData is the wire representation of a generation run.
type WorkflowData struct {
	ID           int64      `json:"id"`
	CampaignID   int64      `json:"campaign_id"`
	Status       string     `json:"status"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
}

// WorkflowResponse wraps a single workflow.
type WorkflowResponse struct {
	Data WorkflowData `json:"data"`
}

// WorkflowListResponse wraps a list of workflows.
type WorkflowListResponse struct {
	Data []WorkflowData `json:"data"`
}
