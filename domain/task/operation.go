package task

// Operation represents the type of task operation.
type Operation string

// Operation values for the task queue system.
const (
	// OperationGenerateCampaign runs the creative generation workflow
	// for a campaign. Payload: workflow_id.
	OperationGenerateCampaign Operation = "adgen.campaign.generate"
)

// PayloadWorkflowID is the payload key carrying the workflow to run.
const PayloadWorkflowID = "workflow_id"

// String returns the string representation of the operation.
func (o Operation) String() string {
	return string(o)
}
