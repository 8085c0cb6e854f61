package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adgenhq/adgen"
	"github.com/adgenhq/adgen/domain/workflow"
	"github.com/adgenhq/adgen/infrastructure/api/middleware"
	"github.com/adgenhq/adgen/infrastructure/api/v1/dto"
)

// WorkflowsRouter handles workflow API endpoints.
type WorkflowsRouter struct {
	client *adgen.Client
	logger *slog.Logger
}

// NewWorkflowsRouter creates a new WorkflowsRouter.
func NewWorkflowsRouter(client *adgen.Client) *WorkflowsRouter {
	return &WorkflowsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for workflow endpoints.
func (r *WorkflowsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Get("/{id}", r.Get)

	return router
}

// List handles GET /api/v1/workflows.
func (r *WorkflowsRouter) List(w http.ResponseWriter, req *http.Request) {
	pagination := ParsePagination(req)

	workflows, err := r.client.Workflows.List(req.Context(), pagination.Options()...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	data := make([]dto.WorkflowData, 0, len(workflows))
	for _, wf := range workflows {
		data = append(data, workflowToDTO(wf))
	}
	middleware.WriteJSON(w, http.StatusOK, dto.WorkflowListResponse{Data: data})
}

// Get handles GET /api/v1/workflows/{id}.
func (r *WorkflowsRouter) Get(w http.ResponseWriter, req *http.Request) {
	id, err := middleware.ParseID(chi.URLParam(req, "id"))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	wf, err := r.client.Workflows.Get(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.WorkflowResponse{Data: workflowToDTO(wf)})
}

func workflowToDTO(wf workflow.Workflow) dto.WorkflowData {
	return dto.WorkflowData{
		ID:           wf.ID(),
		CampaignID:   wf.CampaignID(),
		Status:       wf.Status().String(),
		StartedAt:    wf.StartedAt(),
		FinishedAt:   wf.FinishedAt(),
		ErrorMessage: wf.ErrorMessage(),
	}
}
