package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adgenhq/adgen"
	"github.com/adgenhq/adgen/application/service"
	"github.com/adgenhq/adgen/domain/campaign"
	"github.com/adgenhq/adgen/infrastructure/api/middleware"
	"github.com/adgenhq/adgen/infrastructure/api/v1/dto"
	"github.com/adgenhq/adgen/internal/domain"
)

// CampaignsRouter handles campaign API endpoints.
type CampaignsRouter struct {
	client *adgen.Client
	logger *slog.Logger
}

// NewCampaignsRouter creates a new CampaignsRouter.
func NewCampaignsRouter(client *adgen.Client) *CampaignsRouter {
	return &CampaignsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for campaign endpoints.
func (r *CampaignsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Post("/", r.Create)
	router.Get("/{id}", r.Get)
	router.Post("/{id}/generate", r.Generate)
	router.Get("/{id}/download", r.Download)

	return router
}

// List handles GET /api/v1/campaigns.
func (r *CampaignsRouter) List(w http.ResponseWriter, req *http.Request) {
	pagination := ParsePagination(req)

	campaigns, err := r.client.Campaigns.List(req.Context(), pagination.Options()...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	data := make([]dto.CampaignData, 0, len(campaigns))
	for _, c := range campaigns {
		data = append(data, campaignToDTO(c))
	}
	middleware.WriteJSON(w, http.StatusOK, dto.CampaignListResponse{Data: data})
}

// Create handles POST /api/v1/campaigns.
func (r *CampaignsRouter) Create(w http.ResponseWriter, req *http.Request) {
	var body dto.CampaignCreateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, fmt.Errorf("%w: invalid request body", domain.ErrValidation), r.logger)
		return
	}

	inline := make([]service.CreateProductParams, 0, len(body.Products))
	for _, p := range body.Products {
		inline = append(inline, service.CreateProductParams{
			Name:        p.Name,
			Description: p.Description,
			Metadata:    p.Metadata,
		})
	}

	created, err := r.client.Campaigns.Create(req.Context(), service.CreateCampaignParams{
		BrandID:        body.BrandID,
		Name:           body.Name,
		TargetRegion:   body.TargetRegion,
		TargetAudience: body.TargetAudience,
		Message:        body.Message,
		Products:       inline,
		ProductIDs:     body.ProductIDs,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, dto.CampaignResponse{Data: campaignToDTO(created)})
}

// Get handles GET /api/v1/campaigns/{id}: the campaign with its linked
// products and presigned asset URLs.
func (r *CampaignsRouter) Get(w http.ResponseWriter, req *http.Request) {
	id, err := middleware.ParseID(chi.URLParam(req, "id"))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	detail, err := r.client.Campaigns.Detail(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	assets := make([]dto.AssetData, 0, len(detail.Assets))
	for _, v := range detail.Assets {
		assets = append(assets, assetViewToDTO(v))
	}

	middleware.WriteJSON(w, http.StatusOK, dto.CampaignDetailResponse{
		Data:     campaignToDTO(detail.Campaign),
		Products: productsToDTO(detail.Products),
		Assets:   assets,
	})
}

// Generate handles POST /api/v1/campaigns/{id}/generate. The workflow
// row is created and the task enqueued; generation runs in the
// background and the response returns immediately.
func (r *CampaignsRouter) Generate(w http.ResponseWriter, req *http.Request) {
	id, err := middleware.ParseID(chi.URLParam(req, "id"))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	wf, err := r.client.Workflows.Trigger(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusAccepted, dto.GenerateResponse{WorkflowID: wf.ID()})
}

// Download handles GET /api/v1/campaigns/{id}/download, streaming the
// campaign's assets as a zip bundle.
func (r *CampaignsRouter) Download(w http.ResponseWriter, req *http.Request) {
	id, err := middleware.ParseID(chi.URLParam(req, "id"))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	data, err := r.client.Bundles.Build(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename=%q`, r.client.Bundles.Filename(id)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func campaignToDTO(c campaign.Campaign) dto.CampaignData {
	return dto.CampaignData{
		ID:               c.ID(),
		BrandID:          c.BrandID(),
		Name:             c.Name(),
		TargetRegion:     c.TargetRegion(),
		TargetAudience:   c.TargetAudience(),
		Message:          c.Message(),
		LocalizedMessage: c.LocalizedMessage(),
		Status:           c.Status().String(),
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
}
