package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adgenhq/adgen"
	"github.com/adgenhq/adgen/application/service"
	"github.com/adgenhq/adgen/infrastructure/api/middleware"
	"github.com/adgenhq/adgen/infrastructure/api/v1/dto"
	"github.com/adgenhq/adgen/internal/domain"
)

// AssetsRouter handles asset API endpoints.
type AssetsRouter struct {
	client *adgen.Client
	logger *slog.Logger
}

// NewAssetsRouter creates a new AssetsRouter.
func NewAssetsRouter(client *adgen.Client) *AssetsRouter {
	return &AssetsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for asset endpoints.
func (r *AssetsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", r.Upload)
	router.Get("/{id}", r.Get)

	return router
}

// Upload handles POST /api/v1/assets: a base64-encoded creative upload.
func (r *AssetsRouter) Upload(w http.ResponseWriter, req *http.Request) {
	var body dto.AssetUploadRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, fmt.Errorf("%w: invalid request body", domain.ErrValidation), r.logger)
		return
	}

	view, err := r.client.Assets.Upload(req.Context(), service.UploadAssetParams{
		CampaignID:  body.CampaignID,
		ProductID:   body.ProductID,
		AspectRatio: body.AspectRatio,
		ImageBase64: body.ImageBase64,
		ContentType: body.ContentType,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, dto.AssetResponse{Data: assetViewToDTO(view)})
}

// Get handles GET /api/v1/assets/{id}.
func (r *AssetsRouter) Get(w http.ResponseWriter, req *http.Request) {
	id, err := middleware.ParseID(chi.URLParam(req, "id"))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	view, err := r.client.Assets.Get(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.AssetResponse{Data: assetViewToDTO(view)})
}

func assetViewToDTO(v service.AssetView) dto.AssetData {
	return dto.AssetData{
		ID:          v.Asset.ID(),
		Type:        v.Asset.Type().String(),
		Source:      v.Asset.Source().String(),
		AspectRatio: v.Asset.AspectRatio().String(),
		Width:       v.Asset.Width(),
		Height:      v.Asset.Height(),
		URL:         v.URL,
		CreatedAt:   v.Asset.CreatedAt(),
	}
}
