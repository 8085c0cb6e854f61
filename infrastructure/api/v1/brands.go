package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adgenhq/adgen"
	"github.com/adgenhq/adgen/application/service"
	"github.com/adgenhq/adgen/domain/brand"
	"github.com/adgenhq/adgen/infrastructure/api/middleware"
	"github.com/adgenhq/adgen/infrastructure/api/v1/dto"
	"github.com/adgenhq/adgen/internal/domain"
)

// BrandsRouter handles brand API endpoints.
type BrandsRouter struct {
	client *adgen.Client
	logger *slog.Logger
}

// NewBrandsRouter creates a new BrandsRouter.
func NewBrandsRouter(client *adgen.Client) *BrandsRouter {
	return &BrandsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for brand endpoints.
func (r *BrandsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Post("/", r.Create)
	router.Get("/{id}", r.Get)

	return router
}

// List handles GET /api/v1/brands.
func (r *BrandsRouter) List(w http.ResponseWriter, req *http.Request) {
	pagination := ParsePagination(req)

	brands, err := r.client.Brands.List(req.Context(), pagination.Options()...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.BrandListResponse{Data: brandsToDTO(brands)})
}

// Create handles POST /api/v1/brands.
func (r *BrandsRouter) Create(w http.ResponseWriter, req *http.Request) {
	var body dto.BrandCreateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, fmt.Errorf("%w: invalid request body", domain.ErrValidation), r.logger)
		return
	}

	created, err := r.client.Brands.Create(req.Context(), service.CreateBrandParams{
		Name:              body.Name,
		PrimaryColorHex:   body.PrimaryColorHex,
		SecondaryColorHex: body.SecondaryColorHex,
		ToneOfVoice:       body.ToneOfVoice,
		FontFamily:        body.FontFamily,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, dto.BrandResponse{Data: brandToDTO(created)})
}

// Get handles GET /api/v1/brands/{id}.
func (r *BrandsRouter) Get(w http.ResponseWriter, req *http.Request) {
	id, err := middleware.ParseID(chi.URLParam(req, "id"))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	b, err := r.client.Brands.Get(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.BrandResponse{Data: brandToDTO(b)})
}

func brandToDTO(b brand.Brand) dto.BrandData {
	return dto.BrandData{
		ID:                b.ID(),
		Name:              b.Name(),
		PrimaryColorHex:   b.PrimaryColorHex(),
		SecondaryColorHex: b.SecondaryColorHex(),
		ToneOfVoice:       b.ToneOfVoice(),
		FontFamily:        b.FontFamily(),
		CreatedAt:         b.CreatedAt(),
		UpdatedAt:         b.UpdatedAt(),
	}
}

func brandsToDTO(brands []brand.Brand) []dto.BrandData {
	out := make([]dto.BrandData, 0, len(brands))
	for _, b := range brands {
		out = append(out, brandToDTO(b))
	}
	return out
}
