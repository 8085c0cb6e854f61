package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adgenhq/adgen"
	"github.com/adgenhq/adgen/application/service"
	"github.com/adgenhq/adgen/domain/product"
	"github.com/adgenhq/adgen/infrastructure/api/middleware"
	"github.com/adgenhq/adgen/infrastructure/api/v1/dto"
	"github.com/adgenhq/adgen/internal/domain"
)

// ProductsRouter handles product API endpoints.
type ProductsRouter struct {
	client *adgen.Client
	logger *slog.Logger
}

// NewProductsRouter creates a new ProductsRouter.
func NewProductsRouter(client *adgen.Client) *ProductsRouter {
	return &ProductsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for product endpoints.
func (r *ProductsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Post("/", r.Create)
	router.Get("/{id}", r.Get)

	return router
}

// List handles GET /api/v1/products.
func (r *ProductsRouter) List(w http.ResponseWriter, req *http.Request) {
	pagination := ParsePagination(req)

	products, err := r.client.Products.List(req.Context(), pagination.Options()...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.ProductListResponse{Data: productsToDTO(products)})
}

// Create handles POST /api/v1/products.
func (r *ProductsRouter) Create(w http.ResponseWriter, req *http.Request) {
	var body dto.ProductCreateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, fmt.Errorf("%w: invalid request body", domain.ErrValidation), r.logger)
		return
	}

	created, err := r.client.Products.Create(req.Context(), service.CreateProductParams{
		Name:        body.Name,
		Description: body.Description,
		Metadata:    body.Metadata,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, dto.ProductResponse{Data: productToDTO(created)})
}

// Get handles GET /api/v1/products/{id}.
func (r *ProductsRouter) Get(w http.ResponseWriter, req *http.Request) {
	id, err := middleware.ParseID(chi.URLParam(req, "id"))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	p, err := r.client.Products.Get(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.ProductResponse{Data: productToDTO(p)})
}

func productToDTO(p product.Product) dto.ProductData {
	return dto.ProductData{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Metadata:    p.Metadata(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func productsToDTO(products []product.Product) []dto.ProductData {
	out := make([]dto.ProductData, 0, len(products))
	for _, p := range products {
		out = append(out, productToDTO(p))
	}
	return out
}
