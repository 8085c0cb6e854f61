package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/adgenhq/adgen"
	apimiddleware "github.com/adgenhq/adgen/infrastructure/api/middleware"
	v1 "github.com/adgenhq/adgen/infrastructure/api/v1"
)

// APIServer provides an HTTP API backed by an adgen Client.
type APIServer struct {
	client *adgen.Client
	server *Server
	router chi.Router
	logger *slog.Logger
}

// NewAPIServer creates a new APIServer wired to the given adgen Client.
func NewAPIServer(client *adgen.Client) *APIServer {
	return &APIServer{
		client: client,
		logger: client.Logger(),
	}
}

// mountRoutes wires up the v1 API routes and health endpoints.
func (a *APIServer) mountRoutes(router chi.Router) {
	c := a.client

	router.Use(apimiddleware.Logging(a.logger))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(60 * time.Second))

		r.Mount("/brands", v1.NewBrandsRouter(c).Routes())
		r.Mount("/products", v1.NewProductsRouter(c).Routes())
		r.Mount("/campaigns", v1.NewCampaignsRouter(c).Routes())
		r.Mount("/assets", v1.NewAssetsRouter(c).Routes())
		r.Mount("/workflows", v1.NewWorkflowsRouter(c).Routes())
	})

	router.Get("/", a.health)
	router.Get("/health", a.health)
	router.Get("/healthz", a.health)
}

func (a *APIServer) health(w http.ResponseWriter, _ *http.Request) {
	apimiddleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListenAndServe starts the HTTP server on the given address.
func (a *APIServer) ListenAndServe(addr string) error {
	server := NewServer(addr, a.logger)
	a.server = &server

	a.mountRoutes(server.Router())

	return server.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

// Handler returns the router as an http.Handler for use with custom
// servers and tests.
func (a *APIServer) Handler() http.Handler {
	if a.router == nil {
		a.router = chi.NewRouter()
		a.mountRoutes(a.router)
	}
	return a.router
}
