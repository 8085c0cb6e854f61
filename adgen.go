// Package adgen provides a library for creative ad generation.
//
// Adgen stores brand identities, product catalogs, and campaign briefs,
// and generates social-media creatives for every (product, aspect ratio)
// pair a campaign needs. Generation runs asynchronously through a
// database-backed task queue.
//
// Basic usage:
//
//	client, err := adgen.New(
//	    adgen.WithSQLite(".adgen/adgen.db"),
//	    adgen.WithGeminiKey(os.Getenv("GEMINI_API_KEY")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Create a campaign brief
//	c, err := client.Campaigns.Create(ctx, service.CreateCampaignParams{
//	    BrandID: brand.ID(),
//	    Name:    "Summer Launch",
//	    ...
//	})
//
//	// Trigger generation (fire-and-forget)
//	wf, err := client.Workflows.Trigger(ctx, c.ID())
package adgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/adgenhq/adgen/application/handler"
	"github.com/adgenhq/adgen/application/service"
	"github.com/adgenhq/adgen/infrastructure/persistence"
	"github.com/adgenhq/adgen/infrastructure/provider"
	"github.com/adgenhq/adgen/infrastructure/storage"
	"github.com/adgenhq/adgen/internal/config"
	"github.com/adgenhq/adgen/internal/database"
)

// ErrClientClosed indicates the client has already been closed.
var ErrClientClosed = errors.New("client is closed")

// Client is the main entry point for the adgen library.
// The background workers start automatically on creation.
//
// Access resources via struct fields:
//
//	client.Brands.Create(ctx, params)
//	client.Campaigns.Detail(ctx, id)
//	client.Workflows.Trigger(ctx, campaignID)
type Client struct {
	// Public resource fields (direct service access)
	Brands    *service.Brands
	Products  *service.Products
	Campaigns *service.Campaigns
	Assets    *service.Assets
	Workflows *service.Workflows
	Bundles   *service.Bundle
	Tasks     *service.Queue

	db         database.Database
	blobs      storage.ObjectStore
	generators *provider.Generators
	registry   *handler.Registry
	workers    []*service.Worker

	logger  *slog.Logger
	dataDir string
	closed  atomic.Bool
	mu      sync.Mutex
}

// New creates a new Client with the given options.
// The background workers are started automatically.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	dataDir, err := config.PrepareDataDir(cfg.dataDir)
	if err != nil {
		return nil, err
	}

	dbURL := cfg.dbURL
	if dbURL == "" {
		dbURL = "sqlite:///" + filepath.Join(dataDir, "adgen.db")
	}

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	// Object storage: explicit store wins, then S3, then in-memory.
	blobs := cfg.blobs
	if blobs == nil {
		if cfg.s3.Configured() {
			s3Store, err := storage.NewS3Store(ctx, cfg.s3, logger)
			if err != nil {
				errClose := db.Close()
				return nil, errors.Join(fmt.Errorf("s3 store: %w", err), errClose)
			}
			blobs = s3Store
		} else {
			logger.Warn("no object storage configured, using in-memory store")
			blobs = storage.NewMemoryStore()
		}
	}

	// Generator selection happens once here; the chosen generators are
	// injected and never re-resolved per call.
	generators, err := provider.NewGenerators(ctx, config.NewAppConfig().Apply(
		config.WithGemini(cfg.gemini),
		config.WithTextEndpoint(cfg.textEndpoint),
	))
	if err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("generators: %w", err), errClose)
	}
	if cfg.text != nil {
		generators.Text = cfg.text
	}
	if cfg.image != nil {
		generators.Image = cfg.image
	}

	brandStore := persistence.NewBrandStore(db)
	productStore := persistence.NewProductStore(db)
	campaignStore := persistence.NewCampaignStore(db)
	assetStore := persistence.NewAssetStore(db)
	workflowStore := persistence.NewWorkflowStore(db)
	taskStore := persistence.NewTaskStore(db)

	registry := handler.NewRegistry()
	queue := service.NewQueue(taskStore, logger)

	workers := make([]*service.Worker, 0, cfg.workerCount)
	for range cfg.workerCount {
		worker := service.NewWorker(taskStore, registry, logger)
		if cfg.workerPollPeriod > 0 {
			worker.WithPollPeriod(cfg.workerPollPeriod)
		}
		workers = append(workers, worker)
	}

	client := &Client{
		db:         db,
		blobs:      blobs,
		generators: generators,
		registry:   registry,
		workers:    workers,
		logger:     logger,
		dataDir:    dataDir,
	}

	client.Brands = service.NewBrands(brandStore, logger)
	client.Products = service.NewProducts(productStore, logger)
	client.Campaigns = service.NewCampaigns(campaignStore, brandStore, productStore, assetStore, blobs, logger)
	client.Assets = service.NewAssets(assetStore, blobs, logger)
	client.Workflows = service.NewWorkflows(workflowStore, campaignStore, queue, logger)
	client.Bundles = service.NewBundle(campaignStore, assetStore, blobs, logger)
	client.Tasks = queue

	client.registerHandlers()

	for _, worker := range workers {
		worker.Start(ctx)
	}

	return client, nil
}

// Close releases all resources and stops the background workers.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, worker := range c.workers {
		worker.Stop()
	}

	if err := c.generators.Close(); err != nil {
		c.logger.Error("failed to close generators", slog.Any("error", err))
	}

	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	c.logger.Info("adgen client closed")
	return nil
}

// ProcessPending drains the task queue synchronously, bypassing the
// polling workers. Intended for tests and one-shot CLI runs.
func (c *Client) ProcessPending(ctx context.Context) error {
	if len(c.workers) == 0 {
		return nil
	}
	for {
		processed, err := c.workers[0].ProcessOne(ctx)
		if err != nil {
			return err
		}
		if !processed {
			return nil
		}
	}
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// DataDir returns the resolved data directory.
func (c *Client) DataDir() string {
	return c.dataDir
}

// ObjectStore returns the configured blob store.
func (c *Client) ObjectStore() storage.ObjectStore {
	return c.blobs
}
