package adgen

import (
	"log/slog"
	"time"

	"github.com/adgenhq/adgen/infrastructure/provider"
	"github.com/adgenhq/adgen/infrastructure/storage"
	"github.com/adgenhq/adgen/internal/config"
)

// clientConfig holds configuration for Client construction.
// Use newClientConfig() to create with defaults from internal/config.
type clientConfig struct {
	dbURL            string
	dataDir          string
	logger           *slog.Logger
	blobs            storage.ObjectStore
	text             provider.TextGenerator
	image            provider.ImageGenerator
	s3               config.S3Config
	gemini           config.GeminiConfig
	textEndpoint     config.EndpointConfig
	workerCount      int
	workerPollPeriod time.Duration
}

// newClientConfig creates a clientConfig with defaults from internal/config.
func newClientConfig() *clientConfig {
	return &clientConfig{
		dataDir:     config.DefaultDataDir(),
		workerCount: 1,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.dbURL = "sqlite:///" + path
	}
}

// WithPostgres configures PostgreSQL as the database.
func WithPostgres(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithDatabaseURL sets the database URL directly (sqlite:/// or postgres://).
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithDataDir sets the data directory for database and local storage.
func WithDataDir(dir string) Option {
	return func(c *clientConfig) {
		c.dataDir = dir
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithS3 configures S3-compatible object storage for creatives.
func WithS3(cfg config.S3Config) Option {
	return func(c *clientConfig) {
		c.s3 = cfg
	}
}

// WithObjectStore sets a custom object store, overriding S3 configuration.
func WithObjectStore(store storage.ObjectStore) Option {
	return func(c *clientConfig) {
		c.blobs = store
	}
}

// WithGemini configures Gemini for text and image generation.
func WithGemini(cfg config.GeminiConfig) Option {
	return func(c *clientConfig) {
		c.gemini = cfg
	}
}

// WithGeminiKey configures Gemini with default models.
func WithGeminiKey(apiKey string) Option {
	return func(c *clientConfig) {
		c.gemini = config.GeminiConfig{APIKey: apiKey}
	}
}

// WithTextEndpoint configures an OpenAI-compatible endpoint for text
// generation. Ignored when Gemini is configured.
func WithTextEndpoint(cfg config.EndpointConfig) Option {
	return func(c *clientConfig) {
		c.textEndpoint = cfg
	}
}

// WithTextGenerator sets a custom text generator, overriding provider
// selection.
func WithTextGenerator(g provider.TextGenerator) Option {
	return func(c *clientConfig) {
		c.text = g
	}
}

// WithImageGenerator sets a custom image generator, overriding provider
// selection.
func WithImageGenerator(g provider.ImageGenerator) Option {
	return func(c *clientConfig) {
		c.image = g
	}
}

// WithWorkerCount sets the number of background worker goroutines.
// Defaults to 1 if not specified.
func WithWorkerCount(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.workerCount = n
		}
	}
}

// WithWorkerPollPeriod sets how often the background workers check for
// new tasks. Defaults to 1 second. Lower values speed up task processing
// at the cost of more frequent polling — useful in tests.
func WithWorkerPollPeriod(d time.Duration) Option {
	return func(c *clientConfig) {
		c.workerPollPeriod = d
	}
}

// FromAppConfig builds client options from a loaded application config.
func FromAppConfig(cfg config.AppConfig) []Option {
	return []Option{
		WithDatabaseURL(cfg.DBURL()),
		WithDataDir(cfg.DataDir()),
		WithS3(cfg.S3()),
		WithGemini(cfg.Gemini()),
		WithTextEndpoint(cfg.TextEndpoint()),
		WithWorkerCount(cfg.WorkerCount()),
	}
}
