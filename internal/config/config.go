package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LogFormat controls how log output is rendered.
type LogFormat string

const (
	// LogFormatPretty renders human-readable terminal output.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON renders one JSON object per line.
	LogFormatJSON LogFormat = "json"
)

// ParseLogFormat converts a string into a LogFormat, defaulting to pretty.
func ParseLogFormat(s string) LogFormat {
	if strings.EqualFold(s, string(LogFormatJSON)) {
		return LogFormatJSON
	}
	return LogFormatPretty
}

// Defaults applied before environment overrides.
const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8080
	DefaultLogLevel    = "INFO"
	DefaultWorkerCount = 1
)

// EndpointConfig holds settings for an OpenAI-compatible text endpoint.
type EndpointConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout float64
}

// Configured reports whether the endpoint has enough settings to be used.
func (e EndpointConfig) Configured() bool {
	return e.BaseURL != "" || e.APIKey != ""
}

// GeminiConfig holds settings for the Gemini provider.
type GeminiConfig struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

// Configured reports whether the Gemini provider can be used.
func (g GeminiConfig) Configured() bool {
	return g.APIKey != ""
}

// S3Config holds settings for the object store.
type S3Config struct {
	Bucket            string
	Region            string
	Endpoint          string
	AccessKeyID       string
	SecretAccessKey   string
	PresignTTLSeconds int
}

// Configured reports whether real S3 storage can be used.
func (s S3Config) Configured() bool {
	return s.Bucket != ""
}

// AppConfig is the resolved application configuration. Fields are private;
// construct with NewAppConfig and adjust with AppConfigOption values.
type AppConfig struct {
	host         string
	port         int
	dataDir      string
	dbURL        string
	logLevel     string
	logFormat    LogFormat
	workerCount  int
	textEndpoint EndpointConfig
	gemini       GeminiConfig
	s3           S3Config
}

// DefaultDataDir returns the default data directory (~/.adgen).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".adgen"
	}
	return filepath.Join(home, ".adgen")
}

// NewAppConfig returns an AppConfig populated with defaults.
func NewAppConfig() AppConfig {
	dataDir := DefaultDataDir()
	return AppConfig{
		host:        DefaultHost,
		port:        DefaultPort,
		dataDir:     dataDir,
		dbURL:       "sqlite:///" + filepath.Join(dataDir, "adgen.db"),
		logLevel:    DefaultLogLevel,
		logFormat:   LogFormatPretty,
		workerCount: DefaultWorkerCount,
	}
}

// AppConfigOption mutates an AppConfig during construction.
type AppConfigOption func(*AppConfig)

// Apply returns a copy of the config with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithHost sets the bind host.
func WithHost(host string) AppConfigOption { return func(c *AppConfig) { c.host = host } }

// WithPort sets the listen port.
func WithPort(port int) AppConfigOption { return func(c *AppConfig) { c.port = port } }

// WithDataDir sets the data directory and rebases the default database
// path onto it when the database URL has not been overridden.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) {
		defaultDB := "sqlite:///" + filepath.Join(c.dataDir, "adgen.db")
		c.dataDir = dir
		if c.dbURL == defaultDB {
			c.dbURL = "sqlite:///" + filepath.Join(dir, "adgen.db")
		}
	}
}

// WithDBURL sets the database connection URL.
func WithDBURL(url string) AppConfigOption { return func(c *AppConfig) { c.dbURL = url } }

// WithLogLevel sets the log verbosity.
func WithLogLevel(level string) AppConfigOption { return func(c *AppConfig) { c.logLevel = level } }

// WithLogFormat sets the log output format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithWorkerCount sets the number of queue workers.
func WithWorkerCount(n int) AppConfigOption { return func(c *AppConfig) { c.workerCount = n } }

// WithTextEndpoint sets the OpenAI-compatible text endpoint settings.
func WithTextEndpoint(e EndpointConfig) AppConfigOption {
	return func(c *AppConfig) { c.textEndpoint = e }
}

// WithGemini sets the Gemini provider settings.
func WithGemini(g GeminiConfig) AppConfigOption { return func(c *AppConfig) { c.gemini = g } }

// WithS3 sets the object storage settings.
func WithS3(s S3Config) AppConfigOption { return func(c *AppConfig) { c.s3 = s } }

// Addr returns the host:port address to bind the HTTP server to.
func (c AppConfig) Addr() string { return fmt.Sprintf("%s:%d", c.host, c.port) }

// Host returns the bind host.
func (c AppConfig) Host() string { return c.host }

// Port returns the listen port.
func (c AppConfig) Port() int { return c.port }

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// LogLevel returns the log verbosity level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// WorkerCount returns the number of queue workers.
func (c AppConfig) WorkerCount() int { return c.workerCount }

// TextEndpoint returns the text generation endpoint settings.
func (c AppConfig) TextEndpoint() EndpointConfig { return c.textEndpoint }

// Gemini returns the Gemini provider settings.
func (c AppConfig) Gemini() GeminiConfig { return c.gemini }

// S3 returns the object storage settings.
func (c AppConfig) S3() S3Config { return c.s3 }

// PrepareDataDir creates the data directory if it does not exist and returns it.
func PrepareDataDir(dataDir string) (string, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dataDir, nil
}
