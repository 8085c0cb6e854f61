// Package config provides application configuration.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Nested structs use underscore delimiter (e.g., TEXT_ENDPOINT_BASE_URL).
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.adgen
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/adgen.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// WorkerCount is the number of background queue workers.
	// Env: WORKER_COUNT (default: 1)
	WorkerCount int `envconfig:"WORKER_COUNT" default:"1"`

	// TextEndpoint configures the OpenAI-compatible text generation service.
	TextEndpoint EndpointEnv `envconfig:"TEXT_ENDPOINT"`

	// Gemini configures the Google Gemini provider.
	Gemini GeminiEnv `envconfig:"GEMINI"`

	// S3 configures object storage for creative assets.
	S3 S3Env `envconfig:"S3"`
}

// EndpointEnv holds environment configuration for an OpenAI-compatible endpoint.
type EndpointEnv struct {
	// BaseURL is the base URL for the endpoint.
	// Env: TEXT_ENDPOINT_BASE_URL
	BaseURL string `envconfig:"BASE_URL"`

	// Model is the model identifier.
	// Env: TEXT_ENDPOINT_MODEL (default: gpt-4o-mini)
	Model string `envconfig:"MODEL" default:"gpt-4o-mini"`

	// APIKey is the API key for authentication.
	// Env: TEXT_ENDPOINT_API_KEY
	APIKey string `envconfig:"API_KEY"`

	// Timeout is the request timeout in seconds.
	// Env: TEXT_ENDPOINT_TIMEOUT (default: 60)
	Timeout float64 `envconfig:"TIMEOUT" default:"60"`
}

// GeminiEnv holds environment configuration for the Gemini provider.
type GeminiEnv struct {
	// APIKey enables the Gemini provider when set.
	// Env: GEMINI_API_KEY
	APIKey string `envconfig:"API_KEY"`

	// TextModel is the Gemini model used for copy generation.
	// Env: GEMINI_TEXT_MODEL (default: gemini-2.0-flash)
	TextModel string `envconfig:"TEXT_MODEL" default:"gemini-2.0-flash"`

	// ImageModel is the Gemini model used for creative image generation.
	// Env: GEMINI_IMAGE_MODEL (default: gemini-2.0-flash-exp-image-generation)
	ImageModel string `envconfig:"IMAGE_MODEL" default:"gemini-2.0-flash-exp-image-generation"`
}

// S3Env holds environment configuration for object storage.
type S3Env struct {
	// Bucket is the bucket creative assets are written to.
	// Env: S3_BUCKET
	Bucket string `envconfig:"BUCKET"`

	// Region is the AWS region.
	// Env: S3_REGION (default: us-east-1)
	Region string `envconfig:"REGION" default:"us-east-1"`

	// Endpoint overrides the S3 endpoint, for MinIO and other
	// S3-compatible stores.
	// Env: S3_ENDPOINT
	Endpoint string `envconfig:"ENDPOINT"`

	// AccessKeyID is the static access key. When empty the default AWS
	// credential chain is used.
	// Env: S3_ACCESS_KEY_ID
	AccessKeyID string `envconfig:"ACCESS_KEY_ID"`

	// SecretAccessKey is the static secret key.
	// Env: S3_SECRET_ACCESS_KEY
	SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`

	// PresignTTLSeconds is the lifetime of presigned download URLs.
	// Env: S3_PRESIGN_TTL_SECONDS (default: 3600)
	PresignTTLSeconds int `envconfig:"PRESIGN_TTL_SECONDS" default:"3600"`
}

// LoadFromEnv loads configuration from environment variables with no prefix.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
// For example, prefix "ADGEN" would require ADGEN_DB_URL instead of DB_URL.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig, applying environment
// overrides on top of defaults.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.Host != "" {
		cfg = cfg.Apply(WithHost(e.Host))
	}
	if e.Port != 0 {
		cfg = cfg.Apply(WithPort(e.Port))
	}
	if e.DataDir != "" {
		cfg = cfg.Apply(WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		cfg = cfg.Apply(WithDBURL(e.DBURL))
	}
	if e.LogLevel != "" {
		cfg = cfg.Apply(WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = cfg.Apply(WithLogFormat(ParseLogFormat(e.LogFormat)))
	}
	if e.WorkerCount > 0 {
		cfg = cfg.Apply(WithWorkerCount(e.WorkerCount))
	}

	cfg = cfg.Apply(
		WithTextEndpoint(EndpointConfig{
			BaseURL: e.TextEndpoint.BaseURL,
			Model:   e.TextEndpoint.Model,
			APIKey:  e.TextEndpoint.APIKey,
			Timeout: e.TextEndpoint.Timeout,
		}),
		WithGemini(GeminiConfig{
			APIKey:     e.Gemini.APIKey,
			TextModel:  e.Gemini.TextModel,
			ImageModel: e.Gemini.ImageModel,
		}),
		WithS3(S3Config{
			Bucket:            e.S3.Bucket,
			Region:            e.S3.Region,
			Endpoint:          e.S3.Endpoint,
			AccessKeyID:       e.S3.AccessKeyID,
			SecretAccessKey:   e.S3.SecretAccessKey,
			PresignTTLSeconds: e.S3.PresignTTLSeconds,
		}),
	)

	return cfg
}
