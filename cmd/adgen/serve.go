package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/adgenhq/adgen"
	"github.com/adgenhq/adgen/infrastructure/api"
	"github.com/adgenhq/adgen/internal/config"
	"github.com/adgenhq/adgen/internal/log"
)

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST                 Server host to bind to (default: 0.0.0.0)
  PORT                 Server port to listen on (default: 8080)
  DATA_DIR             Data directory (default: ~/.adgen)
  DB_URL               Database URL (default: sqlite:///{data_dir}/adgen.db)
  LOG_LEVEL            Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT           Log format: pretty, json (default: pretty)
  WORKER_COUNT         Background worker goroutines (default: 1)

  GEMINI_API_KEY       Gemini API key (enables Gemini text + image generation)
  GEMINI_TEXT_MODEL    Gemini text model (default: gemini-2.0-flash)
  GEMINI_IMAGE_MODEL   Gemini image model

  TEXT_ENDPOINT_*      OpenAI-compatible text endpoint (used when Gemini is unset)
    BASE_URL           Base URL (e.g., https://api.openai.com/v1)
    MODEL              Model identifier (default: gpt-4o-mini)
    API_KEY            API key for authentication
    TIMEOUT            Request timeout in seconds (default: 60)

  S3_BUCKET            S3 bucket for creatives (in-memory store when unset)
  S3_REGION            S3 region (default: us-east-1)
  S3_ENDPOINT          Custom endpoint for S3-compatible stores (e.g., MinIO)
  S3_ACCESS_KEY_ID     Static credentials (falls back to the default chain)
  S3_SECRET_ACCESS_KEY
  S3_PRESIGN_TTL_SECONDS  Presigned URL lifetime (default: 3600)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	// Flags take precedence over env vars
	cfg = applyServeOverrides(cfg, host, port)
	addr := cfg.Addr()

	logger := log.Configure(cfg)
	slogger := logger.Slog()

	opts := append(adgen.FromAppConfig(cfg), adgen.WithLogger(slogger))

	slogger.Info("starting adgen",
		slog.String("version", version),
		slog.String("addr", addr),
		slog.String("data_dir", cfg.DataDir()),
	)

	client, err := adgen.New(opts...)
	if err != nil {
		return fmt.Errorf("create adgen client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close adgen client", slog.Any("error", err))
		}
	}()

	apiServer := api.NewAPIServer(client)

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		slogger.Info("shutting down server")
		cancel()
		if err := apiServer.Shutdown(ctx); err != nil {
			slogger.Error("shutdown error", slog.Any("error", err))
		}
	}()

	if err := apiServer.ListenAndServe(addr); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// applyServeOverrides applies command line flag overrides to the config.
func applyServeOverrides(cfg config.AppConfig, host string, port int) config.AppConfig {
	var opts []config.AppConfigOption

	if host != "" {
		opts = append(opts, config.WithHost(host))
	}
	if port != 0 {
		opts = append(opts, config.WithPort(port))
	}

	return cfg.Apply(opts...)
}
