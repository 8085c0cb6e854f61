// Package main is the entry point for the adgen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adgenhq/adgen/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adgen",
		Short: "Adgen creative automation server",
		Long:  `Adgen stores brand identities, products, and campaign briefs, and generates social-media creatives for every product and aspect ratio a campaign needs.`,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
