// Package cli implements the nexusctl command tree.
package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	nexus "github.com/nexus-ai/nexus-go"
	"github.com/nexus-ai/nexus-go/internal/config"
	"github.com/nexus-ai/nexus-go/pkg/logger"
)

var (
	flagConfig  string
	flagBaseURL string
	flagToken   string
	flagJSON    bool
)

// Execute runs the nexusctl root command.
func Execute() {
	root := &cobra.Command{
		Use:           "nexusctl",
		Short:         "Manage agents, datasets and chatrooms on a Nexus platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", defaultConfigPath(), "path to the nexusctl config file")
	root.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "platform base URL (overrides config)")
	root.PersistentFlags().StringVar(&flagToken, "token", "", "access token (overrides config)")
	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "print raw JSON output")

	root.AddCommand(agentCmd())
	root.AddCommand(datasetCmd())
	root.AddCommand(chatroomCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	if env := os.Getenv("NEXUSCTL_CONFIG"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.nexusctl.yaml"
}

// newClient loads configuration, initialises logging and builds the API
// client shared by all subcommands.
func newClient() (*nexus.Client, error) {
	path := flagConfig
	if _, err := os.Stat(path); err != nil {
		// A missing default config is fine; flags may carry everything.
		path = ""
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flagBaseURL != "" {
		cfg.API.BaseURL = flagBaseURL
	}
	if flagToken != "" {
		cfg.API.Token = flagToken
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := logger.Init(logger.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Outputs: cfg.Log.Outputs,
	}); err != nil {
		return nil, err
	}

	client := nexus.NewClient(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout()})
	if token := cfg.API.ResolveToken(); token != "" {
		client.SetAccessToken(token)
	}
	logger.Named("cli").Debug("client configured", "base_url", cfg.API.BaseURL)
	return client, nil
}

func printResult(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}
