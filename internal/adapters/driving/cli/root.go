// Package cli provides the cobra command tree for the vita binary.
// Services are wired from configuration in Execute; commands only
// talk to driving ports.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/vita-cli/internal/adapters/driven/config/file"
	embedollama "github.com/meridian-labs/vita-cli/internal/adapters/driven/embedding/ollama"
	embedopenai "github.com/meridian-labs/vita-cli/internal/adapters/driven/embedding/openai"
	llmopenai "github.com/meridian-labs/vita-cli/internal/adapters/driven/llm/openai"
	"github.com/meridian-labs/vita-cli/internal/adapters/driven/storage/sqlite"
	"github.com/meridian-labs/vita-cli/internal/chunker"
	"github.com/meridian-labs/vita-cli/internal/core/ports/driven"
	"github.com/meridian-labs/vita-cli/internal/core/ports/driving"
	"github.com/meridian-labs/vita-cli/internal/core/services"
	"github.com/meridian-labs/vita-cli/internal/logger"
	"github.com/meridian-labs/vita-cli/internal/telemetry"
)

// version is set at build time via -ldflags.
var version = "0.1.0"

// Services wired in Execute. Commands check for nil so that tests can
// inject fakes and unconfigured installs fail with a useful message.
var (
	configStore      driven.ConfigStore
	dataStore        *sqlite.Store
	telemetrySource  driven.TelemetrySource
	syncOrchestrator driving.SyncOrchestrator
	askService       driving.AskService
	insightsService  driving.InsightsService
	currentUserID    string
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "vita",
	Short: "Sync, search, and question your wearable health data",
	Long: `Vita pulls daily telemetry (sleep, readiness, activity, SpO2,
heart rate) from your wearable's API into a local store, indexes it
semantically, and answers questions about it using retrieval-augmented
generation. All data stays on your machine.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the adapters from configuration and runs the root command.
func Execute() error {
	if err := initServices(); err != nil {
		return err
	}
	defer closeServices()

	return rootCmd.Execute()
}

// initServices builds the adapter graph from the config file. Optional
// capabilities (telemetry source, embeddings, LLM) stay nil when not
// configured; the commands that need them report what is missing.
func initServices() error {
	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	configStore = cfg

	currentUserID = cfg.GetString(file.KeyUserID)
	if currentUserID == "" {
		currentUserID = "local"
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening data store: %w", err)
	}
	dataStore = store

	apiKey := cfg.GetString(file.KeyOpenAIKey)

	var embedder driven.EmbeddingService
	switch provider := cfg.GetString(file.KeyEmbeddingProvider); provider {
	case "ollama":
		embedder = embedollama.NewEmbeddingService(embedollama.Config{
			Model: cfg.GetString(file.KeyEmbeddingModel),
		})
	case "", "openai":
		if apiKey != "" {
			embedder, err = embedopenai.NewEmbeddingService(embedopenai.Config{
				APIKey: apiKey,
				Model:  cfg.GetString(file.KeyEmbeddingModel),
			})
			if err != nil {
				return fmt.Errorf("configuring embeddings: %w", err)
			}
		}
	default:
		return fmt.Errorf("unknown embedding provider %q", provider)
	}

	var index driven.SemanticIndex
	if embedder != nil {
		index = store.SemanticIndex(embedder)
	}

	if token := cfg.GetString(file.KeyTelemetryToken); token != "" {
		client, err := telemetry.NewClient(telemetry.Config{
			AccessToken: token,
			UserID:      currentUserID,
			BaseURL:     cfg.GetString(file.KeyTelemetryBaseURL),
		})
		if err != nil {
			return fmt.Errorf("configuring telemetry client: %w", err)
		}
		telemetrySource = client
	}

	var llm driven.LLMService
	if apiKey != "" {
		llm, err = llmopenai.NewLLMService(llmopenai.Config{
			APIKey: apiKey,
			Model:  cfg.GetString(file.KeyLLMModel),
		})
		if err != nil {
			return fmt.Errorf("configuring LLM: %w", err)
		}
	}

	recordStore := store.RecordStore()
	if telemetrySource != nil {
		syncOrchestrator = services.NewSyncOrchestrator(telemetrySource, recordStore, chunker.New(), index)
	}
	askService = services.NewAskService(index, llm, cfg.GetInt(file.KeyAskK))
	insightsService = services.NewInsightsService(recordStore)

	return nil
}

// closeServices releases adapter resources after the command finishes.
func closeServices() {
	if telemetrySource != nil {
		telemetrySource.Close() //nolint:errcheck
	}
	if dataStore != nil {
		dataStore.Close() //nolint:errcheck
	}
}
