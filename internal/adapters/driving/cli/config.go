package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/vita-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change configuration stored in ~/.vita/config.toml.

Common keys:
  telemetry.access_token   personal access token for your wearable's API
  openai.api_key           OpenAI API key for embeddings and answers
  embedding.provider       "openai" (default) or "ollama"
  sync_days                default sync window in days
  ask_k                    number of context chunks retrieved per question`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// secretKeys are masked when displayed.
var secretKeys = map[string]bool{
	file.KeyTelemetryToken: true,
	file.KeyOpenAIKey:      true,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	keys := []string{
		file.KeyUserID,
		file.KeyTelemetryToken,
		file.KeyTelemetryBaseURL,
		file.KeyOpenAIKey,
		file.KeyEmbeddingProvider,
		file.KeyEmbeddingModel,
		file.KeyLLMModel,
		file.KeySyncDays,
		file.KeyAskK,
	}
	sort.Strings(keys)

	for _, key := range keys {
		val, ok := configStore.Get(key)
		if !ok {
			cmd.Printf("  %-24s (not set)\n", key)
			continue
		}
		display := fmt.Sprintf("%v", val)
		if secretKeys[key] {
			display = maskSecret(display)
		}
		cmd.Printf("  %-24s %s\n", key, display)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	// Integers and booleans are stored typed so GetInt/GetBool work.
	var value any = raw
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		value = n
	} else if b, err := strconv.ParseBool(raw); err == nil {
		value = b
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("saving configuration: %w", err)
	}

	display := raw
	if secretKeys[key] {
		display = maskSecret(raw)
	}
	cmd.Printf("Set %s = %s\n", key, display)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	cmd.Println(configStore.Path())
	return nil
}

// maskSecret hides all but the edges of a secret value.
func maskSecret(value string) string {
	value = strings.TrimSpace(value)
	if len(value) <= 8 {
		return "****"
	}
	return value[:4] + "..." + value[len(value)-4:]
}
