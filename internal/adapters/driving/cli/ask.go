package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

var askShowContext bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about your health data",
	Long: `Answers a natural-language question using your synced telemetry.
The most relevant daily records are retrieved from the local index and
handed to the configured LLM as context.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askShowContext, "show-context", false, "print the retrieved context chunks")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if askService == nil {
		return errors.New("ask service not configured")
	}

	question := strings.Join(args, " ")
	answer, err := askService.Ask(context.Background(), question)
	if err != nil {
		if errors.Is(err, domain.ErrIndexUnavailable) || errors.Is(err, domain.ErrLLMUnavailable) {
			return errors.New("asking requires an OpenAI key or a local Ollama provider: run 'vita config set openai.api_key <key>'")
		}
		return fmt.Errorf("ask failed: %w", err)
	}

	if askShowContext && len(answer.Context) > 0 {
		cmd.Println("Context:")
		for _, hit := range answer.Context {
			cmd.Printf("  [%s, %s] (%.3f)\n", hit.Chunk.Day, hit.Chunk.Kind, hit.Score)
		}
		cmd.Println()
	}

	cmd.Println(answer.Text)
	return nil
}
