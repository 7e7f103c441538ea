package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docqa/internal/adapter/input"
	"docqa/internal/port"
	"docqa/internal/usecase"
)

var chatCmd = &cobra.Command{
	Use:   "chat [path]",
	Short: "Ingest a document and chat over its knowledge base",
	Long: `Ingest a document and start the interactive session: browse topics and
their stored questions, or ask free-text questions. Stored answers are
preferred; questions the document does not answer fall back to the
general-knowledge model.

Examples:
  docqa chat report.txt
  docqa chat             # prompts for the document path`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func newConsole() *input.Console {
	return input.NewConsole(os.Stdin, os.Stdout)
}

// documentPath takes the path from the argument list or prompts for it.
func documentPath(args []string, prompter port.Prompter) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	path, err := prompter.Prompt("Enter document path: ")
	if err != nil || path == "" {
		return "", fmt.Errorf("no document path provided")
	}
	return path, nil
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	console := newConsole()

	path, err := documentPath(args, console)
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ingestor, err := buildIngestor(cfg, console, st)
	if err != nil {
		return err
	}

	result, err := ingestDocument(ingestor, path)
	if err != nil {
		return fmt.Errorf("failed to process document: %w", err)
	}
	printIngestResult(path, result)

	chatLLM, err := buildLLM(cfg.ChatModel)
	if err != nil {
		return fmt.Errorf("failed to create chat model client: %w", err)
	}

	chain := usecase.NewChain(
		usecase.NewStoreResolver(st, result.Namespace),
		usecase.NewLLMResolver(chatLLM),
	)
	session := usecase.NewSession(result.Topics, st, result.Namespace, chain, console, os.Stdout)

	return session.Run()
}
