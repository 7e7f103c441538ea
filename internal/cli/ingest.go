package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"docqa/internal/adapter/extract"
	"docqa/internal/domain"
	"docqa/internal/usecase"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [path]",
	Short: "Build the QA knowledge base for a document",
	Long: `Ingest a document: segment it into chunks, classify per-chunk topics,
generate grounded question-answer pairs, and persist them with embeddings.

When path is a directory, every file matching the configured include
patterns is ingested as its own document.

Examples:
  docqa ingest report.txt
  docqa ingest ./docs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	console := newConsole()

	path, err := documentPath(args, console)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
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

	if !info.IsDir() {
		result, err := ingestDocument(ingestor, path)
		if err != nil {
			return err
		}
		printIngestResult(path, result)
		return nil
	}

	walker := extract.NewWalker(cfg.Ingest.Includes, cfg.Ingest.Excludes)
	files, err := walker.Walk(path)
	if err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}
	if len(files) == 0 {
		fmt.Println("No matching documents found.")
		return nil
	}

	for _, file := range files {
		result, err := ingestDocument(ingestor, file)
		if err != nil {
			// One unreadable document does not abort the batch.
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", file, err)
			continue
		}
		printIngestResult(file, result)
	}
	return nil
}

// ingestDocument runs one ingestion with a progress bar over its chunks.
func ingestDocument(ingestor *usecase.IngestUseCase, path string) (*domain.IngestResult, error) {
	fmt.Printf("Processing %s...\n", path)

	var bar *progressbar.ProgressBar
	progress := func(processed, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("Generating questions"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(processed)
	}

	return ingestor.Ingest(path, progress)
}

func printIngestResult(path string, result *domain.IngestResult) {
	fmt.Printf("\nIngestion complete for %s:\n", path)
	fmt.Printf("  Title:      %s\n", result.Title)
	fmt.Printf("  Namespace:  %s\n", result.Namespace)
	fmt.Printf("  Chunks:     %d\n", result.TotalChunks)
	fmt.Printf("  QA pairs:   %d\n", result.TotalQAPairs)
	fmt.Printf("  Topics:     %d\n", len(result.Topics))

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}
}
