package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docqa/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "docqa",
	Short: "Turn documents into a topic-organized question-answer knowledge base",
	Long: `docqa ingests a document, generates grounded question-answer pairs per
topic, and serves them through an interactive menu with a generative
fallback for questions the document does not answer.

Example usage:
  docqa ingest report.txt   # Build the knowledge base for one document
  docqa chat report.txt     # Ingest and chat over the result
  docqa list                # Show ingested documents`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			wd, werr := os.Getwd()
			if werr != nil {
				return fmt.Errorf("failed to get working directory: %w", werr)
			}
			cfg, err = config.LoadFromDir(wd)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./docqa.yaml)")
}

func GetConfig() *config.Config {
	return cfg
}
