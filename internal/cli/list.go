package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingested documents",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	namespaces, err := st.ListNamespaces()
	if err != nil {
		return fmt.Errorf("failed to list namespaces: %w", err)
	}
	if len(namespaces) == 0 {
		fmt.Println("No documents ingested yet.")
		return nil
	}

	for _, ns := range namespaces {
		meta, err := st.Metadata(ns)
		if err != nil {
			fmt.Printf("%s (no metadata)\n", ns)
			continue
		}
		fmt.Printf("%s\n", ns)
		fmt.Printf("  Title:     %s\n", meta.DocumentTitle)
		fmt.Printf("  Chunks:    %d\n", meta.TotalChunks)
		fmt.Printf("  QA pairs:  %d\n", meta.TotalQAPairs)
	}
	return nil
}
