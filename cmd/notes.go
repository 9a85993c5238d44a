package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"studyforge/internal/llm"
	"studyforge/internal/notes"
)

var notesCmd = &cobra.Command{
	Use:   "notes <file>",
	Short: "Generate study notes from material",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readMaterial(args[0])
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.RequestLog())
		if err != nil {
			return fmt.Errorf("completion provider not configured: %w", err)
		}

		result, err := notes.NewService(provider, notes.DefaultConfig()).Generate(cmd.Context(), text)
		if err != nil {
			return err
		}

		fmt.Println("Summary")
		fmt.Println(result.Summary)
		printSection("Key concepts", result.KeyConcepts)
		printSection("Visual suggestions", result.VisualSuggestions)
		printSection("Notable insights", result.NotableInsights)
		return nil
	},
}

func printSection(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Println("\n" + title)
	for _, item := range items {
		fmt.Println("-", item)
	}
}
