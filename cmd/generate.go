package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"studyforge/internal/llm"
	"studyforge/internal/quiz"
	"studyforge/internal/suitability"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate a quiz from study material",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetString("difficulty")
		force, _ := cmd.Flags().GetBool("force")

		text, err := readMaterial(args[0])
		if err != nil {
			return err
		}

		// The suitability verdict is advisory; --force overrides it.
		if verdict := suitability.Default().Evaluate(text); !verdict.Worthy && !force {
			var b strings.Builder
			fmt.Fprintf(&b, "material looks unsuitable (confidence %.2f)", verdict.Confidence)
			for _, reason := range verdict.Reasons {
				fmt.Fprintf(&b, "\n- %s", reason)
			}
			b.WriteString("\nuse --force to generate anyway")
			return fmt.Errorf("%s", b.String())
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

		gen := quiz.NewGenerator(provider, quiz.DefaultConfig())
		questions, err := gen.Generate(cmd.Context(), text, quiz.Tier(difficulty))
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(questions)
	},
}

func init() {
	generateCmd.Flags().String("difficulty", "medium", "Difficulty tier: easy, medium, or hard")
	generateCmd.Flags().Bool("force", false, "Generate even when the material looks unsuitable")
}
