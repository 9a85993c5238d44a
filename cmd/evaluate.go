package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"studyforge/internal/suitability"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <file>",
	Short: "Check whether material is worth quizzing on",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readMaterial(args[0])
		if err != nil {
			return err
		}

		verdict, signals := suitability.Default().EvaluateSignals(text)

		status := "not worth quizzing on"
		if verdict.Worthy {
			status = "worth quizzing on"
		}
		fmt.Printf("%s (confidence %.2f)\n", status, verdict.Confidence)
		fmt.Printf("words: %d  academic terms: %d  structure markers: %d  lexical density: %.2f\n",
			signals.WordCount, signals.AcademicHits, signals.StructureHits, signals.LexicalDensity)
		for _, reason := range verdict.Reasons {
			fmt.Println("-", reason)
		}
		return nil
	},
}
