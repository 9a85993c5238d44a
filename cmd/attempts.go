package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var attemptsCmd = &cobra.Command{
	Use:   "attempts",
	Short: "Show quiz attempt history and stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		attempts, err := st.Attempts().BySubject(ctx, subject)
		if err != nil {
			return err
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-20s  %-7s  %s\n", "Taken", "Subject", "Score", "Percent")
		for _, a := range attempts {
			fmt.Printf("%-19s  %-20s  %d/%-5d  %.0f%%\n",
				a.TakenAt.Local().Format("2006-01-02 15:04:05"),
				a.SubjectID, a.Score, a.Total, a.Percentage)
		}

		stats, err := st.Attempts().Stats(ctx, subject)
		if err != nil {
			return err
		}
		fmt.Printf("\n%d attempts, mean score %.1f%%\n", stats.TotalAttempts, stats.MeanPercentage)
		for tier, ts := range stats.Tiers {
			fmt.Printf("  %-7s %d/%d correct\n", tier, ts.Correct, ts.Attempted)
		}
		return nil
	},
}

func init() {
	attemptsCmd.Flags().String("subject", "", "Filter by subject label")
}
