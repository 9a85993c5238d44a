package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"studyforge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studyforge",
	Short: "Turn study material into quizzes and notes",
	Long:  "StudyForge checks whether study material is quiz-worthy, generates quizzes and study notes through an AI provider, and tracks your attempt history.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYFORGE_DB env var)")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(attemptsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDYFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// readMaterial loads the study material from a file path, or stdin for "-".
func readMaterial(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read material: %w", err)
	}
	return string(b), nil
}
