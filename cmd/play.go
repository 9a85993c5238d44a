package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"studyforge/internal/answers"
	"studyforge/internal/llm"
	"studyforge/internal/quiz"
	"studyforge/internal/session"
	"studyforge/internal/suitability"
)

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Generate a quiz and take it interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetString("difficulty")
		force, _ := cmd.Flags().GetBool("force")
		subject, _ := cmd.Flags().GetString("subject")
		if subject == "" {
			subject = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}

		text, err := readMaterial(args[0])
		if err != nil {
			return err
		}
		if verdict := suitability.Default().Evaluate(text); !verdict.Worthy && !force {
			return fmt.Errorf("material looks unsuitable (confidence %.2f); use --force to play anyway", verdict.Confidence)
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

		fmt.Println("Generating quiz...")
		questions, err := quiz.NewGenerator(provider, quiz.DefaultConfig()).
			Generate(cmd.Context(), text, quiz.Tier(difficulty))
		if err != nil {
			return err
		}

		return runQuiz(cmd, subject, args[0], questions, st.Attempts())
	},
}

func init() {
	playCmd.Flags().String("difficulty", "medium", "Difficulty tier: easy, medium, or hard")
	playCmd.Flags().Bool("force", false, "Play even when the material looks unsuitable")
	playCmd.Flags().String("subject", "", "Subject label for the attempt history (defaults to the file name)")
}

func runQuiz(cmd *cobra.Command, subject, material string, questions []quiz.Question, recorder session.Recorder) error {
	s := session.Start(subject, material, questions, recorder)
	reader := bufio.NewReader(os.Stdin)

	for {
		q, ok := s.Current()
		if !ok {
			break
		}
		answered, total := s.Progress()
		fmt.Printf("\n[%d/%d] %s\n", answered+1, total, q.Prompt)

		given, err := readAnswer(reader, q)
		if err != nil {
			return err
		}
		out, _ := s.Submit(cmd.Context(), given)
		if out.Correct {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Incorrect. The answer is: %s\n", out.Expected)
		}
		if out.Explanation != "" {
			fmt.Println(out.Explanation)
		}
	}

	rec := s.Record()
	fmt.Printf("\nScore: %d/%d (%.0f%%)\n", rec.Score, rec.Total, rec.Percentage)
	for _, a := range rec.Answers {
		mark := "✓"
		if !a.IsCorrect {
			mark = "✗"
		}
		fmt.Printf("%s %s\n", mark, a.Prompt)
		if !a.IsCorrect {
			fmt.Printf("   you said %s, answer was %s\n", a.Given, a.Correct)
		}
	}
	return nil
}

// readAnswer prompts until it gets a usable answer for the question kind.
func readAnswer(reader *bufio.Reader, q quiz.Question) (answers.Value, error) {
	for {
		switch q.Kind {
		case quiz.KindMultipleChoice:
			for i, choice := range q.Choices {
				fmt.Printf("  %d) %s\n", i+1, choice)
			}
			fmt.Print("choice> ")
		case quiz.KindTrueFalse:
			fmt.Print("t/f> ")
		default:
			fmt.Print("answer> ")
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			return answers.Value{}, fmt.Errorf("read answer: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			fmt.Println("please enter an answer")
			continue
		}

		switch q.Kind {
		case quiz.KindMultipleChoice:
			if n, err := strconv.Atoi(line); err == nil {
				if n < 1 || n > len(q.Choices) {
					fmt.Printf("enter a number from 1 to %d\n", len(q.Choices))
					continue
				}
				return answers.Text(q.Choices[n-1]), nil
			}
			return answers.Text(line), nil
		case quiz.KindTrueFalse:
			switch strings.ToLower(line) {
			case "t", "true", "y", "yes":
				return answers.Bool(true), nil
			case "f", "false", "n", "no":
				return answers.Bool(false), nil
			}
			fmt.Println("enter t or f")
			continue
		default:
			return answers.Text(line), nil
		}
	}
}
