package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/recap/internal/catalog"
	"github.com/abhisek/recap/internal/grader"
	"github.com/abhisek/recap/internal/srs"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <subject-id> <exercise-id>",
	Short: "Grade a written exercise answer with the configured model",
	Long: "Reads the answer from --answer-file or stdin, scores it against the\n" +
		"exercise rubric, and records the attempt.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		subjectID, exerciseID := args[0], args[1]

		contentDir, err := catalog.DefaultContentDir()
		if err != nil {
			return err
		}
		bank, err := catalog.Load(contentDir)
		if err != nil {
			return fmt.Errorf("load content banks: %w", err)
		}
		ex, ok := bank.Exercise(subjectID, exerciseID)
		if !ok {
			return fmt.Errorf("exercise %s/%s not found in content banks", subjectID, exerciseID)
		}

		answer, err := readAnswer(cmd)
		if err != nil {
			return err
		}

		client, err := grader.NewClientFromEnv(cmd.Context())
		if err != nil {
			return fmt.Errorf("configure grading model: %w", err)
		}

		result, err := grader.New(client).Grade(cmd.Context(), ex, answer)
		if err != nil {
			return err
		}

		fmt.Printf("Score: %d/100\n%s\n\n", result.Score, result.Feedback)

		st, svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		item, err := svc.RecordAttempt(cmd.Context(), srs.AttemptOutcome{
			SubjectID: subjectID,
			ItemID:    exerciseID,
			ItemType:  srs.ItemExercise,
			Score:     result.Score,
			Timestamp: time.Now(),
		})
		if err != nil {
			return err
		}

		printSchedule(item)
		return nil
	},
}

func init() {
	gradeCmd.Flags().String("answer-file", "", "Read the answer from a file instead of stdin")
}

func readAnswer(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("answer-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read answer file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read answer from stdin: %w", err)
	}
	return string(data), nil
}
