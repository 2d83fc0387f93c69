package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quiztime/internal/quiz"
	"github.com/abhisek/quiztime/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently finished quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		sessions, err := s.EventRepo().RecentSessions(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		printSessions(cmd.OutOrStdout(), sessions)
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show every answer given in one session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		answers, err := s.EventRepo().SessionAnswers(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("query answers: %w", err)
		}
		if len(answers) == 0 {
			return fmt.Errorf("session %s not found", args[0])
		}
		printAnswers(cmd.OutOrStdout(), answers)
		return nil
	},
}

func printSessions(w io.Writer, sessions []store.SessionSummaryRecord) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No finished quizzes recorded.")
		return
	}

	fmt.Fprintf(w, "%-36s  %-19s  %-24s  %-7s  %-7s  %s\n",
		"Session", "Finished", "Quiz", "Score", "Grade", "Passes")
	fmt.Fprintln(w, strings.Repeat("─", 110))

	for _, s := range sessions {
		fmt.Fprintf(w, "%-36s  %-19s  %-24s  %-7s  %-7s  %d\n",
			s.SessionID,
			s.Timestamp.Local().Format(timeLayout),
			truncate(s.QuizName, 24),
			fmt.Sprintf("%d/%d", s.CorrectCount, s.QuestionCount),
			quiz.FormatGrade(s.Grade)+"%",
			s.Passes,
		)
	}
}

func printAnswers(w io.Writer, answers []store.AnswerRecord) {
	fmt.Fprintf(w, "Session:   %s\n", answers[0].SessionID)
	fmt.Fprintf(w, "Started:   %s\n", answers[0].Timestamp.Local().Format(timeLayout))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-4s  %-3s  %-12s  %-2s  %-16s  %-16s  %s\n",
		"Pass", "Q", "Kind", "", "Response", "Correct", "Question")
	fmt.Fprintln(w, strings.Repeat("─", 100))

	for _, a := range answers {
		ok := "✓"
		if !a.Correct {
			ok = "✗"
		}
		fmt.Fprintf(w, "%-4d  %-3d  %-12s  %-2s  %-16s  %-16s  %s\n",
			a.Pass,
			a.QuestionNumber,
			a.Kind,
			ok,
			truncate(a.Response, 16),
			truncate(a.CorrectAnswer, 16),
			a.Description,
		)
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show (0 = all)")

	historyCmd.AddCommand(historyShowCmd)
}
