package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/oralexam/internal/i18n"
	"github.com/abhisek/oralexam/internal/session"
)

var resultsCmd = &cobra.Command{
	Use:   "results [session-id]",
	Short: "List stored exam sessions, or show one session's answers",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := prepare(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		repo := s.Sessions()
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			recs, err := repo.SessionRecords(ctx, args[0])
			if err != nil {
				return fmt.Errorf("query records: %w", err)
			}
			if len(recs) == 0 {
				return fmt.Errorf("session %s not found or empty", args[0])
			}
			sep := strings.Repeat("─", 60)
			for _, r := range recs {
				fmt.Fprintln(out, sep)
				fmt.Fprintf(out, "#%d  %s  score %.2f  (%s)\n", r.Position, r.Evaluation, r.Score, r.Difficulty)
				fmt.Fprintf(out, "Q: %s\n", r.Question)
				fmt.Fprintf(out, "A: %s\n", r.StudentAnswer)
				fmt.Fprintf(out, "Feedback: %s\n", r.Feedback)
			}
			return nil
		}

		sessions, err := repo.ListSessions(ctx, v.GetString("student"), v.GetInt("limit"))
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Fprintln(out, i18n.T(ctx, "ResultsEmpty"))
			return nil
		}

		fmt.Fprintf(out, "%-36s  %-16s  %-18s  %-20s  %5s  %7s  %s\n",
			"ID", "Timestamp", "Student", "Domain", "Qs", "Score", "Grade")
		fmt.Fprintln(out, strings.Repeat("─", 120))
		for _, ss := range sessions {
			grade := "-"
			if ss.Questions > 0 {
				grade = string(session.GradeFor(ss.TotalScore / float64(ss.Questions) * 100))
			}
			fmt.Fprintf(out, "%-36s  %-16s  %-18s  %-20s  %5d  %7.2f  %s\n",
				ss.ID,
				ss.StartedAt.Local().Format("2006-01-02 15:04"),
				truncate(ss.StudentName, 18),
				truncate(ss.Domain, 20),
				ss.Questions,
				ss.TotalScore,
				grade,
			)
		}
		return nil
	},
}

func init() {
	resultsCmd.Flags().String("student", "", "Only sessions of this student")
	resultsCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show (0 = all)")
}
