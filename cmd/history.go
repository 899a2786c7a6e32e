package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/oralexam/internal/console"
	"github.com/abhisek/oralexam/internal/i18n"
	"github.com/abhisek/oralexam/internal/profile"
	"github.com/abhisek/oralexam/internal/ui/components"
)

var historyCmd = &cobra.Command{
	Use:   "history [student]",
	Short: "Show a student's answered questions, or list known students",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := prepare(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		profiles := profile.NewFileStore(v.GetString("profiles-dir"))
		con := console.NewLineConsole(nil, cmd.OutOrStdout(), colorEnabled(v))

		if len(args) == 0 {
			names, err := profiles.List()
			if err != nil {
				return fmt.Errorf("list profiles: %w", err)
			}
			for _, n := range names {
				con.Print(console.Plain, n)
			}
			return nil
		}

		name := args[0]
		p := profiles.Load(name)
		if len(p.History) == 0 {
			con.Print(console.Plain, i18n.Td(ctx, "HistoryEmpty", map[string]any{"Name": name}))
			return nil
		}

		con.Print(console.Title, i18n.Td(ctx, "HistoryHeader", map[string]any{"Name": p.StudentName}))
		for i, r := range p.History {
			difficulty := "-"
			if r.Difficulty != nil {
				difficulty = r.Difficulty.String()
			}
			con.Print(console.Plain, fmt.Sprintf("%3d. [%-6s] %.2f  %-17s  %s",
				i+1, difficulty, r.Score, r.Evaluation.Title(), truncate(r.Question, 70)))
		}
		con.Print(console.Dim, i18n.Tp(ctx, "HistoryCount", len(p.History)))
		con.Print(console.Plain, i18n.Td(ctx, "HistoryAverage", map[string]any{
			"Average": fmt.Sprintf("%.2f", p.AverageScore()),
		}))
		con.Print(console.Plain, components.ScoreBar{
			Percent: p.AverageScore(),
			Width:   50,
			Plain:   !colorEnabled(v),
		}.View())
		return nil
	},
}
