package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/oralexam/internal/console"
	"github.com/abhisek/oralexam/internal/i18n"
	"github.com/abhisek/oralexam/internal/profile"
)

var resetCmd = &cobra.Command{
	Use:   "reset <student>",
	Short: "Delete a student's profile and stored sessions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := prepare(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		name := args[0]
		data := map[string]any{"Name": name}
		con := console.NewLineConsole(cmd.InOrStdin(), cmd.OutOrStdout(), colorEnabled(v))

		if !v.GetBool("yes") {
			answer, err := con.Ask(ctx, i18n.Td(ctx, "ResetConfirm", data))
			if err != nil || !strings.EqualFold(strings.TrimSpace(answer), "y") {
				con.Print(console.Plain, i18n.T(ctx, "ResetAborted"))
				return nil
			}
		}

		deleted, err := profile.NewFileStore(v.GetString("profiles-dir")).Delete(name)
		if err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		if deleted {
			con.Print(console.Success, i18n.Td(ctx, "ResetDone", data))
		} else {
			con.Print(console.Plain, i18n.Td(ctx, "ResetMissing", data))
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		n, err := s.Sessions().DeleteStudent(ctx, name)
		if err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		if n > 0 {
			con.Print(console.Dim, i18n.Tp(ctx, "SessionsRemoved", int(n)))
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
