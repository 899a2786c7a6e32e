package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/oralexam/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "oralexam",
	Short: "AI oral examiner for the terminal",
	Long: "oralexam asks adaptive questions on a study domain, talks with the student " +
		"until an answer is given, grades it and keeps per-student history.",
	SilenceUsage: true,
	RunE:         runExam,
}

// Execute runs the root command. ctx is cancelled on SIGINT/SIGTERM.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file or postgres DSN (overrides ORALEXAM_DB env var)")
	pf.String("db-driver", "sqlite", "Database driver (sqlite, postgres)")
	pf.String("profiles-dir", "student_profiles", "Directory of student profile files")
	pf.StringP("lang", "l", "en", "Console language (en, ru)")
	pf.Bool("no-color", false, "Disable colored output")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (text, json)")

	addExamFlags(rootCmd)

	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore opens the SQL store selected by --db-driver and --db. For
// sqlite an empty --db falls back to ORALEXAM_DB and then the XDG path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	v := viperForCmd(cmd)
	driver := v.GetString("db-driver")
	dsn := v.GetString("db")

	dialect, err := store.DialectFor(driver)
	if err != nil {
		return nil, err
	}
	if dialect.Name() == "sqlite" {
		if dsn == "" {
			if dsn, err = store.DefaultDBPath(); err != nil {
				return nil, fmt.Errorf("resolve database path: %w", err)
			}
		} else if err := store.EnsureDir(dsn); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	} else if dsn == "" {
		return nil, fmt.Errorf("--db must be set to a DSN for the %s driver", dialect.Name())
	}

	s, err := store.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
