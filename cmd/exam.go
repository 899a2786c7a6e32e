package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/oralexam/internal/console"
	"github.com/abhisek/oralexam/internal/conversation"
	"github.com/abhisek/oralexam/internal/evaluation"
	"github.com/abhisek/oralexam/internal/i18n"
	"github.com/abhisek/oralexam/internal/llm"
	"github.com/abhisek/oralexam/internal/profile"
	"github.com/abhisek/oralexam/internal/questiongen"
	"github.com/abhisek/oralexam/internal/results"
	"github.com/abhisek/oralexam/internal/session"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Run an oral exam session (default command)",
	RunE:  runExam,
}

func init() {
	addExamFlags(examCmd)
}

func addExamFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("student", "s", "", "Student name (asked interactively when empty)")
	f.StringP("domain", "d", "", "Domain of study (asked interactively when empty)")
	f.IntP("questions", "n", 5, "Number of questions in the session")
	f.String("llm-provider", "", "LLM provider (gemini, openai, anthropic, openrouter, ollama, mock)")
	f.String("llm-model", "", "Model of the selected provider")
	f.String("llm-base-url", "", "Endpoint for OpenAI-compatible providers")
	f.Duration("llm-timeout", 45*time.Second, "Time limit of a single LLM call (0 disables)")
	f.Int("llm-retries", 0, "Retries of transient LLM failures")
	f.String("results-csv", "exam_results.csv", "CSV results log (empty disables)")
	f.String("question-bank", "", "JSON question bank used when generation fails")
	f.Int("max-clarifications", conversation.DefaultConfig().MaxClarifications,
		"Rephrase, hint and definition requests allowed per question (0 = unlimited)")
	f.String("grading", string(evaluation.VariantStandard), "Grading strictness (strict, standard, lenient)")
	f.Bool("tui", false, "Use the full-screen input prompt when attached to a terminal")
}

func runExam(cmd *cobra.Command, _ []string) error {
	v, err := prepare(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	con := newConsole(v)
	con.Print(console.Title, i18n.T(ctx, "Initializing"))

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	cfg, err := llmConfig(v)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}
	provider, err := llm.NewProvider(ctx, cfg, st.Events())
	if err != nil {
		return err
	}

	generator, err := newGenerator(v, provider)
	if err != nil {
		return err
	}
	variant, err := evaluation.ParseVariant(strings.ToLower(v.GetString("grading")))
	if err != nil {
		return err
	}
	evalCfg := evaluation.DefaultConfig()
	evalCfg.Variant = variant

	convCfg := conversation.DefaultConfig()
	convCfg.MaxClarifications = v.GetInt("max-clarifications")

	sinks := []results.Sink{st.Sessions()}
	if path := v.GetString("results-csv"); path != "" {
		sinks = append(sinks, results.NewCSVLog(path))
	}

	req, err := askRequest(ctx, con, v)
	if err != nil {
		if isInterrupt(ctx, err) {
			con.Print(console.Warning, "\n"+i18n.T(ctx, "ExamInterrupted"))
			return nil
		}
		return err
	}

	orch := session.New(session.Deps{
		Generator: generator,
		Resolver:  conversation.NewHandler(con, provider, convCfg),
		Evaluator: evaluation.New(provider, evalCfg),
		Profiles:  profile.NewFileStore(v.GetString("profiles-dir")),
		Results:   results.Multi(sinks...),
		Console:   con,
	})

	out, err := orch.Run(ctx, req)
	if err != nil {
		return err
	}

	con.Print(console.Title, "\n"+i18n.T(ctx, "ExamFinished"))
	con.Print(console.Dim, i18n.T(ctx, "SessionConcluded"))
	if len(out.PersistErrors) > 0 {
		return fmt.Errorf("session %s finished with %d persistence error(s)", out.SessionID, len(out.PersistErrors))
	}
	return nil
}

func newGenerator(v *viper.Viper, provider llm.Provider) (questiongen.Generator, error) {
	genCfg := questiongen.DefaultConfig()
	if lang := v.GetString("lang"); lang != "" && lang != "en" {
		genCfg.Language = lang
	}
	gen := questiongen.New(provider, genCfg)

	path := v.GetString("question-bank")
	if path == "" {
		return gen, nil
	}
	bank, err := questiongen.LoadBank(path)
	if err != nil {
		return nil, err
	}
	return &questiongen.FallbackGenerator{Primary: gen, Fallback: bank}, nil
}

// askRequest fills the student and domain from flags, asking for
// whatever is missing.
func askRequest(ctx context.Context, con console.Console, v *viper.Viper) (session.Request, error) {
	req := session.Request{
		StudentName:   strings.TrimSpace(v.GetString("student")),
		Domain:        strings.TrimSpace(v.GetString("domain")),
		QuestionCount: v.GetInt("questions"),
	}

	for req.StudentName == "" {
		name, err := con.Ask(ctx, i18n.T(ctx, "AskName"))
		if err != nil {
			return req, err
		}
		req.StudentName = strings.TrimSpace(name)
	}
	for req.Domain == "" {
		domain, err := con.Ask(ctx, i18n.Td(ctx, "AskDomain", map[string]any{"Name": req.StudentName}))
		if err != nil {
			return req, err
		}
		req.Domain = strings.TrimSpace(domain)
	}
	return req, req.Validate()
}

func isInterrupt(ctx context.Context, err error) bool {
	return errors.Is(err, console.ErrInterrupted) || errors.Is(err, io.EOF) || ctx.Err() != nil
}
