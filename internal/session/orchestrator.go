// Package session runs one adaptive oral exam: it asks questions, adapts
// difficulty to the scores, and persists the results.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/oralexam/internal/console"
	"github.com/abhisek/oralexam/internal/evaluation"
	"github.com/abhisek/oralexam/internal/exam"
	"github.com/abhisek/oralexam/internal/i18n"
	"github.com/abhisek/oralexam/internal/profile"
	"github.com/abhisek/oralexam/internal/questiongen"
	"github.com/abhisek/oralexam/internal/results"
)

// EndReason tells why a session stopped.
type EndReason string

const (
	EndCompleted        EndReason = "completed"
	EndGenerationFailed EndReason = "generation_failed"
	EndInterrupted      EndReason = "interrupted"
)

// Resolver turns a question into the student's final answer.
type Resolver interface {
	Resolve(ctx context.Context, question, domain string) (string, error)
}

// ProfileStore loads and saves student profiles.
type ProfileStore interface {
	Load(name string) *profile.Profile
	Save(p *profile.Profile) error
}

// Deps are the collaborators of an Orchestrator. Results may be nil.
type Deps struct {
	Generator questiongen.Generator
	Resolver  Resolver
	Evaluator evaluation.Evaluator
	Profiles  ProfileStore
	Results   results.Sink
	Console   console.Console

	// Policy defaults to DefaultPolicy when zero.
	Policy Policy

	Now   func() time.Time
	NewID func() string
}

// Outcome is what a finished session produced.
type Outcome struct {
	SessionID string
	Records   []exam.QuestionRecord
	Summary   Summary
	EndReason EndReason

	// PersistErrors holds profile and results failures. They were
	// already reported on the console.
	PersistErrors []error
}

// Orchestrator runs exam sessions.
type Orchestrator struct {
	deps Deps
}

// New creates an Orchestrator.
func New(deps Deps) *Orchestrator {
	if deps.Policy == (Policy{}) {
		deps.Policy = DefaultPolicy()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	return &Orchestrator{deps: deps}
}

// Run conducts one session. It returns an error only for an invalid
// request; every fault during the session ends it early instead, and
// persistence runs regardless.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Outcome, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid exam request: %w", err)
	}

	con := o.deps.Console
	startedAt := o.deps.Now()
	out := &Outcome{SessionID: o.deps.NewID(), EndReason: EndCompleted}
	log := slog.With("session", out.SessionID, "student", req.StudentName, "domain", req.Domain)

	prof := o.deps.Profiles.Load(req.StudentName)
	state := NewState(prof.QuestionTexts())

	nameData := map[string]any{"Name": req.StudentName}
	if len(prof.History) > 0 {
		con.Print(console.Title, i18n.Td(ctx, "WelcomeBack", nameData))
		con.Print(console.Plain, i18n.Tp(ctx, "PastQuestions", len(state.Avoid)))
	} else {
		con.Print(console.Title, i18n.Td(ctx, "WelcomeNew", nameData))
	}

	for state.Round = 1; state.Round <= req.QuestionCount; state.Round++ {
		if ctx.Err() != nil {
			out.EndReason = EndInterrupted
			break
		}

		con.Print(console.Title, "\n"+i18n.Td(ctx, "QuestionHeader", map[string]any{
			"Index":      state.Round,
			"Total":      req.QuestionCount,
			"Difficulty": difficultyName(ctx, state.Difficulty),
		}))

		q, err := o.deps.Generator.Generate(ctx, questiongen.GenerateInput{
			Domain:     req.Domain,
			Difficulty: state.Difficulty,
			Avoid:      state.Avoid,
		})
		if err != nil {
			if ctx.Err() != nil {
				out.EndReason = EndInterrupted
				break
			}
			log.Warn("question generation failed", "round", state.Round, "error", err)
			con.Print(console.Error, i18n.T(ctx, "GenerationFailed"))
			out.EndReason = EndGenerationFailed
			break
		}
		state.Avoid = append(state.Avoid, q.Text)

		answer, err := o.deps.Resolver.Resolve(ctx, q.Text, req.Domain)
		if err != nil {
			log.Info("answer not obtained, ending session", "round", state.Round, "error", err)
			out.EndReason = EndInterrupted
			break
		}

		ev := o.deps.Evaluator.Evaluate(ctx, q.Text, q.ReferenceAnswer, answer)
		if ctx.Err() != nil {
			// The verdict is a cancellation artifact, not a score.
			out.EndReason = EndInterrupted
			break
		}
		o.printEvaluation(ctx, ev)

		state.Records = append(state.Records, exam.NewRecord(q, answer, ev))

		next := o.deps.Policy.Next(state.Difficulty, ev.Score)
		switch {
		case next > state.Difficulty:
			con.Print(console.Dim, i18n.T(ctx, "DifficultyUp"))
		case next < state.Difficulty:
			con.Print(console.Dim, i18n.T(ctx, "DifficultyDown"))
		}
		log.Debug("round finished", "round", state.Round, "score", ev.Score, "difficulty", state.Difficulty, "next", next)
		state.Difficulty = next
	}

	if out.EndReason == EndInterrupted {
		con.Print(console.Warning, "\n"+i18n.T(ctx, "ExamInterrupted"))
	}

	out.Records = state.Records
	out.Summary = Summarize(state.Records)

	// Persist even when ctx was cancelled by an interrupt.
	persistCtx := context.WithoutCancel(ctx)
	out.PersistErrors = o.persist(persistCtx, prof, exam.Transcript{
		SessionID:   out.SessionID,
		StudentName: req.StudentName,
		Domain:      req.Domain,
		StartedAt:   startedAt,
		Records:     state.Records,
	})

	o.report(ctx, req.StudentName, out.Summary)
	return out, nil
}

func (o *Orchestrator) printEvaluation(ctx context.Context, ev exam.Evaluation) {
	kind := console.Warning
	switch ev.Category {
	case exam.CategoryCorrect:
		kind = console.Success
	case exam.CategoryIncorrect, exam.CategoryError:
		kind = console.Error
	}

	feedback := ev.Feedback
	if feedback == "" {
		feedback = i18n.T(ctx, "NoFeedback")
	}
	o.deps.Console.Print(kind, "\n"+i18n.Td(ctx, "EvaluationLine", map[string]any{"Category": categoryName(ctx, ev.Category)}))
	o.deps.Console.Print(console.Plain, i18n.Td(ctx, "FeedbackLine", map[string]any{"Feedback": feedback}))
}

func (o *Orchestrator) persist(ctx context.Context, prof *profile.Profile, t exam.Transcript) []error {
	var errs []error
	con := o.deps.Console

	prof.History = append(prof.History, t.Records...)
	if err := o.deps.Profiles.Save(prof); err != nil {
		slog.Error("save profile", "student", t.StudentName, "error", err)
		con.Print(console.Error, i18n.Td(ctx, "ProfileSaveFailed", map[string]any{"Name": t.StudentName, "Error": err}))
		errs = append(errs, fmt.Errorf("save profile: %w", err))
	} else {
		con.Print(console.Dim, i18n.Td(ctx, "ProfileSaved", map[string]any{"Name": t.StudentName}))
	}

	if o.deps.Results == nil {
		return errs
	}
	if err := o.deps.Results.Append(ctx, t); err != nil {
		slog.Error("save results", "session", t.SessionID, "error", err)
		con.Print(console.Error, i18n.Td(ctx, "ResultsSaveFailed", map[string]any{"Error": err}))
		errs = append(errs, fmt.Errorf("save results: %w", err))
	} else {
		con.Print(console.Dim, i18n.T(ctx, "ResultsSaved"))
	}
	return errs
}
