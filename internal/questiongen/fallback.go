package questiongen

import (
	"context"
	"errors"
	"log/slog"

	"github.com/abhisek/oralexam/internal/exam"
)

// FallbackGenerator tries Primary and, when it fails, Fallback. The
// primary's error is returned if both fail.
type FallbackGenerator struct {
	Primary  Generator
	Fallback Generator
}

func (g *FallbackGenerator) Generate(ctx context.Context, input GenerateInput) (*exam.Question, error) {
	q, err := g.Primary.Generate(ctx, input)
	if err == nil {
		return q, nil
	}
	if ctx.Err() != nil || g.Fallback == nil {
		return nil, err
	}

	slog.Warn("question generation failed, using question bank", "error", err)
	q, fbErr := g.Fallback.Generate(ctx, input)
	if fbErr != nil {
		slog.Debug("question bank fallback failed", "error", fbErr)
		if errors.Is(fbErr, ErrBankExhausted) {
			return nil, err
		}
		return nil, errors.Join(err, fbErr)
	}
	return q, nil
}
