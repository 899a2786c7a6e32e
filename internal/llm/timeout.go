package llm

import (
	"context"
	"errors"
	"time"
)

// TimeoutProvider bounds every call to the inner provider.
type TimeoutProvider struct {
	inner Provider
	after time.Duration
}

// WithTimeout wraps a Provider so that each Generate call is cancelled
// after d. Expiry surfaces as *ErrTimeout.
func WithTimeout(p Provider, d time.Duration) Provider {
	return &TimeoutProvider{inner: p, after: d}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, t.after)
	defer cancel()

	resp, err := t.inner.Generate(callCtx, req)
	if err != nil && ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		// Our deadline fired, not the caller's.
		return nil, &ErrTimeout{After: t.after}
	}
	return resp, err
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
