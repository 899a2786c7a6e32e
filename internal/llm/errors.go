package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit indicates the service rejected the call with 429.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates output that could not be decoded or does
// not conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates a transport failure: the service is
// down, unreachable or answered with a server error.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the output was cut off at MaxTokens.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// ErrTimeout indicates a single call ran past its time bound.
type ErrTimeout struct {
	After time.Duration
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("LLM request timed out after %s", e.After)
}

func (e *ErrTimeout) Unwrap() error { return context.DeadlineExceeded }

// FaultKind groups failures the way callers report them.
type FaultKind string

const (
	FaultNone      FaultKind = ""
	FaultTransport FaultKind = "transport"
	FaultSchema    FaultKind = "schema"
	FaultTimeout   FaultKind = "timeout"
	FaultCanceled  FaultKind = "canceled"
)

// Classify maps an error returned by a Provider to its fault kind.
func Classify(err error) FaultKind {
	if err == nil {
		return FaultNone
	}

	var (
		timeout *ErrTimeout
		invalid *ErrInvalidResponse
		maxTok  *ErrMaxTokensExceeded
	)
	switch {
	case errors.As(err, &timeout), errors.Is(err, context.DeadlineExceeded):
		return FaultTimeout
	case errors.Is(err, context.Canceled):
		return FaultCanceled
	case errors.As(err, &invalid), errors.As(err, &maxTok):
		return FaultSchema
	}
	return FaultTransport
}
