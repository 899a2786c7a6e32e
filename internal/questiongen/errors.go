package questiongen

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/oralexam/internal/llm"
)

// Cause groups generation failures.
type Cause string

const (
	CauseTransport Cause = "transport"
	CauseMalformed Cause = "malformed"
	CauseSchema    Cause = "schema"
)

// GenerationError reports why no question could be produced.
type GenerationError struct {
	Cause Cause
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation failed (%s): %v", e.Cause, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// causeOf maps a provider error to a generation cause. Timeouts count as
// transport faults; output that is not JSON at all is malformed.
func causeOf(err error) Cause {
	if llm.Classify(err) != llm.FaultSchema {
		return CauseTransport
	}
	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) && !json.Valid(invalid.Content) {
		return CauseMalformed
	}
	return CauseSchema
}
