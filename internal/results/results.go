// Package results appends finished exam transcripts to result logs.
package results

import (
	"context"
	"errors"

	"github.com/abhisek/oralexam/internal/exam"
)

// Sink receives the transcript of a finished session.
type Sink interface {
	Append(ctx context.Context, t exam.Transcript) error
}

// Multi fans a transcript out to every sink. All sinks are tried; their
// errors are joined.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) Append(ctx context.Context, t exam.Transcript) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Append(ctx, t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
