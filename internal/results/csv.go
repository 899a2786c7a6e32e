package results

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/abhisek/oralexam/internal/exam"
)

// TimestampLayout is the format of the timestamp column.
const TimestampLayout = "2006-01-02 15:04:05"

// Header lists the CSV columns in order.
var Header = []string{
	"timestamp", "student_name", "domain", "question",
	"student_answer", "evaluation", "feedback", "score",
}

// CSVLog appends one row per question record to a CSV file shared by
// all students. The header is written only when the file is new or empty.
type CSVLog struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewCSVLog creates a log writing to path.
func NewCSVLog(path string) *CSVLog {
	return &CSVLog{path: path, now: time.Now}
}

// Path returns the CSV file path.
func (l *CSVLog) Path() string {
	return l.path
}

func (l *CSVLog) Append(_ context.Context, t exam.Transcript) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create results dir: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open results file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat results file: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	timestamp := l.now().Format(TimestampLayout)
	for _, r := range t.Records {
		row := []string{
			timestamp,
			t.StudentName,
			t.Domain,
			r.Question,
			r.StudentAnswer,
			string(r.Evaluation),
			r.Feedback,
			strconv.FormatFloat(r.Score, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush results: %w", err)
	}
	return f.Close()
}
