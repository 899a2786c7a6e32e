// Package profile persists per-student exam history as one JSON file per
// student.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/abhisek/oralexam/internal/exam"
)

// Profile is a student's persisted history across sessions.
type Profile struct {
	StudentName string                `json:"student_name"`
	History     []exam.QuestionRecord `json:"history"`
}

// New returns an empty profile for name.
func New(name string) *Profile {
	return &Profile{StudentName: name, History: []exam.QuestionRecord{}}
}

// QuestionTexts returns the text of every question in the history, in order.
func (p *Profile) QuestionTexts() []string {
	out := make([]string, 0, len(p.History))
	for _, r := range p.History {
		out = append(out, r.Question)
	}
	return out
}

// AverageScore returns the mean score over the history, or 0 when empty.
func (p *Profile) AverageScore() float64 {
	if len(p.History) == 0 {
		return 0
	}
	var total float64
	for _, r := range p.History {
		total += r.Score
	}
	return total / float64(len(p.History))
}

var (
	disallowedChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	separatorRuns   = regexp.MustCompile(`[-\s]+`)
)

// SanitizeName maps a student name to a file-name-safe key:
// "Ada Lovelace" becomes "ada_lovelace". Names with nothing usable map
// to "anonymous".
func SanitizeName(name string) string {
	s := disallowedChars.ReplaceAllString(name, "")
	s = strings.ToLower(strings.TrimSpace(s))
	s = separatorRuns.ReplaceAllString(s, "_")
	if s == "" || strings.Trim(s, "_") == "" {
		return "anonymous"
	}
	return s
}

// FileStore keeps profiles as <dir>/<sanitized name>.json.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a store rooted at dir. The directory is created
// on the first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the profile directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the file path for a student's profile.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, SanitizeName(name)+".json")
}

// Load returns the stored profile for name. A missing, unreadable or
// corrupt file yields a fresh profile; this never fails.
func (s *FileStore) Load(name string) *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("unreadable profile, starting fresh", "path", path, "error", err)
		}
		return New(name)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		slog.Warn("corrupt profile, starting fresh", "path", path, "error", err)
		return New(name)
	}
	if p.StudentName == "" {
		p.StudentName = name
	}
	if p.History == nil {
		p.History = []exam.QuestionRecord{}
	}
	return &p
}

// Save writes the profile atomically: a temp file in the same directory
// is renamed over the target.
func (s *FileStore) Save(p *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	path := s.Path(p.StudentName)
	tmp, err := os.CreateTemp(s.dir, ".profile-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close profile: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}

// Delete removes a student's profile. It reports whether a file existed.
func (s *FileStore) Delete(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.Path(name))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("delete profile: %w", err)
	}
	return true, nil
}

// List returns the sanitized names of all stored profiles, sorted.
func (s *FileStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(names)
	return names, nil
}
