package exam

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Difficulty is an ordered question difficulty level.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyNames = [...]string{"easy", "medium", "hard"}

// Levels returns every difficulty in ascending order.
func Levels() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

func (d Difficulty) String() string {
	if d < Easy || d > Hard {
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// Valid reports whether d is one of the defined levels.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// Clamp pins d into [Easy, Hard].
func (d Difficulty) Clamp() Difficulty {
	switch {
	case d < Easy:
		return Easy
	case d > Hard:
		return Hard
	}
	return d
}

// ParseDifficulty parses a level name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range difficultyNames {
		if s == name {
			return Difficulty(i), nil
		}
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("difficulty must be a string: %w", err)
	}
	parsed, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
