package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Strings is stored as a JSON array in a single sqlite column.
type Strings []string

func (s Strings) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (s *Strings) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), s)
	case []byte:
		return json.Unmarshal(v, s)
	default:
		return fmt.Errorf("unsupported type for Strings: %T", value)
	}
}

type JournalEntry struct {
	ID        string  `json:"id" db:"id"`
	Title     string  `json:"title,omitempty" db:"title"`
	Content   string  `json:"content" db:"content"`
	Date      string  `json:"date" db:"date"` // 2006-01-02
	Time      string  `json:"time" db:"time"` // 15:04
	Mood      int     `json:"mood,omitempty" db:"mood"` // 1-5, 0 means not rated
	Tags      Strings `json:"tags,omitempty" db:"tags"`
	City      string  `json:"city,omitempty" db:"city"`
	Country   string  `json:"country,omitempty" db:"country"`
	MoonPhase string  `json:"moon_phase,omitempty" db:"moon_phase"`
	CreatedAt int64   `json:"created_at" db:"created_at"`
	UpdatedAt int64   `json:"updated_at" db:"updated_at"`

	Insight *AIInsight `json:"insight,omitempty" db:"-"`
}

type CreateJournalArgs struct {
	Title   string
	Content string
	Date    string
	Time    string
	Mood    int
	Tags    []string
	City    string
	Country string
}

type UpdateJournalArgs struct {
	Title   string
	Content string
	Mood    int
	Tags    []string
}

type MoodEntry struct {
	ID        string `json:"id" db:"id"`
	Mood      int    `json:"mood" db:"mood"` // 1-5
	Label     string `json:"label" db:"label"`
	Notes     string `json:"notes,omitempty" db:"notes"`
	Date      string `json:"date" db:"date"`
	Time      string `json:"time" db:"time"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

const (
	MoodMin = 1
	MoodMax = 5

	// MoodFallback is applied to imported candidates whose mood is
	// missing or out of range.
	MoodFallback = 3
)

// ImportCandidate is the normalized output of every import parser
// variant before deduplication.
type ImportCandidate struct {
	Content string
	Date    string
	Time    string
	Title   string
	Mood    int
	Tags    []string
}
