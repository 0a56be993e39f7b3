package types

// AIInsight is a derived annotation attached to a journal entry by id.
// It is regenerable and never a source of truth.
type AIInsight struct {
	ID          string  `json:"id" db:"id"`
	EntryID     string  `json:"entry_id" db:"entry_id"`
	Sentiment   string  `json:"sentiment" db:"sentiment"` // positive / neutral / negative
	Score       float64 `json:"score" db:"score"`         // -1..1
	Emotions    Strings `json:"emotions" db:"emotions"`
	Themes      Strings `json:"themes" db:"themes"`
	Suggestions Strings `json:"suggestions" db:"suggestions"`
	Reflection  string  `json:"reflection" db:"reflection"`
	Model       string  `json:"model" db:"model"`
	CreatedAt   int64   `json:"created_at" db:"created_at"`
}

const (
	SENTIMENT_POSITIVE = "positive"
	SENTIMENT_NEUTRAL  = "neutral"
	SENTIMENT_NEGATIVE = "negative"
)

// LocalCopy retains the raw text of an imported file. (FileName,
// Checksum) uniquely identifies a copy; re-importing identical bytes
// only bumps LastImportedAt.
type LocalCopy struct {
	ID             string `json:"id" db:"id"`
	FileName       string `json:"file_name" db:"file_name"`
	Checksum       string `json:"checksum" db:"checksum"`
	Content        string `json:"-" db:"content"`
	Size           int64  `json:"size" db:"size"`
	Imported       int    `json:"imported" db:"imported"`
	Duplicates     int    `json:"duplicates" db:"duplicates"`
	Errors         int    `json:"errors" db:"errors"`
	CreatedAt      int64  `json:"created_at" db:"created_at"`
	LastImportedAt int64  `json:"last_imported_at" db:"last_imported_at"`
}
