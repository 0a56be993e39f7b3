package types

// ExportVersion tags every export document. Importers accept any
// document whose entry arrays are present, the tag exists for forward
// compatibility.
const ExportVersion = "1.0.0"

type ExportData struct {
	JournalEntries []*JournalEntry  `json:"journalEntries"`
	MoodEntries    []*MoodEntry     `json:"moodEntries"`
	Settings       *Settings        `json:"settings,omitempty"`
	Preferences    *UserPreferences `json:"preferences,omitempty"`
	Analytics      AnalyticsSummary `json:"analytics"`
	ExportedAt     string           `json:"exportedAt"` // RFC3339
	Version        string           `json:"version"`
}

type AnalyticsSummary struct {
	JournalCount     int            `json:"journal_count"`
	MoodCount        int            `json:"mood_count"`
	AverageMood      float64        `json:"average_mood"`
	MoodDistribution map[string]int `json:"mood_distribution"` // "1".."5" -> count
	TopTags          []TagCount     `json:"top_tags"`
	StreakDays       int            `json:"streak_days"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// ImportResult reports one import run. Parse failures never abort the
// run, they only increment Errors.
type ImportResult struct {
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
}
