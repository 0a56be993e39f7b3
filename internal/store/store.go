package store

import (
	"context"

	"github.com/innerguide/guide-api/pkg/types"
)

type JournalEntryStore interface {
	Create(ctx context.Context, data types.JournalEntry) error
	Update(ctx context.Context, id string, args types.UpdateJournalArgs) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*types.JournalEntry, error)
	// List is most-recent-first.
	List(ctx context.Context, page, pageSize uint64) ([]*types.JournalEntry, error)
	ListAll(ctx context.Context) ([]*types.JournalEntry, error)
	Total(ctx context.Context) (int64, error)
	// Exists implements the duplicate check: trimmed content and date
	// must both match exactly.
	Exists(ctx context.Context, content, date string) (bool, error)
	DeleteAll(ctx context.Context) error
}

type MoodEntryStore interface {
	Create(ctx context.Context, data types.MoodEntry) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*types.MoodEntry, error)
	List(ctx context.Context, page, pageSize uint64) ([]*types.MoodEntry, error)
	ListAll(ctx context.Context) ([]*types.MoodEntry, error)
	Total(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

type SettingsStore interface {
	Get(ctx context.Context) (*types.Settings, error)
	// Save overwrites the singleton wholesale.
	Save(ctx context.Context, data types.Settings) error
	DeleteAll(ctx context.Context) error
}

type UserPreferenceStore interface {
	Get(ctx context.Context) (*types.UserPreferences, error)
	Save(ctx context.Context, data types.UserPreferences) error
	DeleteAll(ctx context.Context) error
}

type AIInsightStore interface {
	// Save replaces any previous insight for the same entry.
	Save(ctx context.Context, data types.AIInsight) error
	GetByEntry(ctx context.Context, entryID string) (*types.AIInsight, error)
	ListByEntries(ctx context.Context, entryIDs []string) ([]*types.AIInsight, error)
	DeleteByEntry(ctx context.Context, entryID string) error
	DeleteAll(ctx context.Context) error
}

type LocalCopyStore interface {
	Create(ctx context.Context, data types.LocalCopy) error
	Get(ctx context.Context, id string) (*types.LocalCopy, error)
	GetByFingerprint(ctx context.Context, fileName, checksum string) (*types.LocalCopy, error)
	List(ctx context.Context) ([]*types.LocalCopy, error)
	// TouchImport records the counters of the latest import run.
	TouchImport(ctx context.Context, id string, result types.ImportResult, importedAt int64) error
	DeleteOlderThan(ctx context.Context, createdBefore int64) error
	DeleteAll(ctx context.Context) error
}
