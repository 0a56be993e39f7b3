package sqlstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innerguide/guide-api/pkg/sqlstore"
	"github.com/innerguide/guide-api/pkg/types"
)

func setupTestProvider(t *testing.T) *Provider {
	t.Helper()
	// a single connection keeps the in-memory database alive and shared
	p := MustSetup(sqlstore.ConnectConfig{
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})()
	t.Cleanup(func() {
		p.Close()
	})
	return p
}

func TestJournalEntryCRUD(t *testing.T) {
	p := setupTestProvider(t)
	ctx := context.Background()

	entry := types.JournalEntry{
		ID:        "j1",
		Content:   "Had a great walk",
		Date:      "2024-01-05",
		Time:      "09:30",
		Mood:      4,
		Tags:      types.Strings{"outdoors"},
		MoonPhase: "Waxing Crescent",
		CreatedAt: 100,
	}
	require.NoError(t, p.JournalEntryStore().Create(ctx, entry))

	got, err := p.JournalEntryStore().Get(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, "Had a great walk", got.Content)
	assert.Equal(t, 4, got.Mood)
	assert.Equal(t, types.Strings{"outdoors"}, got.Tags)

	require.NoError(t, p.JournalEntryStore().Update(ctx, "j1", types.UpdateJournalArgs{
		Content: "Had a great walk by the river",
		Mood:    5,
		Tags:    []string{"outdoors", "river"},
	}))

	got, err = p.JournalEntryStore().Get(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Mood)
	assert.Len(t, got.Tags, 2)

	require.NoError(t, p.JournalEntryStore().Delete(ctx, "j1"))
	_, err = p.JournalEntryStore().Get(ctx, "j1")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestJournalEntryListOrder(t *testing.T) {
	p := setupTestProvider(t)
	ctx := context.Background()

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, p.JournalEntryStore().Create(ctx, types.JournalEntry{
			ID:        id,
			Content:   "entry " + id,
			Date:      "2024-01-05",
			CreatedAt: int64(100 + i),
		}))
	}

	list, err := p.JournalEntryStore().List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// most-recent-first
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "a", list[2].ID)
}

func TestJournalEntryExists(t *testing.T) {
	p := setupTestProvider(t)
	ctx := context.Background()

	require.NoError(t, p.JournalEntryStore().Create(ctx, types.JournalEntry{
		ID:      "j1",
		Content: "Had a great walk",
		Date:    "2024-01-05",
	}))

	ok, err := p.JournalEntryStore().Exists(ctx, "  Had a great walk  ", "2024-01-05")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.JournalEntryStore().Exists(ctx, "Had a great walk", "2024-01-06")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = p.JournalEntryStore().Exists(ctx, "Had a great walk!", "2024-01-05")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSettingsSingleton(t *testing.T) {
	p := setupTestProvider(t)
	ctx := context.Background()

	_, err := p.SettingsStore().Get(ctx)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	s := types.DefaultSettings()
	s.Theme = "dark"
	require.NoError(t, p.SettingsStore().Save(ctx, s))

	s.Theme = "light"
	s.LocationEnabled = true
	require.NoError(t, p.SettingsStore().Save(ctx, s))

	got, err := p.SettingsStore().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", got.Theme)
	assert.True(t, got.LocationEnabled)
}

func TestLocalCopyFingerprint(t *testing.T) {
	p := setupTestProvider(t)
	ctx := context.Background()

	copyRec := types.LocalCopy{
		ID:       "c1",
		FileName: "walks.json",
		Checksum: "abc123",
		Content:  `[{"content":"x"}]`,
		Size:     17,
	}
	require.NoError(t, p.LocalCopyStore().Create(ctx, copyRec))

	got, err := p.LocalCopyStore().GetByFingerprint(ctx, "walks.json", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ID)

	_, err = p.LocalCopyStore().GetByFingerprint(ctx, "walks.json", "other")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	require.NoError(t, p.LocalCopyStore().TouchImport(ctx, "c1", types.ImportResult{Imported: 1, Duplicates: 2}, 999))
	got, err = p.LocalCopyStore().Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Imported)
	assert.Equal(t, 2, got.Duplicates)
	assert.Equal(t, int64(999), got.LastImportedAt)
}

func TestInsightReplacePerEntry(t *testing.T) {
	p := setupTestProvider(t)
	ctx := context.Background()

	require.NoError(t, p.AIInsightStore().Save(ctx, types.AIInsight{
		ID:        "i1",
		EntryID:   "j1",
		Sentiment: types.SENTIMENT_POSITIVE,
	}))
	require.NoError(t, p.AIInsightStore().Save(ctx, types.AIInsight{
		ID:        "i2",
		EntryID:   "j1",
		Sentiment: types.SENTIMENT_NEGATIVE,
	}))

	got, err := p.AIInsightStore().GetByEntry(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, "i2", got.ID)
	assert.Equal(t, types.SENTIMENT_NEGATIVE, got.Sentiment)
}

func TestTransactionRollback(t *testing.T) {
	p := setupTestProvider(t)
	ctx := context.Background()

	err := p.Transaction(ctx, func(ctx context.Context) error {
		if err := p.JournalEntryStore().Create(ctx, types.JournalEntry{
			ID:      "tx1",
			Content: "will be rolled back",
			Date:    "2024-01-05",
		}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	_, err = p.JournalEntryStore().Get(ctx, "tx1")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
