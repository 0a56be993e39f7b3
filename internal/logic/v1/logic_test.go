package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innerguide/guide-api/internal/core"
	"github.com/innerguide/guide-api/pkg/errors"
	"github.com/innerguide/guide-api/pkg/sqlstore"
	"github.com/innerguide/guide-api/pkg/types"
	"github.com/innerguide/guide-api/pkg/utils"
)

var (
	testOnce sync.Once
	testApp  *core.Core
)

// testCore hands out one shared core on an in-memory database. Tests
// reset state through ClearAll instead of rebuilding the core, metrics
// registration is process-global.
func testCore(t *testing.T) *core.Core {
	t.Helper()
	testOnce.Do(func() {
		utils.SetupIDWorker(1)
		testApp = core.MustSetupCore(core.CoreConfig{
			SQLite: sqlstore.ConnectConfig{
				DSN:          ":memory:",
				MaxOpenConns: 1,
				MaxIdleConns: 1,
			},
		})
	})

	require.NoError(t, NewTransferLogic(context.Background(), testApp).ClearAll(ClearConfirmation))
	return testApp
}

func TestCreateJournalEntryDefaults(t *testing.T) {
	app := testCore(t)
	ctx := context.Background()

	entry, err := NewJournalLogic(ctx, app).CreateJournalEntry(types.CreateJournalArgs{
		Content: "Had a great walk",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, time.Now().Format("2006-01-02"), entry.Date)
	assert.NotEmpty(t, entry.Time)
	assert.NotEmpty(t, entry.MoonPhase)

	list, err := NewJournalLogic(ctx, app).ListJournalEntries(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
	require.Len(t, list.List, 1)
	assert.Equal(t, entry.ID, list.List[0].ID)
}

func TestCreateJournalEntryValidation(t *testing.T) {
	app := testCore(t)
	ctx := context.Background()

	_, err := NewJournalLogic(ctx, app).CreateJournalEntry(types.CreateJournalArgs{
		Content: "   ",
	})
	require.Error(t, err)
	e, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, e.StatusCode())

	_, err = NewJournalLogic(ctx, app).CreateJournalEntry(types.CreateJournalArgs{
		Content: "fine",
		Mood:    6,
	})
	require.Error(t, err)

	total, err := app.Store().JournalEntryStore().Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total, "failed validation must not write")
}

func TestMoodRange(t *testing.T) {
	app := testCore(t)
	ctx := context.Background()

	for _, bad := range []int{0, -1, 6, 42} {
		_, err := NewMoodLogic(ctx, app).CreateMoodEntry(CreateMoodArgs{Mood: bad})
		require.Error(t, err, "mood %d must be rejected", bad)
	}

	for mood := types.MoodMin; mood <= types.MoodMax; mood++ {
		entry, err := NewMoodLogic(ctx, app).CreateMoodEntry(CreateMoodArgs{Mood: mood})
		require.NoError(t, err)
		assert.Equal(t, moodLabels[mood], entry.Label)
	}

	list, err := NewMoodLogic(ctx, app).ListMoodEntries(1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), list.Total)
}

func TestImportFileDeduplication(t *testing.T) {
	app := testCore(t)
	ctx := context.Background()

	raw := []byte(`[{"content":"Had a great walk","date":"2024-01-05","mood":4}]`)

	result, err := NewTransferLogic(ctx, app).ImportFile("walks.json", raw)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 0, result.Duplicates)

	result, err = NewTransferLogic(ctx, app).ImportFile("walks.json", raw)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 1, result.Duplicates)

	// identical bytes share one retained copy
	copies, err := NewTransferLogic(ctx, app).ListCopies()
	require.NoError(t, err)
	assert.Len(t, copies, 1)

	total, err := app.Store().JournalEntryStore().Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestImportFileFallbacks(t *testing.T) {
	app := testCore(t)
	ctx := context.Background()

	raw := []byte(`[{"content":"no date no mood"},{"content":"rated out of range","date":"2024-02-01","mood":9}]`)

	result, err := NewTransferLogic(ctx, app).ImportFile("notes.json", raw)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)

	entries, err := app.Store().JournalEntryStore().ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.NotEmpty(t, e.Date)
		assert.Equal(t, types.MoodFallback, e.Mood)
		assert.NotEmpty(t, e.Title)
	}
}

func TestReimportCopyIsIdempotent(t *testing.T) {
	app := testCore(t)
	ctx := context.Background()

	raw := []byte(`[{"content":"entry one","date":"2024-01-05"},{"content":"entry two","date":"2024-01-06"}]`)
	_, err := NewTransferLogic(ctx, app).ImportFile("two.json", raw)
	require.NoError(t, err)

	copies, err := NewTransferLogic(ctx, app).ListCopies()
	require.NoError(t, err)
	require.Len(t, copies, 1)

	result, err := NewTransferLogic(ctx, app).ReimportCopy(copies[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 2, result.Duplicates)

	total, err := app.Store().JournalEntryStore().Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestExportImportRoundTrip(t *testing.T) {
	app := testCore(t)
	ctx := context.Background()

	journalLogic := NewJournalLogic(ctx, app)
	_, err := journalLogic.CreateJournalEntry(types.CreateJournalArgs{
		Content: "round trip entry",
		Date:    "2024-03-01",
		Mood:    4,
		Tags:    []string{"trip"},
	})
	require.NoError(t, err)

	_, err = NewMoodLogic(ctx, app).CreateMoodEntry(CreateMoodArgs{Mood: 5, Notes: "great"})
	require.NoError(t, err)

	doc, err := NewTransferLogic(ctx, app).Export()
	require.NoError(t, err)
	assert.Equal(t, types.ExportVersion, doc.Version)
	assert.Len(t, doc.JournalEntries, 1)
	assert.Len(t, doc.MoodEntries, 1)
	assert.Equal(t, 1, doc.Analytics.JournalCount)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	// wipe and restore from the exported document
	require.NoError(t, NewTransferLogic(ctx, app).ClearAll(ClearConfirmation))

	result, err := NewTransferLogic(ctx, app).ImportFile("backup.json", raw)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)

	restored, err := NewTransferLogic(ctx, app).Export()
	require.NoError(t, err)
	require.Len(t, restored.JournalEntries, 1)
	assert.Equal(t, "round trip entry", restored.JournalEntries[0].Content)
	assert.Equal(t, 4, restored.JournalEntries[0].Mood)
	require.Len(t, restored.MoodEntries, 1)
	assert.Equal(t, 5, restored.MoodEntries[0].Mood)
}

func TestClearAllConfirmation(t *testing.T) {
	app := testCore(t)
	ctx := context.Background()

	_, err := NewJournalLogic(ctx, app).CreateJournalEntry(types.CreateJournalArgs{Content: "keep me"})
	require.NoError(t, err)

	err = NewTransferLogic(ctx, app).ClearAll("delete all data")
	require.Error(t, err)
	e, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, e.StatusCode())

	total, err := app.Store().JournalEntryStore().Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "mismatched confirmation must not clear")

	require.NoError(t, NewTransferLogic(ctx, app).ClearAll(ClearConfirmation))
	total, err = app.Store().JournalEntryStore().Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestAnalytics(t *testing.T) {
	app := testCore(t)
	ctx := context.Background()

	journalLogic := NewJournalLogic(ctx, app)
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	_, err := journalLogic.CreateJournalEntry(types.CreateJournalArgs{
		Content: "first", Date: yesterday, Mood: 3, Tags: []string{"walk", "sun"},
	})
	require.NoError(t, err)
	_, err = journalLogic.CreateJournalEntry(types.CreateJournalArgs{
		Content: "second", Date: today, Mood: 5, Tags: []string{"walk"},
	})
	require.NoError(t, err)

	summary, err := NewTransferLogic(ctx, app).Analytics()
	require.NoError(t, err)

	assert.Equal(t, 2, summary.JournalCount)
	assert.Equal(t, 0, summary.MoodCount)
	assert.InDelta(t, 4.0, summary.AverageMood, 0.001)
	assert.Equal(t, 1, summary.MoodDistribution["3"])
	assert.Equal(t, 1, summary.MoodDistribution["5"])
	assert.Equal(t, 2, summary.StreakDays)
	require.NotEmpty(t, summary.TopTags)
	assert.Equal(t, "walk", summary.TopTags[0].Tag)
	assert.Equal(t, 2, summary.TopTags[0].Count)
}

func TestSettingsSingletonDefaults(t *testing.T) {
	app := testCore(t)
	ctx := context.Background()

	logic := NewSettingsLogic(ctx, app)

	settings, err := logic.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "system", settings.Theme)
	assert.True(t, settings.AIEnabled)

	settings.Theme = "dark"
	settings.LocationEnabled = true
	require.NoError(t, logic.SaveSettings(*settings))

	got, err := logic.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Theme)
	assert.True(t, got.LocationEnabled)

	prefs, err := logic.GetPreferences()
	require.NoError(t, err)
	assert.Equal(t, 5, prefs.WeeklyGoal)
}

func TestUpdateJournalEntry(t *testing.T) {
	app := testCore(t)
	ctx := context.Background()

	logic := NewJournalLogic(ctx, app)
	entry, err := logic.CreateJournalEntry(types.CreateJournalArgs{Content: "before", Mood: 2})
	require.NoError(t, err)

	require.NoError(t, logic.UpdateJournalEntry(entry.ID, types.UpdateJournalArgs{
		Content: "after",
		Mood:    4,
		Tags:    []string{"Walk", "walk", "sun"},
	}))

	got, err := logic.GetJournalEntry(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Content)
	assert.Equal(t, 4, got.Mood)
	assert.Equal(t, types.Strings{"Walk", "sun"}, got.Tags, "tags deduplicate case-insensitively")

	err = logic.UpdateJournalEntry("missing", types.UpdateJournalArgs{Content: "x"})
	require.Error(t, err)
	e, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, e.StatusCode())
}
