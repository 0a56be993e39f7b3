package v1

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/innerguide/guide-api/internal/core"
	"github.com/innerguide/guide-api/internal/logic/v1/process"
	"github.com/innerguide/guide-api/pkg/errors"
	"github.com/innerguide/guide-api/pkg/i18n"
	"github.com/innerguide/guide-api/pkg/importer"
	"github.com/innerguide/guide-api/pkg/moon"
	"github.com/innerguide/guide-api/pkg/types"
	"github.com/innerguide/guide-api/pkg/utils"
)

const (
	maxImportBytes = 10 << 20

	// ClearConfirmation is the phrase the request body must repeat before
	// ClearAll touches anything.
	ClearConfirmation = "DELETE ALL DATA"
)

type TransferLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewTransferLogic(ctx context.Context, core *core.Core) *TransferLogic {
	return &TransferLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *TransferLogic) Export() (*types.ExportData, error) {
	entries, err := l.core.Store().JournalEntryStore().ListAll(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TransferLogic.Export.JournalEntryStore.ListAll", i18n.ERROR_INTERNAL, err)
	}
	if err := NewJournalLogic(l.ctx, l.core).attachInsights(entries); err != nil {
		return nil, errors.Trace("TransferLogic.Export", err)
	}

	moods, err := l.core.Store().MoodEntryStore().ListAll(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TransferLogic.Export.MoodEntryStore.ListAll", i18n.ERROR_INTERNAL, err)
	}

	settingsLogic := NewSettingsLogic(l.ctx, l.core)
	settings, err := settingsLogic.GetSettings()
	if err != nil {
		return nil, errors.Trace("TransferLogic.Export", err)
	}
	prefs, err := settingsLogic.GetPreferences()
	if err != nil {
		return nil, errors.Trace("TransferLogic.Export", err)
	}

	analytics, err := l.Analytics()
	if err != nil {
		return nil, errors.Trace("TransferLogic.Export", err)
	}

	if entries == nil {
		entries = []*types.JournalEntry{}
	}
	if moods == nil {
		moods = []*types.MoodEntry{}
	}

	return &types.ExportData{
		JournalEntries: entries,
		MoodEntries:    moods,
		Settings:       settings,
		Preferences:    prefs,
		Analytics:      *analytics,
		ExportedAt:     time.Now().Format(time.RFC3339),
		Version:        types.ExportVersion,
	}, nil
}

// Analytics builds the summary embedded in exports and served on its
// own endpoint. Rated journal entries and mood check-ins both count
// toward the mood aggregates.
func (l *TransferLogic) Analytics() (*types.AnalyticsSummary, error) {
	entries, err := l.core.Store().JournalEntryStore().ListAll(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TransferLogic.Analytics.JournalEntryStore.ListAll", i18n.ERROR_INTERNAL, err)
	}
	moods, err := l.core.Store().MoodEntryStore().ListAll(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TransferLogic.Analytics.MoodEntryStore.ListAll", i18n.ERROR_INTERNAL, err)
	}

	summary := &types.AnalyticsSummary{
		JournalCount:     len(entries),
		MoodCount:        len(moods),
		MoodDistribution: map[string]int{},
		TopTags:          []types.TagCount{},
	}

	var moodSum, moodN int
	count := func(mood int) {
		if mood < types.MoodMin || mood > types.MoodMax {
			return
		}
		summary.MoodDistribution[fmt.Sprintf("%d", mood)]++
		moodSum += mood
		moodN++
	}
	for _, e := range entries {
		count(e.Mood)
	}
	for _, m := range moods {
		count(m.Mood)
	}
	if moodN > 0 {
		summary.AverageMood = float64(moodSum) / float64(moodN)
	}

	tagCounts := map[string]int{}
	for _, e := range entries {
		for _, tag := range e.Tags {
			tagCounts[tag]++
		}
	}
	for tag, n := range tagCounts {
		summary.TopTags = append(summary.TopTags, types.TagCount{Tag: tag, Count: n})
	}
	sort.Slice(summary.TopTags, func(i, j int) bool {
		if summary.TopTags[i].Count != summary.TopTags[j].Count {
			return summary.TopTags[i].Count > summary.TopTags[j].Count
		}
		return summary.TopTags[i].Tag < summary.TopTags[j].Tag
	})
	if len(summary.TopTags) > 5 {
		summary.TopTags = summary.TopTags[:5]
	}

	summary.StreakDays = streakDays(entries, time.Now())

	return summary, nil
}

// streakDays counts consecutive days with at least one journal entry
// ending today, or yesterday when today has none yet.
func streakDays(entries []*types.JournalEntry, now time.Time) int {
	days := map[string]struct{}{}
	for _, e := range entries {
		days[e.Date] = struct{}{}
	}

	day := now
	if _, ok := days[day.Format("2006-01-02")]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := days[day.Format("2006-01-02")]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// ImportFile handles one uploaded file. An export document restores
// wholesale, anything else goes through the candidate pipeline with
// per-entry deduplication. The raw bytes are retained as a local copy
// either way.
func (l *TransferLogic) ImportFile(fileName string, content []byte) (*types.ImportResult, error) {
	if len(content) > maxImportBytes {
		return nil, errors.New("TransferLogic.ImportFile.size", i18n.ERROR_PAYLOAD_TOO_LARGE, fmt.Errorf("%d bytes", len(content))).Code(http.StatusRequestEntityTooLarge)
	}

	var (
		result *types.ImportResult
		err    error
	)
	if doc, ok := sniffExportDocument(content); ok {
		result, err = l.restoreDocument(doc)
	} else {
		result, err = l.runCandidateImport(fileName, content)
	}
	if err != nil {
		return nil, errors.Trace("TransferLogic.ImportFile", err)
	}

	if err := l.saveLocalCopy(fileName, content, *result); err != nil {
		return nil, errors.Trace("TransferLogic.ImportFile", err)
	}

	l.core.Metrics().CountImported(result.Imported)
	return result, nil
}

// sniffExportDocument recognizes a previously exported document by its
// version and exportedAt tags, plain entry collections do not qualify.
func sniffExportDocument(content []byte) (*types.ExportData, bool) {
	var doc types.ExportData
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, false
	}
	if doc.Version == "" || doc.ExportedAt == "" {
		return nil, false
	}
	return &doc, true
}

func (l *TransferLogic) runCandidateImport(fileName string, content []byte) (*types.ImportResult, error) {
	candidates, parseErrs, err := importer.Parse(fileName, content)
	if err != nil {
		return nil, errors.New("TransferLogic.runCandidateImport.Parse", i18n.ERROR_UNSUPPORTED_FORMAT, err).Code(http.StatusBadRequest)
	}
	if len(candidates) == 0 {
		return nil, errors.New("TransferLogic.runCandidateImport.empty", i18n.ERROR_IMPORT_NOTHING_USABLE, nil).Code(http.StatusBadRequest)
	}

	result, err := l.importCandidates(candidates)
	if err != nil {
		return nil, err
	}
	result.Errors += parseErrs
	return result, nil
}

func (l *TransferLogic) importCandidates(candidates []types.ImportCandidate) (*types.ImportResult, error) {
	settings := NewSettingsLogic(l.ctx, l.core).MustGetSettings()
	enrich := settings.AIEnabled && l.core.Srv().AI().Available()

	var result types.ImportResult
	for _, cand := range candidates {
		exist, err := l.core.Store().JournalEntryStore().Exists(l.ctx, cand.Content, cand.Date)
		if err != nil {
			return nil, errors.New("TransferLogic.importCandidates.JournalEntryStore.Exists", i18n.ERROR_INTERNAL, err)
		}
		if exist {
			result.Duplicates++
			continue
		}

		entryDate, _ := time.ParseInLocation("2006-01-02", cand.Date, time.Local)
		entry := types.JournalEntry{
			ID:        utils.GenSpecIDStr(),
			Title:     cand.Title,
			Content:   cand.Content,
			Date:      cand.Date,
			Time:      cand.Time,
			Mood:      cand.Mood,
			Tags:      dedupeTags(cand.Tags),
			MoonPhase: moon.At(entryDate).Label,
			CreatedAt: time.Now().Unix(),
			UpdatedAt: time.Now().Unix(),
		}
		if err := l.core.Store().JournalEntryStore().Create(l.ctx, entry); err != nil {
			result.Errors++
			continue
		}
		result.Imported++

		if enrich {
			process.EnqueueInsight(&entry)
		}
	}

	return &result, nil
}

// restoreDocument is the export round-trip: both entry collections are
// replaced wholesale inside one transaction, settings and preferences
// overwritten when the document carries them.
func (l *TransferLogic) restoreDocument(doc *types.ExportData) (*types.ImportResult, error) {
	if doc.JournalEntries == nil && doc.MoodEntries == nil {
		return nil, errors.New("TransferLogic.restoreDocument.collections.nil", i18n.ERROR_EXPORT_DOC_INVALID, nil).Code(http.StatusBadRequest)
	}

	var result types.ImportResult
	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().JournalEntryStore().DeleteAll(ctx); err != nil {
			return err
		}
		if err := l.core.Store().AIInsightStore().DeleteAll(ctx); err != nil {
			return err
		}
		if err := l.core.Store().MoodEntryStore().DeleteAll(ctx); err != nil {
			return err
		}

		for _, entry := range doc.JournalEntries {
			if strings.TrimSpace(entry.Content) == "" {
				result.Errors++
				continue
			}
			if entry.ID == "" {
				entry.ID = utils.GenSpecIDStr()
			}
			if err := l.core.Store().JournalEntryStore().Create(ctx, *entry); err != nil {
				return err
			}
			result.Imported++

			if entry.Insight != nil {
				insight := *entry.Insight
				if insight.ID == "" {
					insight.ID = utils.GenSpecIDStr()
				}
				insight.EntryID = entry.ID
				if err := l.core.Store().AIInsightStore().Save(ctx, insight); err != nil {
					return err
				}
			}
		}

		for _, mood := range doc.MoodEntries {
			if mood.ID == "" {
				mood.ID = utils.GenSpecIDStr()
			}
			if err := l.core.Store().MoodEntryStore().Create(ctx, *mood); err != nil {
				return err
			}
			result.Imported++
		}

		if doc.Settings != nil {
			if err := l.core.Store().SettingsStore().Save(ctx, *doc.Settings); err != nil {
				return err
			}
		}
		if doc.Preferences != nil {
			if err := l.core.Store().UserPreferenceStore().Save(ctx, *doc.Preferences); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.New("TransferLogic.restoreDocument.Transaction", i18n.ERROR_INTERNAL, err)
	}

	settings := NewSettingsLogic(l.ctx, l.core).MustGetSettings()
	if settings.AIEnabled && l.core.Srv().AI().Available() {
		for _, entry := range doc.JournalEntries {
			if entry.Insight == nil && strings.TrimSpace(entry.Content) != "" {
				process.EnqueueInsight(entry)
			}
		}
	}

	return &result, nil
}

func (l *TransferLogic) saveLocalCopy(fileName string, content []byte, result types.ImportResult) error {
	checksum := importer.Checksum(content)
	now := time.Now().Unix()

	existing, err := l.core.Store().LocalCopyStore().GetByFingerprint(l.ctx, fileName, checksum)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("TransferLogic.saveLocalCopy.LocalCopyStore.GetByFingerprint", i18n.ERROR_INTERNAL, err)
	}

	if existing != nil {
		if err := l.core.Store().LocalCopyStore().TouchImport(l.ctx, existing.ID, result, now); err != nil {
			return errors.New("TransferLogic.saveLocalCopy.LocalCopyStore.TouchImport", i18n.ERROR_INTERNAL, err)
		}
		return nil
	}

	err = l.core.Store().LocalCopyStore().Create(l.ctx, types.LocalCopy{
		ID:             utils.GenSpecIDStr(),
		FileName:       fileName,
		Checksum:       checksum,
		Content:        string(content),
		Size:           int64(len(content)),
		Imported:       result.Imported,
		Duplicates:     result.Duplicates,
		Errors:         result.Errors,
		CreatedAt:      now,
		LastImportedAt: now,
	})
	if err != nil {
		return errors.New("TransferLogic.saveLocalCopy.LocalCopyStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *TransferLogic) ListCopies() ([]*types.LocalCopy, error) {
	list, err := l.core.Store().LocalCopyStore().List(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("TransferLogic.ListCopies.LocalCopyStore.List", i18n.ERROR_INTERNAL, err)
	}
	if list == nil {
		list = []*types.LocalCopy{}
	}
	return list, nil
}

// ReimportCopy replays a retained copy through the same pipeline. Runs
// after the first are mostly duplicates, which is the point: it repairs
// partially failed imports without double-writing anything.
func (l *TransferLogic) ReimportCopy(copyID string) (*types.ImportResult, error) {
	copyRec, err := l.core.Store().LocalCopyStore().Get(l.ctx, copyID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("TransferLogic.ReimportCopy.LocalCopyStore.Get.nil", i18n.ERROR_NOTFOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("TransferLogic.ReimportCopy.LocalCopyStore.Get", i18n.ERROR_INTERNAL, err)
	}

	content := []byte(copyRec.Content)
	var result *types.ImportResult
	if doc, ok := sniffExportDocument(content); ok {
		result, err = l.restoreDocument(doc)
	} else {
		result, err = l.runCandidateImport(copyRec.FileName, content)
	}
	if err != nil {
		return nil, errors.Trace("TransferLogic.ReimportCopy", err)
	}

	if err := l.core.Store().LocalCopyStore().TouchImport(l.ctx, copyRec.ID, *result, time.Now().Unix()); err != nil {
		return nil, errors.New("TransferLogic.ReimportCopy.LocalCopyStore.TouchImport", i18n.ERROR_INTERNAL, err)
	}

	l.core.Metrics().CountImported(result.Imported)
	return result, nil
}

// ClearAll irreversibly empties every collection. The handler passes the
// confirmation phrase through untouched, the gate lives here so every
// caller hits it.
func (l *TransferLogic) ClearAll(confirmation string) error {
	if confirmation != ClearConfirmation {
		return errors.New("TransferLogic.ClearAll.confirmation", i18n.ERROR_CONFIRMATION_MISMATCH, fmt.Errorf("got %q", confirmation)).Code(http.StatusBadRequest)
	}

	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		stores := []func(context.Context) error{
			l.core.Store().AIInsightStore().DeleteAll,
			l.core.Store().JournalEntryStore().DeleteAll,
			l.core.Store().MoodEntryStore().DeleteAll,
			l.core.Store().SettingsStore().DeleteAll,
			l.core.Store().UserPreferenceStore().DeleteAll,
			l.core.Store().LocalCopyStore().DeleteAll,
		}
		for _, clear := range stores {
			if err := clear(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.New("TransferLogic.ClearAll.Transaction", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
