package v1

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/innerguide/guide-api/internal/core"
	"github.com/innerguide/guide-api/internal/logic/v1/process"
	"github.com/innerguide/guide-api/pkg/errors"
	"github.com/innerguide/guide-api/pkg/i18n"
	"github.com/innerguide/guide-api/pkg/moon"
	"github.com/innerguide/guide-api/pkg/types"
	"github.com/innerguide/guide-api/pkg/utils"
)

type JournalLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewJournalLogic(ctx context.Context, core *core.Core) *JournalLogic {
	return &JournalLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *JournalLogic) CreateJournalEntry(args types.CreateJournalArgs) (*types.JournalEntry, error) {
	args.Content = strings.TrimSpace(args.Content)
	if args.Content == "" {
		return nil, errors.New("JournalLogic.CreateJournalEntry.Content.empty", i18n.ERROR_EMPTY_CONTENT, nil).Code(http.StatusBadRequest)
	}
	if args.Mood != 0 && (args.Mood < types.MoodMin || args.Mood > types.MoodMax) {
		return nil, errors.New("JournalLogic.CreateJournalEntry.Mood.range", i18n.ERROR_MOOD_OUT_OF_RANGE, fmt.Errorf("mood %d", args.Mood)).Code(http.StatusBadRequest)
	}

	now := time.Now()
	entryTime := now
	if args.Date == "" {
		args.Date = now.Format("2006-01-02")
	} else if parsed, err := time.ParseInLocation("2006-01-02", args.Date, time.Local); err != nil {
		return nil, errors.New("JournalLogic.CreateJournalEntry.Date.parse", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	} else {
		entryTime = parsed
	}
	if args.Time == "" {
		args.Time = now.Format("15:04")
	}

	settings := NewSettingsLogic(l.ctx, l.core).MustGetSettings()
	if settings.LocationEnabled && args.City == "" {
		if loc, err := l.core.Geo().Lookup(l.ctx); err == nil {
			args.City = loc.City
			args.Country = loc.Country
		}
		// lookup failure leaves the entry without location, never fails the write
	}

	entry := types.JournalEntry{
		ID:        utils.GenSpecIDStr(),
		Title:     strings.TrimSpace(args.Title),
		Content:   args.Content,
		Date:      args.Date,
		Time:      args.Time,
		Mood:      args.Mood,
		Tags:      dedupeTags(args.Tags),
		City:      args.City,
		Country:   args.Country,
		MoonPhase: moon.At(entryTime).Label,
		CreatedAt: time.Now().Unix(),
		UpdatedAt: time.Now().Unix(),
	}

	if err := l.core.Store().JournalEntryStore().Create(l.ctx, entry); err != nil {
		return nil, errors.New("JournalLogic.CreateJournalEntry.JournalEntryStore.Create", i18n.ERROR_INTERNAL, err)
	}

	if settings.AIEnabled && l.core.Srv().AI().Available() {
		process.EnqueueInsight(&entry)
	}

	return &entry, nil
}

func (l *JournalLogic) GetJournalEntry(id string) (*types.JournalEntry, error) {
	entry, err := l.core.Store().JournalEntryStore().Get(l.ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("JournalLogic.GetJournalEntry.JournalEntryStore.Get.nil", i18n.ERROR_NOTFOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("JournalLogic.GetJournalEntry.JournalEntryStore.Get", i18n.ERROR_INTERNAL, err)
	}

	insight, err := l.core.Store().AIInsightStore().GetByEntry(l.ctx, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JournalLogic.GetJournalEntry.AIInsightStore.GetByEntry", i18n.ERROR_INTERNAL, err)
	}
	entry.Insight = insight

	return entry, nil
}

type JournalEntryList struct {
	List  []*types.JournalEntry `json:"list"`
	Total int64                 `json:"total"`
}

func (l *JournalLogic) ListJournalEntries(page, pageSize uint64) (*JournalEntryList, error) {
	list, err := l.core.Store().JournalEntryStore().List(l.ctx, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JournalLogic.ListJournalEntries.JournalEntryStore.List", i18n.ERROR_INTERNAL, err)
	}

	total, err := l.core.Store().JournalEntryStore().Total(l.ctx)
	if err != nil {
		return nil, errors.New("JournalLogic.ListJournalEntries.JournalEntryStore.Total", i18n.ERROR_INTERNAL, err)
	}

	if err := l.attachInsights(list); err != nil {
		return nil, err
	}

	return &JournalEntryList{
		List:  list,
		Total: total,
	}, nil
}

func (l *JournalLogic) attachInsights(list []*types.JournalEntry) error {
	if len(list) == 0 {
		return nil
	}

	ids := lo.Map(list, func(item *types.JournalEntry, _ int) string {
		return item.ID
	})

	insights, err := l.core.Store().AIInsightStore().ListByEntries(l.ctx, ids)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("JournalLogic.attachInsights.AIInsightStore.ListByEntries", i18n.ERROR_INTERNAL, err)
	}

	byEntry := lo.SliceToMap(insights, func(item *types.AIInsight) (string, *types.AIInsight) {
		return item.EntryID, item
	})
	for _, entry := range list {
		entry.Insight = byEntry[entry.ID]
	}
	return nil
}

func (l *JournalLogic) UpdateJournalEntry(id string, args types.UpdateJournalArgs) error {
	args.Content = strings.TrimSpace(args.Content)
	if args.Content == "" {
		return errors.New("JournalLogic.UpdateJournalEntry.Content.empty", i18n.ERROR_EMPTY_CONTENT, nil).Code(http.StatusBadRequest)
	}
	if args.Mood != 0 && (args.Mood < types.MoodMin || args.Mood > types.MoodMax) {
		return errors.New("JournalLogic.UpdateJournalEntry.Mood.range", i18n.ERROR_MOOD_OUT_OF_RANGE, fmt.Errorf("mood %d", args.Mood)).Code(http.StatusBadRequest)
	}

	if _, err := l.GetJournalEntry(id); err != nil {
		return errors.Trace("JournalLogic.UpdateJournalEntry", err)
	}

	args.Tags = dedupeTags(args.Tags)
	if err := l.core.Store().JournalEntryStore().Update(l.ctx, id, args); err != nil {
		return errors.New("JournalLogic.UpdateJournalEntry.JournalEntryStore.Update", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *JournalLogic) DeleteJournalEntry(id string) error {
	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().AIInsightStore().DeleteByEntry(ctx, id); err != nil {
			return err
		}
		return l.core.Store().JournalEntryStore().Delete(ctx, id)
	})
	if err != nil {
		return errors.New("JournalLogic.DeleteJournalEntry.Transaction", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func dedupeTags(tags []string) types.Strings {
	cleaned := lo.FilterMap(tags, func(tag string, _ int) (string, bool) {
		tag = strings.TrimSpace(tag)
		return tag, tag != ""
	})
	return lo.UniqBy(cleaned, strings.ToLower)
}
