package v1

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/innerguide/guide-api/internal/core"
	"github.com/innerguide/guide-api/pkg/errors"
	"github.com/innerguide/guide-api/pkg/i18n"
	"github.com/innerguide/guide-api/pkg/types"
	"github.com/innerguide/guide-api/pkg/utils"
)

type MoodLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewMoodLogic(ctx context.Context, core *core.Core) *MoodLogic {
	return &MoodLogic{
		ctx:  ctx,
		core: core,
	}
}

var moodLabels = map[int]string{
	1: "Very Low",
	2: "Low",
	3: "Okay",
	4: "Good",
	5: "Great",
}

type CreateMoodArgs struct {
	Mood  int
	Notes string
	Date  string
	Time  string
}

// CreateMoodEntry rejects out-of-range ratings before anything is
// written. Manual mood input never falls back silently.
func (l *MoodLogic) CreateMoodEntry(args CreateMoodArgs) (*types.MoodEntry, error) {
	if args.Mood < types.MoodMin || args.Mood > types.MoodMax {
		return nil, errors.New("MoodLogic.CreateMoodEntry.Mood.range", i18n.ERROR_MOOD_OUT_OF_RANGE, fmt.Errorf("mood %d", args.Mood)).Code(http.StatusBadRequest)
	}

	now := time.Now()
	if args.Date == "" {
		args.Date = now.Format("2006-01-02")
	}
	if args.Time == "" {
		args.Time = now.Format("15:04")
	}

	entry := types.MoodEntry{
		ID:        utils.GenSpecIDStr(),
		Mood:      args.Mood,
		Label:     moodLabels[args.Mood],
		Notes:     args.Notes,
		Date:      args.Date,
		Time:      args.Time,
		CreatedAt: now.Unix(),
	}

	if err := l.core.Store().MoodEntryStore().Create(l.ctx, entry); err != nil {
		return nil, errors.New("MoodLogic.CreateMoodEntry.MoodEntryStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return &entry, nil
}

func (l *MoodLogic) GetMoodEntry(id string) (*types.MoodEntry, error) {
	entry, err := l.core.Store().MoodEntryStore().Get(l.ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("MoodLogic.GetMoodEntry.MoodEntryStore.Get.nil", i18n.ERROR_NOTFOUND, err).Code(http.StatusNotFound)
		}
		return nil, errors.New("MoodLogic.GetMoodEntry.MoodEntryStore.Get", i18n.ERROR_INTERNAL, err)
	}
	return entry, nil
}

type MoodEntryList struct {
	List  []*types.MoodEntry `json:"list"`
	Total int64              `json:"total"`
}

func (l *MoodLogic) ListMoodEntries(page, pageSize uint64) (*MoodEntryList, error) {
	list, err := l.core.Store().MoodEntryStore().List(l.ctx, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("MoodLogic.ListMoodEntries.MoodEntryStore.List", i18n.ERROR_INTERNAL, err)
	}

	total, err := l.core.Store().MoodEntryStore().Total(l.ctx)
	if err != nil {
		return nil, errors.New("MoodLogic.ListMoodEntries.MoodEntryStore.Total", i18n.ERROR_INTERNAL, err)
	}

	return &MoodEntryList{
		List:  list,
		Total: total,
	}, nil
}

func (l *MoodLogic) DeleteMoodEntry(id string) error {
	if err := l.core.Store().MoodEntryStore().Delete(l.ctx, id); err != nil {
		return errors.New("MoodLogic.DeleteMoodEntry.MoodEntryStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
