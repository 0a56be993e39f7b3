package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/innerguide/guide-api/internal/core"
	"github.com/innerguide/guide-api/pkg/ai"
	"github.com/innerguide/guide-api/pkg/errors"
	"github.com/innerguide/guide-api/pkg/i18n"
	"github.com/innerguide/guide-api/pkg/types"
	"github.com/innerguide/guide-api/pkg/utils"
)

type InsightLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewInsightLogic(ctx context.Context, core *core.Core) *InsightLogic {
	return &InsightLogic{
		ctx:  ctx,
		core: core,
	}
}

// GenerateInsight runs one analysis call for the entry and replaces the
// stored insight. Regeneration over an existing insight is allowed.
func (l *InsightLogic) GenerateInsight(entryID string) (*types.AIInsight, error) {
	entry, err := NewJournalLogic(l.ctx, l.core).GetJournalEntry(entryID)
	if err != nil {
		return nil, errors.Trace("InsightLogic.GenerateInsight", err)
	}

	aiSrv := l.core.Srv().AI()
	if !aiSrv.Available() {
		return nil, errors.New("InsightLogic.GenerateInsight.Available", i18n.ERROR_AI_UNAVAILABLE, nil).Code(http.StatusServiceUnavailable)
	}

	result, err := aiSrv.Analyze(l.ctx, ai.InsightRequest{
		Content:   entry.Content,
		Date:      entry.Date,
		City:      entry.City,
		Country:   entry.Country,
		MoonPhase: entry.MoonPhase,
	})
	if err != nil {
		l.core.Metrics().CountInsight(aiSrv.Name(), "error")
		return nil, errors.New("InsightLogic.GenerateInsight.Analyze", i18n.ERROR_AI_UNAVAILABLE, err).Code(http.StatusServiceUnavailable)
	}
	if !result.Available {
		l.core.Metrics().CountInsight(aiSrv.Name(), "unavailable")
		return nil, errors.New("InsightLogic.GenerateInsight.result.unavailable", i18n.ERROR_AI_UNAVAILABLE, nil).Code(http.StatusServiceUnavailable)
	}
	l.core.Metrics().CountInsight(aiSrv.Name(), "ok")

	insight := types.AIInsight{
		ID:          utils.GenSpecIDStr(),
		EntryID:     entry.ID,
		Sentiment:   result.Sentiment,
		Score:       result.Score,
		Emotions:    result.Emotions,
		Themes:      result.Themes,
		Suggestions: result.Suggestions,
		Reflection:  result.Reflection,
		Model:       result.Model,
		CreatedAt:   time.Now().Unix(),
	}

	if err := l.core.Store().AIInsightStore().Save(l.ctx, insight); err != nil {
		return nil, errors.New("InsightLogic.GenerateInsight.AIInsightStore.Save", i18n.ERROR_INTERNAL, err)
	}
	return &insight, nil
}
