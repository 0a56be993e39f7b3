package process

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"

	"github.com/innerguide/guide-api/internal/core"
	"github.com/innerguide/guide-api/pkg/ai"
	"github.com/innerguide/guide-api/pkg/safe"
	"github.com/innerguide/guide-api/pkg/types"
	"github.com/innerguide/guide-api/pkg/utils"
)

var insightProcess *InsightProcess

// StartProcess launches the insight enrichment worker and the retention
// cron. The returned cancel stops both.
func StartProcess(core *core.Core) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())

	interval := time.Duration(core.Cfg().Import.InsightIntervalSeconds) * time.Second
	insightProcess = &InsightProcess{
		ctx:     ctx,
		core:    core,
		queue:   make(chan *types.JournalEntry, 10000),
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}

	go safe.Run(insightProcess.Start)

	crontab := cron.New()
	crontab.AddFunc("@daily", func() {
		safe.Run(func() {
			ClearOldCopies(core)
		})
	})
	crontab.Start()

	go safe.Run(func() {
		<-ctx.Done()
		crontab.Stop()
	})

	return cancel
}

// EnqueueInsight schedules background analysis for an entry. A full
// queue or a stopped process drops the request, the entry itself is
// already persisted.
func EnqueueInsight(entry *types.JournalEntry) {
	if insightProcess == nil {
		return
	}
	select {
	case insightProcess.queue <- entry:
	default:
		slog.Warn("insight queue full, dropping enrichment request", slog.String("entry_id", entry.ID))
	}
}

type InsightProcess struct {
	ctx     context.Context
	core    *core.Core
	queue   chan *types.JournalEntry
	limiter *rate.Limiter
}

func (p *InsightProcess) Start() {
	for {
		select {
		case <-p.ctx.Done():
			return
		case entry := <-p.queue:
			if err := p.limiter.Wait(p.ctx); err != nil {
				return
			}
			p.analyze(entry)
		}
	}
}

func (p *InsightProcess) analyze(entry *types.JournalEntry) {
	aiSrv := p.core.Srv().AI()
	if !aiSrv.Available() {
		return
	}

	ctx, cancel := context.WithTimeout(p.ctx, time.Second*60)
	defer cancel()

	result := aiSrv.SafeAnalyze(ctx, ai.InsightRequest{
		Content:   entry.Content,
		Date:      entry.Date,
		City:      entry.City,
		Country:   entry.Country,
		MoonPhase: entry.MoonPhase,
	})
	if !result.Available {
		p.core.Metrics().CountInsight(aiSrv.Name(), "unavailable")
		return
	}
	p.core.Metrics().CountInsight(aiSrv.Name(), "ok")

	err := p.core.Store().AIInsightStore().Save(ctx, types.AIInsight{
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
	})
	if err != nil {
		slog.Error("failed to save background insight", slog.String("entry_id", entry.ID), slog.String("error", err.Error()))
	}
}

// ClearOldCopies sweeps stored raw import copies past the configured
// retention window.
func ClearOldCopies(core *core.Core) {
	retention := core.Cfg().Import.CopyRetentionDays
	if retention <= 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	deadline := time.Now().AddDate(0, 0, -retention).Unix()
	if err := core.Store().LocalCopyStore().DeleteOlderThan(ctx, deadline); err != nil {
		slog.Error("failed to clear old import copies", slog.String("error", err.Error()))
		return
	}
	slog.Debug("cleared old import copies", slog.Int64("deadline", deadline))
}
