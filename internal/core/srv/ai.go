package srv

import (
	"context"
	"log/slog"
	"os"

	"github.com/innerguide/guide-api/pkg/ai"
	"github.com/innerguide/guide-api/pkg/ai/openai"
	"github.com/innerguide/guide-api/pkg/ai/unavailable"
)

type AIConfig struct {
	Openai Openai `toml:"openai"`
}

type Openai struct {
	Token    string `toml:"token"`
	Endpoint string `toml:"endpoint"`
	Model    string `toml:"model"`
}

func (c *AIConfig) FromENV() {
	c.Openai.FromENV()
}

func (c *Openai) FromENV() {
	c.Token = os.Getenv("GUIDE_API_AI_OPENAI_TOKEN")
	c.Endpoint = os.Getenv("GUIDE_API_AI_OPENAI_ENDPOINT")
	c.Model = os.Getenv("GUIDE_API_AI_OPENAI_MODEL")
}

// AISrv wraps the configured driver and owns the degradation contract:
// analysis never fails a caller, it degrades to the unavailable result.
type AISrv struct {
	driver ai.Analyzer
}

func SetupAI(cfg AIConfig) *AISrv {
	s := &AISrv{}
	if cfg.Openai.Token != "" {
		s.driver = openai.New(cfg.Openai.Token, cfg.Openai.Endpoint, cfg.Openai.Model)
	} else {
		s.driver = unavailable.New()
	}

	slog.Info("ai driver installed", slog.String("driver", s.driver.Name()))
	return s
}

func (s *AISrv) Name() string {
	return s.driver.Name()
}

func (s *AISrv) Available() bool {
	return s.driver.Available()
}

func (s *AISrv) Analyze(ctx context.Context, req ai.InsightRequest) (ai.InsightResult, error) {
	return s.driver.Analyze(ctx, req)
}

// SafeAnalyze swallows driver errors, logging them and handing back the
// unavailable result. Journal writes must never hinge on the model.
func (s *AISrv) SafeAnalyze(ctx context.Context, req ai.InsightRequest) ai.InsightResult {
	result, err := s.driver.Analyze(ctx, req)
	if err != nil {
		slog.Error("ai analyze failed", slog.String("driver", s.driver.Name()), slog.String("error", err.Error()))
		return ai.UnavailableResult()
	}
	return result
}
