package unavailable

import (
	"context"

	"github.com/innerguide/guide-api/pkg/ai"
)

const NAME = "unavailable"

// Driver is installed when no AI credential is configured. Every call
// returns the explicit unavailable result so callers can tell
// "intentionally disabled" apart from a transient failure.
type Driver struct{}

func New() *Driver {
	return &Driver{}
}

func (s *Driver) Name() string {
	return NAME
}

func (s *Driver) Available() bool {
	return false
}

func (s *Driver) Analyze(ctx context.Context, req ai.InsightRequest) (ai.InsightResult, error) {
	return ai.UnavailableResult(), nil
}
