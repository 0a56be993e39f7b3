package srv

import (
	"github.com/innerguide/guide-api/pkg/ai"
)

type Srv struct {
	ai *AISrv
}

func SetupSrvs(opts ...ApplyFunc) *Srv {
	a := &Srv{}

	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (s *Srv) AI() *AISrv {
	return s.ai
}

type ApplyFunc func(s *Srv)

func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		s.ai = SetupAI(cfg)
	}
}

var _ ai.Analyzer = (*AISrv)(nil)
