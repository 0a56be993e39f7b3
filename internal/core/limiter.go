package core

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Limiter interface {
	Allow() bool
}

var (
	limiterMu sync.Mutex
	limiters  = make(map[string]*rate.Limiter)
)

// UseLimiter hands out one limiter per key+method pair. ratelimit is the
// allowed number of calls per minute.
func (s *Core) UseLimiter(key string, method string, ratelimit int) Limiter {
	limiterMu.Lock()
	defer limiterMu.Unlock()

	mapKey := key + ":" + method
	l, exist := limiters[mapKey]
	if !exist {
		limit := rate.Every(time.Minute / time.Duration(ratelimit))
		l = rate.NewLimiter(limit, ratelimit*2)
		limiters[mapKey] = l
	}
	return l
}
