package marketplace

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiters enforces each marketplace's request budget. Producers call Wait
// before every fetch so regional sites never see more than their configured
// requests per minute.
type Limiters struct {
	mu       sync.Mutex
	limiters map[Type]*rate.Limiter
}

// NewLimiters builds limiters from the supported marketplace configs.
func NewLimiters() *Limiters {
	l := &Limiters{limiters: make(map[Type]*rate.Limiter)}
	for _, c := range Supported() {
		perMinute := c.RateLimit
		if perMinute <= 0 {
			perMinute = 60
		}
		l.limiters[c.ID] = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
	}
	return l
}

// Wait blocks until the marketplace's limiter grants a slot or the context
// is canceled. Unknown marketplaces get the Custom budget.
func (l *Limiters) Wait(ctx context.Context, id Type) error {
	return l.limiterFor(id).Wait(ctx)
}

// Allow reports whether a request may proceed immediately.
func (l *Limiters) Allow(id Type) bool {
	return l.limiterFor(id).Allow()
}

func (l *Limiters) limiterFor(id Type) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lim, ok := l.limiters[id]; ok {
		return lim
	}
	return l.limiters[Custom]
}
