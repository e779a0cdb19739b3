package devserver

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// loginLimiter rate-limits login attempts per client address.
type loginLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	visitors map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLoginLimiter(perSecond float64, burst int) *loginLimiter {
	if burst < 1 {
		burst = 1
	}
	return &loginLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		visitors: make(map[string]*visitor),
	}
}

func (l *loginLimiter) allow(addr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[addr]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[addr] = v
	}
	v.lastSeen = time.Now()

	return v.limiter.Allow()
}

// prune forgets addresses not seen within idle.
func (l *loginLimiter) prune(idle time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-idle)
	for addr, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, addr)
		}
	}
}
