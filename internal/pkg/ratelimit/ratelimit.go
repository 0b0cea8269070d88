package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a per-key sliding-window counter. A key is admitted iff fewer
// than maxRequests admissions happened within the trailing window. The window
// rolls: it is measured from the current request backwards, not from fixed
// boundaries.
type Limiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
	now    func() time.Time
}

func New(max int, window time.Duration) *Limiter {
	return &Limiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

// Allow records an admission for key and reports whether it was within limit.
// A denied request does not count against the window.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	valid := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= l.max {
		l.hits[key] = valid
		return false
	}

	l.hits[key] = append(valid, now)
	return true
}

// Prune drops keys whose every admission has aged out of the window.
// Call it periodically so idle keys do not accumulate.
func (l *Limiter) Prune() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	for key, times := range l.hits {
		alive := false
		for _, t := range times {
			if t.After(cutoff) {
				alive = true
				break
			}
		}
		if !alive {
			delete(l.hits, key)
		}
	}
}

// StartPruning runs Prune on every tick until stop is closed.
func (l *Limiter) StartPruning(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.Prune()
			case <-stop:
				return
			}
		}
	}()
}
