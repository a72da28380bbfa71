package limiter

import (
	"sync"
	"time"
)

// MemoryLimiter counts hits per key (usually a client IP) and refuses a key
// once maxHits of them fall inside the trailing window. State is per process.
type MemoryLimiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
	window  time.Duration
	maxHits int
	now     func() time.Time
}

// NewMemoryLimiter allows at most maxHits per key in any window-long span.
func NewMemoryLimiter(window time.Duration, maxHits int) *MemoryLimiter {
	return &MemoryLimiter{
		history: make(map[string][]time.Time),
		window:  window,
		maxHits: maxHits,
		now:     time.Now,
	}
}

// TooMany prunes expired hits for key and reports whether the rest reach the cap.
func (r *MemoryLimiter) TooMany(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	kept := r.history[key][:0]

	for _, at := range r.history[key] {
		if now.Sub(at) <= r.window {
			kept = append(kept, at)
		}
	}

	if len(kept) == 0 {
		delete(r.history, key)

		return false
	}

	r.history[key] = kept

	return len(kept) >= r.maxHits
}

func (r *MemoryLimiter) Hit(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history[key] = append(r.history[key], r.now())
}
