package limiter

import (
	"testing"
	"time"
)

func TestMemoryLimiter_BasicFlow(t *testing.T) {
	lim := NewMemoryLimiter(50*time.Millisecond, 3)
	key := "10.0.0.1"

	if lim.TooMany(key) {
		t.Fatalf("should not be limited initially")
	}

	lim.Hit(key)
	lim.Hit(key)
	if lim.TooMany(key) {
		t.Fatalf("should not be limited before reaching threshold")
	}

	lim.Hit(key)
	if !lim.TooMany(key) {
		t.Fatalf("should be limited after reaching threshold")
	}

	time.Sleep(60 * time.Millisecond)
	if lim.TooMany(key) {
		t.Fatalf("should not be limited after window passes")
	}
}

func TestMemoryLimiter_ExpiresOldHits(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	lim := NewMemoryLimiter(time.Minute, 2)
	lim.now = func() time.Time { return now }

	lim.Hit("10.0.0.2")
	now = now.Add(45 * time.Second)
	lim.Hit("10.0.0.2")

	if !lim.TooMany("10.0.0.2") {
		t.Fatalf("expected both hits to count")
	}

	now = now.Add(30 * time.Second)

	if lim.TooMany("10.0.0.2") {
		t.Fatalf("expected the first hit to have expired")
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	lim := NewMemoryLimiter(time.Minute, 1)

	lim.Hit("a")

	if lim.TooMany("b") {
		t.Fatalf("unrelated key should not be limited")
	}
}
