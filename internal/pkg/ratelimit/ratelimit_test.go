package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_SixthRequestDenied(t *testing.T) {
	l := New(5, time.Hour)

	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "request %d should be allowed", i+1)
	}
	assert.False(t, l.Allow("10.0.0.1"), "6th request within the hour must be denied")
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l := New(5, time.Hour)

	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("10.0.0.1"))
	}
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "a different IP is not affected")
}

func TestLimiter_WindowRolls(t *testing.T) {
	l := New(2, time.Hour)

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }

	assert.True(t, l.Allow("k"))
	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))

	// 61 minutes later both admissions have aged out.
	current = current.Add(61 * time.Minute)
	assert.True(t, l.Allow("k"))
}

func TestLimiter_DeniedRequestDoesNotCount(t *testing.T) {
	l := New(1, time.Hour)

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }

	assert.True(t, l.Allow("k"))
	for i := 0; i < 10; i++ {
		assert.False(t, l.Allow("k"))
	}

	// Only the single admitted request occupies the window.
	current = current.Add(61 * time.Minute)
	assert.True(t, l.Allow("k"))
}

func TestLimiter_PruneDropsIdleKeys(t *testing.T) {
	l := New(5, time.Hour)

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }

	l.Allow("a")
	l.Allow("b")
	assert.Len(t, l.hits, 2)

	current = current.Add(2 * time.Hour)
	l.Prune()
	assert.Len(t, l.hits, 0)
}
