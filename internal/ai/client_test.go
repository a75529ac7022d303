package ai

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffGrowsAndCaps(t *testing.T) {
	p := DefaultRetryPolicy()
	rng := rand.New(rand.NewSource(1))

	for attempt := 0; attempt < 6; attempt++ {
		base := p.BaseDelay << uint(attempt)
		if base > p.MaxDelay || base <= 0 {
			base = p.MaxDelay
		}
		d := p.Backoff(attempt, rng)
		assert.GreaterOrEqual(t, d, time.Duration(float64(base)*0.2), "attempt %d", attempt)
		assert.Less(t, d, time.Duration(float64(base)*0.5), "attempt %d", attempt)
	}
}

func TestBackoffNeverExceedsCap(t *testing.T) {
	p := DefaultRetryPolicy()
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		assert.Less(t, p.Backoff(20, rng), p.MaxDelay)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("  abc  ", 10))
	assert.Equal(t, "abcde …", Truncate("abcdefgh", 5))
	assert.Equal(t, "متن …", Truncate("متن فارسی", 3))
}
