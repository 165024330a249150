package autodoc_test

import (
	"testing"
	"time"

	"github.com/noahmasoud/autodoc"
	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy_Delay(t *testing.T) {
	t.Parallel()

	t.Run("grows exponentially up to the cap", func(t *testing.T) {
		t.Parallel()

		policy := autodoc.DefaultRetryPolicy()
		policy.Rand = func() float64 { return 0 } // no jitter

		assert.Equal(t, 500*time.Millisecond, policy.Delay(0))
		assert.Equal(t, 1*time.Second, policy.Delay(1))
		assert.Equal(t, 2*time.Second, policy.Delay(2))
		assert.Equal(t, 4*time.Second, policy.Delay(3))
		assert.Equal(t, 8*time.Second, policy.Delay(4))
		assert.Equal(t, 8*time.Second, policy.Delay(5), "capped at MaxDelay")
		assert.Equal(t, 8*time.Second, policy.Delay(100), "huge attempt counts stay capped")
	})

	t.Run("jitter stays within the documented bounds", func(t *testing.T) {
		t.Parallel()

		policy := autodoc.DefaultRetryPolicy()

		for attempt := 0; attempt < 8; attempt++ {
			capped := autodoc.DefaultBaseDelay << uint(attempt)
			if capped > autodoc.DefaultMaxDelay {
				capped = autodoc.DefaultMaxDelay
			}
			for i := 0; i < 50; i++ {
				d := policy.Delay(attempt)
				assert.GreaterOrEqual(t, d, capped)
				assert.LessOrEqual(t, d, capped+time.Duration(autodoc.DefaultJitterRatio*float64(capped)))
			}
		}
	})

	t.Run("maximum jitter is applied at full random value", func(t *testing.T) {
		t.Parallel()

		policy := autodoc.DefaultRetryPolicy()
		policy.Rand = func() float64 { return 0.999999 }

		d := policy.Delay(0)
		assert.Greater(t, d, 700*time.Millisecond)
		assert.LessOrEqual(t, d, 750*time.Millisecond)
	})

	t.Run("never negative", func(t *testing.T) {
		t.Parallel()

		policy := autodoc.RetryPolicy{
			BaseDelay:   autodoc.DefaultBaseDelay,
			MaxDelay:    autodoc.DefaultMaxDelay,
			JitterRatio: -1, // hostile configuration
		}

		assert.GreaterOrEqual(t, policy.Delay(-5), time.Duration(0))
		assert.Equal(t, autodoc.DefaultBaseDelay, policy.Delay(0))
	})
}

func TestPatchStatus_Terminal(t *testing.T) {
	t.Parallel()

	assert.False(t, autodoc.StatusProposed.Terminal())
	assert.True(t, autodoc.StatusApplied.Terminal())
	assert.True(t, autodoc.StatusRejected.Terminal())
	assert.True(t, autodoc.StatusError.Terminal())
}
