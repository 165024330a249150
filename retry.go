package autodoc

import (
	"math/rand"
	"time"
)

// Default retry tuning. Attempt delays grow exponentially from BaseDelay up
// to MaxDelay, with up to JitterRatio of the capped delay added as random
// jitter to avoid synchronized retry storms.
const (
	DefaultBaseDelay   = 500 * time.Millisecond
	DefaultMaxDelay    = 8 * time.Second
	DefaultJitterRatio = 0.5
	DefaultMaxRetries  = 3
)

// RetryPolicy computes backoff delays for retried requests. The decision is
// memoryless per request: no state persists across logical requests.
type RetryPolicy struct {
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	JitterRatio float64
	MaxRetries  int

	// Rand returns a value in [0.0, 1.0) used to scale jitter.
	// If nil, math/rand.Float64 is used.
	Rand func() float64
}

// DefaultRetryPolicy returns a policy with the recommended defaults.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		BaseDelay:   DefaultBaseDelay,
		MaxDelay:    DefaultMaxDelay,
		JitterRatio: DefaultJitterRatio,
		MaxRetries:  DefaultMaxRetries,
	}
}

// Delay returns the wait before retry attempt n (0-indexed). The result is
// always within [capped, capped*(1+JitterRatio)] where
// capped = min(BaseDelay<<n, MaxDelay); it is never negative or unbounded.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	capped := p.BaseDelay
	// Shift with overflow guard: past 62 doublings any positive base
	// exceeds MaxDelay anyway.
	if attempt < 62 {
		capped = p.BaseDelay << uint(attempt)
	} else {
		capped = p.MaxDelay
	}
	if capped > p.MaxDelay || capped <= 0 {
		capped = p.MaxDelay
	}

	ratio := p.JitterRatio
	if ratio < 0 {
		ratio = 0
	}

	randFn := p.Rand
	if randFn == nil {
		randFn = rand.Float64
	}

	jitter := time.Duration(randFn() * ratio * float64(capped))
	return capped + jitter
}
