package sync

import (
	"time"

	"github.com/cenkalti/backoff/v5"
)

// RetryPolicy spaces retries of a still-pending operation across sessions.
// After a retryable failure the operation is not eligible again until its
// next-attempt time, computed from the attempt count with exponential
// backoff and jitter.
type RetryPolicy struct {
	InitialInterval     time.Duration
	MaxInterval         time.Duration
	Multiplier          float64
	RandomizationFactor float64
}

// DefaultRetryPolicy returns the policy used in production: 500ms doubling
// up to 5 minutes with 25% jitter. Combined with the queue's attempt
// ceiling this bounds how long a persistently failing operation is retried
// before abandonment.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		InitialInterval:     500 * time.Millisecond,
		MaxInterval:         5 * time.Minute,
		Multiplier:          2.0,
		RandomizationFactor: 0.25,
	}
}

// Delay returns the wait before the next attempt, given how many attempts
// have already failed.
func (p RetryPolicy) Delay(attempts int) time.Duration {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = p.InitialInterval
	eb.MaxInterval = p.MaxInterval
	eb.Multiplier = p.Multiplier
	eb.RandomizationFactor = p.RandomizationFactor

	delay := eb.NextBackOff()
	for i := 1; i < attempts; i++ {
		delay = eb.NextBackOff()
	}
	return delay
}
