package domain

import "time"

// BackoffPolicy governs retry timing for external actions. It is a pure
// configuration value: MaxAttempts bounds the number of invocations and
// BaseInterval is the delay before the second attempt, doubling after each
// further failure (ratio 2, no jitter, no cap).
type BackoffPolicy struct {
	MaxAttempts  int
	BaseInterval time.Duration
}

// DefaultBackoffPolicy mirrors the shipped configuration defaults:
// three attempts, five seconds before the first retry.
func DefaultBackoffPolicy() BackoffPolicy {
	return BackoffPolicy{
		MaxAttempts:  3,
		BaseInterval: 5 * time.Second,
	}
}
