// Package backoff runs actions under a bounded exponential retry policy.
package backoff

import (
	"context"
	"fmt"
	"time"

	"github.com/zoomgrab/zoomgrab/internal/core/domain"
	"github.com/zoomgrab/zoomgrab/internal/core/ports"
)

// Executor retries failed action invocations with exponentially growing
// pauses. Only invocation errors are retried: an action whose tool ran to
// completion returns a result, and whatever that result says is final for
// this execution.
type Executor struct {
	logger ports.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewExecutor creates an Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		sleep:  sleepCtx,
	}
}

// Execute runs action up to policy.MaxAttempts times. It returns the result
// of the first completed invocation, true and the number of invocations made,
// or false when every attempt errored or the context ended. The pause doubles
// after each failed attempt starting from policy.BaseInterval, with no cap
// and no jitter.
func (e *Executor) Execute(ctx context.Context, action ports.Action, policy domain.BackoffPolicy) (bool, *domain.ActionResult, int) {
	interval := policy.BaseInterval

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		res, err := action.Run(ctx)
		if err == nil {
			return true, res, attempt
		}

		if e.logger != nil {
			e.logger.Warn(fmt.Sprintf("attempt %d/%d failed: %v", attempt, policy.MaxAttempts, err))
		}

		if attempt == policy.MaxAttempts {
			break
		}

		if e.logger != nil {
			e.logger.Info(fmt.Sprintf("retrying in %s", interval))
		}
		if err := e.sleep(ctx, interval); err != nil {
			return false, nil, attempt
		}
		interval *= 2
	}

	return false, nil, policy.MaxAttempts
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
