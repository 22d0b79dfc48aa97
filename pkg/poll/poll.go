// Package poll provides a fixed-interval retry combinator: run a predicate
// until it reports done or an attempt budget is exhausted.
package poll

import (
	"context"
	"fmt"
	"time"
)

// ErrBudgetExhausted is returned by Until when every attempt reported not-done.
var ErrBudgetExhausted = fmt.Errorf("poll: attempt budget exhausted")

// Predicate is evaluated once per attempt. done=true stops the poll
// successfully; a non-nil error aborts it immediately.
type Predicate func(ctx context.Context) (done bool, err error)

// Until evaluates fn up to attempts times, sleeping interval between
// attempts. The first attempt runs immediately. Returns nil as soon as fn
// reports done, ErrBudgetExhausted after the final attempt, fn's error if one
// occurs, or ctx.Err() if the context is cancelled during a sleep.
func Until(ctx context.Context, interval time.Duration, attempts int, fn Predicate) error {
	if attempts <= 0 {
		return fmt.Errorf("poll: attempts must be positive, got %d", attempts)
	}

	for i := 0; i < attempts; i++ {
		if i > 0 {
			timer := time.NewTimer(interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		done, err := fn(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}

	return ErrBudgetExhausted
}
