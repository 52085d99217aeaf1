package planner

import (
	"context"
	"time"
)

// Clock abstracts the retry-loop sleep so tests can run the full attempt
// schedule without actually waiting several seconds.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RealClock is the production Clock.
func RealClock() Clock { return realClock{} }

// backoffDelay returns the exponential backoff before the given retry
// attempt (0-indexed): 1s, 2s, 4s, matching spec §4.7 step 3.
func backoffDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	return time.Duration(1<<uint(attempt)) * time.Second
}
