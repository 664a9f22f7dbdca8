package ads1110

import (
	"context"
	"time"
)

// Sleeper is the timer capability used for the coarse conversion wait and the
// quarter-interval polling waits. It is injectable (see WithSleeper) so the
// poll loop can be tested with a fake clock.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// timerSleeper sleeps on a real timer, honoring context cancellation.
type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
