package logwatch

import (
	"context"
	"time"
)

// Poll calls provider, forwards everything it produced, sleeps for interval
// and repeats until ctx is cancelled. The returned channel is closed only on
// cancellation; Poll has no other termination condition.
func Poll[T any](ctx context.Context, interval time.Duration, provider func() []T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for {
			for _, item := range provider() {
				select {
				case <-ctx.Done():
					return
				case out <- item:
				}
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(interval):
			}
		}
	}()
	return out
}
