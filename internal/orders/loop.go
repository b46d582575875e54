package orders

import (
	"context"
	"time"
)

// runEvery calls fn immediately and then on every tick until ctx is
// cancelled. Both pollers run on this loop so neither can outlive its
// owning view.
func runEvery(ctx context.Context, interval time.Duration, fn func(context.Context)) {
	fn(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}
