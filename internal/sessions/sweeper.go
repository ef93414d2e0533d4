package sessions

import (
	"context"
	"time"

	"fintrack/internal/logger"
)

// Sweep periodically deletes expired sessions until the context is
// cancelled. Run it in its own goroutine from the composition root.
func Sweep(ctx context.Context, store Storer, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := store.DeleteExpired()
			if err != nil {
				logger.Get().Errorw("session sweep failed", "error", err.Error())
				continue
			}
			if deleted > 0 {
				logger.Get().Infow("swept expired sessions", "deleted", deleted)
			}
		}
	}
}
