package cooldown

import (
	"context"
	"log"
	"time"
)

// RunCleaner runs a background goroutine that prunes idle cooldown entries
// until ctx is done. Call from main or app lifecycle.
func RunCleaner(ctx context.Context, t *Tracker, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := t.Prune(maxIdle, time.Now()); n > 0 {
				log.Printf("[INFO] Pruned %d idle cooldown entries", n)
			}
		}
	}
}
