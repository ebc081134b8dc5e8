package cooldown

import (
	"sync"
	"time"
)

// Tracker remembers the last accepted invocation per user. Check-and-stamp
// is a single operation under one lock so two racing invocations by the
// same user cannot both pass.
type Tracker struct {
	mu   sync.Mutex
	last map[string]time.Time
}

func NewTracker() *Tracker {
	return &Tracker{last: make(map[string]time.Time)}
}

// CheckAndStamp accepts the invocation and records now when the user is
// outside the cooldown window. On denial it returns the remaining wait in
// whole seconds (rounded down) and leaves the stored stamp untouched.
func (t *Tracker) CheckAndStamp(userID string, cooldown time.Duration, now time.Time) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.last[userID]; ok {
		elapsed := now.Sub(prev)
		if elapsed < cooldown {
			return int((cooldown - elapsed).Seconds()), false
		}
	}

	t.last[userID] = now
	return 0, true
}

// Prune drops entries idle for longer than maxIdle and returns how many
// were removed. Keeps the map bounded over the process lifetime.
func (t *Tracker) Prune(maxIdle time.Duration, now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for userID, stamp := range t.last {
		if now.Sub(stamp) > maxIdle {
			delete(t.last, userID)
			removed++
		}
	}
	return removed
}

// Len reports the number of tracked users.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.last)
}
