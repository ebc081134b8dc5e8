// Package access decides whether the info command may run in a given
// (guild, channel, user) context. Denials are expected control flow, not
// errors worth logging.
package access

import (
	"errors"
	"fmt"
	"time"

	"ffinfo/internal/cooldown"
	"ffinfo/internal/storage"
)

// ErrChannelNotAllowed denies an invocation from outside the allow-list.
var ErrChannelNotAllowed = errors.New("command not allowed in this channel")

// CooldownActiveError denies an invocation inside the cooldown window.
type CooldownActiveError struct {
	Remaining int // whole seconds left to wait
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("cooldown active, %ds remaining", e.Remaining)
}

type Gate struct {
	store   *storage.Storage
	tracker *cooldown.Tracker
}

func New(store *storage.Storage, tracker *cooldown.Tracker) *Gate {
	return &Gate{store: store, tracker: tracker}
}

// Authorize checks the channel restriction first, then the cooldown, so a
// disallowed-channel invocation never consumes a cooldown slot. On success
// it returns the cooldown that was applied, in seconds.
func (g *Gate) Authorize(guildID, channelID, userID string, now time.Time) (int, error) {
	if !g.store.IsChannelAllowed(guildID, channelID) {
		return 0, ErrChannelNotAllowed
	}

	seconds := g.store.EffectiveCooldown(guildID)
	remaining, ok := g.tracker.CheckAndStamp(userID, time.Duration(seconds)*time.Second, now)
	if !ok {
		return 0, &CooldownActiveError{Remaining: remaining}
	}
	return seconds, nil
}
