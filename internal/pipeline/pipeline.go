// Package pipeline runs one info invocation end to end: validate the uid,
// authorize the (guild, channel, user) context, fetch from the three
// upstream endpoints, compose the card image and render the blocks. One
// failing image endpoint never aborts the whole response.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"ffinfo/internal/access"
	"ffinfo/internal/ffapi"
	"ffinfo/internal/imaging"
	"ffinfo/internal/render"
)

const minUIDLength = 6

type Request struct {
	GuildID   string
	ChannelID string
	UserID    string
	UID       string

	// OnAdmitted fires after authorization succeeds and before the
	// upstream fetches start, so the caller can acknowledge the command
	// within the platform deadline.
	OnAdmitted func()
}

// Result is what the invoker delivers back to the user. Reply is set when
// the pipeline stopped before rendering: a validation failure, an access
// denial or an info-fetch failure.
type Result struct {
	Reply     string
	Ephemeral bool
	Response  *render.Response
}

type Pipeline struct {
	gate     *access.Gate
	client   *ffapi.Client
	composer imaging.Composer

	now func() time.Time
}

func New(gate *access.Gate, client *ffapi.Client, composer imaging.Composer) *Pipeline {
	return &Pipeline{
		gate:     gate,
		client:   client,
		composer: composer,
		now:      time.Now,
	}
}

// Run executes the invocation. It never panics outward: an unexpected
// failure is logged for operators and reported to the user generically.
func (p *Pipeline) Run(ctx context.Context, req Request) (res *Result) {
	stage := "validating"
	started := p.now()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERR] Info pipeline panic at %s stage (uid=%s): %v", stage, req.UID, r)
			res = &Result{Reply: "Unexpected error. Try again later."}
		}
		log.Printf("[DEBUG] Info pipeline done in %s (uid=%s, stage=%s)", time.Since(started), req.UID, stage)
	}()

	if !ValidUID(req.UID) {
		return &Result{Reply: "Invalid UID! It must be numbers only and at least 6 digits."}
	}

	stage = "authorizing"
	if _, err := p.gate.Authorize(req.GuildID, req.ChannelID, req.UserID, p.now()); err != nil {
		return &Result{Reply: denyMessage(err), Ephemeral: true}
	}

	if req.OnAdmitted != nil {
		req.OnAdmitted()
	}

	stage = "fetching"
	var (
		wg      sync.WaitGroup
		record  *ffapi.PlayerRecord
		infoErr error
		card    []byte
		outfit  []byte
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		record, infoErr = p.client.PlayerInfo(ctx, req.UID)
	}()
	go func() {
		defer wg.Done()
		data, err := p.client.ProfileCardImage(ctx, req.UID)
		if err != nil {
			log.Printf("[WARN] Profile card fetch failed (uid=%s): %v", req.UID, err)
			return
		}
		card = data
	}()
	go func() {
		defer wg.Done()
		data, err := p.client.OutfitImage(ctx, req.UID)
		if err != nil {
			log.Printf("[WARN] Outfit fetch failed (uid=%s): %v", req.UID, err)
			return
		}
		outfit = data
	}()
	wg.Wait()

	if infoErr != nil {
		if errors.Is(infoErr, ffapi.ErrNotFound) {
			return &Result{Reply: fmt.Sprintf("Player with UID `%s` not found.", req.UID)}
		}
		log.Printf("[ERR] Info fetch failed (uid=%s): %v", req.UID, infoErr)
		return &Result{Reply: "API error. Try again later."}
	}

	stage = "composing"
	if len(card) > 0 {
		card = p.composer.ComposeCard(card)
	}

	stage = "rendering"
	return &Result{Response: render.Build(req.UID, record, card, outfit)}
}

// ValidUID reports whether the identifier is digits only and long enough
// to be sent upstream. Invalid input never leaves the process.
func ValidUID(uid string) bool {
	if len(uid) < minUIDLength {
		return false
	}
	for _, r := range uid {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func denyMessage(err error) string {
	var cd *access.CooldownActiveError
	if errors.As(err, &cd) {
		return fmt.Sprintf("Please wait %ds before using this command again", cd.Remaining)
	}
	return "This command is not allowed in this channel."
}
