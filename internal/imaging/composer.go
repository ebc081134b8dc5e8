// Package imaging overlays the fetched profile card onto a padded
// transparent canvas. Composition is strictly best-effort: any decode or
// encode failure hands back the original bytes untouched.
package imaging

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"log"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/nfnt/resize"
)

const (
	cardMargin     = 20
	maxCardWidth   = 340
	minCanvasWidth = 600
)

// Composer turns fetched profile-card bytes into the bytes attached to
// the reply.
type Composer interface {
	ComposeCard(card []byte) []byte
}

// ForCapability selects the implementation at startup: the full compositor
// when image processing is enabled, a pass-through otherwise.
func ForCapability(enabled bool) Composer {
	if enabled {
		return CanvasComposer{}
	}
	return PassThrough{}
}

// PassThrough returns card bytes unchanged.
type PassThrough struct{}

func (PassThrough) ComposeCard(card []byte) []byte { return card }

// CanvasComposer pastes the card flush to the bottom-left of a transparent
// canvas with a fixed margin, downscaling cards wider than maxCardWidth
// with a Lanczos filter.
type CanvasComposer struct{}

func (CanvasComposer) ComposeCard(card []byte) []byte {
	img, _, err := image.Decode(bytes.NewReader(card))
	if err != nil {
		log.Printf("[WARN] Card decode failed, using raw bytes: %v", err)
		return card
	}

	if img.Bounds().Dx() > maxCardWidth {
		img = resize.Resize(maxCardWidth, 0, img, resize.Lanczos3)
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	canvasW := w + 2*cardMargin
	if canvasW < minCanvasWidth {
		canvasW = minCanvasWidth
	}
	canvasH := h + 2*cardMargin

	canvas := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	draw.Draw(
		canvas,
		image.Rect(cardMargin, canvasH-h-cardMargin, cardMargin+w, canvasH-cardMargin),
		img,
		img.Bounds().Min,
		draw.Over,
	)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		log.Printf("[WARN] Card encode failed, using raw bytes: %v", err)
		return card
	}
	return buf.Bytes()
}
