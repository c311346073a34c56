package flappy

import (
	"image"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// Pipe is a pair of pipe segments with a passable gap between them.
type Pipe struct {
	X      float64 // Left edge of both segments
	Anchor int     // Randomized gap anchor (bottom edge of the top segment)
	Top    int     // Y where the inverted top segment is drawn
	Bottom int     // Y where the upright bottom segment is drawn
	Gap    int     // Vertical clearance between the segments
	Passed bool    // Whether a bird has passed this pipe (for scoring)
}

// NewPipe creates a pipe at x with a gap anchor drawn uniformly from
// [MinAnchor, MaxAnchor). segmentH is the height of one pipe segment sprite.
func NewPipe(x float64, rng *rand.Rand, cfg config.PipesConfig, segmentH int) Pipe {
	anchor := cfg.MinAnchor + rng.Intn(cfg.MaxAnchor-cfg.MinAnchor)
	return Pipe{
		X:      x,
		Anchor: anchor,
		Top:    anchor - segmentH,
		Bottom: anchor + cfg.GapDistance,
		Gap:    cfg.GapDistance,
	}
}

// Move scrolls the pipe left by speed.
func (p *Pipe) Move(speed int) {
	p.X -= float64(speed)
}

// Offscreen reports whether the pipe's trailing edge is past the left border.
func (p Pipe) Offscreen(width int) bool {
	return p.X+float64(width) < 0
}

// TopRect returns the bounding rectangle of the top segment.
func (p Pipe) TopRect(a *sprite.Atlas) core.Rect {
	return core.NewRect(roundHalfEven(p.X), p.Top, a.PipeTop.Width(), a.PipeTop.Height())
}

// BottomRect returns the bounding rectangle of the bottom segment.
func (p Pipe) BottomRect(a *sprite.Atlas) core.Rect {
	return core.NewRect(roundHalfEven(p.X), p.Bottom, a.PipeBottom.Width(), a.PipeBottom.Height())
}

// Collide tests the bird's current frame against both segments pixel by pixel.
// Bounding rectangles only serve as a cheap early exit.
func (p Pipe) Collide(b *Bird, a *sprite.Atlas) bool {
	birdSprite := a.Bird[b.Frame]
	by := roundHalfEven(b.Y)
	birdRect := core.NewRect(b.X, by, birdSprite.Width(), birdSprite.Height())

	if top := p.TopRect(a); birdRect.Intersects(top) {
		if _, hit := birdSprite.Mask.Overlap(a.PipeTop.Mask, image.Pt(top.X-b.X, top.Y-by)); hit {
			return true
		}
	}
	if bottom := p.BottomRect(a); birdRect.Intersects(bottom) {
		if _, hit := birdSprite.Mask.Overlap(a.PipeBottom.Mask, image.Pt(bottom.X-b.X, bottom.Y-by)); hit {
			return true
		}
	}
	return false
}

// roundHalfEven converts a world coordinate to whole pixels, rounding halves to even.
func roundHalfEven(v float64) int {
	return int(math.RoundToEven(v))
}
