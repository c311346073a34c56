package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Ground scrolls two identical tiles side by side. A tile whose trailing
// edge leaves the screen is moved to the right of the other one.
type Ground struct {
	X1, X2 float64
	Width  int // Tile width
	Y      int
	speed  int
}

// NewGround creates the ground with the first tile at the left border.
func NewGround(cfg config.GroundConfig, tileWidth int) *Ground {
	return &Ground{
		X1:    0,
		X2:    float64(tileWidth),
		Width: tileWidth,
		Y:     cfg.Y,
		speed: cfg.Speed,
	}
}

// Advance scrolls both tiles by one tick.
func (g *Ground) Advance() {
	w := float64(g.Width)
	g.X1 -= float64(g.speed)
	g.X2 -= float64(g.speed)

	if g.X1+w < 0 {
		g.X1 = g.X2 + w
	}
	if g.X2+w < 0 {
		g.X2 = g.X1 + w
	}
}
