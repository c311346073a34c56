package flappy

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// Visual characters for rendering.
const (
	SolidChar = '█'
	SkyChar   = ' '
)

// SceneRenderer draws scenes onto a character screen. Every cell samples
// the world at its centre, checking ground, then pipes, then birds; the
// first opaque pixel found colours the cell.
type SceneRenderer struct {
	atlas  *sprite.Atlas
	worldW int
	worldH int
	colors map[color.Color]core.Color
}

// NewSceneRenderer creates a renderer for a world of the given size.
func NewSceneRenderer(atlas *sprite.Atlas, worldW, worldH int) *SceneRenderer {
	return &SceneRenderer{
		atlas:  atlas,
		worldW: worldW,
		worldH: worldH,
		colors: make(map[color.Color]core.Color),
	}
}

// Draw renders the scene and the score HUD onto dst.
func (r *SceneRenderer) Draw(dst *core.Screen, sc Scene) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}

	sx := float64(r.worldW) / float64(w)
	sy := float64(r.worldH) / float64(h)

	for cy := 0; cy < h; cy++ {
		wy := (float64(cy) + 0.5) * sy
		for cx := 0; cx < w; cx++ {
			wx := (float64(cx) + 0.5) * sx
			if c, ok := r.sample(sc, wx, wy); ok {
				dst.SetCell(cx, cy, core.Cell{Rune: SolidChar, Color: r.nearest(c)})
			}
		}
	}

	score := fmt.Sprintf("Score: %d", sc.Score)
	dst.DrawTextColor(w-len(score)-1, 0, score, core.ColorBrightWhite)
}

// sample returns the color of the topmost opaque pixel at world (wx, wy).
func (r *SceneRenderer) sample(sc Scene, wx, wy float64) (color.Color, bool) {
	g := sc.Ground
	if wy >= float64(g.Y) {
		for _, x := range [2]float64{g.X1, g.X2} {
			if c, ok := sampleSprite(r.atlas.Ground, wx-x, wy-float64(g.Y)); ok {
				return c, true
			}
		}
	}

	for _, p := range sc.Pipes {
		if c, ok := sampleSprite(r.atlas.PipeTop, wx-p.X, wy-float64(p.Top)); ok {
			return c, true
		}
		if c, ok := sampleSprite(r.atlas.PipeBottom, wx-p.X, wy-float64(p.Bottom)); ok {
			return c, true
		}
	}

	for _, b := range sc.Birds {
		if c, ok := sampleSprite(r.atlas.Bird[b.Frame], wx-float64(b.X), wy-b.Y); ok {
			return c, true
		}
	}
	return nil, false
}

// sampleSprite reads the pixel at sprite-local (lx, ly) if it is inside the
// sprite and opaque.
func sampleSprite(s sprite.Sprite, lx, ly float64) (color.Color, bool) {
	if lx < 0 || ly < 0 {
		return nil, false
	}
	x, y := int(lx), int(ly)
	if !s.Mask.Get(x, y) {
		return nil, false
	}
	b := s.Image.Bounds()
	return s.Image.At(b.Min.X+x, b.Min.Y+y), true
}

func (r *SceneRenderer) nearest(c color.Color) core.Color {
	if cc, ok := r.colors[c]; ok {
		return cc
	}
	cc := core.NearestColor(c)
	r.colors[c] = cc
	return cc
}
