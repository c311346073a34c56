// Package flappy implements a Flappy Bird simulation.
// Birds fall along a fixed kinematic curve, flap on input, and must pass
// through the gaps of scrolling pipe pairs without touching them, the
// ground or the top of the screen. Collisions are pixel exact.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// Game adapts a Session to the interactive platform: it restarts sessions
// on demand and renders them onto a character screen.
type Game struct {
	cfg      config.FlappyConfig
	atlas    *sprite.Atlas
	logger   *log.Logger
	renderer *SceneRenderer
	session  *Session
	runtime  core.RuntimeConfig
}

// New creates a game for the given configuration. logger may be nil.
// The game is ready to step at once; Reset reseeds it.
func New(cfg config.FlappyConfig, atlas *sprite.Atlas, logger *log.Logger) *Game {
	g := &Game{
		cfg:      cfg,
		atlas:    atlas,
		logger:   logger,
		renderer: NewSceneRenderer(atlas, cfg.Screen.Width, cfg.Screen.Height),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset starts a fresh session seeded from cfg.Seed.
// The world size is fixed by configuration, not by the terminal.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.session = NewSession(g.cfg, g.atlas, rand.New(rand.NewSource(cfg.Seed)), WithLogger(g.logger))
}

// Step advances the current session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.session.Step(in)
}

// Render draws the current scene, and the game over box once every bird is gone.
func (g *Game) Render(dst *core.Screen) {
	g.renderer.Draw(dst, g.session.Scene())

	if g.session.Ended() {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score()))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// Session returns the running session.
func (g *Game) Session() *Session {
	return g.session
}
