package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultFlappyConfig(), testAtlas(t), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 50, ScreenH: 40, TickRate: 30, Seed: seed})
	return g
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	for i := 0; i < 300; i++ {
		in := core.NewInputFrame()
		if i%13 == 0 {
			in.Set(core.ActionFlap)
		}
		r1 := g1.Step(in)
		r2 := g2.Step(in)

		if r1 != r2 {
			t.Fatalf("tick %d: results differ: %+v vs %+v", i+1, r1, r2)
		}
		if r1.State.GameOver {
			break
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 42)

	for !g.State().GameOver {
		g.Step(core.NewInputFrame())
	}

	g.Reset(core.RuntimeConfig{ScreenW: 50, ScreenH: 40, TickRate: 30, Seed: 43})

	state := g.State()
	if state.GameOver || state.Score != 0 || state.Tick != 0 {
		t.Errorf("State() after Reset() = %+v, expected a fresh game", state)
	}
	if n := len(g.Session().Scene().Birds); n != 1 {
		t.Errorf("birds after Reset() = %d, expected 1", n)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(50, 40)

	g.Render(screen)

	// Each cell covers 10x20 world units; the bird occupies x 230..298, y 350..398.
	if c := screen.GetCell(26, 18); c.Rune != SolidChar || c.Color != core.ColorYellow {
		t.Errorf("bird body cell = %+v, expected yellow %q", c, SolidChar)
	}

	// Ground starts at y 730, so the last rows are ground.
	for x := 0; x < 50; x += 7 {
		if c := screen.GetCell(x, 39); c.Rune != SolidChar {
			t.Errorf("ground cell (%d, 39) = %q, expected %q", x, c.Rune, SolidChar)
		}
	}

	if c := screen.GetCell(5, 5); c.Rune != SkyChar {
		t.Errorf("sky cell = %q, expected blank", c.Rune)
	}

	if row := screen.Row(0); !strings.HasSuffix(row, "Score: 0 ") {
		t.Errorf("top row = %q, expected score at the right edge", row)
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t, 1)
	for !g.State().GameOver {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(50, 40)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("expected GAME OVER message")
	}
	if !strings.Contains(out, "Press R to restart") {
		t.Error("expected restart hint")
	}
}

func TestGameRenderEmptyScreen(t *testing.T) {
	g := newTestGame(t, 1)
	g.Render(core.NewScreen(0, 0))
}

func TestGameRenderGameOverNarrowScreen(t *testing.T) {
	g := newTestGame(t, 1)
	for !g.State().GameOver {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("expected GAME OVER message on a narrow screen")
	}
	if c := screen.Get(0, 2); c != '┌' {
		t.Errorf("box corner (0, 2) = %q, expected the box clamped to the left edge", c)
	}
	if c := screen.Get(19, 2); c != '┐' {
		t.Errorf("box corner (19, 2) = %q, expected the box clamped to the right edge", c)
	}
}

func TestGameUsableBeforeReset(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), testAtlas(t), nil)

	if state := g.State(); state != (core.GameState{}) {
		t.Errorf("State() = %+v, expected a fresh game", state)
	}

	g.Render(core.NewScreen(50, 40))

	if r := g.Step(core.NewInputFrame()); r.State.Tick != 1 {
		t.Errorf("Step() tick = %d, expected 1", r.State.Tick)
	}
}
