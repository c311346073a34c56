package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	resets int
	steps  []core.InputFrame
	state  core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.steps = append(g.steps, frame)
	g.state.Tick++
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(g *fakeGame) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 6, TickRate: 30, Seed: 1}, nil)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelCoalescesFlaps(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, keyRunes("w"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, TickMsg{})
	_, _ = update(t, m, TickMsg{})

	if len(g.steps) != 2 {
		t.Fatalf("steps = %d, expected 2", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionFlap) || len(g.steps[0].Actions) != 1 {
		t.Errorf("first frame = %v, expected a single flap", g.steps[0].Actions)
	}
	if !g.steps[1].Empty() {
		t.Errorf("second frame = %v, expected empty", g.steps[1].Actions)
	}
}

func TestModelQuitBeforeStep(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, keyRunes("q"))
	m, cmd := update(t, m, TickMsg{})

	if len(g.steps) != 0 {
		t.Errorf("steps = %d, expected none after quit", len(g.steps))
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelRestartOnlyWhenOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, keyRunes("r"))
	m, _ = update(t, m, TickMsg{})
	if g.resets != 1 {
		t.Fatalf("resets = %d, expected restart ignored while playing", g.resets)
	}

	g.state.GameOver = true
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, keyRunes("r"))
	m, _ = update(t, m, TickMsg{})

	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
	if m.gameState.GameOver {
		t.Error("game state should be fresh after restart")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})

	if m.screen.Width() != 40 || m.screen.Height() != 11 {
		t.Errorf("screen = %dx%d, expected 40x11", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected resize not to reset", g.resets)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&fakeGame{})

	view := m.View()
	if !strings.Contains(view, "fake") {
		t.Error("View() should contain the rendered game")
	}
	if !strings.Contains(view, "flap") {
		t.Error("View() should contain the help footer")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(&fakeGame{})
	m.screenshotDir = t.TempDir()

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() error = %v", err)
	}
	if filepath.Dir(path) != m.screenshotDir {
		t.Errorf("screenshot written to %s, expected inside %s", path, m.screenshotDir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "fake") {
		t.Errorf("screenshot = %q, expected the rendered screen", data)
	}
}

func TestModelViewFitsTerminal(t *testing.T) {
	m := newTestModel(&fakeGame{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	for _, showAll := range []bool{false, true, false} {
		if m.help.ShowAll != showAll {
			m, _ = update(t, m, keyRunes("?"))
		}

		view := m.View()
		if lines := strings.Count(view, "\n") + 1; lines > 24 {
			t.Errorf("ShowAll=%v: View() has %d lines, expected at most 24", showAll, lines)
		}
		if first := strings.SplitN(view, "\n", 2)[0]; !strings.Contains(first, "fake") {
			t.Errorf("ShowAll=%v: top row = %q, expected the game's first row", showAll, first)
		}
	}
}

func TestModelFullHelpShrinksScreen(t *testing.T) {
	m := newTestModel(&fakeGame{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	short := m.screen.Height()

	m, _ = update(t, m, keyRunes("?"))
	if m.screen.Height() >= short {
		t.Errorf("screen height with full help = %d, expected less than %d", m.screen.Height(), short)
	}

	m, _ = update(t, m, keyRunes("?"))
	if m.screen.Height() != short {
		t.Errorf("screen height after closing help = %d, expected %d", m.screen.Height(), short)
	}
}
