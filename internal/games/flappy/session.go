package flappy

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// removal reasons reported in logs.
type removal uint8

const (
	keep removal = iota
	hitPipe
	hitGround
	hitSky
)

func (r removal) String() string {
	switch r {
	case hitPipe:
		return "pipe"
	case hitGround:
		return "ground"
	case hitSky:
		return "sky"
	default:
		return ""
	}
}

// Session owns all entities of one run and advances them tick by tick.
// A session is not safe for concurrent use.
type Session struct {
	cfg    config.FlappyConfig
	atlas  *sprite.Atlas
	rng    *rand.Rand
	logger *log.Logger

	birds  []*Bird
	pipes  []Pipe
	ground *Ground

	score int
	tick  int
	ended bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a session with one bird per configured start position,
// one pipe at the configured first X and the ground at the left border.
// cfg is expected to be valid.
func NewSession(cfg config.FlappyConfig, atlas *sprite.Atlas, rng *rand.Rand, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		atlas:  atlas,
		rng:    rng,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.birds = make([]*Bird, 0, len(cfg.Birds))
	for i, start := range cfg.Birds {
		s.birds = append(s.birds, NewBird(i, start, &s.cfg))
	}
	s.pipes = []Pipe{s.newPipe(float64(cfg.Pipes.FirstX))}
	s.ground = NewGround(cfg.Ground, atlas.Ground.Width())

	s.logger.Debug("session started", "birds", len(s.birds), "first_pipe", cfg.Pipes.FirstX)
	return s
}

func (s *Session) newPipe(x float64) Pipe {
	return NewPipe(x, s.rng, s.cfg.Pipes, s.atlas.PipeBottom.Height())
}

// Step advances the session by one tick. Every flap in the frame applies
// once to all birds. After the last bird is gone the session is ended and
// further calls change nothing.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.ended {
		return core.StepResult{State: s.State()}
	}
	s.tick++

	if in.Has(core.ActionFlap) {
		for _, b := range s.birds {
			b.Jump()
		}
	}

	for _, b := range s.birds {
		b.Move()
	}
	s.ground.Advance()

	// Collisions and passes are judged against pipe positions from before
	// this tick's scroll. Removals are only marked here.
	marks := make([]removal, len(s.birds))
	passed := false
	for i := range s.pipes {
		p := &s.pipes[i]
		for j, b := range s.birds {
			if p.Collide(b, s.atlas) {
				marks[j] = hitPipe
			}
			if !p.Passed && float64(b.X) > p.X {
				p.Passed = true
				passed = true
			}
		}
	}

	var spawnX float64
	if passed {
		s.score++
		spawnX = s.rightmostPipeX() + float64(s.cfg.Pipes.SpawnOffset)
		s.logger.Debug("pipe passed", "tick", s.tick, "score", s.score)
	}

	kept := s.pipes[:0]
	for _, p := range s.pipes {
		p.Move(s.cfg.Pipes.Speed)
		if p.Offscreen(s.atlas.PipeTop.Width()) {
			s.logger.Debug("pipe despawned", "tick", s.tick, "x", p.X)
			continue
		}
		kept = append(kept, p)
	}
	s.pipes = kept

	if passed {
		p := s.newPipe(spawnX)
		s.pipes = append(s.pipes, p)
		s.logger.Debug("pipe spawned", "tick", s.tick, "x", p.X, "anchor", p.Anchor)
	}

	floor := float64(s.ground.Y)
	for j, b := range s.birds {
		if marks[j] != keep {
			continue
		}
		switch {
		case b.Y+float64(s.atlas.Bird[b.Frame].Height()) > floor:
			marks[j] = hitGround
		case b.Y < 0:
			marks[j] = hitSky
		}
	}
	lost := s.removeBirds(marks)

	if len(s.birds) == 0 {
		s.ended = true
		s.logger.Debug("session ended", "tick", s.tick, "score", s.score)
	}

	for _, b := range s.birds {
		b.Animate()
	}

	return core.StepResult{
		State:  s.State(),
		Scored: passed,
		Lost:   lost,
	}
}

// rightmostPipeX returns the largest pipe X, or the first pipe position
// when no pipe is present.
func (s *Session) rightmostPipeX() float64 {
	if len(s.pipes) == 0 {
		return float64(s.cfg.Pipes.FirstX - s.cfg.Pipes.SpawnOffset)
	}
	x := s.pipes[0].X
	for _, p := range s.pipes[1:] {
		x = max(x, p.X)
	}
	return x
}

func (s *Session) removeBirds(marks []removal) int {
	kept := s.birds[:0]
	lost := 0
	for j, b := range s.birds {
		if marks[j] != keep {
			lost++
			s.logger.Debug("bird removed", "tick", s.tick, "id", b.ID, "reason", marks[j], "y", b.Y)
			continue
		}
		kept = append(kept, b)
	}
	// Drop references held past the new length.
	for i := len(kept); i < len(s.birds); i++ {
		s.birds[i] = nil
	}
	s.birds = kept
	return lost
}

// State returns the score, tick count and whether the session has ended.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.ended,
		Tick:     s.tick,
	}
}

// Ended reports whether every bird has been removed.
func (s *Session) Ended() bool {
	return s.ended
}

// Score returns the number of scoring events so far.
func (s *Session) Score() int {
	return s.score
}
