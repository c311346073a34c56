package flappy

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// InputSource yields the actions collected since the previous drain.
type InputSource interface {
	Drain() core.InputFrame
}

// Renderer presents one frame.
type Renderer interface {
	Render(Scene)
}

// Pacer blocks until the next tick is due.
type Pacer interface {
	Wait()
}

// PacerFunc adapts a function to the Pacer interface.
type PacerFunc func()

// Wait calls f.
func (f PacerFunc) Wait() { f() }

// NoWait is a Pacer that never blocks.
var NoWait = PacerFunc(func() {})

// TickerPacer paces ticks at a fixed rate.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer creates a pacer for the given ticks per second.
func NewTickerPacer(rate int) *TickerPacer {
	return &TickerPacer{ticker: time.NewTicker(time.Second / time.Duration(rate))}
}

// Wait blocks until the next tick.
func (p *TickerPacer) Wait() { <-p.ticker.C }

// Stop releases the underlying ticker.
func (p *TickerPacer) Stop() { p.ticker.Stop() }

// Run drives the session until it ends, a quit is drained or ctx is done.
// Each tick waits on the pacer, drains input, steps and renders. A quit
// request ends the loop before the tick is simulated.
func Run(ctx context.Context, s *Session, in InputSource, r Renderer, p Pacer) error {
	for !s.Ended() {
		p.Wait()
		if err := ctx.Err(); err != nil {
			return err
		}

		frame := in.Drain()
		if frame.Has(core.ActionQuit) {
			s.logger.Debug("quit requested", "tick", s.tick)
			return nil
		}

		s.Step(frame)
		r.Render(s.Scene())
	}
	return nil
}
