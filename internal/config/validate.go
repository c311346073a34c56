package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the cross-field constraints the simulation relies on.
func (c FlappyConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return invalid("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Physics.TickRate <= 0 {
		return invalid("physics.tick_rate must be positive, got %d", c.Physics.TickRate)
	}
	if c.Physics.TerminalDisplacement <= 0 {
		return invalid("physics.terminal_displacement must be positive, got %g", c.Physics.TerminalDisplacement)
	}
	if c.Rotation.Floor >= c.Rotation.Max {
		return invalid("rotation.floor (%g) must be below rotation.max (%g)", c.Rotation.Floor, c.Rotation.Max)
	}
	if c.Animation.FrameTicks <= 0 {
		return invalid("animation.frame_ticks must be positive, got %d", c.Animation.FrameTicks)
	}
	if c.Pipes.MaxAnchor <= c.Pipes.MinAnchor {
		return invalid("pipes anchor range [%d, %d) is empty", c.Pipes.MinAnchor, c.Pipes.MaxAnchor)
	}
	if c.Pipes.GapDistance <= 0 {
		return invalid("pipes.gap_distance must be positive, got %d", c.Pipes.GapDistance)
	}
	if c.Pipes.Speed <= 0 {
		return invalid("pipes.speed must be positive, got %d", c.Pipes.Speed)
	}
	// Pipes and ground are drawn as one moving layer.
	if c.Pipes.Speed != c.Ground.Speed {
		return invalid("pipes.speed (%d) must equal ground.speed (%d)", c.Pipes.Speed, c.Ground.Speed)
	}
	if c.Pipes.SpawnOffset <= 0 {
		return invalid("pipes.spawn_offset must be positive, got %d", c.Pipes.SpawnOffset)
	}
	if c.Ground.Y <= 0 || c.Ground.Y > c.Screen.Height {
		return invalid("ground.y must be within (0, %d], got %d", c.Screen.Height, c.Ground.Y)
	}
	if len(c.Birds) == 0 {
		return invalid("at least one bird start position is required")
	}
	for i, b := range c.Birds {
		if b.X < 0 || b.X >= c.Screen.Width {
			return invalid("birds[%d].x must be within [0, %d), got %d", i, c.Screen.Width, b.X)
		}
		if b.Y < 0 || b.Y >= float64(c.Ground.Y) {
			return invalid("birds[%d].y must be within [0, %d), got %g", i, c.Ground.Y, b.Y)
		}
	}
	if c.Sprites.Scale <= 0 {
		return invalid("sprites.scale must be positive, got %d", c.Sprites.Scale)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
