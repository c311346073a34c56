package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Animation frames of the bird sprite.
const (
	FrameUp   = 0
	FrameMid  = 1 // Also the glide frame
	FrameDown = 2
)

// Bird is a controlled flyer. X never changes; Y grows downwards.
type Bird struct {
	ID         int
	X          int
	Y          float64
	Velocity   float64 // Set by Jump, constant between jumps
	Ticks      int     // Ticks since the last jump
	Height     float64 // Y at the last jump
	Angle      float64 // Tilt in degrees, positive = nose up
	Frame      int     // Current animation frame
	FrameCount int     // Animation cycle counter

	physics    config.PhysicsConfig
	rotation   config.RotationConfig
	frameTicks int
}

// NewBird creates a bird at the given start position.
func NewBird(id int, start config.BirdStart, cfg *config.FlappyConfig) *Bird {
	return &Bird{
		ID:         id,
		X:          start.X,
		Y:          start.Y,
		Height:     start.Y,
		Frame:      FrameUp,
		physics:    cfg.Physics,
		rotation:   cfg.Rotation,
		frameTicks: cfg.Animation.FrameTicks,
	}
}

// Jump applies the upward impulse. Repeated jumps simply reset the curve.
func (b *Bird) Jump() {
	b.Velocity = b.physics.JumpVelocity
	b.Ticks = 0
	b.Height = b.Y
}

// Move advances the bird by one tick and returns the applied displacement.
func (b *Bird) Move() float64 {
	b.Ticks++
	d := Displacement(b.Ticks, b.Velocity, b.physics)

	b.Y += d

	// The nose-up branch only ever raises the angle; it never decays it.
	if d < 0 || b.Y < b.Height+b.rotation.TiltMargin {
		if b.Angle < b.rotation.Max {
			b.Angle = b.rotation.Max
		}
	} else if b.Angle > b.rotation.Floor {
		b.Angle -= b.rotation.Speed
	}

	return d
}

// Displacement is the vertical movement for the given tick count since the
// last jump: acceleration·t² + velocity·t, capped at the terminal
// displacement when falling and steepened by the rise penalty when rising.
func Displacement(ticks int, velocity float64, p config.PhysicsConfig) float64 {
	t := float64(ticks)
	// Explicit conversions keep the compiler from fusing multiply-add.
	d := float64(p.Acceleration*(t*t)) + float64(velocity*t)

	if d > p.TerminalDisplacement {
		d = p.TerminalDisplacement
	} else if d < 0 {
		d -= p.RisePenalty
	}
	return d
}

// Animate advances the wing cycle up, mid, down, mid. While diving at or
// below the glide angle the mid frame is held.
func (b *Bird) Animate() {
	ft := b.frameTicks
	b.FrameCount++

	switch {
	case b.FrameCount < ft:
		b.Frame = FrameUp
	case b.FrameCount < ft*2:
		b.Frame = FrameMid
	case b.FrameCount < ft*3:
		b.Frame = FrameDown
	case b.FrameCount < ft*4:
		b.Frame = FrameMid
	case b.FrameCount < ft*4+1:
		b.Frame = FrameUp
		b.FrameCount = 0
	}

	if b.Angle <= b.rotation.GlideAngle {
		b.Frame = FrameMid
		b.FrameCount = ft * 2
	}
}
