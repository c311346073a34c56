// Package config provides YAML-based configuration loading and validation
// for the flappy simulation.
package config

// FlappyConfig contains every tunable constant of the game.
// It is treated as immutable once handed to a session.
type FlappyConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Rotation  RotationConfig  `yaml:"rotation"`
	Animation AnimationConfig `yaml:"animation"`
	Pipes     PipesConfig     `yaml:"pipes"`
	Ground    GroundConfig    `yaml:"ground"`
	Birds     []BirdStart     `yaml:"birds"`
	Sprites   SpritesConfig   `yaml:"sprites"`
}

// ScreenConfig is the size of the simulated world in screen units.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines the discrete kinematic curve of the bird.
type PhysicsConfig struct {
	JumpVelocity         float64 `yaml:"jump_velocity"`         // Velocity set on flap (negative = up)
	Acceleration         float64 `yaml:"acceleration"`          // Coefficient of ticks² in the displacement curve
	TerminalDisplacement float64 `yaml:"terminal_displacement"` // Max downward displacement per tick
	RisePenalty          float64 `yaml:"rise_penalty"`          // Extra upward displacement while rising
	TickRate             int     `yaml:"tick_rate"`             // Simulation ticks per second
}

// RotationConfig defines the tilt law of the bird, in degrees.
type RotationConfig struct {
	Max        float64 `yaml:"max"`         // Upward tilt ceiling
	Speed      float64 `yaml:"speed"`       // Degrees removed per tick while diving
	Floor      float64 `yaml:"floor"`       // Dive stops once the angle is at or below this
	GlideAngle float64 `yaml:"glide_angle"` // At or below this the glide frame is forced
	TiltMargin float64 `yaml:"tilt_margin"` // Distance below the jump height that keeps the nose up
}

// AnimationConfig defines the wing flap cycle.
type AnimationConfig struct {
	FrameTicks int `yaml:"frame_ticks"` // Ticks each frame of the cycle is shown
}

// PipesConfig defines obstacle generation and movement.
type PipesConfig struct {
	GapDistance int `yaml:"gap_distance"` // Vertical clearance between segments
	Speed       int `yaml:"speed"`        // Leftward movement per tick
	MinAnchor   int `yaml:"min_anchor"`   // Inclusive lower bound of the gap anchor
	MaxAnchor   int `yaml:"max_anchor"`   // Exclusive upper bound of the gap anchor
	FirstX      int `yaml:"first_x"`      // X of the pipe present at session start
	SpawnOffset int `yaml:"spawn_offset"` // Distance ahead of the rightmost pipe for new pipes
}

// GroundConfig defines the scrolling ground band.
type GroundConfig struct {
	Y     int `yaml:"y"`
	Speed int `yaml:"speed"`
}

// BirdStart is the starting coordinate of one controlled bird.
type BirdStart struct {
	X int     `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SpritesConfig controls sprite generation.
type SpritesConfig struct {
	Scale int `yaml:"scale"` // Integer upscale factor applied to every base sprite
}
