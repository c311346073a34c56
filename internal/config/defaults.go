package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
// It must stay in sync with defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: ScreenConfig{
			Width:  500,
			Height: 800,
		},
		Physics: PhysicsConfig{
			JumpVelocity:         -10.5,
			Acceleration:         1.5,
			TerminalDisplacement: 16,
			RisePenalty:          2,
			TickRate:             30,
		},
		Rotation: RotationConfig{
			Max:        25,
			Speed:      20,
			Floor:      -90,
			GlideAngle: -80,
			TiltMargin: 50,
		},
		Animation: AnimationConfig{
			FrameTicks: 5,
		},
		Pipes: PipesConfig{
			GapDistance: 200,
			Speed:       5,
			MinAnchor:   50,
			MaxAnchor:   450,
			FirstX:      700,
			SpawnOffset: 375,
		},
		Ground: GroundConfig{
			Y:     730,
			Speed: 5,
		},
		Birds: []BirdStart{
			{X: 230, Y: 350},
		},
		Sprites: SpritesConfig{
			Scale: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
