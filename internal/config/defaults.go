package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/hello.yaml
var defaultHelloYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration: a
// 900x600 field, 4x5 bricks of 150x30 and the paddle at y=-215.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Speed:       400,
		PaddleSpeed: 0,
		Playfield: PlayfieldConfig{
			Width:         900,
			Height:        600,
			WallThickness: 10,
		},
		Paddle: PaddleConfig{
			X:      0,
			Y:      -215,
			Width:  120,
			Height: 30,
			Bound:  380,
		},
		Ball: BallConfig{
			X:          0,
			Y:          -50,
			Size:       30,
			DirectionX: 0.5,
			DirectionY: -0.5,
		},
		Bricks: BrickGridConfig{
			Rows:    4,
			Columns: 5,
			Width:   150,
			Height:  30,
			Spacing: 20,
			OffsetY: 100,
		},
	}
}

// DefaultHelloConfig returns the default hello configuration.
func DefaultHelloConfig() HelloConfig {
	return HelloConfig{
		Greeting: "Hello, World!",
		History:  200,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	case "hello":
		return defaultHelloYAML
	default:
		return nil
	}
}
