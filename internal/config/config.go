// Package config provides YAML-based game configuration loading and
// difficulty presets for the host.
package config

import (
	"errors"
	"fmt"
	"math"
)

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Speed       float64         `yaml:"speed"`
	PaddleSpeed float64         `yaml:"paddle_speed"` // 0 = use Speed
	Playfield   PlayfieldConfig `yaml:"playfield"`
	Paddle      PaddleConfig    `yaml:"paddle"`
	Ball        BallConfig      `yaml:"ball"`
	Bricks      BrickGridConfig `yaml:"bricks"`
}

// PlayfieldConfig defines the walled area.
type PlayfieldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// PaddleConfig defines the paddle start box and its horizontal travel bound.
type PaddleConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Bound  float64 `yaml:"bound"` // |x| never exceeds this
}

// BallConfig defines the ball start position, size and launch direction.
type BallConfig struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Size       float64 `yaml:"size"`
	DirectionX float64 `yaml:"direction_x"`
	DirectionY float64 `yaml:"direction_y"`
}

// BrickGridConfig defines the brick grid layout.
type BrickGridConfig struct {
	Rows    int     `yaml:"rows"`
	Columns int     `yaml:"columns"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Spacing float64 `yaml:"spacing"`
	OffsetY float64 `yaml:"offset_y"`
}

// EffectivePaddleSpeed returns PaddleSpeed, or Speed when it is unset.
func (c BreakoutConfig) EffectivePaddleSpeed() float64 {
	if c.PaddleSpeed > 0 {
		return c.PaddleSpeed
	}
	return c.Speed
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks the invariants the world relies on: positive sizes,
// a finite non-negative speed and a non-zero launch direction.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(finite(c.Speed) && c.Speed >= 0, "speed %v", c.Speed)
	check(finite(c.PaddleSpeed) && c.PaddleSpeed >= 0, "paddle_speed %v", c.PaddleSpeed)
	check(c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield %vx%v", c.Playfield.Width, c.Playfield.Height)
	check(c.Playfield.WallThickness > 0, "wall_thickness %v", c.Playfield.WallThickness)
	check(c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle %vx%v", c.Paddle.Width, c.Paddle.Height)
	check(c.Paddle.Bound >= 0, "paddle bound %v", c.Paddle.Bound)
	check(c.Ball.Size > 0, "ball size %v", c.Ball.Size)
	check(c.Ball.DirectionX != 0 || c.Ball.DirectionY != 0, "ball direction is zero")
	check(c.Bricks.Rows > 0 && c.Bricks.Columns > 0, "brick grid %dx%d", c.Bricks.Rows, c.Bricks.Columns)
	check(c.Bricks.Width > 0 && c.Bricks.Height > 0, "brick %vx%v", c.Bricks.Width, c.Bricks.Height)
	check(c.Bricks.Spacing >= 0, "brick spacing %v", c.Bricks.Spacing)

	return errors.Join(errs...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// HelloConfig contains configuration for the hello print loop.
type HelloConfig struct {
	Greeting string `yaml:"greeting"`
	History  int    `yaml:"history"` // lines kept on screen
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// SpeedFactor returns the multiplier a preset applies to the speed scalar.
func SpeedFactor(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyBreakoutPreset scales the speeds by the preset's factor.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	f := SpeedFactor(preset)
	cfg.Speed *= f
	cfg.PaddleSpeed *= f
}
