package breakout

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/breakout-host/internal/config"
	"github.com/vovakirdan/breakout-host/internal/core"
)

// Draw layers. Higher layers are drawn on top.
const (
	LayerField = 0
	LayerBall  = 1
)

// ColliderKind tags how a collider reacts to the ball.
type ColliderKind int

const (
	ColliderSolid    ColliderKind = iota // Wall: reflects, never removed, ends the tick's walk
	ColliderScorable                     // Brick: reflects once, removed, +1 score
	ColliderPaddle                       // Paddle: reflects, never removed
)

// String returns a human-readable name for the kind.
func (k ColliderKind) String() string {
	switch k {
	case ColliderSolid:
		return "solid"
	case ColliderScorable:
		return "scorable"
	case ColliderPaddle:
		return "paddle"
	default:
		return "unknown"
	}
}

// Ball is the single free-moving body.
type Ball struct {
	Box      core.Box
	Layer    int
	Velocity core.Vec2 // units per second
}

// Paddle is the single player-controlled body. It only moves on x.
type Paddle struct {
	Box   core.Box
	Layer int
	Speed float64 // units per second
	Bound float64 // |Box.Center.X| <= Bound
}

// Collider is anything the ball can bounce off. Box points into the owning
// entity, so the paddle collider follows the paddle.
type Collider struct {
	Kind  ColliderKind
	Box   *core.Box
	Layer int
	Row   int // brick grid row, -1 otherwise
	Col   int // brick grid column, -1 otherwise

	removed bool
}

// Scoreboard counts destroyed bricks and holds the projected display text.
type Scoreboard struct {
	Score int
	Text  string
}

// World owns every simulated entity. It always holds exactly one ball and
// one paddle; colliders are kept in definition order (walls left, right,
// bottom, top; bricks row-major; paddle last).
type World struct {
	Ball       *Ball
	Paddle     *Paddle
	Colliders  []*Collider
	Scoreboard Scoreboard

	// Bounds is the outer extent of the walls, used by renderers as the camera.
	Bounds core.Box
}

// ErrInvalidSpeed is returned by NewWorld for a negative or non-finite speed.
var ErrInvalidSpeed = errors.New("breakout: speed must be a finite non-negative number")

// NewWorld builds the scene once from the layout in cfg and the external
// speed scalar. The ball launches at speed along the configured direction.
func NewWorld(cfg config.BreakoutConfig, speed float64) (*World, error) {
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSpeed, speed)
	}
	cfg.Speed = speed
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: cannot build world: %w", err)
	}

	pf := cfg.Playfield
	thick := pf.WallThickness

	w := &World{
		Ball: &Ball{
			Box:      core.NewBox(cfg.Ball.X, cfg.Ball.Y, cfg.Ball.Size, cfg.Ball.Size),
			Layer:    LayerBall,
			Velocity: core.V2(cfg.Ball.DirectionX, cfg.Ball.DirectionY).Normalize().Scale(speed),
		},
		Paddle: &Paddle{
			Box:   core.NewBox(cfg.Paddle.X, cfg.Paddle.Y, cfg.Paddle.Width, cfg.Paddle.Height),
			Layer: LayerField,
			Speed: cfg.EffectivePaddleSpeed(),
			Bound: cfg.Paddle.Bound,
		},
		Bounds: core.NewBox(0, 0, pf.Width+thick, pf.Height+thick),
	}

	walls := []core.Box{
		core.NewBox(-pf.Width/2, 0, thick, pf.Height+thick), // left
		core.NewBox(pf.Width/2, 0, thick, pf.Height+thick),  // right
		core.NewBox(0, -pf.Height/2, pf.Width+thick, thick), // bottom
		core.NewBox(0, pf.Height/2, pf.Width+thick, thick),  // top
	}
	for _, box := range walls {
		w.addCollider(ColliderSolid, box, -1, -1)
	}

	bc := cfg.Bricks
	gridWidth := float64(bc.Columns)*(bc.Width+bc.Spacing) - bc.Spacing
	originX := -(gridWidth - bc.Width) / 2
	for row := range bc.Rows {
		y := float64(row)*(bc.Height+bc.Spacing) + bc.OffsetY
		for col := range bc.Columns {
			x := float64(col)*(bc.Width+bc.Spacing) + originX
			w.addCollider(ColliderScorable, core.NewBox(x, y, bc.Width, bc.Height), row, col)
		}
	}

	w.Colliders = append(w.Colliders, &Collider{
		Kind:  ColliderPaddle,
		Box:   &w.Paddle.Box,
		Layer: w.Paddle.Layer,
		Row:   -1,
		Col:   -1,
	})

	RefreshScoreboard(&w.Scoreboard)
	return w, nil
}

func (w *World) addCollider(kind ColliderKind, box core.Box, row, col int) {
	b := box
	w.Colliders = append(w.Colliders, &Collider{
		Kind:  kind,
		Box:   &b,
		Layer: LayerField,
		Row:   row,
		Col:   col,
	})
}

// BricksRemaining returns the number of scorable colliders still in the world.
func (w *World) BricksRemaining() int {
	n := 0
	for _, c := range w.Colliders {
		if c.Kind == ColliderScorable {
			n++
		}
	}
	return n
}
