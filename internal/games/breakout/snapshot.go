package breakout

import "math"

// Snapshot contains the observable game state for determinism checks and the
// headless sim command. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            uint64
	State           string
	Speed           float64
	PaddleX         float64
	BallX           float64
	BallY           float64
	BallVX          float64
	BallVY          float64
	Score           int
	BricksRemaining int

	// Alive bricks as row*columns+col indices, in definition order.
	Bricks []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State: g.state,
		Speed: g.speed,
	}
	w := g.world
	if w == nil {
		return snap
	}

	snap.PaddleX = w.Paddle.Box.Center.X
	snap.BallX = w.Ball.Box.Center.X
	snap.BallY = w.Ball.Box.Center.Y
	snap.BallVX = w.Ball.Velocity.X
	snap.BallVY = w.Ball.Velocity.Y
	snap.Score = w.Scoreboard.Score

	cols := g.cfg.Bricks.Columns
	for _, c := range w.Colliders {
		if c.Kind == ColliderScorable {
			snap.Bricks = append(snap.Bricks, c.Row*cols+c.Col)
		}
	}
	snap.BricksRemaining = len(snap.Bricks)
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so equal hashes mean bit-identical runs.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r)
	}
	for _, f := range []float64{snap.Speed, snap.PaddleX, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation

	for _, v := range snap.Bricks {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
