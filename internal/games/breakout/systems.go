package breakout

import (
	"slices"
	"strconv"

	"github.com/vovakirdan/breakout-host/internal/core"
)

// Contact records one collider the ball touched during a resolution pass.
type Contact struct {
	Kind ColliderKind
	Side core.Side
	Row  int
	Col  int
}

// MovePaddle moves the paddle by dir*Speed*dt on x and clamps it to its bound.
// dir is -1, 0 or +1.
func MovePaddle(p *Paddle, dir, dt float64) {
	x := p.Box.Center.X + dir*p.Speed*dt
	p.Box.Center.X = core.ClampF(x, -p.Bound, p.Bound)
}

// MoveBall advances the ball by velocity*dt.
func MoveBall(b *Ball, dt float64) {
	b.Box.Center = b.Box.Center.Add(b.Velocity.Scale(dt))
}

// ResolveCollisions tests the ball against every collider in definition
// order. Each touched collider reflects the ball on the reported side;
// bricks are removed and scored. Hitting a wall ends the pass for this tick.
func ResolveCollisions(w *World) []Contact {
	var contacts []Contact
	ball := w.Ball

	for _, c := range w.Colliders {
		if c.removed {
			continue
		}
		side := core.Collide(ball.Box, *c.Box)
		if side == core.SideNone {
			continue
		}

		ball.Velocity = reflect(ball.Velocity, side)
		contacts = append(contacts, Contact{Kind: c.Kind, Side: side, Row: c.Row, Col: c.Col})

		if c.Kind == ColliderScorable {
			c.removed = true
			w.Scoreboard.Score++
		}
		if c.Kind == ColliderSolid {
			break
		}
	}

	w.Colliders = slices.DeleteFunc(w.Colliders, func(c *Collider) bool { return c.removed })
	return contacts
}

// reflect flips the velocity component pointing into the contact side.
// A component already pointing away is left alone, so a ball that is still
// overlapping on the next tick does not oscillate.
func reflect(v core.Vec2, side core.Side) core.Vec2 {
	switch side {
	case core.SideLeft:
		if v.X > 0 {
			v.X = -v.X
		}
	case core.SideRight:
		if v.X < 0 {
			v.X = -v.X
		}
	case core.SideTop:
		if v.Y < 0 {
			v.Y = -v.Y
		}
	case core.SideBottom:
		if v.Y > 0 {
			v.Y = -v.Y
		}
	}
	return v
}

// RefreshScoreboard projects the score into its display text.
func RefreshScoreboard(s *Scoreboard) {
	s.Text = ScoreText(s.Score)
}

// ScoreText formats a score the way the scoreboard shows it.
func ScoreText(score int) string {
	return "Score: " + strconv.Itoa(score)
}
