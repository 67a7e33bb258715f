// Package core provides fundamental types and utilities for the host platform.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep simulation logic pure and testable.
package core

import "math"

// Rect represents an integer cell rectangle used for screen drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a 2D vector in world units. Y grows upward.
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for constructing a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Box is an axis-aligned rectangle described by its center and full size.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered at (x, y) with full width w and height h.
func NewBox(x, y, w, h float64) Box {
	return Box{Center: V2(x, y), Size: V2(w, h)}
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec2 {
	return Vec2{X: b.Center.X - b.Size.X/2, Y: b.Center.Y - b.Size.Y/2}
}

// Max returns the top-right corner.
func (b Box) Max() Vec2 {
	return Vec2{X: b.Center.X + b.Size.X/2, Y: b.Center.Y + b.Size.Y/2}
}

// Side indicates which side of a box was struck.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "None"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Collide reports which side of b the box a struck, or SideNone when the
// boxes do not overlap. Touching edges are not an overlap.
//
// The axis with the smaller penetration depth wins. On equal depths the
// y axis wins, so a perfect diagonal corner hit always reports Top or Bottom.
// When centers coincide on the chosen axis the result is Right (x) or Bottom (y).
func Collide(a, b Box) Side {
	dx := b.Center.X - a.Center.X
	dy := b.Center.Y - a.Center.Y

	penX := (a.Size.X+b.Size.X)/2 - math.Abs(dx)
	penY := (a.Size.Y+b.Size.Y)/2 - math.Abs(dy)
	if penX <= 0 || penY <= 0 {
		return SideNone
	}

	if penY <= penX {
		if a.Center.Y > b.Center.Y {
			return SideTop
		}
		return SideBottom
	}
	if a.Center.X < b.Center.X {
		return SideLeft
	}
	return SideRight
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
