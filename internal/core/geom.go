// Package core provides fundamental types and utilities shared by the game
// and its hosts. It contains no external dependencies (especially no Bubble
// Tea) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in world units.
// Edges are half-open: a rect covers [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// OverlapsX reports whether the horizontal spans of r and other overlap.
func (r Rect) OverlapsX(other Rect) bool {
	return r.Right() > other.X && r.X < other.Right()
}

// Cells converts the rectangle to the inclusive-exclusive cell range it
// covers on a grid of cellW x cellH world units per cell.
func (r Rect) Cells(cellW, cellH float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X / cellW))
	y0 = int(math.Floor(r.Y / cellH))
	x1 = int(math.Ceil(r.Right() / cellW))
	y1 = int(math.Ceil(r.Bottom() / cellH))
	return x0, y0, x1, y1
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
