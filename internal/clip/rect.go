// Package clip resolves the pixel-aligned region a rectangle blit may touch.
package clip

import "math"

// Rect represents a rectangle in integer pixel coordinates.
// A rectangle with zero or negative Width or Height is empty.
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Right returns the exclusive right edge, saturating at math.MaxInt.
func (r Rect) Right() int {
	return satAdd(r.X, r.Width)
}

// Bottom returns the exclusive bottom edge, saturating at math.MaxInt.
func (r Rect) Bottom() int {
	return satAdd(r.Y, r.Height)
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Within reports whether r is non-empty and lies inside [0,w) x [0,h).
func (r Rect) Within(w, h int) bool {
	if r.IsEmpty() || r.X < 0 || r.Y < 0 {
		return false
	}
	return r.Right() <= w && r.Bottom() <= h
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rectangle if they don't intersect.
func (r Rect) Intersect(other Rect) Rect {
	if r.IsEmpty() || other.IsEmpty() {
		return Rect{}
	}
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())

	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// satAdd returns a+b, saturating at math.MinInt and math.MaxInt.
func satAdd(a, b int) int {
	c := a + b
	if (c > a) == (b > 0) {
		return c
	}
	if b > 0 {
		return math.MaxInt
	}
	return math.MinInt
}
