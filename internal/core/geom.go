// Package core holds the terminal-agnostic building blocks shared by the game
// and its renderers: rectangles for square-overlap collisions, the character
// screen buffer and runtime options. Nothing here imports a UI library.
package core

// Rect is an axis-aligned box in world units.
type Rect struct {
	X, Y int // top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Square creates a size×size rectangle anchored at (x, y).
func Square(x, y, size int) Rect {
	return NewRect(x, y, size, size)
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the two rectangles share any area.
// Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// FloorDiv divides rounding towards negative infinity, so world coordinates
// left of the origin land in negative lattice cells.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
