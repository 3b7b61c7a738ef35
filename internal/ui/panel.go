package ui

// Bounds is a rectangle on the terminal grid, in cells.
type Bounds struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside b.
// A zero height means the region extends to the bottom of the window.
func (b Bounds) Contains(x, y int) bool {
	if x < b.X || x >= b.X+b.W || y < b.Y {
		return false
	}
	return b.H <= 0 || y < b.Y+b.H
}
