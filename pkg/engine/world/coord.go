// Package world provides generic 2D room-grid primitives: cell coordinates,
// rectangles, directions, node transforms and neighbourhood reveal.
package world

import "fmt"

// Coord addresses one grid cell: column from the left, row from the bottom.
type Coord struct {
	Col int
	Row int
}

// NoCoord is the "nothing selected" sentinel.
var NoCoord = Coord{Col: -1, Row: -1}

// C is shorthand for Coord{col, row}.
func C(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Add offsets c by o.
func (c Coord) Add(o Coord) Coord {
	return Coord{Col: c.Col + o.Col, Row: c.Row + o.Row}
}

// Sub returns c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{Col: c.Col - o.Col, Row: c.Row - o.Row}
}

// Step returns the neighbouring coordinate in direction d.
func (c Coord) Step(d Direction) Coord {
	dc, dr := d.Delta()
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// IsNone reports whether c is the NoCoord sentinel.
func (c Coord) IsNone() bool {
	return c == NoCoord
}

// InBounds reports whether c lies in a width x height grid.
func (c Coord) InBounds(width, height int) bool {
	return c.Col >= 0 && c.Col < width && c.Row >= 0 && c.Row < height
}

// Rect is an axis-aligned block of cells.
type Rect struct {
	X, Y int // lower-left cell
	W, H int
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether c is inside r.
func (r Rect) Contains(c Coord) bool {
	return c.Col >= r.X && c.Col < r.X+r.W && c.Row >= r.Y && c.Row < r.Y+r.H
}

// Overlaps reports whether the two rectangles share a cell.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Offset moves the rectangle by c.
func (r Rect) Offset(c Coord) Rect {
	return Rect{X: r.X + c.Col, Y: r.Y + c.Row, W: r.W, H: r.H}
}

// ForEach calls fn for every cell in r, bottom row first.
func (r Rect) ForEach(fn func(c Coord)) {
	for row := r.Y; row < r.Y+r.H; row++ {
		for col := r.X; col < r.X+r.W; col++ {
			fn(Coord{Col: col, Row: row})
		}
	}
}
