package grid

import (
	"math"

	"reynard/pkg/engine/physics"
	"reynard/pkg/engine/world"
)

// LocalToRoom converts grid-local pixels to a cell. ok is false when the
// result falls outside the grid; the coordinate is still returned.
func (g *Grid) LocalToRoom(x, y float64) (world.Coord, bool) {
	c := world.Coord{
		Col: int(math.Floor(x/g.opts.RoomWidth)) - g.opts.Origin.Col,
		Row: int(math.Floor(y/g.opts.RoomHeight)) - g.opts.Origin.Row,
	}
	return c, g.InBounds(c)
}

// ScreenToRoom converts a screen position to a cell through the inverse of
// the node transform.
func (g *Grid) ScreenToRoom(x, y float64) (world.Coord, bool) {
	lx, ly := g.nodeInv.Apply(x, y)
	return g.LocalToRoom(lx, ly)
}

// WorldToRoom converts a physics position to a cell.
func (g *Grid) WorldToRoom(p physics.Vec2) (world.Coord, bool) {
	return g.LocalToRoom(p.X*g.opts.PhysicsScale, p.Y*g.opts.PhysicsScale)
}

// RoomToLocal returns the lower-left corner of cell c in grid-local pixels.
func (g *Grid) RoomToLocal(c world.Coord) (float64, float64) {
	return float64(c.Col+g.opts.Origin.Col) * g.opts.RoomWidth,
		float64(c.Row+g.opts.Origin.Row) * g.opts.RoomHeight
}

// RoomToWorld returns the lower-left corner of cell c in physics units.
func (g *Grid) RoomToWorld(c world.Coord) physics.Vec2 {
	x, y := g.RoomToLocal(c)
	return physics.V(x/g.opts.PhysicsScale, y/g.opts.PhysicsScale)
}

// RoomCenterWorld returns the centre of cell c in physics units.
func (g *Grid) RoomCenterWorld(c world.Coord) physics.Vec2 {
	ll := g.RoomToWorld(c)
	return ll.Add(physics.V(g.opts.RoomWidth/2/g.opts.PhysicsScale, g.opts.RoomHeight/2/g.opts.PhysicsScale))
}

// RoomToScreen returns the centre of cell c in screen pixels.
func (g *Grid) RoomToScreen(c world.Coord) (float64, float64) {
	x, y := g.RoomToLocal(c)
	return g.opts.Node.Apply(x+g.opts.RoomWidth/2, y+g.opts.RoomHeight/2)
}

// WorldToScreen maps a physics position to screen pixels.
func (g *Grid) WorldToScreen(p physics.Vec2) (float64, float64) {
	return g.opts.Node.Apply(p.X*g.opts.PhysicsScale, p.Y*g.opts.PhysicsScale)
}

// SetNode replaces the node transform, e.g. when the camera zooms.
// A singular transform is ignored and false returned.
func (g *Grid) SetNode(t world.Transform) bool {
	inv, ok := t.Inverse()
	if !ok {
		return false
	}
	g.opts.Node = t
	g.nodeInv = inv
	return true
}
