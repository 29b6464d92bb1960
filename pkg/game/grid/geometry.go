package grid

import (
	"github.com/sirupsen/logrus"

	"reynard/pkg/engine/physics"
	"reynard/pkg/engine/world"
)

// CellGeometry derives the physics polygons of the room at c: every room
// polygon is moved to the cell's pixel origin and divided by the physics
// scale. Empty and out-of-bounds cells have no geometry.
func (g *Grid) CellGeometry(c world.Coord) [][]physics.Vec2 {
	r := g.Room(c)
	if r == nil {
		return nil
	}
	ox, oy := g.RoomToLocal(c)
	s := g.opts.PhysicsScale
	out := make([][]physics.Vec2, 0, len(r.Polygons))
	for _, poly := range r.Polygons {
		if len(poly) < 2 {
			continue
		}
		mapped := make([]physics.Vec2, len(poly))
		for i, p := range poly {
			mapped[i] = physics.V((ox+p.X)/s, (oy+p.Y)/s)
		}
		out = append(out, mapped)
	}
	return out
}

// BoundaryWalls returns the four segments enclosing the whole grid.
func (g *Grid) BoundaryWalls() [][2]physics.Vec2 {
	ll := g.RoomToWorld(world.C(0, 0))
	ur := g.RoomToWorld(world.C(g.width, g.height))
	lr := physics.V(ur.X, ll.Y)
	ul := physics.V(ll.X, ur.Y)
	return [][2]physics.Vec2{
		{ll, lr}, // floor
		{lr, ur}, // right
		{ur, ul}, // ceiling
		{ul, ll}, // left
	}
}

// Geometry derives the full static geometry: every cell's polygons followed
// by the boundary walls as two-point polygons. The result is deterministic
// for a given arrangement.
func (g *Grid) Geometry() [][]physics.Vec2 {
	var out [][]physics.Vec2
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			out = append(out, g.CellGeometry(world.C(col, row))...)
		}
	}
	for _, w := range g.BoundaryWalls() {
		out = append(out, []physics.Vec2{w[0], w[1]})
	}
	return out
}

// AttachWorld materialises the geometry as static obstacles in w. Any
// previously attached world is released first.
func (g *Grid) AttachWorld(w *physics.World) {
	g.detachGeometry()
	g.phys = w
	if w == nil {
		return
	}
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			g.rebuildCell(world.C(col, row))
		}
	}
	for _, seg := range g.BoundaryWalls() {
		g.walls = append(g.walls, w.AddEdge(seg[0], seg[1]))
	}
	g.log.WithField("obstacles", w.ObstacleCount()).Debug("geometry attached")
}

// PhysicsWorld returns the attached world, or nil.
func (g *Grid) PhysicsWorld() *physics.World {
	return g.phys
}

// CellObstacleCount returns how many obstacles currently back cell c.
func (g *Grid) CellObstacleCount(c world.Coord) int {
	if !g.InBounds(c) {
		return 0
	}
	return len(g.geometry[g.index(c)])
}

// SyncCells rebuilds the obstacles of the given cells from the rooms that
// sit in them now.
func (g *Grid) SyncCells(cells ...world.Coord) {
	for _, c := range cells {
		g.rebuildCell(c)
	}
}

// rebuildCell replaces the obstacles of one cell with freshly derived ones.
func (g *Grid) rebuildCell(c world.Coord) {
	if g.phys == nil || !g.InBounds(c) {
		return
	}
	i := g.index(c)
	for _, o := range g.geometry[i] {
		g.phys.Remove(o)
	}
	g.geometry[i] = g.geometry[i][:0]
	for _, poly := range g.CellGeometry(c) {
		if o := g.phys.AddPolygon(poly); o != nil {
			g.geometry[i] = append(g.geometry[i], o)
		}
	}
	g.log.WithFields(logrus.Fields{"cell": c, "obstacles": len(g.geometry[i])}).Trace("cell geometry rebuilt")
}

func (g *Grid) detachGeometry() {
	if g.phys == nil {
		return
	}
	for i, list := range g.geometry {
		for _, o := range list {
			g.phys.Remove(o)
		}
		g.geometry[i] = nil
	}
	for _, o := range g.walls {
		g.phys.Remove(o)
	}
	g.walls = nil
	g.phys = nil
}
