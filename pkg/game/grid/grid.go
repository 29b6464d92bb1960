// Package grid owns the arrangement of rooms for a level: one flat slice of
// room slots, coordinate conversions, the swap operation and its legality,
// fog of war, derived physics geometry and the region/sublevel views that
// gate checkpoint clearing.
package grid

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"reynard/pkg/engine/logger"
	"reynard/pkg/engine/physics"
	"reynard/pkg/engine/world"
	"reynard/pkg/game/rooms"
)

var (
	ErrInvalidSize  = errors.New("grid dimensions must be positive")
	ErrOutOfBounds  = errors.New("coordinate outside grid")
	ErrOccupied     = errors.New("cell already holds a room")
	ErrBadTransform = errors.New("node transform is not invertible")
)

// Options fixes the geometry of the grid.
type Options struct {
	// RoomWidth and RoomHeight are the size of one cell in pixels.
	RoomWidth  float64
	RoomHeight float64
	// PhysicsScale is pixels per physics unit.
	PhysicsScale float64
	// Origin offsets cell coordinates: local pixel (0,0) lies in cell -Origin.
	Origin world.Coord
	// Node maps grid-local pixels to screen pixels.
	Node world.Transform
	// SwapSeconds is the duration of the room swap animation.
	SwapSeconds float64
}

// DefaultOptions returns options with an identity node transform.
func DefaultOptions(roomW, roomH, scale float64) Options {
	return Options{
		RoomWidth:    roomW,
		RoomHeight:   roomH,
		PhysicsScale: scale,
		Node:         world.Identity(),
	}
}

// Grid is the single source of truth for room placement.
type Grid struct {
	width  int
	height int
	slots  []*rooms.Room

	opts    Options
	nodeInv world.Transform

	regions []*Region

	phys     *physics.World
	geometry [][]*physics.Obstacle
	walls    []*physics.Obstacle

	log *logrus.Entry
}

// New creates an empty width x height grid.
func New(width, height int, opts Options) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if opts.RoomWidth <= 0 || opts.RoomHeight <= 0 || opts.PhysicsScale <= 0 {
		return nil, fmt.Errorf("%w: room %vx%v scale %v", ErrInvalidSize, opts.RoomWidth, opts.RoomHeight, opts.PhysicsScale)
	}
	inv, ok := opts.Node.Inverse()
	if !ok {
		return nil, ErrBadTransform
	}
	return &Grid{
		width:    width,
		height:   height,
		slots:    make([]*rooms.Room, width*height),
		opts:     opts,
		nodeInv:  inv,
		geometry: make([][]*physics.Obstacle, width*height),
		log:      logger.For("grid").WithField("size", fmt.Sprintf("%dx%d", width, height)),
	}, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Options returns the geometry the grid was built with.
func (g *Grid) Options() Options {
	return g.opts
}

// InBounds checks if a coordinate is within grid bounds
func (g *Grid) InBounds(c world.Coord) bool {
	return c.InBounds(g.width, g.height)
}

func (g *Grid) index(c world.Coord) int {
	return c.Row*g.width + c.Col
}

// Room returns the room at c, or nil if out of bounds or empty.
func (g *Grid) Room(c world.Coord) *rooms.Room {
	if !g.InBounds(c) {
		return nil
	}
	return g.slots[g.index(c)]
}

// Place puts a room into an empty cell and sets its position.
func (g *Grid) Place(c world.Coord, r *rooms.Room) error {
	if !g.InBounds(c) {
		return fmt.Errorf("place %v: %w", c, ErrOutOfBounds)
	}
	i := g.index(c)
	if g.slots[i] != nil {
		return fmt.Errorf("place %v: %w", c, ErrOccupied)
	}
	g.slots[i] = r
	r.Pos = c
	if g.phys != nil {
		g.rebuildCell(c)
	}
	return nil
}

// RoomByID finds a room by identity, wherever it currently sits.
func (g *Grid) RoomByID(id rooms.ID) *rooms.Room {
	for _, r := range g.slots {
		if r != nil && r.ID() == id {
			return r
		}
	}
	return nil
}

// ForEachRoom calls fn for every occupied cell, bottom row first.
func (g *Grid) ForEachRoom(fn func(c world.Coord, r *rooms.Room)) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			c := world.C(col, row)
			if r := g.slots[g.index(c)]; r != nil {
				fn(c, r)
			}
		}
	}
}

// Reset tears the grid down: every room, region and obstacle is dropped.
func (g *Grid) Reset() {
	g.detachGeometry()
	for i := range g.slots {
		g.slots[i] = nil
	}
	g.regions = nil
}

// CanSwap reports whether the rooms at a and b may be exchanged. It only
// looks at bounds and lock state; occupancy is the caller's concern.
func (g *Grid) CanSwap(a, b world.Coord) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	ra, rb := g.Room(a), g.Room(b)
	if ra == nil || rb == nil {
		return false
	}
	return !ra.Locked() && !rb.Locked()
}

// SwapRooms exchanges the rooms at a and b. Backgrounds stay with their
// cells. Either everything moves or, when CanSwap fails or a == b, nothing
// does and false is returned. The physics geometry of both cells is left as
// it was until SyncCells is called for them.
func (g *Grid) SwapRooms(a, b world.Coord) bool {
	if a == b || !g.CanSwap(a, b) {
		return false
	}
	ia, ib := g.index(a), g.index(b)
	ra, rb := g.slots[ia], g.slots[ib]

	g.slots[ia], g.slots[ib] = rb, ra
	ra.Pos, rb.Pos = b, a
	ra.Background, rb.Background = rb.Background, ra.Background
	ra.BeginMove(a, b, g.opts.SwapSeconds)
	rb.BeginMove(b, a, g.opts.SwapSeconds)

	g.log.WithFields(logrus.Fields{"a": a, "b": b}).Debug("rooms swapped")
	return true
}

// SetRoomFog sets the fog flag of the room at c and reports whether it changed.
func (g *Grid) SetRoomFog(c world.Coord, fogged bool) bool {
	r := g.Room(c)
	if r == nil || r.Fogged == fogged {
		return false
	}
	r.Fogged = fogged
	return true
}

// IsRoomFogged reports the fog flag at c. Empty or out-of-bounds cells are not fogged.
func (g *Grid) IsRoomFogged(c world.Coord) bool {
	r := g.Room(c)
	return r != nil && r.Fogged
}

// FogAll sets the fog flag on every room.
func (g *Grid) FogAll(fogged bool) {
	for _, r := range g.slots {
		if r != nil {
			r.Fogged = fogged
		}
	}
}
