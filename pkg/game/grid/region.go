package grid

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"reynard/pkg/engine/logger"
	"reynard/pkg/engine/world"
	"reynard/pkg/game/assets"
	"reynard/pkg/game/rooms"
)

var (
	ErrRegionOverlap       = errors.New("region overlaps another region")
	ErrSublevelOverlap     = errors.New("sublevel overlaps another sublevel")
	ErrSublevelBounds      = errors.New("sublevel outside region")
	ErrFinalized           = errors.New("region already finalized")
	ErrNotFinalized        = errors.New("region not finalized")
	ErrNoSublevel          = errors.New("no sublevel contains the checkpoint")
	ErrDuplicateCheckpoint = errors.New("checkpoint already registered")
)

// delinked marks a checkpoint that has been cleared.
const delinked = -1

// Sublevel is a rectangular block of cells, in region-local coordinates,
// that is revealed and cleared as one unit.
type Sublevel struct {
	Rect world.Rect
}

// Contains bounds-checks a region-local coordinate against the sublevel.
func (s Sublevel) Contains(c world.Coord) bool {
	return s.Rect.Contains(c)
}

// Region is a view over a rectangle of the grid, partitioned into sublevels.
// Build it in two phases: AddSublevel calls, Finalize, then AddCheckpoint calls.
type Region struct {
	Number int

	grid   *Grid
	bounds world.Rect // grid coordinates

	sublevels   []Sublevel
	checkpoints map[int]int
	toClear     int
	finalized   bool

	pool assets.BackgroundPool
	log  *logrus.Entry
}

// NewRegion registers a region covering bounds (grid coordinates).
func (g *Grid) NewRegion(number int, bounds world.Rect, pool assets.BackgroundPool) (*Region, error) {
	if bounds.Empty() || !g.InBounds(world.C(bounds.X, bounds.Y)) ||
		!g.InBounds(world.C(bounds.X+bounds.W-1, bounds.Y+bounds.H-1)) {
		return nil, fmt.Errorf("region %d %v: %w", number, bounds, ErrOutOfBounds)
	}
	for _, other := range g.regions {
		if other.bounds.Overlaps(bounds) {
			return nil, fmt.Errorf("region %d and %d: %w", number, other.Number, ErrRegionOverlap)
		}
	}
	r := &Region{
		Number: number,
		grid:   g,
		bounds: bounds,
		pool:   pool,
		log:    logger.For("region").WithField("region", number),
	}
	g.regions = append(g.regions, r)
	return r, nil
}

// Regions returns the registered regions in creation order.
func (g *Grid) Regions() []*Region {
	return g.regions
}

// RegionAt returns the region containing grid cell c and the cell in that
// region's local coordinates. The region is nil when none contains c.
func (g *Grid) RegionAt(c world.Coord) (*Region, world.Coord) {
	for _, r := range g.regions {
		if r.bounds.Contains(c) {
			return r, c.Sub(r.Origin())
		}
	}
	return nil, world.NoCoord
}

// ClearCheckpoint clears checkpoint id in whichever region registered it.
func (g *Grid) ClearCheckpoint(id int) bool {
	for _, r := range g.regions {
		if r.HasCheckpoint(id) {
			return r.ClearCheckpoint(id)
		}
	}
	return false
}

// Outstanding returns the checkpoints left to clear across all regions.
func (g *Grid) Outstanding() int {
	n := 0
	for _, r := range g.regions {
		n += r.Outstanding()
	}
	return n
}

// Origin is the grid cell of region-local (0,0).
func (r *Region) Origin() world.Coord {
	return world.C(r.bounds.X, r.bounds.Y)
}

// Bounds returns the region rectangle in grid coordinates.
func (r *Region) Bounds() world.Rect {
	return r.bounds
}

// Pool returns the region's background textures.
func (r *Region) Pool() assets.BackgroundPool {
	return r.pool
}

// AddSublevel registers a sublevel rectangle in region-local coordinates.
func (r *Region) AddSublevel(rect world.Rect) error {
	if r.finalized {
		return ErrFinalized
	}
	local := world.R(0, 0, r.bounds.W, r.bounds.H)
	if rect.Empty() || !local.Contains(world.C(rect.X, rect.Y)) ||
		!local.Contains(world.C(rect.X+rect.W-1, rect.Y+rect.H-1)) {
		return fmt.Errorf("sublevel %v: %w", rect, ErrSublevelBounds)
	}
	for _, s := range r.sublevels {
		if s.Rect.Overlaps(rect) {
			return fmt.Errorf("sublevel %v and %v: %w", rect, s.Rect, ErrSublevelOverlap)
		}
	}
	r.sublevels = append(r.sublevels, Sublevel{Rect: rect})
	return nil
}

// Finalize closes the sublevel phase. Checkpoints may be added afterwards.
func (r *Region) Finalize() {
	r.finalized = true
}

// Sublevels returns the registered sublevels.
func (r *Region) Sublevels() []Sublevel {
	return r.sublevels
}

// SublevelAt returns the index of the sublevel containing region-local c.
func (r *Region) SublevelAt(c world.Coord) (int, bool) {
	for i, s := range r.sublevels {
		if s.Contains(c) {
			return i, true
		}
	}
	return -1, false
}

// Room returns the room at region-local (x, y), or nil if no sublevel
// claims the coordinate.
func (r *Region) Room(x, y int) *rooms.Room {
	c := world.C(x, y)
	if _, ok := r.SublevelAt(c); !ok {
		return nil
	}
	return r.grid.Room(c.Add(r.Origin()))
}

// SublevelRooms returns the rooms currently inside sublevel i.
func (r *Region) SublevelRooms(i int) []*rooms.Room {
	if i < 0 || i >= len(r.sublevels) {
		return nil
	}
	var out []*rooms.Room
	r.sublevels[i].Rect.Offset(r.Origin()).ForEach(func(c world.Coord) {
		if room := r.grid.Room(c); room != nil {
			out = append(out, room)
		}
	})
	return out
}

// AddCheckpoint links checkpoint id to the sublevel containing region-local
// (x, y). The region must be finalized.
func (r *Region) AddCheckpoint(id, x, y int) error {
	if !r.finalized {
		return fmt.Errorf("checkpoint %d: %w", id, ErrNotFinalized)
	}
	if r.checkpoints == nil {
		r.checkpoints = make(map[int]int)
	}
	if _, ok := r.checkpoints[id]; ok {
		return fmt.Errorf("checkpoint %d: %w", id, ErrDuplicateCheckpoint)
	}
	i, ok := r.SublevelAt(world.C(x, y))
	if !ok {
		return fmt.Errorf("checkpoint %d at (%d,%d): %w", id, x, y, ErrNoSublevel)
	}
	r.checkpoints[id] = i
	r.toClear++
	return nil
}

// HasCheckpoint reports whether id was registered here, cleared or not.
func (r *Region) HasCheckpoint(id int) bool {
	_, ok := r.checkpoints[id]
	return ok
}

// IsCleared reports whether checkpoint id has been cleared.
func (r *Region) IsCleared(id int) bool {
	i, ok := r.checkpoints[id]
	return ok && i == delinked
}

// ClearCheckpoint swaps every room of the linked sublevel to the cleared
// background, lifts their fog and delinks the checkpoint. It returns false
// for unknown or already cleared ids and leaves everything unchanged.
func (r *Region) ClearCheckpoint(id int) bool {
	i, ok := r.checkpoints[id]
	if !ok || i == delinked || r.toClear <= 0 {
		return false
	}
	for _, room := range r.SublevelRooms(i) {
		room.Background = r.pool.Cleared
		room.Fogged = false
	}
	r.checkpoints[id] = delinked
	r.toClear--
	r.log.WithFields(logrus.Fields{"checkpoint": id, "sublevel": i, "left": r.toClear}).Info("checkpoint cleared")
	return true
}

// Outstanding returns the number of checkpoints not yet cleared.
func (r *Region) Outstanding() int {
	return r.toClear
}

// Cleared reports whether every checkpoint of the region has been cleared.
func (r *Region) Cleared() bool {
	return r.toClear == 0
}

// AssignBackgrounds gives every room in the region a background from the
// region pool.
func (r *Region) AssignBackgrounds(rng *rand.Rand) {
	r.bounds.ForEach(func(c world.Coord) {
		if room := r.grid.Room(c); room != nil {
			room.Background = r.pool.Pick(rng)
		}
	})
}
