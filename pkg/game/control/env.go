package control

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"reynard/pkg/engine/logger"
	"reynard/pkg/engine/world"
	"reynard/pkg/game/actors"
	"reynard/pkg/game/grid"
	"reynard/pkg/game/rooms"
)

// SwapResult is the outcome of a swap request.
type SwapResult int

const (
	Rejected SwapResult = iota
	Deselected
	Swapped
)

func (r SwapResult) String() string {
	switch r {
	case Swapped:
		return "Swapped"
	case Deselected:
		return "Deselected"
	default:
		return "Rejected"
	}
}

// SwapRecord is one performed swap: the clicked target and the selection it
// was swapped with.
type SwapRecord struct {
	Target    world.Coord
	Selection world.Coord
}

// EnvController runs the select-then-swap protocol on a grid and keeps the
// environment state that depends on where the actors are.
type EnvController struct {
	grid *grid.Grid

	selection world.Coord
	history   []SwapRecord
	// swapIndex counts history entries whose animations have finished and
	// whose cells have had their geometry rebuilt.
	swapIndex int
	// undone holds undo swaps still sliding back.
	undone []SwapRecord

	zoomedOut  bool
	wasZoomed  bool
	lockIcons  mapset.Set[world.Coord]
	occupied   mapset.Set[world.Coord]
	playerRoom world.Coord

	log *logrus.Entry
}

// NewEnvController creates a controller for g with nothing selected.
func NewEnvController(g *grid.Grid) *EnvController {
	return &EnvController{
		grid:       g,
		selection:  world.NoCoord,
		lockIcons:  mapset.New[world.Coord](),
		occupied:   mapset.New[world.Coord](),
		playerRoom: world.NoCoord,
		log:        logger.For("env"),
	}
}

// Grid returns the controlled grid.
func (e *EnvController) Grid() *grid.Grid {
	return e.grid
}

// Selection returns the selected cell, or world.NoCoord.
func (e *EnvController) Selection() world.Coord {
	return e.selection
}

// History returns the performed swaps, oldest first.
func (e *EnvController) History() []SwapRecord {
	return e.history
}

// SwapIndex returns how many history entries have finished animating.
func (e *EnvController) SwapIndex() int {
	return e.swapIndex
}

// SetZoomedOut requests the zoom state. Lock icons follow on the next Update.
func (e *EnvController) SetZoomedOut(z bool) {
	e.zoomedOut = z
}

// ZoomedOut reports the requested zoom state.
func (e *EnvController) ZoomedOut() bool {
	return e.zoomedOut
}

// LockIconVisible reports whether cell c shows a lock icon.
func (e *EnvController) LockIconVisible(c world.Coord) bool {
	return e.wasZoomed && e.lockIcons.Has(c)
}

// roomOf returns the cell a character stands in, or world.NoCoord.
func (e *EnvController) roomOf(c *actors.Character) world.Coord {
	if c == nil {
		return world.NoCoord
	}
	cell, ok := e.grid.WorldToRoom(c.Position())
	if !ok {
		return world.NoCoord
	}
	return cell
}

// IsSwappable reports whether the room at c may take part in a swap right
// now: it exists, is neither locked nor fogged, holds no pinned trap, and
// neither Reynard nor a living enemy stands in it.
func (e *EnvController) IsSwappable(c world.Coord, reynard *actors.Character, enemies []*actors.Enemy) bool {
	r := e.grid.Room(c)
	if r == nil || r.PermLocked || r.Fogged || r.Trap.IsPinned() {
		return false
	}
	if reynard != nil && e.roomOf(reynard) == c {
		return false
	}
	for _, en := range enemies {
		if en == nil || en.Behavior == actors.BehaviorDead {
			continue
		}
		if e.roomOf(en.Character) == c {
			return false
		}
	}
	return true
}

// SelectRoom selects the room under screen point (x, y) if it is swappable
// and clears the selection otherwise.
func (e *EnvController) SelectRoom(x, y float64, reynard *actors.Character, enemies []*actors.Enemy) bool {
	c, ok := e.grid.ScreenToRoom(x, y)
	if !ok || !e.IsSwappable(c, reynard, enemies) {
		e.selection = world.NoCoord
		return false
	}
	e.selection = c
	return true
}

// SwapWithSelected swaps the room under screen point (x, y) with the
// selection. Clicking the selection again deselects it.
func (e *EnvController) SwapWithSelected(x, y float64, reynard *actors.Character, enemies []*actors.Enemy) SwapResult {
	target, ok := e.grid.ScreenToRoom(x, y)
	if !ok || e.selection.IsNone() {
		return Rejected
	}
	if target == e.selection {
		e.selection = world.NoCoord
		return Deselected
	}
	if !e.IsSwappable(e.selection, reynard, enemies) {
		e.log.WithField("selection", e.selection).Debug("selection went stale")
		e.selection = world.NoCoord
		return Rejected
	}
	if !e.IsSwappable(target, reynard, enemies) {
		return Rejected
	}
	if !e.grid.SwapRooms(target, e.selection) {
		return Rejected
	}
	e.history = append(e.history, SwapRecord{Target: target, Selection: e.selection})
	e.log.WithFields(logrus.Fields{"target": target, "selection": e.selection}).Info("rooms swapped")
	e.selection = world.NoCoord
	return Swapped
}

// UndoLastSwap swaps the most recent history entry back, provided both of
// its cells are still swappable.
func (e *EnvController) UndoLastSwap(reynard *actors.Character, enemies []*actors.Enemy) bool {
	n := len(e.history)
	if n == 0 {
		return false
	}
	last := e.history[n-1]
	if !e.IsSwappable(last.Target, reynard, enemies) || !e.IsSwappable(last.Selection, reynard, enemies) {
		return false
	}
	if !e.grid.SwapRooms(last.Selection, last.Target) {
		return false
	}
	e.history = e.history[:n-1]
	e.swapIndex = min(e.swapIndex, len(e.history))
	e.undone = append(e.undone, last)
	e.selection = world.NoCoord
	e.log.WithFields(logrus.Fields{"target": last.Target, "selection": last.Selection}).Info("swap undone")
	return true
}

// Update runs the per-frame environment bookkeeping.
func (e *EnvController) Update(dt float64, reynard *actors.Character, enemies []*actors.Enemy) {
	// 1. drop a selection that stopped being swappable
	if !e.selection.IsNone() && !e.IsSwappable(e.selection, reynard, enemies) {
		e.selection = world.NoCoord
	}

	// 2. tint enemies standing in fog
	for _, en := range enemies {
		if en != nil {
			en.Greyed = e.grid.IsRoomFogged(e.roomOf(en.Character))
		}
	}

	// 3. advance swap animations, then drain finished history entries in
	// order; a cell's geometry follows its room only once the slide is over
	e.grid.ForEachRoom(func(_ world.Coord, r *rooms.Room) {
		r.Update(dt)
	})
	for e.swapIndex < len(e.history) {
		rec := e.history[e.swapIndex]
		if !e.settle(rec) {
			break
		}
		e.swapIndex++
	}
	pending := e.undone[:0]
	for _, rec := range e.undone {
		if !e.settle(rec) {
			pending = append(pending, rec)
		}
	}
	e.undone = pending

	// 4. lock icons follow zoom transitions
	if e.zoomedOut != e.wasZoomed {
		if e.zoomedOut {
			e.refreshLockIcons(reynard, enemies)
		}
		e.wasZoomed = e.zoomedOut
	}

	// 5. lift the fog around Reynard when he enters a new room
	if cell := e.roomOf(reynard); cell != e.playerRoom {
		e.playerRoom = cell
		if !cell.IsNone() {
			if n := world.RevealAroundDefault(e.grid, cell); n > 0 {
				e.log.WithFields(logrus.Fields{"room": cell, "revealed": n}).Debug("fog lifted")
			}
		}
	}
}

// settle rebuilds the geometry of both cells of rec once neither room is
// moving. It reports whether it did.
func (e *EnvController) settle(rec SwapRecord) bool {
	if e.animating(rec.Target) || e.animating(rec.Selection) {
		return false
	}
	e.grid.SyncCells(rec.Target, rec.Selection)
	return true
}

func (e *EnvController) animating(c world.Coord) bool {
	r := e.grid.Room(c)
	return r != nil && r.Animating()
}

// refreshLockIcons re-checks cells that were occupied at the last zoom-out,
// then marks every cell that cannot be swapped now.
func (e *EnvController) refreshLockIcons(reynard *actors.Character, enemies []*actors.Enemy) {
	e.occupied.Each(func(c world.Coord) {
		if e.IsSwappable(c, reynard, enemies) {
			e.lockIcons.Remove(c)
		}
	})
	e.occupied = mapset.New[world.Coord]()
	if c := e.roomOf(reynard); !c.IsNone() {
		e.occupied.Put(c)
	}
	for _, en := range enemies {
		if en == nil || en.Behavior == actors.BehaviorDead {
			continue
		}
		if c := e.roomOf(en.Character); !c.IsNone() {
			e.occupied.Put(c)
		}
	}
	e.grid.ForEachRoom(func(c world.Coord, _ *rooms.Room) {
		if e.IsSwappable(c, reynard, enemies) {
			e.lockIcons.Remove(c)
		} else {
			e.lockIcons.Put(c)
		}
	})
}
