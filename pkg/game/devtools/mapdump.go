// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"reynard/pkg/engine/world"
	"reynard/pkg/game/rooms"
	"reynard/pkg/game/state"
)

const mapDumpFilename = "map.txt"

var ErrNoGrid = errors.New("no grid")

// cellSymbol returns the single-character symbol for a cell. If revealedOnly
// is true, fogged rooms return '#'; otherwise they show their content.
func cellSymbol(g *state.Game, c world.Coord, revealedOnly bool) rune {
	if rc, ok := g.Grid.WorldToRoom(g.Character().Position()); ok && rc == c {
		return '@'
	}
	for _, e := range g.EnemyModels() {
		if e.IsDead() {
			continue
		}
		if ec, ok := g.Grid.WorldToRoom(e.Position()); ok && ec == c {
			return 'e'
		}
	}
	r := g.Grid.Room(c)
	if r == nil {
		return ' '
	}
	if revealedOnly && r.Fogged {
		return '#'
	}
	switch {
	case r.Trap != nil:
		return []rune(r.Trap.GetIcon())[0]
	case r.Locked():
		return 'L'
	default:
		return '.'
	}
}

// WriteMap writes the grid with the top row first, the way it is drawn.
func WriteMap(w io.Writer, g *state.Game, revealedOnly bool) {
	for row := g.Grid.Height() - 1; row >= 0; row-- {
		line := make([]rune, g.Grid.Width())
		for col := range line {
			line[col] = cellSymbol(g, world.C(col, row), revealedOnly)
		}
		fmt.Fprintln(w, string(line))
	}
}

// DumpMapToFile writes a full debug dump to map.txt: metadata, legend,
// fog-aware map, full map, and the rooms, regions and actors with their state.
func DumpMapToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}

// WriteDump writes the debug dump of g to w.
func WriteDump(w io.Writer, g *state.Game) error {
	if g == nil || g.Grid == nil {
		return ErrNoGrid
	}
	rey := g.Character()
	reyCell, _ := g.Grid.WorldToRoom(rey.Position())

	fmt.Fprintln(w, "=== MAP DUMP DEBUG (level layout, regions, actors) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "level: %d\n", g.Level)
	fmt.Fprintf(w, "name: %s\n", g.Name)
	fmt.Fprintf(w, "seed: %d\n", g.Seed)
	fmt.Fprintf(w, "grid_cols: %d\n", g.Grid.Width())
	fmt.Fprintf(w, "grid_rows: %d\n", g.Grid.Height())
	fmt.Fprintln(w, "coordinate_system: col,row (0-based, row 0 at the bottom)")
	fmt.Fprintf(w, "reynard_cell: %d,%d\n", reyCell.Col, reyCell.Row)
	fmt.Fprintf(w, "reynard_pos: %.2f,%.2f\n", rey.Position().X, rey.Position().Y)
	fmt.Fprintf(w, "reynard_state: %s\n", rey.Movement)
	fmt.Fprintf(w, "respawn: %.2f,%.2f\n", g.RespawnPoint.X, g.RespawnPoint.Y)
	fmt.Fprintf(w, "deaths: %d\n", g.Deaths)
	fmt.Fprintf(w, "elapsed: %.2f\n", g.Elapsed)
	fmt.Fprintf(w, "checkpoints_outstanding: %d\n", g.Grid.Outstanding())
	fmt.Fprintf(w, "selection: %s\n", g.Env.Selection())
	fmt.Fprintf(w, "swap_history: %d\n", len(g.Env.History()))
	fmt.Fprintf(w, "zoomed_out: %v\n", g.Env.ZoomedOut())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, "@ = reynard  e = enemy  # = fogged  . = room  L = locked room  ^ = spikes  C = checkpoint  v = falling block  E = exit  (blank) = no room")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (fog applied) ---")
	WriteMap(w, g, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (full layout) ---")
	WriteMap(w, g, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rooms ---")
	g.Grid.ForEachRoom(func(c world.Coord, r *rooms.Room) {
		trap := "none"
		if r.Trap != nil {
			trap = r.Trap.Type.String()
		}
		fmt.Fprintf(w, "  col: %d row: %d id: %d type: %q trap: %q locked: %v fogged: %v background: %q\n",
			c.Col, c.Row, r.ID(), r.Type, trap, r.Locked(), r.Fogged, r.Background.Name)
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Regions ---")
	for _, reg := range g.Grid.Regions() {
		b := reg.Bounds()
		fmt.Fprintf(w, "  region: %d bounds: %d,%d %dx%d sublevels: %d outstanding: %d\n",
			reg.Number, b.X, b.Y, b.W, b.H, len(reg.Sublevels()), reg.Outstanding())
		for i, s := range reg.Sublevels() {
			fmt.Fprintf(w, "    sublevel: %d rect: %d,%d %dx%d\n", i, s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H)
		}
	}
	g.Grid.ForEachRoom(func(c world.Coord, r *rooms.Room) {
		if !r.HasCheckpoint() {
			return
		}
		reg, _ := g.Grid.RegionAt(c)
		cleared := reg != nil && reg.IsCleared(r.Checkpoint())
		fmt.Fprintf(w, "  checkpoint: %d col: %d row: %d cleared: %v\n", r.Checkpoint(), c.Col, c.Row, cleared)
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Actors ---")
	for i, e := range g.EnemyModels() {
		p := e.Position()
		fmt.Fprintf(w, "  enemy: %d handle: %d pos: %.2f,%.2f behavior: %s movement: %s greyed: %v\n",
			i, e.Handle, p.X, p.Y, e.Behavior, e.Movement, e.Greyed)
	}
	return nil
}
