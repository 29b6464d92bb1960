// Package level reads level files and builds playable grids from them.
//
// A level file is YAML (JSON parses too). Grid rows are written top row
// first, the way they read in an editor; Build flips them so row 0 is the
// bottom of the level. Every other coordinate in the file (locked rooms,
// region origins, spawns) already counts rows from the bottom.
package level

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"reynard/pkg/engine/logger"
	"reynard/pkg/engine/physics"
	"reynard/pkg/engine/world"
	"reynard/pkg/game/assets"
	"reynard/pkg/game/entities"
	"reynard/pkg/game/grid"
	"reynard/pkg/game/rooms"
)

// EmptyCell marks a grid slot with no room.
const EmptyCell = "."

// DefaultBackground is used for rooms that no region covers.
const DefaultBackground = "bg_default"

// defaultPoolSize is the number of background variants per region when the
// file does not say.
const defaultPoolSize = 3

var (
	ErrEmptyGrid    = errors.New("level grid is empty")
	ErrRaggedGrid   = errors.New("level grid rows differ in length")
	ErrBadReference = errors.New("level refers to a missing room")
)

// RoomType is the static content shared by every room of one type.
type RoomType struct {
	// Polygons are in room-local pixels, origin at the lower-left corner.
	Polygons [][][2]float64 `yaml:"polygons"`
	Trap     string         `yaml:"trap,omitempty"`
}

// Checkpoint places checkpoint ID at region-local (X, Y).
type Checkpoint struct {
	ID int `yaml:"id"`
	X  int `yaml:"x"`
	Y  int `yaml:"y"`
}

// Region describes one region and its sublevels.
type Region struct {
	Number int    `yaml:"number"`
	Origin [2]int `yaml:"origin"`
	// Size defaults to the bounding box of the sublevels.
	Size        [2]int       `yaml:"size,omitempty"`
	Sublevels   [][4]int     `yaml:"sublevels"`
	Checkpoints []Checkpoint `yaml:"checkpoints"`
	Backgrounds int          `yaml:"backgrounds,omitempty"`
}

// File is the on-disk form of a level.
type File struct {
	Name      string              `yaml:"name"`
	RoomTypes map[string]RoomType `yaml:"room_types"`
	// Grid holds room type IDs, top row first.
	Grid    [][]string `yaml:"grid"`
	Locked  [][2]int   `yaml:"locked,omitempty"`
	Fog     bool       `yaml:"fog"`
	Regions []Region   `yaml:"regions,omitempty"`
	Player  [2]int     `yaml:"player"`
	Enemies [][2]int   `yaml:"enemies,omitempty"`
}

// Level is a built level ready to be played.
type Level struct {
	Name    string
	Grid    *grid.Grid
	Player  world.Coord
	Enemies []world.Coord
}

// Size returns the grid width and height of the file.
func (f *File) Size() (int, int) {
	if len(f.Grid) == 0 {
		return 0, 0
	}
	return len(f.Grid[0]), len(f.Grid)
}

// TypeAt returns the room type ID at c, with rows counted from the bottom.
func (f *File) TypeAt(c world.Coord) string {
	w, h := f.Size()
	if !c.InBounds(w, h) {
		return EmptyCell
	}
	return f.Grid[h-1-c.Row][c.Col]
}

// Validate checks the shape of the grid.
func (f *File) Validate() error {
	if len(f.Grid) == 0 || len(f.Grid[0]) == 0 {
		return ErrEmptyGrid
	}
	w := len(f.Grid[0])
	for i, row := range f.Grid {
		if len(row) != w {
			return fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), w, ErrRaggedGrid)
		}
	}
	return nil
}

// Parse decodes a level file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and decodes the level file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Marshal encodes f as YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// DefaultPolygons is the geometry of a room whose type is unknown: an empty
// room with a thin floor.
func DefaultPolygons(roomW, roomH float64) [][]physics.Vec2 {
	t := roomH / 16
	return [][]physics.Vec2{{
		physics.V(0, 0), physics.V(roomW, 0), physics.V(roomW, t), physics.V(0, t),
	}}
}

// Build creates the grid described by f. Regions go through the two-phase
// build: all sublevels, Finalize, then checkpoints. A nil rng is seeded
// with 1.
func Build(f *File, opts grid.Options, cat *assets.Catalog, rng *rand.Rand) (*Level, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if cat == nil {
		cat = assets.NewCatalog()
	}
	log := logger.For("level").WithField("level", f.Name)

	w, h := f.Size()
	g, err := grid.New(w, h, opts)
	if err != nil {
		return nil, err
	}

	bg := cat.Get(DefaultBackground)
	missing := map[string]bool{}
	id := rooms.ID(1)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c := world.C(col, row)
			typeID := f.TypeAt(c)
			if typeID == EmptyCell || typeID == "" {
				continue
			}
			rt, ok := f.RoomTypes[typeID]
			var polys [][]physics.Vec2
			if ok {
				polys = toPolygons(rt.Polygons)
			} else {
				if !missing[typeID] {
					log.WithField("type", typeID).Warn("unknown room type, using default geometry")
					missing[typeID] = true
				}
				polys = DefaultPolygons(opts.RoomWidth, opts.RoomHeight)
			}
			r := rooms.New(id, typeID, c, polys)
			r.Fogged = f.Fog
			r.Background = bg
			switch t := entities.ParseTrapType(rt.Trap); t {
			case entities.TrapNone:
			case entities.TrapCheckpoint:
				log.WithField("type", typeID).Warn("checkpoint traps come from region checkpoints, ignoring")
			default:
				r.Trap = entities.NewTrap(t)
			}
			if err := g.Place(c, r); err != nil {
				return nil, err
			}
			id++
		}
	}

	for _, p := range f.Locked {
		c := world.C(p[0], p[1])
		r := g.Room(c)
		if r == nil {
			return nil, fmt.Errorf("locked %v: %w", c, ErrBadReference)
		}
		r.PermLocked = true
	}

	seen := map[int]int{}
	for _, spec := range f.Regions {
		if err := buildRegion(g, spec, cat, rng, seen); err != nil {
			return nil, fmt.Errorf("region %d: %w", spec.Number, err)
		}
	}

	lvl := &Level{Name: f.Name, Grid: g, Player: world.C(f.Player[0], f.Player[1])}
	if !g.InBounds(lvl.Player) {
		return nil, fmt.Errorf("player spawn %v: %w", lvl.Player, grid.ErrOutOfBounds)
	}
	for _, e := range f.Enemies {
		c := world.C(e[0], e[1])
		if !g.InBounds(c) {
			return nil, fmt.Errorf("enemy spawn %v: %w", c, grid.ErrOutOfBounds)
		}
		lvl.Enemies = append(lvl.Enemies, c)
	}

	log.WithFields(logrus.Fields{
		"width":       w,
		"height":      h,
		"regions":     len(f.Regions),
		"checkpoints": g.Outstanding(),
		"enemies":     len(lvl.Enemies),
	}).Info("level built")
	return lvl, nil
}

func buildRegion(g *grid.Grid, spec Region, cat *assets.Catalog, rng *rand.Rand, seen map[int]int) error {
	bounds := world.R(spec.Origin[0], spec.Origin[1], spec.Size[0], spec.Size[1])
	if bounds.Empty() {
		bounds = sublevelBounds(spec)
	}
	size := spec.Backgrounds
	if size <= 0 {
		size = defaultPoolSize
	}
	reg, err := g.NewRegion(spec.Number, bounds, assets.NewBackgroundPool(cat, spec.Number, size))
	if err != nil {
		return err
	}
	for _, s := range spec.Sublevels {
		if err := reg.AddSublevel(world.R(s[0], s[1], s[2], s[3])); err != nil {
			return err
		}
	}
	reg.Finalize()
	reg.AssignBackgrounds(rng)

	for _, cp := range spec.Checkpoints {
		if other, ok := seen[cp.ID]; ok {
			return fmt.Errorf("checkpoint %d also in region %d: %w", cp.ID, other, grid.ErrDuplicateCheckpoint)
		}
		if err := reg.AddCheckpoint(cp.ID, cp.X, cp.Y); err != nil {
			return err
		}
		r := reg.Room(cp.X, cp.Y)
		if r == nil {
			return fmt.Errorf("checkpoint %d at (%d,%d): %w", cp.ID, cp.X, cp.Y, ErrBadReference)
		}
		r.Trap = entities.NewCheckpoint(cp.ID)
		seen[cp.ID] = spec.Number
	}
	return nil
}

// sublevelBounds is the smallest rectangle at the region origin holding
// every sublevel.
func sublevelBounds(spec Region) world.Rect {
	w, h := 0, 0
	for _, s := range spec.Sublevels {
		w = max(w, s[0]+s[2])
		h = max(h, s[1]+s[3])
	}
	return world.R(spec.Origin[0], spec.Origin[1], w, h)
}

func toPolygons(in [][][2]float64) [][]physics.Vec2 {
	out := make([][]physics.Vec2, 0, len(in))
	for _, poly := range in {
		p := make([]physics.Vec2, len(poly))
		for i, v := range poly {
			p[i] = physics.V(v[0], v[1])
		}
		out = append(out, p)
	}
	return out
}
