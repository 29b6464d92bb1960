// Package generator tests BSP level generation: region and sublevel
// partitioning, checkpoint placement, spawns and determinism.
package generator

import (
	"bytes"
	"math/rand"
	"testing"

	"reynard/pkg/engine/logger"
	"reynard/pkg/engine/world"
	"reynard/pkg/game/assets"
	"reynard/pkg/game/campaign"
	"reynard/pkg/game/grid"
	"reynard/pkg/game/level"
)

func init() {
	logger.Silence()
}

func generate(t *testing.T, depth int, seed int64) *level.File {
	t.Helper()
	f := DefaultGenerator.Generate(depth, rand.New(rand.NewSource(seed)))
	if f == nil {
		t.Fatalf("Generate(%d) returned nil", depth)
	}
	return f
}

func TestBSPGenerate_RegionsAndSublevelsPartitionGrid(t *testing.T) {
	for depth := 1; depth <= campaign.TotalLevels; depth++ {
		f := generate(t, depth, int64(depth))
		w, h := f.Size()
		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				c := world.C(col, row)
				regions, sublevels := 0, 0
				for _, r := range f.Regions {
					bounds := world.R(r.Origin[0], r.Origin[1], r.Size[0], r.Size[1])
					if !bounds.Contains(c) {
						continue
					}
					regions++
					local := c.Sub(world.C(r.Origin[0], r.Origin[1]))
					for _, s := range r.Sublevels {
						if world.R(s[0], s[1], s[2], s[3]).Contains(local) {
							sublevels++
						}
					}
				}
				if regions != 1 || sublevels != 1 {
					t.Fatalf("depth %d: cell %v in %d regions and %d sublevels, want 1 and 1", depth, c, regions, sublevels)
				}
			}
		}
	}
}

func TestBSPGenerate_CheckpointPerSublevel(t *testing.T) {
	f := generate(t, 4, 11)
	sublevels, checkpoints := 0, 0
	ids := map[int]bool{}
	for _, r := range f.Regions {
		sublevels += len(r.Sublevels)
		checkpoints += len(r.Checkpoints)
		for _, cp := range r.Checkpoints {
			if ids[cp.ID] {
				t.Errorf("checkpoint id %d used twice", cp.ID)
			}
			ids[cp.ID] = true
		}
	}
	// only a sublevel holding nothing but the spawn or exit goes without
	if checkpoints < sublevels-2 || checkpoints > sublevels {
		t.Errorf("checkpoints = %d, sublevels = %d", checkpoints, sublevels)
	}
}

func TestBSPGenerate_BuildsPlayableLevel(t *testing.T) {
	for depth := 1; depth <= campaign.TotalLevels; depth++ {
		f := generate(t, depth, 99)
		lvl, err := level.Build(f, grid.DefaultOptions(BSP.RoomWidth, BSP.RoomHeight, 32), assets.NewCatalog(), rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("depth %d: Build: %v", depth, err)
		}
		g := lvl.Grid
		if g.Room(lvl.Player) == nil {
			t.Fatalf("depth %d: no room at player spawn", depth)
		}
		if g.Room(lvl.Player).Trap.IsLethal() {
			t.Errorf("depth %d: player spawns on a lethal trap", depth)
		}
		exit := world.C(g.Width()-1, g.Height()-1)
		if !g.Room(exit).PermLocked {
			t.Errorf("depth %d: exit room %v not locked", depth, exit)
		}
		for _, e := range lvl.Enemies {
			if e == lvl.Player {
				t.Errorf("depth %d: enemy spawns on the player", depth)
			}
			if g.Room(e).Trap.IsLethal() {
				t.Errorf("depth %d: enemy spawns on spikes at %v", depth, e)
			}
		}
		// crowded levels may run out of free cells
		if want := campaign.DifficultyFor(depth).Enemies; len(lvl.Enemies) == 0 || len(lvl.Enemies) > want {
			t.Errorf("depth %d: %d enemies, want 1..%d", depth, len(lvl.Enemies), want)
		}
	}
}

func TestBSPGenerate_SpawnNeighboursHaveNoSpikes(t *testing.T) {
	for depth := 1; depth <= campaign.TotalLevels; depth++ {
		for seed := int64(0); seed < 20; seed++ {
			f := generate(t, depth, seed)
			spawn := world.C(f.Player[0], f.Player[1])
			for _, d := range world.AllDirections() {
				if got := f.TypeAt(spawn.Step(d)); got == "spikes" {
					t.Fatalf("depth %d seed %d: spikes %v of the spawn", depth, seed, d)
				}
			}
		}
	}
}

func TestBSPGenerate_Deterministic(t *testing.T) {
	a, err := level.Marshal(generate(t, 5, 1234))
	if err != nil {
		t.Fatal(err)
	}
	b, err := level.Marshal(generate(t, 5, 1234))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same seed produced different levels")
	}
}

func TestPickWeighted_SkipsZeroWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		if got := pickWeighted(map[string]int{"a": 0, "b": 2}, rng); got != "b" {
			t.Fatalf("pickWeighted = %q, want b", got)
		}
	}
	if got := pickWeighted(nil, rng); got != "open" {
		t.Errorf("pickWeighted(nil) = %q, want open", got)
	}
}
