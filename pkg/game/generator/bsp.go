package generator

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"reynard/pkg/engine/logger"
	"reynard/pkg/engine/world"
	"reynard/pkg/game/campaign"
	"reynard/pkg/game/level"
)

// BSPGenerator generates levels using Binary Space Partitioning. The grid is
// split into regions, and every region is split again into sublevels.
type BSPGenerator struct {
	// RoomWidth and RoomHeight size the built-in room geometry, in pixels.
	RoomWidth, RoomHeight float64
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
}

func (n *bspNode) rect() world.Rect {
	return world.R(n.x, n.y, n.width, n.height)
}

// sublevelMinSize is the smallest side a sublevel split may produce.
const sublevelMinSize = 2

// Generate creates a level file for the given campaign depth. The same rng
// seed always yields the same file.
func (g *BSPGenerator) Generate(depth int, rng *rand.Rand) *level.File {
	d := campaign.DifficultyFor(depth)
	theme := campaign.ThemeFor(depth)
	cols, rows := d.Cols, d.Rows

	// types is indexed [row][col], rows counted from the bottom.
	types := make([][]string, rows)
	for r := range types {
		types[r] = make([]string, cols)
	}

	palette := campaign.Palette(theme)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Float64() < d.SpikeChance {
				types[r][c] = "spikes"
				continue
			}
			types[r][c] = pickWeighted(palette, rng)
		}
	}

	player := world.C(0, 0)
	exit := world.C(cols-1, rows-1)
	types[player.Row][player.Col] = "open"
	types[exit.Row][exit.Col] = "exit"
	reserved := map[world.Coord]bool{player: true, exit: true}

	// Reynard never starts next to spikes
	for _, d := range world.AllDirections() {
		n := player.Step(d)
		if n.InBounds(cols, rows) && types[n.Row][n.Col] == "spikes" {
			types[n.Row][n.Col] = pickWeighted(palette, rng)
		}
	}

	root := &bspNode{x: 0, y: 0, width: cols, height: rows}
	splitBSP(root, d.RegionMin, rng)

	f := &level.File{
		Name:      fmt.Sprintf("%s %d", campaign.ThemeKey(theme), depth),
		RoomTypes: RoomTypes(g.RoomWidth, g.RoomHeight),
		Fog:       true,
		Player:    [2]int{player.Col, player.Row},
		Locked:    [][2]int{{exit.Col, exit.Row}},
	}

	nextCheckpoint := 1
	for i, leaf := range collectLeaves(root) {
		region := level.Region{
			Number: i + 1,
			Origin: [2]int{leaf.x, leaf.y},
			Size:   [2]int{leaf.width, leaf.height},
		}
		sub := &bspNode{width: leaf.width, height: leaf.height}
		splitBSP(sub, sublevelMinSize, rng)
		for _, s := range collectLeaves(sub) {
			region.Sublevels = append(region.Sublevels, [4]int{s.x, s.y, s.width, s.height})

			c, ok := pickCell(s.rect().Offset(world.C(leaf.x, leaf.y)), reserved, rng)
			if !ok {
				continue
			}
			reserved[c] = true
			types[c.Row][c.Col] = "open"
			region.Checkpoints = append(region.Checkpoints, level.Checkpoint{
				ID: nextCheckpoint,
				X:  c.Col - leaf.x,
				Y:  c.Row - leaf.y,
			})
			nextCheckpoint++
		}
		f.Regions = append(f.Regions, region)
	}

	// enemies never spawn on spikes
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if types[r][c] == "spikes" {
				reserved[world.C(c, r)] = true
			}
		}
	}
	for n := 0; n < d.Enemies; n++ {
		c, ok := pickCell(root.rect(), reserved, rng)
		if !ok {
			break
		}
		reserved[c] = true
		f.Enemies = append(f.Enemies, [2]int{c.Col, c.Row})
	}

	// level files list the top row first
	for r := rows - 1; r >= 0; r-- {
		f.Grid = append(f.Grid, types[r])
	}

	logger.For("generator").WithFields(logrus.Fields{
		"depth":       depth,
		"size":        fmt.Sprintf("%dx%d", cols, rows),
		"regions":     len(f.Regions),
		"checkpoints": nextCheckpoint - 1,
	}).Debug("level generated")
	return f
}

// splitBSP recursively splits a BSP node
func splitBSP(node *bspNode, minSize int, rng *rand.Rand) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	// Decide split direction
	var splitHorizontal bool
	if node.width > node.height && node.width >= minSize*2 {
		splitHorizontal = false // Split vertically
	} else if node.height > node.width && node.height >= minSize*2 {
		splitHorizontal = true // Split horizontally
	} else if node.width >= minSize*2 && node.height >= minSize*2 {
		splitHorizontal = rng.Intn(2) == 0
	} else if node.width >= minSize*2 {
		splitHorizontal = false
	} else {
		splitHorizontal = true
	}

	if splitHorizontal {
		// Split horizontally (bottom and top)
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{
			x:      node.x,
			y:      node.y,
			width:  node.width,
			height: splitPoint,
		}
		node.right = &bspNode{
			x:      node.x,
			y:      node.y + splitPoint,
			width:  node.width,
			height: node.height - splitPoint,
		}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{
			x:      node.x,
			y:      node.y,
			width:  splitPoint,
			height: node.height,
		}
		node.right = &bspNode{
			x:      node.x + splitPoint,
			y:      node.y,
			width:  node.width - splitPoint,
			height: node.height,
		}
	}

	// Recursively split children
	splitBSP(node.left, minSize, rng)
	splitBSP(node.right, minSize, rng)
}

// collectLeaves collects all leaves of the BSP tree, left subtree first
func collectLeaves(node *bspNode) []*bspNode {
	if node.left == nil && node.right == nil {
		return []*bspNode{node}
	}
	var leaves []*bspNode
	if node.left != nil {
		leaves = append(leaves, collectLeaves(node.left)...)
	}
	if node.right != nil {
		leaves = append(leaves, collectLeaves(node.right)...)
	}
	return leaves
}

// pickCell picks a random cell of r that is not reserved.
func pickCell(r world.Rect, reserved map[world.Coord]bool, rng *rand.Rand) (world.Coord, bool) {
	var free []world.Coord
	r.ForEach(func(c world.Coord) {
		if !reserved[c] {
			free = append(free, c)
		}
	})
	if len(free) == 0 {
		return world.NoCoord, false
	}
	return free[rng.Intn(len(free))], true
}

// pickWeighted draws a key from weights. Keys are visited in sorted order so
// a seeded rng always gives the same answer.
func pickWeighted(weights map[string]int, rng *rand.Rand) string {
	keys := make([]string, 0, len(weights))
	total := 0
	for k, w := range weights {
		keys = append(keys, k)
		total += w
	}
	sort.Strings(keys)
	if total <= 0 {
		return "open"
	}
	n := rng.Intn(total)
	for _, k := range keys {
		n -= weights[k]
		if n < 0 {
			return k
		}
	}
	return keys[len(keys)-1]
}
