package ebiten

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"reynard/pkg/engine/world"
	"reynard/pkg/game/actors"
	"reynard/pkg/game/assets"
	"reynard/pkg/game/entities"
	"reynard/pkg/game/rooms"
	"reynard/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g := v.game
	if g == nil || g.Grid == nil {
		return
	}

	// rooms in flight are drawn last so they slide over the others
	var moving []*rooms.Room
	g.Grid.ForEachRoom(func(_ world.Coord, r *rooms.Room) {
		if r.Animating() {
			moving = append(moving, r)
			return
		}
		v.drawRoom(screen, g, r)
	})
	for _, r := range moving {
		v.drawRoom(screen, g, r)
	}

	v.drawSelection(screen, g)
	v.drawActors(screen, g)
	v.drawHUD(screen, g)
	v.drawMessages(screen, g)
}

// screenRect maps a grid-local rectangle through the node transform and
// returns its top-left corner and size on screen.
func screenRect(g *state.Game, lx, ly, w, h float64) (x, y, sw, sh float32) {
	node := g.Grid.Options().Node
	x0, y0 := node.Apply(lx, ly)
	x1, y1 := node.Apply(lx+w, ly+h)
	return float32(min(x0, x1)), float32(min(y0, y1)), float32(abs(x1 - x0)), float32(abs(y1 - y0))
}

// roomOrigin returns the grid-local lower-left corner of a room as drawn,
// following its swap animation.
func roomOrigin(g *state.Game, r *rooms.Room) (float64, float64) {
	opts := g.Grid.Options()
	col, row := r.VisualPos()
	return (col + float64(opts.Origin.Col)) * opts.RoomWidth, (row + float64(opts.Origin.Row)) * opts.RoomHeight
}

func (v *Viewer) drawRoom(screen *ebiten.Image, g *state.Game, r *rooms.Room) {
	opts := g.Grid.Options()
	lx, ly := roomOrigin(g, r)
	x, y, w, h := screenRect(g, lx, ly, opts.RoomWidth, opts.RoomHeight)

	vector.DrawFilledRect(screen, x, y, w, h, backgroundColor(r.Background), false)

	node := opts.Node
	for _, poly := range r.Polygons {
		if len(poly) < 3 {
			continue
		}
		var path vector.Path
		for i, p := range poly {
			sx, sy := node.Apply(lx+p.X, ly+p.Y)
			if i == 0 {
				path.MoveTo(float32(sx), float32(sy))
			} else {
				path.LineTo(float32(sx), float32(sy))
			}
		}
		path.Close()
		drawOpts := &vector.DrawPathOptions{AntiAlias: true}
		drawOpts.ColorScale.ScaleWithColor(colorGeometry)
		vector.FillPath(screen, &path, nil, drawOpts)
	}

	if r.Trap != nil && r.Trap.Type != entities.TrapNone {
		v.drawIcon(screen, r.Trap.GetIcon(), x+w/2, y+h/2, trapColor(g, r))
	}

	if r.Fogged {
		vector.DrawFilledRect(screen, x, y, w, h, colorFog, false)
	}

	vector.StrokeRect(screen, x, y, w, h, borderWidth, colorRoomBorder, false)

	if g.Env.ZoomedOut() && g.Env.LockIconVisible(r.Pos) {
		drawLock(screen, x+w-22, y+8)
	}
}

// backgroundColor picks the room tint for a background texture.
func backgroundColor(t assets.Texture) color.Color {
	if strings.HasSuffix(t.Name, "_cleared") {
		return colorRoomCleared
	}
	if !t.Valid() {
		return roomBackgrounds[0]
	}
	return roomBackgrounds[t.ID%len(roomBackgrounds)]
}

// trapColor shows the state of a trap: cleared checkpoints, spent falling
// blocks and whether the exit is open.
func trapColor(g *state.Game, r *rooms.Room) color.Color {
	switch r.Trap.Type {
	case entities.TrapSpikes:
		return colorSpikes
	case entities.TrapCheckpoint:
		if reg, _ := g.Grid.RegionAt(r.Pos); reg != nil && reg.IsCleared(r.Checkpoint()) {
			return colorCheckpointDone
		}
		return colorCheckpoint
	case entities.TrapFalling:
		if r.Trap.Triggered {
			return colorFallen
		}
		return colorFalling
	case entities.TrapExit:
		if g.Grid.Outstanding() == 0 {
			return colorExitUnlocked
		}
		return colorExitLocked
	default:
		return colorText
	}
}

// drawLock draws a small padlock with its top-left corner at (x, y).
func drawLock(screen *ebiten.Image, x, y float32) {
	vector.StrokeRect(screen, x+3, y, 8, 8, 2, colorLock, true)
	vector.DrawFilledRect(screen, x, y+6, 14, 10, colorLock, true)
}

func (v *Viewer) drawSelection(screen *ebiten.Image, g *state.Game) {
	sel := g.Env.Selection()
	if sel.IsNone() {
		return
	}
	opts := g.Grid.Options()
	lx, ly := g.Grid.RoomToLocal(sel)
	x, y, w, h := screenRect(g, lx, ly, opts.RoomWidth, opts.RoomHeight)
	vector.StrokeRect(screen, x, y, w, h, selectionWidth, colorSelection, false)
}

func (v *Viewer) drawActors(screen *ebiten.Image, g *state.Game) {
	scale := g.Grid.Options().PhysicsScale
	rey := g.Character()

	node := g.Grid.Options().Node
	for _, p := range rey.Trail() {
		sx, sy := node.Apply(p.X*scale, p.Y*scale)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), 2, colorTrail, true)
	}

	for _, e := range g.EnemyModels() {
		if e.IsDead() {
			continue
		}
		v.drawCharacter(screen, g, e.Character, enemyColor(e))
	}
	v.drawCharacter(screen, g, rey, colorReynard)
}

// drawCharacter draws a body as its box with a notch on the side it faces.
func (v *Viewer) drawCharacter(screen *ebiten.Image, g *state.Game, c *actors.Character, clr color.Color) {
	if c.Body == nil {
		return
	}
	scale := g.Grid.Options().PhysicsScale
	hw, hh := c.Body.HalfExtents()
	p := c.Position()
	x, y, w, h := screenRect(g, (p.X-hw)*scale, (p.Y-hh)*scale, 2*hw*scale, 2*hh*scale)
	vector.DrawFilledRect(screen, x, y, w, h, clr, true)

	eye := x + w*0.7
	if c.Facing == actors.Left {
		eye = x + w*0.3
	}
	vector.DrawFilledCircle(screen, eye, y+h*0.25, max(w*0.12, 1.5), colorBackground, true)
}

// enemyColor shows the enemy's behaviour; enemies in fog are greyed out.
func enemyColor(e *actors.Enemy) color.Color {
	if e.Greyed {
		return colorEnemyGreyed
	}
	switch e.Behavior {
	case actors.Realizing:
		return colorEnemyRealizing
	case actors.Chasing:
		return colorEnemyChasing
	case actors.Searching, actors.Returning:
		return colorEnemySearching
	default:
		return colorEnemyPatrol
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
