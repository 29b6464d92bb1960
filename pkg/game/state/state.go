// Package state holds one running level: the grid, the physics world, the
// actors and their controllers, and the ordered frame update tying them
// together.
package state

import (
	"math"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"reynard/pkg/engine/input"
	"reynard/pkg/engine/logger"
	"reynard/pkg/engine/physics"
	"reynard/pkg/engine/world"
	"reynard/pkg/game/actors"
	"reynard/pkg/game/assets"
	"reynard/pkg/game/config"
	"reynard/pkg/game/control"
	"reynard/pkg/game/entities"
	"reynard/pkg/game/grid"
	"reynard/pkg/game/level"
	"reynard/pkg/game/rooms"
)

const maxMessages = 5

// Game represents the state of one level being played
type Game struct {
	Level int // campaign level number
	Seed  int64
	Name  string

	Tuning config.Tuning
	Grid   *grid.Grid
	World  *physics.World
	Env    *control.EnvController

	// Actors maps body owner tags back to characters.
	Actors  actors.Registry[*actors.Character]
	Reynard *control.ReynardController
	Enemies []*control.EnemyController

	// RespawnPoint is where Reynard returns after dying: the spawn room at
	// first, then the last checkpoint room he cleared.
	RespawnPoint physics.Vec2
	Deaths       int
	Elapsed      float64

	LastSwap control.SwapResult
	// Complete is set once Reynard reaches an open exit. GameComplete is set
	// when that was the last level of the campaign.
	Complete     bool
	GameComplete bool

	Messages []string

	// File is the level description the grid was built from, kept with the
	// catalog so the level can be rebuilt on reset.
	File    *level.File
	Catalog *assets.Catalog

	log *logrus.Entry
}

// NewGame wires a built level into a playable session: a physics world with
// the grid geometry, Reynard and every enemy standing in their spawn rooms.
func NewGame(lvl *level.Level, tune config.Tuning) *Game {
	w := physics.NewWorld(physics.V(0, tune.Physics.GravityY))
	lvl.Grid.AttachWorld(w)

	g := &Game{
		Name:     lvl.Name,
		Tuning:   tune,
		Grid:     lvl.Grid,
		World:    w,
		Env:      control.NewEnvController(lvl.Grid),
		Messages: make([]string, 0),
		log:      logger.For("game").WithField("level", lvl.Name),
	}

	g.RespawnPoint = g.spawnPoint(lvl.Player, tune.Reynard.HalfHeight)
	rt := tune.Reynard
	rey := g.spawn(g.RespawnPoint, rt.Character)
	g.Reynard = control.NewReynardController(rey, w, rt)

	et := tune.Enemy
	for _, c := range lvl.Enemies {
		e := actors.NewEnemy(g.spawn(g.spawnPoint(c, et.HalfHeight), et.Character))
		g.Enemies = append(g.Enemies, control.NewEnemyController(e, w, rey, et))
	}

	g.log.WithFields(logrus.Fields{
		"enemies":   len(g.Enemies),
		"obstacles": w.ObstacleCount(),
	}).Info("level started")
	return g
}

// spawn registers a character and gives it a body tagged with its handle.
func (g *Game) spawn(at physics.Vec2, t config.Character) *actors.Character {
	c := actors.NewCharacter(actors.NoHandle, nil, t.TrailLength)
	c.Handle = g.Actors.Add(c)
	c.Body = g.World.AddBox(at, t.HalfWidth, t.HalfHeight, c.Owner())
	return c
}

// Lookup resolves a body owner tag, as reported by a raycast hit.
func (g *Game) Lookup(o physics.Owner) (*actors.Character, bool) {
	return g.Actors.Get(actors.HandleOf(o))
}

// spawnPoint is the middle of a room, low enough to land on its floor.
func (g *Game) spawnPoint(c world.Coord, halfH float64) physics.Vec2 {
	p := g.Grid.RoomCenterWorld(c)
	return physics.V(p.X, p.Y+halfH)
}

// Character returns Reynard.
func (g *Game) Character() *actors.Character {
	return g.Reynard.Character()
}

// EnemyModels returns the enemies in spawn order.
func (g *Game) EnemyModels() []*actors.Enemy {
	out := make([]*actors.Enemy, len(g.Enemies))
	for i, c := range g.Enemies {
		out[i] = c.Enemy()
	}
	return out
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Update advances the level by one frame. The order is fixed so every
// raycast of a frame sees the same world:
//
//  1. room selection and zoom
//  2. swaps and undo, then the environment bookkeeping, which rebuilds the
//     obstacles of swapped cells once their rooms stop sliding
//  3. Reynard, then every enemy
//  4. the physics step
//  5. traps, checkpoints and enemy contact
func (g *Game) Update(dt float64, in input.Frame) {
	if g.Complete {
		return
	}
	g.Elapsed += dt
	rey := g.Character()
	enemies := g.EnemyModels()

	for _, it := range in.Pressed {
		switch it.Action {
		case input.ActionSelectRoom:
			g.Env.SelectRoom(it.X, it.Y, rey, enemies)
		case input.ActionToggleZoom:
			g.Env.SetZoomedOut(!g.Env.ZoomedOut())
		}
	}

	for _, it := range in.Pressed {
		switch it.Action {
		case input.ActionSwapRoom:
			g.LastSwap = g.Env.SwapWithSelected(it.X, it.Y, rey, enemies)
			if g.LastSwap == control.Rejected {
				g.AddMessage(gotext.Get("SWAP_REJECTED"))
			}
		case input.ActionUndoSwap:
			if !g.Env.UndoLastSwap(rey, enemies) {
				g.AddMessage(gotext.Get("UNDO_REJECTED"))
			}
		}
	}
	g.Env.Update(dt, rey, enemies)

	g.Reynard.Update(dt, in)
	for _, c := range g.Enemies {
		c.Update(dt)
	}

	g.World.Step(dt)

	g.resolve()
}

// resolve applies the effect of the room each actor ended the frame in.
func (g *Game) resolve() {
	rey := g.Character()

	for _, c := range g.Enemies {
		e := c.Enemy()
		if e.IsDead() {
			continue
		}
		if r := g.roomAt(e.Character); r != nil && r.Trap.IsLethal() {
			g.killEnemy(c)
		}
	}

	cell, ok := g.Grid.WorldToRoom(rey.Position())
	if !ok {
		g.killReynard("out of bounds")
		return
	}
	r := g.Grid.Room(cell)
	if r != nil && r.Trap != nil {
		switch {
		case r.Trap.IsCheckpoint():
			if g.Grid.ClearCheckpoint(r.Trap.Checkpoint) {
				g.RespawnPoint = g.spawnPoint(cell, g.Tuning.Reynard.HalfHeight)
				g.AddMessage(gotext.Get("CHECKPOINT_CLEARED", g.Grid.Outstanding()))
			}
		case r.Trap.IsLethal():
			g.killReynard("spikes")
			return
		case r.Trap.Type == entities.TrapExit:
			if n := g.Grid.Outstanding(); n > 0 {
				if r.Trap.Trigger() {
					g.AddMessage(gotext.Get("EXIT_LOCKED", n))
				}
			} else {
				g.Complete = true
				g.AddMessage(gotext.Get("LEVEL_COMPLETE"))
				g.log.WithFields(logrus.Fields{"deaths": g.Deaths, "seconds": g.Elapsed}).Info("level complete")
			}
		case r.Trap.Type == entities.TrapFalling:
			// the block drops once and stays down
			if r.Trap.Trigger() {
				g.AddMessage(gotext.Get("FALLING_BLOCK"))
			}
		}
	}
	if r == nil || r.Trap == nil || r.Trap.Type != entities.TrapExit {
		g.rearmExits()
	}

	for _, c := range g.Enemies {
		if e := c.Enemy(); !e.IsDead() && overlaps(rey, e.Character) {
			g.killReynard("caught")
			return
		}
	}
}

func (g *Game) roomAt(c *actors.Character) *rooms.Room {
	cell, ok := g.Grid.WorldToRoom(c.Position())
	if !ok {
		return nil
	}
	return g.Grid.Room(cell)
}

// rearmExits lets a locked exit report itself again on the next visit.
func (g *Game) rearmExits() {
	g.Grid.ForEachRoom(func(_ world.Coord, r *rooms.Room) {
		if r.Trap != nil && r.Trap.Type == entities.TrapExit {
			r.Trap.Triggered = false
		}
	})
}

// killReynard counts the death and puts Reynard back at the respawn point.
func (g *Game) killReynard(cause string) {
	g.Deaths++
	g.log.WithFields(logrus.Fields{"cause": cause, "deaths": g.Deaths}).Info("reynard died")
	g.Reynard.Respawn(g.RespawnPoint)
	g.AddMessage(gotext.Get("REYNARD_DIED"))
}

// killEnemy kills the enemy and takes its body out of the world so it no
// longer blocks rays.
func (g *Game) killEnemy(c *control.EnemyController) {
	e := c.Enemy()
	c.Kill()
	g.World.RemoveBody(e.Body)
	e.Body = nil
	g.Actors.Remove(e.Handle)
	g.log.WithField("enemy", e.Handle).Debug("enemy died")
}

// overlaps tests the two bodies' boxes.
func overlaps(a, b *actors.Character) bool {
	if a.Body == nil || b.Body == nil {
		return false
	}
	aw, ah := a.Body.HalfExtents()
	bw, bh := b.Body.HalfExtents()
	d := a.Position().Sub(b.Position())
	return math.Abs(d.X) < aw+bw && math.Abs(d.Y) < ah+bh
}
