// Package rooms defines a single grid room: its identity, static content
// and the swap animation it plays when the grid moves it.
package rooms

import (
	"reynard/pkg/engine/physics"
	"reynard/pkg/engine/world"
	"reynard/pkg/game/assets"
	"reynard/pkg/game/entities"
)

// ID identifies a room for its whole life, independent of where it sits.
type ID int

// Room is one cell's worth of level content.
type Room struct {
	id   ID
	Type string

	// Pos is the cell the room currently occupies.
	Pos world.Coord

	PermLocked bool
	Fogged     bool
	Trap       *entities.Trap
	Background assets.Texture

	// Polygons are the static geometry in room-local pixels, origin at the
	// lower-left corner.
	Polygons [][]physics.Vec2

	anim swapAnim
}

// New creates a room of the given type at pos.
func New(id ID, roomType string, pos world.Coord, polygons [][]physics.Vec2) *Room {
	return &Room{
		id:       id,
		Type:     roomType,
		Pos:      pos,
		Polygons: polygons,
	}
}

// ID returns the room's stable identity.
func (r *Room) ID() ID {
	return r.id
}

// Checkpoint returns the checkpoint ID held by the room, or 0.
func (r *Room) Checkpoint() int {
	if r == nil || !r.Trap.IsCheckpoint() {
		return 0
	}
	return r.Trap.Checkpoint
}

// HasCheckpoint reports whether the room holds a checkpoint trap.
func (r *Room) HasCheckpoint() bool {
	return r != nil && r.Trap.IsCheckpoint()
}

// Locked reports whether the room can never be moved.
func (r *Room) Locked() bool {
	return r != nil && r.PermLocked
}
