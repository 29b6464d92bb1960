// Package entities defines the objects that can sit inside a room.
package entities

import "strings"

// TrapType represents the kinds of trap a room can hold
type TrapType int

const (
	TrapNone       TrapType = iota
	TrapSpikes              // Kills any character standing in the room
	TrapCheckpoint          // Clears its sublevel and becomes the respawn point
	TrapFalling             // Drops once when Reynard first enters
	TrapExit                // Ends the level
)

// TrapInfo contains display and rule information for each trap type
type TrapInfo struct {
	Name   string
	Key    string // lookup key used by level files
	Icon   string
	Lethal bool // kills characters in the room
	Pinned bool // room can never be swapped while it holds this trap
}

// TrapTypes maps trap types to their information
var TrapTypes = map[TrapType]TrapInfo{
	TrapNone:       {Name: "None", Key: "", Icon: "."},
	TrapSpikes:     {Name: "Spikes", Key: "spikes", Icon: "^", Lethal: true},
	TrapCheckpoint: {Name: "Checkpoint", Key: "checkpoint", Icon: "C", Pinned: true},
	TrapFalling:    {Name: "Falling Block", Key: "falling", Icon: "v"},
	TrapExit:       {Name: "Exit", Key: "exit", Icon: "E"},
}

// ParseTrapType resolves a level-file key. Unknown keys map to TrapNone.
func ParseTrapType(key string) TrapType {
	key = strings.ToLower(strings.TrimSpace(key))
	for t, info := range TrapTypes {
		if t != TrapNone && info.Key == key {
			return t
		}
	}
	return TrapNone
}

func (t TrapType) String() string {
	if info, ok := TrapTypes[t]; ok {
		return info.Name
	}
	return "Unknown"
}

// Trap is one trap instance inside a room
type Trap struct {
	Type      TrapType
	Triggered bool
	// Checkpoint is the checkpoint ID for TrapCheckpoint traps.
	Checkpoint int
}

// NewTrap creates an untriggered trap of the given type
func NewTrap(t TrapType) *Trap {
	return &Trap{Type: t}
}

// NewCheckpoint creates a checkpoint trap linked to id
func NewCheckpoint(id int) *Trap {
	return &Trap{Type: TrapCheckpoint, Checkpoint: id}
}

// IsCheckpoint returns true if this trap is a checkpoint
func (t *Trap) IsCheckpoint() bool {
	return t != nil && t.Type == TrapCheckpoint
}

// IsLethal returns true if this trap kills characters in its room
func (t *Trap) IsLethal() bool {
	return t != nil && TrapTypes[t.Type].Lethal
}

// IsPinned returns true if the trap keeps its room from being swapped
func (t *Trap) IsPinned() bool {
	return t != nil && TrapTypes[t.Type].Pinned
}

// Trigger marks the trap as sprung. Returns false if it had already fired.
// Falling blocks stay down: there is no reset yet.
func (t *Trap) Trigger() bool {
	if t == nil || t.Triggered {
		return false
	}
	t.Triggered = true
	return true
}

// GetIcon returns the dump icon for this trap
func (t *Trap) GetIcon() string {
	if t == nil {
		return TrapTypes[TrapNone].Icon
	}
	return TrapTypes[t.Type].Icon
}
