package actors

import (
	"reynard/pkg/engine/physics"
)

// BehaviorState is the enemy's high-level intent.
type BehaviorState int

const (
	Patrolling BehaviorState = iota
	Realizing
	Chasing
	Searching
	Returning
	BehaviorDead
)

var behaviorNames = [...]string{"Patrolling", "Realizing", "Chasing", "Searching", "Returning", "Dead"}

func (b BehaviorState) String() string {
	if b < 0 || int(b) >= len(behaviorNames) {
		return "Unknown"
	}
	return behaviorNames[b]
}

// Event is something perception or a timer tells the behaviour machine.
type Event int

const (
	Spotted       Event = iota // target seen and within detection range
	LostSight                  // target no longer seen or out of range
	Realized                   // detection timer ran out
	SearchExpired              // search timer ran out
	Returned                   // back on the patrol route
	Killed
)

var eventNames = [...]string{"Spotted", "LostSight", "Realized", "SearchExpired", "Returned", "Killed"}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "Unknown"
	}
	return eventNames[e]
}

// transitions lists every state change; pairs not listed leave the state as is.
var transitions = map[BehaviorState]map[Event]BehaviorState{
	Patrolling: {Spotted: Realizing},
	Realizing:  {LostSight: Patrolling, Realized: Chasing},
	Chasing:    {LostSight: Searching},
	Searching:  {Spotted: Chasing, SearchExpired: Returning},
	Returning:  {Returned: Patrolling},
}

// NextBehavior is the behaviour transition function. Killed leads to
// BehaviorDead from anywhere and BehaviorDead never changes.
func NextBehavior(s BehaviorState, e Event) BehaviorState {
	if s == BehaviorDead || e == Killed {
		return BehaviorDead
	}
	if next, ok := transitions[s][e]; ok {
		return next
	}
	return s
}

// Enemy is a hostile character.
type Enemy struct {
	*Character

	Behavior BehaviorState
	// Timer accumulates time in Realizing and Searching. It resets on every
	// behaviour change.
	Timer float64

	// Target is the handle of the seen character, or NoHandle.
	Target    Handle
	TargetLoc physics.Vec2

	// Airborne is set by a jump and cleared on landing.
	Airborne bool
	// Greyed is set while the enemy's room is fogged.
	Greyed bool

	Spawn physics.Vec2
}

// NewEnemy wraps a character as a patrolling enemy.
func NewEnemy(c *Character) *Enemy {
	return &Enemy{Character: c, Behavior: Patrolling, Target: NoHandle, Spawn: c.Position()}
}

// Apply feeds e to the behaviour machine. It reports whether the state
// changed; on change the timer restarts.
func (e *Enemy) Apply(ev Event) bool {
	next := NextBehavior(e.Behavior, ev)
	if next == e.Behavior {
		return false
	}
	e.Behavior = next
	e.Timer = 0
	if next == BehaviorDead {
		e.Character.Kill()
	}
	return true
}

// Kill moves the enemy to BehaviorDead from any state.
func (e *Enemy) Kill() {
	e.Apply(Killed)
}

// HasTarget reports whether a target was seen this frame.
func (e *Enemy) HasTarget() bool {
	return e.Target != NoHandle
}

// ClearTarget forgets the target for this frame.
func (e *Enemy) ClearTarget() {
	e.Target = NoHandle
	e.TargetLoc = physics.Vec2{}
}
