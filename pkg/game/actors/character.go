// Package actors holds the state of everything that moves: Reynard and the
// enemies. Actors know their physics body but never their controller; the
// Registry maps body owners back to whoever drives them.
package actors

import (
	"reynard/pkg/engine/physics"
)

// MovementState is what a character's body is doing this frame.
type MovementState int

const (
	Stopped MovementState = iota
	Running
	Jumping
	Falling
	OnWall
	Dashing
	Dead
)

var movementNames = [...]string{"Stopped", "Running", "Jumping", "Falling", "OnWall", "Dashing", "Dead"}

func (m MovementState) String() string {
	if m < 0 || int(m) >= len(movementNames) {
		return "Unknown"
	}
	return movementNames[m]
}

// Facing is the horizontal direction a character looks in.
type Facing int

const (
	Left  Facing = -1
	Right Facing = 1
)

// Sign returns the facing as -1 or +1.
func (f Facing) Sign() float64 {
	if f == Left {
		return -1
	}
	return 1
}

// Character is the state shared by every actor.
type Character struct {
	Handle   Handle
	Body     *physics.Body
	Movement MovementState
	Facing   Facing
	// Grounded counts the foot probes that touched ground this frame.
	Grounded int

	trail trail
}

// NewCharacter creates a character facing right that remembers trailLen
// past positions.
func NewCharacter(h Handle, body *physics.Body, trailLen int) *Character {
	return &Character{
		Handle: h,
		Body:   body,
		Facing: Right,
		trail:  newTrail(trailLen),
	}
}

// Owner is the physics tag of the character's body.
func (c *Character) Owner() physics.Owner {
	return physics.Owner(c.Handle)
}

// Position returns the body centre, or the origin when there is no body.
func (c *Character) Position() physics.Vec2 {
	if c.Body == nil {
		return physics.Vec2{}
	}
	return c.Body.Position()
}

// Velocity returns the body velocity, or zero when there is no body.
func (c *Character) Velocity() physics.Vec2 {
	if c.Body == nil {
		return physics.Vec2{}
	}
	return c.Body.Velocity()
}

// IsGrounded reports whether any foot probe touched ground.
func (c *Character) IsGrounded() bool {
	return c.Grounded > 0
}

// IsDead reports whether the character has died.
func (c *Character) IsDead() bool {
	return c.Movement == Dead
}

// Kill is terminal: a dead character stops and never moves again.
func (c *Character) Kill() {
	c.Movement = Dead
	if c.Body != nil {
		c.Body.SetVelocity(physics.Vec2{})
	}
}

// FaceToward turns the character toward a horizontal offset. It flips only
// when the sign of dx disagrees with the current facing, and reports whether
// it flipped.
func (c *Character) FaceToward(dx float64) bool {
	switch {
	case dx < 0 && c.Facing != Left:
		c.Facing = Left
	case dx > 0 && c.Facing != Right:
		c.Facing = Right
	default:
		return false
	}
	return true
}

// Flip reverses the facing.
func (c *Character) Flip() {
	c.Facing = -c.Facing
}

// Record appends the current position to the trail.
func (c *Character) Record() {
	c.trail.push(c.Position())
}

// Trail returns the remembered positions, oldest first.
func (c *Character) Trail() []physics.Vec2 {
	return c.trail.items()
}

// ResetTrail forgets every remembered position.
func (c *Character) ResetTrail() {
	c.trail.clear()
}
