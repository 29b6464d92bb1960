package control

import (
	"math"

	"github.com/sirupsen/logrus"

	"reynard/pkg/engine/input"
	"reynard/pkg/engine/logger"
	"reynard/pkg/engine/physics"
	"reynard/pkg/game/actors"
	"reynard/pkg/game/config"
)

// wallReach is how far beyond the body a side probe finds a wall to slide on.
const wallReach = 0.05

// ReynardController turns player input into movement.
type ReynardController struct {
	ch    *actors.Character
	world Raycaster
	tune  config.Reynard

	dashLeft float64
	// dashSpent is set by a dash and cleared on landing.
	dashSpent bool
	jumpHeld  bool

	log *logrus.Entry
}

// NewReynardController wires the player character to the physics world.
func NewReynardController(c *actors.Character, world Raycaster, tune config.Reynard) *ReynardController {
	return &ReynardController{
		ch:    c,
		world: world,
		tune:  tune,
		log:   logger.For("reynard"),
	}
}

// Character returns the controlled character.
func (r *ReynardController) Character() *actors.Character {
	return r.ch
}

// Update applies one frame of input.
func (r *ReynardController) Update(dt float64, in input.Frame) {
	c := r.ch
	if c.IsDead() || c.Body == nil {
		return
	}
	if r.world == nil {
		r.log.Warn("reynard has no physics world, skipping update")
		return
	}

	c.Grounded = groundProbe(r.world, c)
	if c.IsGrounded() {
		r.dashSpent = false
	}

	axis := in.Axis()
	if axis != 0 {
		c.FaceToward(axis)
	}
	v := c.Velocity()

	jump := in.IsDown(input.ActionJump)
	jumpPressed := jump && !r.jumpHeld
	r.jumpHeld = jump

	switch {
	case r.dashLeft > 0:
		r.dashLeft -= dt
		v = physics.V(c.Facing.Sign()*r.tune.DashSpeed, 0)
		c.Movement = actors.Dashing

	case in.IsDown(input.ActionDash) && !r.dashSpent:
		r.dashLeft = r.tune.DashSeconds
		r.dashSpent = true
		v = physics.V(c.Facing.Sign()*r.tune.DashSpeed, 0)
		c.Movement = actors.Dashing
		r.log.WithField("facing", c.Facing).Debug("dash")

	default:
		v.X = axis * r.tune.RunSpeed
		_, onWall := sideProbe(r.world, c, wallReach)
		onWall = onWall && !c.IsGrounded() && axis == c.Facing.Sign()

		switch {
		case jumpPressed && c.IsGrounded():
			v.Y = r.tune.JumpSpeed
			c.Movement = actors.Jumping
		case jumpPressed && onWall:
			// kick off the wall
			c.Flip()
			v = physics.V(c.Facing.Sign()*r.tune.RunSpeed, r.tune.JumpSpeed)
			c.Movement = actors.Jumping
		case onWall:
			v.Y = math.Max(v.Y, -r.tune.WallSlide)
			c.Movement = actors.OnWall
		case !c.IsGrounded():
			c.Movement = airState(c)
		case axis != 0:
			c.Movement = actors.Running
		default:
			c.Movement = actors.Stopped
		}
	}

	c.Body.SetVelocity(v)
	c.Record()
}

// Respawn moves Reynard to p alive and at rest.
func (r *ReynardController) Respawn(p physics.Vec2) {
	c := r.ch
	c.Movement = actors.Stopped
	c.Grounded = 0
	r.dashLeft, r.dashSpent, r.jumpHeld = 0, false, false
	if c.Body != nil {
		c.Body.SetPosition(p)
		c.Body.SetVelocity(physics.Vec2{})
	}
	c.ResetTrail()
}
