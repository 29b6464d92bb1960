package control

import (
	"math"

	"github.com/sirupsen/logrus"

	"reynard/pkg/engine/logger"
	"reynard/pkg/engine/physics"
	"reynard/pkg/game/actors"
	"reynard/pkg/game/config"
)

// Perception is what an enemy sensed this frame. It is computed from scratch
// by Perceive and never mutated from a raycast callback.
type Perception struct {
	// Visible is set when the sight ray reached the player before anything else.
	Visible   bool
	Target    actors.Handle
	TargetLoc physics.Vec2
	// InRange is set when the player is closer than the detection radius.
	InRange bool
	// Obstructed is set when the horizontal probe hit something other than
	// the player.
	Obstructed bool
	Probe      physics.RayHit
}

// Sees reports whether the enemy both sees the player and is close enough
// to notice.
func (p Perception) Sees() bool {
	return p.Visible && p.InRange
}

// EnemyController runs perception and the behaviour machine of one enemy.
type EnemyController struct {
	enemy  *actors.Enemy
	world  Raycaster
	player *actors.Character
	tune   config.Enemy

	log    *logrus.Entry
	warned bool
}

// NewEnemyController wires an enemy to the physics world and the player it
// hunts. world and player may be nil; Update then does nothing.
func NewEnemyController(e *actors.Enemy, world Raycaster, player *actors.Character, tune config.Enemy) *EnemyController {
	return &EnemyController{
		enemy:  e,
		world:  world,
		player: player,
		tune:   tune,
		log:    logger.For("enemy").WithField("enemy", e.Handle),
	}
}

// Enemy returns the controlled enemy.
func (c *EnemyController) Enemy() *actors.Enemy {
	return c.enemy
}

// SetWorld replaces the physics world.
func (c *EnemyController) SetWorld(w Raycaster) {
	c.world = w
	c.warned = false
}

// SetPlayer replaces the hunted character.
func (c *EnemyController) SetPlayer(p *actors.Character) {
	c.player = p
	c.warned = false
}

// Perceive casts the sight ray and the horizontal probe.
func (c *EnemyController) Perceive() Perception {
	var p Perception
	if c.world == nil || c.player == nil {
		return p
	}
	e := c.enemy
	from, to := e.Position(), c.player.Position()

	p.InRange = from.Dist2(to) < c.tune.DetectRadius*c.tune.DetectRadius
	if hit, ok := firstOther(c.world, from, to, e.Owner()); ok && hit.Owner == c.player.Owner() {
		p.Visible = true
		p.Target = c.player.Handle
		// where the ray met the player's box, not the body centre
		p.TargetLoc = hit.Point
	}

	reach := c.tune.ProbeLength
	if e.Behavior == actors.Patrolling {
		reach /= 2
	}
	if hit, ok := sideProbe(c.world, e.Character, reach); ok && hit.Owner != c.player.Owner() {
		p.Obstructed = true
		p.Probe = hit
	}
	return p
}

// Update advances the enemy by one frame.
func (c *EnemyController) Update(dt float64) {
	if c.world == nil || c.player == nil {
		if !c.warned {
			c.log.WithFields(logrus.Fields{
				"world":  c.world != nil,
				"player": c.player != nil,
			}).Warn("enemy is missing its world or player, skipping update")
			c.warned = true
		}
		return
	}
	e := c.enemy
	if e.Behavior == actors.BehaviorDead {
		e.Movement = actors.Dead
		return
	}

	e.Grounded = groundProbe(c.world, e.Character)
	if e.IsGrounded() && e.Velocity().Y <= 0 {
		e.Airborne = false
	}

	p := c.Perceive()
	if p.Visible {
		e.Target, e.TargetLoc = p.Target, p.TargetLoc
	} else {
		e.ClearTarget()
	}

	before := e.Behavior
	switch e.Behavior {
	case actors.Patrolling:
		c.patrol(p)
	case actors.Realizing:
		c.realize(p, dt)
	case actors.Chasing:
		c.chase(p)
	case actors.Searching:
		c.search(p, dt)
	case actors.Returning:
		c.stop()
		e.Apply(actors.Returned)
	}
	if e.Behavior != before {
		c.log.WithFields(logrus.Fields{"from": before, "to": e.Behavior}).Debug("behaviour changed")
	}

	if !e.IsGrounded() && !e.IsDead() {
		if p.Obstructed {
			e.Movement = actors.OnWall
		} else {
			e.Movement = airState(e.Character)
		}
	}
	e.Record()
}

// Kill sends the enemy to its terminal state.
func (c *EnemyController) Kill() {
	c.enemy.Kill()
}

func (c *EnemyController) patrol(p Perception) {
	e := c.enemy
	if p.Sees() {
		e.Apply(actors.Spotted)
		c.stop()
		return
	}
	if e.IsGrounded() && p.Obstructed {
		e.Flip()
	}
	c.run(c.tune.PatrolSpeed)
}

// realize accumulates the detection timer while the player stays seen and in
// range. Breaking either condition drops back to patrolling with the timer
// reset.
func (c *EnemyController) realize(p Perception, dt float64) {
	e := c.enemy
	c.stop()
	if !p.Sees() {
		e.Apply(actors.LostSight)
		return
	}
	e.FaceToward(p.TargetLoc.X - e.Position().X)
	e.Timer += dt
	if e.Timer >= c.tune.RealizeTime {
		e.Apply(actors.Realized)
		if e.Body != nil {
			e.Body.Nudge(physics.V(0, c.tune.AlertHop))
		}
		e.Airborne = true
	}
}

func (c *EnemyController) chase(p Perception) {
	e := c.enemy
	if !p.Visible {
		e.Apply(actors.LostSight)
		c.stop()
		return
	}
	wallAbove := e.Movement == actors.OnWall && e.Position().Y > p.TargetLoc.Y
	dx := p.TargetLoc.X - e.Position().X
	e.FaceToward(dx)
	if math.Abs(dx) <= c.tune.AttackRange {
		c.stop()
	} else {
		c.run(c.tune.RunSpeed)
	}

	if !p.Obstructed {
		return
	}
	playerStill := math.Abs(c.player.Velocity().Y) < c.tune.StillSpeed
	if (e.IsGrounded() && !e.Airborne && playerStill) || wallAbove {
		c.jump()
	}
}

// search is a placeholder: the enemy waits in place until it either spots
// the player again or gives up.
func (c *EnemyController) search(p Perception, dt float64) {
	e := c.enemy
	c.stop()
	if p.Sees() {
		e.Apply(actors.Spotted)
		return
	}
	e.Timer += dt
	if e.Timer >= c.tune.SearchTime {
		e.Apply(actors.SearchExpired)
	}
}

func (c *EnemyController) run(speed float64) {
	e := c.enemy
	e.Movement = actors.Running
	if e.Body != nil {
		e.Body.SetVelocity(physics.V(e.Facing.Sign()*speed, e.Velocity().Y))
	}
}

func (c *EnemyController) stop() {
	e := c.enemy
	e.Movement = actors.Stopped
	if e.Body != nil {
		e.Body.SetVelocity(physics.V(0, e.Velocity().Y))
	}
}

func (c *EnemyController) jump() {
	e := c.enemy
	if e.Body != nil {
		e.Body.SetVelocity(physics.V(e.Velocity().X, c.tune.JumpSpeed))
	}
	e.Airborne = true
	e.Movement = actors.Jumping
}
