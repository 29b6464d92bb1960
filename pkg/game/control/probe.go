// Package control drives the actors and the environment each frame: the
// player controller, enemy perception and behaviour, and the room swap
// protocol.
package control

import (
	"reynard/pkg/engine/physics"
	"reynard/pkg/game/actors"
)

// Raycaster is the part of the physics world the controllers need. Hits come
// back ordered by distance from the ray start.
type Raycaster interface {
	RayCastAll(from, to physics.Vec2) []physics.RayHit
}

// footReach is how far below the feet a foot probe still finds ground.
const footReach = 0.08

// firstOther returns the closest hit that is not the body of self.
func firstOther(w Raycaster, from, to physics.Vec2, self physics.Owner) (physics.RayHit, bool) {
	if w == nil || from == to {
		return physics.RayHit{}, false
	}
	for _, hit := range w.RayCastAll(from, to) {
		if self != physics.NoOwner && hit.Owner == self {
			continue
		}
		return hit, true
	}
	return physics.RayHit{}, false
}

// groundProbe casts two rays down from the left and right edge of the body
// and returns how many of them reached ground.
func groundProbe(w Raycaster, c *actors.Character) int {
	if c.Body == nil {
		return 0
	}
	hw, hh := c.Body.HalfExtents()
	pos := c.Position()
	n := 0
	for _, dx := range []float64{-hw * 0.9, hw * 0.9} {
		from := physics.V(pos.X+dx, pos.Y)
		to := physics.V(pos.X+dx, pos.Y-hh-footReach)
		if _, ok := firstOther(w, from, to, c.Owner()); ok {
			n++
		}
	}
	return n
}

// sideProbe casts a horizontal ray of length reach beyond the body edge in
// the facing direction.
func sideProbe(w Raycaster, c *actors.Character, reach float64) (physics.RayHit, bool) {
	if c.Body == nil {
		return physics.RayHit{}, false
	}
	hw, _ := c.Body.HalfExtents()
	pos := c.Position()
	to := physics.V(pos.X+c.Facing.Sign()*(hw+reach), pos.Y)
	return firstOther(w, pos, to, c.Owner())
}

// airState picks Jumping or Falling from the vertical velocity.
func airState(c *actors.Character) actors.MovementState {
	if c.Velocity().Y > 0 {
		return actors.Jumping
	}
	return actors.Falling
}
