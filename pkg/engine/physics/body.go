package physics

import (
	"github.com/ByteArena/box2d"
)

// Body is a dynamic axis-aligned box that does not rotate. Characters use it.
type Body struct {
	body  *box2d.B2Body
	owner Owner
	halfW float64
	halfH float64
}

// AddBox creates a dynamic box centred at center and tags it with owner.
func (w *World) AddBox(center Vec2, halfW, halfH float64, owner Owner) *Body {
	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_dynamicBody
	def.Position = center.b2()
	def.FixedRotation = true
	body := w.world.CreateBody(&def)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(halfW, halfH)
	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Density = 1
	fd.Friction = 0
	body.CreateFixtureFromDef(&fd)
	body.SetUserData(owner)

	b := &Body{body: body, owner: owner, halfW: halfW, halfH: halfH}
	w.bodies[b] = struct{}{}
	return b
}

// RemoveBody destroys an actor body.
func (w *World) RemoveBody(b *Body) {
	if b == nil {
		return
	}
	if _, ok := w.bodies[b]; !ok {
		return
	}
	delete(w.bodies, b)
	w.world.DestroyBody(b.body)
	b.body = nil
}

// Owner returns the tag given at creation.
func (b *Body) Owner() Owner {
	return b.owner
}

// HalfExtents returns the half width and half height of the box.
func (b *Body) HalfExtents() (float64, float64) {
	return b.halfW, b.halfH
}

// Position returns the centre of the box.
func (b *Body) Position() Vec2 {
	if b.body == nil {
		return Vec2{}
	}
	return fromB2(b.body.GetPosition())
}

// SetPosition teleports the box, keeping its velocity.
func (b *Body) SetPosition(p Vec2) {
	if b.body == nil {
		return
	}
	b.body.SetTransform(p.b2(), 0)
}

func (b *Body) Velocity() Vec2 {
	if b.body == nil {
		return Vec2{}
	}
	return fromB2(b.body.GetLinearVelocity())
}

func (b *Body) SetVelocity(v Vec2) {
	if b.body == nil {
		return
	}
	b.body.SetLinearVelocity(v.b2())
}

// Nudge adds dv directly to the velocity, the way a mass-normalised impulse would.
func (b *Body) Nudge(dv Vec2) {
	b.SetVelocity(b.Velocity().Add(dv))
}
