package physics

import (
	"sort"

	"github.com/ByteArena/box2d"
)

// Box2D iteration counts used for every step.
const (
	velocityIterations = 8
	positionIterations = 3

	// maxPolygonVertices mirrors b2_maxPolygonVertices.
	maxPolygonVertices = 8

	// minSolidArea is the smallest polygon that is built as a solid shape.
	minSolidArea = 1e-4
)

// Owner tags a body with whoever controls it. NoOwner marks level geometry.
type Owner uint32

const NoOwner Owner = 0

// Raycast callback return values, with Box2D semantics.
const (
	RayIgnore    = -1.0 // skip this fixture and keep scanning
	RayTerminate = 0.0  // stop the cast
	RayNoClip    = 1.0  // keep scanning without shortening the ray
)

// RayCastFunc receives one fixture hit. Return RayIgnore, RayTerminate,
// RayNoClip, or a fraction to clip the ray at that point.
type RayCastFunc func(hit RayHit) float64

// RayHit is one fixture intersected by a ray.
type RayHit struct {
	Owner    Owner
	Point    Vec2
	Normal   Vec2
	Fraction float64
	Sensor   bool
}

// Obstacle is a static piece of level geometry.
type Obstacle struct {
	body *box2d.B2Body
}

// World is the physics simulation shared by all actors and the grid.
type World struct {
	world     box2d.B2World
	obstacles map[*Obstacle]struct{}
	bodies    map[*Body]struct{}
}

// NewWorld creates an empty world with the given gravity.
func NewWorld(gravity Vec2) *World {
	w := &World{
		obstacles: make(map[*Obstacle]struct{}),
		bodies:    make(map[*Body]struct{}),
	}
	w.world = box2d.MakeB2World(gravity.b2())
	return w
}

// ObstacleCount returns the number of live static obstacles.
func (w *World) ObstacleCount() int {
	return len(w.obstacles)
}

// BodyCount returns the number of live actor bodies.
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// AddPolygon adds a closed static polygon. Small convex polygons become solid
// shapes; anything else is built as an edge loop.
func (w *World) AddPolygon(poly []Vec2) *Obstacle {
	if len(poly) < 2 {
		return nil
	}
	body := w.staticBody()
	if len(poly) <= maxPolygonVertices && IsConvex(poly) && Area(poly) > minSolidArea {
		verts := make([]box2d.B2Vec2, len(poly))
		for i, p := range poly {
			verts[i] = p.b2()
		}
		shape := box2d.MakeB2PolygonShape()
		shape.Set(verts, len(verts))
		body.CreateFixture(&shape, 0)
	} else if len(poly) == 2 {
		addEdge(body, poly[0], poly[1])
	} else {
		for i := range poly {
			addEdge(body, poly[i], poly[(i+1)%len(poly)])
		}
	}
	return w.track(body)
}

// AddEdge adds a single static segment.
func (w *World) AddEdge(a, b Vec2) *Obstacle {
	body := w.staticBody()
	addEdge(body, a, b)
	return w.track(body)
}

// Remove destroys a static obstacle. Removing nil or an already removed
// obstacle does nothing.
func (w *World) Remove(o *Obstacle) {
	if o == nil {
		return
	}
	if _, ok := w.obstacles[o]; !ok {
		return
	}
	delete(w.obstacles, o)
	w.world.DestroyBody(o.body)
	o.body = nil
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.world.Step(dt, velocityIterations, positionIterations)
}

// RayCast reports every fixture crossing the segment from -> to, in the order
// Box2D finds them, letting fn clip or stop the cast.
func (w *World) RayCast(from, to Vec2, fn RayCastFunc) {
	if from.Dist2(to) == 0 {
		return
	}
	w.world.RayCast(func(fixture *box2d.B2Fixture, point, normal box2d.B2Vec2, fraction float64) float64 {
		return fn(RayHit{
			Owner:    ownerOf(fixture.GetBody()),
			Point:    fromB2(point),
			Normal:   fromB2(normal),
			Fraction: fraction,
			Sensor:   fixture.IsSensor(),
		})
	}, from.b2(), to.b2())
}

// RayCastAll returns every hit along the segment ordered by distance from the
// start of the ray.
func (w *World) RayCastAll(from, to Vec2) []RayHit {
	var hits []RayHit
	w.RayCast(from, to, func(hit RayHit) float64 {
		if hit.Sensor {
			return RayIgnore
		}
		hits = append(hits, hit)
		return RayNoClip
	})
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Fraction < hits[j].Fraction
	})
	return hits
}

// FirstHit returns the closest hit not rejected by skip. skip may be nil.
func (w *World) FirstHit(from, to Vec2, skip func(RayHit) bool) (RayHit, bool) {
	for _, hit := range w.RayCastAll(from, to) {
		if skip != nil && skip(hit) {
			continue
		}
		return hit, true
	}
	return RayHit{}, false
}

func (w *World) staticBody() *box2d.B2Body {
	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_staticBody
	return w.world.CreateBody(&def)
}

func (w *World) track(body *box2d.B2Body) *Obstacle {
	o := &Obstacle{body: body}
	w.obstacles[o] = struct{}{}
	return o
}

func addEdge(body *box2d.B2Body, a, b Vec2) {
	if a.Dist2(b) == 0 {
		return
	}
	edge := box2d.MakeB2EdgeShape()
	edge.Set(a.b2(), b.b2())
	body.CreateFixture(&edge, 0)
}

func ownerOf(body *box2d.B2Body) Owner {
	if body == nil {
		return NoOwner
	}
	if o, ok := body.GetUserData().(Owner); ok {
		return o
	}
	return NoOwner
}
