// Package physics wraps a Box2D world with the small surface the game needs:
// static obstacles, actor boxes, owner tagging and raycasts that return values.
package physics

import (
	"math"

	"github.com/ByteArena/box2d"
)

// Vec2 is a point or direction in physics units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len2 returns the squared length.
func (v Vec2) Len2() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.Len2())
}

// Dist2 returns the squared distance between v and o.
func (v Vec2) Dist2(o Vec2) float64 {
	return v.Sub(o).Len2()
}

func (v Vec2) b2() box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X, v.Y)
}

func fromB2(v box2d.B2Vec2) Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// cross returns the z component of (b-a) x (c-b).
func cross(a, b, c Vec2) float64 {
	return (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
}

// IsConvex reports whether the closed polygon turns consistently in one direction.
func IsConvex(poly []Vec2) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	sign := 0
	for i := 0; i < n; i++ {
		z := cross(poly[i], poly[(i+1)%n], poly[(i+2)%n])
		if math.Abs(z) < 1e-12 {
			continue
		}
		s := 1
		if z < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return sign != 0
}

// Area returns the unsigned area of a closed polygon.
func Area(poly []Vec2) float64 {
	sum := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return math.Abs(sum) / 2
}
