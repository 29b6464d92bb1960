package rooms

import "reynard/pkg/engine/world"

// swapAnim slides a room from one cell to another.
type swapAnim struct {
	from     world.Coord
	to       world.Coord
	duration float64
	elapsed  float64
	active   bool
}

// BeginMove starts the slide from one cell to another. A zero or negative
// duration completes on the next Update.
func (r *Room) BeginMove(from, to world.Coord, seconds float64) {
	r.anim = swapAnim{from: from, to: to, duration: seconds, active: true}
}

// Update advances the swap animation and reports whether it is finished.
// A room with no animation is always finished.
func (r *Room) Update(dt float64) bool {
	if !r.anim.active {
		return true
	}
	r.anim.elapsed += dt
	if r.anim.elapsed >= r.anim.duration {
		r.anim.active = false
		return true
	}
	return false
}

// Animating reports whether a swap animation is in flight.
func (r *Room) Animating() bool {
	return r.anim.active
}

// VisualPos returns the fractional cell the room should be drawn at.
func (r *Room) VisualPos() (col, row float64) {
	if !r.anim.active || r.anim.duration <= 0 {
		return float64(r.Pos.Col), float64(r.Pos.Row)
	}
	t := r.anim.elapsed / r.anim.duration
	if t > 1 {
		t = 1
	}
	// smoothstep
	t = t * t * (3 - 2*t)
	col = float64(r.anim.from.Col) + (float64(r.anim.to.Col)-float64(r.anim.from.Col))*t
	row = float64(r.anim.from.Row) + (float64(r.anim.to.Row)-float64(r.anim.from.Row))*t
	return col, row
}
