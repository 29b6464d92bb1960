package actors

import "reynard/pkg/engine/physics"

// trail is a fixed-size ring of past positions.
type trail struct {
	buf  []physics.Vec2
	head int // next write
	n    int
}

func newTrail(size int) trail {
	if size < 0 {
		size = 0
	}
	return trail{buf: make([]physics.Vec2, size)}
}

func (t *trail) push(p physics.Vec2) {
	if len(t.buf) == 0 {
		return
	}
	t.buf[t.head] = p
	t.head = (t.head + 1) % len(t.buf)
	if t.n < len(t.buf) {
		t.n++
	}
}

func (t *trail) items() []physics.Vec2 {
	out := make([]physics.Vec2, 0, t.n)
	start := (t.head - t.n + len(t.buf)) % max(len(t.buf), 1)
	for i := 0; i < t.n; i++ {
		out = append(out, t.buf[(start+i)%len(t.buf)])
	}
	return out
}

func (t *trail) clear() {
	t.head, t.n = 0, 0
}
