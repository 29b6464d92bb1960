package actors

import "reynard/pkg/engine/physics"

// Handle names a registry slot. It doubles as the physics owner tag of the
// actor's body, so a raycast hit resolves to an actor without pointers from
// bodies back to game objects.
type Handle uint32

// NoHandle is never issued.
const NoHandle Handle = Handle(physics.NoOwner)

const (
	indexBits = 20
	indexMask = 1<<indexBits - 1
	genMask   = 1<<(32-indexBits) - 1
)

func makeHandle(index int, gen uint32) Handle {
	return Handle(gen<<indexBits | uint32(index+1))
}

func (h Handle) index() int {
	return int(uint32(h)&indexMask) - 1
}

func (h Handle) gen() uint32 {
	return uint32(h) >> indexBits
}

// HandleOf converts a physics owner tag back to a handle.
func HandleOf(o physics.Owner) Handle {
	return Handle(o)
}

type slot[T any] struct {
	val  T
	gen  uint32
	live bool
}

// Registry is a handle arena. Freed slots are reused with a new generation,
// so stale handles never resolve to the slot's next occupant.
type Registry[T any] struct {
	slots []slot[T]
	free  []int
}

// Add stores v and returns its handle.
func (r *Registry[T]) Add(v T) Handle {
	if n := len(r.free); n > 0 {
		i := r.free[n-1]
		r.free = r.free[:n-1]
		s := &r.slots[i]
		s.val, s.live = v, true
		return makeHandle(i, s.gen)
	}
	r.slots = append(r.slots, slot[T]{val: v, live: true})
	return makeHandle(len(r.slots)-1, 0)
}

// Get resolves h. ok is false for NoHandle, freed and stale handles.
func (r *Registry[T]) Get(h Handle) (v T, ok bool) {
	i := h.index()
	if h == NoHandle || i < 0 || i >= len(r.slots) {
		return v, false
	}
	s := r.slots[i]
	if !s.live || s.gen != h.gen() {
		return v, false
	}
	return s.val, true
}

// Remove frees h. Removing a stale handle does nothing.
func (r *Registry[T]) Remove(h Handle) {
	if _, ok := r.Get(h); !ok {
		return
	}
	i := h.index()
	var zero T
	r.slots[i] = slot[T]{val: zero, gen: (r.slots[i].gen + 1) & genMask}
	r.free = append(r.free, i)
}

// Len returns the number of live entries.
func (r *Registry[T]) Len() int {
	return len(r.slots) - len(r.free)
}

// Each calls fn for every live entry in slot order.
func (r *Registry[T]) Each(fn func(h Handle, v T)) {
	for i, s := range r.slots {
		if s.live {
			fn(makeHandle(i, s.gen), s.val)
		}
	}
}
