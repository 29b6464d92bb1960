package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reynard/pkg/engine/physics"
	"reynard/pkg/engine/world"
	"reynard/pkg/game/actors"
	"reynard/pkg/game/entities"
	"reynard/pkg/game/rooms"
)

// Rooms are 10 units wide: cell (n, 0) spans x in [10n, 10n+10).

func TestSwapWithSelected_Success(t *testing.T) {
	s := newStage(t, 3, 1, 100)
	rey := s.reynard(5)
	env := NewEnvController(s.g)
	r1, r2 := s.g.Room(world.C(1, 0)), s.g.Room(world.C(2, 0))

	x, y := s.centre(world.C(1, 0))
	require.True(t, env.SelectRoom(x, y, rey, nil))
	assert.Equal(t, world.C(1, 0), env.Selection())

	x, y = s.centre(world.C(2, 0))
	assert.Equal(t, Swapped, env.SwapWithSelected(x, y, rey, nil))
	assert.Same(t, r2, s.g.Room(world.C(1, 0)))
	assert.Same(t, r1, s.g.Room(world.C(2, 0)))
	assert.Equal(t, []SwapRecord{{Target: world.C(2, 0), Selection: world.C(1, 0)}}, env.History())
	assert.True(t, env.Selection().IsNone())
}

func TestSwapWithSelected_OccupiedTargetRejected(t *testing.T) {
	s := newStage(t, 3, 1, 100)
	rey := s.reynard(5)
	enemies := []*actors.Enemy{s.enemy(25)}
	env := NewEnvController(s.g)
	r1, r2 := s.g.Room(world.C(1, 0)), s.g.Room(world.C(2, 0))

	x, y := s.centre(world.C(1, 0))
	require.True(t, env.SelectRoom(x, y, rey, enemies))
	x, y = s.centre(world.C(2, 0))
	assert.Equal(t, Rejected, env.SwapWithSelected(x, y, rey, enemies))

	assert.Same(t, r1, s.g.Room(world.C(1, 0)))
	assert.Same(t, r2, s.g.Room(world.C(2, 0)))
	assert.Empty(t, env.History())
	assert.Equal(t, world.C(1, 0), env.Selection())

	// Reynard's own room is just as occupied
	x, y = s.centre(world.C(0, 0))
	assert.Equal(t, Rejected, env.SwapWithSelected(x, y, rey, enemies))
}

func TestSwapWithSelected_DeselectAndStale(t *testing.T) {
	s := newStage(t, 3, 1, 100)
	rey := s.reynard(5)
	env := NewEnvController(s.g)

	x, y := s.centre(world.C(1, 0))
	assert.Equal(t, Rejected, env.SwapWithSelected(x, y, rey, nil), "nothing selected")
	require.True(t, env.SelectRoom(x, y, rey, nil))
	assert.Equal(t, Deselected, env.SwapWithSelected(x, y, rey, nil))
	assert.True(t, env.Selection().IsNone())

	// an enemy walks into the selected room
	require.True(t, env.SelectRoom(x, y, rey, nil))
	intruder := []*actors.Enemy{s.enemy(15)}
	x2, y2 := s.centre(world.C(2, 0))
	assert.Equal(t, Rejected, env.SwapWithSelected(x2, y2, rey, intruder))
	assert.True(t, env.Selection().IsNone())

	// selecting an unswappable room clears the selection
	require.True(t, env.SelectRoom(x2, y2, rey, nil))
	x0, y0 := s.centre(world.C(0, 0))
	assert.False(t, env.SelectRoom(x0, y0, rey, nil))
	assert.True(t, env.Selection().IsNone())
}

func TestIsSwappable(t *testing.T) {
	s := newStage(t, 4, 2, 100)
	rey := s.reynard(5)
	dead := s.enemy(35)
	dead.Kill()
	env := NewEnvController(s.g)

	s.g.Room(world.C(1, 0)).PermLocked = true
	s.g.Room(world.C(2, 0)).Fogged = true
	s.g.Room(world.C(1, 1)).Trap = entities.NewCheckpoint(3)

	tests := []struct {
		c    world.Coord
		want bool
	}{
		{world.C(0, 0), false}, // Reynard
		{world.C(1, 0), false}, // locked
		{world.C(2, 0), false}, // fogged
		{world.C(1, 1), false}, // checkpoint
		{world.C(3, 0), true},  // dead enemies do not block
		{world.C(0, 1), true},
		{world.C(4, 0), false}, // out of bounds
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, env.IsSwappable(tt.c, rey, []*actors.Enemy{dead}), "cell %v", tt.c)
	}
}

func TestUndoLastSwap_RoundTrip(t *testing.T) {
	s := newStage(t, 3, 2, 100)
	rey := s.reynard(5)
	env := NewEnvController(s.g)
	before := map[world.Coord]*rooms.Room{}
	s.g.ForEachRoom(func(c world.Coord, r *rooms.Room) { before[c] = r })

	x, y := s.centre(world.C(1, 1))
	require.True(t, env.SelectRoom(x, y, rey, nil))
	x, y = s.centre(world.C(2, 0))
	require.Equal(t, Swapped, env.SwapWithSelected(x, y, rey, nil))

	require.True(t, env.UndoLastSwap(rey, nil))
	assert.Empty(t, env.History())
	s.g.ForEachRoom(func(c world.Coord, r *rooms.Room) {
		assert.Same(t, before[c], r, "cell %v", c)
	})
	assert.False(t, env.UndoLastSwap(rey, nil))
}

func TestUpdate_DrainsHistoryAfterAnimations(t *testing.T) {
	s := newStage(t, 3, 1, 100)
	rey := s.reynard(5)
	env := NewEnvController(s.g)

	x, y := s.centre(world.C(1, 0))
	require.True(t, env.SelectRoom(x, y, rey, nil))
	x, y = s.centre(world.C(2, 0))
	require.Equal(t, Swapped, env.SwapWithSelected(x, y, rey, nil))

	env.Update(0.1, rey, nil)
	assert.Equal(t, 0, env.SwapIndex(), "rooms still sliding")
	env.Update(0.1, rey, nil)
	assert.Equal(t, 0, env.SwapIndex())
	env.Update(0.2, rey, nil)
	assert.Equal(t, 1, env.SwapIndex())
}

func TestUpdate_GeometryWaitsForSlide(t *testing.T) {
	s := newStage(t, 3, 1, 100)
	rey := s.reynard(5)
	env := NewEnvController(s.g)
	pillar := []physics.Vec2{physics.V(40, 10), physics.V(60, 10), physics.V(60, 60), physics.V(40, 60)}
	r := s.g.Room(world.C(2, 0))
	r.Polygons = append(r.Polygons, pillar)
	s.g.SyncCells(world.C(2, 0))

	// a ray across the middle of cell n, above the floor
	across := func(n int) int {
		x := float64(10 * n)
		return len(s.w.RayCastAll(physics.V(x+0.5, 5), physics.V(x+9.5, 5)))
	}
	require.Equal(t, 0, across(1))
	require.Equal(t, 1, across(2))

	x, y := s.centre(world.C(1, 0))
	require.True(t, env.SelectRoom(x, y, rey, nil))
	x, y = s.centre(world.C(2, 0))
	require.Equal(t, Swapped, env.SwapWithSelected(x, y, rey, nil))

	env.Update(0.01, rey, nil)
	assert.Equal(t, 0, across(1), "pillar is still sliding in")
	assert.Equal(t, 1, across(2))
	assert.Equal(t, 0, env.SwapIndex())

	env.Update(0.3, rey, nil)
	assert.Equal(t, 1, across(1))
	assert.Equal(t, 0, across(2))
	assert.Equal(t, 1, env.SwapIndex())

	// undo slides back the same way
	require.True(t, env.UndoLastSwap(rey, nil))
	env.Update(0.01, rey, nil)
	assert.Equal(t, 1, across(1))
	assert.Equal(t, 0, across(2))

	env.Update(0.3, rey, nil)
	assert.Equal(t, 0, across(1))
	assert.Equal(t, 1, across(2))
	assert.Equal(t, 0, env.SwapIndex())
}

func TestUpdate_RevealsAroundReynard(t *testing.T) {
	s := newStage(t, 5, 5, 100)
	s.g.FogAll(true)
	// floors are per room, so stand on the floor of row 2
	rey := s.reynard(25)
	rey.Body.SetPosition(rey.Position().Add(s.g.RoomToWorld(world.C(0, 2))))
	env := NewEnvController(s.g)

	env.Update(0.016, rey, nil)
	for col := 0; col < 5; col++ {
		for row := 0; row < 5; row++ {
			c := world.C(col, row)
			near := world.ChebyshevDistance(c, world.C(2, 2)) <= 1
			assert.Equal(t, !near, s.g.IsRoomFogged(c), "cell %v", c)
		}
	}
}

func TestUpdate_GreysEnemiesInFog(t *testing.T) {
	s := newStage(t, 3, 1, 100)
	rey := s.reynard(5)
	hidden, seen := s.enemy(25), s.enemy(15)
	s.g.Room(world.C(2, 0)).Fogged = true
	env := NewEnvController(s.g)

	env.Update(0.016, rey, []*actors.Enemy{hidden, seen})
	assert.True(t, hidden.Greyed)
	assert.False(t, seen.Greyed)
}

func TestUpdate_LockIconsFollowZoom(t *testing.T) {
	s := newStage(t, 4, 1, 100)
	rey := s.reynard(5)
	en := s.enemy(15)
	enemies := []*actors.Enemy{en}
	s.g.Room(world.C(3, 0)).PermLocked = true
	env := NewEnvController(s.g)

	env.Update(0.016, rey, enemies)
	assert.False(t, env.LockIconVisible(world.C(3, 0)), "zoomed in")

	env.SetZoomedOut(true)
	env.Update(0.016, rey, enemies)
	assert.True(t, env.LockIconVisible(world.C(0, 0)))
	assert.True(t, env.LockIconVisible(world.C(1, 0)))
	assert.False(t, env.LockIconVisible(world.C(2, 0)))
	assert.True(t, env.LockIconVisible(world.C(3, 0)))

	env.SetZoomedOut(false)
	env.Update(0.016, rey, enemies)
	assert.False(t, env.LockIconVisible(world.C(3, 0)))

	// the enemy leaves; its old room is re-checked on the next zoom-out
	en.Body.SetPosition(en.Position().Add(s.g.RoomToWorld(world.C(1, 0))))
	env.SetZoomedOut(true)
	env.Update(0.016, rey, enemies)
	assert.False(t, env.LockIconVisible(world.C(1, 0)))
	assert.True(t, env.LockIconVisible(world.C(2, 0)))
}
