package actors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reynard/pkg/engine/physics"
)

func TestNextBehavior(t *testing.T) {
	tests := []struct {
		from BehaviorState
		ev   Event
		want BehaviorState
	}{
		{Patrolling, Spotted, Realizing},
		{Patrolling, LostSight, Patrolling},
		{Patrolling, Realized, Patrolling},
		{Realizing, LostSight, Patrolling},
		{Realizing, Realized, Chasing},
		{Realizing, Spotted, Realizing},
		{Chasing, LostSight, Searching},
		{Chasing, Spotted, Chasing},
		{Searching, Spotted, Chasing},
		{Searching, SearchExpired, Returning},
		{Returning, Returned, Patrolling},
		{Returning, Spotted, Returning},
		{Patrolling, Killed, BehaviorDead},
		{Chasing, Killed, BehaviorDead},
		{BehaviorDead, Spotted, BehaviorDead},
		{BehaviorDead, Returned, BehaviorDead},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.ev.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, NextBehavior(tt.from, tt.ev))
		})
	}
}

func TestEnemyApplyResetsTimer(t *testing.T) {
	e := NewEnemy(NewCharacter(1, nil, 4))
	e.Timer = 0.3
	assert.False(t, e.Apply(LostSight))
	assert.Equal(t, 0.3, e.Timer)

	assert.True(t, e.Apply(Spotted))
	assert.Equal(t, Realizing, e.Behavior)
	assert.Zero(t, e.Timer)

	e.Kill()
	assert.Equal(t, BehaviorDead, e.Behavior)
	assert.Equal(t, Dead, e.Movement)
	assert.False(t, e.Apply(Returned))
}

func TestFaceTowardFlipsOnlyOnSignChange(t *testing.T) {
	c := NewCharacter(1, nil, 0)
	assert.False(t, c.FaceToward(3))
	assert.False(t, c.FaceToward(0))
	assert.True(t, c.FaceToward(-0.1))
	assert.Equal(t, Left, c.Facing)
	assert.False(t, c.FaceToward(-5))
	c.Flip()
	assert.Equal(t, Right, c.Facing)
	assert.Equal(t, 1.0, c.Facing.Sign())
}

func TestTrailKeepsNewest(t *testing.T) {
	w := physics.NewWorld(physics.V(0, 0))
	body := w.AddBox(physics.V(0, 0), 0.5, 0.5, 1)
	c := NewCharacter(1, body, 3)
	for i := 0; i < 5; i++ {
		body.SetPosition(physics.V(float64(i), 0))
		c.Record()
	}
	assert.Equal(t, []physics.Vec2{physics.V(2, 0), physics.V(3, 0), physics.V(4, 0)}, c.Trail())
	c.ResetTrail()
	assert.Empty(t, c.Trail())

	none := NewCharacter(2, nil, 0)
	none.Record()
	assert.Empty(t, none.Trail())
}

func TestRegistryHandles(t *testing.T) {
	var r Registry[string]
	a := r.Add("a")
	b := r.Add("b")
	assert.NotEqual(t, NoHandle, a)
	assert.NotEqual(t, a, b)

	v, ok := r.Get(b)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	r.Remove(a)
	_, ok = r.Get(a)
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())

	c := r.Add("c")
	assert.NotEqual(t, a, c, "reused slot gets a new generation")
	_, ok = r.Get(a)
	assert.False(t, ok, "stale handle must not resolve")
	v, ok = r.Get(c)
	require.True(t, ok)
	assert.Equal(t, "c", v)

	_, ok = r.Get(NoHandle)
	assert.False(t, ok)

	var seen []string
	r.Each(func(_ Handle, v string) { seen = append(seen, v) })
	assert.Equal(t, []string{"c", "b"}, seen)

	assert.Equal(t, c, HandleOf(physics.Owner(c)))
}
