package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reynard/pkg/engine/input"
	"reynard/pkg/engine/physics"
	"reynard/pkg/game/actors"
	"reynard/pkg/game/config"
)

func frame(actions ...input.Action) input.Frame {
	f := input.NewFrame()
	for _, a := range actions {
		f.Add(input.Intent{Action: a})
	}
	return f
}

func newRunner(t *testing.T, x float64) (*stage, *ReynardController) {
	t.Helper()
	s := newStage(t, 1, 1, 400)
	return s, NewReynardController(s.reynard(x), s.w, config.Default().Reynard)
}

func TestReynard_Run(t *testing.T) {
	_, ctl := newRunner(t, 5)
	c := ctl.Character()
	tune := config.Default().Reynard

	ctl.Update(1.0/60, frame(input.ActionMoveLeft))
	assert.Equal(t, 2, c.Grounded)
	assert.Equal(t, actors.Running, c.Movement)
	assert.Equal(t, actors.Left, c.Facing)
	assert.InDelta(t, -tune.RunSpeed, c.Velocity().X, 1e-9)

	ctl.Update(1.0/60, frame())
	assert.Equal(t, actors.Stopped, c.Movement)
	assert.Equal(t, actors.Left, c.Facing, "facing survives letting go")
	assert.Zero(t, c.Velocity().X)
}

func TestReynard_JumpNeedsFreshPress(t *testing.T) {
	_, ctl := newRunner(t, 5)
	c := ctl.Character()

	ctl.Update(1.0/60, frame(input.ActionJump))
	assert.Equal(t, actors.Jumping, c.Movement)
	assert.InDelta(t, config.Default().Reynard.JumpSpeed, c.Velocity().Y, 1e-9)

	// still on the ground because the world was not stepped
	c.Body.SetVelocity(physics.Vec2{})
	ctl.Update(1.0/60, frame(input.ActionJump))
	assert.Zero(t, c.Velocity().Y)

	ctl.Update(1.0/60, frame())
	ctl.Update(1.0/60, frame(input.ActionJump))
	assert.Equal(t, actors.Jumping, c.Movement)
}

func TestReynard_Dash(t *testing.T) {
	_, ctl := newRunner(t, 5)
	c := ctl.Character()
	tune := config.Default().Reynard

	ctl.Update(0.1, frame(input.ActionDash))
	assert.Equal(t, actors.Dashing, c.Movement)
	assert.InDelta(t, tune.DashSpeed, c.Velocity().X, 1e-9)
	assert.Zero(t, c.Velocity().Y)

	ctl.Update(0.1, frame())
	assert.Equal(t, actors.Dashing, c.Movement)
	ctl.Update(0.1, frame())
	assert.Equal(t, actors.Dashing, c.Movement)
	ctl.Update(0.1, frame())
	assert.Equal(t, actors.Stopped, c.Movement)
}

func TestReynard_AirDashOncePerLanding(t *testing.T) {
	_, ctl := newRunner(t, 5)
	c := ctl.Character()
	c.Body.SetPosition(physics.V(5, 6))

	ctl.Update(0.2, frame(input.ActionDash))
	require.Equal(t, actors.Dashing, c.Movement)
	ctl.Update(0.2, frame())
	ctl.Update(0.2, frame())
	require.NotEqual(t, actors.Dashing, c.Movement)

	ctl.Update(0.2, frame(input.ActionDash))
	assert.NotEqual(t, actors.Dashing, c.Movement, "dash spent in the air")

	c.Body.SetPosition(physics.V(5, 1.6))
	ctl.Update(0.2, frame(input.ActionDash))
	assert.Equal(t, actors.Dashing, c.Movement)
}

func TestReynard_WallSlideAndKick(t *testing.T) {
	s, ctl := newRunner(t, 5)
	c := ctl.Character()
	tune := config.Default().Reynard
	c.Body.SetPosition(physics.V(5, 5))
	s.wall(5.38, 1, 6, 9)

	c.Body.SetVelocity(physics.V(0, -5))
	ctl.Update(1.0/60, frame(input.ActionMoveRight))
	assert.Zero(t, c.Grounded)
	assert.Equal(t, actors.OnWall, c.Movement)
	assert.InDelta(t, -tune.WallSlide, c.Velocity().Y, 1e-9)

	ctl.Update(1.0/60, frame(input.ActionMoveRight, input.ActionJump))
	assert.Equal(t, actors.Jumping, c.Movement)
	assert.Equal(t, actors.Left, c.Facing)
	assert.InDelta(t, -tune.RunSpeed, c.Velocity().X, 1e-9)
	assert.InDelta(t, tune.JumpSpeed, c.Velocity().Y, 1e-9)
}

func TestReynard_FallsWithoutGround(t *testing.T) {
	_, ctl := newRunner(t, 5)
	c := ctl.Character()
	c.Body.SetPosition(physics.V(5, 6))
	c.Body.SetVelocity(physics.V(0, -3))

	ctl.Update(1.0/60, frame())
	assert.Equal(t, actors.Falling, c.Movement)
}

func TestReynard_TrailAndRespawn(t *testing.T) {
	_, ctl := newRunner(t, 5)
	c := ctl.Character()

	for range 3 {
		ctl.Update(1.0/60, frame(input.ActionMoveRight))
	}
	assert.Len(t, c.Trail(), 3)

	c.Kill()
	ctl.Update(1.0/60, frame(input.ActionMoveRight))
	assert.Len(t, c.Trail(), 3, "dead characters do not move")

	ctl.Respawn(physics.V(3, 1.6))
	assert.Equal(t, actors.Stopped, c.Movement)
	assert.Equal(t, physics.V(3, 1.6), c.Position())
	assert.Equal(t, physics.Vec2{}, c.Velocity())
	assert.Empty(t, c.Trail())
}
