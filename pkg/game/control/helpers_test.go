package control

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reynard/pkg/engine/logger"
	"reynard/pkg/engine/physics"
	"reynard/pkg/engine/world"
	"reynard/pkg/game/actors"
	"reynard/pkg/game/config"
	"reynard/pkg/game/grid"
	"reynard/pkg/game/rooms"
)

func init() {
	logger.Silence()
}

// stage is a grid with a physics world attached and a handle arena for the
// actors placed on it.
type stage struct {
	g   *grid.Grid
	w   *physics.World
	reg actors.Registry[*actors.Character]
}

// newStage builds a cols x rows grid of roomW x 100 px rooms at 10 px per
// unit. Every room has a 1 unit thick floor, so floors top out at y=1 on
// the bottom row.
func newStage(t *testing.T, cols, rows int, roomW float64) *stage {
	t.Helper()
	opts := grid.DefaultOptions(roomW, 100, 10)
	opts.SwapSeconds = 0.3
	g, err := grid.New(cols, rows, opts)
	require.NoError(t, err)
	floor := []physics.Vec2{physics.V(0, 0), physics.V(roomW, 0), physics.V(roomW, 10), physics.V(0, 10)}
	id := rooms.ID(1)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := world.C(col, row)
			require.NoError(t, g.Place(c, rooms.New(id, "floor", c, [][]physics.Vec2{floor})))
			id++
		}
	}
	w := physics.NewWorld(physics.V(0, -10))
	g.AttachWorld(w)
	return &stage{g: g, w: w}
}

// character drops a box of the given half extents standing on the floor of
// the bottom row at x.
func (s *stage) character(x, halfW, halfH float64, trail int) *actors.Character {
	c := actors.NewCharacter(actors.NoHandle, nil, trail)
	h := s.reg.Add(c)
	c.Handle = h
	c.Body = s.w.AddBox(physics.V(x, 1+halfH), halfW, halfH, physics.Owner(h))
	return c
}

func (s *stage) reynard(x float64) *actors.Character {
	t := config.Default().Reynard
	return s.character(x, t.HalfWidth, t.HalfHeight, t.TrailLength)
}

func (s *stage) enemy(x float64) *actors.Enemy {
	t := config.Default().Enemy
	return actors.NewEnemy(s.character(x, t.HalfWidth, t.HalfHeight, t.TrailLength))
}

// centre returns the screen position of the middle of cell c.
func (s *stage) centre(c world.Coord) (float64, float64) {
	return s.g.RoomToScreen(c)
}

// wall adds a solid box obstacle from (x0, y0) to (x1, y1).
func (s *stage) wall(x0, y0, x1, y1 float64) *physics.Obstacle {
	return s.w.AddPolygon([]physics.Vec2{physics.V(x0, y0), physics.V(x1, y0), physics.V(x1, y1), physics.V(x0, y1)})
}
