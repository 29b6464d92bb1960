package devtools

import (
	"reynard/pkg/game/generator"
	"reynard/pkg/game/level"
)

// DevLevelName is the name of the developer test level.
const DevLevelName = "Dev Test Level"

// DevLevel returns a small hand-made level holding every built-in room type
// and every trap, with one region of two sublevels and a checkpoint in each.
//
//	row 1:  broken  spikes  falling  open(C2)  exit(L)
//	row 0:  open@   ledge(C1) pillar  stairs    high_ledge(e)
func DevLevel(roomW, roomH float64) *level.File {
	types := generator.RoomTypes(roomW, roomH)
	types["falling"] = level.RoomType{
		Polygons: types["open"].Polygons,
		Trap:     "falling",
	}

	return &level.File{
		Name:      DevLevelName,
		RoomTypes: types,
		Grid: [][]string{
			{"broken", "spikes", "falling", "open", "exit"},
			{"open", "ledge", "pillar", "stairs", "high_ledge"},
		},
		Locked: [][2]int{{4, 1}},
		Regions: []level.Region{{
			Number:    1,
			Sublevels: [][4]int{{0, 0, 3, 2}, {3, 0, 2, 2}},
			Checkpoints: []level.Checkpoint{
				{ID: 1, X: 1, Y: 0},
				{ID: 2, X: 3, Y: 1},
			},
		}},
		Player:  [2]int{0, 0},
		Enemies: [][2]int{{4, 0}},
	}
}
