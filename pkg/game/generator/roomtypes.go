package generator

import "reynard/pkg/game/level"

// RoomTypes returns the built-in room types for rooms of w x h pixels.
// Every type has a floor so rooms can be walked through in any order.
func RoomTypes(w, h float64) map[string]level.RoomType {
	t := h / 16
	floor := box(0, 0, w, t)
	return map[string]level.RoomType{
		"open":       {Polygons: [][][2]float64{floor}},
		"ledge":      {Polygons: [][][2]float64{floor, box(w*0.55, h*0.35, w*0.35, t)}},
		"high_ledge": {Polygons: [][][2]float64{floor, box(w*0.1, h*0.6, w*0.3, t)}},
		"stairs": {Polygons: [][][2]float64{
			floor,
			box(w*0.3, t, w*0.2, h*0.15),
			box(w*0.5, t, w*0.2, h*0.3),
		}},
		"pillar": {Polygons: [][][2]float64{floor, box(w*0.45, t, w*0.1, h*0.4)}},
		// broken floor: a gap in the middle with a raised lip over it
		"broken": {Polygons: [][][2]float64{
			box(0, 0, w*0.35, t),
			box(w*0.65, 0, w*0.35, t),
			{{w * 0.35, t}, {w * 0.45, t * 2}, {w * 0.55, t * 2}, {w * 0.65, t}},
		}},
		"spikes": {Polygons: [][][2]float64{floor}, Trap: "spikes"},
		"exit":   {Polygons: [][][2]float64{floor}, Trap: "exit"},
	}
}

func box(x, y, w, h float64) [][2]float64 {
	return [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}
