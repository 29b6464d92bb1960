package world

// RevealRadius is the default reveal radius around the player's room
// (Chebyshev distance), giving the 3x3 neighbourhood.
const RevealRadius = 1

// Fogged is the part of a grid that fog reveal needs.
type Fogged interface {
	InBounds(c Coord) bool
	SetRoomFog(c Coord, fogged bool) bool
}

// Neighborhood returns every coordinate within radius (Chebyshev distance)
// of center, including center itself. Bounds are not checked.
func Neighborhood(center Coord, radius int) []Coord {
	if radius < 0 {
		return nil
	}
	result := make([]Coord, 0, (2*radius+1)*(2*radius+1))
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if chebyshevDist(dr, dc) > radius {
				continue
			}
			result = append(result, Coord{Col: center.Col + dc, Row: center.Row + dr})
		}
	}
	return result
}

// chebyshevDist returns Chebyshev (chessboard) distance for (dr, dc).
func chebyshevDist(dr, dc int) int {
	absDr := dr
	if absDr < 0 {
		absDr = -absDr
	}
	absDc := dc
	if absDc < 0 {
		absDc = -absDc
	}
	if absDr > absDc {
		return absDr
	}
	return absDc
}

// ChebyshevDistance returns the chessboard distance between two cells.
func ChebyshevDistance(a, b Coord) int {
	return chebyshevDist(a.Row-b.Row, a.Col-b.Col)
}

// RevealAround clears fog on every in-bounds cell within radius of center.
// It returns the number of cells that were fogged before.
func RevealAround(g Fogged, center Coord, radius int) int {
	if g == nil {
		return 0
	}
	revealed := 0
	for _, c := range Neighborhood(center, radius) {
		if !g.InBounds(c) {
			continue
		}
		if g.SetRoomFog(c, false) {
			revealed++
		}
	}
	return revealed
}

// RevealAroundDefault reveals the 3x3 neighbourhood.
func RevealAroundDefault(g Fogged, center Coord) int {
	return RevealAround(g, center, RevealRadius)
}
