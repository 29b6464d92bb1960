package world

// Direction is one of the four grid neighbours of a cell.
type Direction int

const (
	North Direction = iota // one row up; rows count from the bottom
	East
	South
	West
)

var directionNames = [...]string{"north", "east", "south", "west"}

// AllDirections lists the neighbours in clockwise order from North.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) String() string {
	if d < North || d > West {
		return "none"
	}
	return directionNames[d]
}

// Delta returns the column and row offsets of d.
func (d Direction) Delta() (colDelta, rowDelta int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	return 0, 0
}
