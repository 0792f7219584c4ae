package engine

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal directions on the board.
type Direction int

const (
	// North moves up, decreasing the row.
	North Direction = iota
	// South moves down, increasing the row.
	South
	// East moves right, increasing the column.
	East
	// West moves left, decreasing the column.
	West

	directionCount = 4
)

// Per-direction behavior as fixed lookup tables indexed by the Direction
// value. Keeps opposite/rotation total functions with no missing case.
var (
	directionDeltas = [directionCount]struct{ Row, Col int }{
		North: {-1, 0},
		South: {1, 0},
		East:  {0, 1},
		West:  {0, -1},
	}

	directionOpposites = [directionCount]Direction{
		North: South,
		South: North,
		East:  West,
		West:  East,
	}

	directionClockwise = [directionCount]Direction{
		North: East,
		East:  South,
		South: West,
		West:  North,
	}

	directionCounterClockwise = [directionCount]Direction{
		North: West,
		West:  South,
		South: East,
		East:  North,
	}

	directionNames = [directionCount]string{
		North: "north",
		South: "south",
		East:  "east",
		West:  "west",
	}
)

// Directions lists all four directions in a stable order.
func Directions() [directionCount]Direction {
	return [directionCount]Direction{North, South, East, West}
}

// DeltaRow returns the row change for this direction (-1 up, +1 down).
func (d Direction) DeltaRow() int {
	return directionDeltas[d].Row
}

// DeltaCol returns the column change for this direction (-1 left, +1 right).
func (d Direction) DeltaCol() int {
	return directionDeltas[d].Col
}

// Opposite returns the reverse direction. A corridor is traversable only if
// one tile opens toward the neighbor and the neighbor opens back Opposite.
func (d Direction) Opposite() Direction {
	return directionOpposites[d]
}

// Clockwise returns the direction rotated 90 degrees clockwise.
func (d Direction) Clockwise() Direction {
	return directionClockwise[d]
}

// CounterClockwise returns the direction rotated 90 degrees counter-clockwise.
func (d Direction) CounterClockwise() Direction {
	return directionCounterClockwise[d]
}

// Horizontal reports whether the direction is East or West.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// Vertical reports whether the direction is North or South.
func (d Direction) Vertical() bool {
	return d == North || d == South
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d >= North && d < directionCount
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection converts a case-insensitive direction name ("north",
// "south", "east", "west") into a Direction.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrValidation, s)
}
