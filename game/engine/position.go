package engine

import "fmt"

// BoardSize is the side length of the square tile grid.
const BoardSize = 7

// Position is a grid coordinate. Valid positions range from (0,0) to (6,6).
// Position is a value type; methods never mutate the receiver.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewPosition builds a Position, rejecting out-of-range coordinates.
func NewPosition(row, col int) (Position, error) {
	if !ValidCoordinates(row, col) {
		return Position{}, fmt.Errorf("%w: position (%d,%d) outside 0..%d", ErrValidation, row, col, BoardSize-1)
	}
	return Position{Row: row, Col: col}, nil
}

// ValidCoordinates reports whether (row, col) lies on the board.
func ValidCoordinates(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return ValidCoordinates(p.Row, p.Col)
}

// Move returns the adjacent position in the given direction. The second
// return value is false when the move would leave the grid; there is no
// wraparound at this level (wraparound is a board shift concept).
func (p Position) Move(d Direction) (Position, bool) {
	next := Position{Row: p.Row + d.DeltaRow(), Col: p.Col + d.DeltaCol()}
	if !next.Valid() {
		return Position{}, false
	}
	return next, true
}

// IsCorner reports whether the position is one of the four start corners.
func (p Position) IsCorner() bool {
	return (p.Row == 0 || p.Row == BoardSize-1) && (p.Col == 0 || p.Col == BoardSize-1)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
