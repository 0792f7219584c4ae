package engine

import (
	"fmt"
	"math/rand"
)

// InsertIndexes are the only rows/columns open to insertion: the mobile
// lines between the fixed ones.
var InsertIndexes = [3]int{1, 3, 5}

// fixedTPositions are the board slots holding the 12 fixed objective
// T tiles. Together with the four corners they form the 16 fixed tiles.
var fixedTPositions = [12]Position{
	{0, 2}, {0, 4},
	{2, 0}, {2, 2}, {2, 4}, {2, 6},
	{4, 0}, {4, 2}, {4, 4}, {4, 6},
	{6, 2}, {6, 4},
}

// Board owns the 7x7 tile grid and the single extra tile held off-grid. It
// also remembers the previous insertion to enforce the no-reverse rule.
// Tiles are stored by value, so grid copies are full snapshots.
type Board struct {
	grid  [BoardSize][BoardSize]Tile
	extra Tile

	lastInsertDir   Direction
	lastInsertIndex int
	hasLastInsert   bool
}

// NewBoard builds a board with the structurally fixed layout and a shuffled
// arrangement of the 34 mobile tiles. rng drives the shuffle; pass a seeded
// source for reproducible boards, or nil for an unseeded one.
func NewBoard(rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	b := &Board{}

	// Corners: fixed plain L tiles turned toward the board center.
	corner := func(row, col, rotation int) {
		t := NewTile(TypeL, true)
		t.SetRotation(rotation)
		b.grid[row][col] = t
	}
	corner(0, 0, 0)
	corner(0, BoardSize-1, 90)
	corner(BoardSize-1, BoardSize-1, 180)
	corner(BoardSize-1, 0, 270)

	// 12 fixed T tiles, each with a shuffled treasure objective.
	fixedObjectives := ObjectivesInCategory(FixedT)
	rng.Shuffle(len(fixedObjectives), func(i, j int) {
		fixedObjectives[i], fixedObjectives[j] = fixedObjectives[j], fixedObjectives[i]
	})
	for i, pos := range fixedTPositions {
		b.grid[pos.Row][pos.Col] = NewObjectiveTile(TypeT, true, fixedObjectives[i])
	}

	// 34 mobile tiles: 6 objective Ts, 6 objective Ls, 10 plain Ls, 12
	// plain Is. 33 fill the remaining slots; the last becomes the extra.
	mobile := make([]Tile, 0, 34)
	for _, obj := range ObjectivesInCategory(MobileT) {
		mobile = append(mobile, NewObjectiveTile(TypeT, false, obj))
	}
	for _, obj := range ObjectivesInCategory(MobileL) {
		mobile = append(mobile, NewObjectiveTile(TypeL, false, obj))
	}
	for i := 0; i < 10; i++ {
		mobile = append(mobile, NewTile(TypeL, false))
	}
	for i := 0; i < 12; i++ {
		mobile = append(mobile, NewTile(TypeI, false))
	}
	rng.Shuffle(len(mobile), func(i, j int) {
		mobile[i], mobile[j] = mobile[j], mobile[i]
	})
	for i := range mobile {
		if !mobile[i].HasObjective() {
			mobile[i].SetRotation(rng.Intn(4) * 90)
		}
	}

	next := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.isFixedSlot(row, col) {
				continue
			}
			b.grid[row][col] = mobile[next]
			next++
		}
	}
	b.extra = mobile[next]
	return b
}

func (b *Board) isFixedSlot(row, col int) bool {
	return b.grid[row][col].Fixed
}

// TileAt returns the tile at the given position.
func (b *Board) TileAt(pos Position) (Tile, error) {
	if !pos.Valid() {
		return Tile{}, fmt.Errorf("%w: position %s off the board", ErrValidation, pos)
	}
	return b.grid[pos.Row][pos.Col], nil
}

// SetTile overwrites the tile at pos. Used by undo restoration.
func (b *Board) SetTile(pos Position, t Tile) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: position %s off the board", ErrValidation, pos)
	}
	b.grid[pos.Row][pos.Col] = t
	return nil
}

// Grid returns a snapshot of the full tile grid. The returned array is a
// copy; mutating it does not touch the board.
func (b *Board) Grid() [BoardSize][BoardSize]Tile {
	return b.grid
}

// SetGrid replaces the full tile grid. Used by undo restoration.
func (b *Board) SetGrid(grid [BoardSize][BoardSize]Tile) {
	b.grid = grid
}

// ExtraTile returns the tile currently held off-grid.
func (b *Board) ExtraTile() Tile {
	return b.extra
}

// SetExtraTile replaces the held tile. Used by undo restoration.
func (b *Board) SetExtraTile(t Tile) {
	b.extra = t
}

// RotateExtraTile rotates the held tile 90 degrees clockwise. Objective
// tiles silently keep their locked rotation.
func (b *Board) RotateExtraTile() error {
	return b.extra.Rotate()
}

// CanInsert reports whether an insertion at (direction, index) is legal:
// the index must be one of 1, 3, 5 and the insertion must not exactly undo
// the previous one (same line, opposite direction). The first insertion is
// always allowed.
func (b *Board) CanInsert(dir Direction, index int) bool {
	if !dir.Valid() || !validInsertIndex(index) {
		return false
	}
	if !b.hasLastInsert {
		return true
	}
	return !(index == b.lastInsertIndex && dir == b.lastInsertDir.Opposite())
}

func validInsertIndex(index int) bool {
	for _, i := range InsertIndexes {
		if index == i {
			return true
		}
	}
	return false
}

// Insert shifts a full row or column one cell in the push direction,
// injecting the extra tile at the vacated edge. The tile pushed off the far
// edge becomes the new extra tile and is returned. North pulls the column up
// (extra enters at the bottom), South pushes it down, East pushes the row
// right (extra enters on the left), West pushes it left.
func (b *Board) Insert(dir Direction, index int) (Tile, error) {
	if !b.CanInsert(dir, index) {
		return Tile{}, fmt.Errorf("%w: cannot insert %s at index %d", ErrState, dir, index)
	}

	var ejected Tile
	switch dir {
	case North:
		ejected = b.grid[0][index]
		for row := 0; row < BoardSize-1; row++ {
			b.grid[row][index] = b.grid[row+1][index]
		}
		b.grid[BoardSize-1][index] = b.extra
	case South:
		ejected = b.grid[BoardSize-1][index]
		for row := BoardSize - 1; row > 0; row-- {
			b.grid[row][index] = b.grid[row-1][index]
		}
		b.grid[0][index] = b.extra
	case East:
		ejected = b.grid[index][BoardSize-1]
		for col := BoardSize - 1; col > 0; col-- {
			b.grid[index][col] = b.grid[index][col-1]
		}
		b.grid[index][0] = b.extra
	case West:
		ejected = b.grid[index][0]
		for col := 0; col < BoardSize-1; col++ {
			b.grid[index][col] = b.grid[index][col+1]
		}
		b.grid[index][BoardSize-1] = b.extra
	}

	b.extra = ejected
	b.lastInsertDir = dir
	b.lastInsertIndex = index
	b.hasLastInsert = true
	return ejected, nil
}

// ShiftedPosition returns where an occupant of pos ends up after an
// insertion at (dir, index). Occupants of the shifted line are carried
// along, wrapping to the opposite edge instead of falling off; everyone else
// stays put. The second return value is true when the position changed.
func ShiftedPosition(pos Position, dir Direction, index int) (Position, bool) {
	switch dir {
	case North:
		if pos.Col == index {
			row := pos.Row - 1
			if row < 0 {
				row = BoardSize - 1
			}
			return Position{Row: row, Col: pos.Col}, true
		}
	case South:
		if pos.Col == index {
			row := pos.Row + 1
			if row >= BoardSize {
				row = 0
			}
			return Position{Row: row, Col: pos.Col}, true
		}
	case East:
		if pos.Row == index {
			col := pos.Col + 1
			if col >= BoardSize {
				col = 0
			}
			return Position{Row: pos.Row, Col: col}, true
		}
	case West:
		if pos.Row == index {
			col := pos.Col - 1
			if col < 0 {
				col = BoardSize - 1
			}
			return Position{Row: pos.Row, Col: col}, true
		}
	}
	return pos, false
}

// ReachablePositions runs a breadth-first search from the given position.
// An edge exists toward a neighbor only when both tiles agree the corridor
// connects: the current tile opens toward the neighbor and the neighbor
// opens back. The result always contains the origin. Openings change on
// every insertion, so the set is recomputed on demand and never cached.
func (b *Board) ReachablePositions(from Position) map[Position]bool {
	reachable := map[Position]bool{from: true}
	queue := []Position{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		tile := b.grid[current.Row][current.Col]
		for _, dir := range tile.Openings() {
			neighbor, ok := current.Move(dir)
			if !ok || reachable[neighbor] {
				continue
			}
			if b.grid[neighbor.Row][neighbor.Col].HasOpening(dir.Opposite()) {
				reachable[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}
	return reachable
}

// CanMove reports whether a corridor path connects the two positions.
func (b *Board) CanMove(from, to Position) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	return b.ReachablePositions(from)[to]
}
