package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	return NewBoard(rand.New(rand.NewSource(1)))
}

// tileCensus counts every tile value on the grid plus the extra tile.
func tileCensus(b *Board) map[Tile]int {
	census := map[Tile]int{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			census[b.grid[row][col]]++
		}
	}
	census[b.ExtraTile()]++
	return census
}

func TestNewBoard_FixedLayout(t *testing.T) {
	board := newTestBoard(t)

	corners := []struct {
		pos      Position
		rotation int
	}{
		{Position{0, 0}, 0},
		{Position{0, 6}, 90},
		{Position{6, 6}, 180},
		{Position{6, 0}, 270},
	}
	for _, c := range corners {
		tile, err := board.TileAt(c.pos)
		if err != nil {
			t.Fatalf("Failed to read corner %s: %v", c.pos, err)
		}
		if tile.Type != TypeL || !tile.Fixed || tile.HasObjective() {
			t.Errorf("Expected fixed plain L at %s, got %s", c.pos, tile)
		}
		if tile.Rotation != c.rotation {
			t.Errorf("Expected corner %s at %d degrees, got %d", c.pos, c.rotation, tile.Rotation)
		}
	}

	for _, pos := range fixedTPositions {
		tile, err := board.TileAt(pos)
		if err != nil {
			t.Fatalf("Failed to read %s: %v", pos, err)
		}
		if tile.Type != TypeT || !tile.Fixed || !tile.HasObjective() {
			t.Errorf("Expected fixed objective T at %s, got %s", pos, tile)
		}
		if tile.Objective.Category() != FixedT {
			t.Errorf("Expected a treasure objective at %s, got %s", pos, tile.Objective)
		}
	}
}

func TestNewBoard_TilePopulation(t *testing.T) {
	board := newTestBoard(t)

	var fixed, mobileT, mobileL, mobileI, objectives int
	census := tileCensus(board)
	for tile, n := range census {
		if tile.Fixed {
			fixed += n
			continue
		}
		if tile.HasObjective() {
			objectives += n
		}
		switch tile.Type {
		case TypeT:
			mobileT += n
		case TypeL:
			mobileL += n
		case TypeI:
			mobileI += n
		}
	}

	if fixed != 16 {
		t.Errorf("Expected 16 fixed tiles, got %d", fixed)
	}
	if mobileT != 6 || mobileL != 16 || mobileI != 12 {
		t.Errorf("Expected 6 T / 16 L / 12 I mobile tiles, got %d/%d/%d", mobileT, mobileL, mobileI)
	}
	if objectives != 12 {
		t.Errorf("Expected 12 mobile objective tiles, got %d", objectives)
	}
}

func TestNewBoard_Reproducible(t *testing.T) {
	a := NewBoard(rand.New(rand.NewSource(42)))
	b := NewBoard(rand.New(rand.NewSource(42)))
	if a.Grid() != b.Grid() || a.ExtraTile() != b.ExtraTile() {
		t.Error("Expected identical boards from identical seeds")
	}
}

func TestBoard_InsertConservation(t *testing.T) {
	board := newTestBoard(t)
	before := tileCensus(board)
	edgeTile, err := board.TileAt(Position{Row: BoardSize - 1, Col: 1})
	if err != nil {
		t.Fatalf("Failed to read edge tile: %v", err)
	}

	ejected, err := board.Insert(South, 1)
	if err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}
	if ejected != edgeTile {
		t.Errorf("Expected the far-edge tile to be ejected, got %s", ejected)
	}
	if board.ExtraTile() != ejected {
		t.Errorf("Expected the ejected tile to become the extra, got %s", board.ExtraTile())
	}

	after := tileCensus(board)
	if len(after) != len(before) {
		t.Fatalf("Expected the tile multiset to be preserved, got %d vs %d distinct values", len(after), len(before))
	}
	for tile, n := range before {
		if after[tile] != n {
			t.Errorf("Expected %d of %s after insertion, got %d", n, tile, after[tile])
		}
	}
}

func TestBoard_InsertShiftsLine(t *testing.T) {
	board := newTestBoard(t)
	extra := board.ExtraTile()
	var column [BoardSize]Tile
	for row := 0; row < BoardSize; row++ {
		column[row], _ = board.TileAt(Position{Row: row, Col: 3})
	}

	if _, err := board.Insert(South, 3); err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}

	top, _ := board.TileAt(Position{Row: 0, Col: 3})
	if top != extra {
		t.Errorf("Expected the extra tile at the entry edge, got %s", top)
	}
	for row := 1; row < BoardSize; row++ {
		tile, _ := board.TileAt(Position{Row: row, Col: 3})
		if tile != column[row-1] {
			t.Errorf("Expected row %d to hold the tile from row %d", row, row-1)
		}
	}
}

func TestBoard_CanInsertIndexes(t *testing.T) {
	board := newTestBoard(t)
	for _, index := range InsertIndexes {
		for _, dir := range Directions() {
			if !board.CanInsert(dir, index) {
				t.Errorf("Expected first insertion %s %d to be allowed", dir, index)
			}
		}
	}
	for _, index := range []int{-1, 0, 2, 4, 6, 7} {
		if board.CanInsert(South, index) {
			t.Errorf("Expected index %d to be rejected", index)
		}
	}
}

func TestBoard_NoReverseRule(t *testing.T) {
	board := newTestBoard(t)

	if _, err := board.Insert(South, 1); err != nil {
		t.Fatalf("Failed first insertion: %v", err)
	}
	if board.CanInsert(North, 1) {
		t.Error("Expected the exact reverse insertion to be rejected")
	}
	if _, err := board.Insert(North, 1); !errors.Is(err, ErrState) {
		t.Errorf("Expected state error for reverse insertion, got: %v", err)
	}

	// Repeating the same insertion or switching index stays legal.
	if !board.CanInsert(South, 1) {
		t.Error("Expected repeating the same insertion to be allowed")
	}
	if !board.CanInsert(North, 3) {
		t.Error("Expected the opposite direction at another index to be allowed")
	}
	if _, err := board.Insert(South, 3); err != nil {
		t.Fatalf("Failed insertion at another index: %v", err)
	}

	// The rule applies to rows the same way.
	if _, err := board.Insert(East, 5); err != nil {
		t.Fatalf("Failed row insertion: %v", err)
	}
	if board.CanInsert(West, 5) {
		t.Error("Expected the reverse row insertion to be rejected")
	}
	if !board.CanInsert(East, 5) || !board.CanInsert(West, 1) {
		t.Error("Expected non-reversing row insertions to be allowed")
	}
}

func TestShiftedPosition(t *testing.T) {
	cases := []struct {
		name  string
		pos   Position
		dir   Direction
		index int
		want  Position
		moved bool
	}{
		{"carried down", Position{2, 3}, South, 3, Position{3, 3}, true},
		{"carried up", Position{2, 3}, North, 3, Position{1, 3}, true},
		{"carried right", Position{5, 2}, East, 5, Position{5, 3}, true},
		{"carried left", Position{5, 2}, West, 5, Position{5, 1}, true},
		{"wraps bottom to top", Position{6, 1}, South, 1, Position{0, 1}, true},
		{"wraps top to bottom", Position{0, 1}, North, 1, Position{6, 1}, true},
		{"wraps right to left", Position{3, 6}, East, 3, Position{3, 0}, true},
		{"wraps left to right", Position{3, 0}, West, 3, Position{3, 6}, true},
		{"off the line stays", Position{2, 2}, South, 3, Position{2, 2}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, moved := ShiftedPosition(c.pos, c.dir, c.index)
			if got != c.want || moved != c.moved {
				t.Errorf("Expected %s (moved=%v), got %s (moved=%v)", c.want, c.moved, got, moved)
			}
		})
	}
}

func TestBoard_ReachabilityIncludesOrigin(t *testing.T) {
	board := newTestBoard(t)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			from := Position{Row: row, Col: col}
			if !board.ReachablePositions(from)[from] {
				t.Errorf("Expected reachable set from %s to include itself", from)
			}
		}
	}
}

func TestBoard_ReachabilityIsMutual(t *testing.T) {
	board := newTestBoard(t)
	from := Position{Row: 0, Col: 0}
	for pos := range board.ReachablePositions(from) {
		if !board.ReachablePositions(pos)[from] {
			t.Errorf("Expected reachability to be symmetric, %s cannot reach %s back", pos, from)
		}
	}
}

func TestBoard_CanMoveValidation(t *testing.T) {
	board := newTestBoard(t)
	if board.CanMove(Position{Row: -1, Col: 0}, Position{Row: 0, Col: 0}) {
		t.Error("Expected CanMove to reject an off-board origin")
	}
	if board.CanMove(Position{Row: 0, Col: 0}, Position{Row: 0, Col: BoardSize}) {
		t.Error("Expected CanMove to reject an off-board destination")
	}
	if !board.CanMove(Position{Row: 2, Col: 2}, Position{Row: 2, Col: 2}) {
		t.Error("Expected CanMove to allow staying in place")
	}
}
