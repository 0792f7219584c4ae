package engine

import (
	"fmt"
	"math/rand"
)

// Facade is the single validated entry point for everything outside the
// engine. Every mutating operation re-checks its paired Can predicate
// before acting, so calling an operation without checking first fails
// safely instead of corrupting state. Queries return neutral zero values
// when no game is running, except CurrentPlayer which fundamentally needs
// one.
type Facade struct {
	game *Game
}

// NewFacade creates a facade with no game started.
func NewFacade() *Facade {
	return &Facade{}
}

// StartGame builds and starts a fresh game, replacing any previous one.
// rng may be nil for an unseeded game.
func (f *Facade) StartGame(playerCount, humanCount int, rng *rand.Rand) error {
	game, err := NewGame(playerCount, humanCount, rng)
	if err != nil {
		return err
	}
	if err := game.Start(); err != nil {
		return err
	}
	f.game = game
	return nil
}

// AbandonGame finishes the running game without a winner. No-op when no
// game is running.
func (f *Facade) AbandonGame() {
	if f.game != nil {
		f.game.Abandon()
	}
}

func (f *Facade) running() bool {
	return f.game != nil && f.game.State() == Running
}

// CanRotateExtraTile reports whether rotating the held tile is currently
// allowed: only before the insertion phase of the acting turn.
func (f *Facade) CanRotateExtraTile() bool {
	return f.running() && !f.game.TileInsertedThisTurn()
}

// RotateExtraTile rotates the held tile 90 degrees clockwise. Rotation is a
// free exploratory action: it is allowed any number of times before the
// turn's insertion and is deliberately kept out of the undo history.
// Objective-bearing tiles silently keep their locked rotation.
func (f *Facade) RotateExtraTile() error {
	if f.game == nil {
		return fmt.Errorf("%w: no game started", ErrState)
	}
	if f.game.TileInsertedThisTurn() {
		return fmt.Errorf("%w: cannot rotate after inserting", ErrState)
	}
	return f.game.Board().RotateExtraTile()
}

// CanInsertTile reports whether the insertion would be accepted: game
// running, insertion phase still open, index legal and the no-reverse rule
// satisfied.
func (f *Facade) CanInsertTile(dir Direction, index int) bool {
	if !f.running() || f.game.TileInsertedThisTurn() {
		return false
	}
	return f.game.Board().CanInsert(dir, index)
}

// InsertTile performs the turn's insertion.
func (f *Facade) InsertTile(dir Direction, index int) (InsertResult, error) {
	if f.game == nil {
		return InsertResult{}, fmt.Errorf("%w: no game started", ErrState)
	}
	return f.game.InsertTile(dir, index)
}

// CanMoveTo reports whether the acting player could move to dest: game
// running, insertion already done, destination reachable.
func (f *Facade) CanMoveTo(dest Position) bool {
	if !f.running() || !f.game.TileInsertedThisTurn() {
		return false
	}
	return f.game.CanMoveTo(dest)
}

// MovePlayer performs the turn's movement.
func (f *Facade) MovePlayer(dest Position) (MoveResult, error) {
	if f.game == nil {
		return MoveResult{}, fmt.Errorf("%w: no game started", ErrState)
	}
	return f.game.MovePlayer(dest)
}

// ReachablePositions returns the acting player's reachable set, or an empty
// set when the game is not running or the movement phase has not opened.
func (f *Facade) ReachablePositions() map[Position]bool {
	if !f.running() || !f.game.TileInsertedThisTurn() {
		return map[Position]bool{}
	}
	reachable, err := f.game.ReachablePositions()
	if err != nil {
		return map[Position]bool{}
	}
	return reachable
}

// CurrentPlayer returns the player whose turn it is. This is the one query
// that requires a running game.
func (f *Facade) CurrentPlayer() (*Player, error) {
	if f.game == nil {
		return nil, fmt.Errorf("%w: no game started", ErrState)
	}
	return f.game.CurrentPlayer()
}

// Players returns the seating-ordered players, or nil before a game exists.
func (f *Facade) Players() []*Player {
	if f.game == nil {
		return nil
	}
	return f.game.Players()
}

// TileAt returns the tile at pos. The second return value is false when no
// game exists or pos is off the board.
func (f *Facade) TileAt(pos Position) (Tile, bool) {
	if f.game == nil {
		return Tile{}, false
	}
	tile, err := f.game.Board().TileAt(pos)
	if err != nil {
		return Tile{}, false
	}
	return tile, true
}

// ExtraTile returns the held tile. The second return value is false before
// a game exists.
func (f *Facade) ExtraTile() (Tile, bool) {
	if f.game == nil {
		return Tile{}, false
	}
	return f.game.Board().ExtraTile(), true
}

// State returns the game lifecycle state, NotStarted before any game.
func (f *Facade) State() GameState {
	if f.game == nil {
		return NotStarted
	}
	return f.game.State()
}

// IsGameOver reports whether a game exists and reached its terminal state.
func (f *Facade) IsGameOver() bool {
	return f.game != nil && f.game.IsOver()
}

// IsTileInsertedThisTurn reports whether the acting turn is in its movement
// phase.
func (f *Facade) IsTileInsertedThisTurn() bool {
	return f.game != nil && f.game.TileInsertedThisTurn()
}

// Winner returns the winning player, if the game finished with one.
func (f *Facade) Winner() (*Player, bool) {
	if f.game == nil {
		return nil, false
	}
	return f.game.Winner()
}

// Game exposes the underlying game for the command layer's undo
// restoration. Presentation layers use the validated operations above.
func (f *Facade) Game() *Game {
	return f.game
}
