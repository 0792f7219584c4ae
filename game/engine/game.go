package engine

import (
	"fmt"
	"math/rand"
)

// GameState is the lifecycle state of a game.
type GameState int

const (
	// NotStarted means the game is built but Start has not been called.
	NotStarted GameState = iota
	// Running means turns are being played.
	Running
	// Finished is terminal: someone won or the game was abandoned.
	Finished
)

func (s GameState) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// startCorners are the player start positions, assigned in seating order.
var startCorners = [4]Position{
	{0, 0},
	{0, BoardSize - 1},
	{BoardSize - 1, BoardSize - 1},
	{BoardSize - 1, 0},
}

// InsertResult describes what an insertion did, for presentation layers to
// render without polling.
type InsertResult struct {
	Direction Direction `json:"direction"`
	Index     int       `json:"index"`
	// Ejected is the tile pushed off the far edge, now held as the extra.
	Ejected Tile `json:"-"`
}

// MoveResult describes what a movement did: whether an objective was
// collected, whether the turn advanced and to whom, and whether the game
// finished with a winner.
type MoveResult struct {
	Player             string    `json:"player"`
	From               Position  `json:"from"`
	To                 Position  `json:"to"`
	ObjectiveCollected bool      `json:"objective_collected"`
	Objective          Objective `json:"-"`
	TurnAdvanced       bool      `json:"turn_advanced"`
	NextPlayer         string    `json:"next_player,omitempty"`
	Finished           bool      `json:"finished"`
	Winner             string    `json:"winner,omitempty"`
}

// Game is the turn state machine composing a Board with 2-4 players. Each
// turn is a strict two-phase protocol: exactly one insertion, then exactly
// one movement. The game is single-threaded; callers serialize access.
type Game struct {
	board         *Board
	players       []*Player
	currentPlayer int
	state         GameState
	tileInserted  bool
}

// NewGame builds a game with the given total player count (2-4) and human
// count (0 to playerCount); the remaining seats are filled with AI players
// using the random baseline strategy. The full objective catalog is
// shuffled and split evenly across players; a remainder is discarded. rng
// drives the board shuffle, the objective deal and the AI strategy; pass a
// seeded source for reproducible games.
func NewGame(playerCount, humanCount int, rng *rand.Rand) (*Game, error) {
	if playerCount < 2 || playerCount > 4 {
		return nil, fmt.Errorf("%w: player count must be 2-4, got %d", ErrValidation, playerCount)
	}
	if humanCount < 0 || humanCount > playerCount {
		return nil, fmt.Errorf("%w: human count must be 0-%d, got %d", ErrValidation, playerCount, humanCount)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	g := &Game{
		board: NewBoard(rng),
		state: NotStarted,
	}

	for i := 0; i < humanCount; i++ {
		p, err := NewPlayer(fmt.Sprintf("Player %d", i+1), startCorners[i])
		if err != nil {
			return nil, err
		}
		g.players = append(g.players, p)
	}
	for i := humanCount; i < playerCount; i++ {
		p, err := NewAIPlayer(fmt.Sprintf("AI %d", i-humanCount+1), startCorners[i], NewRandomStrategy(rng))
		if err != nil {
			return nil, err
		}
		g.players = append(g.players, p)
	}

	catalog := AllObjectives()
	rng.Shuffle(len(catalog), func(i, j int) {
		catalog[i], catalog[j] = catalog[j], catalog[i]
	})
	perPlayer := len(catalog) / playerCount
	for i, p := range g.players {
		for j := 0; j < perPlayer; j++ {
			if err := p.AddObjective(catalog[i*perPlayer+j]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Start transitions NOT_STARTED to RUNNING. Calling it twice is an error.
func (g *Game) Start() error {
	if g.state != NotStarted {
		return fmt.Errorf("%w: game already started", ErrState)
	}
	g.state = Running
	g.currentPlayer = 0
	g.tileInserted = false
	return nil
}

// State returns the lifecycle state.
func (g *Game) State() GameState { return g.state }

// Board exposes the board for queries and undo restoration.
func (g *Game) Board() *Board { return g.board }

// Players returns the seating-ordered player list. The slice is a copy; the
// players themselves are shared.
func (g *Game) Players() []*Player {
	return append([]*Player(nil), g.players...)
}

// PlayerByName resolves a player by its stable name identity.
func (g *Game) PlayerByName(name string) (*Player, error) {
	for _, p := range g.players {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: no player named %q", ErrNotFound, name)
}

// CurrentPlayer returns the player whose turn it is. Requires a running
// game.
func (g *Game) CurrentPlayer() (*Player, error) {
	if g.state != Running {
		return nil, fmt.Errorf("%w: game is not running", ErrState)
	}
	return g.players[g.currentPlayer], nil
}

// CurrentPlayerIndex returns the index of the acting player.
func (g *Game) CurrentPlayerIndex() int { return g.currentPlayer }

// SetCurrentPlayerIndex restores the acting player. Used by undo.
func (g *Game) SetCurrentPlayerIndex(index int) error {
	if index < 0 || index >= len(g.players) {
		return fmt.Errorf("%w: player index %d out of range", ErrValidation, index)
	}
	g.currentPlayer = index
	return nil
}

// TileInsertedThisTurn reports whether the acting player already inserted.
func (g *Game) TileInsertedThisTurn() bool { return g.tileInserted }

// SetTileInsertedThisTurn restores the turn phase flag. Used by undo.
func (g *Game) SetTileInsertedThisTurn(inserted bool) {
	g.tileInserted = inserted
}

// InsertTile performs the insertion phase of the current turn: the board
// shifts, players standing on the shifted line are carried along (wrapping
// at the edges) and the movement phase opens.
func (g *Game) InsertTile(dir Direction, index int) (InsertResult, error) {
	if g.state != Running {
		return InsertResult{}, fmt.Errorf("%w: game is not running", ErrState)
	}
	if g.tileInserted {
		return InsertResult{}, fmt.Errorf("%w: tile already inserted this turn", ErrState)
	}

	ejected, err := g.board.Insert(dir, index)
	if err != nil {
		return InsertResult{}, err
	}

	for _, p := range g.players {
		if shifted, moved := ShiftedPosition(p.Position(), dir, index); moved {
			p.SetPosition(shifted)
		}
	}

	g.tileInserted = true
	return InsertResult{Direction: dir, Index: index, Ejected: ejected}, nil
}

// MovePlayer performs the movement phase: the acting player moves to a
// reachable destination, collects its current objective if the destination
// tile carries it, and either wins on the spot or hands the turn over.
func (g *Game) MovePlayer(dest Position) (MoveResult, error) {
	if g.state != Running {
		return MoveResult{}, fmt.Errorf("%w: game is not running", ErrState)
	}
	if !g.tileInserted {
		return MoveResult{}, fmt.Errorf("%w: must insert a tile before moving", ErrState)
	}

	player := g.players[g.currentPlayer]
	from := player.Position()
	if !g.board.CanMove(from, dest) {
		return MoveResult{}, fmt.Errorf("%w: no corridor path from %s to %s", ErrState, from, dest)
	}

	player.SetPosition(dest)
	result := MoveResult{Player: player.Name(), From: from, To: dest}

	tile, _ := g.board.TileAt(dest)
	if tile.HasObjective() {
		if current, ok := player.CurrentObjective(); ok && current == tile.Objective {
			player.NextObjective()
			result.ObjectiveCollected = true
			result.Objective = tile.Objective
		}
	}

	if player.HasWon() {
		g.state = Finished
		result.Finished = true
		result.Winner = player.Name()
		return result, nil
	}

	g.currentPlayer = (g.currentPlayer + 1) % len(g.players)
	g.tileInserted = false
	result.TurnAdvanced = true
	result.NextPlayer = g.players[g.currentPlayer].Name()
	return result, nil
}

// ReachablePositions returns every position the acting player can move to
// from where it stands, including that position itself.
func (g *Game) ReachablePositions() (map[Position]bool, error) {
	player, err := g.CurrentPlayer()
	if err != nil {
		return nil, err
	}
	return g.board.ReachablePositions(player.Position()), nil
}

// CanMoveTo reports whether the acting player can reach dest. False when
// the game is not running.
func (g *Game) CanMoveTo(dest Position) bool {
	if g.state != Running {
		return false
	}
	return g.board.CanMove(g.players[g.currentPlayer].Position(), dest)
}

// IsOver reports whether the game reached its terminal state.
func (g *Game) IsOver() bool { return g.state == Finished }

// Winner returns the winning player, if any. An abandoned game finishes
// without a winner.
func (g *Game) Winner() (*Player, bool) {
	if g.state != Finished {
		return nil, false
	}
	for _, p := range g.players {
		if p.HasWon() {
			return p, true
		}
	}
	return nil, false
}

// Reopen returns a finished game to RUNNING. Used by undo when the undone
// move was the winning one.
func (g *Game) Reopen() {
	if g.state == Finished {
		g.state = Running
	}
}

// Abandon finishes a running game without a winner. It is a no-op outside
// RUNNING.
func (g *Game) Abandon() {
	if g.state == Running {
		g.state = Finished
	}
}
