package command

import (
	"fmt"

	"github.com/gmarchal/labyrinth/game/engine"
)

// InsertTileCommand wraps the insertion phase. Insertion shifts a whole
// line and can drag players along with wraparound, so the snapshot covers
// the full grid, the extra tile and every player's position.
type InsertTileCommand struct {
	facade    *engine.Facade
	direction engine.Direction
	index     int

	executed       bool
	savedGrid      [engine.BoardSize][engine.BoardSize]engine.Tile
	savedExtra     engine.Tile
	savedPositions map[string]engine.Position
	result         engine.InsertResult
}

// NewInsertTileCommand builds the command without executing it.
func NewInsertTileCommand(facade *engine.Facade, dir engine.Direction, index int) *InsertTileCommand {
	return &InsertTileCommand{facade: facade, direction: dir, index: index}
}

// CanExecute implements Command.
func (c *InsertTileCommand) CanExecute() bool {
	return c.facade.CanInsertTile(c.direction, c.index)
}

// Execute snapshots the pre-insertion state, then performs the insertion.
// On redo the existing snapshot is reused; the state was just restored to
// it by the preceding undo.
func (c *InsertTileCommand) Execute() error {
	if !c.CanExecute() {
		return fmt.Errorf("%w: insertion %s %d not allowed", engine.ErrState, c.direction, c.index)
	}

	if !c.executed {
		board := c.facade.Game().Board()
		c.savedGrid = board.Grid()
		c.savedExtra = board.ExtraTile()
		c.savedPositions = make(map[string]engine.Position)
		for _, p := range c.facade.Players() {
			c.savedPositions[p.Name()] = p.Position()
		}
		c.executed = true
	}

	result, err := c.facade.InsertTile(c.direction, c.index)
	if err != nil {
		return err
	}
	c.result = result
	return nil
}

// Undo restores the grid, the extra tile and every player position, and
// reopens the insertion phase.
func (c *InsertTileCommand) Undo() error {
	if !c.executed {
		return fmt.Errorf("%w: insert command was never executed", engine.ErrState)
	}

	game := c.facade.Game()
	board := game.Board()
	board.SetGrid(c.savedGrid)
	board.SetExtraTile(c.savedExtra)

	for name, pos := range c.savedPositions {
		player, err := game.PlayerByName(name)
		if err != nil {
			return err
		}
		if err := player.SetPosition(pos); err != nil {
			return err
		}
	}

	game.SetTileInsertedThisTurn(false)
	return nil
}

// Result returns the insertion outcome of the last Execute.
func (c *InsertTileCommand) Result() engine.InsertResult {
	return c.result
}

func (c *InsertTileCommand) String() string {
	return fmt.Sprintf("insert %s %d", c.direction, c.index)
}
