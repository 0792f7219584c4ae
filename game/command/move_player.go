package command

import (
	"fmt"

	"github.com/gmarchal/labyrinth/game/engine"
)

// MovePlayerCommand wraps the movement phase. Its snapshot is small: the
// acting player's name (the stable identity), prior position, prior
// objective progress and the prior turn index.
type MovePlayerCommand struct {
	facade      *engine.Facade
	destination engine.Position

	executed       bool
	playerName     string
	savedPosition  engine.Position
	savedObjective int
	savedTurnIndex int
	result         engine.MoveResult
}

// NewMovePlayerCommand builds the command without executing it.
func NewMovePlayerCommand(facade *engine.Facade, dest engine.Position) *MovePlayerCommand {
	return &MovePlayerCommand{facade: facade, destination: dest}
}

// CanExecute implements Command.
func (c *MovePlayerCommand) CanExecute() bool {
	return c.facade.CanMoveTo(c.destination)
}

// Execute snapshots the acting player's state, then performs the move.
func (c *MovePlayerCommand) Execute() error {
	if !c.CanExecute() {
		return fmt.Errorf("%w: move to %s not allowed", engine.ErrState, c.destination)
	}

	if !c.executed {
		player, err := c.facade.CurrentPlayer()
		if err != nil {
			return err
		}
		c.playerName = player.Name()
		c.savedPosition = player.Position()
		c.savedObjective = player.ObjectiveIndex()
		c.savedTurnIndex = c.facade.Game().CurrentPlayerIndex()
		c.executed = true
	}

	result, err := c.facade.MovePlayer(c.destination)
	if err != nil {
		return err
	}
	c.result = result
	return nil
}

// Undo restores the player's position and objective progress and hands the
// turn back. The turn re-enters its movement phase: the insertion already
// happened and stays in effect until its own command is undone. Undoing a
// winning move reopens the game.
func (c *MovePlayerCommand) Undo() error {
	if !c.executed {
		return fmt.Errorf("%w: move command was never executed", engine.ErrState)
	}

	game := c.facade.Game()
	game.Reopen()
	player, err := game.PlayerByName(c.playerName)
	if err != nil {
		return err
	}

	if err := player.SetPosition(c.savedPosition); err != nil {
		return err
	}
	if err := player.SetObjectiveIndex(c.savedObjective); err != nil {
		return err
	}
	if err := game.SetCurrentPlayerIndex(c.savedTurnIndex); err != nil {
		return err
	}

	game.SetTileInsertedThisTurn(true)
	return nil
}

// Result returns the movement outcome of the last Execute.
func (c *MovePlayerCommand) Result() engine.MoveResult {
	return c.result
}

func (c *MovePlayerCommand) String() string {
	return fmt.Sprintf("move to %s", c.destination)
}
