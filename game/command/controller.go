package command

import (
	"fmt"
	"math/rand"

	"github.com/gmarchal/labyrinth/game/engine"
)

// Controller binds a facade to a command history and is the per-game entry
// point every presentation layer drives. The two turn actions go through
// commands so they are undoable; extra-tile rotation is a free exploratory
// action applied directly, deliberately outside the history.
type Controller struct {
	facade  *engine.Facade
	history *History
}

// NewController creates a controller over a fresh facade.
func NewController() *Controller {
	return &Controller{
		facade:  engine.NewFacade(),
		history: NewHistory(),
	}
}

// StartGame starts a fresh game and clears the history.
func (c *Controller) StartGame(playerCount, humanCount int, rng *rand.Rand) error {
	if err := c.facade.StartGame(playerCount, humanCount, rng); err != nil {
		return err
	}
	c.history.Clear()
	return nil
}

// AbandonGame finishes the game without a winner and clears the history.
func (c *Controller) AbandonGame() {
	c.facade.AbandonGame()
	c.history.Clear()
}

// RotateExtraTile rotates the held tile. Not recorded in the history.
func (c *Controller) RotateExtraTile() error {
	return c.facade.RotateExtraTile()
}

// InsertTile performs the turn's insertion through an undoable command.
func (c *Controller) InsertTile(dir engine.Direction, index int) (engine.InsertResult, error) {
	cmd := NewInsertTileCommand(c.facade, dir, index)
	if err := c.history.ExecuteCommand(cmd); err != nil {
		return engine.InsertResult{}, err
	}
	return cmd.Result(), nil
}

// MovePlayer performs the turn's movement through an undoable command.
func (c *Controller) MovePlayer(dest engine.Position) (engine.MoveResult, error) {
	cmd := NewMovePlayerCommand(c.facade, dest)
	if err := c.history.ExecuteCommand(cmd); err != nil {
		return engine.MoveResult{}, err
	}
	return cmd.Result(), nil
}

// PlayAITurn runs a full turn for the acting player using its strategy:
// rotations, then insertion, then movement, each through the same validated
// operations a human uses, so AI turns share the undo history.
func (c *Controller) PlayAITurn() (engine.MoveResult, error) {
	player, err := c.facade.CurrentPlayer()
	if err != nil {
		return engine.MoveResult{}, err
	}
	strategy := player.Strategy()
	if strategy == nil {
		return engine.MoveResult{}, fmt.Errorf("%w: %s is not AI-controlled", engine.ErrState, player.Name())
	}

	for i := strategy.DecideRotation(c.facade); i > 0; i-- {
		if err := c.RotateExtraTile(); err != nil {
			return engine.MoveResult{}, err
		}
	}

	choice := strategy.DecideInsertion(c.facade)
	if _, err := c.InsertTile(choice.Direction, choice.Index); err != nil {
		return engine.MoveResult{}, err
	}

	return c.MovePlayer(strategy.DecideMovement(c.facade))
}

// Undo reverts the most recent turn action.
func (c *Controller) Undo() error { return c.history.Undo() }

// Redo re-applies the most recently undone turn action.
func (c *Controller) Redo() error { return c.history.Redo() }

// CanUndo reports whether an undo is available.
func (c *Controller) CanUndo() bool { return c.history.CanUndo() }

// CanRedo reports whether a redo is available.
func (c *Controller) CanRedo() bool { return c.history.CanRedo() }

// Facade exposes the validated query surface.
func (c *Controller) Facade() *engine.Facade { return c.facade }

// History exposes the command history for inspection.
func (c *Controller) History() *History { return c.history }
