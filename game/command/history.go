package command

import (
	"fmt"

	"github.com/gmarchal/labyrinth/game/engine"
)

// History is the two-stack undo/redo model. Executing a fresh command
// clears the redo stack: a new action invalidates any previously undone
// future.
type History struct {
	undoStack []Command
	redoStack []Command
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// ExecuteCommand runs a command and records it for undo.
func (h *History) ExecuteCommand(cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("%w: command must not be nil", engine.ErrValidation)
	}
	if !cmd.CanExecute() {
		return fmt.Errorf("%w: cannot execute %s", engine.ErrState, cmd)
	}
	if err := cmd.Execute(); err != nil {
		return err
	}
	h.undoStack = append(h.undoStack, cmd)
	h.redoStack = h.redoStack[:0]
	return nil
}

// Undo reverts the most recent command and moves it to the redo stack.
// Undoing with an empty history is a state error, not a silent no-op.
func (h *History) Undo() error {
	if !h.CanUndo() {
		return fmt.Errorf("%w: nothing to undo", engine.ErrState)
	}
	cmd := h.undoStack[len(h.undoStack)-1]
	if err := cmd.Undo(); err != nil {
		return err
	}
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, cmd)
	return nil
}

// Redo re-executes the most recently undone command. The command reuses
// the snapshot captured on its first execution.
func (h *History) Redo() error {
	if !h.CanRedo() {
		return fmt.Errorf("%w: nothing to redo", engine.ErrState)
	}
	cmd := h.redoStack[len(h.redoStack)-1]
	if err := cmd.Execute(); err != nil {
		return err
	}
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, cmd)
	return nil
}

// CanUndo reports whether an undo is available.
func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo reports whether a redo is available.
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// UndoSize returns the number of undoable commands.
func (h *History) UndoSize() int { return len(h.undoStack) }

// RedoSize returns the number of redoable commands.
func (h *History) RedoSize() int { return len(h.redoStack) }

// Clear discards both stacks, e.g. when a game is abandoned or replaced.
func (h *History) Clear() {
	h.undoStack = h.undoStack[:0]
	h.redoStack = h.redoStack[:0]
}
