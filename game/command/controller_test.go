package command

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/gmarchal/labyrinth/game/engine"
)

func newStartedController(t *testing.T, playerCount, humanCount int) *Controller {
	t.Helper()
	ctrl := NewController()
	if err := ctrl.StartGame(playerCount, humanCount, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Failed to start game: %v", err)
	}
	return ctrl
}

func TestController_FullTurn(t *testing.T) {
	ctrl := newStartedController(t, 2, 2)

	if err := ctrl.RotateExtraTile(); err != nil {
		t.Fatalf("Failed to rotate extra tile before insertion: %v", err)
	}

	result, err := ctrl.InsertTile(engine.South, 1)
	if err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}
	if result.Direction != engine.South || result.Index != 1 {
		t.Errorf("Unexpected insert result: %+v", result)
	}

	if err := ctrl.RotateExtraTile(); !errors.Is(err, engine.ErrState) {
		t.Errorf("Expected state error rotating after insertion, got: %v", err)
	}

	player, err := ctrl.Facade().CurrentPlayer()
	if err != nil {
		t.Fatalf("Failed to get current player: %v", err)
	}
	moveResult, err := ctrl.MovePlayer(player.Position())
	if err != nil {
		t.Fatalf("Failed to move: %v", err)
	}
	if !moveResult.TurnAdvanced {
		t.Error("Expected the turn to advance after moving")
	}

	if !ctrl.CanUndo() {
		t.Fatal("Expected CanUndo after a full turn")
	}
	if err := ctrl.Undo(); err != nil {
		t.Fatalf("Failed to undo move: %v", err)
	}
	if err := ctrl.Undo(); err != nil {
		t.Fatalf("Failed to undo insert: %v", err)
	}
	if ctrl.CanUndo() {
		t.Error("Expected empty undo stack after rewinding the turn")
	}
	if err := ctrl.Redo(); err != nil {
		t.Fatalf("Failed to redo insert: %v", err)
	}
	if err := ctrl.Redo(); err != nil {
		t.Fatalf("Failed to redo move: %v", err)
	}
	if ctrl.CanRedo() {
		t.Error("Expected empty redo stack after replaying the turn")
	}
	if ctrl.Facade().Game().CurrentPlayerIndex() != 1 {
		t.Errorf("Expected player 1 to act after the replayed turn, got %d", ctrl.Facade().Game().CurrentPlayerIndex())
	}
}

func TestController_PlayAITurn(t *testing.T) {
	ctrl := newStartedController(t, 2, 0)

	result, err := ctrl.PlayAITurn()
	if err != nil {
		t.Fatalf("Failed to play AI turn: %v", err)
	}
	if !result.TurnAdvanced && !result.Finished {
		t.Error("Expected the AI turn to advance the game")
	}
	if ctrl.History().UndoSize() != 2 {
		t.Errorf("Expected AI turn to record insert and move commands, got %d", ctrl.History().UndoSize())
	}
}

func TestController_PlayAITurnForHuman(t *testing.T) {
	ctrl := newStartedController(t, 2, 2)

	_, err := ctrl.PlayAITurn()
	if !errors.Is(err, engine.ErrState) {
		t.Errorf("Expected state error playing an AI turn for a human, got: %v", err)
	}
}

func TestController_StartGameClearsHistory(t *testing.T) {
	ctrl := newStartedController(t, 2, 2)

	if _, err := ctrl.InsertTile(engine.East, 3); err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}
	if !ctrl.CanUndo() {
		t.Fatal("Expected history after an insert")
	}

	if err := ctrl.StartGame(3, 1, rand.New(rand.NewSource(2))); err != nil {
		t.Fatalf("Failed to restart game: %v", err)
	}
	if ctrl.CanUndo() || ctrl.CanRedo() {
		t.Error("Expected a fresh game to clear the history")
	}
	if len(ctrl.Facade().Players()) != 3 {
		t.Errorf("Expected 3 players in the new game, got %d", len(ctrl.Facade().Players()))
	}
}

func TestController_AbandonGame(t *testing.T) {
	ctrl := newStartedController(t, 2, 2)

	if _, err := ctrl.InsertTile(engine.South, 1); err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}
	ctrl.AbandonGame()

	if ctrl.Facade().State() != engine.Finished {
		t.Errorf("Expected finished state after abandon, got %s", ctrl.Facade().State())
	}
	if _, ok := ctrl.Facade().Winner(); ok {
		t.Error("Expected no winner after abandon")
	}
	if ctrl.CanUndo() {
		t.Error("Expected abandon to clear the history")
	}
}
