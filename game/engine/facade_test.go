package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestFacade_QueriesBeforeGame(t *testing.T) {
	facade := NewFacade()

	if facade.State() != NotStarted {
		t.Errorf("Expected not_started before any game, got %s", facade.State())
	}
	if facade.Players() != nil {
		t.Error("Expected nil players before any game")
	}
	if _, ok := facade.ExtraTile(); ok {
		t.Error("Expected no extra tile before any game")
	}
	if _, ok := facade.TileAt(Position{3, 3}); ok {
		t.Error("Expected no tile before any game")
	}
	if facade.IsGameOver() || facade.IsTileInsertedThisTurn() {
		t.Error("Expected neutral flags before any game")
	}
	if len(facade.ReachablePositions()) != 0 {
		t.Error("Expected an empty reachable set before any game")
	}
	if _, ok := facade.Winner(); ok {
		t.Error("Expected no winner before any game")
	}
	if _, err := facade.CurrentPlayer(); !errors.Is(err, ErrState) {
		t.Errorf("Expected state error for current player before any game, got: %v", err)
	}
}

func TestFacade_MutationsBeforeGame(t *testing.T) {
	facade := NewFacade()

	if facade.CanRotateExtraTile() || facade.CanInsertTile(South, 1) || facade.CanMoveTo(Position{0, 0}) {
		t.Error("Expected every mutation predicate to be false before any game")
	}
	if err := facade.RotateExtraTile(); !errors.Is(err, ErrState) {
		t.Errorf("Expected state error rotating before any game, got: %v", err)
	}
	if _, err := facade.InsertTile(South, 1); !errors.Is(err, ErrState) {
		t.Errorf("Expected state error inserting before any game, got: %v", err)
	}
	if _, err := facade.MovePlayer(Position{0, 0}); !errors.Is(err, ErrState) {
		t.Errorf("Expected state error moving before any game, got: %v", err)
	}
}

func TestFacade_TwoPhaseGating(t *testing.T) {
	facade := NewFacade()
	if err := facade.StartGame(2, 2, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Failed to start game: %v", err)
	}

	// Insertion phase: rotation free, movement closed.
	if !facade.CanRotateExtraTile() {
		t.Error("Expected rotation allowed before inserting")
	}
	if facade.CanMoveTo(Position{0, 0}) {
		t.Error("Expected movement closed before inserting")
	}
	if len(facade.ReachablePositions()) != 0 {
		t.Error("Expected an empty reachable set before inserting")
	}
	if err := facade.RotateExtraTile(); err != nil {
		t.Fatalf("Failed to rotate: %v", err)
	}

	if _, err := facade.InsertTile(South, 1); err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}

	// Movement phase: rotation closed, insertion closed, movement open.
	if facade.CanRotateExtraTile() {
		t.Error("Expected rotation closed after inserting")
	}
	if err := facade.RotateExtraTile(); !errors.Is(err, ErrState) {
		t.Errorf("Expected state error rotating after inserting, got: %v", err)
	}
	if facade.CanInsertTile(South, 3) {
		t.Error("Expected insertion closed after inserting")
	}
	player, err := facade.CurrentPlayer()
	if err != nil {
		t.Fatalf("Failed to get current player: %v", err)
	}
	if !facade.CanMoveTo(player.Position()) {
		t.Error("Expected movement open after inserting")
	}
	if !facade.ReachablePositions()[player.Position()] {
		t.Error("Expected the reachable set to include the player's position")
	}
}

func TestFacade_ExtraTileRotationApplies(t *testing.T) {
	facade := NewFacade()
	if err := facade.StartGame(2, 2, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Failed to start game: %v", err)
	}
	before, ok := facade.ExtraTile()
	if !ok {
		t.Fatal("Expected an extra tile")
	}
	if before.HasObjective() {
		// A locked tile keeps its rotation; swap in a plain one for the test.
		facade.Game().Board().SetExtraTile(NewTile(TypeL, false))
		before, _ = facade.ExtraTile()
	}
	if err := facade.RotateExtraTile(); err != nil {
		t.Fatalf("Failed to rotate: %v", err)
	}
	after, _ := facade.ExtraTile()
	if after.Rotation != (before.Rotation+90)%360 {
		t.Errorf("Expected rotation %d, got %d", (before.Rotation+90)%360, after.Rotation)
	}
}

func TestFacade_StartGameReplaces(t *testing.T) {
	facade := NewFacade()
	if err := facade.StartGame(2, 2, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Failed to start game: %v", err)
	}
	if _, err := facade.InsertTile(South, 1); err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}

	if err := facade.StartGame(4, 2, rand.New(rand.NewSource(2))); err != nil {
		t.Fatalf("Failed to replace game: %v", err)
	}
	if len(facade.Players()) != 4 {
		t.Errorf("Expected 4 players in the new game, got %d", len(facade.Players()))
	}
	if facade.IsTileInsertedThisTurn() {
		t.Error("Expected the new game to open in the insertion phase")
	}
}

func TestFacade_StartGameValidation(t *testing.T) {
	facade := NewFacade()
	if err := facade.StartGame(7, 0, nil); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error, got: %v", err)
	}
	if facade.State() != NotStarted {
		t.Error("Expected a failed start to leave no game behind")
	}
}
