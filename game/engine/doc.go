// Package engine provides the core game logic for the Labyrinth board game.
//
// The engine package implements the game mechanics including:
//   - The 7x7 grid of rotatable corridor tiles and the held extra tile
//   - Row/column shift-insertion with the no-reverse rule
//   - Connectivity-based reachability (BFS over mutually-agreeing openings)
//   - The two-phase turn state machine (insert, then move)
//   - Objective progression and the win condition
//   - A pluggable AI decision strategy with a uniformly-random baseline
//
// Core Types:
//
// Board owns the tile grid and implements insertion and reachability. Game
// composes a Board with 2-4 Players and enforces the turn protocol. Facade is
// the single validated entry point that presentation layers are expected to
// use; every mutating operation has a paired Can predicate so callers can
// check before acting.
//
// Usage:
//
//	f := engine.NewFacade()
//	if err := f.StartGame(2, 2, nil); err != nil {
//		log.Fatal(err)
//	}
//
//	if f.CanInsertTile(engine.South, 1) {
//		result, _ := f.InsertTile(engine.South, 1)
//		_ = result
//	}
//	for pos := range f.ReachablePositions() {
//		f.MovePlayer(pos)
//		break
//	}
//
// Game Rules:
//
// Each turn the acting player may rotate the extra tile, must insert it into
// a row or column (shifting the whole line and ejecting the far tile, which
// becomes the new extra tile), and must then move along connected corridors.
// Players collect their personal objectives in order and win by returning to
// their start corner once all objectives are collected.
package engine
