// Package service provides the business logic layer for the labyrinth game.
//
// The service package implements:
//   - Multi-session game management
//   - Turn action orchestration (rotate, insert, move, undo, redo)
//   - AI turn execution
//   - JSON-friendly state snapshots for transports
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. SessionManager handles session creation, retrieval, and
// lifecycle.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation and input decoding. Each
// session maintains its own controller with an independent game and undo
// history.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	gameService := service.NewGameService(sessionMgr)
//
//	// Create a 2-player session with one human seat
//	info, err := gameService.CreateSession(ctx, 2, 1)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Play the first turn
//	result, err := gameService.InsertTile(ctx, info.ID, "south", 1)
//
// Session Management:
//
// Sessions are identified by unique 8-character IDs and maintain independent
// game state. Multiple sessions can run concurrently. Sessions track creation
// time and last access time for cleanup.
package service
