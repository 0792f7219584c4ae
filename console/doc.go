// Package console renders the board as text and drives a game from a
// terminal.
//
// RenderSnapshot draws the 7x7 grid with box-drawing corridor glyphs, player
// markers and objective stars; the MCP transport reuses it for tool output.
// View wraps a command loop around one session of the game service for
// interactive play.
package console
