// Package api provides the REST interface over the game service.
//
// Routes:
//
//	POST   /api/sessions                 create a session (player_count, human_count)
//	GET    /api/sessions                 list sessions, most recently accessed first
//	GET    /api/sessions/{id}            session info
//	DELETE /api/sessions/{id}            delete a session
//	GET    /api/sessions/{id}/state      full board snapshot
//	GET    /api/sessions/{id}/reachable  the acting player's reachable positions
//	POST   /api/sessions/{id}/rotate     rotate the extra tile
//	POST   /api/sessions/{id}/insert     insert the extra tile (direction, index)
//	POST   /api/sessions/{id}/move       move the acting player (row, col)
//	POST   /api/sessions/{id}/undo       undo the last turn action
//	POST   /api/sessions/{id}/redo       redo the last undone action
//	POST   /api/sessions/{id}/ai-turn    let the acting AI player take its turn
//	POST   /api/sessions/{id}/abandon    finish the game without a winner
//	GET    /ws?session={id}              WebSocket spectating
//	GET    /health                       health check
//
// Error statuses mirror the engine's error kinds: 400 for malformed input,
// 409 for actions outside their legal phase, 404 for missing sessions.
// Successful turn actions are pushed to the session's WebSocket spectators.
package api
