// Package websocket pushes live board updates to spectators.
//
// The hub keeps one client set per session. After every successful turn
// action the API layer hands the hub a refreshed snapshot, and the hub fans
// it out to every connection watching that session. Spectating is one-way:
// clients never send game input over the socket, actions go through the REST
// API.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// After a successful action:
//	hub.BroadcastToSession(sessionID, "insert", snapshot)
package websocket
