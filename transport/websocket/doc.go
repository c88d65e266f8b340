// Package websocket pushes live board updates to minesweeper spectators.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - Automatic board broadcasting after each play
//   - Win/loss event notifications
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded Message values. A board change produces
// a "board_update" event carrying the full GameState; a finished game produces
// "game_won" or "game_lost" instead so clients can react without diffing the
// grid. Incoming client messages are ignored; plays go through the REST API.
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=ab3f) when
// establishing the connection. Updates are broadcast only to clients watching
// the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a play
//	hub.BroadcastToSession(sessionID, state)
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and receive updates
// simultaneously without blocking each other.
package websocket
