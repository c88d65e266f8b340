// Package api provides HTTP REST API handlers for the minesweeper service.
//
// The api package implements:
//   - RESTful endpoints for board plays
//   - Session management endpoints
//   - Configuration listing and creation
//   - Leaderboard queries
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional config_id, player_name)
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Get current board state
//   - POST /api/sessions/{id}/open - Open a cell
//   - POST /api/sessions/{id}/chord - Chord a revealed numbered cell
//   - POST /api/sessions/{id}/open-chord - Open, then chord if safe
//   - POST /api/sessions/{id}/flag - Cycle flag on a hidden cell
//   - POST /api/sessions/{id}/pause - Pause the timer
//   - POST /api/sessions/{id}/resume - Resume the timer
//   - POST /api/sessions/{id}/new-game - Discard the board, keep the config
//   - GET /api/sessions/{id}/history - Get play history with pagination
//
// Configuration:
//   - GET /api/configs - List available board configurations
//   - POST /api/configs - Save a custom board configuration
//   - GET /api/configs/{name} - Get a specific configuration
//
// Leaderboards:
//   - GET /api/leaderboard/{difficulty} - Fastest wins for a preset difficulty
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Play endpoints share one request
// shape, a cell coordinate:
//
//	{
//	  "x": 3,
//	  "y": 7
//	}
//
// and respond with a PlayResult carrying the changed cells, emitted events,
// the full game state, and the leaderboard rank when a ranked win lands.
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
