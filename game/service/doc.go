// Package service provides the business logic layer for the minesweeper
// server.
//
// The service package implements:
//   - Multi-session game management
//   - Configuration management and loading
//   - Play processing (open, chord, flag) with event extraction
//   - Session lifecycle management
//   - Play history tracking and leaderboard recording
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages board configuration loading and validation.
// LeaderboardManager ranks winning games per difficulty.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation, configuration management, and
// business logic orchestration. Each session maintains its own game engine
// instance with independent state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr, nil)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "beginner", "alice")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Play
//	result, err := gameService.Open(ctx, sessionInfo.ID, engine.Position{X: 4, Y: 4})
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain independent
// game state. Multiple sessions can run concurrently with different
// configurations. Sessions track creation time, last access time, and play
// history for analytics and ranking.
package service
