// Package mcp provides a Model Context Protocol server for the minesweeper service.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for board plays and session management
//   - ASCII board rendering for text-based agents
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Get current board state with ASCII visualization
//   - open: Open a single cell
//   - chord: Open the neighbors of a satisfied number
//   - open_chord: Open a cell, then chord it if safe
//   - toggle_flag: Cycle a hidden cell through flag / question / clear
//   - pause, resume: Control the game timer
//   - new_game: Discard the board, keep the configuration
//   - play_history: Retrieve play history with pagination
//   - create_session: Create new game session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available board configurations
//   - leaderboard: Fastest wins for a preset difficulty
//   - game_instructions: Rules and strategy notes
//   - describe_cell: Per-cell detail for verifying board reads
//
// Architecture:
//
// The Client is a thin proxy: every tool call becomes a REST request against
// the API server, so MCP agents and browser clients always observe the same
// authoritative state.
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.NewStdioServer(client.GetMCPServer()).Listen(ctx, os.Stdin, os.Stdout)
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Play full games autonomously
//   - Verify board reads cell by cell before committing to a play
//   - Manage multiple concurrent sessions
//   - Compete on the preset-difficulty leaderboards
package mcp
