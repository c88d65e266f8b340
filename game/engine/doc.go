// Package engine provides the core game logic for Minesweeper.
//
// The engine package implements the game mechanics including:
//   - Board construction and coordinate-safe cell access
//   - Lazy mine placement with a safe first-click neighborhood
//   - Flood-fill and chord reveal algorithms
//   - The flag/question-mark cycle per cell
//   - Win/loss adjudication and elapsed-time tracking
//
// Core Types:
//
// The Engine interface defines the main contract for play operations,
// implemented by GameEngine. GameState represents the full serializable game
// state, Board the minefield grid it owns, and GameConfig the board
// dimensions and mine count loaded from JSON files.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(engine.BeginnerConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Open a cell; mines are placed on the first open so it never detonates
//	outcome, err := gameEngine.Open(engine.Position{X: 4, Y: 4})
//	state := gameEngine.GetState()
//
// Game Rules:
//
// Opening a zero-hint cell cascades through the connected safe region up to
// its numbered boundary. Chording a revealed number opens its remaining
// neighbors once matching flags are placed. The game is won when every safe
// cell is revealed, and lost the moment a mine is opened. The engine is a
// pure synchronous state machine: it has no internal concurrency and every
// operation completes before returning.
package engine
