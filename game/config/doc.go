// Package config provides board configuration management for the
// minesweeper server.
//
// The config package handles:
//   - Loading board configurations from JSON files
//   - Built-in difficulty presets (beginner, intermediate, expert)
//   - Configuration validation and caching
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Board configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Board dimensions (width, height)
//   - Mine count
//   - A display name and description
//
// Available Configurations:
//
// The three classic difficulties are always available, with or without a
// backing file:
//   - beginner: 9x9 board with 10 mines
//   - intermediate: 16x16 board with 40 mines
//   - expert: 30x16 board with 99 mines
//
// A JSON file with the same name as a preset overrides it, so a deployment
// can reshape "beginner" without touching code. Any other JSON file in the
// directory adds a custom configuration.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("expert")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated for:
//   - Board dimensions within the supported range
//   - At least one mine and at least one safe cell
//   - A non-empty name
package config
