package engine

import (
	"fmt"
	"strings"
)

// ValidateGameConfig validates a board configuration for correctness and
// playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfiguration)
	}
	if config.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfiguration)
	}
	if config.Width < MinBoardDim || config.Width > MaxBoardDim {
		return fmt.Errorf("%w: width must be between %d and %d, got %d",
			ErrInvalidConfiguration, MinBoardDim, MaxBoardDim, config.Width)
	}
	if config.Height < MinBoardDim || config.Height > MaxBoardDim {
		return fmt.Errorf("%w: height must be between %d and %d, got %d",
			ErrInvalidConfiguration, MinBoardDim, MaxBoardDim, config.Height)
	}
	if config.MineCount < MinMineCount {
		return fmt.Errorf("%w: mine_count must be at least %d, got %d",
			ErrInvalidConfiguration, MinMineCount, config.MineCount)
	}
	if config.MineCount >= config.Width*config.Height {
		return fmt.Errorf("%w: mine_count %d leaves no safe cell on a %dx%d board",
			ErrInvalidConfiguration, config.MineCount, config.Width, config.Height)
	}
	return nil
}

// Standard difficulty presets
func BeginnerConfig() *GameConfig {
	return &GameConfig{
		Name:        "beginner",
		Description: "9x9 board with 10 mines",
		Width:       9,
		Height:      9,
		MineCount:   10,
	}
}

func IntermediateConfig() *GameConfig {
	return &GameConfig{
		Name:        "intermediate",
		Description: "16x16 board with 40 mines",
		Width:       16,
		Height:      16,
		MineCount:   40,
	}
}

func ExpertConfig() *GameConfig {
	return &GameConfig{
		Name:        "expert",
		Description: "30x16 board with 99 mines",
		Width:       30,
		Height:      16,
		MineCount:   99,
	}
}

// ConfigForDifficulty returns the built-in preset for a difficulty name
func ConfigForDifficulty(name string) (*GameConfig, bool) {
	switch strings.ToLower(name) {
	case "beginner":
		return BeginnerConfig(), true
	case "intermediate":
		return IntermediateConfig(), true
	case "expert":
		return ExpertConfig(), true
	default:
		return nil, false
	}
}

// Difficulties lists the built-in preset names in ascending difficulty order
func Difficulties() []string {
	return []string{"beginner", "intermediate", "expert"}
}
