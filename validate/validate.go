// Command validate provides a small CLI that validates board configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Board dimensions against the engine limits
//   - Mine count against the board capacity
//
// It also prints advisory warnings for boards whose mine density makes them
// trivial or nearly unplayable.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minesofgo/minesweeper/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File     string
	Valid    bool
	Errors   []string
	Warnings []string
}

// Density thresholds for advisory warnings. Classic expert is ~20.6%, so
// anything past 30% is brutal and anything under 5% barely plays.
const (
	densityTrivial = 0.05
	densityBrutal  = 0.30
)

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	// Engine limits: name, dimensions, and mine count
	if err := engine.ValidateGameConfig(&config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
	}

	if !result.Valid {
		return result
	}

	cells := config.Width * config.Height
	density := float64(config.MineCount) / float64(cells)

	if density < densityTrivial {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Mine density %.1f%% is very low; most games will end in one cascade", density*100))
	}
	if density > densityBrutal {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Mine density %.1f%% is very high; most games will require guessing", density*100))
	}
	if cells-config.MineCount < 9 {
		result.Warnings = append(result.Warnings,
			"Fewer than 9 safe cells; the first click cannot be given a safe neighborhood")
	}

	result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %dx%d", config.Width, config.Height))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Mines: %d (%.1f%% density)", config.MineCount, density*100))

	return result
}

// main scans the configs directory for *.json files and validates each one,
// printing a concise report and exiting with non-zero status if any are
// invalid. An optional argument overrides the directory.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Printf("No config files found in %s\n", configDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
			for _, warning := range result.Warnings {
				fmt.Println("  ⚠ " + warning)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
