// Command analyze prints quick, human-readable heuristics about configuration
// files in the project's configs directory. It summarizes board dimensions and
// mine counts, estimates how open or cramped each board will play, and flags
// settings that make games degenerate or guess-heavy.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// AnalysisConfig is a light struct for reading config files used by analysis.
type AnalysisConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	MineCount   int    `json:"mine_count"`
}

// presetDensity maps the standard difficulty names to their mine densities,
// used as reference points when classifying a custom board.
var presetDensity = map[string]float64{
	"beginner":     10.0 / 81.0,
	"intermediate": 40.0 / 256.0,
	"expert":       99.0 / 480.0,
}

func main() {
	configs := []string{
		"beginner.json",
		"intermediate.json",
		"expert.json",
	}

	for _, configFile := range configs {
		fmt.Printf("\n=== Analyzing %s ===\n", configFile)
		analyzeConfig(filepath.Join("configs", configFile))
	}

	for _, extra := range os.Args[1:] {
		fmt.Printf("\n=== Analyzing %s ===\n", extra)
		analyzeConfig(extra)
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config AnalysisConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	totalCells := config.Width * config.Height
	if totalCells == 0 {
		fmt.Printf("⚠️  WARNING: board has zero area (%dx%d)\n", config.Width, config.Height)
		return
	}

	density := float64(config.MineCount) / float64(totalCells)
	safeCells := totalCells - config.MineCount

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Board: %d x %d (%d cells)\n", config.Width, config.Height, totalCells)
	fmt.Printf("Mines: %d (%.1f%% density)\n", config.MineCount, density*100)
	fmt.Printf("Safe cells to reveal: %d\n", safeCells)

	// A cell shows a blank (and floods open) when it and all its neighbors
	// are safe. (1-d)^9 approximates that probability for an interior cell.
	blankShare := math.Pow(1-density, 9)
	expectedBlanks := blankShare * float64(totalCells)
	fmt.Printf("Expected blank cells: ~%.0f (%.1f%% of board)\n", expectedBlanks, blankShare*100)

	closest := closestPreset(density)
	fmt.Printf("Plays most like: %s (%.1f%% density)\n", closest, presetDensity[closest]*100)

	switch {
	case config.MineCount >= totalCells:
		fmt.Printf("⚠️  CRITICAL: %d mines on %d cells leaves no safe cell!\n", config.MineCount, totalCells)
	case density > 0.30:
		fmt.Printf("⚠️  WARNING: density above 30%%; endgames will often come down to guessing\n")
	case density < 0.05:
		fmt.Printf("⚠️  WARNING: density below 5%%; the first click will usually cascade the whole board\n")
	default:
		fmt.Printf("✅ Density is within the playable range\n")
	}

	if safeCells > 0 && safeCells < 9 {
		fmt.Printf("⚠️  WARNING: fewer than 9 safe cells; the first click cannot be fully protected\n")
	}
}

// closestPreset returns the standard difficulty whose mine density is nearest
// to the given value.
func closestPreset(density float64) string {
	best := ""
	bestDiff := math.MaxFloat64
	for _, name := range []string{"beginner", "intermediate", "expert"} {
		diff := math.Abs(presetDensity[name] - density)
		if diff < bestDiff {
			best = name
			bestDiff = diff
		}
	}
	return best
}
