package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestValidateConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "expert.json", `{
		"name": "expert",
		"description": "30x16 board with 99 mines",
		"width": 30,
		"height": 16,
		"mine_count": 99
	}`)

	result := validateConfig(path)

	if !result.Valid {
		t.Fatalf("Expected valid config, got errors: %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Expected no warnings for expert density, got %v", result.Warnings)
	}

	joined := strings.Join(result.Errors, "\n")
	if !strings.Contains(joined, "30x16") {
		t.Errorf("Expected board dimensions in report, got %v", result.Errors)
	}
	if !strings.Contains(joined, "20.6%") {
		t.Errorf("Expected density in report, got %v", result.Errors)
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig(filepath.Join(t.TempDir(), "nope.json"))

	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "broken.json", `{not json`)

	result := validateConfig(path)

	if result.Valid {
		t.Error("Expected invalid result for broken JSON")
	}
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "Invalid JSON") {
		t.Errorf("Expected JSON error, got %v", result.Errors)
	}
}

func TestValidateConfig_EngineLimits(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{
			name:    "missing name",
			content: `{"width": 9, "height": 9, "mine_count": 10}`,
			errPart: "name is required",
		},
		{
			name:    "width too large",
			content: `{"name": "huge", "width": 100, "height": 9, "mine_count": 10}`,
			errPart: "width",
		},
		{
			name:    "zero mines",
			content: `{"name": "empty", "width": 9, "height": 9, "mine_count": 0}`,
			errPart: "mine_count",
		},
		{
			name:    "no safe cell",
			content: `{"name": "solid", "width": 3, "height": 3, "mine_count": 9}`,
			errPart: "no safe cell",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeConfig(t, dir, "config.json", tt.content)

			result := validateConfig(path)

			if result.Valid {
				t.Fatal("Expected invalid result")
			}
			joined := strings.Join(result.Errors, "\n")
			if !strings.Contains(joined, tt.errPart) {
				t.Errorf("Expected error containing %q, got %v", tt.errPart, result.Errors)
			}
		})
	}
}

func TestValidateConfig_DensityWarnings(t *testing.T) {
	dir := t.TempDir()

	sparse := writeConfig(t, dir, "sparse.json",
		`{"name": "sparse", "width": 20, "height": 20, "mine_count": 4}`)
	result := validateConfig(sparse)
	if !result.Valid {
		t.Fatalf("Sparse board should be valid, got %v", result.Errors)
	}
	if len(result.Warnings) == 0 || !strings.Contains(result.Warnings[0], "very low") {
		t.Errorf("Expected low-density warning, got %v", result.Warnings)
	}

	dense := writeConfig(t, dir, "dense.json",
		`{"name": "dense", "width": 10, "height": 10, "mine_count": 40}`)
	result = validateConfig(dense)
	if !result.Valid {
		t.Fatalf("Dense board should be valid, got %v", result.Errors)
	}
	if len(result.Warnings) == 0 || !strings.Contains(result.Warnings[0], "very high") {
		t.Errorf("Expected high-density warning, got %v", result.Warnings)
	}
}

func TestValidateConfig_TinyBoardWarning(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "tiny.json",
		`{"name": "tiny", "width": 3, "height": 3, "mine_count": 2}`)

	result := validateConfig(path)

	if !result.Valid {
		t.Fatalf("Tiny board should be valid, got %v", result.Errors)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Fewer than 9 safe cells") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected safe-neighborhood warning, got %v", result.Warnings)
	}
}
