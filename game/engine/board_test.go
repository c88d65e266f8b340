package engine

import (
	"errors"
	"testing"
)

func TestNewBoard(t *testing.T) {
	board, err := NewBoard(9, 9, 10)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	if board.Width != 9 || board.Height != 9 {
		t.Errorf("Expected 9x9 board, got %dx%d", board.Width, board.Height)
	}
	if board.Populated {
		t.Error("Expected a fresh board to be unpopulated")
	}

	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			cell := board.Cells[y][x]
			if cell.Content != ContentEmpty {
				t.Fatalf("Expected cell (%d,%d) to be empty before placement", x, y)
			}
			if cell.Visibility != Hidden {
				t.Fatalf("Expected cell (%d,%d) to start hidden", x, y)
			}
		}
	}
}

func TestNewBoard_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		height    int
		mineCount int
	}{
		{"zero width", 0, 9, 5},
		{"zero height", 9, 0, 5},
		{"negative width", -1, 9, 5},
		{"mine count equals cell count", 3, 3, 9},
		{"mine count exceeds cell count", 3, 3, 20},
		{"negative mine count", 3, 3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.width, tt.height, tt.mineCount)
			if err == nil {
				t.Fatalf("Expected error for %dx%d with %d mines", tt.width, tt.height, tt.mineCount)
			}
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestBoard_Neighbors(t *testing.T) {
	board, err := NewBoard(5, 4, 3)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	tests := []struct {
		name string
		pos  Position
		want int
	}{
		{"center", Position{2, 2}, 8},
		{"top-left corner", Position{0, 0}, 3},
		{"bottom-right corner", Position{4, 3}, 3},
		{"top edge", Position{2, 0}, 5},
		{"left edge", Position{0, 2}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			neighbors := board.Neighbors(tt.pos)
			if len(neighbors) != tt.want {
				t.Errorf("Expected %d neighbors at (%d,%d), got %d",
					tt.want, tt.pos.X, tt.pos.Y, len(neighbors))
			}
			for _, n := range neighbors {
				if !board.InBounds(n) {
					t.Errorf("Neighbor (%d,%d) is out of bounds", n.X, n.Y)
				}
				if n == tt.pos {
					t.Error("A cell must not be its own neighbor")
				}
			}
		})
	}
}

func TestBoard_NeighborsDeterministic(t *testing.T) {
	board, err := NewBoard(8, 8, 10)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	first := board.Neighbors(Position{3, 3})
	for i := 0; i < 10; i++ {
		again := board.Neighbors(Position{3, 3})
		if len(again) != len(first) {
			t.Fatalf("Neighbor count changed between calls: %d vs %d", len(first), len(again))
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("Neighbor order changed at index %d: %v vs %v", j, first[j], again[j])
			}
		}
	}
}

func TestBoard_At_OutOfBounds(t *testing.T) {
	board, err := NewBoard(4, 4, 2)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	for _, pos := range []Position{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {99, 99}} {
		if _, err := board.At(pos); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Expected ErrOutOfBounds at (%d,%d), got %v", pos.X, pos.Y, err)
		}
		if err := board.SetVisibility(pos, Revealed); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Expected ErrOutOfBounds setting visibility at (%d,%d), got %v", pos.X, pos.Y, err)
		}
	}
}

func TestBoard_ViewHidesContent(t *testing.T) {
	board := buildTestBoard(t, []string{
		"*..",
		"...",
		"..*",
	})

	view, err := board.View(Position{0, 0})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if view.Visibility != Hidden {
		t.Errorf("Expected hidden view, got %s", view.Visibility)
	}
	if view.Mine || view.HintCount != 0 {
		t.Error("Hidden cells must not disclose content")
	}

	if err := board.SetVisibility(Position{1, 1}, Revealed); err != nil {
		t.Fatalf("SetVisibility failed: %v", err)
	}
	view, err = board.View(Position{1, 1})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if view.Visibility != Revealed {
		t.Errorf("Expected revealed view, got %s", view.Visibility)
	}
	if view.HintCount != 2 {
		t.Errorf("Expected hint 2 at center, got %d", view.HintCount)
	}
}

// buildTestBoard constructs a populated board from a layout where '*' is a
// mine and any other character is an empty cell.
func buildTestBoard(t *testing.T, layout []string) *Board {
	t.Helper()

	height := len(layout)
	width := len(layout[0])
	mines := 0
	for _, row := range layout {
		for _, ch := range row {
			if ch == '*' {
				mines++
			}
		}
	}

	board, err := NewBoard(width, height, mines)
	if err != nil {
		t.Fatalf("Failed to create %dx%d board: %v", width, height, err)
	}

	for y, row := range layout {
		for x, ch := range row {
			if ch == '*' {
				board.Cells[y][x].Content = ContentMine
			}
		}
	}
	board.populateHints()
	board.Populated = true
	return board
}
