package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPlaceMines_FirstClickNeighborhoodSafe(t *testing.T) {
	clicks := []Position{{0, 0}, {8, 8}, {4, 4}, {0, 4}, {8, 0}}

	for _, click := range clicks {
		for seed := int64(0); seed < 20; seed++ {
			board, err := NewBoard(9, 9, 10)
			if err != nil {
				t.Fatalf("Failed to create board: %v", err)
			}
			if err := board.PlaceMines(rand.New(rand.NewSource(seed)), click); err != nil {
				t.Fatalf("PlaceMines failed for click (%d,%d) seed %d: %v", click.X, click.Y, seed, err)
			}

			safe := append([]Position{click}, board.Neighbors(click)...)
			for _, pos := range safe {
				if board.Cells[pos.Y][pos.X].IsMine() {
					t.Errorf("Mine at (%d,%d) inside the clicked neighborhood of (%d,%d), seed %d",
						pos.X, pos.Y, click.X, click.Y, seed)
				}
			}
		}
	}
}

func TestPlaceMines_ExactMineCount(t *testing.T) {
	board, err := NewBoard(16, 16, 40)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	if err := board.PlaceMines(rand.New(rand.NewSource(7)), Position{8, 8}); err != nil {
		t.Fatalf("PlaceMines failed: %v", err)
	}

	mines := 0
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			if board.Cells[y][x].IsMine() {
				mines++
			}
		}
	}
	if mines != 40 {
		t.Errorf("Expected exactly 40 mines, got %d", mines)
	}
	if !board.Populated {
		t.Error("Expected board to be marked populated after placement")
	}
}

func TestPlaceMines_DegradesToSingleCellExclusion(t *testing.T) {
	// Excluding the whole center neighborhood of a 3x3 board leaves no room
	// at all, so the guarantee must fall back to just the clicked cell.
	board, err := NewBoard(3, 3, 1)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	center := Position{1, 1}
	if err := board.PlaceMines(rand.New(rand.NewSource(42)), center); err != nil {
		t.Fatalf("PlaceMines failed on tiny board: %v", err)
	}

	if board.Cells[center.Y][center.X].IsMine() {
		t.Error("Clicked cell must never hold a mine, even under degraded exclusion")
	}
	mines := 0
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if board.Cells[y][x].IsMine() {
				mines++
			}
		}
	}
	if mines != 1 {
		t.Errorf("Expected 1 mine, got %d", mines)
	}
}

func TestPlaceMines_DegradedBoardStillDense(t *testing.T) {
	// 8 mines in 9 cells: every cell except the clicked one becomes a mine.
	board, err := NewBoard(3, 3, 8)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	click := Position{0, 0}
	if err := board.PlaceMines(rand.New(rand.NewSource(3)), click); err != nil {
		t.Fatalf("PlaceMines failed: %v", err)
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			isMine := board.Cells[y][x].IsMine()
			if x == click.X && y == click.Y {
				if isMine {
					t.Error("Clicked cell holds a mine")
				}
			} else if !isMine {
				t.Errorf("Expected mine at (%d,%d) on a saturated board", x, y)
			}
		}
	}
	if board.Cells[click.Y][click.X].HintCount != 3 {
		t.Errorf("Expected corner hint 3 on a saturated board, got %d", board.Cells[click.Y][click.X].HintCount)
	}
}

func TestPlaceMines_InsufficientSpace(t *testing.T) {
	board, err := NewBoard(2, 2, 3)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	// Force a mine count the degraded exclusion cannot satisfy.
	board.MineCount = 4

	err = board.PlaceMines(rand.New(rand.NewSource(1)), Position{0, 0})
	if !errors.Is(err, ErrInsufficientSpace) {
		t.Errorf("Expected ErrInsufficientSpace, got %v", err)
	}
}

func TestPlaceMines_OutOfBoundsClick(t *testing.T) {
	board, err := NewBoard(5, 5, 4)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	if err := board.PlaceMines(rand.New(rand.NewSource(1)), Position{5, 5}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
}

func TestPlaceMines_DeterministicUnderSeed(t *testing.T) {
	layout := func(seed int64) []Position {
		board, err := NewBoard(9, 9, 10)
		if err != nil {
			t.Fatalf("Failed to create board: %v", err)
		}
		if err := board.PlaceMines(rand.New(rand.NewSource(seed)), Position{4, 4}); err != nil {
			t.Fatalf("PlaceMines failed: %v", err)
		}
		var mines []Position
		for y := 0; y < board.Height; y++ {
			for x := 0; x < board.Width; x++ {
				if board.Cells[y][x].IsMine() {
					mines = append(mines, Position{x, y})
				}
			}
		}
		return mines
	}

	first := layout(99)
	second := layout(99)
	if len(first) != len(second) {
		t.Fatalf("Mine counts differ between identical seeds: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Layout differs at index %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestPopulateHints_MatchesBruteForce(t *testing.T) {
	board, err := NewBoard(12, 8, 20)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	if err := board.PlaceMines(rand.New(rand.NewSource(5)), Position{6, 4}); err != nil {
		t.Fatalf("PlaceMines failed: %v", err)
	}

	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			want := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= board.Width || ny < 0 || ny >= board.Height {
						continue
					}
					if board.Cells[ny][nx].IsMine() {
						want++
					}
				}
			}
			if got := board.Cells[y][x].HintCount; got != want {
				t.Errorf("Hint mismatch at (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}
