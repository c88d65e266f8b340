package engine

import (
	"fmt"
	"math/rand"
)

// PlaceMines seeds the board's mines, keeping the clicked cell and its whole
// neighborhood clear. If the board is too small for that exclusion the
// guarantee degrades to just the clicked cell; only if even that leaves too
// few cells does placement fail. Must be called exactly once per game, before
// any cell is revealed; the state machine guards this on the first open.
func (b *Board) PlaceMines(rng *rand.Rand, clicked Position) error {
	if !b.InBounds(clicked) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d board",
			ErrOutOfBounds, clicked.X, clicked.Y, b.Width, b.Height)
	}

	exclude := make(map[Position]bool, 9)
	exclude[clicked] = true
	for _, n := range b.Neighbors(clicked) {
		exclude[n] = true
	}

	eligible := b.eligibleCells(exclude)
	if len(eligible) < b.MineCount {
		// Not enough room for the neighborhood guarantee; keep only the
		// clicked cell safe.
		exclude = map[Position]bool{clicked: true}
		eligible = b.eligibleCells(exclude)
	}
	if len(eligible) < b.MineCount {
		return fmt.Errorf("%w: %d mines into %d eligible cells",
			ErrInsufficientSpace, b.MineCount, len(eligible))
	}

	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	for _, pos := range eligible[:b.MineCount] {
		b.Cells[pos.Y][pos.X].Content = ContentMine
	}

	b.populateHints()
	b.Populated = true
	return nil
}

// eligibleCells lists every position not in the exclusion set, in row-major
// order so shuffled placement is reproducible under a fixed seed.
func (b *Board) eligibleCells(exclude map[Position]bool) []Position {
	eligible := make([]Position, 0, b.Width*b.Height-len(exclude))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			pos := Position{X: x, Y: y}
			if !exclude[pos] {
				eligible = append(eligible, pos)
			}
		}
	}
	return eligible
}

// populateHints computes every cell's mined-neighbor count. Runs once per
// game, right after mine placement; hints never change afterwards.
func (b *Board) populateHints() {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			b.Cells[y][x].HintCount = b.minedNeighborCount(Position{X: x, Y: y})
		}
	}
}
