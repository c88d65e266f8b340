package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrOutOfBounds          = errors.New("coordinate out of bounds")
	ErrInsufficientSpace    = errors.New("insufficient space for mines")
)

// neighborOffsets enumerates the Moore neighborhood in a fixed clockwise
// order starting north. Flood-fill and chord traversal depend on this order
// being stable within a run.
var neighborOffsets = []Position{
	{0, -1},  // North
	{1, -1},  // North-East
	{1, 0},   // East
	{1, 1},   // South-East
	{0, 1},   // South
	{-1, 1},  // South-West
	{-1, 0},  // West
	{-1, -1}, // North-West
}

// Board represents a minefield grid. It owns all cells; mutation goes
// through its methods so hint counts stay consistent once mines exist.
type Board struct {
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	MineCount int      `json:"mine_count"`
	Cells     [][]Cell `json:"cells"`
	Populated bool     `json:"populated"`
}

// NewBoard creates an unpopulated board. Mines are placed lazily on the
// first open so the first click is never a mine.
func NewBoard(width, height, mineCount int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: board must be at least %dx%d, got %dx%d",
			ErrInvalidConfiguration, MinBoardDim, MinBoardDim, width, height)
	}
	if mineCount < 0 || mineCount >= width*height {
		return nil, fmt.Errorf("%w: mine count %d must be below %d cells",
			ErrInvalidConfiguration, mineCount, width*height)
	}

	cells := make([][]Cell, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			cells[y][x] = Cell{Content: ContentEmpty, Visibility: Hidden}
		}
	}

	return &Board{
		Width:     width,
		Height:    height,
		MineCount: mineCount,
		Cells:     cells,
	}, nil
}

// InBounds reports whether the position lies on the board
func (b *Board) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < b.Width && pos.Y >= 0 && pos.Y < b.Height
}

// At returns the cell at the given position
func (b *Board) At(pos Position) (Cell, error) {
	if !b.InBounds(pos) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) outside %dx%d board",
			ErrOutOfBounds, pos.X, pos.Y, b.Width, b.Height)
	}
	return b.Cells[pos.Y][pos.X], nil
}

// SetVisibility updates the display state of the cell at pos
func (b *Board) SetVisibility(pos Position, v Visibility) error {
	if !b.InBounds(pos) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d board",
			ErrOutOfBounds, pos.X, pos.Y, b.Width, b.Height)
	}
	b.Cells[pos.Y][pos.X].Visibility = v
	return nil
}

// Neighbors returns the up-to-8 in-bounds neighbors of pos, always in the
// same clockwise-from-north order.
func (b *Board) Neighbors(pos Position) []Position {
	neighbors := make([]Position, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := Position{X: pos.X + off.X, Y: pos.Y + off.Y}
		if b.InBounds(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// CountVisibility counts cells currently in the given display state
func (b *Board) CountVisibility(v Visibility) int {
	count := 0
	for _, row := range b.Cells {
		for _, cell := range row {
			if cell.Visibility == v {
				count++
			}
		}
	}
	return count
}

// SafeCellCount returns the number of non-mine cells on the board
func (b *Board) SafeCellCount() int {
	return b.Width*b.Height - b.MineCount
}

// flaggedNeighborCount counts Flagged neighbors of pos. Questioned cells do
// not count toward chord eligibility.
func (b *Board) flaggedNeighborCount(pos Position) int {
	count := 0
	for _, n := range b.Neighbors(pos) {
		if b.Cells[n.Y][n.X].Visibility == Flagged {
			count++
		}
	}
	return count
}

// minedNeighborCount counts mine-content neighbors of pos
func (b *Board) minedNeighborCount(pos Position) int {
	count := 0
	for _, n := range b.Neighbors(pos) {
		if b.Cells[n.Y][n.X].IsMine() {
			count++
		}
	}
	return count
}

// View projects the cell at pos for a rendering layer. Content is only
// disclosed for revealed cells.
func (b *Board) View(pos Position) (CellView, error) {
	cell, err := b.At(pos)
	if err != nil {
		return CellView{}, err
	}
	view := CellView{Visibility: cell.Visibility}
	if cell.Visibility == Revealed {
		view.HintCount = cell.HintCount
		view.Mine = cell.IsMine()
	}
	return view, nil
}
