package engine

// RevealOutcome reports which cells a reveal operation touched. Revealed
// lists newly revealed safe cells only; a detonated mine is reported
// separately so the caller can keep its win counter honest.
type RevealOutcome struct {
	Revealed  []Position
	Detonated *Position
}

func (r RevealOutcome) changed() bool {
	return len(r.Revealed) > 0 || r.Detonated != nil
}

// reveal opens the cell at pos, flood-filling outward when the cell has no
// adjacent mines. Flagged cells are never opened; Questioned cells are
// opened (their mark is discarded), matching how a cascade clears question
// marks it sweeps over. The caller is responsible for the direct-open guard
// that makes clicking a flagged or questioned cell a no-op.
//
// The fill uses an explicit stack with Revealed as the visited marker, so
// stack depth is bounded and no cell is queued twice.
func (b *Board) reveal(pos Position) RevealOutcome {
	var outcome RevealOutcome

	start := b.Cells[pos.Y][pos.X]
	if start.Visibility == Revealed || start.Visibility == Flagged {
		return outcome
	}

	if start.IsMine() {
		b.Cells[pos.Y][pos.X].Visibility = Revealed
		detonated := pos
		outcome.Detonated = &detonated
		return outcome
	}

	stack := []Position{pos}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := &b.Cells[cur.Y][cur.X]
		if cell.Visibility == Revealed || cell.Visibility == Flagged || cell.IsMine() {
			continue
		}

		cell.Visibility = Revealed
		outcome.Revealed = append(outcome.Revealed, cur)

		if cell.HintCount == 0 {
			stack = append(stack, b.Neighbors(cur)...)
		}
	}

	return outcome
}

// CanChord reports whether the cell at pos is chordable: revealed, numbered,
// and with exactly as many flagged neighbors as its hint count. It does not
// judge whether the flags are correct.
func (b *Board) CanChord(pos Position) (bool, error) {
	cell, err := b.At(pos)
	if err != nil {
		return false, err
	}
	if cell.Visibility != Revealed || cell.IsMine() || cell.HintCount == 0 {
		return false, nil
	}
	return b.flaggedNeighborCount(pos) == cell.HintCount, nil
}

// chord opens every unrevealed, unflagged neighbor of a chordable cell. A
// misplaced flag means a neighboring mine gets opened exactly as a direct
// open would. Returns an empty outcome when the cell is not chordable.
func (b *Board) chord(pos Position) RevealOutcome {
	var outcome RevealOutcome

	ok, err := b.CanChord(pos)
	if err != nil || !ok {
		return outcome
	}

	for _, n := range b.Neighbors(pos) {
		cell := b.Cells[n.Y][n.X]
		if cell.Visibility == Revealed || cell.Visibility == Flagged {
			continue
		}
		sub := b.reveal(n)
		outcome.Revealed = append(outcome.Revealed, sub.Revealed...)
		if sub.Detonated != nil && outcome.Detonated == nil {
			outcome.Detonated = sub.Detonated
		}
	}

	return outcome
}
