package core

// Snapshot captures the complete board state for determinism testing.
type Snapshot struct {
	Rows   int
	Cols   int
	Score  int
	Locks  int
	Cells  [][]bool // Locked cells only
	Active Piece
	Over   bool
}

// Snapshot returns a deep copy of the board state.
func (b *Board) Snapshot() Snapshot {
	cells := make([][]bool, b.rows)
	for r := range b.cells {
		cells[r] = make([]bool, b.cols)
		copy(cells[r], b.cells[r])
	}
	return Snapshot{
		Rows:   b.rows,
		Cols:   b.cols,
		Score:  b.score,
		Locks:  b.locks,
		Cells:  cells,
		Active: *b.active,
		Over:   b.IsGameOver(),
	}
}
