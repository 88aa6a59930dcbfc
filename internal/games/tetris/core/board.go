package core

import (
	"math/rand"
	"strings"
)

// Default board dimensions and spawn anchor.
const (
	DefaultRows = 20
	DefaultCols = 10
)

// DefaultSpawn is where every new piece appears, regardless of shape.
var DefaultSpawn = Pos{Row: 0, Col: 4}

// Dir is a movement direction for the active piece.
type Dir uint8

const (
	DirDown Dir = iota
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (row, col) change for one step in this direction.
func (d Dir) Delta() Offset {
	switch d {
	case DirDown:
		return Offset{Row: 1}
	case DirLeft:
		return Offset{Col: -1}
	case DirRight:
		return Offset{Col: 1}
	default:
		return Offset{}
	}
}

// Board is the playfield. cells holds locked blocks only; the falling piece
// is tracked separately in active and merged into cells at lock time.
type Board struct {
	rows, cols int
	cells      [][]bool
	active     *Piece
	spawn      Pos
	rng        *rand.Rand

	score  int
	locks  int
	placed map[Shape]int
}

// Option configures a Board at construction.
type Option func(*Board)

// WithSpawn overrides the spawn anchor.
func WithSpawn(p Pos) Option {
	return func(b *Board) {
		b.spawn = p
	}
}

// NewBoard creates an empty board and spawns its first piece.
// A nil rng falls back to a fixed seed so behavior stays reproducible.
func NewBoard(rows, cols int, rng *rand.Rand, opts ...Option) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	b := &Board{
		rows:   rows,
		cols:   cols,
		spawn:  DefaultSpawn,
		rng:    rng,
		placed: make(map[Shape]int),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.cells = make([][]bool, rows)
	for r := range b.cells {
		b.cells[r] = make([]bool, cols)
	}
	b.active = b.spawnPiece()
	return b
}

// spawnPiece draws a uniformly random shape at the spawn anchor, rotation 0.
func (b *Board) spawnPiece() *Piece {
	p := NewPiece(Shapes[b.rng.Intn(len(Shapes))])
	p.Anchor = b.spawn
	return p
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// Score returns the cumulative number of cleared lines.
func (b *Board) Score() int { return b.score }

// Locks returns how many pieces have been locked.
func (b *Board) Locks() int { return b.locks }

// Placed returns how many pieces of each shape have been locked.
func (b *Board) Placed() map[Shape]int {
	out := make(map[Shape]int, len(b.placed))
	for s, n := range b.placed {
		out[s] = n
	}
	return out
}

// Active returns a copy of the falling piece.
func (b *Board) Active() *Piece {
	return b.active.Clone()
}

// SetActive replaces the falling piece. Used to stage fixtures.
func (b *Board) SetActive(p *Piece) {
	b.active = p.Clone()
}

// Occupied reports whether a locked block sits at (row, col).
// Out-of-bounds cells report false.
func (b *Board) Occupied(row, col int) bool {
	if !b.inBounds(Pos{Row: row, Col: col}) {
		return false
	}
	return b.cells[row][col]
}

// Fill marks a cell as locked. Out-of-bounds cells are ignored.
func (b *Board) Fill(row, col int) {
	if b.inBounds(Pos{Row: row, Col: col}) {
		b.cells[row][col] = true
	}
}

// OccupiedCount returns the number of locked cells.
func (b *Board) OccupiedCount() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c {
				n++
			}
		}
	}
	return n
}

func (b *Board) inBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// IsValidPosition reports whether piece, anchored at pos, lies fully inside
// the board without overlapping a locked block.
func (b *Board) IsValidPosition(piece *Piece, pos Pos) bool {
	for _, c := range piece.CellsAt(pos) {
		if !b.inBounds(c) || b.cells[c.Row][c.Col] {
			return false
		}
	}
	return true
}

// Move shifts the active piece one step. It returns false and leaves the
// piece untouched if the target position is invalid.
func (b *Board) Move(d Dir) bool {
	next := b.active.Anchor.Add(d.Delta())
	if !b.IsValidPosition(b.active, next) {
		return false
	}
	b.active.Anchor = next
	return true
}

// Rotate advances the active piece's rotation in place. If the new state is
// invalid at the current anchor, the prior rotation index is restored.
func (b *Board) Rotate() bool {
	prev := b.active.Rotation
	b.active.Rotate()
	if !b.IsValidPosition(b.active, b.active.Anchor) {
		b.active.Rotation = prev
		return false
	}
	return true
}

// Lock merges the active piece into the grid, clears full rows and spawns a
// replacement. The current position is not validated; cells outside the
// board are dropped. Returns lines cleared.
func (b *Board) Lock() int {
	for _, c := range b.active.Cells() {
		if b.inBounds(c) {
			b.cells[c.Row][c.Col] = true
		}
	}
	b.locks++
	b.placed[b.active.Shape]++
	cleared := b.ClearLines()
	b.active = b.spawnPiece()
	return cleared
}

// ClearLines removes every full row, adds the count to the score and refills
// the top with empty rows. Surviving rows keep their relative order.
func (b *Board) ClearLines() int {
	kept := make([][]bool, 0, b.rows)
	for _, row := range b.cells {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}
	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	b.score += cleared
	fresh := make([][]bool, cleared, b.rows)
	for i := range fresh {
		fresh[i] = make([]bool, b.cols)
	}
	b.cells = append(fresh, kept...)
	return cleared
}

func rowFull(row []bool) bool {
	for _, c := range row {
		if !c {
			return false
		}
	}
	return true
}

// IsGameOver reports whether the active piece is invalid at its own anchor.
func (b *Board) IsGameOver() bool {
	return !b.IsValidPosition(b.active, b.active.Anchor)
}

// RenderSnapshot returns a fresh grid merging locked cells with the active
// piece. Active cells outside the board are skipped.
func (b *Board) RenderSnapshot() [][]bool {
	out := make([][]bool, b.rows)
	for r := range b.cells {
		out[r] = make([]bool, b.cols)
		copy(out[r], b.cells[r])
	}
	for _, c := range b.active.Cells() {
		if b.inBounds(c) {
			out[c.Row][c.Col] = true
		}
	}
	return out
}

// String dumps the board: '#' locked, '@' active, '.' empty.
func (b *Board) String() string {
	active := make(map[Pos]bool, 4)
	for _, c := range b.active.Cells() {
		active[c] = true
	}

	var sb strings.Builder
	sb.Grow((b.cols + 1) * b.rows)
	for r := range b.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.cols {
			switch {
			case active[Pos{Row: r, Col: c}]:
				sb.WriteByte('@')
			case b.cells[r][c]:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
