package core

// Pos is a board position. Row grows downward, Col grows rightward.
type Pos struct {
	Row, Col int
}

// Add returns the position displaced by an offset.
func (p Pos) Add(o Offset) Pos {
	return Pos{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// Piece is a live tetromino: a fixed shape, a rotation index and an anchor.
type Piece struct {
	Shape    Shape
	Rotation int
	Anchor   Pos
}

// NewPiece creates a piece in rotation 0 anchored at the origin.
func NewPiece(s Shape) *Piece {
	return &Piece{Shape: s}
}

// LayoutCount returns the number of rotation states of the piece's shape.
func (p *Piece) LayoutCount() int {
	return LayoutCount(p.Shape)
}

// Rotate advances to the next rotation state. Validity is the caller's concern.
func (p *Piece) Rotate() {
	p.Rotation = (p.Rotation + 1) % p.LayoutCount()
}

// Blocks returns the offsets of the current rotation state.
func (p *Piece) Blocks() Layout {
	return layoutAt(p.Shape, p.Rotation)
}

// CellsAt returns the absolute cells the piece would cover if anchored at pos.
func (p *Piece) CellsAt(pos Pos) [4]Pos {
	var cells [4]Pos
	for i, b := range p.Blocks() {
		cells[i] = pos.Add(b)
	}
	return cells
}

// Cells returns the absolute cells at the piece's own anchor.
func (p *Piece) Cells() [4]Pos {
	return p.CellsAt(p.Anchor)
}

// Clone returns an independent copy.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}
