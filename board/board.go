package board

// Cell is an optional piece occupying a square.
type Cell struct {
	Piece   Piece
	Present bool
}

// Board is the 8x8 array of cells. It is a value type: copying a Board
// copies its contents, which is what the rule engine and search rely on
// for copy-on-try semantics.
type Board struct {
	cells [64]Cell
}

// At returns the cell at sq. Callers must pass a valid square.
func (b *Board) At(sq Square) Cell {
	return b.cells[sq.index()]
}

// Set places cell at sq.
func (b *Board) Set(sq Square, c Cell) {
	b.cells[sq.index()] = c
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return !b.cells[sq.index()].Present
}

// Clear removes every piece from the board.
func (b *Board) Clear() {
	b.cells = [64]Cell{}
}

// MovePiece is the rule engine's shallow move primitive: it overwrites the
// destination with the source cell and empties the source. It performs no
// legality check and is not meant for use outside a rules transaction.
func (b *Board) MovePiece(from, to Square) {
	b.cells[to.index()] = b.cells[from.index()]
	b.cells[from.index()] = Cell{}
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialSetup returns a Board in the standard chess starting position.
// Black occupies rank 0 (the 8th rank); white occupies rank 7 (the 1st).
func InitialSetup() Board {
	var b Board
	for file := 0; file < 8; file++ {
		b.Set(NewSquare(file, 0), Cell{Piece: Piece{Kind: backRank[file], Colour: Black}, Present: true})
		b.Set(NewSquare(file, 1), Cell{Piece: Piece{Kind: Pawn, Colour: Black}, Present: true})
		b.Set(NewSquare(file, 6), Cell{Piece: Piece{Kind: Pawn, Colour: White}, Present: true})
		b.Set(NewSquare(file, 7), Cell{Piece: Piece{Kind: backRank[file], Colour: White}, Present: true})
	}
	return b
}
