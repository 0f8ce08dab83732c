// Package rules implements chess legality: pseudo-legal and legal move
// generation, move application, and check/checkmate/stalemate detection.
package rules

import "github.com/vachizhov/negamax-chess/board"

// CastlingRights tracks the four independent, monotonically clearable
// castling permissions.
type CastlingRights struct {
	WhiteKingSide, WhiteQueenSide bool
	BlackKingSide, BlackQueenSide bool
}

// GameState is the full position: board, side to move, castling rights, the
// en-passant target square (if any), and the two clocks. It is a value
// type; Apply returns a new GameState rather than mutating its receiver.
type GameState struct {
	Board           board.Board
	SideToMove      board.Colour
	Castling        CastlingRights
	EnPassantTarget board.Square
	HasEnPassant    bool
	HalfmoveClock   int
	FullmoveNumber  int
}

// Initial returns the standard chess starting position.
func Initial() GameState {
	return GameState{
		Board:          board.InitialSetup(),
		SideToMove:     board.White,
		Castling:       CastlingRights{true, true, true, true},
		HalfmoveClock:  0,
		FullmoveNumber: 1,
	}
}

// Category disambiguates the side effects a move's application must carry
// out.
type Category int8

const (
	Quiet Category = iota
	Capture
	DoublePawnPush
	KingSideCastle
	QueenSideCastle
	EnPassant
	Promotion
)

// Move is a move intent: a source and destination square, plus a
// promotion piece kind when the mover is a pawn reaching the last rank.
type Move struct {
	From, To  board.Square
	Promotion board.Kind
	IsPromote bool
}

// CategorisedMove is a Move annotated with the category that determines
// which side effects Apply performs for it. Four Promotion moves share the
// same (From,To) and differ only in Promotion; the promotion kind is part
// of a promoting move's identity.
type CategorisedMove struct {
	Move     Move
	Category Category
}
