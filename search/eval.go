package search

import (
	"github.com/vachizhov/negamax-chess/board"
	"github.com/vachizhov/negamax-chess/rules"
)

const (
	pawnValue   = 100
	knightValue = 320
	bishopValue = 330
	rookValue   = 500
	queenValue  = 900
	kingValue   = 20000
)

func pieceValue(k board.Kind) int {
	switch k {
	case board.Pawn:
		return pawnValue
	case board.Knight:
		return knightValue
	case board.Bishop:
		return bishopValue
	case board.Rook:
		return rookValue
	case board.Queen:
		return queenValue
	case board.King:
		return kingValue
	default:
		return 0
	}
}

// Evaluate returns the material balance of state's board: positive when
// White holds more value, negative when Black does. It takes no account
// of whose turn it is to move.
func Evaluate(state rules.GameState) int {
	var total int
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			var cell = state.Board.At(board.NewSquare(file, rank))
			if !cell.Present {
				continue
			}
			var v = pieceValue(cell.Piece.Kind)
			if cell.Piece.Colour == board.White {
				total += v
			} else {
				total -= v
			}
		}
	}
	return total
}
