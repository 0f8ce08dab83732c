package rules

import "github.com/vachizhov/negamax-chess/board"

// LegalMoves returns every move legal for state.SideToMove: pseudo-legal
// moves (phase A) filtered to exclude any that would leave the mover's own
// king in check, with an extra attack check on castling's three relevant
// squares (phase B).
func LegalMoves(state GameState) []CategorisedMove {
	var pseudo = pseudoLegalMoves(&state)
	var legal = make([]CategorisedMove, 0, len(pseudo))

	var enemy = state.SideToMove.Opposite()
	var currentKingPos = findKing(&state.Board, state.SideToMove)

	for _, move := range pseudo {
		if move.Category == KingSideCastle || move.Category == QueenSideCastle {
			var rank int8 = 7
			if state.SideToMove == board.Black {
				rank = 0
			}
			var fSquare = board.NewSquare(5, int(rank))
			var dSquare = board.NewSquare(3, int(rank))

			if IsSquareAttacked(&state, currentKingPos, enemy) {
				continue
			}
			if move.Category == KingSideCastle {
				if IsSquareAttacked(&state, fSquare, enemy) {
					continue
				}
			} else {
				if IsSquareAttacked(&state, dSquare, enemy) {
					continue
				}
			}
		}

		var nextState = Apply(state, move)
		var kingPos = findKing(&nextState.Board, state.SideToMove)
		if !IsSquareAttacked(&nextState, kingPos, enemy) {
			legal = append(legal, move)
		}
	}

	return legal
}

// InCheck reports whether colour's king is attacked in state.
func InCheck(state GameState, colour board.Colour) bool {
	var kingPos = findKing(&state.Board, colour)
	return IsSquareAttacked(&state, kingPos, colour.Opposite())
}

// IsCheckmate reports whether the side to move is in check with no legal
// reply.
func IsCheckmate(state GameState) bool {
	if !InCheck(state, state.SideToMove) {
		return false
	}
	return len(LegalMoves(state)) == 0
}

// IsStalemate reports whether the side to move is not in check but has no
// legal move.
func IsStalemate(state GameState) bool {
	if InCheck(state, state.SideToMove) {
		return false
	}
	return len(LegalMoves(state)) == 0
}
