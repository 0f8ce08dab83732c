package rules

import "github.com/vachizhov/negamax-chess/board"

// IsSquareAttacked reports whether any piece of byColour could move to or
// capture onto sq. It shares its geometry with pseudoLegalMoves but is
// direction-agnostic: pawn attacks use only the diagonal-forward offsets
// from the attacker's own colour, not the mover's.
func IsSquareAttacked(state *GameState, sq board.Square, byColour board.Colour) bool {
	var b = &state.Board

	var pawnRankOffset = -1
	if byColour == board.White {
		pawnRankOffset = 1
	}
	for _, deltaFile := range [2]int{-1, 1} {
		if candidate, ok := sq.Offset(deltaFile, pawnRankOffset); ok {
			var cell = b.At(candidate)
			if cell.Present && cell.Piece.Colour == byColour && cell.Piece.Kind == board.Pawn {
				return true
			}
		}
	}

	for _, off := range knightOffsets {
		candidate, ok := sq.Offset(off[0], off[1])
		if !ok {
			continue
		}
		var cell = b.At(candidate)
		if cell.Present && cell.Piece.Colour == byColour && cell.Piece.Kind == board.Knight {
			return true
		}
	}

	for _, d := range bishopDirs {
		var current = sq
		for {
			next, ok := current.Offset(d[0], d[1])
			if !ok {
				break
			}
			current = next
			var cell = b.At(current)
			if !cell.Present {
				continue
			}
			if cell.Piece.Colour == byColour && (cell.Piece.Kind == board.Bishop || cell.Piece.Kind == board.Queen) {
				return true
			}
			break
		}
	}

	for _, d := range rookDirs {
		var current = sq
		for {
			next, ok := current.Offset(d[0], d[1])
			if !ok {
				break
			}
			current = next
			var cell = b.At(current)
			if !cell.Present {
				continue
			}
			if cell.Piece.Colour == byColour && (cell.Piece.Kind == board.Rook || cell.Piece.Kind == board.Queen) {
				return true
			}
			break
		}
	}

	for _, d := range bishopDirs {
		if candidate, ok := sq.Offset(d[0], d[1]); ok {
			var cell = b.At(candidate)
			if cell.Present && cell.Piece.Colour == byColour && cell.Piece.Kind == board.King {
				return true
			}
		}
	}
	for _, d := range rookDirs {
		if candidate, ok := sq.Offset(d[0], d[1]); ok {
			var cell = b.At(candidate)
			if cell.Present && cell.Piece.Colour == byColour && cell.Piece.Kind == board.King {
				return true
			}
		}
	}

	return false
}

// findKing locates colour's king. It panics if none exists — an
// InvariantViolation per spec, signalling a corrupted GameState rather
// than a condition callers should handle.
func findKing(b *board.Board, colour board.Colour) board.Square {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			var sq = board.NewSquare(file, rank)
			var cell = b.At(sq)
			if cell.Present && cell.Piece.Kind == board.King && cell.Piece.Colour == colour {
				return sq
			}
		}
	}
	panic("rules: invariant violation: no king of colour " + colour.String() + " on board")
}
