package search

import (
	"github.com/vachizhov/negamax-chess/board"
	"github.com/vachizhov/negamax-chess/rules"
)

// orderingPrefixSize is K: the number of highest-scoring moves worth
// sorting to the front. Beyond it, non-captures keep generation order.
const orderingPrefixSize = 8

type scoredMove struct {
	move  rules.CategorisedMove
	score int
}

// capturedKind reports the piece kind a move removes from the board, if
// any. Promotions are only captures when their destination is occupied;
// en passant always removes a pawn that isn't standing on the destination.
func capturedKind(state rules.GameState, m rules.CategorisedMove) (board.Kind, bool) {
	if m.Category == rules.EnPassant {
		return board.Pawn, true
	}
	var cell = state.Board.At(m.Move.To)
	if cell.Present {
		return cell.Piece.Kind, true
	}
	return board.NoKind, false
}

// scoreMove implements MVV-LVA: 10·value(victim) − value(attacker) for a
// capture, 0 for a quiet move.
func scoreMove(state rules.GameState, m rules.CategorisedMove) int {
	var victim, isCapture = capturedKind(state, m)
	if !isCapture {
		return 0
	}
	var attacker = state.Board.At(m.Move.From).Piece.Kind
	return 10*pieceValue(victim) - pieceValue(attacker)
}

// orderMoves scores moves and partially sorts the top orderingPrefixSize
// of them to the front by score, descending. It is a partial insertion
// sort: each of the first K slots is filled by selecting the
// highest-scoring remaining move and shifting the skipped moves down one
// place, which preserves their relative order — the generation order the
// rest of the list is never otherwise touched.
func orderMoves(state rules.GameState, moves []rules.CategorisedMove) []scoredMove {
	var scored = make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: scoreMove(state, m)}
	}

	var prefix = orderingPrefixSize
	if prefix > len(scored) {
		prefix = len(scored)
	}
	for i := 0; i < prefix; i++ {
		var best = i
		for j := i + 1; j < len(scored); j++ {
			if scored[j].score > scored[best].score {
				best = j
			}
		}
		if best != i {
			var picked = scored[best]
			copy(scored[i+1:best+1], scored[i:best])
			scored[i] = picked
		}
	}
	return scored
}
