// Package search implements a bounded-depth negamax search with
// alpha-beta pruning over the rules package's legal-move generator, and a
// material-only evaluation function.
package search

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/vachizhov/negamax-chess/board"
	"github.com/vachizhov/negamax-chess/rules"
)

const (
	negInfinity = math.MinInt32
	posInfinity = math.MaxInt32
)

// negamax scores state to depth plies from the perspective of side, the
// player about to move in state. The caller is responsible for side
// matching state.SideToMove.
func negamax(state rules.GameState, depth int, side board.Colour, alpha, beta int) int {
	var moves = rules.LegalMoves(state)
	if depth == 0 || len(moves) == 0 {
		var v = Evaluate(state)
		if side == board.White {
			return v
		}
		return -v
	}

	var ordered = orderMoves(state, moves)
	var best = negInfinity
	for _, sm := range ordered {
		var next = rules.Apply(state, sm.move)
		var v = -negamax(next, depth-1, side.Opposite(), -beta, -alpha)
		if v > best {
			best = v
		}
		if v > alpha {
			alpha = v
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// FindBestMove returns the move maximising negamax score for side at
// maxDepth plies, or reports false if side has no legal move. Each root
// move is evaluated in its own goroutine against its own GameState copy —
// GameState is a value type, so the goroutines share nothing and need no
// further synchronisation. Ties are broken by move-generation order: the
// earliest-generated move with the top score wins.
func FindBestMove(ctx context.Context, state rules.GameState, side board.Colour, maxDepth int) (rules.Move, bool) {
	var moves = rules.LegalMoves(state)
	if len(moves) == 0 {
		return rules.Move{}, false
	}

	var scores = make([]int, len(moves))
	var group, _ = errgroup.WithContext(ctx)
	for i := range moves {
		var i = i
		group.Go(func() error {
			var next = rules.Apply(state, moves[i])
			scores[i] = -negamax(next, maxDepth-1, side.Opposite(), negInfinity, posInfinity)
			return nil
		})
	}
	_ = group.Wait()

	var bestIdx = 0
	for i := 1; i < len(moves); i++ {
		if scores[i] > scores[bestIdx] {
			bestIdx = i
		}
	}
	return moves[bestIdx].Move, true
}
