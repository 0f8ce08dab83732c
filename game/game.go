// Package game exposes the rule engine as a single stateful façade: the
// shape a driver actually wants, holding the current position and a
// legal-move cache instead of threading GameState through every call.
package game

import (
	"errors"

	"github.com/vachizhov/negamax-chess/board"
	"github.com/vachizhov/negamax-chess/rules"
)

// ErrIllegalMove is returned by TryMove when no legal move matches the
// requested (from,to[,promotion]).
var ErrIllegalMove = errors.New("game: illegal move")

// ErrPromotionRequired is returned by TryMove when (from,to) names a pawn
// reaching the last rank but no promotion kind was supplied.
var ErrPromotionRequired = errors.New("game: promotion required")

// Game holds a position and the legal moves available in it, recomputed
// after every successful TryMove or Reset.
type Game struct {
	state rules.GameState
	legal []rules.CategorisedMove
}

// New returns a Game at the standard starting position.
func New() *Game {
	var g = &Game{}
	g.Reset()
	return g
}

// Reset restores the standard starting position.
func (g *Game) Reset() {
	g.state = rules.Initial()
	g.legal = rules.LegalMoves(g.state)
}

// State returns the current position.
func (g *Game) State() rules.GameState {
	return g.state
}

// LegalMoves returns the moves available to the side to move in the
// current position. The slice is cached; callers must not mutate it.
func (g *Game) LegalMoves() []rules.CategorisedMove {
	return g.legal
}

// TryMove looks up a legal move from "from" to "to". If that move is a
// promotion, promotion must name the desired piece kind — a nil
// promotion fails with ErrPromotionRequired. A non-nil promotion on a
// non-promoting move is accepted and ignored, per PromotionUnexpected.
// On success the move is applied, the legal-move cache is recomputed, and
// TryMove returns nil. On failure, the game's state is unchanged.
func (g *Game) TryMove(from, to board.Square, promotion *board.Kind) error {
	for _, m := range g.legal {
		if m.Move.From != from || m.Move.To != to {
			continue
		}
		if m.Category == rules.Promotion {
			if promotion == nil {
				return ErrPromotionRequired
			}
			if m.Move.Promotion != *promotion {
				continue
			}
		}
		g.state = rules.Apply(g.state, m)
		g.legal = rules.LegalMoves(g.state)
		return nil
	}
	return ErrIllegalMove
}

// InCheck reports whether colour's king is currently attacked.
func (g *Game) InCheck(colour board.Colour) bool {
	return rules.InCheck(g.state, colour)
}

// IsCheckmate reports whether the side to move has no legal reply to a
// check.
func (g *Game) IsCheckmate() bool {
	return rules.IsCheckmate(g.state)
}

// IsStalemate reports whether the side to move has no legal move and is
// not in check.
func (g *Game) IsStalemate() bool {
	return rules.IsStalemate(g.state)
}
