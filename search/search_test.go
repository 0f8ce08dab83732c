package search

import (
	"context"
	"testing"

	"github.com/vachizhov/negamax-chess/board"
	"github.com/vachizhov/negamax-chess/rules"
)

func TestEvaluateInitialPositionIsBalanced(t *testing.T) {
	if got := Evaluate(rules.Initial()); got != 0 {
		t.Errorf("Evaluate(initial) = %d, want 0", got)
	}
}

func TestEvaluateFavoursMaterial(t *testing.T) {
	var state rules.GameState
	state.Board.Clear()
	state.Board.Set(board.NewSquare(4, 7), board.Cell{Piece: board.Piece{Kind: board.King, Colour: board.White}, Present: true})
	state.Board.Set(board.NewSquare(4, 0), board.Cell{Piece: board.Piece{Kind: board.King, Colour: board.Black}, Present: true})
	state.Board.Set(board.NewSquare(0, 7), board.Cell{Piece: board.Piece{Kind: board.Queen, Colour: board.White}, Present: true})

	if got := Evaluate(state); got != queenValue {
		t.Errorf("Evaluate = %d, want %d", got, queenValue)
	}
}

func TestOrderMovesPutsBestCaptureFirst(t *testing.T) {
	var state rules.GameState
	state.Board.Clear()
	state.Board.Set(board.NewSquare(4, 7), board.Cell{Piece: board.Piece{Kind: board.King, Colour: board.White}, Present: true})
	state.Board.Set(board.NewSquare(4, 0), board.Cell{Piece: board.Piece{Kind: board.King, Colour: board.Black}, Present: true})
	state.Board.Set(board.NewSquare(3, 4), board.Cell{Piece: board.Piece{Kind: board.Rook, Colour: board.White}, Present: true})
	state.Board.Set(board.NewSquare(3, 1), board.Cell{Piece: board.Piece{Kind: board.Pawn, Colour: board.Black}, Present: true})
	state.Board.Set(board.NewSquare(7, 4), board.Cell{Piece: board.Piece{Kind: board.Queen, Colour: board.Black}, Present: true})
	state.SideToMove = board.White

	var moves = rules.LegalMoves(state)
	var ordered = orderMoves(state, moves)

	if len(ordered) == 0 {
		t.Fatal("expected at least one move")
	}
	var top = ordered[0]
	var victim, isCapture = capturedKind(state, top.move)
	if !isCapture || victim != board.Queen {
		t.Errorf("top ordered move should be the rook's capture of the queen, got category=%v victim=%v capture=%v",
			top.move.Category, victim, isCapture)
	}
}

func TestScoreMoveZeroForQuietMove(t *testing.T) {
	var state = rules.Initial()
	var moves = rules.LegalMoves(state)
	for _, m := range moves {
		if m.Category == rules.Quiet {
			if got := scoreMove(state, m); got != 0 {
				t.Errorf("scoreMove(quiet) = %d, want 0", got)
			}
			return
		}
	}
	t.Fatal("expected at least one quiet move from the initial position")
}

func TestFindBestMoveReturnsLegalMove(t *testing.T) {
	var state = rules.Initial()
	var move, ok = FindBestMove(context.Background(), state, board.Black, 2)
	if !ok {
		t.Fatal("expected a move from the initial position")
	}

	var legal = rules.LegalMoves(state)
	var found bool
	for _, m := range legal {
		if m.Move.From == move.From && m.Move.To == move.To {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("FindBestMove returned %+v, which is not in the legal set", move)
	}
}

func TestFindBestMoveIsDeterministic(t *testing.T) {
	var state = rules.Initial()
	var first, ok1 = FindBestMove(context.Background(), state, board.White, 2)
	var second, ok2 = FindBestMove(context.Background(), state, board.White, 2)
	if !ok1 || !ok2 || first != second {
		t.Errorf("FindBestMove should be deterministic for a fixed state and depth: %+v vs %+v", first, second)
	}
}

func TestFindBestMoveNoneWithoutLegalMoves(t *testing.T) {
	var state rules.GameState
	state.Board.Clear()
	state.Board.Set(board.NewSquare(0, 7), board.Cell{Piece: board.Piece{Kind: board.King, Colour: board.White}, Present: true})
	state.Board.Set(board.NewSquare(2, 6), board.Cell{Piece: board.Piece{Kind: board.King, Colour: board.Black}, Present: true})
	state.Board.Set(board.NewSquare(1, 5), board.Cell{Piece: board.Piece{Kind: board.Queen, Colour: board.Black}, Present: true})
	state.SideToMove = board.White

	if _, ok := FindBestMove(context.Background(), state, board.White, 3); ok {
		t.Error("FindBestMove should report none for a stalemated side")
	}
}

func TestFindBestMoveTakesFreeQueen(t *testing.T) {
	var state rules.GameState
	state.Board.Clear()
	state.Board.Set(board.NewSquare(4, 7), board.Cell{Piece: board.Piece{Kind: board.King, Colour: board.White}, Present: true})
	state.Board.Set(board.NewSquare(7, 0), board.Cell{Piece: board.Piece{Kind: board.King, Colour: board.Black}, Present: true})
	state.Board.Set(board.NewSquare(3, 4), board.Cell{Piece: board.Piece{Kind: board.Rook, Colour: board.White}, Present: true})
	state.Board.Set(board.NewSquare(3, 1), board.Cell{Piece: board.Piece{Kind: board.Queen, Colour: board.Black}, Present: true})
	state.SideToMove = board.White

	var move, ok = FindBestMove(context.Background(), state, board.White, 2)
	if !ok {
		t.Fatal("expected a move")
	}
	if move.From != board.NewSquare(3, 4) || move.To != board.NewSquare(3, 1) {
		t.Errorf("expected the rook to capture the undefended queen, got %+v", move)
	}
}
