package rules

import "github.com/vachizhov/negamax-chess/board"

func disableCastlingForRook(castling *CastlingRights, colour board.Colour, from board.Square) {
	var homeRank int8 = 7
	if colour == board.Black {
		homeRank = 0
	}
	if from.Rank != homeRank {
		return
	}
	switch {
	case from.File == 7:
		if colour == board.White {
			castling.WhiteKingSide = false
		} else {
			castling.BlackKingSide = false
		}
	case from.File == 0:
		if colour == board.White {
			castling.WhiteQueenSide = false
		} else {
			castling.BlackQueenSide = false
		}
	}
}

func disableCastlingForCapturedRook(castling *CastlingRights, pos board.Square) {
	switch {
	case pos.Rank == 7 && pos.File == 0:
		castling.WhiteQueenSide = false
	case pos.Rank == 7 && pos.File == 7:
		castling.WhiteKingSide = false
	case pos.Rank == 0 && pos.File == 0:
		castling.BlackQueenSide = false
	case pos.Rank == 0 && pos.File == 7:
		castling.BlackKingSide = false
	}
}

// Apply executes move against state and returns the resulting state. It is
// a pure function: state is left untouched. The mover must occupy
// move.Move.From — callers are expected to only Apply moves drawn from
// LegalMoves.
func Apply(state GameState, move CategorisedMove) GameState {
	var next = state
	var movingCell = state.Board.At(move.Move.From)
	if !movingCell.Present {
		panic("rules: invariant violation: attempted to move a non-existent piece")
	}
	var movingPiece = movingCell.Piece

	next.HasEnPassant = false

	var targetCell = state.Board.At(move.Move.To)
	if targetCell.Present && targetCell.Piece.Colour != movingPiece.Colour {
		disableCastlingForCapturedRook(&next.Castling, move.Move.To)
	}

	next.Board.MovePiece(move.Move.From, move.Move.To)

	if move.Category == Promotion {
		next.Board.Set(move.Move.To, board.Cell{Piece: board.Piece{Kind: move.Move.Promotion, Colour: movingPiece.Colour}, Present: true})
	}

	if move.Category == EnPassant {
		var captured = board.NewSquare(int(move.Move.To.File), int(move.Move.From.Rank))
		next.Board.Set(captured, board.Cell{})
	}

	if movingPiece.Kind == board.King {
		if movingPiece.Colour == board.White {
			next.Castling.WhiteKingSide = false
			next.Castling.WhiteQueenSide = false
		} else {
			next.Castling.BlackKingSide = false
			next.Castling.BlackQueenSide = false
		}
		var rank int8 = 7
		if movingPiece.Colour == board.Black {
			rank = 0
		}
		switch move.Category {
		case KingSideCastle:
			next.Board.MovePiece(board.NewSquare(7, int(rank)), board.NewSquare(5, int(rank)))
		case QueenSideCastle:
			next.Board.MovePiece(board.NewSquare(0, int(rank)), board.NewSquare(3, int(rank)))
		}
	}

	if movingPiece.Kind == board.Rook {
		disableCastlingForRook(&next.Castling, movingPiece.Colour, move.Move.From)
	}

	if move.Category == Capture || move.Category == EnPassant {
		disableCastlingForCapturedRook(&next.Castling, move.Move.To)
	}

	if move.Category == DoublePawnPush {
		var direction = -1
		if movingPiece.Colour == board.Black {
			direction = 1
		}
		next.EnPassantTarget = board.NewSquare(int(move.Move.From.File), int(move.Move.From.Rank)+direction)
		next.HasEnPassant = true
	}

	if movingPiece.Kind == board.Pawn || move.Category == Capture || move.Category == EnPassant {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if state.SideToMove == board.Black {
		next.FullmoveNumber++
	}

	next.SideToMove = state.SideToMove.Opposite()

	return next
}
