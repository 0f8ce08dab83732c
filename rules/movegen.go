package rules

import "github.com/vachizhov/negamax-chess/board"

var promotionKinds = [4]board.Kind{board.Queen, board.Rook, board.Bishop, board.Knight}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}}

func isLastRank(colour board.Colour, rank int8) bool {
	if colour == board.White {
		return rank == 0
	}
	return rank == 7
}

// pseudoLegalMoves enumerates every move that satisfies piece-movement
// geometry for state.SideToMove, without checking whether it leaves that
// side's own king in check.
func pseudoLegalMoves(state *GameState) []CategorisedMove {
	var moves = make([]CategorisedMove, 0, 48)
	var b = &state.Board
	var side = state.SideToMove

	var push = func(from, to board.Square, category Category) {
		moves = append(moves, CategorisedMove{Move: Move{From: from, To: to}, Category: category})
	}
	var pushPromotions = func(from, to board.Square) {
		for _, k := range promotionKinds {
			moves = append(moves, CategorisedMove{
				Move:     Move{From: from, To: to, Promotion: k, IsPromote: true},
				Category: Promotion,
			})
		}
	}

	var addPawnMoves = func(pos board.Square, piece board.Piece) {
		var direction = -1
		var startRank int8 = 6
		if piece.Colour == board.Black {
			direction = 1
			startRank = 1
		}

		if forward, ok := pos.Offset(0, direction); ok && b.IsEmpty(forward) {
			if isLastRank(piece.Colour, forward.Rank) {
				pushPromotions(pos, forward)
			} else {
				push(pos, forward, Quiet)
			}

			if pos.Rank == startRank {
				if dbl, ok := pos.Offset(0, 2*direction); ok && b.IsEmpty(dbl) {
					push(pos, dbl, DoublePawnPush)
				}
			}
		}

		for _, deltaFile := range [2]int{-1, 1} {
			capture, ok := pos.Offset(deltaFile, direction)
			if !ok {
				continue
			}
			var cell = b.At(capture)
			if cell.Present && cell.Piece.Colour != piece.Colour {
				if isLastRank(piece.Colour, capture.Rank) {
					pushPromotions(pos, capture)
				} else {
					push(pos, capture, Capture)
				}
			} else if !cell.Present && state.HasEnPassant && capture == state.EnPassantTarget {
				push(pos, capture, EnPassant)
			}
		}
	}

	var addKnightMoves = func(pos board.Square, piece board.Piece) {
		for _, off := range knightOffsets {
			dst, ok := pos.Offset(off[0], off[1])
			if !ok {
				continue
			}
			var cell = b.At(dst)
			if !cell.Present {
				push(pos, dst, Quiet)
			} else if cell.Piece.Colour != piece.Colour {
				push(pos, dst, Capture)
			}
		}
	}

	var addSlidingMoves = func(pos board.Square, piece board.Piece, dirs [4][2]int) {
		for _, d := range dirs {
			var current = pos
			for {
				next, ok := current.Offset(d[0], d[1])
				if !ok {
					break
				}
				current = next
				var cell = b.At(current)
				if !cell.Present {
					push(pos, current, Quiet)
					continue
				}
				if cell.Piece.Colour != piece.Colour {
					push(pos, current, Capture)
				}
				break
			}
		}
	}

	var addKingMoves = func(pos board.Square, piece board.Piece) {
		for df := -1; df <= 1; df++ {
			for dr := -1; dr <= 1; dr++ {
				if df == 0 && dr == 0 {
					continue
				}
				dst, ok := pos.Offset(df, dr)
				if !ok {
					continue
				}
				var cell = b.At(dst)
				if !cell.Present {
					push(pos, dst, Quiet)
				} else if cell.Piece.Colour != piece.Colour {
					push(pos, dst, Capture)
				}
			}
		}

		var canKingSide, canQueenSide bool
		var rank int8 = 7
		if piece.Colour == board.White {
			canKingSide, canQueenSide = state.Castling.WhiteKingSide, state.Castling.WhiteQueenSide
		} else {
			canKingSide, canQueenSide = state.Castling.BlackKingSide, state.Castling.BlackQueenSide
			rank = 0
		}

		if canKingSide {
			var rookPos = board.NewSquare(7, int(rank))
			var rookCell = b.At(rookPos)
			if rookCell.Present && rookCell.Piece.Colour == piece.Colour && rookCell.Piece.Kind == board.Rook &&
				b.IsEmpty(board.NewSquare(5, int(rank))) && b.IsEmpty(board.NewSquare(6, int(rank))) {
				push(pos, board.NewSquare(6, int(rank)), KingSideCastle)
			}
		}
		if canQueenSide {
			var rookPos = board.NewSquare(0, int(rank))
			var rookCell = b.At(rookPos)
			if rookCell.Present && rookCell.Piece.Colour == piece.Colour && rookCell.Piece.Kind == board.Rook &&
				b.IsEmpty(board.NewSquare(1, int(rank))) && b.IsEmpty(board.NewSquare(2, int(rank))) && b.IsEmpty(board.NewSquare(3, int(rank))) {
				push(pos, board.NewSquare(2, int(rank)), QueenSideCastle)
			}
		}
	}

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			var pos = board.NewSquare(file, rank)
			var cell = b.At(pos)
			if !cell.Present || cell.Piece.Colour != side {
				continue
			}
			switch cell.Piece.Kind {
			case board.Pawn:
				addPawnMoves(pos, cell.Piece)
			case board.Knight:
				addKnightMoves(pos, cell.Piece)
			case board.Bishop:
				addSlidingMoves(pos, cell.Piece, bishopDirs)
			case board.Rook:
				addSlidingMoves(pos, cell.Piece, rookDirs)
			case board.Queen:
				addSlidingMoves(pos, cell.Piece, bishopDirs)
				addSlidingMoves(pos, cell.Piece, rookDirs)
			case board.King:
				addKingMoves(pos, cell.Piece)
			}
		}
	}

	return moves
}
