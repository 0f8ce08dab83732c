package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/vachizhov/negamax-chess/board"
	"github.com/vachizhov/negamax-chess/game"
	"github.com/vachizhov/negamax-chess/notation"
	"github.com/vachizhov/negamax-chess/search"
)

var (
	flgMode     string
	flgDepth    int
	flgAIColour string
)

func main() {
	flag.StringVar(&flgMode, "mode", "hva", "game mode: hvh (human vs human), hva (human vs AI), avh (AI vs human), ava (AI vs AI)")
	flag.IntVar(&flgDepth, "depth", 3, "search depth for AI-controlled sides")
	flag.StringVar(&flgAIColour, "ai-colour", "black", "AI's colour in hva/avh modes: white or black")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags)
	logger.Println("negamax-chess", "mode", flgMode, "depth", flgDepth)

	var aiColour, err = parseColour(flgAIColour)
	if err != nil {
		logger.Fatal(err)
	}

	var g = game.New()
	var scanner = bufio.NewScanner(os.Stdin)

	for {
		printBoard(g)

		if g.IsCheckmate() {
			fmt.Printf("checkmate — %v wins\n", g.State().SideToMove.Opposite())
			return
		}
		if g.IsStalemate() {
			fmt.Println("stalemate — draw")
			return
		}
		if g.InCheck(g.State().SideToMove) {
			fmt.Printf("%v is in check\n", g.State().SideToMove)
		}

		if isAITurn(flgMode, aiColour, g.State().SideToMove) {
			playAIMove(logger, g, flgDepth)
			continue
		}

		fmt.Printf("%v to move> ", g.State().SideToMove)
		if !scanner.Scan() {
			return
		}
		playHumanMove(g, scanner.Text())
	}
}

func parseColour(s string) (board.Colour, error) {
	switch strings.ToLower(s) {
	case "white":
		return board.White, nil
	case "black":
		return board.Black, nil
	default:
		return board.White, fmt.Errorf("unknown -ai-colour %q, want white or black", s)
	}
}

// isAITurn reports whether side is controlled by the engine under mode.
func isAITurn(mode string, aiColour, side board.Colour) bool {
	switch mode {
	case "hvh":
		return false
	case "ava":
		return true
	case "hva":
		return side == aiColour
	case "avh":
		return side == aiColour
	default:
		return false
	}
}

func playAIMove(logger *log.Logger, g *game.Game, depth int) {
	var side = g.State().SideToMove
	var move, ok = search.FindBestMove(context.Background(), g.State(), side, depth)
	if !ok {
		return
	}
	logger.Println(side, "plays", notation.FormatMove(move))
	var promotion *board.Kind
	if move.IsPromote {
		promotion = &move.Promotion
	}
	if err := g.TryMove(move.From, move.To, promotion); err != nil {
		logger.Println("search proposed an unapplicable move:", err)
	}
}

func playHumanMove(g *game.Game, input string) {
	var m, ok = notation.ParseMove(strings.TrimSpace(input))
	if !ok {
		fmt.Println("malformed move, expected coordinates like e2e4 or a7a8q")
		return
	}
	var promotion *board.Kind
	if m.IsPromote {
		promotion = &m.Promotion
	}
	if err := g.TryMove(m.From, m.To, promotion); err != nil {
		fmt.Println("illegal move:", err)
	}
}

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

var chessSymbols = [2][7]string{
	{" ", whitePawn, whiteKnight, whiteBishop, whiteRook, whiteQueen, whiteKing},
	{" ", blackPawn, blackKnight, blackBishop, blackRook, blackQueen, blackKing},
}

func printBoard(g *game.Game) {
	var state = g.State()
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			var cell = state.Board.At(board.NewSquare(file, rank))
			if !cell.Present {
				fmt.Print(". ")
				continue
			}
			if cell.Piece.Colour == board.White {
				fmt.Print(chessSymbols[0][cell.Piece.Kind])
			} else {
				fmt.Print(chessSymbols[1][cell.Piece.Kind])
			}
			fmt.Print(" ")
		}
		fmt.Println()
	}
}
