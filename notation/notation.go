// Package notation serialises squares and moves to and from the external
// coordinate format: a square is a file letter followed by a rank digit,
// and a move is a from-square, a to-square, and an optional promotion
// letter. Parsing is case-insensitive on both the file and the promotion
// letter.
package notation

import (
	"strings"

	"github.com/vachizhov/negamax-chess/board"
	"github.com/vachizhov/negamax-chess/rules"
)

const fileNames = "abcdefgh"

// FormatSquare renders sq as "<file a-h><rank 1-8>".
func FormatSquare(sq board.Square) string {
	if !sq.Valid() {
		return "-"
	}
	var file = fileNames[sq.File]
	var rank = '1' + byte(7-sq.Rank)
	return string(file) + string(rank)
}

// ParseSquare reads a two-character coordinate. It reports false on any
// malformed input rather than guessing.
func ParseSquare(s string) (board.Square, bool) {
	if len(s) != 2 {
		return board.Square{}, false
	}
	var file = strings.IndexByte(fileNames, lowerASCII(s[0]))
	if file < 0 {
		return board.Square{}, false
	}
	var digit = s[1]
	if digit < '1' || digit > '8' {
		return board.Square{}, false
	}
	var rank = 7 - int(digit-'1')
	var sq = board.NewSquare(file, rank)
	return sq, sq.Valid()
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

var promotionLetters = map[board.Kind]byte{
	board.Queen:  'q',
	board.Rook:   'r',
	board.Bishop: 'b',
	board.Knight: 'n',
}

var promotionKinds = map[byte]board.Kind{
	'q': board.Queen,
	'r': board.Rook,
	'b': board.Bishop,
	'n': board.Knight,
}

// FormatMove renders m as "<from><to>[promo]".
func FormatMove(m rules.Move) string {
	var out = FormatSquare(m.From) + FormatSquare(m.To)
	if m.IsPromote {
		out += string(promotionLetters[m.Promotion])
	}
	return out
}

// ParseMove reads "<from><to>[promo]" into a bare move intent. It performs
// no legality check — the result still has to be matched against
// legal_moves before being applied. It reports false on malformed input,
// per the MalformedCoordinate error kind.
func ParseMove(s string) (rules.Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return rules.Move{}, false
	}
	var from, okFrom = ParseSquare(s[0:2])
	if !okFrom {
		return rules.Move{}, false
	}
	var to, okTo = ParseSquare(s[2:4])
	if !okTo {
		return rules.Move{}, false
	}

	var move = rules.Move{From: from, To: to}
	if len(s) == 5 {
		var kind, ok = promotionKinds[lowerASCII(s[4])]
		if !ok {
			return rules.Move{}, false
		}
		move.Promotion = kind
		move.IsPromote = true
	}
	return move, true
}
