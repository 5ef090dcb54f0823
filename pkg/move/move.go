// Package move contains the packed 16-bit move encoding and a fixed-capacity move list
// suitable for the legal-move-generation hot path.
package move

import (
	"fmt"

	"github.com/corvidlabs/chesscore/pkg/piece"
	"github.com/corvidlabs/chesscore/pkg/square"
)

// Flag distinguishes the "special" moves that make/unmake must handle beyond a plain
// from->to relocation. 3 bits.
type Flag uint8

const (
	None Flag = iota
	EnPassant
	PawnTwoUp
	Castle
	PromoteKnight
	PromoteBishop
	PromoteRook
	PromoteQueen
)

// IsPromotion returns true iff the flag is one of the four promotion flags.
func (f Flag) IsPromotion() bool {
	return f >= PromoteKnight && f <= PromoteQueen
}

// PromotedType returns the piece type a promotion flag promotes to. Only valid when
// IsPromotion() is true.
func (f Flag) PromotedType() piece.Type {
	switch f {
	case PromoteKnight:
		return piece.Knight
	case PromoteBishop:
		return piece.Bishop
	case PromoteRook:
		return piece.Rook
	case PromoteQueen:
		return piece.Queen
	default:
		panic("move: not a promotion flag")
	}
}

func promotionFlag(t piece.Type) (Flag, bool) {
	switch t {
	case piece.Knight:
		return PromoteKnight, true
	case piece.Bishop:
		return PromoteBishop, true
	case piece.Rook:
		return PromoteRook, true
	case piece.Queen:
		return PromoteQueen, true
	default:
		return None, false
	}
}

// Move is a packed, not-necessarily-legal move: low 6 bits = from square, next 6 bits =
// to square, top 3 bits = flag. 16 bits in total.
type Move uint16

// Null is the zero move, used as a "no move" sentinel (e.g. by Parse on error).
const Null Move = 0

// New packs a from/to/flag triple into a Move.
func New(from, to square.Square, flag Flag) Move {
	return Move(uint16(from)&0x3f) | Move(uint16(to)&0x3f)<<6 | Move(flag)<<12
}

func (m Move) From() square.Square {
	return square.Square(m & 0x3f)
}

func (m Move) To() square.Square {
	return square.Square((m >> 6) & 0x3f)
}

func (m Move) Flag() Flag {
	return Flag((m >> 12) & 0x7)
}

func (m Move) String() string {
	if !m.Flag().IsPromotion() {
		return fmt.Sprintf("%v%v", m.From(), m.To())
	}
	return fmt.Sprintf("%v%v%v", m.From(), m.To(), m.Flag().PromotedType())
}

// Parse parses a move in pure algebraic (UCI) notation, such as "e2e4" or "a7a8q". The
// returned move's flag only reflects promotion; callers must reconcile en passant,
// pawn-two-up, and castle flags against the position the move is played in.
func Parse(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return Null, fmt.Errorf("invalid move: %q", str)
	}

	from, err := square.ParseSquare(runes[0], runes[1])
	if err != nil {
		return Null, fmt.Errorf("invalid from square in %q: %w", str, err)
	}
	to, err := square.ParseSquare(runes[2], runes[3])
	if err != nil {
		return Null, fmt.Errorf("invalid to square in %q: %w", str, err)
	}

	flag := None
	if len(runes) == 5 {
		pt, ok := piece.ParseType(runes[4])
		if !ok {
			return Null, fmt.Errorf("invalid promotion in %q", str)
		}
		flag, ok = promotionFlag(pt)
		if !ok {
			return Null, fmt.Errorf("invalid promotion piece in %q", str)
		}
	}

	return New(from, to, flag), nil
}

// IsValidUCI reports whether str has the shape of a UCI move string: 4 or 5 characters,
// with an optional trailing promotion letter restricted to {q,r,b,n}.
func IsValidUCI(str string) bool {
	_, err := Parse(str)
	return err == nil
}
