package attacks

import (
	"github.com/corvidlabs/chesscore/pkg/bitboard"
	"github.com/corvidlabs/chesscore/pkg/piece"
	"github.com/corvidlabs/chesscore/pkg/square"
)

// Pawn[color][sq] is the diagonal-forward capture squares only (no pushes).
var Pawn [piece.NumColors][square.N]bitboard.Board

// Knight[sq] is the L-shaped knight attack set from sq.
var Knight [square.N]bitboard.Board

// King[sq] is the eight adjacent squares from sq.
var King [square.N]bitboard.Board

// Between[from][to] is the set of squares strictly between from and to along the
// connecting ray, for any bishop- or rook-aligned pair; 0 for any other pair (including
// from == to).
var Between [square.N][square.N]bitboard.Board

func init() {
	for sq := square.Zero; sq < square.N; sq++ {
		Pawn[piece.White][sq] = pawnCaptures(sq, 1)
		Pawn[piece.Black][sq] = pawnCaptures(sq, -1)
		Knight[sq] = knightAttacksFrom(sq)
		King[sq] = kingAttacksFrom(sq)
	}
	for from := square.Zero; from < square.N; from++ {
		for to := square.Zero; to < square.N; to++ {
			Between[from][to] = between(from, to)
		}
	}
}

func pawnCaptures(sq square.Square, forward int) bitboard.Board {
	f, r := int(sq.File()), int(sq.Rank())+forward
	var b bitboard.Board
	if r < 0 || r > 7 {
		return b
	}
	if f-1 >= 0 {
		b.Set(square.NewSquare(square.File(f-1), square.Rank(r)))
	}
	if f+1 <= 7 {
		b.Set(square.NewSquare(square.File(f+1), square.Rank(r)))
	}
	return b
}

func knightAttacksFrom(sq square.Square) bitboard.Board {
	var b bitboard.Board
	f0, r0 := int(sq.File()), int(sq.Rank())
	offsets := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	for _, o := range offsets {
		f, r := f0+o[0], r0+o[1]
		if f >= 0 && f < 8 && r >= 0 && r < 8 {
			b.Set(square.NewSquare(square.File(f), square.Rank(r)))
		}
	}
	return b
}

func kingAttacksFrom(sq square.Square) bitboard.Board {
	var b bitboard.Board
	f0, r0 := int(sq.File()), int(sq.Rank())
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			f, r := f0+df, r0+dr
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				b.Set(square.NewSquare(square.File(f), square.Rank(r)))
			}
		}
	}
	return b
}

// between computes the open ray strictly between from and to, for rook- or
// bishop-aligned pairs only.
func between(from, to square.Square) bitboard.Board {
	if from == to {
		return bitboard.Empty
	}

	ff, fr := int(from.File()), int(from.Rank())
	tf, tr := int(to.File()), int(to.Rank())
	df, dr := sign(tf-ff), sign(tr-fr)

	aligned := (df == 0 || dr == 0) || abs(tf-ff) == abs(tr-fr)
	if !aligned {
		return bitboard.Empty
	}

	var b bitboard.Board
	f, r := ff+df, fr+dr
	for f != tf || r != tr {
		b.Set(square.NewSquare(square.File(f), square.Rank(r)))
		f += df
		r += dr
	}
	return b
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
