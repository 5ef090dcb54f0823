// masks.go implements the attack mask, check mask, and pin masks used by
// the legal-move generator. All three are pure functions of bitboards the caller
// assembles from a Position, so this package has no dependency on pkg/position.
package attacks

import (
	"github.com/corvidlabs/chesscore/pkg/bitboard"
	"github.com/corvidlabs/chesscore/pkg/piece"
	"github.com/corvidlabs/chesscore/pkg/square"
)

// Sliders bundles the four piece-type bitboards an attack/check/pin computation needs
// for one color: pawns, knights, the diagonal sliders (bishops|queens), and the
// orthogonal sliders (rooks|queens), plus the king.
type Sliders struct {
	Pawns, Knights, Diagonal, Orthogonal, King bitboard.Board
}

// AttackMask returns every square attacked by them, with slider rays computed against the
// given occupancy. The move generator passes the occupancy with the king of the opposite
// color removed (so the king cannot "hide" behind its own square when evading a slider
// check), and uses the result to exclude king destinations and validate castling paths.
func AttackMask(them piece.Color, occWithoutOurKing bitboard.Board, s Sliders) bitboard.Board {
	var mask bitboard.Board

	for bb := s.Pawns; bb != 0; {
		sq := bb.PopLSB()
		mask |= Pawn[them][sq]
	}
	for bb := s.Knights; bb != 0; {
		sq := bb.PopLSB()
		mask |= Knight[sq]
	}
	for bb := s.King; bb != 0; {
		sq := bb.PopLSB()
		mask |= King[sq]
	}
	for bb := s.Diagonal; bb != 0; {
		sq := bb.PopLSB()
		mask |= Bishop(sq, occWithoutOurKing)
	}
	for bb := s.Orthogonal; bb != 0; {
		sq := bb.PopLSB()
		mask |= Rook(sq, occWithoutOurKing)
	}
	return mask
}

// CheckMask returns (doubleCheck, mask) for the king of color us at kingSq, under attack
// from the enemy pieces in them, given the full-board occupancy occ. mask is all-ones
// when not in check, the checker's square (plus, for a slider, the ray to it) when in
// single check, and unused (returned as 0) on double check -- callers must then only
// generate king moves. The pawn check uses the standard symmetry trick: a them-pawn
// attacking kingSq is found the same way a pawn of color us attacking from kingSq would
// be (Pawn[us][kingSq]).
func CheckMask(us piece.Color, kingSq square.Square, occ bitboard.Board, them Sliders) (bool, bitboard.Board) {
	var mask bitboard.Board
	checkers := 0

	for bb := Pawn[us][kingSq] & them.Pawns; bb != 0; {
		sq := bb.PopLSB()
		checkers++
		mask |= bitboard.Mask(sq)
	}
	for bb := Knight[kingSq] & them.Knights; bb != 0; {
		sq := bb.PopLSB()
		checkers++
		mask |= bitboard.Mask(sq)
	}
	for bb := Bishop(kingSq, occ) & them.Diagonal; bb != 0; {
		sq := bb.PopLSB()
		checkers++
		mask |= bitboard.Mask(sq) | Between[kingSq][sq]
	}
	for bb := Rook(kingSq, occ) & them.Orthogonal; bb != 0; {
		sq := bb.PopLSB()
		checkers++
		mask |= bitboard.Mask(sq) | Between[kingSq][sq]
	}

	switch {
	case checkers >= 2:
		return true, 0
	case checkers == 0:
		return false, ^bitboard.Empty
	default:
		return false, mask
	}
}

// PinMasks returns the orthogonal and diagonal pin masks for the king at kingSq: using
// X-ray attacks (a slider attack from the king computed with friendly pieces removed
// from the occupancy, intersected with the matching enemy slider set), for each
// candidate pinner with exactly one friendly piece between it and the king, the pin mask
// gains Between[kingSq][pinner] | mask(pinner). A piece pinned orthogonally may move
// only within ortho; diagonally, only within diag.
func PinMasks(kingSq square.Square, friendly, occ bitboard.Board, enemyDiagonal, enemyOrthogonal bitboard.Board) (ortho, diag bitboard.Board) {
	xray := occ &^ friendly

	for bb := Bishop(kingSq, xray) & enemyDiagonal; bb != 0; {
		p := bb.PopLSB()
		between := Between[kingSq][p]
		if (between & friendly).PopCount() == 1 {
			diag |= between | bitboard.Mask(p)
		}
	}
	for bb := Rook(kingSq, xray) & enemyOrthogonal; bb != 0; {
		p := bb.PopLSB()
		between := Between[kingSq][p]
		if (between & friendly).PopCount() == 1 {
			ortho |= between | bitboard.Mask(p)
		}
	}
	return ortho, diag
}
