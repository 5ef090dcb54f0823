package attacks

import (
	"github.com/corvidlabs/chesscore/pkg/bitboard"
	"github.com/corvidlabs/chesscore/pkg/square"
)

// magic holds the per-square perfect-hash parameters: a relevance mask,
// a magic multiplier, and a shift, such that ((occ & mask) * number) >> shift indexes
// the attack table for any blocker subset of mask.
type magic struct {
	mask   bitboard.Board
	number uint64
	shift  uint
	table  []bitboard.Board // sized 1<<popcount(mask), indexed by the magic index
}

func (mg *magic) index(occ bitboard.Board) int {
	blockers := uint64(occ & mg.mask)
	return int((blockers * mg.number) >> mg.shift)
}

func (mg *magic) attacks(occ bitboard.Board) bitboard.Board {
	return mg.table[mg.index(occ)]
}

var (
	rookMagics   [square.N]magic
	bishopMagics [square.N]magic
)

// magicSeeds gives each square's magic search its own deterministic starting seed, so
// table construction is bit-reproducible across runs.
var magicSeeds = [8]uint64{0x2d27, 0x4105, 0x3a9d, 0x2fef, 0x8023, 0xd6a5, 0x284c, 0x02d8}

func init() {
	for sq := square.Zero; sq < square.N; sq++ {
		findMagic(&rookMagics[sq], sq, rookRay)
		findMagic(&bishopMagics[sq], sq, bishopRay)
	}
}

// findMagic searches for a magic multiplier for sq that maps every subset of the ray's
// relevance mask to a collision-free index into mg.table, then fills the table. Index
// collisions between two blocker subsets are accepted only when they produce the same
// attack set.
func findMagic(mg *magic, sq square.Square, ray func(square.Square, bitboard.Board, bool) bitboard.Board) {
	mg.mask = ray(sq, bitboard.Empty, true)
	bits := mg.mask.PopCount()
	mg.shift = uint(64 - bits)
	mg.table = make([]bitboard.Board, 1<<bits)

	subsets, attacks := enumerateSubsets(sq, mg.mask, ray)

	rng := newPRNG(magicSeeds[sq.Rank()]^(uint64(sq)*0x9E3779B97F4A7C15) | 1)

search:
	for {
		candidate := rng.sparse()
		mg.number = candidate

		for i := range mg.table {
			mg.table[i] = 0
		}

		for i, occ := range subsets {
			idx := mg.index(occ)
			if mg.table[idx] != 0 && mg.table[idx] != attacks[i] {
				continue search
			}
			mg.table[idx] = attacks[i]
		}
		break
	}
}

// enumerateSubsets returns every subset of mask (via the Carry-Rippler trick) together
// with the true ray-walk attack set for that subset.
func enumerateSubsets(sq square.Square, mask bitboard.Board, ray func(square.Square, bitboard.Board, bool) bitboard.Board) ([]bitboard.Board, []bitboard.Board) {
	n := 1 << mask.PopCount()
	subsets := make([]bitboard.Board, 0, n)
	attacks := make([]bitboard.Board, 0, n)

	var occ bitboard.Board
	for {
		subsets = append(subsets, occ)
		attacks = append(attacks, ray(sq, occ, false))
		occ = (occ - mask) & mask
		if occ == 0 {
			break
		}
	}
	return subsets, attacks
}

// Rook returns the rook attack/move bitboard from sq given the full-board occupancy occ.
func Rook(sq square.Square, occ bitboard.Board) bitboard.Board {
	return rookMagics[sq].attacks(occ)
}

// Bishop returns the bishop attack/move bitboard from sq given the full-board occupancy occ.
func Bishop(sq square.Square, occ bitboard.Board) bitboard.Board {
	return bishopMagics[sq].attacks(occ)
}

// Queen returns the union of Rook and Bishop attacks from sq.
func Queen(sq square.Square, occ bitboard.Board) bitboard.Board {
	return Rook(sq, occ) | Bishop(sq, occ)
}
