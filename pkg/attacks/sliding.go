package attacks

import (
	"github.com/corvidlabs/chesscore/pkg/bitboard"
	"github.com/corvidlabs/chesscore/pkg/square"
)

// direction is a (file, rank) step.
type direction struct {
	df, dr int
}

var rookDirections = [4]direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
var bishopDirections = [4]direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// rayWalk walks from sq in each direction, setting every square until (and including) the
// first occupied square, or the board edge. This is the naive "ray algorithm with blocker
// stops" a slider at the first blocker; it both labels the magic tables at init time and serves
// as the ground truth the magic-index lookup is checked against.
//
// When isMask is true, the last square reached along each ray is excluded (an occupant
// there can never add information, since there's no board beyond it to block) -- this
// produces the magic "relevance mask" rather than a real attack set.
func rayWalk(sq square.Square, occ bitboard.Board, dirs [4]direction, isMask bool) bitboard.Board {
	var attacks bitboard.Board

	f0, r0 := int(sq.File()), int(sq.Rank())
	for _, d := range dirs {
		f, r := f0+d.df, r0+d.dr
		for f >= 0 && f < 8 && r >= 0 && r < 8 {
			s := square.NewSquare(square.File(f), square.Rank(r))
			blocked := occ.IsSet(s)

			last := f+d.df < 0 || f+d.df >= 8 || r+d.dr < 0 || r+d.dr >= 8
			if isMask && last {
				break
			}
			attacks.Set(s)
			if blocked {
				break
			}
			f += d.df
			r += d.dr
		}
	}
	return attacks
}

func rookRay(sq square.Square, occ bitboard.Board, isMask bool) bitboard.Board {
	return rayWalk(sq, occ, rookDirections, isMask)
}

func bishopRay(sq square.Square, occ bitboard.Board, isMask bool) bitboard.Board {
	return rayWalk(sq, occ, bishopDirections, isMask)
}
