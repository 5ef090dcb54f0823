// Package perft implements the standard move-generator debugging count: the number of
// leaf nodes reachable from a position at a fixed depth. See
// https://www.chessprogramming.org/Perft_Results.
package perft

import (
	"github.com/corvidlabs/chesscore/pkg/move"
	"github.com/corvidlabs/chesscore/pkg/position"
)

// Count returns the number of leaf positions reachable from pos after exactly depth
// plies, making and unmaking every move in place rather than cloning the position.
func Count(pos *position.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	var list move.List
	pos.GenerateMoves(&list, true)

	if depth == 1 {
		return int64(list.Len())
	}

	var nodes int64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		pos.Make(m, true)
		nodes += Count(pos, depth-1)
		pos.Unmake()
	}
	return nodes
}

// Divide returns, for each legal root move, the perft count of the subtree it roots at
// depth-1. Used to compare against reference divide output when a perft count mismatches
// at some depth, to localize which root move generates the wrong subtree.
func Divide(pos *position.Position, depth int) map[move.Move]int64 {
	var list move.List
	pos.GenerateMoves(&list, true)

	out := make(map[move.Move]int64, list.Len())
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		pos.Make(m, true)
		out[m] = Count(pos, depth-1)
		pos.Unmake()
	}
	return out
}
