package move

// MaxMoves is the maximum number of legal moves possible in any reachable chess
// position (the position R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 achieves 218).
const MaxMoves = 218

// List is a fixed-capacity, non-allocating container for the legal-move-generation hot
// path: push is O(1), iteration is over a contiguous array, and there is no heap
// allocation anywhere in its lifetime beyond the one backing array.
type List struct {
	moves [MaxMoves]Move
	n     int
}

// Push appends a move. The caller is responsible for never exceeding MaxMoves; the
// generator's own move counting guarantees this.
func (l *List) Push(m Move) {
	l.moves[l.n] = m
	l.n++
}

func (l *List) Len() int {
	return l.n
}

func (l *List) At(i int) Move {
	return l.moves[i]
}

// Slice returns the moves as a plain slice backed by the list's own array. Valid until
// the list is reused.
func (l *List) Slice() []Move {
	return l.moves[:l.n]
}

// Contains reports whether m appears in the list (from/to/flag equality).
func (l *List) Contains(m Move) bool {
	for i := 0; i < l.n; i++ {
		if l.moves[i] == m {
			return true
		}
	}
	return false
}

// Reset clears the list for reuse without reallocating the backing array.
func (l *List) Reset() {
	l.n = 0
}
