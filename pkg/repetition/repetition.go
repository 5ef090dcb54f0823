// Package repetition contains the fixed-size direct-mapped repetition table of
// fixed-size direct-mapped repetition counts.
package repetition

import "github.com/corvidlabs/chesscore/pkg/zobrist"

// size is chosen prime and close to 32KB of (hash uint64 + count uint8) entries:
// 32768 / 9 ~= 3640, rounded down to a prime for fewer systematic collisions. In memory
// each entry (with its used flag and padding) takes 16 bytes, so the table is about 58KB.
const size = 3637

type entry struct {
	hash  zobrist.Hash
	count uint8
	used  bool
}

// Table is a fixed-size direct-mapped repetition table keyed by Zobrist hash. It is
// intentionally lossy: on a slot collision between different hashes, the older entry is
// simply overwritten, which can produce a false negative (a real repetition silently
// forgotten) but never a false positive.
type Table struct {
	slots [size]entry
}

func slot(h zobrist.Hash) uint64 {
	return uint64(h) % size
}

// Increment records one more occurrence of hash, creating the slot (or overwriting a
// stale one) if necessary. Always returns true: the caller tracks, via the reversible
// move record, whether a matching Decrement should later undo this increment.
func (t *Table) Increment(h zobrist.Hash) bool {
	s := &t.slots[slot(h)]
	if s.used && s.hash == h {
		s.count++
	} else {
		s.hash = h
		s.count = 1
		s.used = true
	}
	return true
}

// IncrementExisting increments the count only if the slot already stores this exact
// hash, without creating a new entry. Used during search, where speculative lines should
// not evict real history. Returns whether it incremented.
func (t *Table) IncrementExisting(h zobrist.Hash) bool {
	s := &t.slots[slot(h)]
	if s.used && s.hash == h {
		s.count++
		return true
	}
	return false
}

// Decrement reverses a prior Increment, if the slot still stores this hash. Returns
// whether it did.
func (t *Table) Decrement(h zobrist.Hash) bool {
	s := &t.slots[slot(h)]
	if s.used && s.hash == h {
		s.count--
		if s.count == 0 {
			s.used = false
		}
		return true
	}
	return false
}

// Get returns the stored count for hash and true, or (0, false) if the slot does not
// currently store this hash.
func (t *Table) Get(h zobrist.Hash) (int, bool) {
	s := &t.slots[slot(h)]
	if s.used && s.hash == h {
		return int(s.count), true
	}
	return 0, false
}

// Clear empties the table. Called whenever an irreversible move makes earlier positions
// unreachable in normal play.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = entry{}
	}
}
