package repetition_test

import (
	"testing"

	"github.com/corvidlabs/chesscore/pkg/repetition"
	"github.com/corvidlabs/chesscore/pkg/zobrist"
	"github.com/stretchr/testify/assert"
)

func TestIncrementAndGet(t *testing.T) {
	var tbl repetition.Table
	h := zobrist.Hash(12345)

	tbl.Increment(h)
	count, ok := tbl.Get(h)
	assert.True(t, ok)
	assert.Equal(t, 1, count)

	tbl.Increment(h)
	count, ok = tbl.Get(h)
	assert.True(t, ok)
	assert.Equal(t, 2, count)
}

func TestDecrementReversesIncrement(t *testing.T) {
	var tbl repetition.Table
	h := zobrist.Hash(999)

	tbl.Increment(h)
	tbl.Increment(h)
	assert.True(t, tbl.Decrement(h))

	count, ok := tbl.Get(h)
	assert.True(t, ok)
	assert.Equal(t, 1, count)

	assert.True(t, tbl.Decrement(h))
	_, ok = tbl.Get(h)
	assert.False(t, ok)
}

func TestIncrementExistingDoesNotCreate(t *testing.T) {
	var tbl repetition.Table
	h := zobrist.Hash(42)
	assert.False(t, tbl.IncrementExisting(h))
	_, ok := tbl.Get(h)
	assert.False(t, ok)

	tbl.Increment(h)
	assert.True(t, tbl.IncrementExisting(h))
	count, _ := tbl.Get(h)
	assert.Equal(t, 2, count)
}

func TestClearEmptiesTheTable(t *testing.T) {
	var tbl repetition.Table
	h := zobrist.Hash(7)
	tbl.Increment(h)
	tbl.Clear()
	_, ok := tbl.Get(h)
	assert.False(t, ok)
}

func TestCollisionOverwritesRatherThanErrors(t *testing.T) {
	var tbl repetition.Table
	// Two hashes landing in the same slot: the table is lossy by design, so the newer
	// entry simply evicts the older one instead of returning an error.
	a := zobrist.Hash(0)
	b := zobrist.Hash(3637) // same slot as a, modulo the table size
	tbl.Increment(a)
	tbl.Increment(b)

	_, ok := tbl.Get(a)
	assert.False(t, ok)
	count, ok := tbl.Get(b)
	assert.True(t, ok)
	assert.Equal(t, 1, count)
}
