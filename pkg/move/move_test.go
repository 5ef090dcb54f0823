package move_test

import (
	"testing"

	"github.com/corvidlabs/chesscore/pkg/move"
	"github.com/corvidlabs/chesscore/pkg/square"
	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	t.Run("pack and unpack", func(t *testing.T) {
		m := move.New(square.E2, square.E4, move.PawnTwoUp)
		assert.Equal(t, square.E2, m.From())
		assert.Equal(t, square.E4, m.To())
		assert.Equal(t, move.PawnTwoUp, m.Flag())
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "e2e4", move.New(square.E2, square.E4, move.None).String())
		assert.Equal(t, "a7a8q", move.New(square.A7, square.A8, move.PromoteQueen).String())
	})

	t.Run("parse uci", func(t *testing.T) {
		m, err := move.Parse("e7e8n")
		assert.NoError(t, err)
		assert.Equal(t, square.E7, m.From())
		assert.Equal(t, square.E8, m.To())
		assert.Equal(t, move.PromoteKnight, m.Flag())
	})

	t.Run("parse rejects malformed input", func(t *testing.T) {
		for _, s := range []string{"", "e2", "e2e4q5", "z9e4", "e2z9"} {
			_, err := move.Parse(s)
			assert.Error(t, err, s)
		}
	})

	t.Run("is valid uci", func(t *testing.T) {
		assert.True(t, move.IsValidUCI("e2e4"))
		assert.False(t, move.IsValidUCI("nonsense"))
	})
}

