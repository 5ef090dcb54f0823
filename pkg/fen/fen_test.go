package fen_test

import (
	"testing"

	"github.com/corvidlabs/chesscore/pkg/fen"
	"github.com/corvidlabs/chesscore/pkg/piece"
	"github.com/corvidlabs/chesscore/pkg/square"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInitialPosition(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, piece.White, pos.Turn())
	assert.Equal(t, piece.New(piece.White, piece.Rook), pos.PieceAt(square.A1))
	assert.Equal(t, piece.New(piece.Black, piece.King), pos.PieceAt(square.E8))
	assert.True(t, pos.PieceAt(square.E4).IsEmpty())
	assert.Equal(t, square.None, pos.EnPassant())
	assert.Equal(t, 0, pos.HalfMoveClock())
	assert.Equal(t, 1, pos.FullMoveNumber())
	assert.True(t, pos.VerifyHash())
}

func TestEncodeRoundTrip(t *testing.T) {
	inputs := []string{
		fen.Initial,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r1bqkbnr/ppp1pppp/8/2Pp4/8/8/PPPKPPPP/RNBQ1BNR w kq d6 0 4",
	}
	for _, in := range inputs {
		pos, err := fen.Decode(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, fen.Encode(pos), in)
	}
}

func TestDecodeRejectsMalformedFields(t *testing.T) {
	tests := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",            // missing field
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",          // bad color
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq - 0 1",          // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",        // bad en passant
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1",           // short rank
	}
	for _, in := range tests {
		_, err := fen.Decode(in)
		assert.Error(t, err, in)
	}
}

func TestDecodeRejectsMissingKing(t *testing.T) {
	_, err := fen.Decode("8/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.ErrorIs(t, err, fen.ErrMissingKing)
}

func TestDecodeRejectsOpponentInCheck(t *testing.T) {
	// White to move, but black's king sits in check from a white rook down the open
	// e-file: an illegal position, since black could not have left their own king in check.
	_, err := fen.Decode("4k3/8/8/8/8/8/8/K3R3 w - - 0 1")
	assert.ErrorIs(t, err, fen.ErrOpponentInCheck)
}
