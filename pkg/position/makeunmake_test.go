package position_test

import (
	"testing"

	"github.com/corvidlabs/chesscore/pkg/castling"
	"github.com/corvidlabs/chesscore/pkg/fen"
	"github.com/corvidlabs/chesscore/pkg/move"
	"github.com/corvidlabs/chesscore/pkg/piece"
	"github.com/corvidlabs/chesscore/pkg/square"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reversibilityCheck plays every legal move from f one ply deep, asserting that making
// and immediately unmaking each one restores the position exactly.
func reversibilityCheck(t *testing.T, f string) {
	t.Helper()
	pos := mustDecode(t, f)
	before := pos.Clone()

	var list move.List
	pos.GenerateMoves(&list, true)
	require.Greater(t, list.Len(), 0)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		pos.Make(m, false)
		assert.True(t, pos.VerifyHash(), "hash parity broken by %v", m)
		pos.Unmake()
		assert.True(t, pos.Equal(before), "unmake(make(%v)) != identity", m)
	}
}

func TestReversibilityFromInitialPosition(t *testing.T) {
	reversibilityCheck(t, fen.Initial)
}

func TestReversibilityWithCastlingCapturesAndPromotions(t *testing.T) {
	for _, f := range []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"8/8/3p4/1Pp4r/1K3p2/6k1/4P1P1/1R6 w - c6 0 3",
	} {
		reversibilityCheck(t, f)
	}
}

func TestTwoPlyReversibility(t *testing.T) {
	pos := mustDecode(t, fen.Initial)
	before := pos.Clone()

	var list1 move.List
	pos.GenerateMoves(&list1, true)
	for i := 0; i < list1.Len(); i++ {
		m1 := list1.At(i)
		pos.Make(m1, false)

		var list2 move.List
		pos.GenerateMoves(&list2, true)
		for j := 0; j < list2.Len(); j++ {
			m2 := list2.At(j)
			pos.Make(m2, false)
			assert.True(t, pos.VerifyHash())
			pos.Unmake()
		}

		pos.Unmake()
		assert.True(t, pos.Equal(before))
	}
}

func TestEnPassantMakeClearsCapturedPawn(t *testing.T) {
	pos := mustDecode(t, "8/8/3p4/1Pp4r/1K3p2/6k1/4P1P1/1R6 w - c6 0 3")
	pos.Make(move.New(square.B5, square.C6, move.EnPassant), false)

	assert.True(t, pos.PieceAt(square.C5).IsEmpty())
	assert.Equal(t, piece.New(piece.White, piece.Pawn), pos.PieceAt(square.C6))
	assert.True(t, pos.PieceAt(square.B5).IsEmpty())
}

func TestCastleMakeMovesBothKingAndRook(t *testing.T) {
	pos := mustDecode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	pos.Make(move.New(square.E1, square.G1, move.Castle), false)

	assert.Equal(t, piece.New(piece.White, piece.King), pos.PieceAt(square.G1))
	assert.Equal(t, piece.New(piece.White, piece.Rook), pos.PieceAt(square.F1))
	assert.True(t, pos.PieceAt(square.E1).IsEmpty())
	assert.True(t, pos.PieceAt(square.H1).IsEmpty())
}

func TestPromotionMakeReplacesType(t *testing.T) {
	pos := mustDecode(t, "4k3/2P5/4K3/8/8/8/5p2/8 b - - 0 1")
	pos.Make(move.New(square.F2, square.F1, move.PromoteQueen), false)
	assert.Equal(t, piece.New(piece.Black, piece.Queen), pos.PieceAt(square.F1))
}

func TestCastlingRightsClearedByKingMove(t *testing.T) {
	pos := mustDecode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	pos.Make(move.New(square.E1, square.E2, move.None), false)
	assert.False(t, pos.Castling().Has(castling.WhiteKingSide))
	assert.False(t, pos.Castling().Has(castling.WhiteQueenSide))
	assert.True(t, pos.Castling().Has(castling.BlackKingSide))
	assert.True(t, pos.Castling().Has(castling.BlackQueenSide))
}

func TestCastlingRightClearedByRookMove(t *testing.T) {
	pos := mustDecode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	pos.Make(move.New(square.H1, square.G1, move.None), false)
	assert.False(t, pos.Castling().Has(castling.WhiteKingSide))
	assert.True(t, pos.Castling().Has(castling.WhiteQueenSide))
}

func TestHalfMoveClockResetsOnPawnMoveOrCapture(t *testing.T) {
	pos := mustDecode(t, fen.Initial)
	pos.SetHalfMoveClock(12)
	pos.Make(move.New(square.E2, square.E4, move.PawnTwoUp), false)
	assert.Equal(t, 0, pos.HalfMoveClock())
}

func TestHalfMoveClockIncrementsOnQuietMove(t *testing.T) {
	pos := mustDecode(t, fen.Initial)
	pos.Make(move.New(square.G1, square.F3, move.None), false)
	assert.Equal(t, 1, pos.HalfMoveClock())
}
