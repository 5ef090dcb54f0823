package position_test

import (
	"testing"

	"github.com/corvidlabs/chesscore/pkg/fen"
	"github.com/corvidlabs/chesscore/pkg/move"
	"github.com/corvidlabs/chesscore/pkg/square"
	"github.com/stretchr/testify/assert"
)

func legalMoves(t *testing.T, f string) move.List {
	t.Helper()
	pos := mustDecode(t, f)
	var list move.List
	pos.GenerateMoves(&list, true)
	return list
}

func TestInitialPositionHas20Moves(t *testing.T) {
	list := legalMoves(t, fen.Initial)
	assert.Equal(t, 20, list.Len())
}

func TestMoveUniqueness(t *testing.T) {
	list := legalMoves(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	seen := map[move.Move]bool{}
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		assert.False(t, seen[m], "duplicate move %v", m)
		seen[m] = true
	}
}

func TestGeneratedMovesLeaveKingSafe(t *testing.T) {
	positions := []string{
		fen.Initial,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, f := range positions {
		pos := mustDecode(t, f)
		var list move.List
		pos.GenerateMoves(&list, true)
		for i := 0; i < list.Len(); i++ {
			m := list.At(i)
			pos.Make(m, false)
			assert.False(t, pos.IsChecked(pos.Turn().Opponent()), "move %v leaves mover in check", m)
			pos.Unmake()
		}
	}
}

func TestDoubleCheckOnlyAllowsKingMoves(t *testing.T) {
	// White king on e1 is simultaneously checked by a rook on e8 (down the e-file) and a
	// knight on c2 (both attack e1): only king moves may appear.
	pos := mustDecode(t, "4r2k/8/8/8/8/8/2n5/4K3 w - - 0 1")
	var list move.List
	pos.GenerateMoves(&list, true)
	for i := 0; i < list.Len(); i++ {
		assert.Equal(t, square.E1, list.At(i).From())
	}
}

func TestPinnedRookCannotLeaveTheFile(t *testing.T) {
	// White rook on e2 is pinned to the white king on e1 by the black rook on e8.
	pos := mustDecode(t, "4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1")
	var list move.List
	pos.GenerateMoves(&list, true)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() == square.E2 {
			assert.Equal(t, square.FileE, m.To().File())
		}
	}
}

func TestCastlingThroughCheckIsIllegal(t *testing.T) {
	// Black rook on f8 attacks f1, which the white king must pass through to castle
	// kingside; that castle must not appear, but queenside remains legal.
	pos := mustDecode(t, "r4rk1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	var list move.List
	pos.GenerateMoves(&list, true)

	found := map[move.Move]bool{}
	for i := 0; i < list.Len(); i++ {
		found[list.At(i)] = true
	}
	assert.False(t, found[move.New(square.E1, square.G1, move.Castle)])
	assert.True(t, found[move.New(square.E1, square.C1, move.Castle)])
}

func TestCastlingWhenNotInCheckAndPathClear(t *testing.T) {
	pos := mustDecode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	var list move.List
	pos.GenerateMoves(&list, true)

	found := map[move.Move]bool{}
	for i := 0; i < list.Len(); i++ {
		found[list.At(i)] = true
	}
	assert.True(t, found[move.New(square.E1, square.G1, move.Castle)])
	assert.True(t, found[move.New(square.E1, square.C1, move.Castle)])
}

func TestPromotionProducesFourMoves(t *testing.T) {
	pos := mustDecode(t, "4k3/2P5/4K3/8/8/8/5p2/8 b - - 0 1")
	var list move.List
	pos.GenerateMoves(&list, true)

	flags := map[move.Flag]bool{}
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() == square.F2 && m.To() == square.F1 {
			flags[m.Flag()] = true
		}
	}
	assert.Len(t, flags, 4)
	assert.True(t, flags[move.PromoteQueen])
	assert.True(t, flags[move.PromoteRook])
	assert.True(t, flags[move.PromoteBishop])
	assert.True(t, flags[move.PromoteKnight])
}

func TestEnPassantCapturesCheckingPawn(t *testing.T) {
	pos := mustDecode(t, "8/8/3p4/1Pp4r/1K3p2/6k1/4P1P1/1R6 w - c6 0 3")
	var list move.List
	pos.GenerateMoves(&list, true)
	assert.True(t, list.Contains(move.New(square.B5, square.C6, move.EnPassant)))
}

func TestEnPassantForbiddenOnHorizontalDiscoveredCheck(t *testing.T) {
	pos := mustDecode(t, "8/8/8/1kqpP1K1/8/8/8/8 w - d6 0 1")
	var list move.List
	pos.GenerateMoves(&list, true)
	for i := 0; i < list.Len(); i++ {
		assert.NotEqual(t, move.EnPassant, list.At(i).Flag())
	}
}

func TestEnPassantCapturesPinnedPawnAndResolvesThePin(t *testing.T) {
	pos := mustDecode(t, "r1bqkbnr/ppp1pppp/8/2Pp4/8/8/PPPKPPPP/RNBQ1BNR w kq d6 0 4")
	var list move.List
	pos.GenerateMoves(&list, true)
	assert.True(t, list.Contains(move.New(square.C5, square.D6, move.EnPassant)))
}

func TestCapturesOnlyModeExcludesQuietMoves(t *testing.T) {
	// White to move: the bishop on b2 can capture the pawn on g7; the knight and king
	// both have only quiet moves available.
	pos := mustDecode(t, "4k3/6p1/8/8/8/8/1B6/4K1N1 w - - 0 1")
	var list move.List
	pos.GenerateMoves(&list, false)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		assert.False(t, pos.PieceAt(m.To()).IsEmpty(), "quiet move %v leaked into captures-only generation", m)
	}
	assert.True(t, list.Contains(move.New(square.B2, square.G7, move.None)))
}

func TestCapturesOnlyModeEmitsOnlyQueenPromotion(t *testing.T) {
	pos := mustDecode(t, "4k3/2P5/4K3/8/8/8/8/8 w - - 0 1")
	var list move.List
	pos.GenerateMoves(&list, false)

	assert.Equal(t, 1, list.Len())
	assert.True(t, list.Contains(move.New(square.C7, square.C8, move.PromoteQueen)))
}
