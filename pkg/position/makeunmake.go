package position

import (
	"errors"
	"fmt"

	"github.com/corvidlabs/chesscore/pkg/castling"
	"github.com/corvidlabs/chesscore/pkg/move"
	"github.com/corvidlabs/chesscore/pkg/piece"
	"github.com/corvidlabs/chesscore/pkg/square"
)

// ErrIllegalMove is wrapped into the error MakeLegal returns when asked to play a move
// that GenerateMoves would not itself produce.
var ErrIllegalMove = errors.New("move: illegal")

// Make applies m to the position in place. It does not check legality -- callers either
// pass a move taken from GenerateMoves, or use MakeLegal. Every call pushes a
// ReversibleMove record that Unmake consumes in LIFO order.
//
// isSearch distinguishes a speculative move played while walking a search tree from one
// actually committed to the game: on a half-move-clock reset, a non-search Make also
// clears the repetition table, since positions from before an irreversible move can never
// recur in the real game. A search Make leaves the table alone so sibling branches don't
// clobber each other's repetition counts.
func (p *Position) Make(m move.Move, isSearch bool) {
	from, to, flag := m.From(), m.To(), m.Flag()
	us := p.turn
	them := us.Opponent()
	moving := p.mailbox[from]

	rec := ReversibleMove{
		Move:           m,
		PriorEnPassant: p.ep,
		PriorCastling:  p.castling,
		PriorHalfMove:  p.halfmove,
		PriorFullMove:  p.fullmove,
		PriorHash:      p.hash,
	}

	var captured piece.Piece
	if flag == move.EnPassant {
		capturedSq := square.NewSquare(to.File(), from.Rank())
		captured = p.setSquare(capturedSq, piece.Empty)
		p.setSquare(to, moving)
	} else {
		captured = p.setSquare(to, moving)
	}
	p.setSquare(from, piece.Empty)
	rec.Captured = captured

	if flag.IsPromotion() {
		p.setSquare(to, piece.New(us, flag.PromotedType()))
	}

	if flag == move.Castle {
		rookFrom, rookTo := castlingRookSquares(to)
		rook := p.setSquare(rookFrom, piece.Empty)
		p.setSquare(rookTo, rook)
	}

	p.updateCastlingRights(from, to)

	p.ep = square.None
	if flag == move.PawnTwoUp {
		p.ep = square.Square((int(from) + int(to)) / 2)
	}

	irreversible := moving.Type() == piece.Pawn || captured != piece.Empty
	if irreversible {
		p.halfmove = 0
	} else {
		p.halfmove++
	}
	if us == piece.Black {
		p.fullmove++
	}

	p.turn = them
	p.hash ^= p.keys.Turn()

	if irreversible && !isSearch {
		p.rep.Clear()
	}
	rec.RepetitionCounted = p.rep.Increment(p.hash)

	p.history = append(p.history, rec)
}

// Unmake reverses the most recent Make. Panics if called with no history, which never
// happens when every Make is paired with exactly one Unmake.
func (p *Position) Unmake() {
	n := len(p.history)
	if n == 0 {
		panic("position: unmake with empty history")
	}
	rec := p.history[n-1]
	p.history = p.history[:n-1]

	if rec.RepetitionCounted {
		p.rep.Decrement(p.hash)
	}

	m := rec.Move
	from, to, flag := m.From(), m.To(), m.Flag()
	us := p.turn.Opponent()

	if flag == move.Castle {
		rookFrom, rookTo := castlingRookSquares(to)
		rook := p.setSquare(rookTo, piece.Empty)
		p.setSquare(rookFrom, rook)
	}

	var moverType piece.Type
	if flag.IsPromotion() {
		moverType = piece.Pawn
	} else {
		moverType = p.mailbox[to].Type()
	}
	mover := piece.New(us, moverType)

	if flag == move.EnPassant {
		p.setSquare(to, piece.Empty)
		capturedSq := square.NewSquare(to.File(), from.Rank())
		p.setSquare(capturedSq, rec.Captured)
	} else {
		p.setSquare(to, rec.Captured)
	}
	p.setSquare(from, mover)

	p.turn = us
	p.castling = rec.PriorCastling
	p.ep = rec.PriorEnPassant
	p.halfmove = rec.PriorHalfMove
	p.fullmove = rec.PriorFullMove
	p.hash = rec.PriorHash
}

// MakeLegal plays m if and only if it appears in GenerateMoves' output, returning
// ErrIllegalMove otherwise. Make is the move-search hot path; MakeLegal is for callers
// (UCI-style input, tests) that only hold an unverified UCI move string.
func (p *Position) MakeLegal(m move.Move) error {
	var list move.List
	p.GenerateMoves(&list, true)
	if !list.Contains(m) {
		return fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	p.Make(m, false)
	return nil
}

func castlingRookSquares(kingTo square.Square) (square.Square, square.Square) {
	switch kingTo {
	case square.G1:
		return square.H1, square.F1
	case square.C1:
		return square.A1, square.D1
	case square.G8:
		return square.H8, square.F8
	case square.C8:
		return square.A8, square.D8
	default:
		panic("position: not a castle destination")
	}
}

// updateCastlingRights clears whichever rights the move at from/to invalidates: a king
// move clears both of its own side's rights; a rook move or capture on a rook's home
// square clears that single right.
func (p *Position) updateCastlingRights(from, to square.Square) {
	switch from {
	case square.E1:
		p.clearCastlingRight(castling.WhiteKingSide)
		p.clearCastlingRight(castling.WhiteQueenSide)
	case square.E8:
		p.clearCastlingRight(castling.BlackKingSide)
		p.clearCastlingRight(castling.BlackQueenSide)
	}
	p.clearCastlingRightOnHomeSquare(from)
	p.clearCastlingRightOnHomeSquare(to)
}

func (p *Position) clearCastlingRightOnHomeSquare(sq square.Square) {
	switch sq {
	case square.H1:
		p.clearCastlingRight(castling.WhiteKingSide)
	case square.A1:
		p.clearCastlingRight(castling.WhiteQueenSide)
	case square.H8:
		p.clearCastlingRight(castling.BlackKingSide)
	case square.A8:
		p.clearCastlingRight(castling.BlackQueenSide)
	}
}

func (p *Position) clearCastlingRight(right castling.Rights) {
	if p.castling.Has(right) {
		p.hash ^= p.keys.Castling(right)
		p.castling &^= right
	}
}
