// Package position contains the mutable chess position: bitboards, mailbox, rights,
// counters, Zobrist hash, move history, and the legal-move generator and make/unmake
// that operate on them.
package position

import (
	"fmt"
	"strings"

	"github.com/corvidlabs/chesscore/pkg/attacks"
	"github.com/corvidlabs/chesscore/pkg/bitboard"
	"github.com/corvidlabs/chesscore/pkg/castling"
	"github.com/corvidlabs/chesscore/pkg/move"
	"github.com/corvidlabs/chesscore/pkg/piece"
	"github.com/corvidlabs/chesscore/pkg/repetition"
	"github.com/corvidlabs/chesscore/pkg/square"
	"github.com/corvidlabs/chesscore/pkg/zobrist"
)

// defaultKeys is the package-wide Zobrist key table. It is built once at init time and
// shared read-only.
var defaultKeys = zobrist.New()

// ReversibleMove carries everything Position.Unmake needs to exactly undo a prior Make:
// the move itself, whatever piece sat on its destination square (or piece.Empty), the
// position's prior en-passant target and castling rights, its prior half-move counter
// and Zobrist hash, and whether Make incremented the repetition table for the resulting
// position.
type ReversibleMove struct {
	Move              move.Move
	Captured          piece.Piece
	PriorEnPassant    square.Square
	PriorCastling     castling.Rights
	PriorHalfMove     uint8
	PriorFullMove     uint16
	PriorHash         zobrist.Hash
	RepetitionCounted bool
}

// Position is a chess position: twelve piece bitboards, two side bitboards, a 64-entry
// mailbox, side to move, castling rights, en-passant target, half-move/full-move
// counters, the current Zobrist hash, move history, and a repetition table. Not
// thread-safe; a Position is a single-threaded value mutated exclusively by Make/Unmake.
type Position struct {
	pieceBB [piece.NumColors * piece.NumTypes]bitboard.Board
	sideBB  [piece.NumColors]bitboard.Board
	mailbox [square.N]piece.Piece

	turn     piece.Color
	castling castling.Rights
	ep       square.Square // square.None if the previous move was not a pawn two-up
	halfmove uint8
	fullmove uint16

	keys *zobrist.Keys
	hash zobrist.Hash

	history []ReversibleMove
	rep     *repetition.Table
}

// New returns an empty position (no pieces, full castling rights, no en-passant target,
// white to move, move counters at their initial values). Callers populate it via
// SetPiece before use; pkg/fen is the usual entry point.
func New() *Position {
	p := &Position{
		castling: castling.All,
		ep:       square.None,
		fullmove: 1,
		keys:     defaultKeys,
		rep:      &repetition.Table{},
	}
	for i := range p.mailbox {
		p.mailbox[i] = piece.Empty
	}
	p.hash = p.computeHash()
	p.rep.Increment(p.hash)
	return p
}

// setSquare is the single primitive that mutates a square's occupant: it updates the
// mailbox, the piece/side bitboards, and the Zobrist hash together, and returns whatever
// piece previously occupied sq (piece.Empty if it was vacant). Every mutation in this
// package -- setup, Make, Unmake -- goes through this one function.
func (p *Position) setSquare(sq square.Square, pc piece.Piece) piece.Piece {
	prev := p.mailbox[sq]
	mask := bitboard.Mask(sq)

	if !prev.IsEmpty() {
		p.pieceBB[prev.Index()] &^= mask
		p.sideBB[prev.Color()] &^= mask
		p.hash ^= p.keys.Piece(prev.Color(), prev.Type(), sq)
	}
	if !pc.IsEmpty() {
		p.pieceBB[pc.Index()] |= mask
		p.sideBB[pc.Color()] |= mask
		p.hash ^= p.keys.Piece(pc.Color(), pc.Type(), sq)
	}
	p.mailbox[sq] = pc
	return prev
}

// SetPiece places pc on sq during position setup (e.g. by pkg/fen). Not for use once the
// position is in play; use Make for that.
func (p *Position) SetPiece(sq square.Square, pc piece.Piece) {
	p.setSquare(sq, pc)
}

// SetTurn sets the side to move during position setup.
func (p *Position) SetTurn(c piece.Color) {
	if p.turn != c {
		p.hash ^= p.keys.Turn()
		p.turn = c
	}
}

// SetCastling sets the castling rights during position setup.
func (p *Position) SetCastling(c castling.Rights) {
	p.hash ^= p.keys.CastlingAll(p.castling)
	p.castling = c
	p.hash ^= p.keys.CastlingAll(p.castling)
}

// SetEnPassant sets the en-passant target square during position setup.
func (p *Position) SetEnPassant(sq square.Square) {
	p.ep = sq
}

// SetHalfMoveClock sets the half-move (no-progress) counter during position setup.
func (p *Position) SetHalfMoveClock(n int) {
	p.halfmove = uint8(n)
}

// SetFullMoveNumber sets the full-move counter during position setup.
func (p *Position) SetFullMoveNumber(n int) {
	p.fullmove = uint16(n)
}

// ResetRepetitionTable reinitializes the repetition table to count only the current
// position once. Called after position setup (e.g. by pkg/fen.Decode) once all fields
// are in their final state.
func (p *Position) ResetRepetitionTable() {
	p.rep.Clear()
	p.rep.Increment(p.hash)
}

func (p *Position) Turn() piece.Color           { return p.turn }
func (p *Position) Castling() castling.Rights   { return p.castling }
func (p *Position) EnPassant() square.Square    { return p.ep }
func (p *Position) HalfMoveClock() int          { return int(p.halfmove) }
func (p *Position) FullMoveNumber() int         { return int(p.fullmove) }
func (p *Position) Hash() zobrist.Hash          { return p.hash }
func (p *Position) HistoryLen() int             { return len(p.history) }
func (p *Position) PieceAt(sq square.Square) piece.Piece { return p.mailbox[sq] }

// Bitboard returns the bitboard for one (color, type) pair.
func (p *Position) Bitboard(c piece.Color, t piece.Type) bitboard.Board {
	return p.pieceBB[piece.New(c, t).Index()]
}

// Occupied returns the bitboard of all pieces of color c.
func (p *Position) Occupied(c piece.Color) bitboard.Board {
	return p.sideBB[c]
}

// Occupancy returns the bitboard of every occupied square, either color.
func (p *Position) Occupancy() bitboard.Board {
	return p.sideBB[piece.White] | p.sideBB[piece.Black]
}

// KingSquare returns the square of c's king. Panics if c has no king, which New/pkg/fen
// never allow to persist past construction.
func (p *Position) KingSquare(c piece.Color) square.Square {
	bb := p.Bitboard(c, piece.King)
	if bb == 0 {
		panic("position: missing king")
	}
	return bb.LSB()
}

// sliders assembles the attacks.Sliders bundle for color c, used by the attack/check/pin
// mask builders in pkg/attacks.
func (p *Position) sliders(c piece.Color) attacks.Sliders {
	return attacks.Sliders{
		Pawns:      p.Bitboard(c, piece.Pawn),
		Knights:    p.Bitboard(c, piece.Knight),
		Diagonal:   p.Bitboard(c, piece.Bishop) | p.Bitboard(c, piece.Queen),
		Orthogonal: p.Bitboard(c, piece.Rook) | p.Bitboard(c, piece.Queen),
		King:       p.Bitboard(c, piece.King),
	}
}

// IsAttacked reports whether sq is attacked by the opposite color of c. Does not account
// for en passant (which is not a square-attack, but a capture rule).
func (p *Position) IsAttacked(c piece.Color, sq square.Square) bool {
	them := c.Opponent()
	mask := attacks.AttackMask(them, p.Occupancy(), p.sliders(them))
	return mask.IsSet(sq)
}

// IsChecked reports whether c's king is currently attacked.
func (p *Position) IsChecked(c piece.Color) bool {
	return p.IsAttacked(c, p.KingSquare(c))
}

// IsDraw reports whether the position is drawn by the fifty-move rule or by threefold
// repetition.
func (p *Position) IsDraw() bool {
	if p.halfmove >= 100 {
		return true
	}
	if count, ok := p.rep.Get(p.hash); ok && count >= 3 {
		return true
	}
	return false
}

// computeHash recomputes the Zobrist hash from scratch, for use by New
// and by parity tests; Make/Unmake maintain p.hash incrementally and never call this in
// the hot path.
func (p *Position) computeHash() zobrist.Hash {
	var h zobrist.Hash
	for sq := square.Zero; sq < square.N; sq++ {
		pc := p.mailbox[sq]
		if !pc.IsEmpty() {
			h ^= p.keys.Piece(pc.Color(), pc.Type(), sq)
		}
	}
	h ^= p.keys.CastlingAll(p.castling)
	if p.turn == piece.Black {
		h ^= p.keys.Turn()
	}
	return h
}

// VerifyHash reports whether the incrementally maintained hash equals the from-scratch
// hash. Intended for tests.
func (p *Position) VerifyHash() bool {
	return p.hash == p.computeHash()
}

// Clone returns a deep copy of the position, including its move history and repetition
// table. Useful for tests that want to compare before/after snapshots.
func (p *Position) Clone() *Position {
	c := *p
	rep := *p.rep
	c.rep = &rep
	c.history = append([]ReversibleMove(nil), p.history...)
	return &c
}

// Equal reports whether p and o have bit-identical mutable state: bitboards, mailbox,
// rights, en-passant, counters, hash, and history length. Used by reversibility tests.
func (p *Position) Equal(o *Position) bool {
	if p.pieceBB != o.pieceBB || p.sideBB != o.sideBB || p.mailbox != o.mailbox {
		return false
	}
	if p.turn != o.turn || p.castling != o.castling || p.ep != o.ep {
		return false
	}
	if p.halfmove != o.halfmove || p.fullmove != o.fullmove || p.hash != o.hash {
		return false
	}
	return len(p.history) == len(o.history)
}

func (p *Position) String() string {
	var sb strings.Builder
	for r := square.Rank8; ; r-- {
		for f := square.ZeroFile; f < square.NumFiles; f++ {
			sb.WriteString(p.mailbox[square.NewSquare(f, r)].String())
		}
		if r == square.Rank1 {
			break
		}
		sb.WriteRune('/')
	}
	ep := "-"
	if p.ep != square.None {
		ep = p.ep.String()
	}
	return fmt.Sprintf("%v %v %v(%v)", sb.String(), p.turn, p.castling, ep)
}
