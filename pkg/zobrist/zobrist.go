// Package zobrist contains the Zobrist key table and hashing used for position
// repetition detection and incremental hash maintenance.
package zobrist

import (
	"math/rand"

	"github.com/corvidlabs/chesscore/pkg/castling"
	"github.com/corvidlabs/chesscore/pkg/piece"
	"github.com/corvidlabs/chesscore/pkg/square"
)

// seed is fixed so hash values are bit-reproducible across runs.
const seed = 0xC0FFEE1234567

// Hash is a 64-bit XOR-based incremental position signature.
type Hash uint64

// Keys is the fixed table of 12*64 + 1 + 4 pseudo-random keys: one per (piece, square),
// one for side-to-move, and four for castling rights.
type Keys struct {
	piece    [piece.NumColors][piece.NumTypes][square.N]Hash
	turn     Hash
	castling [castling.NumRights]Hash
}

// New builds the key table from the fixed seed. Safe to call once at package init time;
// the result is immutable and may be shared across goroutines.
func New() *Keys {
	r := rand.New(rand.NewSource(seed))

	k := &Keys{}
	for c := piece.ZeroColor; c < piece.NumColors; c++ {
		for t := piece.Pawn; t < piece.NumTypes; t++ {
			for sq := square.Zero; sq < square.N; sq++ {
				k.piece[c][t][sq] = Hash(r.Uint64())
			}
		}
	}
	k.turn = Hash(r.Uint64())
	for i := 0; i < castling.NumRights; i++ {
		k.castling[i] = Hash(r.Uint64())
	}
	return k
}

// Piece returns the key for a piece of the given color and type sitting on sq.
func (k *Keys) Piece(c piece.Color, t piece.Type, sq square.Square) Hash {
	return k.piece[c][t][sq]
}

// Turn returns the side-to-move key, XORed into the hash iff it is black to move.
func (k *Keys) Turn() Hash {
	return k.turn
}

// Castling returns the key for a single castling right (one of castling.WhiteKingSide,
// etc., not a combined Rights value).
func (k *Keys) Castling(right castling.Rights) Hash {
	return k.castling[castling.Index(right)]
}

// CastlingAll returns the XOR of the keys of every set right in rights.
func (k *Keys) CastlingAll(rights castling.Rights) Hash {
	var h Hash
	for _, right := range []castling.Rights{castling.WhiteKingSide, castling.WhiteQueenSide, castling.BlackKingSide, castling.BlackQueenSide} {
		if rights.Has(right) {
			h ^= k.Castling(right)
		}
	}
	return h
}
