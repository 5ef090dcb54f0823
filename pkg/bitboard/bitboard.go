// Package bitboard contains the 64-bit bitboard representation and the bit-twiddling
// utilities the rest of the engine builds on.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/corvidlabs/chesscore/pkg/square"
)

// Board is a bit-wise representation of the chess board: one bit per square, bit i set
// iff square i is occupied. Bit 0 = a1, bit 63 = h8.
type Board uint64

const Empty Board = 0

// Mask returns a bitboard with only the given square set.
func Mask(sq square.Square) Board {
	return Board(1) << uint(sq)
}

func (b Board) IsSet(sq square.Square) bool {
	return b&Mask(sq) != 0
}

func (b *Board) Set(sq square.Square) {
	*b |= Mask(sq)
}

func (b *Board) Clear(sq square.Square) {
	*b &^= Mask(sq)
}

// PopCount returns the number of set bits (popcount).
func (b Board) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the index of the least-significant set bit. Undefined for an empty board.
func (b Board) LSB() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB returns the least-significant set square and clears it from the bitboard.
func (b *Board) PopLSB() square.Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

func (b Board) String() string {
	var sb strings.Builder
	for r := square.Rank8; ; r-- {
		for f := square.ZeroFile; f < square.NumFiles; f++ {
			if b.IsSet(square.NewSquare(f, r)) {
				sb.WriteRune('X')
			} else {
				sb.WriteRune('-')
			}
		}
		if r == square.Rank1 {
			break
		}
		sb.WriteRune('/')
	}
	return sb.String()
}

// Rank returns the bitboard of the given rank.
func Rank(r square.Rank) Board {
	return Board(0xff) << (uint(r) << 3)
}

// File returns the bitboard of the given file.
func File(f square.File) Board {
	return Board(0x0101010101010101) << uint(f)
}

const (
	fileA = Board(0x0101010101010101)
	fileH = Board(0x8080808080808080)
)

// ShiftNorth shifts every bit one rank towards rank 8 (no wraparound).
func (b Board) ShiftNorth() Board { return b << 8 }

// ShiftSouth shifts every bit one rank towards rank 1 (no wraparound).
func (b Board) ShiftSouth() Board { return b >> 8 }

// ShiftEast shifts every bit one file towards file h, clipping file-h wraparound.
func (b Board) ShiftEast() Board { return (b &^ fileH) << 1 }

// ShiftWest shifts every bit one file towards file a, clipping file-a wraparound.
func (b Board) ShiftWest() Board { return (b &^ fileA) >> 1 }
