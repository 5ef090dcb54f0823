// Package square contains chess board square/rank/file arithmetic.
package square

import "fmt"

// Square is a board square, numbered a1=0, h1=7, a8=56, h8=63. 6 bits.
//
//	56 57 58 59 60 61 62 63   a8 b8 c8 d8 e8 f8 g8 h8
//	48 49 50 51 52 53 54 55   a7 b7 c7 d7 e7 f7 g7 h7
//	40 41 42 43 44 45 46 47   a6 b6 c6 d6 e6 f6 g6 h6
//	32 33 34 35 36 37 38 39   a5 b5 c5 d5 e5 f5 g5 h5
//	24 25 26 27 28 29 30 31   a4 b4 c4 d4 e4 f4 g4 h4
//	16 17 18 19 20 21 22 23   a3 b3 c3 d3 e3 f3 g3 h3
//	 8  9 10 11 12 13 14 15   a2 b2 c2 d2 e2 f2 g2 h2
//	 0  1  2  3  4  5  6  7   a1 b1 c1 d1 e1 f1 g1 h1
type Square int8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1

	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2

	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3

	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4

	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5

	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6

	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7

	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// None is the sentinel square used for "no en-passant target" and similar absent-square cases.
const None Square = -1

// Iteration helpers to enable "for sq := Zero; sq < N; sq++".
const (
	Zero Square = 0
	N    Square = 64
)

// NewSquare builds a square from a zero-based file (a=0..h=7) and rank (1=0..8=7).
func NewSquare(f File, r Rank) Square {
	return Square(r)<<3 | Square(f)
}

func (s Square) IsValid() bool {
	return s >= A1 && s <= H8
}

// Rank returns the square's rank, 0 (rank 1) through 7 (rank 8).
func (s Square) Rank() Rank {
	return Rank(s >> 3)
}

// File returns the square's file, 0 (file a) through 7 (file h).
func (s Square) File() File {
	return File(s & 7)
}

func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%v%v", s.File(), s.Rank())
}

// ParseSquare parses a square from a file/rank rune pair, such as ('e','4').
func ParseSquare(f, r rune) (Square, error) {
	file, ok := ParseFile(f)
	if !ok {
		return None, fmt.Errorf("invalid file: %q", f)
	}
	rank, ok := ParseRank(r)
	if !ok {
		return None, fmt.Errorf("invalid rank: %q", r)
	}
	return NewSquare(file, rank), nil
}

// ParseSquareStr parses a two-character square string, such as "e4".
func ParseSquareStr(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return None, fmt.Errorf("invalid square: %q", str)
	}
	return ParseSquare(runes[0], runes[1])
}

// CharsToSquare mirrors ParseSquare but returns -1 instead of an error, matching the
// chars_to_square convention used by UCI-adjacent tooling.
func CharsToSquare(fileChar, rankChar rune) Square {
	sq, err := ParseSquare(fileChar, rankChar)
	if err != nil {
		return None
	}
	return sq
}

// Rank is a board rank, Rank1=0 .. Rank8=7. 3 bits.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	ZeroRank Rank = 0
	NumRanks Rank = 8
)

func ParseRank(r rune) (Rank, bool) {
	if r < '1' || r > '8' {
		return 0, false
	}
	return Rank(r - '1'), true
}

func (r Rank) IsValid() bool {
	return r >= Rank1 && r <= Rank8
}

func (r Rank) String() string {
	if !r.IsValid() {
		return "?"
	}
	return string(rune('1') + rune(r))
}

// File is a board file, FileA=0 .. FileH=7. 3 bits.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	ZeroFile File = 0
	NumFiles File = 8
)

func ParseFile(r rune) (File, bool) {
	switch {
	case r >= 'a' && r <= 'h':
		return File(r - 'a'), true
	case r >= 'A' && r <= 'H':
		return File(r - 'A'), true
	default:
		return 0, false
	}
}

func (f File) IsValid() bool {
	return f >= FileA && f <= FileH
}

func (f File) String() string {
	if !f.IsValid() {
		return "?"
	}
	return string(rune('a') + rune(f))
}
