// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/corvidlabs/chesscore/pkg/castling"
	"github.com/corvidlabs/chesscore/pkg/piece"
	"github.com/corvidlabs/chesscore/pkg/position"
	"github.com/corvidlabs/chesscore/pkg/square"
)

// Initial is the FEN of the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrMissingKing is returned when a side has zero or more than one king.
var ErrMissingKing = errors.New("fen: each side must have exactly one king")

// ErrOpponentInCheck is returned when the side not to move is in check, which is
// impossible to reach legally: whoever just moved would have had to leave their own
// king, or left their opponent's, in check.
var ErrOpponentInCheck = errors.New("fen: side not to move is in check")

// Decode parses a six-field FEN record into a Position.
//
// Example: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(fen string) (*position.Position, error) {
	parts := strings.Fields(strings.TrimSpace(fen))
	if len(parts) != 6 {
		return nil, fmt.Errorf("fen: expected 6 fields, got %v: %q", len(parts), fen)
	}

	pos := position.New()

	if err := decodePlacement(pos, parts[0]); err != nil {
		return nil, fmt.Errorf("%w: %q", err, fen)
	}

	switch parts[1] {
	case "w":
		pos.SetTurn(piece.White)
	case "b":
		pos.SetTurn(piece.Black)
	default:
		return nil, fmt.Errorf("fen: invalid active color: %q", fen)
	}

	rights, ok := castling.Parse(parts[2])
	if !ok {
		return nil, fmt.Errorf("fen: invalid castling field: %q", fen)
	}
	pos.SetCastling(rights)

	ep := square.None
	if parts[3] != "-" {
		var err error
		ep, err = square.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid en passant field: %q: %w", fen, err)
		}
	}
	pos.SetEnPassant(ep)

	half, err := strconv.Atoi(parts[4])
	if err != nil || half < 0 {
		return nil, fmt.Errorf("fen: invalid halfmove clock: %q", fen)
	}
	pos.SetHalfMoveClock(half)

	full, err := strconv.Atoi(parts[5])
	if err != nil || full < 1 {
		return nil, fmt.Errorf("fen: invalid fullmove number: %q", fen)
	}
	pos.SetFullMoveNumber(full)

	pos.ResetRepetitionTable()

	if err := validate(pos); err != nil {
		return nil, err
	}
	return pos, nil
}

// decodePlacement parses field 1: eight '/'-separated ranks, rank 8 first, each
// listing its occupants from file a to file h.
func decodePlacement(pos *position.Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen: expected 8 ranks in placement, got %v", len(ranks))
	}

	for i, rankStr := range ranks {
		r := square.Rank8 - square.Rank(i)
		f := square.FileA
		for _, c := range rankStr {
			switch {
			case unicode.IsDigit(c):
				f += square.File(c - '0')
			case unicode.IsLetter(c):
				t, ok := piece.ParseType(c)
				if !ok {
					return fmt.Errorf("fen: invalid piece %q", c)
				}
				if f > square.FileH {
					return fmt.Errorf("fen: rank %v overflows 8 files", r+1)
				}
				color := piece.Black
				if unicode.IsUpper(c) {
					color = piece.White
				}
				pos.SetPiece(square.NewSquare(f, r), piece.New(color, t))
				f++
			default:
				return fmt.Errorf("fen: invalid character %q in placement", c)
			}
		}
		if f != square.NumFiles {
			return fmt.Errorf("fen: rank %v does not cover exactly 8 files", r+1)
		}
	}
	return nil
}

func validate(pos *position.Position) error {
	for _, c := range []piece.Color{piece.White, piece.Black} {
		if pos.Bitboard(c, piece.King).PopCount() != 1 {
			return ErrMissingKing
		}
	}
	if pos.IsChecked(pos.Turn().Opponent()) {
		return ErrOpponentInCheck
	}
	return nil
}

// Encode writes pos in FEN notation.
func Encode(pos *position.Position) string {
	var sb strings.Builder
	for r := square.Rank8; ; r-- {
		blanks := 0
		for f := square.ZeroFile; f < square.NumFiles; f++ {
			pc := pos.PieceAt(square.NewSquare(f, r))
			if pc.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(pc.String())
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r == square.Rank1 {
			break
		}
		sb.WriteRune('/')
	}

	turn := "w"
	if pos.Turn() == piece.Black {
		turn = "b"
	}

	ep := "-"
	if pos.EnPassant() != square.None {
		ep = pos.EnPassant().String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), turn, pos.Castling(), ep, pos.HalfMoveClock(), pos.FullMoveNumber())
}
