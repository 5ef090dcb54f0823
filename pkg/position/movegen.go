package position

import (
	"github.com/corvidlabs/chesscore/pkg/attacks"
	"github.com/corvidlabs/chesscore/pkg/bitboard"
	"github.com/corvidlabs/chesscore/pkg/castling"
	"github.com/corvidlabs/chesscore/pkg/move"
	"github.com/corvidlabs/chesscore/pkg/piece"
	"github.com/corvidlabs/chesscore/pkg/square"
)

// GenerateMoves fills list with every fully legal move in the position: pins and checks
// are resolved up front via pkg/attacks, so every pushed move is legal by construction and
// the caller never filters the result. When quiets is false, only captures and
// promote-to-queen are emitted -- the feed for a quiescence search. list is reset first;
// the caller owns its backing array, so generation allocates nothing.
func (p *Position) GenerateMoves(list *move.List, quiets bool) {
	list.Reset()

	us := p.turn
	them := us.Opponent()
	occ := p.Occupancy()
	friendly := p.Occupied(us)
	enemy := p.Occupied(them)
	kingSq := p.KingSquare(us)

	theirSliders := p.sliders(them)
	occWithoutKing := occ &^ bitboard.Mask(kingSq)
	attacked := attacks.AttackMask(them, occWithoutKing, theirSliders)

	p.generateKingMoves(list, kingSq, friendly, enemy, attacked, quiets)

	doubleCheck, checkMask := attacks.CheckMask(us, kingSq, occ, theirSliders)
	if doubleCheck {
		return
	}
	notInCheck := checkMask == ^bitboard.Empty

	if notInCheck && quiets {
		p.generateCastling(list, us, occ, attacked)
	}

	enemyDiagonal := p.Bitboard(them, piece.Bishop) | p.Bitboard(them, piece.Queen)
	enemyOrthogonal := p.Bitboard(them, piece.Rook) | p.Bitboard(them, piece.Queen)
	ortho, diag := attacks.PinMasks(kingSq, friendly, occ, enemyDiagonal, enemyOrthogonal)

	p.generateKnightMoves(list, us, friendly, enemy, checkMask, ortho, diag, quiets)
	p.generateSliderMoves(list, us, piece.Bishop, occ, friendly, enemy, checkMask, ortho, diag, quiets)
	p.generateSliderMoves(list, us, piece.Rook, occ, friendly, enemy, checkMask, ortho, diag, quiets)
	p.generateSliderMoves(list, us, piece.Queen, occ, friendly, enemy, checkMask, ortho, diag, quiets)
	p.generatePawnMoves(list, us, occ, enemy, checkMask, ortho, diag, kingSq, quiets)
}

// pinAllowed returns the squares a piece pinned along ortho or diag (or neither) may move
// to: the pin line itself, or everywhere if the piece is not pinned at all. ortho and diag
// may each hold two pin lines through the king; only the one through sq is returned.
func pinAllowed(sq square.Square, ortho, diag bitboard.Board) bitboard.Board {
	switch {
	case ortho.IsSet(sq):
		return ortho & (attacks.Rook(sq, bitboard.Empty) | bitboard.Mask(sq))
	case diag.IsSet(sq):
		return diag & (attacks.Bishop(sq, bitboard.Empty) | bitboard.Mask(sq))
	default:
		return ^bitboard.Empty
	}
}

func (p *Position) generateKingMoves(list *move.List, kingSq square.Square, friendly, enemy, attacked bitboard.Board, quiets bool) {
	targets := attacks.King[kingSq] &^ friendly &^ attacked
	if !quiets {
		targets &= enemy
	}
	for targets != 0 {
		to := targets.PopLSB()
		list.Push(move.New(kingSq, to, move.None))
	}
}

func (p *Position) generateKnightMoves(list *move.List, us piece.Color, friendly, enemy, checkMask, ortho, diag bitboard.Board, quiets bool) {
	knights := p.Bitboard(us, piece.Knight)
	for knights != 0 {
		from := knights.PopLSB()
		allowed := pinAllowed(from, ortho, diag)
		targets := attacks.Knight[from] &^ friendly & checkMask & allowed
		if !quiets {
			targets &= enemy
		}
		for targets != 0 {
			to := targets.PopLSB()
			list.Push(move.New(from, to, move.None))
		}
	}
}

func (p *Position) generateSliderMoves(list *move.List, us piece.Color, t piece.Type, occ, friendly, enemy, checkMask, ortho, diag bitboard.Board, quiets bool) {
	pieces := p.Bitboard(us, t)
	for pieces != 0 {
		from := pieces.PopLSB()
		allowed := pinAllowed(from, ortho, diag)

		var raw bitboard.Board
		switch t {
		case piece.Bishop:
			raw = attacks.Bishop(from, occ)
		case piece.Rook:
			raw = attacks.Rook(from, occ)
		case piece.Queen:
			raw = attacks.Queen(from, occ)
		}

		targets := raw &^ friendly & checkMask & allowed
		if !quiets {
			targets &= enemy
		}
		for targets != 0 {
			to := targets.PopLSB()
			list.Push(move.New(from, to, move.None))
		}
	}
}

// pushPawnMove emits the move from->to, expanding it into all four promotion flags when
// to lands on promotionRank. With quiets false, only the queen promotion is emitted,
// matching the capture-only feed used by a quiescence search.
func (p *Position) pushPawnMove(list *move.List, from, to square.Square, promotionRank square.Rank, flag move.Flag, quiets bool) {
	if to.Rank() == promotionRank {
		list.Push(move.New(from, to, move.PromoteQueen))
		if quiets {
			list.Push(move.New(from, to, move.PromoteRook))
			list.Push(move.New(from, to, move.PromoteBishop))
			list.Push(move.New(from, to, move.PromoteKnight))
		}
		return
	}
	list.Push(move.New(from, to, flag))
}

func (p *Position) generatePawnMoves(list *move.List, us piece.Color, occ, enemy, checkMask, ortho, diag bitboard.Board, kingSq square.Square, quiets bool) {
	them := us.Opponent()
	pawns := p.Bitboard(us, piece.Pawn)

	var forward int
	var startRank, promotionRank square.Rank
	if us == piece.White {
		forward, startRank, promotionRank = 8, square.Rank2, square.Rank8
	} else {
		forward, startRank, promotionRank = -8, square.Rank7, square.Rank1
	}

	for pawns != 0 {
		from := pawns.PopLSB()
		allowed := pinAllowed(from, ortho, diag)

		to := square.Square(int(from) + forward)
		if to.IsValid() && !occ.IsSet(to) {
			if (quiets || to.Rank() == promotionRank) && allowed.IsSet(to) && checkMask.IsSet(to) {
				p.pushPawnMove(list, from, to, promotionRank, move.None, quiets)
			}
			if quiets && from.Rank() == startRank {
				to2 := square.Square(int(to) + forward)
				if !occ.IsSet(to2) && allowed.IsSet(to2) && checkMask.IsSet(to2) {
					list.Push(move.New(from, to2, move.PawnTwoUp))
				}
			}
		}

		captures := attacks.Pawn[us][from] & enemy
		for captures != 0 {
			to := captures.PopLSB()
			if allowed.IsSet(to) && checkMask.IsSet(to) {
				p.pushPawnMove(list, from, to, promotionRank, move.None, quiets)
			}
		}

		if p.ep != square.None && attacks.Pawn[us][from].IsSet(p.ep) {
			capturedSq := square.Square(int(p.ep) - forward)
			if checkMask.IsSet(capturedSq) && p.enPassantIsLegal(us, them, from, capturedSq, kingSq) {
				list.Push(move.New(from, p.ep, move.EnPassant))
			}
		}
	}
}

// enPassantIsLegal handles the one case the ordinary pin masks cannot: capturing en
// passant removes two pawns from the same rank in one move, which can expose the king to
// a rook or queen behind them even though neither pawn was individually pinned. It
// recomputes the attack mask against the hypothetical post-capture occupancy rather than
// reusing the precomputed pin masks.
func (p *Position) enPassantIsLegal(us, them piece.Color, from, capturedSq, kingSq square.Square) bool {
	occAfter := (p.Occupancy() &^ bitboard.Mask(from) &^ bitboard.Mask(capturedSq)) | bitboard.Mask(p.ep)

	sliders := p.sliders(them)
	sliders.Pawns &^= bitboard.Mask(capturedSq)

	attacked := attacks.AttackMask(them, occAfter, sliders)
	return !attacked.IsSet(kingSq)
}

type castlingPath struct {
	right          castling.Rights
	kingFrom, kingTo square.Square
	mustBeEmpty    bitboard.Board
	mustNotAttack  bitboard.Board
}

func (p *Position) generateCastling(list *move.List, us piece.Color, occ, attacked bitboard.Board) {
	var paths [2]castlingPath
	if us == piece.White {
		paths[0] = castlingPath{castling.WhiteKingSide, square.E1, square.G1,
			bitboard.Mask(square.F1) | bitboard.Mask(square.G1),
			bitboard.Mask(square.E1) | bitboard.Mask(square.F1) | bitboard.Mask(square.G1)}
		paths[1] = castlingPath{castling.WhiteQueenSide, square.E1, square.C1,
			bitboard.Mask(square.D1) | bitboard.Mask(square.C1) | bitboard.Mask(square.B1),
			bitboard.Mask(square.E1) | bitboard.Mask(square.D1) | bitboard.Mask(square.C1)}
	} else {
		paths[0] = castlingPath{castling.BlackKingSide, square.E8, square.G8,
			bitboard.Mask(square.F8) | bitboard.Mask(square.G8),
			bitboard.Mask(square.E8) | bitboard.Mask(square.F8) | bitboard.Mask(square.G8)}
		paths[1] = castlingPath{castling.BlackQueenSide, square.E8, square.C8,
			bitboard.Mask(square.D8) | bitboard.Mask(square.C8) | bitboard.Mask(square.B8),
			bitboard.Mask(square.E8) | bitboard.Mask(square.D8) | bitboard.Mask(square.C8)}
	}

	for _, path := range paths {
		if !p.castling.Has(path.right) {
			continue
		}
		if occ&path.mustBeEmpty != 0 {
			continue
		}
		if attacked&path.mustNotAttack != 0 {
			continue
		}
		list.Push(move.New(path.kingFrom, path.kingTo, move.Castle))
	}
}
