package board

import (
	"errors"

	"github.com/okastra/caissa/position"
)

// Stable rejection reasons for move validation. Ordinary illegal input is
// returned as one of these values and never mutates state.
var (
	ErrInvalidSquare     = errors.New("invalid square")
	ErrEmptyOrigin       = errors.New("empty origin")
	ErrWrongSide         = errors.New("wrong side")
	ErrNullMove          = errors.New("null move")
	ErrIllegalMove       = errors.New("illegal move")
	ErrPromotionRequired = errors.New("promotion required")
)

// LegalMoves returns every legal move for the side. A single check-safety
// filter applies uniformly: each candidate is played on a throwaway grid copy
// and kept only if the side's own king is not attacked afterwards.
func (b *Board) LegalMoves(s Side) []Move {
	var mvs []Move
	for _, pl := range b.grid.pieces(s) {
		mvs = append(mvs, b.legalMovesOf(pl)...)
	}
	return mvs
}

// LegalMovesFrom returns the legal moves originating from the square, or nil
// when the square is invalid, empty, or holds an enemy piece.
func (b *Board) LegalMovesFrom(from position.Square, s Side) []Move {
	p := b.grid.At(from)
	if p.IsEmpty() || p.Side != s {
		return nil
	}
	return b.legalMovesOf(placed{piece: p, square: from})
}

// IsLegal reports whether any legal move goes from one square to the other.
func (b *Board) IsLegal(from, to position.Square, s Side) bool {
	for _, mv := range b.LegalMovesFrom(from, s) {
		if mv.To == to {
			return true
		}
	}
	return false
}

// Validate resolves a move intent into a full Move record, or rejects it with
// one of the stable reasons. Validation never mutates the board.
func (b *Board) Validate(intent MoveIntent, s Side) (Move, error) {
	if !intent.From.Valid() || !intent.To.Valid() {
		return Move{}, ErrInvalidSquare
	}
	origin := b.grid.At(intent.From)
	if origin.IsEmpty() {
		return Move{}, ErrEmptyOrigin
	}
	if origin.Side != s {
		return Move{}, ErrWrongSide
	}
	if intent.From == intent.To {
		return Move{}, ErrNullMove
	}

	promotionSeen := false
	for _, mv := range b.legalMovesOf(placed{piece: origin, square: intent.From}) {
		if mv.To != intent.To {
			continue
		}
		if mv.Promotion == intent.Promotion {
			return mv, nil
		}
		promotionSeen = promotionSeen || mv.Promotion != PieceTypeNone
	}
	if promotionSeen && intent.Promotion == PieceTypeNone {
		return Move{}, ErrPromotionRequired
	}
	return Move{}, ErrIllegalMove
}

func (b *Board) legalMovesOf(pl placed) []Move {
	var mvs []Move
	for _, cand := range b.candidateMoves(pl) {
		if b.leavesKingAttacked(cand, pl.piece.Side) {
			continue
		}
		mvs = append(mvs, cand)
	}
	return mvs
}

// candidateMoves composes the raw movement set with the two state-dependent
// special moves: en passant and castling. Promotion expands to one candidate
// per promotable type.
func (b *Board) candidateMoves(pl placed) []Move {
	s := pl.piece.Side
	var cands []Move
	for _, to := range PseudoTargets(&b.grid, pl.square, pl.piece.Type, s) {
		base := Move{
			From:     pl.square,
			To:       to,
			Piece:    pl.piece,
			Captured: b.grid.At(to),
		}
		if pl.piece.Type == PieceTypePawn && to.Rank == s.PromotionRank() {
			for _, prom := range PromotionCandidates {
				mv := base
				mv.Promotion = prom
				cands = append(cands, mv)
			}
			continue
		}
		cands = append(cands, base)
	}

	if pl.piece.Type == PieceTypePawn {
		if mv, ok := b.enPassantMove(pl); ok {
			cands = append(cands, mv)
		}
	}
	if pl.piece.Type == PieceTypeKing {
		cands = append(cands, b.castleMoves(s)...)
	}
	return cands
}

// enPassantMove synthesizes the en passant capture when the board's target
// square sits diagonally forward of the pawn. The captured pawn is removed
// from its own square, one rank behind the target.
func (b *Board) enPassantMove(pl placed) (Move, bool) {
	target := b.enPassant
	if !target.Valid() {
		return Move{}, false
	}
	s := pl.piece.Side
	if target.Rank != pl.square.Rank+s.PawnDirection() {
		return Move{}, false
	}
	if target.File != pl.square.File-1 && target.File != pl.square.File+1 {
		return Move{}, false
	}
	victim := b.grid.At(target.Offset(0, -s.PawnDirection()))
	if victim != (Piece{PieceTypePawn, s.Opposite()}) {
		return Move{}, false
	}
	return Move{
		From:        pl.square,
		To:          target,
		Piece:       pl.piece,
		Captured:    victim,
		IsEnPassant: true,
	}, true
}

// castleMoves synthesizes castling candidates: availability flag set, king and
// rook on their home squares, intervening squares empty, king not currently
// attacked, and no transit square attacked. The destination square is covered
// by the uniform check-safety filter like every other move.
func (b *Board) castleMoves(s Side) []Move {
	if !b.castleRights.IsSideAllowed(s) {
		return nil
	}
	opp := s.Opposite()
	var mvs []Move
	for _, cs := range [2]CastleSide{CastleSideKing, CastleSideQueen} {
		d := castleDirection(s, cs)
		if !b.castleRights.IsAllowed(d) {
			continue
		}
		hops := posCastling[d]
		if b.grid.At(hops.kingFrom) != (Piece{PieceTypeKing, s}) ||
			b.grid.At(hops.rookFrom) != (Piece{PieceTypeRook, s}) {
			continue
		}
		blocked := false
		for _, between := range hops.between {
			if !b.grid.At(between).IsEmpty() {
				blocked = true
				break
			}
		}
		if blocked || IsAttacked(&b.grid, hops.kingFrom, opp) {
			continue
		}
		exposed := false
		for _, transit := range hops.transit {
			if IsAttacked(&b.grid, transit, opp) {
				exposed = true
				break
			}
		}
		if exposed {
			continue
		}
		mvs = append(mvs, Move{
			From:   hops.kingFrom,
			To:     hops.kingTo,
			Piece:  Piece{PieceTypeKing, s},
			Castle: cs,
		})
	}
	return mvs
}

// leavesKingAttacked plays the move on a throwaway grid copy and reports
// whether the side's own king ends up attacked.
func (b *Board) leavesKingAttacked(mv Move, s Side) bool {
	gg := b.grid
	applyToGrid(&gg, mv)
	return IsAttacked(&gg, gg.KingSquare(s), s.Opposite())
}

// applyToGrid performs the placement effects of a move on a grid.
func applyToGrid(g *Grid, mv Move) {
	s := mv.Piece.Side
	if mv.Castle != CastleSideNone {
		hops := posCastling[castleDirection(s, mv.Castle)]
		g.clear(hops.kingFrom)
		g.clear(hops.rookFrom)
		g.put(hops.kingTo, Piece{PieceTypeKing, s})
		g.put(hops.rookTo, Piece{PieceTypeRook, s})
		return
	}

	g.clear(mv.From)
	if mv.IsEnPassant {
		g.clear(mv.To.Offset(0, -s.PawnDirection()))
	}
	if mv.Promotion != PieceTypeNone {
		g.put(mv.To, Piece{mv.Promotion, s})
	} else {
		g.put(mv.To, mv.Piece)
	}
}
