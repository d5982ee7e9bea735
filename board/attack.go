package board

import (
	"github.com/okastra/caissa/position"
)

// Movement rules for the closed set of six piece types. Sliding pieces walk a
// direction vector until blocked, inclusive of one capture; stepping pieces
// test fixed offsets once. All functions here are pure: no mutation, no turn
// awareness beyond the explicit side argument.

type offset struct {
	df, dr int8
}

var (
	lateralVectors  = [4]offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalVectors = [4]offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	knightOffsets = [8]offset{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingOffsets = [8]offset{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}
)

// PseudoTargets returns the raw movement set of the piece type from the given
// square, ignoring king safety. Pawn targets follow three disjoint rules:
// single push to an empty square, double push from the start rank across an
// empty intermediate, and diagonal capture of an enemy piece. En passant is
// not produced here; the move generator synthesizes it from board state.
func PseudoTargets(g *Grid, from position.Square, t PieceType, s Side) []position.Square {
	switch t {
	case PieceTypePawn:
		return pawnTargets(g, from, s)
	case PieceTypeKnight:
		return stepTargets(g, from, s, knightOffsets)
	case PieceTypeBishop:
		return slideTargets(g, from, s, diagonalVectors[:])
	case PieceTypeRook:
		return slideTargets(g, from, s, lateralVectors[:])
	case PieceTypeQueen:
		return slideTargets(g, from, s, append(lateralVectors[:], diagonalVectors[:]...))
	case PieceTypeKing:
		return stepTargets(g, from, s, kingOffsets)
	default:
		return nil
	}
}

func slideTargets(g *Grid, from position.Square, s Side, vectors []offset) []position.Square {
	var targets []position.Square
	for _, v := range vectors {
		for sq := from.Offset(v.df, v.dr); sq.Valid(); sq = sq.Offset(v.df, v.dr) {
			occupant := g.At(sq)
			if occupant.IsEmpty() {
				targets = append(targets, sq)
				continue
			}
			if occupant.Side != s {
				targets = append(targets, sq)
			}
			break
		}
	}
	return targets
}

func stepTargets(g *Grid, from position.Square, s Side, offsets [8]offset) []position.Square {
	var targets []position.Square
	for _, o := range offsets {
		sq := from.Offset(o.df, o.dr)
		if !sq.Valid() {
			continue
		}
		if occupant := g.At(sq); occupant.IsEmpty() || occupant.Side != s {
			targets = append(targets, sq)
		}
	}
	return targets
}

func pawnTargets(g *Grid, from position.Square, s Side) []position.Square {
	var targets []position.Square
	dir := s.PawnDirection()

	// single and double push
	if one := from.Offset(0, dir); one.Valid() && g.At(one).IsEmpty() {
		targets = append(targets, one)
		if from.Rank == s.PawnStartRank() {
			if two := from.Offset(0, 2*dir); two.Valid() && g.At(two).IsEmpty() {
				targets = append(targets, two)
			}
		}
	}

	// diagonal captures
	for _, df := range [2]int8{-1, 1} {
		sq := from.Offset(df, dir)
		if !sq.Valid() {
			continue
		}
		if occupant := g.At(sq); !occupant.IsEmpty() && occupant.Side != s {
			targets = append(targets, sq)
		}
	}
	return targets
}

// IsAttacked reports whether the square is attacked by any piece of the given
// side. It scans outward from the square, mirroring each movement rule; pawn
// attacks are the diagonal captures only, never pushes.
func IsAttacked(g *Grid, sq position.Square, by Side) bool {
	if !sq.Valid() {
		return false
	}

	// pawn diagonals: a pawn of `by` attacks sq from one rank behind it
	dir := by.PawnDirection()
	for _, df := range [2]int8{-1, 1} {
		from := sq.Offset(df, -dir)
		if g.At(from) == (Piece{PieceTypePawn, by}) {
			return true
		}
	}

	for _, o := range knightOffsets {
		if g.At(sq.Offset(o.df, o.dr)) == (Piece{PieceTypeKnight, by}) {
			return true
		}
	}
	for _, o := range kingOffsets {
		if g.At(sq.Offset(o.df, o.dr)) == (Piece{PieceTypeKing, by}) {
			return true
		}
	}

	if slideHits(g, sq, by, lateralVectors[:], PieceTypeRook) {
		return true
	}
	return slideHits(g, sq, by, diagonalVectors[:], PieceTypeBishop)
}

// slideHits walks each vector until blocked, testing for a slider of the
// given type (or a queen) belonging to `by`.
func slideHits(g *Grid, sq position.Square, by Side, vectors []offset, slider PieceType) bool {
	for _, v := range vectors {
		for cur := sq.Offset(v.df, v.dr); cur.Valid(); cur = cur.Offset(v.df, v.dr) {
			occupant := g.At(cur)
			if occupant.IsEmpty() {
				continue
			}
			if occupant.Side == by && (occupant.Type == slider || occupant.Type == PieceTypeQueen) {
				return true
			}
			break
		}
	}
	return false
}
