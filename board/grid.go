package board

import (
	"github.com/okastra/caissa/position"
)

const (
	Width  = position.MaxComponentScalar
	Height = position.MaxComponentScalar
)

// Grid is the position store: an 8x8 array of optional pieces, indexed
// [rank][file]. It is a value type, so plain assignment is the deep copy the
// search relies on; no two boards ever alias cells.
type Grid [Height][Width]Piece

// At returns the piece on the square, or PieceNone for empty or off-board
// squares.
func (g Grid) At(sq position.Square) Piece {
	if !sq.Valid() {
		return PieceNone
	}
	return g[sq.Rank][sq.File]
}

func (g *Grid) put(sq position.Square, p Piece) {
	g[sq.Rank][sq.File] = p
}

func (g *Grid) clear(sq position.Square) {
	g[sq.Rank][sq.File] = PieceNone
}

// KingSquare returns the square holding the side's king, or SquareNone when
// the grid has no such king.
func (g Grid) KingSquare(s Side) position.Square {
	for rank := int8(0); rank < Height; rank++ {
		for file := int8(0); file < Width; file++ {
			if p := g[rank][file]; p.Type == PieceTypeKing && p.Side == s {
				return position.NewSquare(file, rank)
			}
		}
	}
	return position.SquareNone
}

// placed is a piece together with the square it stands on.
type placed struct {
	piece  Piece
	square position.Square
}

// pieces lists the side's pieces in rank-file scan order.
func (g Grid) pieces(s Side) []placed {
	var ps []placed
	for rank := int8(0); rank < Height; rank++ {
		for file := int8(0); file < Width; file++ {
			if p := g[rank][file]; !p.IsEmpty() && p.Side == s {
				ps = append(ps, placed{piece: p, square: position.NewSquare(file, rank)})
			}
		}
	}
	return ps
}

// StartingGrid returns the standard initial placement.
func StartingGrid() Grid {
	var g Grid
	backRank := [Width]PieceType{
		PieceTypeRook, PieceTypeKnight, PieceTypeBishop, PieceTypeQueen,
		PieceTypeKing, PieceTypeBishop, PieceTypeKnight, PieceTypeRook,
	}
	for file := int8(0); file < Width; file++ {
		g[0][file] = Piece{backRank[file], SideWhite}
		g[1][file] = Piece{PieceTypePawn, SideWhite}
		g[6][file] = Piece{PieceTypePawn, SideBlack}
		g[7][file] = Piece{backRank[file], SideBlack}
	}
	return g
}
