package engine

import (
	"github.com/okastra/caissa/board"
)

// Material values in centipawns. The king's value is a large non-tradeable
// constant; it never participates in exchanges.
var scoreMaterial = [board.PieceTypeKing + 1]int{
	board.PieceTypePawn:   100,
	board.PieceTypeKnight: 320,
	board.PieceTypeBishop: 330,
	board.PieceTypeRook:   500,
	board.PieceTypeQueen:  900,
	board.PieceTypeKing:   20000,
}

// Placement tables taken from https://www.chessprogramming.org/Simplified_Evaluation_Function.
// Values are small relative to material so material dominates. Tables are
// written from White's point of view with rank 8 on the first row; Black's
// lookup mirrors the rank.
var scorePlacement = [board.PieceTypeKing + 1][64]int{
	board.PieceTypePawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.PieceTypeKnight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	board.PieceTypeBishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	board.PieceTypeRook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	board.PieceTypeQueen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	board.PieceTypeKing: { // midgame: reward castled shelter
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

// scoreKingEndgame replaces the king's midgame table once the endgame phase
// is detected: the king should centralize instead of sheltering.
var scoreKingEndgame = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// Score evaluates the position from the given perspective: material plus
// placement, positive when the perspective side stands better.
func Score(g *board.Grid, perspective board.Side) int {
	endgame := isEndgame(g)
	total := 0
	for rank := int8(0); rank < board.Height; rank++ {
		for file := int8(0); file < board.Width; file++ {
			p := g[rank][file]
			if p.IsEmpty() {
				continue
			}
			score := scoreMaterial[p.Type] + placementScore(p, file, rank, endgame)
			if p.Side == perspective {
				total += score
			} else {
				total -= score
			}
		}
	}
	return total
}

func placementScore(p board.Piece, file, rank int8, endgame bool) int {
	// the tables put rank 8 on row 0; Black reads them rank-mirrored
	var idx int
	if p.Side == board.SideWhite {
		idx = int(board.Height-1-rank)*int(board.Width) + int(file)
	} else {
		idx = int(rank)*int(board.Width) + int(file)
	}
	if p.Type == board.PieceTypeKing && endgame {
		return scoreKingEndgame[idx]
	}
	return scorePlacement[p.Type][idx]
}

// isEndgame detects the phase switch for the king's table: no queens remain
// on either side, or every side still holding a queen has at most one other
// rook or minor piece.
func isEndgame(g *board.Grid) bool {
	type census struct {
		queens int
		others int // rooks and minors, pawns excluded
	}
	var white, black census
	for rank := int8(0); rank < board.Height; rank++ {
		for file := int8(0); file < board.Width; file++ {
			p := g[rank][file]
			c := &white
			if p.Side == board.SideBlack {
				c = &black
			}
			switch p.Type {
			case board.PieceTypeQueen:
				c.queens++
			case board.PieceTypeRook, board.PieceTypeBishop, board.PieceTypeKnight:
				c.others++
			}
		}
	}
	if white.queens == 0 && black.queens == 0 {
		return true
	}
	if white.queens > 0 && white.others > 1 {
		return false
	}
	if black.queens > 0 && black.others > 1 {
		return false
	}
	return true
}
