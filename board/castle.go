package board

import (
	"github.com/okastra/caissa/position"
)

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteKingside
	CastleDirectionWhiteQueenside
	CastleDirectionBlackKingside
	CastleDirectionBlackQueenside
)

func castleDirection(s Side, c CastleSide) CastleDirection {
	switch {
	case s == SideWhite && c == CastleSideKing:
		return CastleDirectionWhiteKingside
	case s == SideWhite && c == CastleSideQueen:
		return CastleDirectionWhiteQueenside
	case s == SideBlack && c == CastleSideKing:
		return CastleDirectionBlackKingside
	case s == SideBlack && c == CastleSideQueen:
		return CastleDirectionBlackQueenside
	default:
		return CastleDirectionUnknown
	}
}

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteKingside:
		return "White 0-0"
	case CastleDirectionWhiteQueenside:
		return "White 0-0-0"
	case CastleDirectionBlackKingside:
		return "Black 0-0"
	case CastleDirectionBlackQueenside:
		return "Black 0-0-0"
	default:
		return ""
	}
}

// CastleRights packs the four independent availability booleans. Each turns
// false permanently once its king or rook leaves its home square or that rook
// is captured there.
type CastleRights uint8

var maskCastleRights = [5]CastleRights{
	CastleDirectionWhiteKingside:  0b1000,
	CastleDirectionWhiteQueenside: 0b0100,
	CastleDirectionBlackKingside:  0b0010,
	CastleDirectionBlackQueenside: 0b0001,
}

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastleRights[CastleDirectionWhiteKingside]|maskCastleRights[CastleDirectionWhiteQueenside]) != 0
	}
	return c&(maskCastleRights[CastleDirectionBlackKingside]|maskCastleRights[CastleDirectionBlackQueenside]) != 0
}

// castleHops holds the from/to squares of the king and rook per direction.
type castleHops struct {
	kingFrom, kingTo position.Square
	rookFrom, rookTo position.Square
	between          []position.Square // squares that must be empty
	transit          []position.Square // squares the king crosses (excluding destination)
}

var posCastling = [5]castleHops{
	CastleDirectionWhiteKingside: {
		kingFrom: sq("e1"), kingTo: sq("g1"),
		rookFrom: sq("h1"), rookTo: sq("f1"),
		between: []position.Square{sq("f1"), sq("g1")},
		transit: []position.Square{sq("f1")},
	},
	CastleDirectionWhiteQueenside: {
		kingFrom: sq("e1"), kingTo: sq("c1"),
		rookFrom: sq("a1"), rookTo: sq("d1"),
		between: []position.Square{sq("b1"), sq("c1"), sq("d1")},
		transit: []position.Square{sq("d1")},
	},
	CastleDirectionBlackKingside: {
		kingFrom: sq("e8"), kingTo: sq("g8"),
		rookFrom: sq("h8"), rookTo: sq("f8"),
		between: []position.Square{sq("f8"), sq("g8")},
		transit: []position.Square{sq("f8")},
	},
	CastleDirectionBlackQueenside: {
		kingFrom: sq("e8"), kingTo: sq("c8"),
		rookFrom: sq("a8"), rookTo: sq("d8"),
		between: []position.Square{sq("b8"), sq("c8"), sq("d8")},
		transit: []position.Square{sq("d8")},
	},
}

func sq(n string) position.Square {
	s, err := position.NewSquareFromNotation(n)
	if err != nil {
		panic(err)
	}
	return s
}
