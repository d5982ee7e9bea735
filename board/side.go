package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// PawnDirection is the rank delta of a forward pawn move for the side.
func (s Side) PawnDirection() int8 {
	if s == SideWhite {
		return 1
	}
	return -1
}

// PawnStartRank is the rank pawns double-push from.
func (s Side) PawnStartRank() int8 {
	if s == SideWhite {
		return 1
	}
	return 6
}

// PromotionRank is the far rank where pawns must promote.
func (s Side) PromotionRank() int8 {
	if s == SideWhite {
		return 7
	}
	return 0
}

// HomeRank is the back rank holding the king and rooks at the start.
func (s Side) HomeRank() int8 {
	if s == SideWhite {
		return 0
	}
	return 7
}
