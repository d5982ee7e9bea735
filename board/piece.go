package board

type PieceType uint8

const (
	PieceTypeNone PieceType = iota
	PieceTypePawn
	PieceTypeKnight
	PieceTypeBishop
	PieceTypeRook
	PieceTypeQueen
	PieceTypeKing
)

// PromotionCandidates represents the candidates for pawn promotion.
var PromotionCandidates = []PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

func (t PieceType) String() string {
	return t.Name()
}

func (t PieceType) Name() string {
	switch t {
	case PieceTypePawn:
		return "Pawn"
	case PieceTypeKnight:
		return "Knight"
	case PieceTypeBishop:
		return "Bishop"
	case PieceTypeRook:
		return "Rook"
	case PieceTypeQueen:
		return "Queen"
	case PieceTypeKing:
		return "King"
	default:
		return ""
	}
}

// IsMinor reports whether the type is a knight or bishop.
func (t PieceType) IsMinor() bool {
	return t == PieceTypeKnight || t == PieceTypeBishop
}

// Piece is an immutable piece value. The zero value means an empty cell.
type Piece struct {
	Type PieceType
	Side Side
}

// PieceNone is the empty cell value.
var PieceNone = Piece{}

func (p Piece) IsEmpty() bool {
	return p.Type == PieceTypeNone
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return ""
	}
	return p.Side.String() + " " + p.Type.Name()
}

func (p Piece) SymbolAlgebra() string {
	if p.Type == PieceTypePawn {
		return ""
	}
	return symbolFEN(p.Type, SideWhite) // capital symbols in algebra
}

// SymbolFEN returns the one-letter FEN symbol, lowercase for black.
func (p Piece) SymbolFEN() string {
	return symbolFEN(p.Type, p.Side)
}

func symbolFEN(t PieceType, s Side) string {
	var sym rune
	switch t {
	case PieceTypePawn:
		sym = 'P'
	case PieceTypeKnight:
		sym = 'N'
	case PieceTypeBishop:
		sym = 'B'
	case PieceTypeRook:
		sym = 'R'
	case PieceTypeQueen:
		sym = 'Q'
	case PieceTypeKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

// pieceFromFEN is the inverse of SymbolFEN.
func pieceFromFEN(c rune) (Piece, bool) {
	s := SideWhite
	if c >= 'a' && c <= 'z' {
		s = SideBlack
		c &^= 0x20
	}
	switch c {
	case 'P':
		return Piece{PieceTypePawn, s}, true
	case 'N':
		return Piece{PieceTypeKnight, s}, true
	case 'B':
		return Piece{PieceTypeBishop, s}, true
	case 'R':
		return Piece{PieceTypeRook, s}, true
	case 'Q':
		return Piece{PieceTypeQueen, s}, true
	case 'K':
		return Piece{PieceTypeKing, s}, true
	default:
		return PieceNone, false
	}
}

func (p Piece) SymbolUnicode() string {
	switch p.Side {
	case SideWhite:
		switch p.Type {
		case PieceTypePawn:
			return "♙"
		case PieceTypeKnight:
			return "♘"
		case PieceTypeBishop:
			return "♗"
		case PieceTypeRook:
			return "♖"
		case PieceTypeQueen:
			return "♕"
		case PieceTypeKing:
			return "♔"
		}
	case SideBlack:
		switch p.Type {
		case PieceTypePawn:
			return "♟"
		case PieceTypeKnight:
			return "♞"
		case PieceTypeBishop:
			return "♝"
		case PieceTypeRook:
			return "♜"
		case PieceTypeQueen:
			return "♛"
		case PieceTypeKing:
			return "♚"
		}
	}
	return ""
}
