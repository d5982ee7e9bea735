package board

import (
	"github.com/okastra/caissa/position"
)

type CastleSide uint8

const (
	CastleSideNone CastleSide = iota
	CastleSideKing
	CastleSideQueen
)

func (c CastleSide) String() string {
	switch c {
	case CastleSideKing:
		return "0-0"
	case CastleSideQueen:
		return "0-0-0"
	default:
		return ""
	}
}

// MoveIntent is the caller-supplied shape of a move: origin, destination, and
// an optional promotion target. Validate resolves it into a full Move.
type MoveIntent struct {
	From      position.Square
	To        position.Square
	Promotion PieceType
}

// Move is an immutable record of one applied (or applicable) move. It holds
// value snapshots of the pieces involved and no reference back to any board.
type Move struct {
	From position.Square
	To   position.Square

	Piece    Piece // moving piece snapshot
	Captured Piece // zero when nothing is captured

	Promotion   PieceType
	Castle      CastleSide
	IsEnPassant bool

	Notation    string // filled in by the state machine on apply
	IsCheck     bool
	IsCheckmate bool
}

func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsNull reports whether the move is the zero value.
func (m Move) IsNull() bool {
	return m.Piece.IsEmpty()
}

// Matches reports whether the move realizes the given intent.
func (m Move) Matches(intent MoveIntent) bool {
	return m.From == intent.From && m.To == intent.To && m.Promotion == intent.Promotion
}

func (m Move) String() string {
	return m.Algebra()
}

// Algebra renders the move in (long-ish) algebraic notation.
func (m Move) Algebra() string {
	if m.Castle != CastleSideNone {
		nt := m.Castle.String()
		return nt + checkSuffix(m)
	}
	nt := m.Piece.SymbolAlgebra()
	if m.IsCapture() {
		if m.Piece.Type == PieceTypePawn {
			nt += string(rune('a' + m.From.File))
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	if m.Promotion != PieceTypeNone {
		nt += "=" + symbolFEN(m.Promotion, SideWhite)
	}
	if m.IsEnPassant {
		nt += " e.p."
	}
	return nt + checkSuffix(m)
}

func checkSuffix(m Move) string {
	if m.IsCheckmate {
		return "#"
	}
	if m.IsCheck {
		return "+"
	}
	return ""
}

// UCI renders the move in coordinate notation (e.g. "e7e8q").
func (m Move) UCI() string {
	nt := m.From.Notation() + m.To.Notation()
	if m.Promotion != PieceTypeNone {
		nt += symbolFEN(m.Promotion, SideBlack) // lowercase by convention
	}
	return nt
}
