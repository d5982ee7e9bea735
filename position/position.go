package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the number of files and ranks on the board.
	MaxComponentScalar int8 = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")

	// SquareNone is the explicit absent value for squares.
	SquareNone = Square{File: -1, Rank: -1}
)

// Square is a coordinate pair on the board. File and Rank both range over
// 0 to 7; anything else is off the board. The zero value is a1.
type Square struct {
	File int8
	Rank int8
}

func NewSquare(file, rank int8) Square {
	return Square{File: file, Rank: rank}
}

// NewSquareFromNotation maps a two-character label ("a1".."h8") to a Square.
// Malformed input yields SquareNone and an error.
func NewSquareFromNotation(n string) (Square, error) {
	if len(n) != 2 {
		return SquareNone, ErrInvalidNotation
	}
	file := int8(n[0] - 'a')
	rank := int8(n[1] - '1')
	if file < 0 || file >= MaxComponentScalar || rank < 0 || rank >= MaxComponentScalar {
		return SquareNone, ErrInvalidNotation
	}
	return Square{File: file, Rank: rank}, nil
}

func (s Square) String() string {
	return s.Notation()
}

// Notation returns the two-character label of the square, or "" when the
// square is not on the board.
func (s Square) Notation() string {
	if !s.Valid() {
		return ""
	}
	return string(rune('a'+s.File)) + string(rune('1'+s.Rank))
}

func (s Square) Valid() bool {
	return s.File >= 0 && s.File < MaxComponentScalar && s.Rank >= 0 && s.Rank < MaxComponentScalar
}

// Offset returns the square shifted by the given file and rank deltas. The
// result may be off the board; callers test with Valid.
func (s Square) Offset(df, dr int8) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}
