package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/okastra/caissa/position"
)

// FEN is the textual boundary of the core: ParseFEN produces the LoadData
// structure LoadPosition consumes, and Board.FEN regenerates the text from
// the read accessors. Nothing on the search path round-trips through here.

const (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

// ParseFEN decodes a six-segment FEN string into LoadData.
func ParseFEN(fen string) (LoadData, error) {
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return LoadData{}, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return LoadData{}, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	grid := make([][]Piece, Height)
	for rank := int8(0); rank < Height; rank++ {
		grid[rank] = make([]Piece, Width)
		row := rows[Height-rank-1] // FEN lists rank 8 first
		file := int8(0)
		for _, cell := range row {
			if file >= Width {
				return LoadData{}, fmt.Errorf("%w: rank overflow", ErrInvalidFEN)
			}
			if cell != '0' && unicode.IsDigit(cell) {
				skip := int8(cell - '0')
				if file+skip > Width {
					return LoadData{}, fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				file += skip
				continue
			}
			p, ok := pieceFromFEN(cell)
			if !ok {
				return LoadData{}, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			grid[rank][file] = p
			file++
		}
		if file != Width {
			return LoadData{}, fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}

	data := LoadData{Grid: grid, EnPassant: position.SquareNone}

	switch segments[1] {
	case "w":
		data.Turn = SideWhite
	case "b":
		data.Turn = SideBlack
	default:
		return LoadData{}, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 {
		return LoadData{}, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
crLoop:
	for i, e := range segments[2] {
		switch e {
		case 'K':
			data.WhiteKingside = true
		case 'Q':
			data.WhiteQueenside = true
		case 'k':
			data.BlackKingside = true
		case 'q':
			data.BlackQueenside = true
		default:
			if i == 0 && e == '-' {
				break crLoop
			}
			return LoadData{}, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	if segments[3] != "-" {
		target, err := position.NewSquareFromNotation(segments[3])
		if err != nil {
			return LoadData{}, fmt.Errorf("%w: invalid en passant square", ErrInvalidFEN)
		}
		data.EnPassant = target
	}

	halfMoveClock, err := strconv.Atoi(segments[4])
	if err != nil || halfMoveClock < 0 {
		return LoadData{}, fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	data.HalfMoveClock = halfMoveClock

	fullMoveNumber, err := strconv.Atoi(segments[5])
	if err != nil || fullMoveNumber < 1 {
		return LoadData{}, fmt.Errorf("%w: invalid full move number", ErrInvalidFEN)
	}
	data.FullMoveNumber = fullMoveNumber

	return data, nil
}

// FEN regenerates the six-segment FEN text of the current position.
func (b *Board) FEN() string {
	builder := strings.Builder{}
	writePlacement(&builder, &b.grid)
	if b.turn == SideWhite {
		builder.WriteString(" w ")
	} else {
		builder.WriteString(" b ")
	}
	writeCastleRights(&builder, b.castleRights)
	builder.WriteByte(' ')
	if b.enPassant.Valid() {
		builder.WriteString(b.enPassant.Notation())
	} else {
		builder.WriteByte('-')
	}
	builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveNumber))
	return builder.String()
}

func writePlacement(builder *strings.Builder, g *Grid) {
	for rank := Height - 1; rank >= 0; rank-- {
		skip := 0
		for file := int8(0); file < Width; file++ {
			p := g[rank][file]
			if p.IsEmpty() {
				skip++
				continue
			}
			if skip != 0 {
				builder.WriteString(strconv.Itoa(skip))
				skip = 0
			}
			builder.WriteString(p.SymbolFEN())
		}
		if skip != 0 {
			builder.WriteString(strconv.Itoa(skip))
		}
		if rank > 0 {
			builder.WriteByte('/')
		}
	}
}

func writeCastleRights(builder *strings.Builder, c CastleRights) {
	if c == 0 {
		builder.WriteByte('-')
		return
	}
	if c.IsAllowed(CastleDirectionWhiteKingside) {
		builder.WriteByte('K')
	}
	if c.IsAllowed(CastleDirectionWhiteQueenside) {
		builder.WriteByte('Q')
	}
	if c.IsAllowed(CastleDirectionBlackKingside) {
		builder.WriteByte('k')
	}
	if c.IsAllowed(CastleDirectionBlackQueenside) {
		builder.WriteByte('q')
	}
}
