package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/okastra/caissa/position"
)

var (
	// ErrGameOver rejects new moves uniformly once any terminal status is
	// reached, regardless of which one.
	ErrGameOver = errors.New("game over")

	// ErrMalformedGrid is fatal to a load; the board must not be reused after
	// a load fails with it.
	ErrMalformedGrid = errors.New("malformed grid")
)

// Board owns the mutable progress of one game: placement grid, turn, castling
// and en passant availability, move counters, repetition table, and history.
// One Board per game; it holds no locks, so concurrent callers need external
// synchronization. History and the repetition table grow for the lifetime of
// the game and are released only when the Board itself is.
type Board struct {
	grid         Grid
	turn         Side
	castleRights CastleRights
	enPassant    position.Square

	halfMoveClock  int
	fullMoveNumber int

	repetition map[string]int
	history    []historyEntry
	status     Status
}

// historyEntry snapshots the auxiliary state a move overwrote, so Undo can
// restore it without re-deriving.
type historyEntry struct {
	move           Move
	castleRights   CastleRights
	enPassant      position.Square
	halfMoveClock  int
	fullMoveNumber int
	status         Status
}

// LoadData is the structure the notation layer hands to LoadPosition. The
// grid must be 8x8 (rank major, white's home rank first); the remaining
// fields are trusted for internal consistency.
type LoadData struct {
	Grid [][]Piece
	Turn Side

	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool

	EnPassant      position.Square // SquareNone when unavailable
	HalfMoveClock  int
	FullMoveNumber int
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// NewBoard returns a board at the standard starting position, or at the
// position described by WithFEN.
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	data, err := ParseFEN(cfg.fen)
	if err != nil {
		return nil, err
	}
	b := &Board{}
	if err := b.LoadPosition(data); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadPosition fully replaces the board state, clearing history and the
// repetition table. A structurally malformed grid is fatal to the load and
// leaves the board state undefined.
func (b *Board) LoadPosition(data LoadData) error {
	if len(data.Grid) != int(Height) {
		return fmt.Errorf("%w: expected %d ranks, got %d", ErrMalformedGrid, Height, len(data.Grid))
	}
	for rank, row := range data.Grid {
		if len(row) != int(Width) {
			return fmt.Errorf("%w: rank %d has %d files", ErrMalformedGrid, rank+1, len(row))
		}
		for file, p := range row {
			b.grid[rank][file] = p
		}
	}
	if !b.grid.KingSquare(SideWhite).Valid() || !b.grid.KingSquare(SideBlack).Valid() {
		return fmt.Errorf("%w: king missing", ErrMalformedGrid)
	}

	b.turn = data.Turn
	b.castleRights = 0
	b.castleRights.Set(CastleDirectionWhiteKingside, data.WhiteKingside)
	b.castleRights.Set(CastleDirectionWhiteQueenside, data.WhiteQueenside)
	b.castleRights.Set(CastleDirectionBlackKingside, data.BlackKingside)
	b.castleRights.Set(CastleDirectionBlackQueenside, data.BlackQueenside)
	b.enPassant = data.EnPassant
	b.halfMoveClock = data.HalfMoveClock
	b.fullMoveNumber = data.FullMoveNumber

	b.history = nil
	b.repetition = make(map[string]int)
	b.repetition[b.PositionKey()]++
	b.status = b.deriveStatus()
	return nil
}

// Reset restores the standard starting position, clearing history and the
// repetition table.
func (b *Board) Reset() {
	grid := StartingGrid()
	rows := make([][]Piece, Height)
	for rank := int8(0); rank < Height; rank++ {
		rows[rank] = grid[rank][:]
	}
	// the starting grid is well-formed, the error is unreachable
	_ = b.LoadPosition(LoadData{
		Grid:           rows,
		Turn:           SideWhite,
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
		EnPassant:      position.SquareNone,
		HalfMoveClock:  0,
		FullMoveNumber: 1,
	})
}

// ApplyMove validates and applies a move intent for the side to move. On
// success it returns the full move record; on rejection it returns one of the
// stable reasons and mutates nothing.
func (b *Board) ApplyMove(intent MoveIntent) (Move, error) {
	if b.status.IsTerminal() {
		return Move{}, ErrGameOver
	}
	mv, err := b.Validate(intent, b.turn)
	if err != nil {
		return Move{}, err
	}

	entry := historyEntry{
		castleRights:   b.castleRights,
		enPassant:      b.enPassant,
		halfMoveClock:  b.halfMoveClock,
		fullMoveNumber: b.fullMoveNumber,
		status:         b.status,
	}

	applyToGrid(&b.grid, mv)
	b.updateCastleRights(mv)
	b.updateEnPassant(mv)

	if mv.Piece.Type == PieceTypePawn || mv.IsCapture() {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}
	if b.turn == SideBlack {
		b.fullMoveNumber++
	}
	b.turn = b.turn.Opposite()

	b.repetition[b.PositionKey()]++
	b.status = b.deriveStatus()

	mv.IsCheck = b.status == StatusCheck || b.status == StatusCheckmate
	mv.IsCheckmate = b.status == StatusCheckmate
	mv.Notation = mv.Algebra()

	entry.move = mv
	b.history = append(b.history, entry)
	return mv, nil
}

// Undo reverts the last applied move, restoring placement (including an
// en-passant-captured pawn to its own square, and both king and rook for
// castling), auxiliary state, and status. It returns false when there is
// nothing to undo. The repetition table is not decremented; it grows
// monotonically until the next load or reset.
func (b *Board) Undo() (Move, bool) {
	n := len(b.history)
	if n == 0 {
		return Move{}, false
	}
	entry := b.history[n-1]
	b.history = b.history[:n-1]

	mv := entry.move
	s := mv.Piece.Side
	if mv.Castle != CastleSideNone {
		hops := posCastling[castleDirection(s, mv.Castle)]
		b.grid.clear(hops.kingTo)
		b.grid.clear(hops.rookTo)
		b.grid.put(hops.kingFrom, Piece{PieceTypeKing, s})
		b.grid.put(hops.rookFrom, Piece{PieceTypeRook, s})
	} else {
		b.grid.clear(mv.To)
		b.grid.put(mv.From, mv.Piece)
		if mv.IsCapture() {
			if mv.IsEnPassant {
				b.grid.put(mv.To.Offset(0, -s.PawnDirection()), mv.Captured)
			} else {
				b.grid.put(mv.To, mv.Captured)
			}
		}
	}

	b.turn = s
	b.castleRights = entry.castleRights
	b.enPassant = entry.enPassant
	b.halfMoveClock = entry.halfMoveClock
	b.fullMoveNumber = entry.fullMoveNumber
	b.status = entry.status
	return mv, true
}

// Status returns the derived status for the side to move. It is recomputed
// after every mutation and idempotent in between.
func (b *Board) Status() Status {
	return b.status
}

// updateCastleRights permanently revokes any availability whose king or rook
// square was just vacated, or whose rook was just captured at home.
func (b *Board) updateCastleRights(mv Move) {
	for d := CastleDirectionWhiteKingside; d <= CastleDirectionBlackQueenside; d++ {
		if !b.castleRights.IsAllowed(d) {
			continue
		}
		hops := posCastling[d]
		if mv.From == hops.kingFrom || mv.From == hops.rookFrom || mv.To == hops.rookFrom {
			b.castleRights.Set(d, false)
		}
	}
}

// updateEnPassant sets the target square after a double pawn push and clears
// it on every other move.
func (b *Board) updateEnPassant(mv Move) {
	b.enPassant = position.SquareNone
	if mv.Piece.Type != PieceTypePawn {
		return
	}
	if mv.To.Rank-mv.From.Rank == 2 || mv.From.Rank-mv.To.Rank == 2 {
		b.enPassant = position.NewSquare(mv.From.File, (mv.From.Rank+mv.To.Rank)/2)
	}
}

// deriveStatus recomputes the status from scratch, in priority order:
// checkmate, stalemate, fifty-move, threefold repetition, insufficient
// material, check, active.
func (b *Board) deriveStatus() Status {
	moves := b.LegalMoves(b.turn)
	inCheck := IsAttacked(&b.grid, b.grid.KingSquare(b.turn), b.turn.Opposite())
	if len(moves) == 0 {
		if inCheck {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if b.halfMoveClock >= 100 {
		return StatusDrawFiftyMove
	}
	if b.repetition[b.PositionKey()] >= 3 {
		return StatusDrawThreefoldRepetition
	}
	if b.insufficientMaterial() {
		return StatusDrawInsufficientMaterial
	}
	if inCheck {
		return StatusCheck
	}
	return StatusActive
}

// insufficientMaterial recognizes exactly: lone kings; king and one minor
// piece versus a lone king; and king and bishop each with both bishops on
// same-colored squares. Everything else is presumed sufficient.
func (b *Board) insufficientMaterial() bool {
	white := b.nonKingPieces(SideWhite)
	black := b.nonKingPieces(SideBlack)

	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 1 && len(black) == 0:
		return white[0].piece.Type.IsMinor()
	case len(black) == 1 && len(white) == 0:
		return black[0].piece.Type.IsMinor()
	case len(white) == 1 && len(black) == 1:
		return white[0].piece.Type == PieceTypeBishop &&
			black[0].piece.Type == PieceTypeBishop &&
			squareColor(white[0].square) == squareColor(black[0].square)
	default:
		return false
	}
}

func (b *Board) nonKingPieces(s Side) []placed {
	var ps []placed
	for _, pl := range b.grid.pieces(s) {
		if pl.piece.Type != PieceTypeKing {
			ps = append(ps, pl)
		}
	}
	return ps
}

func squareColor(sq position.Square) int8 {
	return (sq.File + sq.Rank) % 2
}

// PositionKey returns the canonical key of the current position: placement,
// turn, castling availability, and en passant target. Two positions with the
// same key repeat for the purposes of the threefold rule.
func (b *Board) PositionKey() string {
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
	return builder.String()
}

// Grid returns a copy of the placement grid.
func (b *Board) Grid() Grid {
	return b.grid
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

// EnPassant returns the current target square, or SquareNone.
func (b *Board) EnPassant() position.Square {
	return b.enPassant
}

func (b *Board) HalfMoveClock() int {
	return b.halfMoveClock
}

func (b *Board) FullMoveNumber() int {
	return b.fullMoveNumber
}

// Ply returns the number of half-moves implied by the move counters.
func (b *Board) Ply() int {
	ply := (b.fullMoveNumber - 1) * 2
	if b.turn == SideBlack {
		ply++
	}
	return ply
}

// History returns the applied moves, oldest first.
func (b *Board) History() []Move {
	mvs := make([]Move, len(b.history))
	for i, entry := range b.history {
		mvs[i] = entry.move
	}
	return mvs
}

// Repetitions returns how many times the current position has occurred.
func (b *Board) Repetitions() int {
	return b.repetition[b.PositionKey()]
}

// IsKingChecked reports whether the side's king is currently attacked.
func (b *Board) IsKingChecked(s Side) bool {
	return IsAttacked(&b.grid, b.grid.KingSquare(s), s.Opposite())
}

// Clone returns a fully independent deep copy. The search clones at every
// tree node; a clone shares nothing with its source.
func (b *Board) Clone() *Board {
	repetition := make(map[string]int, len(b.repetition))
	for k, v := range b.repetition {
		repetition[k] = v
	}
	history := make([]historyEntry, len(b.history))
	copy(history, b.history)
	return &Board{
		grid:           b.grid,
		turn:           b.turn,
		castleRights:   b.castleRights,
		enPassant:      b.enPassant,
		halfMoveClock:  b.halfMoveClock,
		fullMoveNumber: b.fullMoveNumber,
		repetition:     repetition,
		history:        history,
		status:         b.status,
	}
}

// Dump renders the grid as a plain text diagram.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for rank := Height - 1; rank >= 0; rank-- {
		builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		builder.WriteString(fmt.Sprintf(" %d |", rank+1))
		for file := int8(0); file < Width; file++ {
			sym := b.grid[rank][file].SymbolFEN()
			if sym == "" {
				sym = " "
			}
			builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		builder.WriteString("\n")
	}
	builder.WriteString("   +---+---+---+---+---+---+---+---+\n    ")
	for file := int8(0); file < Width; file++ {
		builder.WriteString(fmt.Sprintf(" %s  ", string(rune('a'+file))))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("cast: %04b\nhalf: %4d\nfull: %4d\nstat: %s", b.castleRights, b.halfMoveClock, b.fullMoveNumber, b.status)
}
