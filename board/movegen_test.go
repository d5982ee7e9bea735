package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okastra/caissa/position"
)

func mustBoard(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := NewBoard(WithFEN(fen))
	require.NoError(t, err)
	return b
}

func intent(from, to string, prom PieceType) MoveIntent {
	return MoveIntent{From: sq(from), To: sq(to), Promotion: prom}
}

func TestStartingPositionLegalMoves(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	require.NoError(t, err)

	assert.Len(t, b.LegalMoves(SideWhite), 20)
	assert.Len(t, b.LegalMoves(SideBlack), 20)
}

func TestLegalMovesFrom(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	require.NoError(t, err)

	var targets []string
	for _, mv := range b.LegalMovesFrom(sq("e2"), SideWhite) {
		targets = append(targets, mv.To.Notation())
	}
	assert.ElementsMatch(t, []string{"e3", "e4"}, targets)

	assert.Nil(t, b.LegalMovesFrom(sq("e4"), SideWhite))          // empty square
	assert.Nil(t, b.LegalMovesFrom(sq("e7"), SideWhite))          // enemy piece
	assert.Nil(t, b.LegalMovesFrom(position.SquareNone, SideWhite)) // invalid square
}

func TestIsLegal(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	require.NoError(t, err)

	assert.True(t, b.IsLegal(sq("g1"), sq("f3"), SideWhite))
	assert.False(t, b.IsLegal(sq("g1"), sq("g3"), SideWhite))
	assert.False(t, b.IsLegal(sq("e1"), sq("e2"), SideWhite))
}

// perft counts the leaf nodes of the full legal move tree, exercising every
// special rule at once: castling, en passant, promotion, and check evasion.
func perft(t *testing.T, b *Board, depth int) int {
	t.Helper()
	if depth == 0 {
		return 1
	}
	nodes := 0
	for _, mv := range b.LegalMoves(b.Turn()) {
		cc := b.Clone()
		_, err := cc.ApplyMove(MoveIntent{From: mv.From, To: mv.To, Promotion: mv.Promotion})
		require.NoError(t, err)
		nodes += perft(t, cc, depth-1)
	}
	return nodes
}

func TestPerft(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		fen   string
		depth int
		want  int
	}{
		{name: "start_1", fen: DefaultStartingPositionFEN, depth: 1, want: 20},
		{name: "start_2", fen: DefaultStartingPositionFEN, depth: 2, want: 400},
		{name: "start_3", fen: DefaultStartingPositionFEN, depth: 3, want: 8902},
		{name: "kiwipete_1", fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", depth: 1, want: 48},
		{name: "kiwipete_2", fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", depth: 2, want: 2039},
		{name: "endgame_1", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", depth: 1, want: 14},
		{name: "endgame_2", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", depth: 2, want: 191},
		{name: "endgame_3", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", depth: 3, want: 2812},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, test.fen)
			assert.Equal(t, test.want, perft(t, b, test.depth))
		})
	}
}

func TestLegalMovesNeverExposeKing(t *testing.T) {
	t.Parallel()
	fens := []string{
		DefaultStartingPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/8/8/8/4r3/4K3 w - - 0 1",                  // king in check
		"rnb1kbnr/pp1ppppp/8/q1p5/3P4/4P3/PPP2PPP/RNBQKBNR w KQkq - 1 3", // pinned pawn
	}
	for _, fen := range fens {
		b := mustBoard(t, fen)
		mover := b.Turn()
		for _, mv := range b.LegalMoves(mover) {
			cc := b.Clone()
			_, err := cc.ApplyMove(MoveIntent{From: mv.From, To: mv.To, Promotion: mv.Promotion})
			require.NoError(t, err)
			assert.False(t, cc.IsKingChecked(mover), "%s after %s", fen, mv.UCI())
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		fen     string
		intent  MoveIntent
		side    Side
		wantErr error
	}{
		{
			name:    "invalid_square",
			fen:     DefaultStartingPositionFEN,
			intent:  MoveIntent{From: position.SquareNone, To: sq("e4")},
			side:    SideWhite,
			wantErr: ErrInvalidSquare,
		},
		{
			name:    "empty_origin",
			fen:     DefaultStartingPositionFEN,
			intent:  intent("e4", "e5", PieceTypeNone),
			side:    SideWhite,
			wantErr: ErrEmptyOrigin,
		},
		{
			name:    "wrong_side",
			fen:     DefaultStartingPositionFEN,
			intent:  intent("e7", "e5", PieceTypeNone),
			side:    SideWhite,
			wantErr: ErrWrongSide,
		},
		{
			name:    "null_move",
			fen:     DefaultStartingPositionFEN,
			intent:  intent("e2", "e2", PieceTypeNone),
			side:    SideWhite,
			wantErr: ErrNullMove,
		},
		{
			name:    "illegal_geometry",
			fen:     DefaultStartingPositionFEN,
			intent:  intent("g1", "g3", PieceTypeNone),
			side:    SideWhite,
			wantErr: ErrIllegalMove,
		},
		{
			name:    "promotion_required",
			fen:     "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			intent:  intent("a7", "a8", PieceTypeNone),
			side:    SideWhite,
			wantErr: ErrPromotionRequired,
		},
		{
			name:    "promotion_on_ordinary_move",
			fen:     DefaultStartingPositionFEN,
			intent:  intent("e2", "e4", PieceTypeQueen),
			side:    SideWhite,
			wantErr: ErrIllegalMove,
		},
		{
			name:   "ok_pawn_push",
			fen:    DefaultStartingPositionFEN,
			intent: intent("e2", "e4", PieceTypeNone),
			side:   SideWhite,
		},
		{
			name:   "ok_promotion",
			fen:    "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			intent: intent("a7", "a8", PieceTypeKnight),
			side:   SideWhite,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, test.fen)
			before := b.FEN()
			mv, err := b.Validate(test.intent, test.side)
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				assert.True(t, mv.IsNull())
			} else {
				assert.NoError(t, err)
				assert.True(t, mv.Matches(test.intent))
			}
			assert.Equal(t, before, b.FEN(), "validation must not mutate")
		})
	}
}

func TestEnPassant(t *testing.T) {
	t.Parallel()

	// white just pushed e2e4 past the black pawn on d4
	b := mustBoard(t, "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")

	var ep *Move
	for _, mv := range b.LegalMovesFrom(sq("d4"), SideBlack) {
		if mv.To == sq("e3") {
			mv := mv
			ep = &mv
		}
	}
	require.NotNil(t, ep, "en passant capture must be offered")
	assert.True(t, ep.IsEnPassant)
	assert.Equal(t, Piece{PieceTypePawn, SideWhite}, ep.Captured)

	mv, err := b.ApplyMove(intent("d4", "e3", PieceTypeNone))
	require.NoError(t, err)
	assert.Equal(t, "dxe3 e.p.", mv.Notation)
	assert.Equal(t, PieceNone, b.Grid().At(sq("e4")), "captured pawn leaves its own square")
	assert.Equal(t, Piece{PieceTypePawn, SideBlack}, b.Grid().At(sq("e3")))

	_, ok := b.Undo()
	require.True(t, ok)
	assert.Equal(t, Piece{PieceTypePawn, SideWhite}, b.Grid().At(sq("e4")))
	assert.Equal(t, Piece{PieceTypePawn, SideBlack}, b.Grid().At(sq("d4")))
	assert.Equal(t, sq("e3"), b.EnPassant())
}

func TestEnPassantExpires(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")

	// any other move clears the target; the capture is gone for good
	_, err := b.ApplyMove(intent("g8", "f6", PieceTypeNone))
	require.NoError(t, err)
	_, err = b.ApplyMove(intent("g1", "f3", PieceTypeNone))
	require.NoError(t, err)

	assert.False(t, b.EnPassant().Valid())
	_, err = b.ApplyMove(intent("d4", "e3", PieceTypeNone))
	assert.ErrorIs(t, err, ErrIllegalMove)
}

func TestCastling(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")

	var castles []CastleSide
	for _, mv := range b.LegalMovesFrom(sq("e1"), SideWhite) {
		if mv.Castle != CastleSideNone {
			castles = append(castles, mv.Castle)
		}
	}
	assert.ElementsMatch(t, []CastleSide{CastleSideKing, CastleSideQueen}, castles)

	mv, err := b.ApplyMove(intent("e1", "g1", PieceTypeNone))
	require.NoError(t, err)
	assert.Equal(t, CastleSideKing, mv.Castle)
	assert.Equal(t, "0-0", mv.Notation)
	assert.Equal(t, Piece{PieceTypeKing, SideWhite}, b.Grid().At(sq("g1")))
	assert.Equal(t, Piece{PieceTypeRook, SideWhite}, b.Grid().At(sq("f1")))
	assert.Equal(t, PieceNone, b.Grid().At(sq("e1")))
	assert.Equal(t, PieceNone, b.Grid().At(sq("h1")))

	// both white availabilities are gone, black's untouched
	assert.False(t, b.CastleRights().IsSideAllowed(SideWhite))
	assert.True(t, b.CastleRights().IsAllowed(CastleDirectionBlackKingside))
	assert.True(t, b.CastleRights().IsAllowed(CastleDirectionBlackQueenside))

	_, ok := b.Undo()
	require.True(t, ok)
	assert.Equal(t, Piece{PieceTypeKing, SideWhite}, b.Grid().At(sq("e1")))
	assert.Equal(t, Piece{PieceTypeRook, SideWhite}, b.Grid().At(sq("h1")))
	assert.True(t, b.CastleRights().IsSideAllowed(SideWhite))
}

func TestCastlingDenied(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		fen    string
		side   Side
		denied []CastleSide
	}{
		{
			name:   "pieces_between",
			fen:    DefaultStartingPositionFEN,
			side:   SideWhite,
			denied: []CastleSide{CastleSideKing, CastleSideQueen},
		},
		{
			name:   "flag_revoked",
			fen:    "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Qkq - 0 1",
			side:   SideWhite,
			denied: []CastleSide{CastleSideKing},
		},
		{
			name:   "transit_attacked",
			fen:    "r3k2r/8/5R2/8/8/8/8/4K3 b kq - 0 1",
			side:   SideBlack,
			denied: []CastleSide{CastleSideKing},
		},
		{
			name:   "king_in_check",
			fen:    "r3k2r/8/4R3/8/8/8/8/4K3 b kq - 0 1",
			side:   SideBlack,
			denied: []CastleSide{CastleSideKing, CastleSideQueen},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, test.fen)
			for _, mv := range b.LegalMovesFrom(b.Grid().KingSquare(test.side), test.side) {
				for _, cs := range test.denied {
					assert.NotEqual(t, cs, mv.Castle)
				}
			}
		})
	}
}

func TestRookMoveRevokesOneSide(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")

	_, err := b.ApplyMove(intent("h1", "g1", PieceTypeNone))
	require.NoError(t, err)
	assert.False(t, b.CastleRights().IsAllowed(CastleDirectionWhiteKingside))
	assert.True(t, b.CastleRights().IsAllowed(CastleDirectionWhiteQueenside))
}

func TestRookCaptureRevokesRight(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	// Ra1 takes the a8 rook at home; black queenside availability dies with it
	_, err := b.ApplyMove(intent("a1", "a8", PieceTypeNone))
	require.NoError(t, err)
	assert.False(t, b.CastleRights().IsAllowed(CastleDirectionBlackQueenside))
	assert.True(t, b.CastleRights().IsAllowed(CastleDirectionBlackKingside))
	assert.False(t, b.CastleRights().IsAllowed(CastleDirectionWhiteQueenside))
}

func TestPromotionExpansion(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")

	mvs := b.LegalMovesFrom(sq("a7"), SideWhite)
	var proms []PieceType
	for _, mv := range mvs {
		require.Equal(t, sq("a8"), mv.To)
		proms = append(proms, mv.Promotion)
	}
	assert.ElementsMatch(t, []PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}, proms)

	mv, err := b.ApplyMove(intent("a7", "a8", PieceTypeQueen))
	require.NoError(t, err)
	assert.Equal(t, Piece{PieceTypeQueen, SideWhite}, b.Grid().At(sq("a8")))
	assert.Contains(t, mv.Notation, "=Q")

	_, ok := b.Undo()
	require.True(t, ok)
	assert.Equal(t, Piece{PieceTypePawn, SideWhite}, b.Grid().At(sq("a7")))
	assert.Equal(t, PieceNone, b.Grid().At(sq("a8")))
}

func TestCapturePromotion(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "1r5k/P7/8/8/8/8/8/K7 w - - 0 1")

	// four push promotions plus four capture promotions
	assert.Len(t, b.LegalMovesFrom(sq("a7"), SideWhite), 8)

	mv, err := b.ApplyMove(intent("a7", "b8", PieceTypeKnight))
	require.NoError(t, err)
	assert.True(t, mv.IsCapture())
	assert.Equal(t, Piece{PieceTypeKnight, SideWhite}, b.Grid().At(sq("b8")))

	_, ok := b.Undo()
	require.True(t, ok)
	assert.Equal(t, Piece{PieceTypeRook, SideBlack}, b.Grid().At(sq("b8")))
	assert.Equal(t, Piece{PieceTypePawn, SideWhite}, b.Grid().At(sq("a7")))
}
