package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveAlgebra(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		move Move
		want string
	}{
		{
			name: "pawn_push",
			move: Move{From: sq("e2"), To: sq("e4"), Piece: Piece{PieceTypePawn, SideWhite}},
			want: "e4",
		},
		{
			name: "pawn_capture",
			move: Move{
				From: sq("e4"), To: sq("d5"),
				Piece:    Piece{PieceTypePawn, SideWhite},
				Captured: Piece{PieceTypePawn, SideBlack},
			},
			want: "exd5",
		},
		{
			name: "piece_capture",
			move: Move{
				From: sq("f3"), To: sq("e5"),
				Piece:    Piece{PieceTypeKnight, SideWhite},
				Captured: Piece{PieceTypePawn, SideBlack},
			},
			want: "Nf3xe5",
		},
		{
			name: "promotion",
			move: Move{
				From: sq("a7"), To: sq("a8"),
				Piece:     Piece{PieceTypePawn, SideWhite},
				Promotion: PieceTypeQueen,
			},
			want: "a8=Q",
		},
		{
			name: "en_passant",
			move: Move{
				From: sq("d4"), To: sq("e3"),
				Piece:       Piece{PieceTypePawn, SideBlack},
				Captured:    Piece{PieceTypePawn, SideWhite},
				IsEnPassant: true,
			},
			want: "dxe3 e.p.",
		},
		{
			name: "kingside_castle",
			move: Move{Piece: Piece{PieceTypeKing, SideWhite}, Castle: CastleSideKing},
			want: "0-0",
		},
		{
			name: "queenside_castle_check",
			move: Move{Piece: Piece{PieceTypeKing, SideBlack}, Castle: CastleSideQueen, IsCheck: true},
			want: "0-0-0+",
		},
		{
			name: "checkmate_suffix",
			move: Move{
				From: sq("d8"), To: sq("h4"),
				Piece:       Piece{PieceTypeQueen, SideBlack},
				IsCheck:     true,
				IsCheckmate: true,
			},
			want: "Qh4#",
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, test.move.Algebra())
		})
	}
}

func TestMoveUCI(t *testing.T) {
	t.Parallel()

	mv := Move{From: sq("e2"), To: sq("e4"), Piece: Piece{PieceTypePawn, SideWhite}}
	assert.Equal(t, "e2e4", mv.UCI())

	prom := Move{
		From: sq("a7"), To: sq("a8"),
		Piece:     Piece{PieceTypePawn, SideWhite},
		Promotion: PieceTypeKnight,
	}
	assert.Equal(t, "a7a8n", prom.UCI(), "promotion letter is lowercase")
}

func TestMoveMatches(t *testing.T) {
	t.Parallel()

	mv := Move{From: sq("a7"), To: sq("a8"), Promotion: PieceTypeQueen}
	assert.True(t, mv.Matches(MoveIntent{From: sq("a7"), To: sq("a8"), Promotion: PieceTypeQueen}))
	assert.False(t, mv.Matches(MoveIntent{From: sq("a7"), To: sq("a8")}))
	assert.False(t, mv.Matches(MoveIntent{From: sq("a7"), To: sq("b8"), Promotion: PieceTypeQueen}))
}

func TestMoveIsNull(t *testing.T) {
	t.Parallel()

	assert.True(t, Move{}.IsNull())
	assert.False(t, Move{Piece: Piece{PieceTypePawn, SideWhite}}.IsNull())
}
