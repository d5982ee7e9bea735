package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/okastra/caissa/board"
)

var (
	lightCell = color.New(color.BgHiWhite, color.FgBlack)
	darkCell  = color.New(color.BgGreen, color.FgBlack)
	labelText = color.New(color.Bold)
)

// draw renders the board with colored cells, white's side at the bottom.
func draw(b *board.Board) string {
	g := b.Grid()
	builder := strings.Builder{}
	for rank := board.Height - 1; rank >= 0; rank-- {
		builder.WriteString(labelText.Sprintf(" %d ", rank+1))
		for file := int8(0); file < board.Width; file++ {
			sym := g[rank][file].SymbolUnicode()
			if sym == "" {
				sym = " "
			}
			cell := lightCell
			if (file+rank)%2 == 0 {
				cell = darkCell
			}
			builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		builder.WriteString("\n")
	}
	builder.WriteString("   ")
	for file := int8(0); file < board.Width; file++ {
		builder.WriteString(labelText.Sprintf(" %s ", string(rune('a'+file))))
	}
	return builder.String()
}

func dumpHistory(mvs []board.Move) {
	for i, mv := range mvs {
		if mv.Piece.Side == board.SideWhite {
			fmt.Printf("%d.", i/2+1)
		}
		fmt.Printf("%s ", mv)
	}
	fmt.Println()
}
