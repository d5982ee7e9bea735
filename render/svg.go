// Package render produces graphical snapshots of a position, kept at the
// boundary like the textual notation layer.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/okastra/caissa/board"
)

const (
	cellSize = 45

	lightFill = "#f0d9b5"
	darkFill  = "#b58863"
)

// SVG writes the grid as an SVG board diagram, white's side at the bottom.
func SVG(w io.Writer, g board.Grid) {
	size := int(board.Width) * cellSize
	canvas := svg.New(w)
	canvas.Start(size, size)
	for rank := int8(0); rank < board.Height; rank++ {
		for file := int8(0); file < board.Width; file++ {
			x := int(file) * cellSize
			y := int(board.Height-1-rank) * cellSize
			fill := lightFill
			if (file+rank)%2 == 0 {
				fill = darkFill
			}
			canvas.Rect(x, y, cellSize, cellSize, "fill:"+fill)
			p := g[rank][file]
			if p.IsEmpty() {
				continue
			}
			canvas.Text(x+cellSize/2, y+cellSize*3/4, p.SymbolUnicode(),
				fmt.Sprintf("font-size:%dpx;text-anchor:middle", cellSize*3/4))
		}
	}
	canvas.End()
}
