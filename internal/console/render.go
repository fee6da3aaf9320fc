package console

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// squareGlyphs label empty squares with their number.
var squareGlyphs = [entity.BoardSize * entity.BoardSize]string{"⓵", "⓶", "⓷", "⓸", "⓹", "⓺", "⓻", "⓼", "⓽"}

// RenderBoard - prints the turn counter and a framed board.
func RenderBoard(w io.Writer, game *entity.Game) {
	fmt.Fprintf(w, "\n   TURN %d\n", game.Turn)
	fmt.Fprintln(w, "┌───────────┐")

	for row := range game.Board {
		fmt.Fprint(w, "│")
		for col, cell := range game.Board[row] {
			glyph := cell.String()
			if cell == entity.EmptyCell {
				glyph = squareGlyphs[row*entity.BoardSize+col]
			}
			fmt.Fprintf(w, " %s │", glyph)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "└───────────┘")
}
