// Package render prints a board to a terminal using ANSI SGR color
// escapes, one background color per region plus glyphs for player and
// solution queens. It is deliberately minimal: the CLI's only
// out-of-scope collaborator that still needs a concrete body to run
// against a terminal.
package render

import (
	"fmt"
	"io"

	"github.com/arkazolin/queens/board"
)

// palette maps a region color id (1..15) to an ANSI background color
// code (40-47, 100-107 bright range), cycling if a board uses more
// colors than the palette has slots for.
var palette = []int{41, 42, 43, 44, 45, 46, 47, 101, 102, 103, 104, 105, 106, 107, 100}

// Board writes a human-readable, colorized rendering of b to w. A
// cell carrying a player queen prints "P", a solution queen with no
// player queen prints "Q", otherwise a space; the cell's background
// reflects its region color.
func Board(w io.Writer, b *board.Board) error {
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			cell := b.At(r, c)
			glyph := " "
			switch {
			case cell.IsPlayerQueen():
				glyph = "P"
			case cell.IsSolutionQueen():
				glyph = "Q"
			}

			bg := bgFor(cell.Color())
			if _, err := fmt.Fprintf(w, "\x1b[%dm %s \x1b[0m", bg, glyph); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func bgFor(color int) int {
	if color <= 0 {
		return 49 // default background, no region assigned
	}
	return palette[(color-1)%len(palette)]
}
