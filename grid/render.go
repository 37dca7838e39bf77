package grid

import (
	"strings"
)

// Glyphs used by String. Two characters per cell keeps the aspect
// ratio roughly square in a terminal.
const (
	wallGlyph = "██"
	openGlyph = "  "
)

// String renders the grid as ASCII art, one text row per matrix row:
// walls as solid blocks, open cells as spaces. Rendering is a debugging
// aid; overlay drawing (start, exits, paths) belongs to callers.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols*len(wallGlyph) + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == Open {
				b.WriteString(openGlyph)
			} else {
				b.WriteString(wallGlyph)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
