package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/maze"
)

// Cell glyphs, two characters wide to keep a roughly square aspect.
const (
	glyphWall  = "██"
	glyphOpen  = "  "
	glyphPath  = "· "
	glyphStart = "S "
	glyphExit  = "E "
)

// draw renders the grid with route, start, and exit overlays. Later
// writes win, so start/exit markers paint over path dots.
func draw(w io.Writer, g *grid.Grid, start grid.Coord, routes []maze.Route) {
	overlay := make(map[grid.Coord]string)
	for _, r := range routes {
		for _, c := range r.Cells {
			overlay[c] = glyphPath
		}
	}
	overlay[start] = glyphStart
	for _, r := range routes {
		overlay[r.Exit] = glyphExit
	}

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c := grid.Coord{Row: row, Col: col}
			switch {
			case overlay[c] != "":
				fmt.Fprint(w, overlay[c])
			case g.At(c) == grid.Open:
				fmt.Fprint(w, glyphOpen)
			default:
				fmt.Fprint(w, glyphWall)
			}
		}
		fmt.Fprintln(w)
	}
}
