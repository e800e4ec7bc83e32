package view

import "termlife/src/universe"

//every printed row holds two rows of cells
const (
	glyphUpper = '▀'
	glyphLower = '▄'
	glyphBoth  = '█'
	glyphNone  = ' '
)

//glyph returns the character for an upper and a lower cell
func glyph(upper, lower universe.Cell) rune {
	u, l := bool(upper), bool(lower)
	switch {
	case u && l:
		return glyphBoth
	case u:
		return glyphUpper
	case l:
		return glyphLower
	}
	return glyphNone
}

//RenderRows converts the area to (Height+1)/2 printable rows of Width characters
//when Height is odd the missing lower half of the last row is dead
func RenderRows(a universe.Area) [][]rune {
	rows := make([][]rune, 0, (a.Height+1)/2)
	for y := 0; y < a.Height; y += 2 {
		row := make([]rune, a.Width)
		for x := range row {
			var lower universe.Cell
			if y+1 < a.Height {
				lower = a.Entities[y+1][x]
			}
			row[x] = glyph(a.Entities[y][x], lower)
		}
		rows = append(rows, row)
	}
	return rows
}
