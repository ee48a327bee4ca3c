package core

const GlyphWidth = 3
const GlyphHeight = 5
const GlyphSpacing = 1

// 3x5 block font, enough for scores and the game over banner.
var glyphs = map[rune][GlyphHeight]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", "..#", "..#"},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	'A': {"###", "#.#", "###", "#.#", "#.#"},
	'E': {"###", "#..", "##.", "#..", "###"},
	'G': {"###", "#..", "#.#", "#.#", "###"},
	'M': {"#.#", "###", "###", "#.#", "#.#"},
	'O': {"###", "#.#", "#.#", "#.#", "###"},
	'R': {"##.", "#.#", "##.", "#.#", "#.#"},
	'V': {"#.#", "#.#", "#.#", "#.#", ".#."},
	' ': {"...", "...", "...", "...", "..."},
}

// getCellsFromChar returns the lit {col,row} cells of a glyph. Unknown
// characters come back empty.
func getCellsFromChar(ch rune) [][2]int {
	glyph, ok := glyphs[ch]
	if !ok {
		return nil
	}

	var cells [][2]int
	for row, line := range glyph {
		for col, c := range line {
			if c == '#' {
				cells = append(cells, [2]int{col, row})
			}
		}
	}
	return cells
}

// glyphTextWidth is the width in cells of text drawn with the block font.
func glyphTextWidth(text string) int {
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	return n*(GlyphWidth+GlyphSpacing) - GlyphSpacing
}
