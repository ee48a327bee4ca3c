package core

import (
	"math"
	"strings"

	"github.com/gdamore/tcell"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

const BlockSymbol = ' ' // filled cells are painted through their background colour

// TerminalCanvas is a Surface over a tcell screen. Canvas units are scaled
// down to cells and everything is clipped to the canvas area.
type TerminalCanvas struct {
	screen tcell.Screen

	cellWidth  float64
	cellHeight float64
	left, top  int
	cols, rows int

	fill  tcell.Color
	font  Font
	align TextAlign
}

func NewTerminalCanvas(screen tcell.Screen, p GameProperties) *TerminalCanvas {
	return &TerminalCanvas{
		screen:     screen,
		cellWidth:  p.CellWidth,
		cellHeight: p.CellHeight,
		left:       p.CanvasLeftCol,
		top:        p.CanvasTopRow,
		cols:       int(math.Ceil(p.CanvasWidth / p.CellWidth)),
		rows:       int(math.Ceil(p.CanvasHeight / p.CellHeight)),
		fill:       tcell.ColorWhite,
		font:       Font{Size: p.CellHeight, Family: "monospace"},
	}
}

// CellSize reports the canvas area in terminal cells.
func (c *TerminalCanvas) CellSize() (int, int) {
	return c.cols, c.rows
}

// resolveColor accepts "#rrggbb" or any colour name tcell knows.
func resolveColor(name string) tcell.Color {
	if strings.HasPrefix(name, "#") {
		col, err := colorful.Hex(name)
		if err != nil {
			return tcell.ColorDefault
		}
		r, g, b := col.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.GetColor(strings.ToLower(name))
}

func (c *TerminalCanvas) SetFillStyle(color string) {
	c.fill = resolveColor(color)
}

func (c *TerminalCanvas) SetFont(font string) {
	f, err := ParseFont(font)
	if err != nil {
		return
	}
	c.font = f
}

func (c *TerminalCanvas) SetTextAlign(align TextAlign) {
	c.align = align
}

func (c *TerminalCanvas) FillRect(x, y, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	col0 := int(math.Floor(x / c.cellWidth))
	col1 := int(math.Ceil((x + width) / c.cellWidth))
	row0 := int(math.Floor(y / c.cellHeight))
	row1 := int(math.Ceil((y + height) / c.cellHeight))

	style := tcell.StyleDefault.Background(c.fill)
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			c.setCell(col, row, BlockSymbol, style)
		}
	}
}

// FillText draws text whose baseline sits at y. Fonts tall enough for the
// block glyphs use them, smaller fonts fall back to plain characters.
func (c *TerminalCanvas) FillText(text string, x, y float64) {
	baseline := int(math.Floor(y / c.cellHeight))
	col := int(math.Floor(x / c.cellWidth))

	if c.font.Size/c.cellHeight >= GlyphHeight {
		c.drawLetters(c.alignStart(col, glyphTextWidth(text)), baseline-GlyphHeight, text)
		return
	}

	start := c.alignStart(col, runewidth.StringWidth(text))
	for _, ch := range text {
		_, _, style, _ := c.screen.GetContent(c.left+start, c.top+baseline-1)
		c.setCell(start, baseline-1, ch, style.Foreground(c.fill))
		start += runewidth.RuneWidth(ch)
	}
}

func (c *TerminalCanvas) Show() {
	c.screen.Show()
}

func (c *TerminalCanvas) alignStart(col, width int) int {
	switch c.align {
	case AlignRight:
		return col - width
	case AlignCenter:
		return col - width/2
	}
	return col
}

func (c *TerminalCanvas) drawLetters(col, row int, text string) {
	style := tcell.StyleDefault.Background(c.fill)
	for i, letter := range []rune(text) {
		offsetX := col + i*(GlyphWidth+GlyphSpacing)
		for _, cell := range getCellsFromChar(letter) {
			c.setCell(offsetX+cell[0], row+cell[1], BlockSymbol, style)
		}
	}
}

func (c *TerminalCanvas) setCell(col, row int, ch rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.screen.SetContent(c.left+col, c.top+row, ch, nil, style)
}
