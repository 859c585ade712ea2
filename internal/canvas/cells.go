package canvas

import (
	"math"

	"github.com/vovakirdan/coursefield/internal/core"
	"github.com/vovakirdan/coursefield/internal/field"
)

// CellAspect is how many times taller a terminal cell is than it is wide.
const CellAspect = 2.0

// cellPaint is how a paint shows up in a terminal cell.
type cellPaint struct {
	fg core.Color
	bg core.Color
}

// CellPalette maps paints to terminal colors. Boards use the terminal's own
// foreground so they stay visible on light and dark themes.
var CellPalette = map[field.Paint]cellPaint{
	field.PaintBackground:  {},
	field.PaintGrid:        {fg: core.ColorDimGray},
	field.PaintGridLabel:   {fg: core.ColorGray},
	field.PaintBoard:       {fg: core.ColorDefault},
	field.PaintStart:       {bg: core.ColorRed},
	field.PaintGoal:        {bg: core.ColorBlue},
	field.PaintMarkerLabel: {fg: core.ColorBrightWhite},
}

// Grid runes
const (
	gridH     = '╌'
	gridV     = '╎'
	gridCross = '┼'
	gridDot   = '·'
)

// Cells is a field.Surface drawing into a character screen. Surface
// millimetres are mapped to cells with a fixed scale per axis; nothing is
// ever drawn at sub-cell precision.
type Cells struct {
	screen *core.Screen
	mmX    float64 // mm per column
	mmY    float64 // mm per row
}

// NewCells creates a surface with the given millimetres per column and row.
func NewCells(mmPerCol, mmPerRow float64) *Cells {
	return &Cells{
		screen: core.NewScreen(0, 0),
		mmX:    math.Max(mmPerCol, 1e-9),
		mmY:    math.Max(mmPerRow, 1e-9),
	}
}

// FitCells creates a surface whose scale fits a w×h mm field into cols×rows
// cells, accounting for the cell aspect ratio. Edges of the field land on the
// first and last column and row.
func FitCells(size field.Size, cols, rows int) *Cells {
	unitsW := float64(max(cols-1, 1))
	unitsH := float64(max(rows-1, 1)) * CellAspect
	scale := FitScale(float64(size.W), float64(size.H), unitsW, unitsH)
	mmPerCol := 1 / scale
	return NewCells(mmPerCol, mmPerCol*CellAspect)
}

// Screen returns the character buffer drawn so far.
func (c *Cells) Screen() *core.Screen {
	return c.screen
}

// Scale returns the millimetres covered by one column and one row.
func (c *Cells) Scale() (mmPerCol, mmPerRow float64) {
	return c.mmX, c.mmY
}

// Cell returns the screen position of a surface point.
func (c *Cells) Cell(x, y float64) (col, row int) {
	return int(math.Round(x / c.mmX)), int(math.Round(y / c.mmY))
}

// Resize discards the content and sizes the screen to cover w×h mm.
func (c *Cells) Resize(w, h int) {
	cols, rows := c.Cell(float64(w), float64(h))
	c.screen = core.NewScreen(cols+1, rows+1)
}

// FillRect fills the covered cells with blanks in the paint's background.
func (c *Cells) FillRect(x, y, w, h float64, p field.Paint) {
	x0, y0 := c.Cell(x, y)
	x1, y1 := c.Cell(x+w, y+h)
	r := core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
	c.screen.FillRect(r, core.Cell{Rune: ' ', Bg: CellPalette[p].bg})
}

// Line draws a one-cell line. Crossing grid lines merge into a cross.
func (c *Cells) Line(x0, y0, x1, y1, _ float64, p field.Paint) {
	fg := CellPalette[p].fg
	c0, r0 := c.Cell(x0, y0)
	c1, r1 := c.Cell(x1, y1)

	switch {
	case r0 == r1:
		for col := core.Min(c0, c1); col <= core.Max(c0, c1); col++ {
			c.screen.SetColored(col, r0, mergeGrid(c.screen.Get(col, r0), gridH), fg)
		}
	case c0 == c1:
		for row := core.Min(r0, r1); row <= core.Max(r0, r1); row++ {
			c.screen.SetColored(c0, row, mergeGrid(c.screen.Get(c0, row), gridV), fg)
		}
	default:
		steps := core.Max(core.Abs(c1-c0), core.Abs(r1-r0))
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			col := c0 + int(math.Round(t*float64(c1-c0)))
			row := r0 + int(math.Round(t*float64(r1-r0)))
			c.screen.SetColored(col, row, gridDot, fg)
		}
	}
}

// mergeGrid returns the rune for drawing r over existing.
func mergeGrid(existing, r rune) rune {
	switch {
	case existing == gridCross:
		return gridCross
	case existing == gridH && r == gridV, existing == gridV && r == gridH:
		return gridCross
	}
	return r
}

func isGridRune(r rune) bool {
	switch r {
	case ' ', gridH, gridV, gridCross, gridDot:
		return true
	}
	return false
}

// StrokeRect draws a heavy box outline. Where outlines of neighbouring
// rectangles meet, the junction glyphs are merged (┳ ┫ ╋ ...).
func (c *Cells) StrokeRect(x, y, w, h, _ float64, p field.Paint) {
	fg := CellPalette[p].fg
	x0, y0 := c.Cell(x, y)
	x1, y1 := c.Cell(x+w, y+h)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	for col := x0; col <= x1; col++ {
		var arms uint8
		if col > x0 {
			arms |= armLeft
		}
		if col < x1 {
			arms |= armRight
		}
		top, bottom := arms, arms
		if col == x0 || col == x1 {
			top |= armDown
			bottom |= armUp
		}
		c.addArms(col, y0, top, fg)
		c.addArms(col, y1, bottom, fg)
	}
	for row := y0 + 1; row < y1; row++ {
		c.addArms(x0, row, armUp|armDown, fg)
		c.addArms(x1, row, armUp|armDown, fg)
	}
}

// Heavy box arm bits.
const (
	armUp uint8 = 1 << iota
	armDown
	armLeft
	armRight
)

var heavyRunes = map[uint8]rune{
	armLeft | armRight:                   '━',
	armUp | armDown:                      '┃',
	armRight | armDown:                   '┏',
	armLeft | armDown:                    '┓',
	armRight | armUp:                     '┗',
	armLeft | armUp:                      '┛',
	armUp | armDown | armRight:           '┣',
	armUp | armDown | armLeft:            '┫',
	armLeft | armRight | armDown:         '┳',
	armLeft | armRight | armUp:           '┻',
	armUp | armDown | armLeft | armRight: '╋',
	armLeft:                              '╸',
	armRight:                             '╺',
	armUp:                                '╹',
	armDown:                              '╻',
}

var heavyArms = func() map[rune]uint8 {
	m := make(map[rune]uint8, len(heavyRunes))
	for arms, r := range heavyRunes {
		m[r] = arms
	}
	return m
}()

// addArms merges box arms into the cell, keeping arms already drawn there.
// Label text is left in place: at terminal resolution the bottom labels share
// a row with the bottom board edge.
func (c *Cells) addArms(col, row int, arms uint8, fg core.Color) {
	existing := c.screen.Get(col, row)
	existingArms, isBox := heavyArms[existing]
	if !isBox && !isGridRune(existing) {
		return
	}
	arms |= existingArms
	if r, ok := heavyRunes[arms]; ok {
		c.screen.SetColored(col, row, r, fg)
	}
}

// FillCircle paints the background of every cell whose center lies within
// the circle. A circle smaller than a cell still marks its center cell.
func (c *Cells) FillCircle(cx, cy, r float64, p field.Paint) {
	bg := CellPalette[p].bg
	colMin, rowMin := c.Cell(cx-r, cy-r)
	colMax, rowMax := c.Cell(cx+r, cy+r)

	marked := false
	for row := rowMin; row <= rowMax; row++ {
		for col := colMin; col <= colMax; col++ {
			dx := float64(col)*c.mmX - cx
			dy := float64(row)*c.mmY - cy
			if dx*dx+dy*dy <= r*r {
				c.screen.SetCell(col, row, core.Cell{Rune: ' ', Bg: bg})
				marked = true
			}
		}
	}
	if !marked {
		col, row := c.Cell(cx, cy)
		c.screen.SetCell(col, row, core.Cell{Rune: ' ', Bg: bg})
	}
}

// Text writes s at the cell of (x, y). Centered text takes the background of
// its anchor cell along, so a marker label reads as a colored tag.
func (c *Cells) Text(x, y float64, s string, align field.Align, p field.Paint) {
	fg := CellPalette[p].fg
	col, row := c.Cell(x, y)
	runes := []rune(s)

	if align == field.AlignCenter {
		bg := c.screen.GetCell(col, row).Bg
		col -= len(runes) / 2
		for i, r := range runes {
			c.screen.SetCell(col+i, row, core.Cell{Rune: r, Color: fg, Bg: bg})
		}
		return
	}

	c.screen.DrawTextColored(col, row, s, fg)
}
