package canvas

import (
	"strings"
	"testing"

	"github.com/vovakirdan/coursefield/internal/core"
	"github.com/vovakirdan/coursefield/internal/field"
)

// 100 mm per column and 200 mm per row keep the expected cells easy to compute.
func renderCells(s *field.State) *core.Screen {
	c := NewCells(100, 200)
	field.Render(c, s)
	return c.Screen()
}

func TestCellsResize(t *testing.T) {
	scr := renderCells(field.NewState())

	// 900 mm / 100 = 9 columns past the origin, 1350 / 200 = 6.75 rows rounds to 7
	if scr.Width() != 10 || scr.Height() != 8 {
		t.Errorf("Screen = %dx%d, expected 10x8", scr.Width(), scr.Height())
	}
}

func TestCellsBoardOutline(t *testing.T) {
	c := NewCells(100, 200)
	c.Resize(900, 1350)
	c.StrokeRect(0, 0, 900, 1350, 2, field.PaintBoard)
	scr := c.Screen()

	corners := map[[2]int]rune{
		{0, 0}: '┏',
		{9, 0}: '┓',
		{0, 7}: '┗',
		{9, 7}: '┛',
	}
	for pos, want := range corners {
		if got := scr.Get(pos[0], pos[1]); got != want {
			t.Errorf("Corner (%d, %d) = %q, expected %q\n%s", pos[0], pos[1], got, want, scr.String())
		}
	}
	if scr.Get(4, 0) != '━' || scr.Get(0, 3) != '┃' {
		t.Errorf("Board edges wrong:\n%s", scr.String())
	}
}

func TestCellsBoardJunctions(t *testing.T) {
	c := NewCells(100, 200)
	c.Resize(1800, 2700)
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			c.StrokeRect(float64(col*900), float64(row*1350), 900, 1350, 2, field.PaintBoard)
		}
	}
	scr := c.Screen()

	// Board rows: 0..7 and 7..14 (13.5 rounds up)
	tests := []struct {
		col, row int
		want     rune
	}{
		{9, 0, '┳'},
		{0, 7, '┣'},
		{9, 7, '╋'},
		{18, 7, '┫'},
		{9, 14, '┻'},
		{0, 14, '┗'},
	}
	for _, tc := range tests {
		if got := scr.Get(tc.col, tc.row); got != tc.want {
			t.Errorf("Junction (%d, %d) = %q, expected %q\n%s", tc.col, tc.row, got, tc.want, scr.String())
		}
	}
}

func TestCellsRenderedBoardJunctions(t *testing.T) {
	s := field.NewState()
	s.SetCounts(2, 2)
	scr := renderCells(s)

	// Cells away from the labels along the left edge and the bottom label row
	if got := scr.Get(9, 7); got != '╋' {
		t.Errorf("Center junction = %q, expected '╋'\n%s", got, scr.String())
	}
	if got := scr.Get(9, 14); got != '┻' {
		t.Errorf("Bottom junction = %q, expected '┻'\n%s", got, scr.String())
	}
}

func TestCellsMarkers(t *testing.T) {
	s := field.NewState()
	s.SetCounts(2, 1)
	s.SetStart(field.Pt(400, 400))
	if err := s.SelectDirection(field.DirRight); err != nil {
		t.Fatalf("SelectDirection failed: %v", err)
	}
	scr := renderCells(s)

	// START at surface (400, 950): column 4, row round(4.75) = 5
	if !strings.Contains(screenRow(scr, 5), "START") {
		t.Errorf("Row 5 should contain START, got %q", screenRow(scr, 5))
	}
	if !strings.Contains(screenRow(scr, 5), "GOAL") {
		t.Errorf("Row 5 should contain GOAL, got %q", screenRow(scr, 5))
	}

	start := scr.GetCell(4, 5)
	if start.Bg != core.ColorRed || start.Color != core.ColorBrightWhite {
		t.Errorf("START anchor cell = %+v, expected white on red", start)
	}
	goal := scr.GetCell(14, 5)
	if goal.Bg != core.ColorBlue {
		t.Errorf("GOAL anchor cell = %+v, expected blue background", goal)
	}
}

func TestCellsGridLabels(t *testing.T) {
	// 4 columns per grid step leave room for three-digit labels
	c := NewCells(25, 50)
	field.Render(c, field.NewState())
	scr := c.Screen()

	// X labels share the bottom board edge row and stay readable on it
	bottom := screenRow(scr, 27)
	for _, label := range []string{"100", "500", "800"} {
		if !strings.Contains(bottom, label) {
			t.Errorf("Expected x label %q in bottom row %q", label, bottom)
		}
	}
	if !strings.Contains(bottom, "━") {
		t.Errorf("Bottom row should still show the board edge, got %q", bottom)
	}

	// Y labels read bottom-up: the line at surface y=1300 is logical 50
	if !strings.HasPrefix(screenRow(scr, 26), "50") {
		t.Errorf("Row 26 should start with label 50, got %q", screenRow(scr, 26))
	}
}

func TestMergeGrid(t *testing.T) {
	if mergeGrid(gridH, gridV) != gridCross {
		t.Error("Crossing lines should merge into a cross")
	}
	if mergeGrid(gridCross, gridH) != gridCross {
		t.Error("A cross should stay a cross")
	}
	if mergeGrid('7', gridV) != gridV {
		t.Error("Lines overwrite other runes")
	}
}

func TestFitCells(t *testing.T) {
	size := field.TotalSize(1, 1)
	c := FitCells(size, 80, 24)
	mmX, mmY := c.Scale()

	if mmY != mmX*CellAspect {
		t.Errorf("Row scale %g should be %g times column scale %g", mmY, CellAspect, mmX)
	}

	field.Render(c, field.NewState())
	scr := c.Screen()
	if scr.Width() > 80 || scr.Height() > 24 {
		t.Errorf("Fitted screen %dx%d exceeds 80x24", scr.Width(), scr.Height())
	}
	// Height is the binding dimension for a single board
	if scr.Height() != 24 {
		t.Errorf("Fitted screen height = %d, expected 24", scr.Height())
	}
}

// screenRow returns row y of the plain screen text.
func screenRow(scr *core.Screen, y int) string {
	return strings.Split(scr.String(), "\n")[y]
}
