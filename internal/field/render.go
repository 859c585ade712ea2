package field

import "strconv"

// Paint names what is being drawn; each Surface maps it to its own colors.
type Paint uint8

const (
	PaintBackground  Paint = iota // White field background
	PaintGrid                     // Light gray grid lines
	PaintGridLabel                // Gray coordinate labels
	PaintBoard                    // Black board outlines
	PaintStart                    // Red START marker
	PaintGoal                     // Blue GOAL marker
	PaintMarkerLabel              // White text on a marker
)

// Align selects how Text is anchored at its position.
type Align uint8

const (
	// AlignLeft puts the start of the text baseline at the position.
	AlignLeft Align = iota
	// AlignCenter centers the text horizontally and vertically on the position.
	AlignCenter
)

// Surface is a 2D drawing target in surface space: mm units, origin top-left,
// Y growing downward. Implementations clip anything outside their extent.
type Surface interface {
	// Resize discards the content and sets the surface extent.
	Resize(w, h int)
	FillRect(x, y, w, h float64, p Paint)
	// Line strokes a segment centered on its endpoints.
	Line(x0, y0, x1, y1, width float64, p Paint)
	// StrokeRect strokes a rectangle outline centered on its edges.
	StrokeRect(x, y, w, h, width float64, p Paint)
	FillCircle(cx, cy, r float64, p Paint)
	Text(x, y float64, s string, align Align, p Paint)
}

// Drawing constants in mm.
const (
	GridLineWidth  = 1
	BoardLineWidth = 2
	MarkerRadius   = 15
)

// Label offsets from the grid line they annotate.
const (
	xLabelDX = 2
	xLabelDY = -5 // from the bottom edge
	yLabelDX = 2
	yLabelDY = -2
)

// Render redraws the whole field onto dst. The layering order is fixed:
// background, grid, boards, START, GOAL.
func Render(dst Surface, s *State) {
	size := s.Size()
	w, h := float64(size.W), float64(size.H)

	dst.Resize(size.W, size.H)
	dst.FillRect(0, 0, w, h, PaintBackground)

	renderGrid(dst, size)

	for row := 0; row < s.Vertical(); row++ {
		for col := 0; col < s.Horizontal(); col++ {
			dst.StrokeRect(
				float64(col*BoardWidth), float64(row*BoardHeight),
				BoardWidth, BoardHeight,
				BoardLineWidth, PaintBoard)
		}
	}

	if start, ok := s.Start(); ok {
		renderMarker(dst, size, start, "START", PaintStart)
	}
	if goal, ok := s.Goal(); ok {
		renderMarker(dst, size, goal, "GOAL", PaintGoal)
	}
}

// renderGrid draws grid lines every GridSpacing mm, edges included, with
// x labels along the bottom and y labels along the left edge. Y labels show
// the logical coordinate so the origin reads as the bottom-left corner.
func renderGrid(dst Surface, size Size) {
	w, h := float64(size.W), float64(size.H)

	for x := 0; x <= size.W; x += GridSpacing {
		fx := float64(x)
		dst.Line(fx, 0, fx, h, GridLineWidth, PaintGrid)
		dst.Text(fx+xLabelDX, h+xLabelDY, strconv.Itoa(x), AlignLeft, PaintGridLabel)
	}

	for y := 0; y <= size.H; y += GridSpacing {
		fy := float64(y)
		dst.Line(0, fy, w, fy, GridLineWidth, PaintGrid)
		dst.Text(yLabelDX, fy+yLabelDY, strconv.Itoa(size.FlipY(y)), AlignLeft, PaintGridLabel)
	}
}

func renderMarker(dst Surface, size Size, p Point, label string, paint Paint) {
	cx, cy := float64(p.X), float64(size.FlipY(p.Y))
	dst.FillCircle(cx, cy, MarkerRadius, paint)
	dst.Text(cx, cy, label, AlignCenter, PaintMarkerLabel)
}
