package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/coursefield/internal/field"
)

// RasterPalette holds the colors of the printed field.
var RasterPalette = map[field.Paint]color.RGBA{
	field.PaintBackground:  {0xff, 0xff, 0xff, 0xff},
	field.PaintGrid:        {0xe0, 0xe0, 0xe0, 0xff},
	field.PaintGridLabel:   {0x99, 0x99, 0x99, 0xff},
	field.PaintBoard:       {0x00, 0x00, 0x00, 0xff},
	field.PaintStart:       {0xff, 0x00, 0x00, 0xff},
	field.PaintGoal:        {0x00, 0x00, 0xff, 0xff},
	field.PaintMarkerLabel: {0xff, 0xff, 0xff, 0xff},
}

// circleSegments is the number of polygon edges approximating a circle.
const circleSegments = 64

type fpoint struct{ x, y float64 }

// Raster is a field.Surface backed by an RGBA image, one pixel per mm.
// Shapes are anti-aliased with the x/image vector rasterizer.
type Raster struct {
	img  *image.RGBA
	z    vector.Rasterizer
	face font.Face
}

// NewRaster creates an empty raster; Render resizes it.
func NewRaster() *Raster {
	return &Raster{
		img:  image.NewRGBA(image.Rect(0, 0, 0, 0)),
		face: basicfont.Face7x13,
	}
}

// Image returns the rendered image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Resize discards the content and allocates a w×h image.
func (r *Raster) Resize(w, h int) {
	r.img = image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
}

// FillRect fills an axis-aligned rectangle.
func (r *Raster) FillRect(x, y, w, h float64, p field.Paint) {
	r.fill(p, rectPath(x, y, w, h, false))
}

// Line strokes a segment of the given width centered on its endpoints.
func (r *Raster) Line(x0, y0, x1, y1, width float64, p field.Paint) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	// Half-width normal
	nx, ny := -dy/length*width/2, dx/length*width/2
	r.fill(p, []fpoint{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	})
}

// StrokeRect strokes a rectangle outline of the given width centered on its
// edges, with square corners.
func (r *Raster) StrokeRect(x, y, w, h, width float64, p field.Paint) {
	half := width / 2
	outer := rectPath(x-half, y-half, w+width, h+width, false)
	if w <= width || h <= width {
		r.fill(p, outer)
		return
	}
	// The inner path winds the other way and cuts the hole.
	inner := rectPath(x+half, y+half, w-width, h-width, true)
	r.fill(p, outer, inner)
}

// FillCircle fills a circle centered at (cx, cy).
func (r *Raster) FillCircle(cx, cy, radius float64, p field.Paint) {
	if radius <= 0 {
		return
	}
	path := make([]fpoint, circleSegments)
	for i := range path {
		a := 2 * math.Pi * float64(i) / circleSegments
		path[i] = fpoint{cx + radius*math.Cos(a), cy + radius*math.Sin(a)}
	}
	r.fill(p, path)
}

// Text draws s with the basic 7x13 face. AlignLeft anchors the baseline start
// at (x, y); AlignCenter centers the text box on (x, y).
func (r *Raster) Text(x, y float64, s string, align field.Align, p field.Paint) {
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(RasterPalette[p]),
		Face: r.face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	if align == field.AlignCenter {
		m := r.face.Metrics()
		d.Dot.X -= d.MeasureString(s) / 2
		d.Dot.Y += (m.Ascent - m.Descent) / 2
	}
	d.DrawString(s)
}

// fill rasterizes the given closed paths as one shape and composites it in
// the paint's color. Work is limited to the shapes' bounding box.
func (r *Raster) fill(p field.Paint, paths ...[]fpoint) {
	box := bounds(paths).Intersect(r.img.Bounds())
	if box.Empty() {
		return
	}

	r.z.Reset(box.Dx(), box.Dy())
	r.z.DrawOp = xdraw.Over
	maxX, maxY := float64(box.Dx()), float64(box.Dy())
	for _, path := range paths {
		for i, pt := range path {
			// Path points are clamped to the box: exact for rectangles, a
			// close clip for circles.
			px := float32(clampF(pt.x-float64(box.Min.X), 0, maxX))
			py := float32(clampF(pt.y-float64(box.Min.Y), 0, maxY))
			if i == 0 {
				r.z.MoveTo(px, py)
			} else {
				r.z.LineTo(px, py)
			}
		}
		r.z.ClosePath()
	}
	r.z.Draw(r.img, box, image.NewUniform(RasterPalette[p]), image.Point{})
}

// rectPath returns the corners of a rectangle, clockwise in surface space
// unless reverse is set.
func rectPath(x, y, w, h float64, reverse bool) []fpoint {
	path := []fpoint{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	if reverse {
		path[1], path[3] = path[3], path[1]
	}
	return path
}

// bounds returns the integer rectangle covering every point of paths.
func bounds(paths [][]fpoint) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, path := range paths {
		for _, pt := range path {
			minX, maxX = math.Min(minX, pt.x), math.Max(maxX, pt.x)
			minY, maxY = math.Min(minY, pt.y), math.Max(maxY, pt.y)
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
