// Package canvas provides the drawing surfaces the field is rendered onto:
// Cells draws into a terminal character buffer scaled to fit a viewport,
// Raster draws into an RGBA image at one pixel per millimetre.
package canvas

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// FitScale returns the largest factor that fits a srcW×srcH extent into
// dstW×dstH while keeping its aspect ratio. Non-positive destination
// dimensions are treated as unbounded; a degenerate source yields 1.
func FitScale(srcW, srcH, dstW, dstH float64) float64 {
	if srcW <= 0 || srcH <= 0 {
		return 1
	}
	scale := math.Inf(1)
	if dstW > 0 {
		scale = dstW / srcW
	}
	if dstH > 0 {
		scale = math.Min(scale, dstH/srcH)
	}
	if math.IsInf(scale, 1) {
		return 1
	}
	return scale
}

// ScaleImage resamples src by the given factor. The result is at least 1×1.
func ScaleImage(src image.Image, scale float64) *image.RGBA {
	b := src.Bounds()
	w := max(int(math.Round(float64(b.Dx())*scale)), 1)
	h := max(int(math.Round(float64(b.Dy())*scale)), 1)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
