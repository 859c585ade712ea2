package canvas

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/coursefield/internal/field"
)

// Snapshot renders the field at one pixel per mm. When maxWidth is positive
// and narrower than the field, the image is scaled down to fit it; the
// scaling is cosmetic and happens after rendering.
func Snapshot(s *field.State, maxWidth int) image.Image {
	r := NewRaster()
	field.Render(r, s)
	img := r.Image()

	if maxWidth <= 0 || img.Bounds().Dx() <= maxWidth {
		return img
	}
	b := img.Bounds()
	scale := FitScale(float64(b.Dx()), float64(b.Dy()), float64(maxWidth), 0)
	return ScaleImage(img, scale)
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path, creating parent directories.
func SavePNG(path string, img image.Image) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	return WritePNG(f, img)
}

// SnapshotPath returns the file name a snapshot taken at t is saved under.
func SnapshotPath(dir string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("course_%s.png", t.Format("20060102_150405")))
}

// SaveSnapshot renders s into a timestamped PNG inside dir and returns its path.
func SaveSnapshot(dir string, t time.Time, s *field.State, maxWidth int) (string, error) {
	path := SnapshotPath(dir, t)
	if err := SavePNG(path, Snapshot(s, maxWidth)); err != nil {
		return "", err
	}
	return path, nil
}
