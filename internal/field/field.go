// Package field models the course field: a rectangle tiled with fixed-size
// boards, a START point placed by the user and a GOAL point derived from it.
// All coordinates are integer millimetres with the origin at the bottom-left
// corner of the field and Y growing upward. This package is UI-agnostic.
package field

import (
	"fmt"

	"github.com/vovakirdan/coursefield/internal/core"
)

// Board dimensions in mm.
const (
	BoardWidth  = 900
	BoardHeight = 1350
)

const (
	// GoalDistance is how far the GOAL lies from START along one axis, in mm.
	GoalDistance = 1000

	// GridSpacing is the distance between coordinate grid lines, in mm.
	GridSpacing = 100
)

// Input limits. MaxCount bounds the field to 7200×10800 mm, which keeps a
// full-size raster render within a few hundred MB. MaxCoord keeps START and
// GOAL arithmetic far from int overflow.
const (
	MaxCount = 8
	MaxCoord = 1_000_000_000
)

// Point is a position on the field in mm.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Size is the extent of the field in mm.
type Size struct {
	W, H int
}

// TotalSize returns the field extent for the given board counts.
// Counts are clamped to [1, MaxCount].
func TotalSize(horizontal, vertical int) Size {
	return Size{
		W: BoardWidth * clampCount(horizontal),
		H: BoardHeight * clampCount(vertical),
	}
}

func clampCount(n int) int {
	return core.Clamp(n, 1, MaxCount)
}

func clampCoord(v int) int {
	return core.Clamp(v, -MaxCoord, MaxCoord)
}

// Contains reports whether p lies within [0,W]×[0,H]; edges are inside.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X <= s.W && p.Y >= 0 && p.Y <= s.H
}

// FlipY converts a logical Y (origin bottom-left) to a surface Y (origin top-left).
func (s Size) FlipY(y int) int {
	return s.H - y
}

// Clamp returns p moved onto the nearest point inside the field.
func (s Size) Clamp(p Point) Point {
	return Point{
		X: core.Clamp(p.X, 0, s.W),
		Y: core.Clamp(p.Y, 0, s.H),
	}
}
