package field

import (
	"fmt"
	"strings"
)

// Direction is the side of START on which the GOAL is placed.
type Direction uint8

const (
	DirNone Direction = iota
	DirRight
	DirLeft
	DirUp
	DirDown
)

// Directions lists the selectable directions in selector order.
var Directions = []Direction{DirRight, DirLeft, DirUp, DirDown}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) offset of one unit in this direction.
// Up increases Y (logical coordinates, origin bottom-left).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	default:
		return 0, 0
	}
}

// ParseDirection parses a direction name. The empty string and "none" yield DirNone.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DirNone, nil
	case "right", "r":
		return DirRight, nil
	case "left", "l":
		return DirLeft, nil
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	}
	return DirNone, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// AvailableDirections returns, in selector order, every direction whose
// offset point start+distance stays within [0,width]×[0,height].
func AvailableDirections(start Point, width, height, distance int) []Direction {
	bounds := Size{W: width, H: height}
	dirs := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if bounds.Contains(Resolve(start, d, distance)) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Resolve returns start shifted by distance in direction d.
// DirNone returns start unchanged.
func Resolve(start Point, d Direction, distance int) Point {
	dx, dy := d.Delta()
	return start.Add(dx*distance, dy*distance)
}

func containsDirection(dirs []Direction, d Direction) bool {
	for _, got := range dirs {
		if got == d {
			return true
		}
	}
	return false
}
