package field

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/coursefield/internal/core"
)

var (
	ErrNoStart              = errors.New("field: start point not set")
	ErrDirectionUnavailable = errors.New("field: direction leaves the field")
	ErrUnknownDirection     = errors.New("field: unknown direction")
)

// State is everything the renderer needs: board counts, START, the selected
// GOAL direction and the GOAL derived from them.
//
// Invariant: Goal is non-nil iff Start is non-nil and Direction is not
// DirNone, and then Goal = Resolve(*Start, Direction, GoalDistance) lies
// inside the field. Every mutator re-establishes it.
type State struct {
	horizontal int
	vertical   int
	start      *Point
	direction  Direction
	goal       *Point
}

// NewState returns a 1×1 field with no START.
func NewState() *State {
	return &State{horizontal: 1, vertical: 1}
}

// Horizontal returns the number of boards along X.
func (s *State) Horizontal() int { return s.horizontal }

// Vertical returns the number of boards along Y.
func (s *State) Vertical() int { return s.vertical }

// Size returns the field extent in mm.
func (s *State) Size() Size {
	return TotalSize(s.horizontal, s.vertical)
}

// Start returns START and whether it is set.
func (s *State) Start() (Point, bool) {
	if s.start == nil {
		return Point{}, false
	}
	return *s.start, true
}

// Goal returns GOAL and whether it is set.
func (s *State) Goal() (Point, bool) {
	if s.goal == nil {
		return Point{}, false
	}
	return *s.goal, true
}

// Direction returns the selected GOAL direction, DirNone when unselected.
func (s *State) Direction() Direction {
	return s.direction
}

// SetCounts changes the board grid. Counts are clamped to [1, MaxCount].
func (s *State) SetCounts(horizontal, vertical int) {
	s.horizontal = clampCount(horizontal)
	s.vertical = clampCount(vertical)
	s.revalidate()
}

// SetStart places START. Points outside the field are kept as given;
// only coordinates beyond ±MaxCoord are clamped.
func (s *State) SetStart(p Point) {
	p = Point{X: clampCoord(p.X), Y: clampCoord(p.Y)}
	s.start = &p
	s.revalidate()
}

// ClearStart removes START and with it the GOAL.
func (s *State) ClearStart() {
	s.start = nil
	s.revalidate()
}

// AvailableDirections returns the directions the selector may offer right now.
// Without a START no direction is available.
func (s *State) AvailableDirections() []Direction {
	if s.start == nil {
		return nil
	}
	size := s.Size()
	return AvailableDirections(*s.start, size.W, size.H, GoalDistance)
}

// SelectDirection chooses the GOAL direction and computes the GOAL.
// DirNone clears the selection.
func (s *State) SelectDirection(d Direction) error {
	if d == DirNone {
		s.clearGoal()
		return nil
	}
	if s.start == nil {
		return ErrNoStart
	}
	if !containsDirection(s.AvailableDirections(), d) {
		return fmt.Errorf("select %s from %s: %w", d, *s.start, ErrDirectionUnavailable)
	}
	s.direction = d
	s.revalidate()
	return nil
}

// revalidate recomputes GOAL after any change. A selection that is no longer
// available is dropped together with its GOAL.
func (s *State) revalidate() {
	if s.start == nil || !containsDirection(s.AvailableDirections(), s.direction) {
		s.clearGoal()
		return
	}
	goal := Resolve(*s.start, s.direction, GoalDistance)
	s.goal = &goal
}

// Apply performs an editor action and reports whether the state changed.
// Actions that do not concern the field (export, quit) are ignored.
func (s *State) Apply(a core.Action) bool {
	before := s.snapshot()

	switch a {
	case core.ActionNudgeUp:
		s.nudge(DirUp)
	case core.ActionNudgeDown:
		s.nudge(DirDown)
	case core.ActionNudgeLeft:
		s.nudge(DirLeft)
	case core.ActionNudgeRight:
		s.nudge(DirRight)
	case core.ActionAddColumn:
		s.SetCounts(s.horizontal+1, s.vertical)
	case core.ActionRemoveColumn:
		s.SetCounts(s.horizontal-1, s.vertical)
	case core.ActionAddRow:
		s.SetCounts(s.horizontal, s.vertical+1)
	case core.ActionRemoveRow:
		s.SetCounts(s.horizontal, s.vertical-1)
	case core.ActionNextDirection:
		s.cycleDirection(1)
	case core.ActionPrevDirection:
		s.cycleDirection(-1)
	case core.ActionClearGoal:
		s.clearGoal()
	}

	return s.snapshot() != before
}

// nudge moves START one grid step, clamped to the field.
// An unset START is placed at the origin first.
func (s *State) nudge(d Direction) {
	p, ok := s.Start()
	if !ok {
		s.SetStart(Point{})
		return
	}
	size := s.Size()
	s.SetStart(size.Clamp(Resolve(p, d, GridSpacing)))
}

// cycleDirection steps through {none, available...} in selector order.
func (s *State) cycleDirection(step int) {
	options := append([]Direction{DirNone}, s.AvailableDirections()...)
	cur := 0
	for i, d := range options {
		if d == s.direction {
			cur = i
			break
		}
	}
	next := (cur + step + len(options)) % len(options)
	if options[next] == DirNone {
		s.clearGoal()
		return
	}
	s.direction = options[next]
	s.revalidate()
}

// clearGoal drops the direction selection together with its GOAL.
func (s *State) clearGoal() {
	s.direction = DirNone
	s.goal = nil
}

// stateSnapshot is a comparable copy of State used to detect changes.
type stateSnapshot struct {
	horizontal, vertical int
	hasStart, hasGoal    bool
	start, goal          Point
	direction            Direction
}

func (s *State) snapshot() stateSnapshot {
	start, hasStart := s.Start()
	goal, hasGoal := s.Goal()
	return stateSnapshot{
		horizontal: s.horizontal,
		vertical:   s.vertical,
		hasStart:   hasStart,
		hasGoal:    hasGoal,
		start:      start,
		goal:       goal,
		direction:  s.direction,
	}
}
