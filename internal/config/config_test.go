package config

import (
	"errors"
	"testing"

	"github.com/vovakirdan/coursefield/internal/field"
)

func TestLayoutNewState(t *testing.T) {
	start := field.Pt(400, 400)
	l := LayoutConfig{Horizontal: 2, Vertical: 0, Start: &start, Direction: "right"}

	s, err := l.NewState()
	if err != nil {
		t.Fatalf("NewState() error = %v", err)
	}
	if s.Horizontal() != 2 || s.Vertical() != 1 {
		t.Errorf("Counts = %dx%d, expected 2x1", s.Horizontal(), s.Vertical())
	}
	goal, ok := s.Goal()
	if !ok || goal != field.Pt(1400, 400) {
		t.Errorf("Goal() = %v, %v, expected (1400,400), true", goal, ok)
	}
}

func TestLayoutNewStateNoStart(t *testing.T) {
	s, err := LayoutConfig{Horizontal: 1, Vertical: 1}.NewState()
	if err != nil {
		t.Fatalf("NewState() error = %v", err)
	}
	if _, ok := s.Start(); ok {
		t.Error("Expected no START")
	}
}

func TestLayoutNewStateErrors(t *testing.T) {
	start := field.Pt(400, 400)

	tests := []struct {
		name   string
		layout LayoutConfig
		want   error
	}{
		{"unknown direction", LayoutConfig{Direction: "north"}, field.ErrUnknownDirection},
		{"direction without start", LayoutConfig{Direction: "up"}, field.ErrNoStart},
		{"direction leaves field", LayoutConfig{Start: &start, Direction: "up"}, field.ErrDirectionUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.layout.NewState()
			if !errors.Is(err, tc.want) {
				t.Errorf("NewState() error = %v, expected %v", err, tc.want)
			}
			if s == nil {
				t.Fatal("NewState() must still return the partial state")
			}
			if _, ok := s.Goal(); ok {
				t.Error("Expected no GOAL after a failed selection")
			}
		})
	}
}
