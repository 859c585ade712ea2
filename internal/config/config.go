// Package config provides YAML-based configuration loading for the
// course field tools.
package config

import (
	"fmt"

	"github.com/vovakirdan/coursefield/internal/field"
)

// Config contains all configuration for coursefield.
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
}

// LayoutConfig describes the field the tools start with.
type LayoutConfig struct {
	Horizontal int          `yaml:"horizontal"`
	Vertical   int          `yaml:"vertical"`
	Start      *field.Point `yaml:"start"`     // nil = no START
	Direction  string       `yaml:"direction"` // "", right, left, up, down
}

// ExportConfig defines where and how snapshots are written.
type ExportConfig struct {
	SnapshotDir string `yaml:"snapshot_dir"` // "" = ~/.coursefield/snapshots
	MaxWidth    int    `yaml:"max_width"`    // 0 = native 1 px per mm
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"`
}

// NewState builds the initial field state described by the layout.
// Counts below 1 become 1. A direction that cannot be selected from the
// configured START is an error.
func (l LayoutConfig) NewState() (*field.State, error) {
	s := field.NewState()
	s.SetCounts(l.Horizontal, l.Vertical)
	if l.Start != nil {
		s.SetStart(*l.Start)
	}

	d, err := field.ParseDirection(l.Direction)
	if err != nil {
		return s, err
	}
	if err := s.SelectDirection(d); err != nil {
		return s, fmt.Errorf("layout direction: %w", err)
	}
	return s, nil
}
