package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coursefield/internal/config"
	"github.com/vovakirdan/coursefield/internal/field"
)

// layoutFlags holds the layout overrides. They are strings so they are
// coerced exactly like the editor's inputs.
type layoutFlags struct {
	horizontal string
	vertical   string
	startX     string
	startY     string
	direction  string
}

func (lf *layoutFlags) register(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVar(&lf.horizontal, "horizontal", "", "Boards along X (default from config)")
	fs.StringVar(&lf.vertical, "vertical", "", "Boards along Y (default from config)")
	fs.StringVar(&lf.startX, "start-x", "", "START X in mm")
	fs.StringVar(&lf.startY, "start-y", "", "START Y in mm")
	fs.StringVar(&lf.direction, "direction", "", "GOAL direction: right, left, up, down")
}

// apply overrides base with the flags set on cmd. Setting only one of
// --start-x/--start-y keeps the other coordinate from base, or 0.
func (lf *layoutFlags) apply(cmd *cobra.Command, base config.LayoutConfig) config.LayoutConfig {
	changed := cmd.Flags().Changed
	out := base

	if changed("horizontal") {
		out.Horizontal = field.ParseCount(lf.horizontal)
	}
	if changed("vertical") {
		out.Vertical = field.ParseCount(lf.vertical)
	}
	if changed("start-x") || changed("start-y") {
		var p field.Point
		if base.Start != nil {
			p = *base.Start
		}
		if changed("start-x") {
			p.X = field.ParseCoord(lf.startX)
		}
		if changed("start-y") {
			p.Y = field.ParseCoord(lf.startY)
		}
		out.Start = &p
	}
	if changed("direction") {
		out.Direction = lf.direction
	}
	return out
}

// loadState loads the config and builds the initial state from it and the
// layout flags.
func loadState(cmd *cobra.Command) (config.Config, *field.State, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	cfg.Layout = flagLayout.apply(cmd, cfg.Layout)

	state, err := cfg.Layout.NewState()
	if err != nil {
		return cfg, nil, err
	}
	return cfg, state, nil
}

// newLogger creates the command logger. --log-level wins over the config.
func newLogger(cmd *cobra.Command, w io.Writer, cfg config.Config) (*log.Logger, error) {
	name := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		name = flagLogLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "coursefield",
	})
	if name == "" {
		return logger, nil
	}

	level, err := log.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	logger.SetLevel(level)
	return logger, nil
}
