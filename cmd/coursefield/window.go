package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coursefield/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Desktop viewer",
	Long: `Open the field in a desktop window, scaled to fit.

Controls:
  Left/Right         - Cycle the GOAL direction
  Shift+Arrows       - Move START by 100 mm
  [ ] / { }          - Remove/add a column / row of boards
  Backspace          - Clear the GOAL
  Ctrl+S             - Save a PNG snapshot
  Esc                - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) {
	cfg, state, err := loadState(cmd)
	if err != nil {
		fail(err)
	}
	logger, err := newLogger(cmd, os.Stderr, cfg)
	if err != nil {
		fail(err)
	}

	logger.Info("opening window", "horizontal", state.Horizontal(), "vertical", state.Vertical())
	if err := window.Run(state, window.Options{
		SnapshotDir: cfg.SnapshotDir(),
		MaxWidth:    cfg.Export.MaxWidth,
		Logger:      logger,
	}); err != nil {
		fail(err)
	}
}
