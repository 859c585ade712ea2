package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coursefield/internal/core"
	"github.com/vovakirdan/coursefield/internal/platform/tui"
)

var flagLogFile string

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Interactive terminal editor",
	Long: `Edit the field interactively.

Controls:
  Tab/Shift+Tab      - Move between fields
  Enter              - Apply board counts or place START
  Left/Right         - Choose the GOAL direction (on the Goal selector)
  Shift+Arrows       - Move START by 100 mm
  [ ] / { }          - Remove/add a column / row of boards
  Ctrl+G             - Clear the GOAL
  Ctrl+S             - Save a PNG snapshot
  Ctrl+Y             - Copy START/GOAL to the clipboard
  ?                  - More keys
  Esc/Ctrl+C         - Quit

Examples:
  coursefield edit
  coursefield edit --horizontal 3 --vertical 2
  coursefield edit --log-file /tmp/coursefield.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runEdit(cmd *cobra.Command, _ []string) {
	cfg, state, err := loadState(cmd)
	if err != nil {
		fail(err)
	}

	// Logs would corrupt the alternate screen
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if openErr != nil {
			fail(fmt.Errorf("failed to open log file: %w", openErr))
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(cmd, logOut, cfg)
	if err != nil {
		fail(err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height

	logger.Info("editor started", "horizontal", state.Horizontal(), "vertical", state.Vertical())
	if err := tui.Run(state, rc, tui.Options{
		SnapshotDir: cfg.SnapshotDir(),
		MaxWidth:    cfg.Export.MaxWidth,
		Logger:      logger,
	}); err != nil {
		fail(err)
	}
}
