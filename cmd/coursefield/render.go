package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coursefield/internal/canvas"
	"github.com/vovakirdan/coursefield/internal/field"
	"github.com/vovakirdan/coursefield/internal/platform/tui"
)

var (
	flagFormat   string
	flagOut      string
	flagMaxWidth int
	flagCols     int
	flagRows     int
	flagColor    bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the field to PNG or text",
	Long: `Render the field without an interactive session.

PNG output is 1 px per mm unless --max-width scales it down. Text output fits
the field into --cols x --rows terminal cells.

Examples:
  coursefield render -o course.png --horizontal 2 --start-x 400 --start-y 400 --direction right
  coursefield render --max-width 600 -o preview.png
  coursefield render --format text --cols 100 --rows 40 --color`,
	Args: cobra.NoArgs,
	Run:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&flagFormat, "format", "png", "Output format: png, text")
	renderCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default: stdout)")
	renderCmd.Flags().IntVar(&flagMaxWidth, "max-width", 0, "Scale PNG down to this width (default from config)")
	renderCmd.Flags().IntVar(&flagCols, "cols", 80, "Text width in cells")
	renderCmd.Flags().IntVar(&flagRows, "rows", 40, "Text height in cells")
	renderCmd.Flags().BoolVar(&flagColor, "color", false, "Colored text output")
}

func runRender(cmd *cobra.Command, _ []string) {
	cfg, state, err := loadState(cmd)
	if err != nil {
		fail(err)
	}
	logger, err := newLogger(cmd, os.Stderr, cfg)
	if err != nil {
		fail(err)
	}

	opts := renderOptions{
		format:   flagFormat,
		maxWidth: cfg.Export.MaxWidth,
		cols:     flagCols,
		rows:     flagRows,
		color:    flagColor,
	}
	if cmd.Flags().Changed("max-width") {
		opts.maxWidth = flagMaxWidth
	}

	if err := renderOutput(cmd.OutOrStdout(), flagOut, state, opts); err != nil {
		fail(err)
	}
	if flagOut != "" {
		logger.Info("rendered", "path", flagOut, "format", opts.format)
	}
}

type renderOptions struct {
	format     string
	maxWidth   int
	cols, rows int
	color      bool
}

func checkFormat(format string) error {
	switch format {
	case "png", "text":
		return nil
	}
	return fmt.Errorf("unknown format %q (expected png or text)", format)
}

// renderOutput writes the rendered field to path, or to stdout when path is
// empty. The format is checked before any file is created.
func renderOutput(stdout io.Writer, path string, s *field.State, opts renderOptions) (err error) {
	if err := checkFormat(opts.format); err != nil {
		return err
	}
	if path != "" && opts.format == "png" {
		return canvas.SavePNG(path, canvas.Snapshot(s, opts.maxWidth))
	}

	out := stdout
	if path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return fmt.Errorf("failed to create %s: %w", path, createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close %s: %w", path, cerr)
			}
		}()
		out = f
	}

	if opts.format == "png" {
		return canvas.WritePNG(out, canvas.Snapshot(s, opts.maxWidth))
	}
	_, err = fmt.Fprintln(out, renderText(s, opts.cols, opts.rows, opts.color))
	return err
}

// renderText draws the field into cols×rows cells.
func renderText(s *field.State, cols, rows int, color bool) string {
	cells := canvas.FitCells(s.Size(), cols, rows)
	field.Render(cells, s)
	if color {
		return tui.RenderScreen(cells.Screen())
	}
	return cells.Screen().String()
}
