package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coursefield/internal/config"
	"github.com/vovakirdan/coursefield/internal/field"
)

// parsedCmd returns a command with the layout flags registered and args parsed.
func parsedCmd(t *testing.T, lf *layoutFlags, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	lf.register(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v) error = %v", args, err)
	}
	return cmd
}

func TestLayoutFlagsApply(t *testing.T) {
	base := config.LayoutConfig{Horizontal: 1, Vertical: 1}

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, got config.LayoutConfig)
	}{
		{
			name: "no flags keeps base",
			check: func(t *testing.T, got config.LayoutConfig) {
				if got.Horizontal != 1 || got.Start != nil || got.Direction != "" {
					t.Errorf("apply() = %+v, expected base", got)
				}
			},
		},
		{
			name: "counts are coerced",
			args: []string{"--horizontal", "3abc", "--vertical", "zero"},
			check: func(t *testing.T, got config.LayoutConfig) {
				if got.Horizontal != 3 || got.Vertical != 1 {
					t.Errorf("counts = %dx%d, expected 3x1", got.Horizontal, got.Vertical)
				}
			},
		},
		{
			name: "start with one coordinate",
			args: []string{"--start-x", "400"},
			check: func(t *testing.T, got config.LayoutConfig) {
				if got.Start == nil || *got.Start != field.Pt(400, 0) {
					t.Errorf("Start = %v, expected (400,0)", got.Start)
				}
			},
		},
		{
			name: "direction passes through",
			args: []string{"--direction", "right"},
			check: func(t *testing.T, got config.LayoutConfig) {
				if got.Direction != "right" {
					t.Errorf("Direction = %q, expected right", got.Direction)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var lf layoutFlags
			cmd := parsedCmd(t, &lf, tc.args...)
			tc.check(t, lf.apply(cmd, base))
		})
	}
}

func TestLayoutFlagsKeepConfigStart(t *testing.T) {
	start := field.Pt(100, 200)
	base := config.LayoutConfig{Horizontal: 1, Vertical: 1, Start: &start}

	var lf layoutFlags
	got := lf.apply(parsedCmd(t, &lf, "--start-y", "300"), base)
	if got.Start == nil || *got.Start != field.Pt(100, 300) {
		t.Errorf("Start = %v, expected (100,300)", got.Start)
	}
	if start != field.Pt(100, 200) {
		t.Error("apply() must not modify the base start")
	}
}

func TestWriteDirections(t *testing.T) {
	s := field.NewState()
	s.SetCounts(2, 1)
	s.SetStart(field.Pt(400, 400))
	if err := s.SelectDirection(field.DirRight); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeDirections(&buf, s); err != nil {
		t.Fatalf("writeDirections() error = %v", err)
	}
	want := "field: 2x1 boards, 1800x1350 mm\n" +
		"start: (400,400)\n" +
		"* right (1400,400)\n"
	if buf.String() != want {
		t.Errorf("writeDirections() =\n%s\nexpected\n%s", buf.String(), want)
	}
}

func TestWriteDirectionsNoneFit(t *testing.T) {
	s := field.NewState()
	s.SetStart(field.Pt(400, 400))

	var buf bytes.Buffer
	if err := writeDirections(&buf, s); err != nil {
		t.Fatalf("writeDirections() error = %v", err)
	}
	if !strings.HasSuffix(buf.String(), "no direction fits\n") {
		t.Errorf("writeDirections() = %q, expected no direction notice", buf.String())
	}
}

func TestWriteDirectionsNoStart(t *testing.T) {
	var buf bytes.Buffer
	if err := writeDirections(&buf, field.NewState()); !errors.Is(err, field.ErrNoStart) {
		t.Errorf("writeDirections() error = %v, expected ErrNoStart", err)
	}
}

func TestRenderText(t *testing.T) {
	s := field.NewState()
	s.SetStart(field.Pt(400, 400))

	out := renderText(s, 40, 30, false)
	lines := strings.Split(out, "\n")
	if len(lines) > 30 {
		t.Errorf("renderText() has %d lines, expected at most 30", len(lines))
	}
	for _, want := range []string{"━", "┃", "START"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderText() missing %q:\n%s", want, out)
		}
	}
}

func TestNewLogger(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "")

	cfg := config.DefaultConfig()
	cfg.Log.Level = "debug"
	if _, err := newLogger(cmd, &bytes.Buffer{}, cfg); err != nil {
		t.Errorf("newLogger(debug) error = %v", err)
	}

	cfg.Log.Level = "loud"
	if _, err := newLogger(cmd, &bytes.Buffer{}, cfg); err == nil {
		t.Error("newLogger(loud) expected error")
	}

	// The flag wins over the config
	if err := cmd.ParseFlags([]string{"--log-level", "warn"}); err != nil {
		t.Fatal(err)
	}
	if _, err := newLogger(cmd, &bytes.Buffer{}, cfg); err != nil {
		t.Errorf("newLogger(--log-level warn) error = %v", err)
	}
}

func TestRenderOutputUnknownFormatCreatesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	err := renderOutput(&bytes.Buffer{}, path, field.NewState(), renderOptions{format: "bogus", cols: 40, rows: 20})
	if err == nil {
		t.Fatal("renderOutput(bogus) error = nil, expected unknown format")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("Stat(%s) error = %v, expected file not to exist", path, statErr)
	}
}

func TestRenderOutput(t *testing.T) {
	dir := t.TempDir()
	s := field.NewState()

	tests := []struct {
		name   string
		path   string
		format string
		prefix string
	}{
		{"text to stdout", "", "text", ""},
		{"png to stdout", "", "png", "\x89PNG"},
		{"text to file", filepath.Join(dir, "field.txt"), "text", ""},
		{"png to file", filepath.Join(dir, "sub", "field.png"), "png", "\x89PNG"},
	}

	for _, tc := range tests {
		var stdout bytes.Buffer
		opts := renderOptions{format: tc.format, cols: 40, rows: 20}
		if err := renderOutput(&stdout, tc.path, s, opts); err != nil {
			t.Errorf("%s: renderOutput() error = %v", tc.name, err)
			continue
		}

		got := stdout.Bytes()
		if tc.path != "" {
			if stdout.Len() != 0 {
				t.Errorf("%s: wrote %d bytes to stdout, expected none", tc.name, stdout.Len())
			}
			data, err := os.ReadFile(tc.path)
			if err != nil {
				t.Errorf("%s: ReadFile() error = %v", tc.name, err)
				continue
			}
			got = data
		}
		if len(got) == 0 {
			t.Errorf("%s: empty output", tc.name)
		}
		if !strings.HasPrefix(string(got), tc.prefix) {
			t.Errorf("%s: output starts with %q, expected %q", tc.name, string(got[:min(len(got), 4)]), tc.prefix)
		}
	}
}
