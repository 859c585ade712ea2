// Package window shows the course field in a desktop window, rendered with
// the raster surface and scaled to fit.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/coursefield/internal/canvas"
	"github.com/vovakirdan/coursefield/internal/core"
	"github.com/vovakirdan/coursefield/internal/field"
)

const (
	DefaultWidth  = 900
	DefaultHeight = 800

	statusHeight = 36 // Two debug text lines below the field
	margin       = 8
)

var backdrop = color.RGBA{0x30, 0x30, 0x30, 0xff}

// Options configures the viewer.
type Options struct {
	SnapshotDir string
	MaxWidth    int
	Logger      *log.Logger
	Now         func() time.Time
}

// Viewer is an ebiten.Game displaying a field state.
type Viewer struct {
	state  *field.State
	opts   Options
	logger *log.Logger
	keys   KeyState

	img    *ebiten.Image
	dirty  bool
	status string
}

// New creates a viewer over state reading the real keyboard.
func New(state *field.State, opts Options) *Viewer {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Viewer{
		state:  state,
		opts:   opts,
		logger: opts.Logger,
		keys:   ebitenKeys{},
		dirty:  true,
	}
}

// Update applies this tick's key presses.
func (v *Viewer) Update() error {
	return v.handle(MapKeys(v.keys))
}

// handle applies one frame of actions. It returns ebiten.Termination on quit.
func (v *Viewer) handle(frame core.InputFrame) error {
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if frame.Has(core.ActionExport) {
		path, err := canvas.SaveSnapshot(v.opts.SnapshotDir, v.opts.Now(), v.state, v.opts.MaxWidth)
		if err != nil {
			v.logger.Error("snapshot failed", "err", err)
			v.status = "Error: " + err.Error()
		} else {
			v.logger.Info("snapshot saved", "path", path)
			v.status = "saved " + path
		}
	}
	for _, a := range frame.Actions {
		if v.state.Apply(a) {
			v.dirty = true
			v.status = ""
			v.logger.Debug("action applied", "action", a)
		}
	}
	return nil
}

// Draw renders the field scaled to the window with a status line below.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.dirty || v.img == nil {
		r := canvas.NewRaster()
		field.Render(r, v.state)
		if v.img != nil {
			v.img.Deallocate()
		}
		v.img = ebiten.NewImageFromImage(r.Image())
		v.dirty = false
	}

	screen.Fill(backdrop)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	iw, ih := v.img.Bounds().Dx(), v.img.Bounds().Dy()
	scale := canvas.FitScale(float64(iw), float64(ih),
		float64(sw-2*margin), float64(sh-2*margin-statusHeight))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(margin, margin)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(v.img, op)

	ebitenutil.DebugPrintAt(screen, v.statusLine(), margin, sh-statusHeight)
}

// Layout uses the window size as the screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// statusLine describes the state, or the last message when there is one.
func (v *Viewer) statusLine() string {
	size := v.state.Size()
	parts := []string{fmt.Sprintf("%dx%d boards (%dx%d mm)", v.state.Horizontal(), v.state.Vertical(), size.W, size.H)}
	if start, ok := v.state.Start(); ok {
		parts = append(parts, "START "+start.String())
	}
	if goal, ok := v.state.Goal(); ok {
		parts = append(parts, fmt.Sprintf("GOAL %s %s", goal, v.state.Direction()))
	}
	line := strings.Join(parts, "  ")
	if v.status != "" {
		line += "\n" + v.status
	} else {
		line += "\nshift+arrows move start  left/right goal  [ ] { } boards  ctrl+s snapshot  esc quit"
	}
	return line
}

// Run opens the window and blocks until it is closed.
func Run(state *field.State, opts Options) error {
	ebiten.SetWindowSize(DefaultWidth, DefaultHeight)
	ebiten.SetWindowTitle("Course Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(New(state, opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
