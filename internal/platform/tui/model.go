package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coursefield/internal/canvas"
	"github.com/vovakirdan/coursefield/internal/core"
	"github.com/vovakirdan/coursefield/internal/field"
)

// Form fields in focus order. The first four are text inputs.
const (
	fieldHorizontal = iota
	fieldVertical
	fieldStartX
	fieldStartY
	fieldDirection
	fieldCount

	inputCount = fieldDirection
)

// Options configures the editor's side effects.
type Options struct {
	SnapshotDir string             // Directory for ctrl+s snapshots
	MaxWidth    int                // Snapshot width limit, 0 = 1 px per mm
	Logger      *log.Logger        // nil discards
	Clipboard   func(string) error // nil = system clipboard
	Now         func() time.Time   // nil = time.Now
}

// Model is the Bubble Tea model for the field editor.
type Model struct {
	state     *field.State
	inputs    [inputCount]textinput.Model
	focus     int
	keys      EditorKeyMap
	mapper    *KeyMapper
	help      help.Model
	config    core.RuntimeConfig
	opts      Options
	logger    *log.Logger
	status    string
	statusErr bool
	statusSeq int
	quitting  bool
}

// NewModel creates a new editor over state.
func NewModel(state *field.State, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	keys := DefaultEditorKeyMap()
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		state:  state,
		keys:   keys,
		mapper: NewKeyMapper(keys),
		help:   h,
		config: cfg,
		opts:   opts,
		logger: opts.Logger,
	}

	placeholders := [inputCount]string{"1", "1", "0", "0"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 9
		ti.Width = 10
		m.inputs[i] = ti
	}
	m.syncInputs()
	m.setFocus(fieldHorizontal)

	return m
}

// State returns the edited field state.
func (m Model) State() *field.State {
	return m.state
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	// Cursor blink and other input internals
	if m.focus < inputCount {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyPoints()
	case key.Matches(msg, m.keys.NextField):
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case key.Matches(msg, m.keys.Apply):
		return m, m.applyForm()
	}

	frame := core.NewInputFrame()
	if m.mapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}
	if frame.Has(core.ActionExport) {
		return m, m.exportSnapshot()
	}

	if m.focus == fieldDirection {
		switch {
		case key.Matches(msg, m.keys.NextOption):
			frame.Set(core.ActionNextDirection)
		case key.Matches(msg, m.keys.PrevOption):
			frame.Set(core.ActionPrevDirection)
		}
	}

	if !frame.Empty() {
		return m, m.applyActions(frame)
	}

	if m.focus < inputCount {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyForm commits the focused input group: counts on the count fields,
// START on the coordinate fields.
func (m *Model) applyForm() tea.Cmd {
	before := m.state.Direction()

	switch m.focus {
	case fieldHorizontal, fieldVertical:
		h := field.ParseCount(m.inputs[fieldHorizontal].Value())
		v := field.ParseCount(m.inputs[fieldVertical].Value())
		m.state.SetCounts(h, v)
		m.logger.Info("field resized", "horizontal", h, "vertical", v)
	case fieldStartX, fieldStartY:
		p := field.Pt(
			field.ParseCoord(m.inputs[fieldStartX].Value()),
			field.ParseCoord(m.inputs[fieldStartY].Value()),
		)
		m.state.SetStart(p)
		m.logger.Info("start set", "x", p.X, "y", p.Y)
	default:
		return nil
	}

	m.syncInputs()
	return m.setStatus(m.describeChange(before), false)
}

// applyActions runs field actions from a key press.
func (m *Model) applyActions(frame core.InputFrame) tea.Cmd {
	before := m.state.Direction()
	changed := false
	for _, a := range frame.Actions {
		if m.state.Apply(a) {
			changed = true
			m.logger.Debug("action applied", "action", a)
		}
	}
	if !changed {
		return nil
	}
	m.syncInputs()
	return m.setStatus(m.describeChange(before), false)
}

// describeChange summarizes the state after an edit.
func (m Model) describeChange(before field.Direction) string {
	size := m.state.Size()
	msg := fmt.Sprintf("field %d×%d mm", size.W, size.H)
	if goal, ok := m.state.Goal(); ok {
		msg += fmt.Sprintf(", GOAL %s", goal)
	} else if before != field.DirNone {
		msg += fmt.Sprintf(", direction %s cleared", before)
	}
	return msg
}

// exportSnapshot writes the field as PNG into the snapshot directory.
func (m *Model) exportSnapshot() tea.Cmd {
	path, err := canvas.SaveSnapshot(m.opts.SnapshotDir, m.opts.Now(), m.state, m.opts.MaxWidth)
	if err != nil {
		m.logger.Error("snapshot failed", "dir", m.opts.SnapshotDir, "err", err)
		return m.setStatus(err.Error(), true)
	}
	m.logger.Info("snapshot saved", "path", path)
	return m.setStatus("saved "+path, false)
}

// copyPoints puts the START and GOAL coordinates on the clipboard.
func (m *Model) copyPoints() tea.Cmd {
	text, err := PointsText(m.state)
	if err == nil {
		err = m.opts.Clipboard(text)
	}
	if err != nil {
		m.logger.Warn("copy failed", "err", err)
		return m.setStatus(err.Error(), true)
	}
	return m.setStatus("copied "+text, false)
}

// PointsText formats START and, when selected, GOAL as one line.
func PointsText(s *field.State) (string, error) {
	start, ok := s.Start()
	if !ok {
		return "", field.ErrNoStart
	}
	text := "START " + start.String()
	if goal, ok := s.Goal(); ok {
		text += fmt.Sprintf(" GOAL %s %s", goal, s.Direction())
	}
	return text, nil
}

// setStatus shows msg on the status line and schedules its removal.
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.status = msg
	m.statusErr = isErr
	m.statusSeq++
	return clearStatusCmd(m.statusSeq)
}

// setFocus moves the focus, blurring the previous text input.
func (m *Model) setFocus(i int) {
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	m.focus = i
}

// syncInputs writes the coerced state back into the text inputs.
func (m *Model) syncInputs() {
	setInput(&m.inputs[fieldHorizontal], fmt.Sprint(m.state.Horizontal()))
	setInput(&m.inputs[fieldVertical], fmt.Sprint(m.state.Vertical()))
	if start, ok := m.state.Start(); ok {
		setInput(&m.inputs[fieldStartX], fmt.Sprint(start.X))
		setInput(&m.inputs[fieldStartY], fmt.Sprint(start.Y))
	}
}

func setInput(ti *textinput.Model, v string) {
	ti.SetValue(v)
	ti.CursorEnd()
}

// Run starts the Bubble Tea program with the given state.
func Run(state *field.State, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(state, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
