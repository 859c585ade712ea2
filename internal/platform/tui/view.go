package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/coursefield/internal/canvas"
	"github.com/vovakirdan/coursefield/internal/field"
)

// Layout constants
const (
	panelWidth   = 26 // Inner width of the form panel
	panelGap     = 2  // Columns between panel and field view
	minFieldCols = 12 // Below this the field view is hidden
	minFieldRows = 6
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(panelWidth).
			Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var inputLabels = [inputCount]string{"Horizontal", "Vertical", "Start X", "Start Y"}

// View renders the editor.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := helpStyle.Render(m.help.View(m.keys))
	panel := m.renderPanel()

	body := panel
	cols := m.config.ScreenW - lipgloss.Width(panel) - panelGap
	rows := m.config.ScreenH - lipgloss.Height(helpView) - 1
	if cols >= minFieldCols && rows >= minFieldRows {
		body = lipgloss.JoinHorizontal(lipgloss.Top, panel, strings.Repeat(" ", panelGap), m.renderField(cols, rows))
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(helpView)
	return b.String()
}

// renderField draws the field scaled into cols×rows cells.
func (m Model) renderField(cols, rows int) string {
	cells := canvas.FitCells(m.state.Size(), cols, rows)
	field.Render(cells, m.state)
	return RenderScreen(cells.Screen())
}

// renderPanel draws the form: inputs, direction selector and a summary.
func (m Model) renderPanel() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("COURSE FIELD"))
	b.WriteString("\n\n")

	for i, ti := range m.inputs {
		b.WriteString(m.label(i, inputLabels[i]))
		b.WriteString(ti.View())
		b.WriteString("\n")
		if i == fieldVertical {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.label(fieldDirection, "Goal"))
	b.WriteString("\n")
	b.WriteString(m.renderSelector())
	b.WriteString("\n\n")

	size := m.state.Size()
	b.WriteString(labelStyle.Render(fmt.Sprintf("%d×%d boards", m.state.Horizontal(), m.state.Vertical())))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%d×%d mm", size.W, size.H)))
	b.WriteString("\n")
	if start, ok := m.state.Start(); ok {
		b.WriteString(fmt.Sprintf("START %s\n", start))
	}
	if goal, ok := m.state.Goal(); ok {
		b.WriteString(fmt.Sprintf("GOAL  %s\n", goal))
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// label renders a fixed-width field label with a focus marker.
func (m Model) label(i int, text string) string {
	cursor := "  "
	style := labelStyle
	if i == m.focus {
		cursor = "> "
		style = focusStyle
	}
	return style.Render(fmt.Sprintf("%s%-11s", cursor, text))
}

// renderSelector lists every direction; unavailable ones are dimmed.
func (m Model) renderSelector() string {
	available := m.state.AvailableDirections()
	options := append([]field.Direction{field.DirNone}, field.Directions...)

	parts := make([]string, 0, len(options))
	for _, d := range options {
		name := d.String()
		switch {
		case d == m.state.Direction():
			parts = append(parts, selectedStyle.Render(name))
		case d == field.DirNone || contains(available, d):
			parts = append(parts, name)
		default:
			parts = append(parts, disabledStyle.Render(name))
		}
	}
	return strings.Join(parts, " ")
}

// renderStatus renders the last status message.
func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorStyle.Render("Error: " + m.status)
	}
	return statusStyle.Render(m.status)
}

func contains(dirs []field.Direction, d field.Direction) bool {
	for _, x := range dirs {
		if x == d {
			return true
		}
	}
	return false
}
