package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/viewalign/pkg/geom"
	"github.com/matzehuels/viewalign/pkg/layout"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// ModeListModel - Interactive mode selection
// =============================================================================

// ModeListModel is the bubbletea model for interactive mode selection.
// Modes that need more objects than the scene holds cannot be selected.
type ModeListModel struct {
	Modes    []layout.Mode
	Objects  int
	Cursor   int
	Selected *layout.Mode
	Height   int
	Offset   int
}

// NewModeListModel creates a mode list for a scene with the given object count.
func NewModeListModel(objects int) ModeListModel {
	return ModeListModel{
		Modes:   layout.Modes(),
		Objects: objects,
		Height:  12,
	}
}

func (m ModeListModel) available(i int) bool {
	return m.Objects >= m.Modes[i].MinObjects()
}

func (m ModeListModel) Init() tea.Cmd {
	return nil
}

func (m ModeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Modes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if !m.available(m.Cursor) {
				return m, nil
			}
			mode := m.Modes[m.Cursor]
			m.Selected = &mode
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ModeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Mode"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Modes) {
		end = len(m.Modes)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		mode := m.Modes[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		axis := "right"
		if mode.AxisOf() == geom.AxisUp {
			axis = "up"
		}
		rows = append(rows, []string{cursor, mode.String(), mode.Description(), axis, fmt.Sprint(mode.MinObjects())})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Mode", "Description", "Axis", "Min").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			idx := m.Offset + row
			if idx >= len(m.Modes) {
				return lipgloss.NewStyle()
			}
			ok := m.available(idx)
			isCurrent := idx == m.Cursor

			base := lipgloss.NewStyle()
			if col == 3 || col == 4 {
				base = base.Foreground(colorDim)
				if isCurrent {
					base = base.Foreground(colorGray)
				}
			}

			switch {
			case isCurrent && ok:
				if col != 3 && col != 4 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Bold(true)
			case isCurrent:
				return base.Foreground(colorDim).Bold(true)
			case ok:
				if col != 3 && col != 4 {
					return base.Foreground(colorWhite)
				}
				return base
			}
			return base.Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %d objects", m.Cursor+1, len(m.Modes), m.Objects)))

	return b.String()
}
