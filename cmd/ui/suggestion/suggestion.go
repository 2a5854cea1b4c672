package suggestion

import (
	"fmt"
	"strings"
	"textlens/pkg/detector"
	"textlens/pkg/detector/detectors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	focusedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	selectedItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	descriptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type model struct {
	result   *detector.Result
	cursor   int
	chosen   bool
	quitting bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.result.Actions)-1 {
				m.cursor++
			}

		case "enter", " ":
			m.chosen = true
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Suggestions"))
	s.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#01FAC6")).
		Padding(1, 2).
		Width(60)

	var content strings.Builder
	content.WriteString(focusedStyle.Render(m.result.ToastMessage))
	content.WriteString("\n")
	if m.result.SuggestedLanguage != "" {
		content.WriteString(descriptionStyle.Render("language: " + m.result.SuggestedLanguage))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	for i, action := range m.result.Actions {
		if i == m.cursor {
			content.WriteString(focusedStyle.Render("▶ "))
			content.WriteString(selectedItemStyle.Render(action.Label))
			content.WriteString("\n")
			content.WriteString(descriptionStyle.Render("    " + action.ID))
		} else {
			content.WriteString("  " + action.Label)
		}
		content.WriteString("\n")
	}

	s.WriteString(box.Render(content.String()))
	s.WriteString("\n\n")

	s.WriteString(helpStyle.Render("Use ↑/↓ to navigate, "))
	s.WriteString(focusedStyle.Render("enter"))
	s.WriteString(helpStyle.Render(" to apply, "))
	s.WriteString(focusedStyle.Render("esc"))
	s.WriteString(helpStyle.Render(" to dismiss"))

	return s.String()
}

// Show opens the suggestion panel for a classification and returns the
// action the user picked. The boolean is false when the panel was
// dismissed without choosing.
func Show(result *detector.Result) (detectors.Action, bool, error) {
	if len(result.Actions) == 0 {
		return detectors.Action{}, false, nil
	}

	m := model{result: result}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return detectors.Action{}, false, fmt.Errorf("error showing suggestions: %w", err)
	}

	final := finalModel.(model)
	if !final.chosen {
		return detectors.Action{}, false, nil
	}
	return final.result.Actions[final.cursor], true, nil
}
