package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Choice is one selectable menu entry. Value is what ShowMenu returns;
// Description is shown under the highlighted entry.
type Choice struct {
	Name        string
	Value       string
	Description string
}

type menuModel struct {
	title    string
	choices  []Choice
	cursor   int
	selected string
	quitting bool
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}

		case "enter", " ":
			m.selected = m.choices[m.cursor].Value
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m menuModel) View() string {
	var s strings.Builder

	// Header
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	s.WriteString(headerStyle.Render(m.title))
	s.WriteString("\n\n")

	// Choices
	for i, choice := range m.choices {
		cursor := " "
		if m.cursor == i {
			cursor = "▶"
		}

		checked := " "
		if m.cursor == i {
			checked = "●"
		}

		// Style the current selection
		choiceStyle := lipgloss.NewStyle()
		if m.cursor == i {
			choiceStyle = choiceStyle.Foreground(lipgloss.Color("86"))
		}

		line := fmt.Sprintf("%s [%s] %s", cursor, checked, choice.Name)
		s.WriteString(choiceStyle.Render(line))
		s.WriteString("\n")

		// Add description for current selection
		if m.cursor == i && choice.Description != "" {
			descStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				MarginLeft(4)
			s.WriteString(descStyle.Render(choice.Description))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")

	// Help text
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	s.WriteString(helpStyle.Render("Use ↑/↓ to navigate, Enter to select, q to quit"))

	return s.String()
}

// ShowMenu runs an interactive picker and returns the selected value.
func ShowMenu(title string, choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no choices to show")
	}

	m := menuModel{
		title:   title,
		choices: choices,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("error running menu: %w", err)
	}

	// Check if user quit without selecting
	final := finalModel.(menuModel)
	if final.quitting && final.selected == "" {
		return "", fmt.Errorf("selection cancelled")
	}

	return final.selected, nil
}
