package tui

import (
	"fmt"
	"strconv"
	"strings"

	"textlens/pkg/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type settingsField struct {
	label  string
	help   string
	isBool bool
	on     bool
	text   string
}

type settingsModel struct {
	fields       []settingsField
	currentField int
	completed    bool
	quitting     bool
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if m.currentField < len(m.fields)-1 {
				// Move to next field
				m.currentField++
			} else {
				// Save the form
				m.completed = true
				m.quitting = true
				return m, tea.Quit
			}

		case "up":
			if m.currentField > 0 {
				m.currentField--
			}

		case "down":
			if m.currentField < len(m.fields)-1 {
				m.currentField++
			}

		case " ", "left", "right":
			if m.fields[m.currentField].isBool {
				m.fields[m.currentField].on = !m.fields[m.currentField].on
			}

		case "backspace":
			field := &m.fields[m.currentField]
			if !field.isBool && len(field.text) > 0 {
				field.text = field.text[:len(field.text)-1]
			}

		default:
			// Digits go into numeric fields
			field := &m.fields[m.currentField]
			key := msg.String()
			if !field.isBool && len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
				field.text += key
			}
		}
	}

	return m, nil
}

func (m settingsModel) View() string {
	var s strings.Builder

	// Header
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	s.WriteString(headerStyle.Render("textlens settings"))
	s.WriteString("\n\n")

	for i, field := range m.fields {
		// Field label
		labelStyle := lipgloss.NewStyle().Bold(true)
		if i == m.currentField {
			labelStyle = labelStyle.Foreground(lipgloss.Color("86"))
		}
		s.WriteString(labelStyle.Render(field.label))
		s.WriteString("\n")

		var display string
		if field.isBool {
			if field.on {
				display = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Render("on")
			} else {
				display = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Render("off")
			}
		} else {
			display = field.text
			if i == m.currentField {
				display += "│"
			}
		}

		valueStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(30)
		if i == m.currentField {
			valueStyle = valueStyle.BorderForeground(lipgloss.Color("86"))
		}

		s.WriteString(valueStyle.Render(display))
		s.WriteString("\n")

		if i == m.currentField && field.help != "" {
			helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
			s.WriteString(helpStyle.Render(field.help))
			s.WriteString("\n")
		}
		s.WriteString("\n")
	}

	// Help text
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	s.WriteString(helpStyle.Render("Use ↑/↓ to move, Space to toggle, Enter to save, Esc to cancel"))

	return s.String()
}

// ShowSettingsForm edits the given settings interactively and returns
// the updated copy. Cancelling leaves them untouched.
func ShowSettingsForm(current *config.Settings) (*config.Settings, error) {
	m := settingsModel{
		fields: []settingsField{
			{
				label:  "Intelligent suggestions",
				help:   "Offer an action menu when content is recognized",
				isBool: true,
				on:     current.ShowIntelligentSuggestions,
			},
			{
				label:  "Language detection",
				help:   "Suggest a syntax language and offer switching to it",
				isBool: true,
				on:     current.AutoDetectLanguage,
			},
			{
				label:  "Copy results",
				help:   "Write transformed text back to the clipboard",
				isBool: true,
				on:     current.CopyResults,
			},
			{
				label: "Watch debounce (ms)",
				help:  "How long the clipboard watcher waits before classifying",
				text:  strconv.Itoa(current.DebounceMs),
			},
		},
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running settings form: %w", err)
	}

	final := finalModel.(settingsModel)
	if final.quitting && !final.completed {
		return nil, fmt.Errorf("settings edit cancelled")
	}

	debounce, err := strconv.Atoi(final.fields[3].text)
	if err != nil || debounce <= 0 {
		debounce = config.DefaultDebounceMs
	}

	return &config.Settings{
		ShowIntelligentSuggestions: final.fields[0].on,
		AutoDetectLanguage:         final.fields[1].on,
		CopyResults:                final.fields[2].on,
		DebounceMs:                 debounce,
	}, nil
}
