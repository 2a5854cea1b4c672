package spinner

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model pairs the bubbles spinner with a status message so every
// command animates waiting the same way. Embed it in a host model and
// forward non-key messages to Update.
type Model struct {
	spin    spinner.Model
	message string
}

func New(message string) Model {
	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6"))
	return Model{spin: s, message: message}
}

// Tick starts the animation; batch it into the host model's Init.
func (m Model) Tick() tea.Cmd {
	return m.spin.Tick
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.spin.View() + " " + m.message
}
