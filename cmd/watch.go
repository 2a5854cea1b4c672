package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"textlens/cmd/ui/spinner"
	"textlens/pkg/clipboard"
	"textlens/pkg/config"
	"textlens/pkg/detector"
	"textlens/pkg/detector/detectors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	watchTitleStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	watchToastStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	watchNumberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	watchActionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	watchStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	watchErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	watchHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the clipboard and classify every change",
	Long: `Poll the clipboard and classify its content once it has been stable
for one debounce interval (settings key 'debounce_ms', default 500).

In a terminal an action panel refreshes with every change and pressing
1-9 applies an action. Otherwise each classification is emitted as JSON.`,
	Args: cobra.NoArgs,
	Run:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) {
	if !clipboard.Available() {
		fmt.Fprintln(os.Stderr, "Error: no clipboard backend available on this system")
		os.Exit(1)
	}

	settings := loadSettingsOrExit()
	interval := settings.Debounce()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	changes := clipboard.NewWatcher(interval).Watch(ctx)

	interactive := !jsonOutput && !skipInteractive &&
		settings.ShowIntelligentSuggestions && isTerminal()
	if !interactive {
		watchJSONLoop(ctx, changes, settings, interval)
		return
	}

	p := tea.NewProgram(newWatchModel(changes, settings, interval), tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// watchJSONLoop prints one JSON result per stable clipboard change. A
// change arriving while the debounce timer runs restarts it, and a
// finished classification is dropped when newer content already arrived.
func watchJSONLoop(ctx context.Context, changes <-chan string, settings *config.Settings, interval time.Duration) {
	var pending string
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case text, ok := <-changes:
			if !ok {
				return
			}
			pending = text
			fire = time.After(interval)

		case <-fire:
			fire = nil
			result := detector.DetectContent(pending)

			select {
			case text, ok := <-changes:
				if !ok {
					return
				}
				pending = text
				fire = time.After(interval)
				continue
			default:
			}

			if result == nil {
				continue
			}
			applyLanguageSetting(result, settings)
			writeJSON(os.Stdout, result)
		}
	}
}

type clipboardChangeMsg struct{ text string }

type debounceElapsedMsg struct{ generation int }

type watcherClosedMsg struct{}

type actionAppliedMsg struct {
	outcome detectors.ActionResult
	label   string
	copied  bool
	err     error
}

// watchModel drives the interactive watch panel. Every clipboard change
// bumps the generation and arms a debounce tick; only a tick carrying
// the current generation classifies, so stale ticks fall through.
type watchModel struct {
	changes  <-chan string
	settings *config.Settings
	interval time.Duration
	spin     spinner.Model

	generation int
	pending    string
	text       string
	result     *detector.Result
	status     string
	statusErr  bool
	quitting   bool
}

func newWatchModel(changes <-chan string, settings *config.Settings, interval time.Duration) watchModel {
	return watchModel{
		changes:  changes,
		settings: settings,
		interval: interval,
		spin:     spinner.New("Watching clipboard..."),
	}
}

func waitForChange(changes <-chan string) tea.Cmd {
	return func() tea.Msg {
		text, ok := <-changes
		if !ok {
			return watcherClosedMsg{}
		}
		return clipboardChangeMsg{text: text}
	}
}

func (m watchModel) debounce() tea.Cmd {
	generation := m.generation
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return debounceElapsedMsg{generation: generation}
	})
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick(), waitForChange(m.changes))
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		default:
			return m.applyKey(msg.String())
		}

	case clipboardChangeMsg:
		m.pending = msg.text
		m.generation++
		return m, tea.Batch(waitForChange(m.changes), m.debounce())

	case debounceElapsedMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.text = m.pending
		m.result = detector.DetectContent(m.text)
		if m.result != nil {
			applyLanguageSetting(m.result, m.settings)
		}
		m.status = ""
		m.statusErr = false
		return m, nil

	case actionAppliedMsg:
		return m.withOutcome(msg), nil

	case watcherClosedMsg:
		m.quitting = true
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
}

// applyKey runs the numbered action against the classified text. The
// transformation happens inside the returned command so clipboard
// writes stay out of Update.
func (m watchModel) applyKey(key string) (tea.Model, tea.Cmd) {
	if m.result == nil || len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return m, nil
	}
	index := int(key[0] - '1')
	if index >= len(m.result.Actions) {
		return m, nil
	}

	action := m.result.Actions[index]
	text := m.text
	copyBack := copyResult || m.settings.CopyResults

	return m, func() tea.Msg {
		msg := actionAppliedMsg{label: action.Label}

		if strings.HasPrefix(action.ID, detectors.SwitchLanguagePrefix) {
			msg.outcome = detectors.ActionResult{
				Text:              text,
				ValidationMessage: "Editor language: " + strings.TrimPrefix(action.ID, detectors.SwitchLanguagePrefix),
				Validation:        detectors.ValidationSuccess,
			}
			return msg
		}

		msg.outcome = action.Execute(text)
		if copyBack {
			if err := clipboard.Write(msg.outcome.Text); err != nil {
				msg.err = err
				return msg
			}
			msg.copied = true
		}
		return msg
	}
}

func (m watchModel) withOutcome(msg actionAppliedMsg) watchModel {
	if msg.err != nil {
		m.status = "Failed to copy result: " + msg.err.Error()
		m.statusErr = true
		return m
	}

	switch {
	case msg.outcome.ValidationMessage != "":
		m.status = msg.outcome.ValidationMessage
		m.statusErr = msg.outcome.Validation == detectors.ValidationError
	case msg.copied:
		m.status = "Applied " + msg.label + ", result copied"
	default:
		preview := msg.outcome.Text
		if i := strings.IndexByte(preview, '\n'); i >= 0 {
			preview = preview[:i]
		}
		if runes := []rune(preview); len(runes) > 60 {
			preview = string(runes[:60]) + "..."
		}
		m.status = "Applied " + msg.label + ": " + preview
	}
	return m
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(watchTitleStyle.Render("textlens watch"))
	s.WriteString("\n\n")

	if m.result == nil {
		s.WriteString(m.spin.View())
		s.WriteString("\n\n")
		s.WriteString(watchHelpStyle.Render("Copy something to classify it. Press q to quit."))
		return s.String()
	}

	s.WriteString(watchToastStyle.Render(m.result.ToastMessage))
	s.WriteString("\n")
	if m.result.SuggestedLanguage != "" {
		s.WriteString(watchHelpStyle.Render("language: " + m.result.SuggestedLanguage))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	for i, action := range m.result.Actions {
		if i >= 9 {
			break
		}
		s.WriteString(fmt.Sprintf("  %s %s\n",
			watchNumberStyle.Render(fmt.Sprintf("%d.", i+1)),
			watchActionStyle.Render(action.Label)))
	}

	if m.status != "" {
		style := watchStatusStyle
		if m.statusErr {
			style = watchErrorStyle
		}
		s.WriteString("\n")
		s.WriteString(style.Render(m.status))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.spin.View())
	s.WriteString("\n\n")
	s.WriteString(watchHelpStyle.Render("Press 1-9 to apply an action, q to quit"))

	return s.String()
}
