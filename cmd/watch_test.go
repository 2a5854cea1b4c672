package cmd

import (
	"strings"
	"testing"
	"time"

	"textlens/pkg/config"

	tea "github.com/charmbracelet/bubbletea"
)

func watchSettings() *config.Settings {
	return &config.Settings{
		AutoDetectLanguage:         true,
		ShowIntelligentSuggestions: true,
		DebounceMs:                 10,
	}
}

func TestWatchModelClassifiesAfterDebounce(t *testing.T) {
	m := newWatchModel(make(chan string), watchSettings(), 10*time.Millisecond)

	next, _ := m.Update(clipboardChangeMsg{text: `{"a": 1}`})
	m = next.(watchModel)
	if m.result != nil {
		t.Fatal("classification ran before the debounce elapsed")
	}

	next, _ = m.Update(debounceElapsedMsg{generation: m.generation})
	m = next.(watchModel)
	if m.result == nil || m.result.DetectorID != "jsonyaml" {
		t.Fatalf("result = %+v, want jsonyaml", m.result)
	}
}

func TestWatchModelDiscardsStaleDebounce(t *testing.T) {
	m := newWatchModel(make(chan string), watchSettings(), 10*time.Millisecond)

	next, _ := m.Update(clipboardChangeMsg{text: `{"a": 1}`})
	m = next.(watchModel)
	stale := m.generation

	next, _ = m.Update(clipboardChangeMsg{text: "SELECT id FROM users;"})
	m = next.(watchModel)

	next, _ = m.Update(debounceElapsedMsg{generation: stale})
	m = next.(watchModel)
	if m.result != nil {
		t.Fatal("stale debounce tick produced a result")
	}

	next, _ = m.Update(debounceElapsedMsg{generation: m.generation})
	m = next.(watchModel)
	if m.result == nil || m.result.DetectorID != "sql" {
		t.Fatalf("result = %+v, want sql", m.result)
	}
}

func TestWatchModelAppliesActionByNumber(t *testing.T) {
	m := newWatchModel(make(chan string), watchSettings(), 10*time.Millisecond)

	next, _ := m.Update(clipboardChangeMsg{text: `{"a": 1}`})
	m = next.(watchModel)
	next, _ = m.Update(debounceElapsedMsg{generation: m.generation})
	m = next.(watchModel)

	if len(m.result.Actions) < 2 || m.result.Actions[1].ID != "minify-json" {
		t.Fatalf("unexpected action list: %v", m.result.ActionIDs())
	}

	// Out-of-range numbers are ignored.
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}})
	m = next.(watchModel)
	if cmd != nil {
		t.Fatal("expected no command for an out-of-range action number")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = next.(watchModel)
	if cmd == nil {
		t.Fatal("expected an apply command")
	}

	applied, ok := cmd().(actionAppliedMsg)
	if !ok {
		t.Fatalf("cmd() produced %T, want actionAppliedMsg", cmd())
	}
	if applied.outcome.Text != `{"a":1}` {
		t.Errorf("outcome text = %q, want %q", applied.outcome.Text, `{"a":1}`)
	}

	next, _ = m.Update(applied)
	m = next.(watchModel)
	if !strings.Contains(m.status, `{"a":1}`) {
		t.Errorf("status = %q, want it to mention the result", m.status)
	}
}

func TestWatchModelQuitKeys(t *testing.T) {
	m := newWatchModel(make(chan string), watchSettings(), time.Millisecond)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(watchModel).quitting {
		t.Error("ctrl+c did not mark the model quitting")
	}
	if cmd == nil {
		t.Error("ctrl+c did not produce a quit command")
	}
}
