package detectors

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"textlens/pkg/textutil"
)

// maxPlainTextActions caps the fallback suggestion list so the menu
// stays short.
const maxPlainTextActions = 5

// PlainTextDetector is the unconditional fallback. Its action list is
// assembled from what the buffer actually looks like instead of being
// fixed.
type PlainTextDetector struct{}

func (d *PlainTextDetector) ID() string           { return "plaintext" }
func (d *PlainTextDetector) Priority() int        { return PriorityPlainText }
func (d *PlainTextDetector) Detect(string) bool   { return true }
func (d *PlainTextDetector) ToastMessage() string { return "Plain text detected" }

func (d *PlainTextDetector) Actions() []Action {
	return []Action{
		caseLowerAction(),
		caseUpperAction(),
		caseTitleAction(),
		wordCountAction(),
	}
}

func (d *PlainTextDetector) GetActions(text string) []Action {
	var actions []Action
	switch textutil.DetectCaseShape(text) {
	case textutil.CaseUpper:
		actions = append(actions, caseLowerAction(), caseTitleAction())
	case textutil.CaseLower:
		actions = append(actions, caseUpperAction(), caseTitleAction())
	default:
		actions = append(actions, caseTitleAction())
	}
	if textutil.HasDuplicateLines(text) {
		actions = append(actions, Action{ID: "dedupe-lines", Label: "Remove duplicate lines", Execute: plainDedupeLines})
	}
	if textutil.HasBlankLines(text) {
		actions = append(actions, Action{ID: "remove-empty-lines", Label: "Remove empty lines", Execute: plainRemoveEmptyLines})
	}
	if textutil.HasEdgeWhitespace(text) {
		actions = append(actions, Action{ID: "trim-lines", Label: "Trim line whitespace", Execute: plainTrimLines})
	}
	if len(textutil.SplitLines(text)) >= 3 {
		actions = append(actions, Action{ID: "sort-lines", Label: "Sort lines", Execute: plainSortLines})
	}

	for _, filler := range []Action{wordCountAction(), caseLowerAction(), caseUpperAction(), caseTitleAction()} {
		if len(actions) >= maxPlainTextActions {
			break
		}
		if !containsAction(actions, filler.ID) {
			actions = append(actions, filler)
		}
	}
	if len(actions) > maxPlainTextActions {
		actions = actions[:maxPlainTextActions]
	}
	return actions
}

func containsAction(actions []Action, id string) bool {
	for _, a := range actions {
		if a.ID == id {
			return true
		}
	}
	return false
}

func caseLowerAction() Action {
	return Action{ID: "case-lower", Label: "Convert to lowercase", Execute: func(text string) ActionResult {
		return replaced(strings.ToLower(text))
	}}
}

func caseUpperAction() Action {
	return Action{ID: "case-upper", Label: "Convert to UPPERCASE", Execute: func(text string) ActionResult {
		return replaced(strings.ToUpper(text))
	}}
}

func caseTitleAction() Action {
	return Action{ID: "case-title", Label: "Convert to Title Case", Execute: func(text string) ActionResult {
		return replaced(cases.Title(language.Und).String(text))
	}}
}

func wordCountAction() Action {
	return Action{ID: "word-count", Label: "Count words", Execute: func(text string) ActionResult {
		words := textutil.WordCount(text)
		lines := len(textutil.SplitLines(text))
		chars := utf8.RuneCountInString(text)
		return succeeded(text, fmt.Sprintf("%d words, %d lines, %d characters", words, lines, chars))
	}}
}

func plainDedupeLines(text string) ActionResult {
	seen := make(map[string]bool)
	var out []string
	for _, line := range textutil.SplitLines(text) {
		if seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	return replaced(strings.Join(out, "\n"))
}

func plainRemoveEmptyLines(text string) ActionResult {
	var out []string
	for _, line := range textutil.SplitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return replaced(strings.Join(out, "\n"))
}

func plainTrimLines(text string) ActionResult {
	lines := textutil.SplitLines(text)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimSpace(line)
	}
	return replaced(strings.Join(out, "\n"))
}

func plainSortLines(text string) ActionResult {
	lines := textutil.SplitLines(text)
	sort.Strings(lines)
	return replaced(strings.Join(lines, "\n"))
}
