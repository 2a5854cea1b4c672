package detector

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"textlens/pkg/detector/detectors"
)

// minDetectLength is the smallest trimmed input worth classifying.
// Anything shorter returns no result at all.
const minDetectLength = 5

// Result is what a successful classification yields: the winning
// detector, its toast line, the action list and an optional language
// hint for syntax highlighting.
type Result struct {
	DetectorID        string             `json:"detector_id"`
	ToastMessage      string             `json:"toast_message"`
	Actions           []detectors.Action `json:"actions"`
	SuggestedLanguage string             `json:"suggested_language,omitempty"`
}

// ActionIDs returns the IDs of the offered actions in order.
func (r *Result) ActionIDs() []string {
	ids := make([]string, len(r.Actions))
	for i, a := range r.Actions {
		ids[i] = a.ID
	}
	return ids
}

// DetectContent classifies text against the registry in priority order
// and returns the first match. The fallback detector matches anything,
// so a nil result only means the input was too short.
func DetectContent(text string) *Result {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minDetectLength {
		return nil
	}
	for _, d := range registry {
		if d.Detect(text) {
			return materialize(d, text)
		}
	}
	return nil
}

// materialize builds the Result, letting detectors that inspect the
// text refine their static toast, actions and language hint.
func materialize(d detectors.Detector, text string) *Result {
	res := &Result{
		DetectorID:   d.ID(),
		ToastMessage: d.ToastMessage(),
		Actions:      d.Actions(),
	}
	if m, ok := d.(detectors.ToastMessager); ok {
		res.ToastMessage = m.GetToastMessage(text)
	}
	if p, ok := d.(detectors.ActionsProvider); ok {
		res.Actions = p.GetActions(text)
	}
	if h, ok := d.(detectors.LanguageHinter); ok {
		res.SuggestedLanguage = h.SuggestedLanguage()
	}
	if s, ok := d.(detectors.LanguageSuggester); ok {
		if lang, found := s.GetSuggestedLanguage(text); found {
			res.SuggestedLanguage = lang
		}
	}
	return res
}

// ApplyAction classifies text, then runs the named action from the
// winning detector against it.
func ApplyAction(text, actionID string) (detectors.ActionResult, error) {
	res := DetectContent(text)
	if res == nil {
		return detectors.ActionResult{}, fmt.Errorf("input too short to classify")
	}
	for _, a := range res.Actions {
		if a.ID == actionID {
			return a.Execute(text), nil
		}
	}
	return detectors.ActionResult{}, fmt.Errorf("action %q not available for %s content", actionID, res.DetectorID)
}
