package detectors

// Detector classifies a text buffer and offers transformations for it.
// Implementations must be pure: Detect and every Action.Execute are
// side-effect free, total, and must not panic on arbitrary UTF-8 input.
type Detector interface {
	// ID returns the unique identifier for this detector
	ID() string

	// Priority returns the evaluation rank; lower values are checked first
	// and win when several detectors match the same buffer
	Priority() int

	// Detect reports whether the buffer looks like this content kind
	Detect(text string) bool

	// ToastMessage returns the static suggestion headline
	ToastMessage() string

	// Actions returns the static transformation list
	Actions() []Action
}

// ToastMessager is an optional hook for content-dependent toast messages.
// When implemented, it takes precedence over the static ToastMessage.
type ToastMessager interface {
	GetToastMessage(text string) string
}

// ActionsProvider is an optional hook for content-dependent action lists.
// When implemented, it takes precedence over the static Actions.
type ActionsProvider interface {
	GetActions(text string) []Action
}

// LanguageHinter exposes a static syntax-highlighting language suggestion.
type LanguageHinter interface {
	SuggestedLanguage() string
}

// LanguageSuggester is an optional hook for content-dependent language
// suggestions. When implemented, it takes precedence over LanguageHinter.
type LanguageSuggester interface {
	GetSuggestedLanguage(text string) (string, bool)
}

// Action is a named, pure text transformation offered once its detector
// matches. Execute receives the full buffer and returns the replacement.
type Action struct {
	ID      string                         `json:"id"`
	Label   string                         `json:"label"`
	Execute func(text string) ActionResult `json:"-"`
}

// ValidationKind classifies an action's validation outcome.
type ValidationKind string

const (
	ValidationNone    ValidationKind = ""
	ValidationSuccess ValidationKind = "success"
	ValidationError   ValidationKind = "error"
)

// ActionResult carries an action's replacement text plus an optional
// validation outcome and error location for inline diagnostics.
// ErrorLine and ErrorColumn are 1-based; zero means unset.
type ActionResult struct {
	Text              string         `json:"text"`
	ValidationMessage string         `json:"validation_message,omitempty"`
	Validation        ValidationKind `json:"validation,omitempty"`
	ErrorLine         int            `json:"error_line,omitempty"`
	ErrorColumn       int            `json:"error_column,omitempty"`
}

// SwitchLanguagePrefix marks no-op actions whose id instructs the host to
// change the editor's syntax-highlighting mode instead of editing text.
const SwitchLanguagePrefix = "switch-language:"

// SwitchLanguageAction builds the conventional language-mode action: the
// transform leaves the buffer untouched, the id carries the signal.
func SwitchLanguageAction(lang string) Action {
	return Action{
		ID:    SwitchLanguagePrefix + lang,
		Label: "Switch editor to " + lang,
		Execute: func(text string) ActionResult {
			return ActionResult{Text: text}
		},
	}
}

func replaced(text string) ActionResult {
	return ActionResult{Text: text}
}

func succeeded(text, message string) ActionResult {
	return ActionResult{Text: text, ValidationMessage: message, Validation: ValidationSuccess}
}

func failed(text, message string) ActionResult {
	return ActionResult{Text: text, ValidationMessage: message, Validation: ValidationError}
}
