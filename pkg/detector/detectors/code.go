package detectors

import "regexp"

var (
	tsFunctionRe    = regexp.MustCompile(`\bfunction\s+[\w$]+\s*\(`)
	tsArrowRe       = regexp.MustCompile(`(?m)\b(?:const|let)\s+[\w$]+\s*=[^=\n]*=>`)
	pyDefRe         = regexp.MustCompile(`(?m)^\s*def\s+\w+\s*\(`)
	rustFnRe        = regexp.MustCompile(`\b(?:pub\s+)?fn\s+\w+\s*\(`)
	goFuncRe        = regexp.MustCompile(`(?m)^func\s+[\w(]`)
	goPackageRe     = regexp.MustCompile(`(?m)^package\s+\w+`)
	javaClassRe     = regexp.MustCompile(`\b(?:public|private)\s+(?:abstract\s+|final\s+|static\s+)*class\s+\w+`)
	importIncludeRe = regexp.MustCompile(`(?m)^\s*(?:import[\s("']|#include\s*[<"])`)
	classBraceRe    = regexp.MustCompile(`\bclass\s+\w+\s*\{`)
)

var codeLanguageLabels = map[string]string{
	"typescript": "TypeScript",
	"python":     "Python",
	"rust":       "Rust",
	"go":         "Go",
	"java":       "Java",
}

// CodeDetector matches source code fragments and names the language
// when one of the per-language signatures is present.
type CodeDetector struct{}

func (d *CodeDetector) ID() string           { return "code" }
func (d *CodeDetector) Priority() int        { return PriorityCode }
func (d *CodeDetector) ToastMessage() string { return "Code detected" }

func (d *CodeDetector) Detect(text string) bool {
	if _, ok := classifyCode(text); ok {
		return true
	}
	return importIncludeRe.MatchString(text) || classBraceRe.MatchString(text)
}

func (d *CodeDetector) GetToastMessage(text string) string {
	if lang, ok := classifyCode(text); ok {
		return codeLanguageLabels[lang] + " code detected"
	}
	return "Code detected"
}

func (d *CodeDetector) GetSuggestedLanguage(text string) (string, bool) {
	return classifyCode(text)
}

func (d *CodeDetector) Actions() []Action {
	return []Action{
		{ID: "wrap-code-fence", Label: "Wrap in code fence", Execute: wrapCodeFence},
	}
}

func (d *CodeDetector) GetActions(text string) []Action {
	actions := d.Actions()
	if lang, ok := classifyCode(text); ok {
		actions = append(actions, SwitchLanguageAction(lang))
	}
	return actions
}

// classifyCode checks language signatures from most to least specific.
// TypeScript wins over Python, then Rust, Go and Java.
func classifyCode(text string) (string, bool) {
	switch {
	case tsFunctionRe.MatchString(text) || tsArrowRe.MatchString(text):
		return "typescript", true
	case pyDefRe.MatchString(text):
		return "python", true
	case rustFnRe.MatchString(text):
		return "rust", true
	case goFuncRe.MatchString(text) && goPackageRe.MatchString(text):
		return "go", true
	case javaClassRe.MatchString(text):
		return "java", true
	}
	return "", false
}

func wrapCodeFence(text string) ActionResult {
	lang, _ := classifyCode(text)
	return replaced("```" + lang + "\n" + text + "\n```")
}
