package detectors

import (
	"regexp"
	"sort"
	"strings"
)

// Independent CSS structure signals. Two of them must fire at once, so
// a stray "color:" in prose or a lone at-import never classifies.
var (
	cssSelectorBlockRe = regexp.MustCompile(`(?s)[^{}]+\{[^{}]*:[^{}]*;?[^{}]*\}`)
	cssAtRuleRe        = regexp.MustCompile(`@(?:media|import|keyframes|font-face)\b`)
	cssUnitRe          = regexp.MustCompile(`:\s*-?\d+(?:\.\d+)?(?:(?:px|em|rem|vh|vw|pt|ms|s)\b|%)`)
	cssPropertyRe      = regexp.MustCompile(`(?m)(?:^|[{;])\s*(?:color|background(?:-[a-z]+)?|margin(?:-[a-z]+)?|padding(?:-[a-z]+)?|display|position|font-size|font-family|font-weight|width|height|border(?:-[a-z]+)?|top|left|right|bottom|flex(?:-[a-z]+)?|grid(?:-[a-z]+)?|opacity|z-index|overflow|text-align|line-height)\s*:`)

	cssBlockRe = regexp.MustCompile(`\{[^{}]*\}`)
	cssDeclRe  = regexp.MustCompile(`^[-a-zA-Z][-\w]*\s*:\s*\S`)
)

// CSSDetector matches stylesheet fragments showing at least two
// structural signals.
type CSSDetector struct{}

func (d *CSSDetector) ID() string    { return "css" }
func (d *CSSDetector) Priority() int { return PriorityCSS }

func (d *CSSDetector) Detect(text string) bool {
	signals := 0
	if cssSelectorBlockRe.MatchString(text) {
		signals++
	}
	if cssAtRuleRe.MatchString(text) {
		signals++
	}
	if cssUnitRe.MatchString(text) {
		signals++
	}
	if cssPropertyRe.MatchString(text) {
		signals++
	}
	return signals >= 2
}

func (d *CSSDetector) ToastMessage() string { return "CSS detected" }

func (d *CSSDetector) SuggestedLanguage() string { return "css" }

func (d *CSSDetector) Actions() []Action {
	return []Action{
		{ID: "css-sort-declarations", Label: "Sort declarations", Execute: cssSortDeclarations},
	}
}

// cssSortDeclarations sorts the declarations of every innermost block
// alphabetically by property. Non-declaration content (comments, odd
// fragments) stays above the sorted run. Outer blocks of nested rules,
// whose direct children are blocks rather than declarations, are left
// alone.
func cssSortDeclarations(text string) ActionResult {
	return replaced(cssBlockRe.ReplaceAllStringFunc(text, cssSortBlock))
}

func cssSortBlock(block string) string {
	inner := block[1 : len(block)-1]
	if strings.TrimSpace(inner) == "" {
		return block
	}

	var props, others []string
	for _, line := range strings.Split(inner, "\n") {
		for _, unit := range strings.Split(line, ";") {
			unit = strings.TrimSpace(unit)
			if unit == "" {
				continue
			}
			if cssDeclRe.MatchString(unit) {
				props = append(props, unit+";")
			} else {
				others = append(others, unit)
			}
		}
	}
	sort.SliceStable(props, func(i, j int) bool {
		return cssPropName(props[i]) < cssPropName(props[j])
	})

	var b strings.Builder
	b.WriteString("{\n")
	for _, line := range others {
		b.WriteString("  " + line + "\n")
	}
	for _, line := range props {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func cssPropName(decl string) string {
	if i := strings.Index(decl, ":"); i >= 0 {
		return strings.ToLower(strings.TrimSpace(decl[:i]))
	}
	return strings.ToLower(decl)
}
