package detectors

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"textlens/pkg/textutil"
)

var (
	uuidLineRe = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	uuidScanRe = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

// UUIDDetector matches buffers whose non-blank lines are all canonical
// 8-4-4-4-12 UUIDs. Buffers that merely contain a UUID somewhere keep
// their own classification.
type UUIDDetector struct{}

func (d *UUIDDetector) ID() string    { return "uuid" }
func (d *UUIDDetector) Priority() int { return PriorityUUID }

func (d *UUIDDetector) Detect(text string) bool {
	lines := textutil.NonBlankLines(text)
	if len(lines) == 0 {
		return false
	}
	for _, line := range lines {
		if !uuidLineRe.MatchString(strings.TrimSpace(line)) {
			return false
		}
	}
	return true
}

func (d *UUIDDetector) ToastMessage() string { return "UUID detected" }

func (d *UUIDDetector) Actions() []Action {
	return []Action{
		{ID: "uuid-uppercase", Label: "Uppercase", Execute: uuidUppercase},
		{ID: "uuid-lowercase", Label: "Lowercase", Execute: uuidLowercase},
		{ID: "uuid-remove-hyphens", Label: "Remove hyphens", Execute: uuidRemoveHyphens},
		{ID: "uuid-validate", Label: "Validate", Execute: uuidValidate},
	}
}

func uuidUppercase(text string) ActionResult {
	return replaced(uuidScanRe.ReplaceAllStringFunc(text, strings.ToUpper))
}

func uuidLowercase(text string) ActionResult {
	return replaced(uuidScanRe.ReplaceAllStringFunc(text, strings.ToLower))
}

func uuidRemoveHyphens(text string) ActionResult {
	return replaced(uuidScanRe.ReplaceAllStringFunc(text, func(m string) string {
		return strings.ReplaceAll(m, "-", "")
	}))
}

func uuidValidate(text string) ActionResult {
	var (
		first uuid.UUID
		count int
	)
	for i, line := range textutil.SplitLines(text) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		u, err := uuid.Parse(trimmed)
		if err != nil {
			res := failed(text, fmt.Sprintf("Invalid UUID on line %d: %v", i+1, err))
			res.ErrorLine = i + 1
			return res
		}
		if count == 0 {
			first = u
		}
		count++
	}
	if count == 0 {
		return failed(text, "No UUID found")
	}

	if count == 1 {
		return succeeded(text, fmt.Sprintf("Valid UUID (version %d, variant %s)", byte(first.Version()), first.Variant()))
	}
	return succeeded(text, fmt.Sprintf("All %d UUIDs valid", count))
}
