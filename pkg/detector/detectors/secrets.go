package detectors

import (
	"regexp"
	"strings"

	"textlens/pkg/redact"
)

// Credential patterns. Any single match classifies the buffer; mask and
// redact reuse the capture groups to edit only the sensitive span.
var (
	pemHeaderRe = regexp.MustCompile(`-----BEGIN (?:[A-Z]+ )*(?:PRIVATE KEY|PUBLIC KEY|CERTIFICATE)-----`)
	pemBlockRe  = regexp.MustCompile(`(?s)-----BEGIN (?:[A-Z]+ )*(?:PRIVATE KEY|PUBLIC KEY|CERTIFICATE)-----.*?-----END (?:[A-Z]+ )*(?:PRIVATE KEY|PUBLIC KEY|CERTIFICATE)-----`)
	credURIRe   = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://[^\s:@/]+:([^\s@/]+)@\S+`)
	bearerRe    = regexp.MustCompile(`(?i)\bbearer\s+([A-Za-z0-9._~+/=-]{10,})`)
	vendorKeyRe = regexp.MustCompile(`\b(?:(?:AKIA|ASIA|AGPA|AIDA)[0-9A-Z]{16}|xox[bpars]-[0-9A-Za-z-]{10,}|sk_live_[0-9A-Za-z]{10,}|pk_live_[0-9A-Za-z]{10,}|sk-[A-Za-z0-9]{20,}|gh[po]_[A-Za-z0-9]{20,}|AIza[0-9A-Za-z_-]{30,})`)

	// Assignments whose name contains a secret-like word as a whole
	// underscore/hyphen segment, so API_KEY and SECRET_KEY_BASE match
	// but "keyword" and "monkey" do not.
	secretAssignRe = regexp.MustCompile(`(?i)\b((?:[A-Z0-9]+[_-])*(?:KEY|TOKEN|SECRET|PASSWORD|PASSWD|CREDENTIALS?)(?:[_-][A-Z0-9]+)*["']?\s*[=:]\s*["']?)([^\s"']{6,})(["']?)`)
)

// SecretDetector flags credential material: secret-like assignments,
// vendor API keys, bearer tokens, credentialed URIs, and PEM blocks.
type SecretDetector struct{}

func (d *SecretDetector) ID() string    { return "secret" }
func (d *SecretDetector) Priority() int { return PrioritySecret }

func (d *SecretDetector) Detect(text string) bool {
	return pemHeaderRe.MatchString(text) ||
		credURIRe.MatchString(text) ||
		bearerRe.MatchString(text) ||
		vendorKeyRe.MatchString(text) ||
		secretAssignRe.MatchString(text)
}

func (d *SecretDetector) ToastMessage() string { return "Sensitive data detected" }

func (d *SecretDetector) Actions() []Action {
	return []Action{
		{ID: "mask-secrets", Label: "Mask secrets", Execute: maskSecrets},
		{ID: "redact-secrets", Label: "Redact secrets", Execute: redactSecrets},
	}
}

func maskSecrets(text string) ActionResult {
	out := pemBlockRe.ReplaceAllString(text, redact.Marker)
	out = replaceSpan(secretAssignRe, out, 2, redact.Value)
	out = replaceSpan(bearerRe, out, 1, redact.Value)
	out = replaceSpan(credURIRe, out, 1, redact.Value)
	out = replaceSpan(vendorKeyRe, out, 0, redact.Value)
	return replaced(out)
}

func redactSecrets(text string) ActionResult {
	marker := func(string) string { return redact.Marker }
	out := pemBlockRe.ReplaceAllString(text, redact.Marker)
	out = replaceSpan(secretAssignRe, out, 2, marker)
	out = replaceSpan(bearerRe, out, 1, marker)
	out = replaceSpan(credURIRe, out, 1, marker)
	out = replaceSpan(vendorKeyRe, out, 0, marker)
	return replaced(out)
}

// replaceSpan rewrites one capture group of every match, leaving the rest
// of the match and all surrounding text intact.
func replaceSpan(re *regexp.Regexp, text string, group int, repl func(string) string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[2*group], m[2*group+1]
		if start < 0 || start < last {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(repl(text[start:end]))
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}
