package detectors

import (
	"regexp"
	"sort"
	"strings"

	"textlens/pkg/redact"
	"textlens/pkg/textutil"
)

// envEntryRe captures indent, key, separator and raw value so edits can
// rebuild the line byte-for-byte around the changed part.
var envEntryRe = regexp.MustCompile(`^(\s*)([A-Z][A-Z0-9_]*)(\s*=\s*)(.*)$`)

// EnvFileDetector matches dotenv-style buffers: at least two
// UPPER_SNAKE=value lines making up more than half of the non-comment,
// non-blank lines.
type EnvFileDetector struct{}

func (d *EnvFileDetector) ID() string    { return "envfile" }
func (d *EnvFileDetector) Priority() int { return PriorityEnvFile }

func (d *EnvFileDetector) Detect(text string) bool {
	entries, considered := 0, 0
	for _, line := range textutil.SplitLines(text) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		considered++
		if envEntryRe.MatchString(line) {
			entries++
		}
	}
	return entries >= 2 && entries*2 > considered
}

func (d *EnvFileDetector) ToastMessage() string { return "Env file detected" }

func (d *EnvFileDetector) Actions() []Action {
	return []Action{
		{ID: "env-sort-keys", Label: "Sort keys", Execute: envSortKeys},
		{ID: "env-mask-values", Label: "Mask values", Execute: envMaskValues},
		{ID: "env-to-json", Label: "Convert to JSON", Execute: envToJSON},
	}
}

type envUnit struct {
	key   string
	lines []string
}

// envSortKeys orders entries alphabetically. Comment lines directly
// above an entry travel with it; a top comment block separated from the
// first entry by a blank line is a header and stays put. Other blank
// lines are dropped.
func envSortKeys(text string) ActionResult {
	lines := textutil.SplitLines(text)

	firstEntry := -1
	for i, line := range lines {
		if envEntryRe.MatchString(line) {
			firstEntry = i
			break
		}
	}
	if firstEntry < 0 {
		return replaced(text)
	}

	attachStart := firstEntry
	for attachStart > 0 && strings.HasPrefix(strings.TrimSpace(lines[attachStart-1]), "#") {
		attachStart--
	}

	header := lines[:attachStart]
	for len(header) > 0 && strings.TrimSpace(header[len(header)-1]) == "" {
		header = header[:len(header)-1]
	}

	var units []envUnit
	var pending []string
	for _, line := range lines[attachStart:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if m := envEntryRe.FindStringSubmatch(line); m != nil {
			units = append(units, envUnit{key: m[2], lines: append(pending, line)})
			pending = nil
			continue
		}
		pending = append(pending, line)
	}
	sort.SliceStable(units, func(i, j int) bool { return units[i].key < units[j].key })

	var out []string
	if len(header) > 0 {
		out = append(out, header...)
		out = append(out, "")
	}
	for _, unit := range units {
		out = append(out, unit.lines...)
	}
	out = append(out, pending...)
	return replaced(strings.Join(out, "\n"))
}

func envMaskValues(text string) ActionResult {
	lines := textutil.SplitLines(text)
	out := make([]string, len(lines))
	for i, line := range lines {
		if m := envEntryRe.FindStringSubmatch(line); m != nil && m[4] != "" {
			out[i] = m[1] + m[2] + m[3] + redact.Full(m[4])
			continue
		}
		out[i] = line
	}
	return replaced(strings.Join(out, "\n"))
}

func envToJSON(text string) ActionResult {
	obj := make(map[string]string)
	for _, line := range textutil.SplitLines(text) {
		if m := envEntryRe.FindStringSubmatch(line); m != nil {
			obj[m[2]] = unquoteEnvValue(m[4])
		}
	}
	if len(obj) == 0 {
		return failed(text, "No entries found")
	}
	out, err := prettyJSON(obj)
	if err != nil {
		return failed(text, "Cannot encode JSON: "+err.Error())
	}
	return replaced(out)
}

func unquoteEnvValue(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
