package detectors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"textlens/pkg/textutil"
)

// yamlEntryRe matches a "key: value" mapping line. Quoted JSON keys and
// URL-style "scheme://" colons do not qualify because the value must be
// separated by whitespace.
var yamlEntryRe = regexp.MustCompile(`^\s*[\w.-]+\s*:\s+\S`)

// JSONYAMLDetector matches JSON documents (delimited and parseable) and,
// failing that, YAML-style mapping documents.
type JSONYAMLDetector struct{}

func (d *JSONYAMLDetector) ID() string    { return "jsonyaml" }
func (d *JSONYAMLDetector) Priority() int { return PriorityJSONYAML }

func (d *JSONYAMLDetector) Detect(text string) bool {
	return isJSONText(text) || isYAMLText(text)
}

func (d *JSONYAMLDetector) ToastMessage() string { return "Structured data detected" }

func (d *JSONYAMLDetector) GetToastMessage(text string) string {
	if isJSONText(text) {
		return "JSON detected"
	}
	return "YAML detected"
}

func (d *JSONYAMLDetector) Actions() []Action { return jsonActions() }

func (d *JSONYAMLDetector) GetActions(text string) []Action {
	if isJSONText(text) {
		return jsonActions()
	}
	return []Action{
		{ID: "yaml-to-json", Label: "Convert to JSON", Execute: yamlToJSON},
	}
}

func (d *JSONYAMLDetector) GetSuggestedLanguage(text string) (string, bool) {
	if isJSONText(text) {
		return "json", true
	}
	if isYAMLText(text) {
		return "yaml", true
	}
	return "", false
}

func jsonActions() []Action {
	return []Action{
		{ID: "format-json", Label: "Format JSON", Execute: formatJSON},
		{ID: "minify-json", Label: "Minify JSON", Execute: minifyJSON},
		{ID: "sort-json-keys", Label: "Sort keys", Execute: sortJSONKeys},
	}
}

func isJSONText(text string) bool {
	t := strings.TrimSpace(text)
	if len(t) < 2 {
		return false
	}
	first, last := t[0], t[len(t)-1]
	delimited := (first == '{' && last == '}') || (first == '[' && last == ']')
	return delimited && json.Valid([]byte(t))
}

func isYAMLText(text string) bool {
	count := 0
	for _, line := range textutil.SplitLines(text) {
		if yamlEntryRe.MatchString(line) {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

func formatJSON(text string) ActionResult {
	src := strings.TrimSpace(text)
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(src), "", "  "); err != nil {
		return jsonFailure(text, src, err)
	}
	return replaced(buf.String())
}

func minifyJSON(text string) ActionResult {
	src := strings.TrimSpace(text)
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(src)); err != nil {
		return jsonFailure(text, src, err)
	}
	return replaced(buf.String())
}

// sortJSONKeys re-encodes the document through Go maps, which marshal
// with sorted keys at every nesting level. Array order is untouched.
func sortJSONKeys(text string) ActionResult {
	src := strings.TrimSpace(text)
	var v any
	if err := json.Unmarshal([]byte(src), &v); err != nil {
		return jsonFailure(text, src, err)
	}
	out, err := prettyJSON(v)
	if err != nil {
		return failed(text, "Cannot re-encode JSON: "+err.Error())
	}
	return replaced(out)
}

func yamlToJSON(text string) ActionResult {
	var v any
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		return failed(text, "Invalid YAML: "+err.Error())
	}
	out, err := prettyJSON(normalizeYAMLValue(v))
	if err != nil {
		return failed(text, "Cannot convert to JSON: "+err.Error())
	}
	return replaced(out)
}

// jsonFailure reports a parse error with a 1-based buffer position
// derived from the decoder's byte offset.
func jsonFailure(text, src string, err error) ActionResult {
	res := failed(text, "Invalid JSON: "+err.Error())
	var syn *json.SyntaxError
	if !errors.As(err, &syn) {
		return res
	}
	lead := strings.Index(text, src)
	if lead < 0 {
		lead = 0
	}
	offset := lead + int(syn.Offset)
	if offset > len(text) {
		offset = len(text)
	}
	if offset > 0 {
		offset--
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	res.ErrorLine = line
	res.ErrorColumn = col
	return res
}

// prettyJSON renders v with two-space indent and no HTML escaping.
func prettyJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// compactJSON renders v minified with no HTML escaping.
func compactJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// normalizeYAMLValue rewrites yaml.v3's occasional map[any]any nodes into
// map[string]any so the value can be JSON-encoded.
func normalizeYAMLValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = normalizeYAMLValue(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[fmt.Sprint(k)] = normalizeYAMLValue(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = normalizeYAMLValue(val)
		}
		return out
	default:
		return v
	}
}
