package detectors

import (
	"encoding/base64"
	"regexp"
	"unicode"
	"unicode/utf8"
)

var base64RunRe = regexp.MustCompile(`\b[A-Za-z0-9+/]{20,}={0,2}`)

// Base64Detector matches buffers containing at least one run of 20 or
// more base64 characters that decodes to readable text. The printable
// check keeps hex digests and long identifiers from qualifying.
type Base64Detector struct{}

func (d *Base64Detector) ID() string           { return "base64" }
func (d *Base64Detector) Priority() int        { return PriorityBase64 }
func (d *Base64Detector) ToastMessage() string { return "Base64 detected" }

func (d *Base64Detector) Detect(text string) bool {
	for _, run := range base64RunRe.FindAllString(text, -1) {
		if _, ok := decodeBase64Run(run); ok {
			return true
		}
	}
	return false
}

func (d *Base64Detector) Actions() []Action {
	return []Action{
		{ID: "base64-decode", Label: "Decode base64", Execute: base64DecodeRuns},
		{ID: "base64-encode", Label: "Encode as base64", Execute: base64Encode},
	}
}

// GetActions adds a decode-and-format action when one of the runs holds
// an encoded JSON document.
func (d *Base64Detector) GetActions(text string) []Action {
	actions := d.Actions()
	if _, ok := firstBase64JSONRun(text); ok {
		actions = append(actions, Action{
			ID:      "base64-decode-json",
			Label:   "Decode and format JSON",
			Execute: base64DecodeJSON,
		})
	}
	return actions
}

func decodeBase64Run(run string) (string, bool) {
	if len(run)%4 != 0 {
		return "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(run)
	if err != nil {
		return "", false
	}
	if !looksTextual(decoded) {
		return "", false
	}
	return string(decoded), true
}

// looksTextual reports whether the bytes are valid UTF-8 and at least
// 90% printable, which is what separates encoded text from binary that
// happens to fit the base64 alphabet.
func looksTextual(b []byte) bool {
	if len(b) == 0 || !utf8.Valid(b) {
		return false
	}
	total, printable := 0, 0
	for _, r := range string(b) {
		total++
		if unicode.IsGraphic(r) || r == ' ' || r == '\n' || r == '\r' || r == '\t' {
			printable++
		}
	}
	return printable*10 >= total*9
}

func base64DecodeRuns(text string) ActionResult {
	changed := false
	out := base64RunRe.ReplaceAllStringFunc(text, func(run string) string {
		decoded, ok := decodeBase64Run(run)
		if !ok {
			return run
		}
		changed = true
		return decoded
	})
	if !changed {
		return failed(text, "No decodable base64 found")
	}
	return replaced(out)
}

func base64Encode(text string) ActionResult {
	return replaced(base64.StdEncoding.EncodeToString([]byte(text)))
}

func firstBase64JSONRun(text string) (string, bool) {
	for _, run := range base64RunRe.FindAllString(text, -1) {
		decoded, ok := decodeBase64Run(run)
		if !ok {
			continue
		}
		if isJSONText(decoded) {
			return decoded, true
		}
	}
	return "", false
}

func base64DecodeJSON(text string) ActionResult {
	decoded, ok := firstBase64JSONRun(text)
	if !ok {
		return failed(text, "No base64-encoded JSON found")
	}
	return formatJSON(decoded)
}
