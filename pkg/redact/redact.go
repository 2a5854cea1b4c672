// Package redact provides the pure value-masking helpers shared by the
// secrets and env-file detectors.
package redact

import "strings"

// Marker replaces a sensitive span when it should disappear entirely.
const Marker = "[REDACTED]"

// visibleTail is how many trailing characters Value keeps so a masked
// credential stays recognizable without being recoverable.
const visibleTail = 4

// Value masks a sensitive value. Short values become all stars; longer
// values keep their last four characters visible.
func Value(v string) string {
	runes := []rune(v)
	n := len(runes)
	if n == 0 {
		return ""
	}
	if n <= visibleTail*2 {
		return strings.Repeat("*", n)
	}
	var b strings.Builder
	b.Grow(n)
	for i, r := range runes {
		if i >= n-visibleTail {
			b.WriteRune(r)
		} else {
			b.WriteRune('*')
		}
	}
	return b.String()
}

// Full masks every rune of the value, preserving only its length.
func Full(v string) string {
	n := len([]rune(v))
	if n == 0 {
		return ""
	}
	return strings.Repeat("*", n)
}
