// Package textutil provides the small pure text helpers shared by the
// detectors and the CLI: line splitting, shape checks, word counting.
package textutil

import (
	"strings"
	"unicode"
)

// SplitLines splits a buffer into lines on '\n', tolerating '\r\n'.
// A trailing newline does not produce a final empty element.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, strings.TrimSuffix(s[start:i], "\r"))
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, strings.TrimSuffix(s[start:], "\r"))
	}
	return lines
}

// NonBlankLines returns the trimmed non-empty lines of the buffer.
func NonBlankLines(s string) []string {
	var out []string
	for _, line := range SplitLines(s) {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// HasBlankLines reports whether any line is empty or whitespace-only.
func HasBlankLines(s string) bool {
	for _, line := range SplitLines(s) {
		if strings.TrimSpace(line) == "" {
			return true
		}
	}
	return false
}

// HasDuplicateLines reports whether any line occurs more than once.
func HasDuplicateLines(s string) bool {
	seen := make(map[string]struct{})
	for _, line := range SplitLines(s) {
		if _, ok := seen[line]; ok {
			return true
		}
		seen[line] = struct{}{}
	}
	return false
}

// HasEdgeWhitespace reports whether any line carries leading or trailing
// spaces or tabs.
func HasEdgeWhitespace(s string) bool {
	for _, line := range SplitLines(s) {
		if line != strings.TrimSpace(line) {
			return true
		}
	}
	return false
}

// CaseShape describes the letter casing of a buffer.
type CaseShape int

const (
	CaseMixed CaseShape = iota
	CaseUpper
	CaseLower
)

// DetectCaseShape classifies the buffer's casing, considering letters only.
// A buffer without cased letters counts as mixed.
func DetectCaseShape(s string) CaseShape {
	hasUpper := false
	hasLower := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
		if hasUpper && hasLower {
			return CaseMixed
		}
	}
	switch {
	case hasUpper && !hasLower:
		return CaseUpper
	case hasLower && !hasUpper:
		return CaseLower
	default:
		return CaseMixed
	}
}

// WordCount returns the number of whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
