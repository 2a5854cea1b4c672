package textutil

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "single line no newline",
			input:    "hello",
			expected: []string{"hello"},
		},
		{
			name:     "trailing newline dropped",
			input:    "a\nb\n",
			expected: []string{"a", "b"},
		},
		{
			name:     "windows line endings",
			input:    "a\r\nb\r\nc",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "interior blank lines kept",
			input:    "a\n\nb",
			expected: []string{"a", "", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitLines(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNonBlankLines(t *testing.T) {
	got := NonBlankLines("  a  \n\n\t\nb\n")
	expected := []string{"a", "b"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("NonBlankLines = %v, want %v", got, expected)
	}
}

func TestDetectCaseShape(t *testing.T) {
	tests := []struct {
		input    string
		expected CaseShape
	}{
		{"HELLO WORLD 123", CaseUpper},
		{"hello world", CaseLower},
		{"Hello world", CaseMixed},
		{"1234 !!!", CaseMixed},
		{"", CaseMixed},
	}

	for _, tt := range tests {
		if got := DetectCaseShape(tt.input); got != tt.expected {
			t.Errorf("DetectCaseShape(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLineShapeChecks(t *testing.T) {
	if !HasDuplicateLines("a\nb\na") {
		t.Error("expected duplicate lines in 'a\\nb\\na'")
	}
	if HasDuplicateLines("a\nb\nc") {
		t.Error("did not expect duplicates in 'a\\nb\\nc'")
	}
	if !HasBlankLines("a\n\nb") {
		t.Error("expected blank line in 'a\\n\\nb'")
	}
	if HasBlankLines("a\nb") {
		t.Error("did not expect blank lines in 'a\\nb'")
	}
	if !HasEdgeWhitespace("  a\nb") {
		t.Error("expected edge whitespace in '  a'")
	}
	if HasEdgeWhitespace("a\nb") {
		t.Error("did not expect edge whitespace in 'a\\nb'")
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("one two  three\nfour"); got != 4 {
		t.Errorf("WordCount = %d, want 4", got)
	}
	if got := WordCount("   "); got != 0 {
		t.Errorf("WordCount of blanks = %d, want 0", got)
	}
}
