package detectors

import (
	"strings"
	"testing"
)

const jsTrace = `TypeError: Cannot read properties of undefined
    at foo (app.js:10:5)
    at bar (app.js:20:3)
    at baz (app.js:30:1)
    at qux (app.js:40:2)
    at quux (app.js:50:7)`

const pyTrace = `Traceback (most recent call last):
  File "main.py", line 10, in <module>
    run()
  File "lib.py", line 5, in run
    raise ValueError("boom")
ValueError: boom`

const goTrace = `panic: runtime error: index out of range [3]

goroutine 1 [running]:
main.pick(...)
	/app/main.go:14
main.main()
	/app/main.go:8 +0x1d`

func TestStackTraceDetect(t *testing.T) {
	d := &StackTraceDetector{}

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"javascript", jsTrace, true},
		{"python", pyTrace, true},
		{"go panic", goTrace, true},
		{"caused by chain", "Exception: top\nCaused by: IOError\nCaused by: disk full", true},
		{"two lines only", "TypeError: x\n    at foo (a.js:1:1)", false},
		{"prose", "one line\ntwo line\nthree line", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.input); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStackExtractErrors(t *testing.T) {
	t.Run("python", func(t *testing.T) {
		got := stackExtractErrors(pyTrace).Text
		if got != "ValueError: boom" {
			t.Errorf("stackExtractErrors = %q", got)
		}
	})

	t.Run("javascript", func(t *testing.T) {
		got := stackExtractErrors(jsTrace).Text
		if got != "TypeError: Cannot read properties of undefined" {
			t.Errorf("stackExtractErrors = %q", got)
		}
	})

	t.Run("none found", func(t *testing.T) {
		got := stackExtractErrors("a\nb\nc")
		if got.Validation != ValidationError {
			t.Errorf("expected validation error, got %+v", got)
		}
	})
}

func TestStackCollapseFrames(t *testing.T) {
	got := stackCollapseFrames(jsTrace).Text
	want := `TypeError: Cannot read properties of undefined
    at foo (app.js:10:5)
    at bar (app.js:20:3)
    at baz (app.js:30:1)
    ... 2 more frames`
	if got != want {
		t.Errorf("stackCollapseFrames =\n%s\nwant\n%s", got, want)
	}
}

func TestStackCollapseShortRunUntouched(t *testing.T) {
	input := "Error: x\n    at foo (a.js:1:1)\n    at bar (a.js:2:2)\n    at baz (a.js:3:3)"
	if got := stackCollapseFrames(input).Text; got != input {
		t.Errorf("three frames must stay uncollapsed, got %q", got)
	}
}

func TestStackIssueTemplate(t *testing.T) {
	got := stackIssueTemplate(jsTrace).Text

	if !strings.HasPrefix(got, "## Error report") {
		t.Errorf("template missing heading:\n%s", got)
	}
	if !strings.Contains(got, "**Summary:** TypeError: Cannot read properties of undefined") {
		t.Errorf("template missing summary:\n%s", got)
	}
	if !strings.Contains(got, "```\nTypeError") {
		t.Errorf("template missing fenced trace:\n%s", got)
	}
}
