package detectors

import (
	"fmt"
	"regexp"
	"strings"

	"textlens/pkg/textutil"
)

var (
	jsFrameRe     = regexp.MustCompile(`(?m)^\s+at\s+\S+`)
	tracebackRe   = regexp.MustCompile(`Traceback \(most recent call last\)`)
	goroutineRe   = regexp.MustCompile(`(?m)^goroutine \d+ \[[^\]]*\]:`)
	panicLineRe   = regexp.MustCompile(`(?m)^panic(?:\([^)]*\))?:`)
	causedByRe    = regexp.MustCompile(`(?m)^Caused by:`)
	pyFrameRe     = regexp.MustCompile(`(?m)^\s*File "[^"]+", line \d+`)
	errorHeadRe   = regexp.MustCompile(`(?m)^.*(?:Exception|Error):`)
	frameIndentRe = regexp.MustCompile(`^(\s+)`)
)

// StackTraceDetector matches multi-line buffers carrying at least one
// frame or exception signature from the common runtimes.
type StackTraceDetector struct{}

func (d *StackTraceDetector) ID() string    { return "stacktrace" }
func (d *StackTraceDetector) Priority() int { return PriorityStackTrace }

func (d *StackTraceDetector) Detect(text string) bool {
	if len(textutil.SplitLines(text)) < 3 {
		return false
	}
	return jsFrameRe.MatchString(text) ||
		tracebackRe.MatchString(text) ||
		goroutineRe.MatchString(text) ||
		panicLineRe.MatchString(text) ||
		causedByRe.MatchString(text) ||
		pyFrameRe.MatchString(text) ||
		errorHeadRe.MatchString(text)
}

func (d *StackTraceDetector) ToastMessage() string { return "Stack trace detected" }

func (d *StackTraceDetector) Actions() []Action {
	return []Action{
		{ID: "stack-extract-errors", Label: "Extract error lines", Execute: stackExtractErrors},
		{ID: "stack-collapse-frames", Label: "Collapse frames", Execute: stackCollapseFrames},
		{ID: "stack-issue-template", Label: "Issue report template", Execute: stackIssueTemplate},
	}
}

func isErrorSummaryLine(line string) bool {
	return errorHeadRe.MatchString(line) ||
		panicLineRe.MatchString(line) ||
		causedByRe.MatchString(line)
}

// isFrameLine marks the per-frame body lines that collapse folds away:
// "at ..." frames, Python File lines, and tab-indented location lines.
func isFrameLine(line string) bool {
	return jsFrameRe.MatchString(line) ||
		pyFrameRe.MatchString(line) ||
		strings.HasPrefix(line, "\t")
}

func stackExtractErrors(text string) ActionResult {
	var out []string
	for _, line := range textutil.SplitLines(text) {
		if isErrorSummaryLine(line) {
			out = append(out, strings.TrimSpace(line))
		}
	}
	if len(out) == 0 {
		return failed(text, "No error lines found")
	}
	return replaced(strings.Join(out, "\n"))
}

// stackCollapseFrames keeps the first three frames of every contiguous
// frame run and folds the rest into a count line.
func stackCollapseFrames(text string) ActionResult {
	const keep = 3

	var out []string
	var run []string
	flush := func() {
		if len(run) <= keep {
			out = append(out, run...)
		} else {
			out = append(out, run[:keep]...)
			indent := ""
			if m := frameIndentRe.FindStringSubmatch(run[0]); m != nil {
				indent = m[1]
			}
			out = append(out, fmt.Sprintf("%s... %d more frames", indent, len(run)-keep))
		}
		run = run[:0]
	}

	for _, line := range textutil.SplitLines(text) {
		if isFrameLine(line) {
			run = append(run, line)
			continue
		}
		flush()
		out = append(out, line)
	}
	flush()
	return replaced(strings.Join(out, "\n"))
}

func stackIssueTemplate(text string) ActionResult {
	summary := "(no summary line found)"
	for _, line := range textutil.SplitLines(text) {
		if isErrorSummaryLine(line) {
			summary = strings.TrimSpace(line)
			break
		}
	}

	var b strings.Builder
	b.WriteString("## Error report\n\n")
	b.WriteString("**Summary:** " + summary + "\n\n")
	b.WriteString("**Steps to reproduce:**\n\n1. \n\n")
	b.WriteString("### Stack trace\n\n")
	b.WriteString("```\n")
	b.WriteString(strings.TrimRight(text, "\n"))
	b.WriteString("\n```\n")
	return replaced(b.String())
}
