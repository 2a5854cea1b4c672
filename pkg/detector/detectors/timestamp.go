package detectors

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	epochTokenRe   = regexp.MustCompile(`\b(?:\d{13}|\d{10})\b`)
	isoTimestampRe = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}(?::\d{2}(?:\.\d+)?)?(?:Z|[+-]\d{2}:?\d{2})?\b`)
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// Epoch tokens only count when they land between 2000-01-01 and
// 2100-12-31, which rules out phone numbers and most serials.
const (
	epochMin = 946684800
	epochMax = 4133980799
)

// TimestampDetector matches 10 or 13 digit Unix epochs and ISO 8601
// date-times.
type TimestampDetector struct{}

func (d *TimestampDetector) ID() string           { return "timestamp" }
func (d *TimestampDetector) Priority() int        { return PriorityTimestamp }
func (d *TimestampDetector) ToastMessage() string { return "Timestamp detected" }

func (d *TimestampDetector) GetToastMessage(text string) string {
	if !isoTimestampRe.MatchString(text) && hasEpochToken(text) {
		return "Unix timestamp detected"
	}
	return "Timestamp detected"
}

func (d *TimestampDetector) Detect(text string) bool {
	if hasEpochToken(text) {
		return true
	}
	for _, tok := range isoTimestampRe.FindAllString(text, -1) {
		if _, ok := parseISOTimestamp(tok); ok {
			return true
		}
	}
	return false
}

func (d *TimestampDetector) Actions() []Action {
	return []Action{
		{ID: "time-to-local", Label: "Convert to local time", Execute: timesToLocal},
		{ID: "time-to-utc-iso", Label: "Convert to UTC ISO 8601", Execute: timesToUTCISO},
		{ID: "time-add-relative", Label: "Annotate with relative time", Execute: timesAddRelative},
	}
}

func hasEpochToken(text string) bool {
	for _, tok := range epochTokenRe.FindAllString(text, -1) {
		if _, ok := parseEpochToken(tok); ok {
			return true
		}
	}
	return false
}

func parseEpochToken(tok string) (time.Time, bool) {
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	switch len(tok) {
	case 10:
		if n < epochMin || n > epochMax {
			return time.Time{}, false
		}
		return time.Unix(n, 0), true
	case 13:
		if s := n / 1000; s < epochMin || s > epochMax {
			return time.Time{}, false
		}
		return time.UnixMilli(n), true
	}
	return time.Time{}, false
}

func parseISOTimestamp(tok string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, tok); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// convertTimestamps rewrites every timestamp token through render,
// which receives the parsed time and the original token.
func convertTimestamps(text string, render func(time.Time, string) string) (string, bool) {
	changed := false
	out := isoTimestampRe.ReplaceAllStringFunc(text, func(tok string) string {
		t, ok := parseISOTimestamp(tok)
		if !ok {
			return tok
		}
		changed = true
		return render(t, tok)
	})
	out = epochTokenRe.ReplaceAllStringFunc(out, func(tok string) string {
		t, ok := parseEpochToken(tok)
		if !ok {
			return tok
		}
		changed = true
		return render(t, tok)
	})
	return out, changed
}

func timesToLocal(text string) ActionResult {
	out, changed := convertTimestamps(text, func(t time.Time, _ string) string {
		return t.In(time.Local).Format("2006-01-02 15:04:05 MST")
	})
	if !changed {
		return failed(text, "No timestamps found")
	}
	return replaced(out)
}

func timesToUTCISO(text string) ActionResult {
	out, changed := convertTimestamps(text, func(t time.Time, _ string) string {
		return t.UTC().Format(time.RFC3339)
	})
	if !changed {
		return failed(text, "No timestamps found")
	}
	return replaced(out)
}

func timesAddRelative(text string) ActionResult {
	out, changed := convertTimestamps(text, func(t time.Time, tok string) string {
		return tok + " (" + describeRelative(t) + ")"
	})
	if !changed {
		return failed(text, "No timestamps found")
	}
	return replaced(out)
}

func describeRelative(t time.Time) string {
	d := timeNow().Sub(t)
	if d >= 0 {
		return relativeDuration(d) + " ago"
	}
	return "in " + relativeDuration(-d)
}

// relativeDuration renders a duration as its largest whole unit.
func relativeDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
