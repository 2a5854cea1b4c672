package detectors

import (
	"testing"
	"time"
)

func TestTimestampDetect(t *testing.T) {
	d := &TimestampDetector{}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "ten digit epoch",
			text: "deployed at 1717243200 by ci",
			want: true,
		},
		{
			name: "thirteen digit epoch",
			text: "1717243200500",
			want: true,
		},
		{
			name: "iso with zone",
			text: "2024-01-15T10:30:00Z",
			want: true,
		},
		{
			name: "iso with space separator",
			text: "started 2024-01-15 10:30:00",
			want: true,
		},
		{
			name: "phone number out of range",
			text: "5551234567",
			want: false,
		},
		{
			name: "epoch past 2100",
			text: "9999999999",
			want: false,
		},
		{
			name: "short number",
			text: "12345",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTimestampToastMessage(t *testing.T) {
	d := &TimestampDetector{}
	if got := d.GetToastMessage("1717243200"); got != "Unix timestamp detected" {
		t.Errorf("epoch toast = %q", got)
	}
	if got := d.GetToastMessage("2024-01-15T10:30:00Z"); got != "Timestamp detected" {
		t.Errorf("iso toast = %q", got)
	}
}

func TestTimesToUTCISO(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "epoch seconds",
			text: "1717243200",
			want: "2024-06-01T12:00:00Z",
		},
		{
			name: "epoch milliseconds",
			text: "1717243200500",
			want: "2024-06-01T12:00:00Z",
		},
		{
			name: "offset time normalized",
			text: "2024-06-01 14:00:00+02:00",
			want: "2024-06-01T12:00:00Z",
		},
		{
			name: "surrounding text kept",
			text: "job ran at 1717243200 today",
			want: "job ran at 2024-06-01T12:00:00Z today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timesToUTCISO(tt.text)
			if got.Text != tt.want {
				t.Errorf("timesToUTCISO(%q) = %q, want %q", tt.text, got.Text, tt.want)
			}
		})
	}
}

func TestTimesToLocal(t *testing.T) {
	want := time.Unix(1717243200, 0).In(time.Local).Format("2006-01-02 15:04:05 MST")
	got := timesToLocal("1717243200")
	if got.Text != want {
		t.Errorf("timesToLocal = %q, want %q", got.Text, want)
	}
}

func TestTimesAddRelative(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	got := timesAddRelative("1717243200")
	want := "1717243200 (2h ago)"
	if got.Text != want {
		t.Errorf("past epoch = %q, want %q", got.Text, want)
	}

	got = timesAddRelative("2024-06-01T14:30:00Z")
	want = "2024-06-01T14:30:00Z (in 30m)"
	if got.Text != want {
		t.Errorf("future iso = %q, want %q", got.Text, want)
	}
}

func TestRelativeDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"seconds", 45 * time.Second, "45s"},
		{"minutes", 5 * time.Minute, "5m"},
		{"hours round down", 90 * time.Minute, "1h"},
		{"days", 72 * time.Hour, "3d"},
		{"negative uses magnitude", -30 * time.Minute, "30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeDuration(tt.d); got != tt.want {
				t.Errorf("relativeDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestTimestampNoMatchFails(t *testing.T) {
	got := timesToUTCISO("no times here")
	if got.Validation != ValidationError {
		t.Errorf("expected error validation, got %q", got.Validation)
	}
}
