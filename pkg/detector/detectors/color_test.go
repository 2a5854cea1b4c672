package detectors

import (
	"strconv"
	"testing"
)

func TestColorDetect(t *testing.T) {
	d := &ColorDetector{}

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"hex6", "background: #1a2b3c;", true},
		{"hex3", "color: #fff;", true},
		{"hex8", "#ff000080", true},
		{"rgb", "rgb(255, 0, 0)", true},
		{"rgba", "rgba(0, 0, 0, 0.4)", true},
		{"hsl", "hsl(120, 50%, 50%)", true},
		{"hsla", "hsla(120, 50%, 50%, 0.9)", true},
		{"prose", "no colors in this text", false},
		{"short hex run", "see #12 there", false},
		{"issue number", "fixes #12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.input); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorsToRGB(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short hex", "#ffffff", "rgb(255, 255, 255)"},
		{"in context", "color: #fff;", "color: rgb(255, 255, 255);"},
		{"several literals", "#fff and #000", "rgb(255, 255, 255) and rgb(0, 0, 0)"},
		{"hex with alpha", "#ff000080", "rgba(255, 0, 0, 0.5)"},
		{"hsl input", "hsl(120, 50%, 50%)", "rgb(64, 191, 64)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorsToRGB(tt.input).Text; got != tt.want {
				t.Errorf("colorsToRGB(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorsToHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"rgb", "rgb(255, 0, 0)", "#ff0000"},
		{"rgba keeps alpha", "rgba(255, 0, 0, 0.5)", "#ff000080"},
		{"hsl", "hsl(120, 50%, 50%)", "#40bf40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorsToHex(tt.input).Text; got != tt.want {
				t.Errorf("colorsToHex(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorsToHSL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"red", "rgb(255, 0, 0)", "hsl(0, 100%, 50%)"},
		{"white hex", "#ffffff", "hsl(0, 0%, 100%)"},
		{"with alpha", "rgba(255, 0, 0, 0.5)", "hsla(0, 100%, 50%, 0.5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorsToHSL(tt.input).Text; got != tt.want {
				t.Errorf("colorsToHSL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Each literal must be converted exactly once: the hsl output must not
// be picked up again by the rgb pattern in the same pass.
func TestColorScanOrder(t *testing.T) {
	got := colorsToHex("hsl(120, 50%, 50%) and rgb(255, 0, 0)").Text
	want := "#40bf40 and #ff0000"
	if got != want {
		t.Errorf("colorsToHex = %q, want %q", got, want)
	}
}

func TestColorRoundTrip(t *testing.T) {
	for _, hex := range []string{"#1a2b3c", "#ff8800", "#0044cc", "#123456"} {
		viaHSL := colorsToHSL(hex).Text
		back := colorsToHex(viaHSL).Text

		r0, g0, b0 := hexChannels(t, hex)
		r1, g1, b1 := hexChannels(t, back)
		if absInt(r0-r1) > 1 || absInt(g0-g1) > 1 || absInt(b0-b1) > 1 {
			t.Errorf("round trip %s -> %s -> %s drifts more than 1 per channel", hex, viaHSL, back)
		}
	}
}

func hexChannels(t *testing.T, hex string) (int, int, int) {
	t.Helper()
	if len(hex) != 7 || hex[0] != '#' {
		t.Fatalf("not a hex literal: %q", hex)
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		t.Fatalf("cannot parse %q", hex)
	}
	return int(r), int(g), int(b)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
