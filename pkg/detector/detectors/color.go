package detectors

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color literal patterns. Conversion scans them in this exact order,
// hsla before hsl before rgba before rgb before hex, so the output of a
// later pattern is never re-matched by an earlier, looser one.
var (
	hslaRe = regexp.MustCompile(`(?i)\bhsla\(\s*(-?\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)%\s*,\s*(\d+(?:\.\d+)?)%\s*,\s*(\d*\.?\d+)\s*\)`)
	hslRe  = regexp.MustCompile(`(?i)\bhsl\(\s*(-?\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)%\s*,\s*(\d+(?:\.\d+)?)%\s*\)`)
	rgbaRe = regexp.MustCompile(`(?i)\brgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d*\.?\d+)\s*\)`)
	rgbRe  = regexp.MustCompile(`(?i)\brgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)`)
	hex8Re = regexp.MustCompile(`#[0-9a-fA-F]{8}\b`)
	hexRe  = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{4}|[0-9a-fA-F]{3})\b`)
)

var colorScanOrder = []*regexp.Regexp{hslaRe, hslRe, rgbaRe, rgbRe, hex8Re, hexRe}

// colorValue is the common representation every literal parses into:
// an sRGB color plus an alpha channel in [0,1].
type colorValue struct {
	c colorful.Color
	a float64
}

// ColorDetector matches buffers containing hex, rgb(a) or hsl(a) color
// literals and converts every literal in place.
type ColorDetector struct{}

func (d *ColorDetector) ID() string    { return "color" }
func (d *ColorDetector) Priority() int { return PriorityColor }

func (d *ColorDetector) Detect(text string) bool {
	for _, re := range colorScanOrder {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func (d *ColorDetector) ToastMessage() string { return "Color detected" }

func (d *ColorDetector) Actions() []Action {
	return []Action{
		{ID: "color-to-hex", Label: "Convert to hex", Execute: colorsToHex},
		{ID: "color-to-rgb", Label: "Convert to RGB", Execute: colorsToRGB},
		{ID: "color-to-hsl", Label: "Convert to HSL", Execute: colorsToHSL},
	}
}

func colorsToHex(text string) ActionResult {
	return replaced(convertColors(text, renderHex))
}

func colorsToRGB(text string) ActionResult {
	return replaced(convertColors(text, renderRGB))
}

func colorsToHSL(text string) ActionResult {
	return replaced(convertColors(text, renderHSL))
}

func convertColors(text string, render func(colorValue) string) string {
	for _, re := range colorScanOrder {
		text = re.ReplaceAllStringFunc(text, func(m string) string {
			cv, ok := parseColor(m)
			if !ok {
				return m
			}
			return render(cv)
		})
	}
	return text
}

func parseColor(literal string) (colorValue, bool) {
	lower := strings.ToLower(literal)
	switch {
	case strings.HasPrefix(lower, "hsla("):
		return parseHSLGroups(hslaRe.FindStringSubmatch(literal))
	case strings.HasPrefix(lower, "hsl("):
		return parseHSLGroups(hslRe.FindStringSubmatch(literal))
	case strings.HasPrefix(lower, "rgba("):
		return parseRGBGroups(rgbaRe.FindStringSubmatch(literal))
	case strings.HasPrefix(lower, "rgb("):
		return parseRGBGroups(rgbRe.FindStringSubmatch(literal))
	case strings.HasPrefix(literal, "#"):
		return parseHexLiteral(literal)
	}
	return colorValue{}, false
}

func parseHexLiteral(literal string) (colorValue, bool) {
	digits := literal[1:]
	var rrggbb string
	alpha := 1.0
	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		for _, r := range digits[:3] {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		rrggbb = b.String()
		if len(digits) == 4 {
			v, err := strconv.ParseUint(strings.Repeat(digits[3:4], 2), 16, 8)
			if err != nil {
				return colorValue{}, false
			}
			alpha = float64(v) / 255
		}
	case 6, 8:
		rrggbb = digits[:6]
		if len(digits) == 8 {
			v, err := strconv.ParseUint(digits[6:8], 16, 8)
			if err != nil {
				return colorValue{}, false
			}
			alpha = float64(v) / 255
		}
	default:
		return colorValue{}, false
	}
	c, err := colorful.Hex("#" + rrggbb)
	if err != nil {
		return colorValue{}, false
	}
	return colorValue{c: c, a: alpha}, true
}

func parseRGBGroups(groups []string) (colorValue, bool) {
	if len(groups) < 4 {
		return colorValue{}, false
	}
	channel := func(s string) float64 {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return 0
		}
		if n > 255 {
			n = 255
		}
		return float64(n) / 255
	}
	cv := colorValue{
		c: colorful.Color{R: channel(groups[1]), G: channel(groups[2]), B: channel(groups[3])},
		a: 1,
	}
	if len(groups) > 4 && groups[4] != "" {
		cv.a = parseAlpha(groups[4])
	}
	return cv, true
}

func parseHSLGroups(groups []string) (colorValue, bool) {
	if len(groups) < 4 {
		return colorValue{}, false
	}
	h, err1 := strconv.ParseFloat(groups[1], 64)
	s, err2 := strconv.ParseFloat(groups[2], 64)
	l, err3 := strconv.ParseFloat(groups[3], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return colorValue{}, false
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	cv := colorValue{c: colorful.Hsl(h, clamp01(s/100), clamp01(l/100)), a: 1}
	if len(groups) > 4 && groups[4] != "" {
		cv.a = parseAlpha(groups[4])
	}
	return cv, true
}

func parseAlpha(s string) float64 {
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1
	}
	return clamp01(a)
}

func clamp01(f float64) float64 {
	return math.Min(1, math.Max(0, f))
}

func renderHex(cv colorValue) string {
	r, g, b := cv.c.Clamped().RGB255()
	out := fmt.Sprintf("#%02x%02x%02x", r, g, b)
	if cv.a < 1 {
		out += fmt.Sprintf("%02x", int(math.Round(cv.a*255)))
	}
	return out
}

func renderRGB(cv colorValue) string {
	r, g, b := cv.c.Clamped().RGB255()
	if cv.a < 1 {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(cv.a))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

func renderHSL(cv colorValue) string {
	h, s, l := cv.c.Clamped().Hsl()
	hh := formatHSLNumber(h)
	ss := formatHSLNumber(s * 100)
	ll := formatHSLNumber(l * 100)
	if cv.a < 1 {
		return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", hh, ss, ll, formatAlpha(cv.a))
	}
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", hh, ss, ll)
}

// formatHSLNumber keeps one decimal of precision so a later conversion
// back to RGB stays within one unit per channel, dropping the decimal
// when it is zero.
func formatHSLNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(math.Round(a*100)/100, 'g', -1, 64)
}
