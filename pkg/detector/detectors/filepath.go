package detectors

import (
	"regexp"
	"sort"
	"strings"
)

var (
	windowsPathRe = regexp.MustCompile(`\b[A-Za-z]:\\[^\\/:*?"<>|\s]+(?:\\[^\\/:*?"<>|\s]+)*\\?`)
	// The guard group keeps URL paths and date fractions like 5/10/2024
	// from counting as absolute paths.
	unixPathRe = regexp.MustCompile(`(^|[^\w/:])(~?/[\w.+-]+(?:/[\w.+-]+)+/?)`)
)

// FilePathDetector matches buffers containing Unix absolute paths with
// two or more segments, or Windows drive paths.
type FilePathDetector struct{}

func (d *FilePathDetector) ID() string           { return "filepath" }
func (d *FilePathDetector) Priority() int        { return PriorityFilePath }
func (d *FilePathDetector) ToastMessage() string { return "File path detected" }

func (d *FilePathDetector) Detect(text string) bool {
	return windowsPathRe.MatchString(text) || unixPathRe.MatchString(text)
}

func (d *FilePathDetector) Actions() []Action {
	return []Action{
		{ID: "path-to-unix", Label: "Convert to Unix style", Execute: pathsToUnix},
		{ID: "path-to-windows", Label: "Convert to Windows style", Execute: pathsToWindows},
		{ID: "path-extract-basenames", Label: "Extract file names", Execute: pathExtractBasenames},
	}
}

func pathsToUnix(text string) ActionResult {
	out := windowsPathRe.ReplaceAllStringFunc(text, func(p string) string {
		drive := strings.ToLower(p[:1])
		return "/" + drive + strings.ReplaceAll(p[2:], `\`, `/`)
	})
	return replaced(out)
}

func pathsToWindows(text string) ActionResult {
	return replaced(replaceSpan(unixPathRe, text, 2, unixToWindowsPath))
}

// unixToWindowsPath maps a leading single-letter segment back to a
// drive, so /c/Users/foo round-trips to C:\Users\foo.
func unixToWindowsPath(p string) string {
	p = strings.TrimSuffix(p, "/")
	if strings.HasPrefix(p, "/") {
		segs := strings.Split(strings.TrimPrefix(p, "/"), "/")
		if len(segs) > 1 && len(segs[0]) == 1 && isASCIILetter(segs[0][0]) {
			return strings.ToUpper(segs[0]) + `:\` + strings.Join(segs[1:], `\`)
		}
	}
	return strings.ReplaceAll(p, "/", `\`)
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func pathExtractBasenames(text string) ActionResult {
	type span struct {
		start int
		value string
	}
	var spans []span
	for _, m := range windowsPathRe.FindAllStringIndex(text, -1) {
		spans = append(spans, span{m[0], text[m[0]:m[1]]})
	}
	for _, m := range unixPathRe.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, span{m[4], text[m[4]:m[5]]})
	}
	if len(spans) == 0 {
		return failed(text, "No paths found")
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	seen := make(map[string]bool)
	var names []string
	for _, s := range spans {
		name := pathBasename(s.value)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return replaced(strings.Join(names, "\n"))
}

func pathBasename(p string) string {
	p = strings.TrimRight(p, `\/`)
	if i := strings.LastIndexAny(p, `\/`); i >= 0 {
		return p[i+1:]
	}
	return p
}
