package detectors

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	urlRe     = regexp.MustCompile(`\bhttps?://[^\s<>"']+`)
	wwwLineRe = regexp.MustCompile(`(?m)^\s*www\.[^\s<>"']+\s*$`)
)

// URLDetector matches buffers containing at least one http(s) URL or a
// bare www-prefixed host on its own line.
type URLDetector struct{}

func (d *URLDetector) ID() string    { return "url" }
func (d *URLDetector) Priority() int { return PriorityURL }

func (d *URLDetector) Detect(text string) bool {
	return urlRe.MatchString(text) || wwwLineRe.MatchString(text)
}

func (d *URLDetector) ToastMessage() string { return "URL detected" }

func (d *URLDetector) Actions() []Action {
	return []Action{
		{ID: "extract-urls", Label: "Extract URLs", Execute: extractURLs},
		{ID: "url-decode", Label: "URL decode", Execute: urlDecode},
		{ID: "url-encode", Label: "URL encode", Execute: urlEncode},
		{ID: "url-params-to-json", Label: "Query params to JSON", Execute: urlParamsToJSON},
	}
}

func extractURLs(text string) ActionResult {
	var urls []string
	seen := make(map[string]bool)
	add := func(u string) {
		if !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}
	for _, m := range urlRe.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range wwwLineRe.FindAllString(text, -1) {
		add(strings.TrimSpace(m))
	}
	if len(urls) == 0 {
		return failed(text, "No URLs found")
	}
	return replaced(strings.Join(urls, "\n"))
}

func urlDecode(text string) ActionResult {
	decoded, err := url.QueryUnescape(text)
	if err != nil {
		return failed(text, "Cannot decode: "+err.Error())
	}
	return replaced(decoded)
}

func urlEncode(text string) ActionResult {
	return replaced(url.QueryEscape(text))
}

// urlParamsToJSON expands the first URL's query string into a JSON
// object; repeated keys become arrays.
func urlParamsToJSON(text string) ActionResult {
	match := urlRe.FindString(text)
	if match == "" {
		return failed(text, "No URL found")
	}
	u, err := url.Parse(match)
	if err != nil {
		return failed(text, "Cannot parse URL: "+err.Error())
	}
	query := u.Query()
	if len(query) == 0 {
		return failed(text, "URL has no query parameters")
	}
	obj := make(map[string]any, len(query))
	for k, vs := range query {
		if len(vs) == 1 {
			obj[k] = vs[0]
		} else {
			obj[k] = vs
		}
	}
	out, err := prettyJSON(obj)
	if err != nil {
		return failed(text, "Cannot encode parameters: "+err.Error())
	}
	return replaced(out)
}
