package detectors

import (
	"encoding/xml"
	"errors"
	"html"
	"io"
	"regexp"
	"strings"
)

var (
	doctypeRe      = regexp.MustCompile(`(?i)<!DOCTYPE\s`)
	xmlDeclRe      = regexp.MustCompile(`<\?xml\b`)
	xmlOpenTagRe   = regexp.MustCompile(`<([A-Za-z][A-Za-z0-9:_-]*)(?:\s[^<>]*?)?>`)
	xmlSelfCloseRe = regexp.MustCompile(`<[A-Za-z][A-Za-z0-9:_-]*(?:\s[^<>]*?)?/>`)
	xmlGapRe       = regexp.MustCompile(`>\s+<`)
	xmlCommentRe   = regexp.MustCompile(`(?s)<!--.*?-->`)
	scriptBlockRe  = regexp.MustCompile(`(?si)<script\b[^>]*>.*?</script>`)
	styleBlockRe   = regexp.MustCompile(`(?si)<style\b[^>]*>.*?</style>`)
	anyTagRe       = regexp.MustCompile(`<[^<>]+>`)
)

var htmlTagNames = map[string]bool{
	"html": true, "head": true, "body": true, "title": true, "meta": true,
	"link": true, "div": true, "span": true, "p": true, "a": true,
	"img": true, "script": true, "style": true, "table": true, "tr": true,
	"td": true, "th": true, "ul": true, "ol": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"br": true, "hr": true, "input": true, "form": true, "button": true,
	"nav": true, "section": true, "article": true, "header": true,
	"footer": true, "main": true,
}

var voidHTMLTags = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "meta": true,
	"link": true,
}

// XMLHTMLDetector matches markup: a DOCTYPE, an XML declaration, or at
// least one balanced or self-closing tag.
type XMLHTMLDetector struct{}

func (d *XMLHTMLDetector) ID() string    { return "xmlhtml" }
func (d *XMLHTMLDetector) Priority() int { return PriorityXMLHTML }

func (d *XMLHTMLDetector) Detect(text string) bool {
	if doctypeRe.MatchString(text) || xmlDeclRe.MatchString(text) {
		return true
	}
	return hasBalancedTag(text)
}

func (d *XMLHTMLDetector) ToastMessage() string { return "Markup detected" }

func (d *XMLHTMLDetector) GetToastMessage(text string) string {
	if looksLikeHTML(text) {
		return "HTML detected"
	}
	return "XML detected"
}

func (d *XMLHTMLDetector) GetSuggestedLanguage(text string) (string, bool) {
	if looksLikeHTML(text) {
		return "html", true
	}
	return "xml", true
}

func (d *XMLHTMLDetector) Actions() []Action {
	return []Action{
		{ID: "format-xml", Label: "Format markup", Execute: formatXML},
		{ID: "minify-xml", Label: "Minify markup", Execute: minifyXML},
		{ID: "extract-text", Label: "Extract text", Execute: extractMarkupText},
		{ID: "xml-to-json", Label: "Convert to JSON", Execute: xmlToJSON},
	}
}

func hasBalancedTag(text string) bool {
	if xmlSelfCloseRe.MatchString(text) {
		return true
	}
	for _, m := range xmlOpenTagRe.FindAllStringSubmatch(text, -1) {
		if strings.Contains(text, "</"+m[1]) {
			return true
		}
	}
	return false
}

func looksLikeHTML(text string) bool {
	if doctypeRe.MatchString(text) {
		return true
	}
	for _, m := range xmlOpenTagRe.FindAllStringSubmatch(text, -1) {
		if htmlTagNames[strings.ToLower(m[1])] {
			return true
		}
	}
	return false
}

// formatXML re-indents markup with a depth counter: depth drops before a
// closing tag is printed and rises after an opening tag, except for
// self-closing tags, declarations, and single-line elements that close
// on the same segment.
func formatXML(text string) ActionResult {
	minified := xmlGapRe.ReplaceAllString(strings.TrimSpace(text), "><")
	segments := strings.Split(strings.ReplaceAll(minified, "><", ">\n<"), "\n")

	var b strings.Builder
	depth := 0
	wrote := false
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		closing := strings.HasPrefix(seg, "</")
		if closing && depth > 0 {
			depth--
		}
		if wrote {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(seg)
		wrote = true
		if !closing && opensContainer(seg) {
			depth++
		}
	}
	return replaced(b.String())
}

// opensContainer reports whether seg is an opening tag that expects a
// separate closing tag later.
func opensContainer(seg string) bool {
	if !strings.HasPrefix(seg, "<") {
		return false
	}
	if strings.HasPrefix(seg, "<?") || strings.HasPrefix(seg, "<!") {
		return false
	}
	if strings.HasSuffix(seg, "/>") {
		return false
	}
	if strings.Contains(seg, "</") {
		return false
	}
	m := xmlOpenTagRe.FindStringSubmatch(seg)
	if m == nil {
		return false
	}
	return !voidHTMLTags[strings.ToLower(m[1])]
}

func minifyXML(text string) ActionResult {
	return replaced(xmlGapRe.ReplaceAllString(strings.TrimSpace(text), "><"))
}

// extractMarkupText strips comments, script and style blocks, then every
// tag, unescapes entities, and collapses the remaining blank space.
func extractMarkupText(text string) ActionResult {
	s := xmlCommentRe.ReplaceAllString(text, "")
	s = scriptBlockRe.ReplaceAllString(s, "")
	s = styleBlockRe.ReplaceAllString(s, "")
	s = anyTagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(collapseWhitespace(line))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return replaced(strings.Join(lines, "\n"))
}

// xmlToJSON converts the first element tree to JSON. Attributes become
// "@name" keys, text content "#text", and repeated sibling elements
// collapse into arrays. Childless elements reduce to their text.
func xmlToJSON(text string) ActionResult {
	dec := xml.NewDecoder(strings.NewReader(strings.TrimSpace(text)))
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity

	name, value, err := xmlDecodeRoot(dec)
	if err != nil {
		return failed(text, "Invalid markup: "+err.Error())
	}
	out, err := prettyJSON(map[string]any{name: value})
	if err != nil {
		return failed(text, "Cannot encode JSON: "+err.Error())
	}
	return replaced(out)
}

func xmlDecodeRoot(dec *xml.Decoder) (string, any, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", nil, errors.New("no element found")
			}
			return "", nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			value, err := xmlDecodeElement(dec, start)
			if err != nil {
				return "", nil, err
			}
			return start.Name.Local, value, nil
		}
	}
}

func xmlDecodeElement(dec *xml.Decoder, start xml.StartElement) (any, error) {
	obj := make(map[string]any)
	for _, attr := range start.Attr {
		obj["@"+attr.Name.Local] = attr.Value
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		done := false
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := xmlDecodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			name := t.Name.Local
			if prev, ok := obj[name]; ok {
				if arr, ok := prev.([]any); ok {
					obj[name] = append(arr, child)
				} else {
					obj[name] = []any{prev, child}
				}
			} else {
				obj[name] = child
			}
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			done = true
		}
		if done {
			break
		}
	}

	content := strings.TrimSpace(text.String())
	if len(obj) == 0 {
		return content, nil
	}
	if content != "" {
		obj["#text"] = content
	}
	return obj, nil
}
