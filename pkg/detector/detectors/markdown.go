package detectors

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	mdHeaderSignalRe = regexp.MustCompile(`(?m)^#{1,6}\s+\S`)
	mdListSignalRe   = regexp.MustCompile(`(?m)^\s*(?:[-*+]|\d+\.)\s+\S`)
	mdLinkRe         = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	mdImageRe        = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)\)`)
	mdBlockquoteRe   = regexp.MustCompile(`(?m)^>\s?`)
	mdEmphasisRe     = regexp.MustCompile(`\*\*[^*\n]+\*\*|__[^_\n]+__|\*[^*\n]+\*|_[^_\n]+_`)
	mdInlineCodeRe   = regexp.MustCompile("`[^`\n]+`")
	mdRuleRe         = regexp.MustCompile(`(?m)^(?:-{3,}|\*{3,}|_{3,})\s*$`)
	mdTableRowRe     = regexp.MustCompile(`(?m)^\|.+\|\s*$`)
	mdFenceRe        = regexp.MustCompile("(?s)```([A-Za-z0-9+-]*)\r?\n(.*?)```")
	mdHeadingLineRe  = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+?)\s*$`)

	mdBoldStarRe     = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	mdBoldUnderRe    = regexp.MustCompile(`__([^_\n]+)__`)
	mdItalicStarRe   = regexp.MustCompile(`\*([^*\n]+)\*`)
	mdItalicUnderRe  = regexp.MustCompile(`_([^_\n]+)_`)
	mdCodeSpanRe     = regexp.MustCompile("`([^`\n]+)`")
	mdQuoteEscapedRe = regexp.MustCompile(`(?m)^&gt;\s?(.*)$`)
	mdListItemRe     = regexp.MustCompile(`(?m)^(?:[-*+]|\d+\.)\s+(.+)$`)
	mdHeaderMarkRe   = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	mdRuleLineRe     = regexp.MustCompile(`(?m)^(?:-{3,}|\*{3,}|_{3,})\s*$\n?`)
	mdListMarkRe     = regexp.MustCompile(`(?m)^(\s*)(?:[-*+]|\d+\.)\s+`)
)

// mdHeaderLevelRes[n] rewrites level-n headings; applied deepest first.
var mdHeaderLevelRes = func() [7]*regexp.Regexp {
	var res [7]*regexp.Regexp
	for level := 1; level <= 6; level++ {
		res[level] = regexp.MustCompile(fmt.Sprintf(`(?m)^%s\s+(.+?)\s*$`, strings.Repeat("#", level)))
	}
	return res
}()

// MarkdownDetector matches buffers showing at least two distinct
// Markdown constructs.
type MarkdownDetector struct{}

func (d *MarkdownDetector) ID() string                { return "markdown" }
func (d *MarkdownDetector) Priority() int             { return PriorityMarkdown }
func (d *MarkdownDetector) ToastMessage() string      { return "Markdown detected" }
func (d *MarkdownDetector) SuggestedLanguage() string { return "markdown" }

func (d *MarkdownDetector) Detect(text string) bool {
	signals := 0
	checks := []func(string) bool{
		mdHeaderSignalRe.MatchString,
		mdListSignalRe.MatchString,
		mdLinkRe.MatchString,
		mdImageRe.MatchString,
		func(s string) bool { return strings.Contains(s, "```") },
		mdBlockquoteRe.MatchString,
		mdEmphasisRe.MatchString,
		mdInlineCodeRe.MatchString,
		mdRuleRe.MatchString,
		mdTableRowRe.MatchString,
	}
	for _, check := range checks {
		if check(text) {
			signals++
			if signals >= 2 {
				return true
			}
		}
	}
	return false
}

func (d *MarkdownDetector) Actions() []Action {
	return []Action{
		{ID: "markdown-to-html", Label: "Convert to HTML", Execute: markdownToHTML},
		{ID: "markdown-strip", Label: "Strip formatting", Execute: markdownStrip},
		{ID: "markdown-extract-links", Label: "Extract links", Execute: markdownExtractLinks},
		{ID: "markdown-outline", Label: "Show outline", Execute: markdownOutline},
	}
}

var mdEntityReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// markdownToHTML is a line-oriented converter. Fenced blocks are pulled
// out behind placeholders first so their contents pass through the
// inline rules untouched.
func markdownToHTML(text string) ActionResult {
	out := mdEntityReplacer.Replace(text)
	out, blocks := extractFencedBlocks(out)

	for level := 6; level >= 1; level-- {
		re := mdHeaderLevelRes[level]
		out = re.ReplaceAllString(out, fmt.Sprintf("<h%d>$1</h%d>", level, level))
	}

	out = mdBoldStarRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = mdBoldUnderRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = mdItalicStarRe.ReplaceAllString(out, "<em>$1</em>")
	out = mdItalicUnderRe.ReplaceAllString(out, "<em>$1</em>")
	out = mdCodeSpanRe.ReplaceAllString(out, "<code>$1</code>")
	out = mdImageRe.ReplaceAllString(out, `<img src="$2" alt="$1">`)
	out = mdLinkRe.ReplaceAllString(out, `<a href="$2">$1</a>`)
	out = mdQuoteEscapedRe.ReplaceAllString(out, "<blockquote>$1</blockquote>")
	out = mdRuleRe.ReplaceAllString(out, "<hr>")
	out = mdListItemRe.ReplaceAllString(out, "<li>$1</li>")
	out = wrapListRuns(out)
	out = wrapParagraphLines(out)

	for i, block := range blocks {
		out = strings.ReplaceAll(out, mdBlockPlaceholder(i), block)
	}
	return replaced(out)
}

func mdBlockPlaceholder(i int) string {
	return fmt.Sprintf("\x00md-block-%d\x00", i)
}

func extractFencedBlocks(text string) (string, []string) {
	var blocks []string
	out := mdFenceRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := mdFenceRe.FindStringSubmatch(m)
		var b strings.Builder
		b.WriteString("<pre><code")
		if sub[1] != "" {
			b.WriteString(` class="language-` + sub[1] + `"`)
		}
		b.WriteString(">")
		b.WriteString(sub[2])
		b.WriteString("</code></pre>")
		blocks = append(blocks, b.String())
		return mdBlockPlaceholder(len(blocks) - 1)
	})
	return out, blocks
}

var mdListRunRe = regexp.MustCompile(`(?m)(?:^<li>.*</li>$\n?)+`)

func wrapListRuns(text string) string {
	return mdListRunRe.ReplaceAllStringFunc(text, func(run string) string {
		trailing := ""
		if strings.HasSuffix(run, "\n") {
			trailing = "\n"
		}
		return "<ul>\n" + strings.TrimRight(run, "\n") + "\n</ul>" + trailing
	})
}

func wrapParagraphLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "<") || strings.HasPrefix(trimmed, "\x00") {
			continue
		}
		lines[i] = "<p>" + line + "</p>"
	}
	return strings.Join(lines, "\n")
}

func markdownStrip(text string) ActionResult {
	out := mdFenceRe.ReplaceAllString(text, "$2")
	out = mdHeaderMarkRe.ReplaceAllString(out, "")
	out = mdImageRe.ReplaceAllString(out, "$1")
	out = mdLinkRe.ReplaceAllString(out, "$1")
	out = mdBoldStarRe.ReplaceAllString(out, "$1")
	out = mdBoldUnderRe.ReplaceAllString(out, "$1")
	out = mdItalicStarRe.ReplaceAllString(out, "$1")
	out = mdItalicUnderRe.ReplaceAllString(out, "$1")
	out = mdCodeSpanRe.ReplaceAllString(out, "$1")
	out = mdBlockquoteRe.ReplaceAllString(out, "")
	out = mdRuleLineRe.ReplaceAllString(out, "")
	out = mdListMarkRe.ReplaceAllString(out, "$1")
	return replaced(out)
}

func markdownExtractLinks(text string) ActionResult {
	type linkSpan struct {
		start, end int
		line       string
	}
	var spans []linkSpan
	for _, m := range mdLinkRe.FindAllStringSubmatchIndex(text, -1) {
		label := text[m[2]:m[3]]
		target := text[m[4]:m[5]]
		spans = append(spans, linkSpan{m[0], m[1], label + ": " + target})
	}

	var lines []string
	seen := make(map[string]bool)
	add := func(line string) {
		if !seen[line] {
			seen[line] = true
			lines = append(lines, line)
		}
	}
	for _, s := range spans {
		add(s.line)
	}
	for _, m := range urlRe.FindAllStringIndex(text, -1) {
		inside := false
		for _, s := range spans {
			if m[0] >= s.start && m[0] < s.end {
				inside = true
				break
			}
		}
		if !inside {
			add(text[m[0]:m[1]])
		}
	}
	if len(lines) == 0 {
		return failed(text, "No links found")
	}
	return replaced(strings.Join(lines, "\n"))
}

func markdownOutline(text string) ActionResult {
	var lines []string
	for _, m := range mdHeadingLineRe.FindAllStringSubmatch(text, -1) {
		depth := len(m[1])
		lines = append(lines, strings.Repeat("  ", depth-1)+m[2])
	}
	if len(lines) == 0 {
		return failed(text, "No headings found")
	}
	return replaced(strings.Join(lines, "\n"))
}
