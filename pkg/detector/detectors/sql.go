package detectors

import (
	"regexp"
	"strings"
)

var (
	sqlDetectRe = regexp.MustCompile(`(?i)\b(?:SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP|TRUNCATE)\b`)

	sqlKeywordRe = regexp.MustCompile(`(?i)\b(?:SELECT|FROM|WHERE|AND|OR|NOT|IN|AS|ON|INSERT|INTO|VALUES|UPDATE|SET|DELETE|CREATE|TABLE|ALTER|DROP|TRUNCATE|JOIN|INNER|LEFT|RIGHT|FULL|OUTER|CROSS|GROUP|ORDER|BY|HAVING|LIMIT|OFFSET|UNION|ALL|DISTINCT|LIKE|BETWEEN|IS|NULL|ASC|DESC|CASE|WHEN|THEN|ELSE|END|EXISTS|PRIMARY|KEY|FOREIGN|REFERENCES|INDEX|VIEW|IF)\b`)

	// Multi-word clauses first so ORDER BY wins over a later bare match.
	sqlClauseRe = regexp.MustCompile(`(?i)\b(GROUP BY|ORDER BY|(?:INNER |LEFT OUTER |RIGHT OUTER |LEFT |RIGHT |FULL |CROSS )?JOIN|SELECT|FROM|WHERE|HAVING|LIMIT|OFFSET|VALUES|UNION|SET)\b`)
	sqlContRe   = regexp.MustCompile(`(?i)\b(AND|OR|ON)\b`)

	whitespaceRunRe = regexp.MustCompile(`\s+`)
	lineTrailWSRe   = regexp.MustCompile(`(?m)[ \t]+$`)
)

// SQLDetector matches any buffer containing a DML or DDL keyword.
type SQLDetector struct{}

func (d *SQLDetector) ID() string    { return "sql" }
func (d *SQLDetector) Priority() int { return PrioritySQL }

func (d *SQLDetector) Detect(text string) bool {
	return sqlDetectRe.MatchString(text)
}

func (d *SQLDetector) ToastMessage() string { return "SQL detected" }

func (d *SQLDetector) SuggestedLanguage() string { return "sql" }

func (d *SQLDetector) Actions() []Action {
	return []Action{
		{ID: "sql-uppercase-keywords", Label: "Uppercase keywords", Execute: sqlUppercaseKeywords},
		{ID: "format-sql", Label: "Format SQL", Execute: formatSQL},
		{ID: "minify-sql", Label: "Minify SQL", Execute: minifySQL},
	}
}

func sqlUppercaseKeywords(text string) ActionResult {
	return replaced(mapOutsideQuotes(text, func(s string) string {
		return sqlKeywordRe.ReplaceAllStringFunc(s, strings.ToUpper)
	}))
}

// formatSQL reflows a statement: every major clause starts a new line at
// column zero, AND/OR/ON continuations are indented under their clause.
func formatSQL(text string) ActionResult {
	sql := strings.TrimSpace(mapOutsideQuotes(text, collapseWhitespace))
	sql = mapOutsideQuotes(sql, func(s string) string {
		s = sqlClauseRe.ReplaceAllString(s, "\n${1}")
		return sqlContRe.ReplaceAllString(s, "\n  ${1}")
	})
	sql = lineTrailWSRe.ReplaceAllString(sql, "")
	return replaced(strings.TrimSpace(sql))
}

func minifySQL(text string) ActionResult {
	return replaced(strings.TrimSpace(mapOutsideQuotes(text, collapseWhitespace)))
}

func collapseWhitespace(s string) string {
	return whitespaceRunRe.ReplaceAllString(s, " ")
}

// mapOutsideQuotes applies fn to the stretches of sql outside single- or
// double-quoted literals, leaving the literals byte-for-byte intact.
// Doubled single quotes inside a string ('it''s') stay in the literal.
func mapOutsideQuotes(sql string, fn func(string) string) string {
	var b strings.Builder
	start := 0
	i := 0
	for i < len(sql) {
		c := sql[i]
		if c != '\'' && c != '"' {
			i++
			continue
		}
		b.WriteString(fn(sql[start:i]))
		j := i + 1
		for j < len(sql) {
			if sql[j] != c {
				j++
				continue
			}
			if c == '\'' && j+1 < len(sql) && sql[j+1] == '\'' {
				j += 2
				continue
			}
			break
		}
		if j < len(sql) {
			j++
		}
		b.WriteString(sql[i:j])
		start = j
		i = j
	}
	b.WriteString(fn(sql[start:]))
	return b.String()
}
