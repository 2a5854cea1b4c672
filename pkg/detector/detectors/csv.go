package detectors

import (
	"encoding/csv"
	"fmt"
	"strings"

	"textlens/pkg/textutil"
)

// Candidate delimiters, tried in order against the first five non-blank
// lines. The first one giving more than one column and identical counts
// on every sampled line wins.
var csvDelimiters = []rune{',', '\t', '|', ';'}

var csvDelimiterNames = map[rune]string{
	',':  "Comma",
	'\t': "Tab",
	'|':  "Pipe",
	';':  "Semicolon",
}

// CSVDetector matches delimiter-aligned tables of at least three rows.
type CSVDetector struct{}

func (d *CSVDetector) ID() string    { return "csv" }
func (d *CSVDetector) Priority() int { return PriorityCSV }

func (d *CSVDetector) Detect(text string) bool {
	_, ok := inferDelimiter(text)
	return ok
}

func (d *CSVDetector) ToastMessage() string { return "Delimited table detected" }

func (d *CSVDetector) GetToastMessage(text string) string {
	delim, ok := inferDelimiter(text)
	if !ok {
		return d.ToastMessage()
	}
	return csvDelimiterNames[delim] + "-separated values detected"
}

func (d *CSVDetector) Actions() []Action {
	return []Action{
		{ID: "csv-to-json", Label: "Convert to JSON", Execute: csvToJSON},
		{ID: "format-csv-table", Label: "Align as table", Execute: formatCSVTable},
		{ID: "csv-dedupe-rows", Label: "Remove duplicate rows", Execute: csvDedupeRows},
	}
}

func inferDelimiter(text string) (rune, bool) {
	lines := textutil.NonBlankLines(text)
	if len(lines) < 3 {
		return 0, false
	}
	sample := lines
	if len(sample) > 5 {
		sample = sample[:5]
	}
	for _, delim := range csvDelimiters {
		sep := string(delim)
		cols := strings.Count(sample[0], sep) + 1
		if cols < 2 {
			continue
		}
		uniform := true
		for _, line := range sample[1:] {
			if strings.Count(line, sep)+1 != cols {
				uniform = false
				break
			}
		}
		if uniform {
			return delim, true
		}
	}
	return 0, false
}

// csvToJSON treats the first row as the header and emits one object per
// data row, all values as strings.
func csvToJSON(text string) ActionResult {
	delim, ok := inferDelimiter(text)
	if !ok {
		return failed(text, "Not a delimited table")
	}
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return failed(text, "Cannot parse rows: "+err.Error())
	}
	if len(records) < 2 {
		return failed(text, "Need a header row and at least one data row")
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	out, err := compactJSON(rows)
	if err != nil {
		return failed(text, "Cannot encode JSON: "+err.Error())
	}
	return replaced(out)
}

// formatCSVTable pads every column to its widest cell and inserts a dash
// separator row under the header.
func formatCSVTable(text string) ActionResult {
	delim, ok := inferDelimiter(text)
	if !ok {
		return failed(text, "Not a delimited table")
	}
	lines := textutil.NonBlankLines(text)
	rows := make([][]string, len(lines))
	columns := 0
	for i, line := range lines {
		rows[i] = strings.Split(line, string(delim))
		if len(rows[i]) > columns {
			columns = len(rows[i])
		}
	}

	widths := make([]int, columns)
	for _, row := range rows {
		for i, cell := range row {
			if w := len([]rune(strings.TrimSpace(cell))); w > widths[i] {
				widths[i] = w
			}
		}
	}

	renderRow := func(row []string) string {
		cells := make([]string, len(row))
		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if i < len(row)-1 {
				cell = fmt.Sprintf("%-*s", widths[i], cell)
			}
			cells[i] = cell
		}
		return strings.Join(cells, " | ")
	}

	var out []string
	for i, row := range rows {
		out = append(out, renderRow(row))
		if i == 0 {
			dashes := make([]string, columns)
			for c, w := range widths {
				dashes[c] = strings.Repeat("-", w)
			}
			out = append(out, strings.Join(dashes, "-+-"))
		}
	}
	return replaced(strings.Join(out, "\n"))
}

func csvDedupeRows(text string) ActionResult {
	seen := make(map[string]bool)
	var out []string
	for _, line := range textutil.SplitLines(text) {
		if seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	return replaced(strings.Join(out, "\n"))
}
