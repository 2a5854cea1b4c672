package detectors

import (
	"strings"
	"testing"
)

func TestCSVDetect(t *testing.T) {
	d := &CSVDetector{}

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"comma table", "a,b\n1,2\n3,4", true},
		{"tab table", "a\tb\n1\t2\n3\t4", true},
		{"pipe table", "a|b\n1|2\n3|4", true},
		{"semicolon table", "a;b\n1;2\n3;4", true},
		{"two lines only", "a,b\n1,2", false},
		{"ragged columns", "a,b\n1,2,3\n4,5", false},
		{"single column", "alpha\nbeta\ngamma", false},
		{"blank lines ignored", "a,b\n\n1,2\n\n3,4", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.input); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCSVToast(t *testing.T) {
	d := &CSVDetector{}
	if got := d.GetToastMessage("a,b\n1,2\n3,4"); got != "Comma-separated values detected" {
		t.Errorf("toast = %q", got)
	}
	if got := d.GetToastMessage("a\tb\n1\t2\n3\t4"); got != "Tab-separated values detected" {
		t.Errorf("toast = %q", got)
	}
}

func TestCSVToJSON(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		got := csvToJSON("a,b\n1,2\n3,4")
		want := `[{"a":"1","b":"2"},{"a":"3","b":"4"}]`
		if got.Text != want {
			t.Errorf("csvToJSON = %q, want %q", got.Text, want)
		}
	})

	t.Run("quoted cells", func(t *testing.T) {
		got := csvToJSON("a,b\n\"x\",\"y\"\n1,2")
		want := `[{"a":"x","b":"y"},{"a":"1","b":"2"}]`
		if got.Text != want {
			t.Errorf("csvToJSON = %q, want %q", got.Text, want)
		}
	})

	t.Run("not a table", func(t *testing.T) {
		got := csvToJSON("plain text")
		if got.Validation != ValidationError {
			t.Errorf("expected validation error, got %+v", got)
		}
	})
}

func TestFormatCSVTable(t *testing.T) {
	got := formatCSVTable("name,qty\napple,10\nfig,3").Text
	want := strings.Join([]string{
		"name  | qty",
		"------+----",
		"apple | 10",
		"fig   | 3",
	}, "\n")
	if got != want {
		t.Errorf("formatCSVTable =\n%s\nwant\n%s", got, want)
	}
}

func TestCSVDedupeRows(t *testing.T) {
	got := csvDedupeRows("a,b\n1,2\n1,2\n3,4\n1,2").Text
	want := "a,b\n1,2\n3,4"
	if got != want {
		t.Errorf("csvDedupeRows = %q, want %q", got, want)
	}
}
