package detectors

import "testing"

func TestURLDetect(t *testing.T) {
	d := &URLDetector{}

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"bare url", "https://example.com/path", true},
		{"url in prose", "see https://example.com for details", true},
		{"http", "visit http://old.example.org now", true},
		{"www line", "www.example.com", true},
		{"www mid-sentence", "the www.example.com site", false},
		{"prose", "no links in here anywhere", false},
		{"ftp ignored", "ftp://files.example.com/pub", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.input); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractURLs(t *testing.T) {
	input := "first https://a.example.com then https://b.example.com\nagain https://a.example.com"
	got := extractURLs(input).Text
	want := "https://a.example.com\nhttps://b.example.com"
	if got != want {
		t.Errorf("extractURLs = %q, want %q (ordered, deduplicated)", got, want)
	}
}

func TestURLDecodeEncode(t *testing.T) {
	t.Run("decode", func(t *testing.T) {
		got := urlDecode("hello%20world%21").Text
		if got != "hello world!" {
			t.Errorf("urlDecode = %q", got)
		}
	})

	t.Run("decode failure keeps input", func(t *testing.T) {
		got := urlDecode("bad %zz escape")
		if got.Validation != ValidationError {
			t.Fatalf("expected validation error, got %+v", got)
		}
		if got.Text != "bad %zz escape" {
			t.Errorf("text changed on failure: %q", got.Text)
		}
	})

	t.Run("encode", func(t *testing.T) {
		got := urlEncode("a b&c").Text
		if got != "a+b%26c" {
			t.Errorf("urlEncode = %q", got)
		}
	})
}

func TestURLParamsToJSON(t *testing.T) {
	got := urlParamsToJSON("https://example.com/search?q=go&tag=a&tag=b")
	want := "{\n  \"q\": \"go\",\n  \"tag\": [\n    \"a\",\n    \"b\"\n  ]\n}"
	if got.Text != want {
		t.Errorf("urlParamsToJSON = %q, want %q", got.Text, want)
	}

	none := urlParamsToJSON("https://example.com/plain")
	if none.Validation != ValidationError {
		t.Errorf("expected validation error without query, got %+v", none)
	}
}
