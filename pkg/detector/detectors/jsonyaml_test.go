package detectors

import "testing"

func TestJSONYAMLDetect(t *testing.T) {
	d := &JSONYAMLDetector{}

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"json object", `{"a": 1, "b": 2}`, true},
		{"json array", `[1, 2, 3]`, true},
		{"json with whitespace", "  {\"a\": 1}\n", true},
		{"unclosed json", `{"a": 1`, false},
		{"yaml mapping", "name: app\nport: 8080", true},
		{"single yaml line", "name: app", false},
		{"prose", "this is just a sentence", false},
		{"colon without space", "http://example.com\nftp://other", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.input); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestJSONYAMLDynamicHooks(t *testing.T) {
	d := &JSONYAMLDetector{}

	if got := d.GetToastMessage(`{"a":1}`); got != "JSON detected" {
		t.Errorf("toast for json = %q", got)
	}
	if got := d.GetToastMessage("a: 1\nb: 2"); got != "YAML detected" {
		t.Errorf("toast for yaml = %q", got)
	}

	if lang, ok := d.GetSuggestedLanguage(`{"a":1}`); !ok || lang != "json" {
		t.Errorf("language for json = %q, %v", lang, ok)
	}
	if lang, ok := d.GetSuggestedLanguage("a: 1\nb: 2"); !ok || lang != "yaml" {
		t.Errorf("language for yaml = %q, %v", lang, ok)
	}

	jsonIDs := actionIDs(d.GetActions(`{"a":1}`))
	if len(jsonIDs) != 3 || jsonIDs[0] != "format-json" {
		t.Errorf("json actions = %v", jsonIDs)
	}
	yamlIDs := actionIDs(d.GetActions("a: 1\nb: 2"))
	if len(yamlIDs) != 1 || yamlIDs[0] != "yaml-to-json" {
		t.Errorf("yaml actions = %v", yamlIDs)
	}
}

func TestFormatJSON(t *testing.T) {
	got := formatJSON(`{"b":1,"a":2}`)
	want := "{\n  \"b\": 1,\n  \"a\": 2\n}"
	if got.Text != want {
		t.Errorf("formatJSON = %q, want %q (key order must be preserved)", got.Text, want)
	}
}

func TestFormatJSONInvalid(t *testing.T) {
	got := formatJSON(`{"a":}`)
	if got.Validation != ValidationError {
		t.Fatalf("expected validation error, got %+v", got)
	}
	if got.Text != `{"a":}` {
		t.Errorf("invalid input must be returned unchanged, got %q", got.Text)
	}
	if got.ErrorLine != 1 || got.ErrorColumn != 6 {
		t.Errorf("error position = (%d, %d), want (1, 6)", got.ErrorLine, got.ErrorColumn)
	}
}

func TestFormatJSONErrorPositionMultiline(t *testing.T) {
	got := formatJSON("{\n  \"a\": 1,\n  \"b\": oops\n}")
	if got.Validation != ValidationError {
		t.Fatalf("expected validation error, got %+v", got)
	}
	if got.ErrorLine != 3 {
		t.Errorf("ErrorLine = %d, want 3", got.ErrorLine)
	}
}

func TestMinifyJSON(t *testing.T) {
	got := minifyJSON("{\n  \"a\": 1,\n  \"b\": [1, 2]\n}")
	want := `{"a":1,"b":[1,2]}`
	if got.Text != want {
		t.Errorf("minifyJSON = %q, want %q", got.Text, want)
	}
}

func TestFormatMinifyIdempotence(t *testing.T) {
	inputs := []string{
		`{"b":1,"a":2}`,
		`[1,{"x":[true,null]},"s"]`,
		`{"nested":{"deep":{"deeper":[1,2,3]}}}`,
	}
	for _, input := range inputs {
		formatted := formatJSON(input).Text
		if minifyJSON(formatted).Text != minifyJSON(input).Text {
			t.Errorf("minify(format(%q)) != minify(%q)", input, input)
		}
	}
}

func TestSortJSONKeys(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		got := sortJSONKeys(`{"b":1,"a":2}`)
		want := "{\n  \"a\": 2,\n  \"b\": 1\n}"
		if got.Text != want {
			t.Errorf("sortJSONKeys = %q, want %q", got.Text, want)
		}
	})

	t.Run("recursive with arrays preserved", func(t *testing.T) {
		got := sortJSONKeys(`{"z":{"b":1,"a":2},"list":[3,1,2]}`)
		want := "{\n  \"list\": [\n    3,\n    1,\n    2\n  ],\n  \"z\": {\n    \"a\": 2,\n    \"b\": 1\n  }\n}"
		if got.Text != want {
			t.Errorf("sortJSONKeys = %q, want %q", got.Text, want)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		got := sortJSONKeys("not json at all")
		if got.Validation != ValidationError {
			t.Errorf("expected validation error, got %+v", got)
		}
	})
}

func TestYAMLToJSON(t *testing.T) {
	got := yamlToJSON("name: app\nport: 8080")
	want := "{\n  \"name\": \"app\",\n  \"port\": 8080\n}"
	if got.Text != want {
		t.Errorf("yamlToJSON = %q, want %q", got.Text, want)
	}

	bad := yamlToJSON("a: [unclosed")
	if bad.Validation != ValidationError {
		t.Errorf("expected validation error for bad yaml, got %+v", bad)
	}
}

func actionIDs(actions []Action) []string {
	ids := make([]string, len(actions))
	for i, a := range actions {
		ids[i] = a.ID
	}
	return ids
}
