package detectors

import "testing"

func TestSQLDetect(t *testing.T) {
	d := &SQLDetector{}

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"select statement", "SELECT * FROM users", true},
		{"lowercase", "select id from t where x = 1", true},
		{"ddl", "CREATE TABLE users (id INT)", true},
		{"bare keyword in prose", "Update: the fix shipped today", true},
		{"keyword inside word", "creative writing and selection", false},
		{"prose", "nothing relational about this", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.input); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSQLUppercaseKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"basic",
			"select id from users where age > 21",
			"SELECT id FROM users WHERE age > 21",
		},
		{
			"quoted literal untouched",
			"select name from t where name = 'select from'",
			"SELECT name FROM t WHERE name = 'select from'",
		},
		{
			"identifiers untouched",
			"select selector from fromage",
			"SELECT selector FROM fromage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sqlUppercaseKeywords(tt.input).Text; got != tt.want {
				t.Errorf("sqlUppercaseKeywords(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatSQL(t *testing.T) {
	input := "SELECT id, name FROM users WHERE age > 21 AND active = 1 ORDER BY name"
	want := "SELECT id, name\nFROM users\nWHERE age > 21\n  AND active = 1\nORDER BY name"
	if got := formatSQL(input).Text; got != want {
		t.Errorf("formatSQL = %q, want %q", got, want)
	}
}

func TestFormatSQLJoin(t *testing.T) {
	input := "SELECT u.id FROM users u LEFT JOIN orders o ON o.user_id = u.id LIMIT 10"
	want := "SELECT u.id\nFROM users u\nLEFT JOIN orders o\n  ON o.user_id = u.id\nLIMIT 10"
	if got := formatSQL(input).Text; got != want {
		t.Errorf("formatSQL = %q, want %q", got, want)
	}
}

func TestMinifySQL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"multiline",
			"SELECT *\n  FROM t\n  WHERE x = 1",
			"SELECT * FROM t WHERE x = 1",
		},
		{
			"quoted whitespace preserved",
			"SELECT 'a  b'  FROM t",
			"SELECT 'a  b' FROM t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minifySQL(tt.input).Text; got != tt.want {
				t.Errorf("minifySQL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
