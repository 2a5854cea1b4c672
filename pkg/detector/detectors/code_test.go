package detectors

import "testing"

func TestCodeDetectAndClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		detected bool
		lang     string
	}{
		{
			name:     "javascript function",
			text:     "function greet(name) {\n  return 'hi ' + name;\n}",
			detected: true,
			lang:     "typescript",
		},
		{
			name:     "arrow assignment",
			text:     "const add = (a, b) => a + b",
			detected: true,
			lang:     "typescript",
		},
		{
			name:     "python def",
			text:     "def main():\n    pass",
			detected: true,
			lang:     "python",
		},
		{
			name:     "rust fn",
			text:     "pub fn new() -> Self {\n    Self {}\n}",
			detected: true,
			lang:     "rust",
		},
		{
			name:     "go func with package",
			text:     "package main\n\nfunc main() {\n}",
			detected: true,
			lang:     "go",
		},
		{
			name:     "java class",
			text:     "public class Foo {\n  private int x;\n}",
			detected: true,
			lang:     "java",
		},
		{
			name:     "import only is generic",
			text:     "import java.util.List;",
			detected: true,
			lang:     "",
		},
		{
			name:     "python beats rust when both match",
			text:     "def x():\n    pass\nfn y() {}",
			detected: true,
			lang:     "python",
		},
		{
			name:     "prose",
			text:     "we should talk about the release",
			detected: false,
			lang:     "",
		},
	}

	d := &CodeDetector{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text); got != tt.detected {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.detected)
			}
			lang, _ := classifyCode(tt.text)
			if lang != tt.lang {
				t.Errorf("classifyCode(%q) = %q, want %q", tt.text, lang, tt.lang)
			}
		})
	}
}

func TestCodeToastNamesLanguage(t *testing.T) {
	d := &CodeDetector{}
	if got := d.GetToastMessage("def main():\n    pass"); got != "Python code detected" {
		t.Errorf("toast = %q", got)
	}
	if got := d.GetToastMessage("import java.util.List;"); got != "Code detected" {
		t.Errorf("generic toast = %q", got)
	}
}

func TestWrapCodeFence(t *testing.T) {
	got := wrapCodeFence("def main():\n    pass")
	want := "```python\ndef main():\n    pass\n```"
	if got.Text != want {
		t.Errorf("wrapCodeFence = %q, want %q", got.Text, want)
	}
}

func TestCodeSwitchLanguageAction(t *testing.T) {
	d := &CodeDetector{}
	ids := actionIDs(d.GetActions("package main\n\nfunc main() {}"))
	found := false
	for _, id := range ids {
		if id == SwitchLanguagePrefix+"go" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected switch action in %v", ids)
	}
}
