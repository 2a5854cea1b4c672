package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"textlens/pkg/clipboard"
	"textlens/pkg/config"
	"textlens/pkg/detector"
	"textlens/pkg/detector/detectors"

	"golang.org/x/term"
)

// readInput resolves the text buffer for a command: the clipboard when
// --clipboard is set, an explicit file argument, or piped stdin. The
// boolean reports whether stdin was consumed.
func readInput(args []string) (string, bool, error) {
	if fromClipboard {
		text, err := clipboard.Read()
		if err != nil {
			return "", false, fmt.Errorf("failed to read clipboard: %w", err)
		}
		return text, false, nil
	}

	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", false, fmt.Errorf("cannot read '%s': %w", args[0], err)
		}
		return string(data), false, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", false, fmt.Errorf("no input: pass a file, pipe stdin, or use --clipboard")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", true, fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), true, nil
}

// loadSettingsOrExit loads the settings and exits with an error message if it fails
func loadSettingsOrExit() *config.Settings {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}
	return settings
}

// applyLanguageSetting strips language hints when auto detection is off:
// the suggested language is cleared and switch-language actions are
// dropped from the offered list.
func applyLanguageSetting(result *detector.Result, settings *config.Settings) {
	if settings.AutoDetectLanguage {
		return
	}

	result.SuggestedLanguage = ""
	kept := make([]detectors.Action, 0, len(result.Actions))
	for _, action := range result.Actions {
		if !strings.HasPrefix(action.ID, detectors.SwitchLanguagePrefix) {
			kept = append(kept, action)
		}
	}
	result.Actions = kept
}

// writeJSON emits v as two-space indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// isTerminal reports whether interactive UI can run: stdout must be a
// real terminal and we must not be in a CI environment.
func isTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
