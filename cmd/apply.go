package cmd

import (
	"fmt"
	"os"
	"strings"
	"textlens/pkg/clipboard"
	"textlens/pkg/detector"
	"textlens/pkg/detector/detectors"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <action-id> [FILE]",
	Short: "Run one action against the input and print the result",
	Long: `Run a single action against the input and print the transformed text.

Validation messages go to stderr and a failed validation exits 1.
Action ids prefixed '` + detectors.SwitchLanguagePrefix + `' leave the
text untouched and report the language on stderr.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runApply,
}

func runApply(cmd *cobra.Command, args []string) {
	actionID := args[0]

	text, _, err := readInput(args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	settings := loadSettingsOrExit()

	outcome, err := detector.ApplyAction(text, actionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if strings.HasPrefix(actionID, detectors.SwitchLanguagePrefix) {
		fmt.Fprintf(os.Stderr, "Language: %s\n", strings.TrimPrefix(actionID, detectors.SwitchLanguagePrefix))
	}

	if outcome.ValidationMessage != "" {
		msg := outcome.ValidationMessage
		if outcome.ErrorLine > 0 {
			msg = fmt.Sprintf("%s (line %d, column %d)", msg, outcome.ErrorLine, outcome.ErrorColumn)
		}
		fmt.Fprintln(os.Stderr, msg)
	}

	if copyResult || settings.CopyResults {
		if err := clipboard.Write(outcome.Text); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to copy result: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Print(outcome.Text)
		if !strings.HasSuffix(outcome.Text, "\n") {
			fmt.Println()
		}
	}

	if outcome.Validation == detectors.ValidationError {
		os.Exit(1)
	}
}
