package cmd

import (
	"fmt"
	"os"
	"textlens/pkg/detector"

	"github.com/spf13/cobra"
)

// detectCmd classifies input and reports JSON regardless of the TTY.
var detectCmd = &cobra.Command{
	Use:   "detect [FILE]",
	Short: "Classify input and print the result as JSON",
	Long: `Classify a text buffer and print the matched detector, its toast
message and the available actions as JSON. Always non-interactive,
for editors and scripts.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) {
	text, _, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	settings := loadSettingsOrExit()

	result := detector.DetectContent(text)
	if result == nil {
		fmt.Fprintln(os.Stderr, "Error: input too short to classify")
		os.Exit(1)
	}
	applyLanguageSetting(result, settings)

	writeJSON(os.Stdout, result)
}
