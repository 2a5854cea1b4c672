package cmd

import (
	"fmt"
	"os"
	"textlens/pkg/detector"

	"github.com/spf13/cobra"
)

// actionsCmd lists the action ids the input would be offered, one per
// line, ready to pipe into 'textlens apply'.
var actionsCmd = &cobra.Command{
	Use:   "actions [FILE]",
	Short: "List available action ids for the input",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
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

		if jsonOutput {
			writeJSON(os.Stdout, result.ActionIDs())
			return
		}

		for _, id := range result.ActionIDs() {
			fmt.Println(id)
		}
	},
}
