package cmd

import (
	"fmt"
	"os"
	"textlens/pkg/detector"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	detectorsHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	detectorsIDStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	detectorsToastStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	detectorsMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var detectorsCmd = &cobra.Command{
	Use:   "detectors",
	Short: "List registered detectors in priority order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		registered := detector.Registered()

		if jsonOutput {
			type entry struct {
				ID       string `json:"id"`
				Priority int    `json:"priority"`
				Toast    string `json:"toast_message"`
			}
			entries := make([]entry, 0, len(registered))
			for _, d := range registered {
				entries = append(entries, entry{ID: d.ID(), Priority: d.Priority(), Toast: d.ToastMessage()})
			}
			writeJSON(os.Stdout, entries)
			return
		}

		fmt.Println(detectorsHeaderStyle.Render("Registered detectors:"))
		for _, d := range registered {
			fmt.Printf("  %s %s %s\n",
				detectorsIDStyle.Render(fmt.Sprintf("%-10s", d.ID())),
				detectorsMutedStyle.Render(fmt.Sprintf("%4d", d.Priority())),
				detectorsToastStyle.Render(d.ToastMessage()))
		}
	},
}
