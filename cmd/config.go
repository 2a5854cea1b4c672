package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"textlens/pkg/config"
	"textlens/pkg/tui"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	configStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	configLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	configValueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	configMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	configErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	configSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage textlens settings",
	Long: `View and edit the settings that control suggestion behavior.

Settings live in ` + config.LocalConfigFile + ` under your user config
directory and can be overridden with TEXTLENS_* environment variables.`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show current settings",
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettingsOrExit()

		if jsonOutput {
			writeJSON(os.Stdout, map[string]any{
				"auto_detect_language":         settings.AutoDetectLanguage,
				"show_intelligent_suggestions": settings.ShowIntelligentSuggestions,
				"copy_results":                 settings.CopyResults,
				"debounce_ms":                  settings.DebounceMs,
			})
			return
		}

		fmt.Println(configStyle.Render("Settings:"))
		fmt.Printf("  %s %s\n", configLabelStyle.Render("Intelligent suggestions:"), configValueStyle.Render(onOff(settings.ShowIntelligentSuggestions)))
		fmt.Printf("  %s %s\n", configLabelStyle.Render("Language detection:    "), configValueStyle.Render(onOff(settings.AutoDetectLanguage)))
		fmt.Printf("  %s %s\n", configLabelStyle.Render("Copy results:          "), configValueStyle.Render(onOff(settings.CopyResults)))
		fmt.Printf("  %s %s\n", configLabelStyle.Render("Watch debounce:        "), configValueStyle.Render(fmt.Sprintf("%dms", settings.DebounceMs)))
		fmt.Printf("\n%s\n", configMutedStyle.Render("Config file: "+config.GetConfigPath()))
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit settings interactively",
	Run: func(cmd *cobra.Command, args []string) {
		if !isTerminal() {
			fmt.Fprintf(os.Stderr, "%s\n", configErrorStyle.Render("'config edit' needs a terminal; use 'config set' instead"))
			os.Exit(1)
		}

		settings := loadSettingsOrExit()

		updated, err := tui.ShowSettingsForm(settings)
		if err != nil {
			fmt.Println("Cancelled")
			return
		}

		if err := updated.SaveSettings(); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", configErrorStyle.Render(fmt.Sprintf("Error saving settings: %v", err)))
			os.Exit(1)
		}

		fmt.Printf("%s\n", configSuccessStyle.Render("✓ Settings saved to "+config.GetConfigPath()))
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Set a single setting",
	Long: `Set a single setting and save it.

Keys: auto_detect_language, show_intelligent_suggestions, copy_results
(true/false) and debounce_ms (positive integer). Omitting the value in
a terminal opens a picker.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		key := strings.ToLower(args[0])

		choices := settingChoices(key)
		if choices == nil {
			fmt.Fprintf(os.Stderr, "%s\n", configErrorStyle.Render(fmt.Sprintf("Unknown setting '%s'", key)))
			fmt.Fprintf(os.Stderr, "\nValid keys: auto_detect_language, show_intelligent_suggestions, copy_results, debounce_ms\n")
			os.Exit(1)
		}

		settings := loadSettingsOrExit()

		var value string
		switch {
		case len(args) == 2:
			value = args[1]
		case isTerminal():
			picked, err := tui.ShowMenu("Set "+key, choices)
			if err != nil {
				fmt.Println("Cancelled")
				return
			}
			value = picked
		default:
			fmt.Fprintf(os.Stderr, "%s\n", configErrorStyle.Render(fmt.Sprintf("No value given for '%s'", key)))
			os.Exit(1)
		}

		switch key {
		case "auto_detect_language", "show_intelligent_suggestions", "copy_results":
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", configErrorStyle.Render(fmt.Sprintf("Invalid value '%s': expected true or false", value)))
				os.Exit(1)
			}
			switch key {
			case "auto_detect_language":
				settings.AutoDetectLanguage = enabled
			case "show_intelligent_suggestions":
				settings.ShowIntelligentSuggestions = enabled
			case "copy_results":
				settings.CopyResults = enabled
			}

		case "debounce_ms":
			ms, err := strconv.Atoi(value)
			if err != nil || ms < 1 {
				fmt.Fprintf(os.Stderr, "%s\n", configErrorStyle.Render("Invalid debounce: must be a positive integer of milliseconds"))
				os.Exit(1)
			}
			settings.DebounceMs = ms
		}

		if err := settings.SaveSettings(); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", configErrorStyle.Render(fmt.Sprintf("Error saving settings: %v", err)))
			os.Exit(1)
		}

		fmt.Printf("%s\n", configSuccessStyle.Render(fmt.Sprintf("✓ %s set to %s", key, value)))
	},
}

// settingChoices returns the picker choices for a key, nil for unknown
// keys.
func settingChoices(key string) []tui.Choice {
	switch key {
	case "auto_detect_language", "show_intelligent_suggestions", "copy_results":
		return []tui.Choice{
			{Name: "on", Value: "true"},
			{Name: "off", Value: "false"},
		}
	case "debounce_ms":
		return []tui.Choice{
			{Name: "250 ms", Value: "250", Description: "Classify almost immediately"},
			{Name: "500 ms", Value: "500", Description: "The default"},
			{Name: "1000 ms", Value: "1000", Description: "Wait out rapid clipboard churn"},
		}
	}
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configSetCmd)
}
