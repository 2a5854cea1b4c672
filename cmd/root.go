package cmd

import (
	"fmt"
	"os"
	"strings"
	"textlens/cmd/ui/suggestion"
	"textlens/pkg/clipboard"
	"textlens/pkg/detector"
	"textlens/pkg/detector/detectors"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var (
	jsonOutput      bool
	skipInteractive bool
	fromClipboard   bool
	copyResult      bool

	logoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	tipMsgStyle     = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("190")).Italic(true)
	endingMsgStyle  = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	successMsgStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	errorMsgStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

const Logo = `
████████╗███████╗██╗  ██╗████████╗██╗     ███████╗███╗   ██╗███████╗
╚══██╔══╝██╔════╝╚██╗██╔╝╚══██╔══╝██║     ██╔════╝████╗  ██║██╔════╝
   ██║   █████╗   ╚███╔╝    ██║   ██║     █████╗  ██╔██╗ ██║███████╗
   ██║   ██╔══╝   ██╔██╗    ██║   ██║     ██╔══╝  ██║╚██╗██║╚════██║
   ██║   ███████╗██╔╝ ██╗   ██║   ███████╗███████╗██║ ╚████║███████║
   ╚═╝   ╚══════╝╚═╝  ╚═╝   ╚═╝   ╚══════╝╚══════╝╚═╝  ╚═══╝╚══════╝
`

var rootCmd = &cobra.Command{
	Use:   "textlens [FILE]",
	Short: "A fast content classifier for text buffers",
	Long: Logo + `
Textlens classifies a text buffer (JSON, YAML, URLs, SQL, colors, stack
traces, JWTs and more) and suggests one-keystroke transformations for it.

Input comes from a file argument, piped stdin, or the clipboard. In a
terminal the suggestions open as an interactive picker; otherwise the
classification is emitted as JSON.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	Run:     runRootCommand,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRootCommand(cmd *cobra.Command, args []string) {
	text, usedStdin, err := readInput(args)
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

	interactive := !jsonOutput && !skipInteractive && !usedStdin &&
		settings.ShowIntelligentSuggestions && isTerminal()
	if !interactive {
		writeJSON(os.Stdout, result)
		return
	}

	fmt.Printf("%s\n", logoStyle.Render(Logo))

	action, picked, err := suggestion.Show(result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error showing suggestions: %v\n", err)
		os.Exit(1)
	}

	if !picked {
		fmt.Println("No action applied.")
		fmt.Printf("\n%s\n", tipMsgStyle.Render("Tip: use 'textlens actions' to list action ids for scripting"))
		return
	}

	if strings.HasPrefix(action.ID, detectors.SwitchLanguagePrefix) {
		lang := strings.TrimPrefix(action.ID, detectors.SwitchLanguagePrefix)
		fmt.Printf("%s\n", endingMsgStyle.Render("Switch your editor language to "+lang))
		return
	}

	outcome := action.Execute(text)

	if outcome.ValidationMessage != "" {
		msg := outcome.ValidationMessage
		if outcome.ErrorLine > 0 {
			msg = fmt.Sprintf("%s (line %d, column %d)", msg, outcome.ErrorLine, outcome.ErrorColumn)
		}
		style := successMsgStyle
		if outcome.Validation == detectors.ValidationError {
			style = errorMsgStyle
		}
		fmt.Printf("%s\n", style.Render(msg))
	}

	if copyResult || settings.CopyResults {
		if err := clipboard.Write(outcome.Text); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to copy result: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\n%s\n", endingMsgStyle.Render("✓ Result copied to clipboard"))
		return
	}

	if outcome.Text != text {
		fmt.Print(outcome.Text)
		if !strings.HasSuffix(outcome.Text, "\n") {
			fmt.Println()
		}
	}
}

func init() {
	rootCmd.SetVersionTemplate("textlens version {{.Version}}\n")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(detectorsCmd)
	rootCmd.AddCommand(watchCmd)

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON (disables interactive mode)")
	rootCmd.PersistentFlags().BoolVar(&skipInteractive, "no-interactive", false, "Skip interactive prompts (for CI/automation)")
	rootCmd.PersistentFlags().BoolVar(&fromClipboard, "clipboard", false, "Read input from the system clipboard")
	rootCmd.PersistentFlags().BoolVar(&copyResult, "copy", false, "Copy transformed output to the clipboard")
}
