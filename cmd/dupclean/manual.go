package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dupclean/pkg/display"
)

//go:embed docs/manual.md
var manualContent string

var manualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Show the full dupclean manual",
	Long:  `Render the complete command reference with examples.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(renderManual())
		return nil
	},
}

// renderManual renders the embedded manual for the terminal, falling
// back to the raw markdown when rendering is unavailable or the output
// is not a terminal.
func renderManual() string {
	if display.DetectFormat(os.Stdout) != display.FormatTerminal {
		return manualContent
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return manualContent
	}
	out, err := renderer.Render(manualContent)
	if err != nil {
		return manualContent
	}
	return out
}
