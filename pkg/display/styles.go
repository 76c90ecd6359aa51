package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/dupclean/pkg/types"
)

// TitleStyle renders command headers.
var TitleStyle = lipgloss.NewStyle().Bold(true)

// PathStyle renders filesystem paths inside result lines.
var PathStyle = lipgloss.NewStyle().Faint(true)

// StatusStyle returns the pterm style for an outcome status.
func StatusStyle(status types.OutcomeStatus) *pterm.Style {
	switch status {
	case types.OutcomeMoved:
		return pterm.NewStyle(pterm.FgGreen)
	case types.OutcomeDeleted:
		return pterm.NewStyle(pterm.FgRed)
	case types.OutcomeSkippedMissing:
		return pterm.NewStyle(pterm.FgYellow)
	case types.OutcomeFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// statusLabel returns the fixed-width label shown before each outcome
// line, with future-tense variants for dry runs.
func statusLabel(o types.Outcome) string {
	switch o.Status {
	case types.OutcomeMoved:
		if o.DryRun {
			return "would move"
		}
		return "moved"
	case types.OutcomeDeleted:
		if o.DryRun {
			return "would delete"
		}
		return "deleted"
	case types.OutcomeSkippedMissing:
		return "skipped"
	case types.OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
