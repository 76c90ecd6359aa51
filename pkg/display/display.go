// Package display renders command results for the terminal. Rich output
// uses pterm and lipgloss styling; plain output (pipes, NO_COLOR, dumb
// terminals) is unstyled but line-for-line identical.
package display

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dupclean/pkg/types"
)

// Renderer writes human-readable command results.
type Renderer struct {
	out    io.Writer
	format Format
}

// NewRenderer creates a renderer writing to out using the given format.
// FormatAuto must be resolved by the caller via DetectFormat.
func NewRenderer(out io.Writer, format Format) *Renderer {
	return &Renderer{out: out, format: format}
}

func (r *Renderer) rich() bool {
	return r.format == FormatTerminal
}

// Info prints a plain informational line ("No duplicates found.", ...).
func (r *Renderer) Info(msg string) {
	fmt.Fprintln(r.out, msg)
}

func (r *Renderer) title(text string) {
	if r.rich() {
		text = TitleStyle.Render(text)
	}
	fmt.Fprintln(r.out, text)
}

// Outcomes renders a batch of per-item outcomes under a title, followed
// by a summary line.
func (r *Renderer) Outcomes(title string, outcomes []types.Outcome, summary types.OutcomeSummary) {
	r.title(title)
	for _, o := range outcomes {
		r.outcomeLine(o)
	}
	r.summaryLine(summary)
}

func (r *Renderer) outcomeLine(o types.Outcome) {
	label := statusLabel(o)
	if r.rich() {
		label = StatusStyle(o.Status).Sprint(label)
	}

	switch o.Status {
	case types.OutcomeMoved:
		fmt.Fprintf(r.out, "  %s  %s -> %s\n", label, o.Source, o.Destination)
	case types.OutcomeFailed:
		fmt.Fprintf(r.out, "  %s  %s: %v\n", label, o.Source, o.Err)
	case types.OutcomeSkippedMissing:
		fmt.Fprintf(r.out, "  %s  %s (source not found, already moved or deleted)\n", label, o.Source)
	default:
		fmt.Fprintf(r.out, "  %s  %s\n", label, o.Source)
	}
}

func (r *Renderer) summaryLine(s types.OutcomeSummary) {
	fmt.Fprintf(r.out, "%d moved, %d deleted, %d skipped, %d failed\n",
		s.Moved, s.Deleted, s.Skipped, s.Failed)
}

// ReportResult renders the report command result, including where the
// artifact was written.
func (r *Renderer) ReportResult(result *types.ReportResult) {
	if result.Cleanup {
		if len(result.EmptyDirs) == 0 {
			r.Info("No empty directories found.")
			return
		}
		r.title(fmt.Sprintf("%d empty directories", len(result.EmptyDirs)))
		for _, d := range result.EmptyDirs {
			location := d.Location
			if r.rich() {
				location = PathStyle.Render(location)
			}
			fmt.Fprintf(r.out, "  %s  %s\n", d.Name, location)
		}
	} else {
		if result.TotalDuplicates == 0 {
			r.Info("No duplicates found.")
			return
		}
		r.title(fmt.Sprintf("%d duplicate names", result.TotalDuplicates))
		for _, g := range result.Groups {
			fmt.Fprintf(r.out, "  %s (%d occurrences)\n", g.Name, len(g.Paths))
		}
	}
	if result.ArtifactPath != "" {
		fmt.Fprintf(r.out, "Report generated at: %s\n", result.ArtifactPath)
	}
}

// ConsolidateResult renders the consolidate command result.
func (r *Renderer) ConsolidateResult(result *types.ConsolidateResult) {
	if result.DistinctCount == 0 {
		r.Info("No text data found to consolidate.")
		return
	}
	fmt.Fprintf(r.out, "%d distinct contents from %d files\n", result.DistinctCount, result.FilesRead)
	for _, path := range result.UnreadableFiles {
		fmt.Fprintf(r.out, "  unreadable, skipped: %s\n", path)
	}
	if result.ArtifactPath != "" {
		fmt.Fprintf(r.out, "Consolidated file generated at: %s\n", result.ArtifactPath)
	}
}
