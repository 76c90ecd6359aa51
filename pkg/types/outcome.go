package types

import "fmt"

// OutcomeStatus classifies the result of one batch item.
type OutcomeStatus string

const (
	// OutcomeMoved means the item was relocated to Destination.
	OutcomeMoved OutcomeStatus = "moved"
	// OutcomeDeleted means the item was removed.
	OutcomeDeleted OutcomeStatus = "deleted"
	// OutcomeSkippedMissing means the source vanished between scan and
	// action. Not a failure.
	OutcomeSkippedMissing OutcomeStatus = "skipped-missing"
	// OutcomeFailed means the operation on this item failed; the batch
	// continued with the next item.
	OutcomeFailed OutcomeStatus = "failed"
)

// Outcome is the per-item result of a batch move or delete. A batch is
// never aborted by a single failed item, so every input path yields
// exactly one Outcome.
type Outcome struct {
	Status      OutcomeStatus
	Source      string
	Destination string // set for OutcomeMoved only
	Err         error  // set for OutcomeFailed only
	DryRun      bool   // the action was computed but not performed
}

// String renders the outcome as the one-line form used in logs.
func (o Outcome) String() string {
	switch o.Status {
	case OutcomeMoved:
		if o.DryRun {
			return fmt.Sprintf("would move: %s -> %s", o.Source, o.Destination)
		}
		return fmt.Sprintf("moved: %s -> %s", o.Source, o.Destination)
	case OutcomeDeleted:
		if o.DryRun {
			return fmt.Sprintf("would delete: %s", o.Source)
		}
		return fmt.Sprintf("deleted: %s", o.Source)
	case OutcomeSkippedMissing:
		return fmt.Sprintf("source not found (already moved or deleted): %s", o.Source)
	case OutcomeFailed:
		return fmt.Sprintf("error processing %s: %v", o.Source, o.Err)
	default:
		return fmt.Sprintf("unknown outcome for %s", o.Source)
	}
}

// OutcomeSummary aggregates a batch of outcomes for display.
type OutcomeSummary struct {
	Moved   int
	Deleted int
	Skipped int
	Failed  int
}

// Summarize counts outcomes by status.
func Summarize(outcomes []Outcome) OutcomeSummary {
	var s OutcomeSummary
	for _, o := range outcomes {
		switch o.Status {
		case OutcomeMoved:
			s.Moved++
		case OutcomeDeleted:
			s.Deleted++
		case OutcomeSkippedMissing:
			s.Skipped++
		case OutcomeFailed:
			s.Failed++
		}
	}
	return s
}
