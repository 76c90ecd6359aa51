package types

// EmptyDir identifies one empty directory for reporting.
type EmptyDir struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// ReportResult is returned by the report command.
type ReportResult struct {
	// ArtifactPath is the report file written, empty when nothing was found.
	ArtifactPath string
	// TotalDuplicates is the number of duplicate groups (duplicate mode).
	TotalDuplicates int
	Groups          []DuplicateGroup
	// EmptyDirs is populated in cleanup mode instead of Groups.
	EmptyDirs []EmptyDir
	Cleanup   bool
}

// RelocateResult is returned by the move and delete commands.
type RelocateResult struct {
	Destination string // move only
	Outcomes    []Outcome
	Summary     OutcomeSummary
}

// MoveOutResult is returned by the move-out command.
type MoveOutResult struct {
	Outcomes []Outcome
	Summary  OutcomeSummary
	// Folder mode only: the directory that was relocated, if any.
	FolderMoved string
}

// ConsolidateResult is returned by the consolidate command.
type ConsolidateResult struct {
	ArtifactPath    string
	DistinctCount   int
	FilesRead       int
	UnreadableFiles []string
}

// GenConfigResult is returned by the gen-config command.
type GenConfigResult struct {
	ConfigContent string
	WrittenPath   string
}
