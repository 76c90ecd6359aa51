// Package report implements the report command: duplicate reports by
// default, empty-directory reports in cleanup mode.
package report

import (
	"time"

	"github.com/arthur-debert/dupclean/pkg/filesystem"
	"github.com/arthur-debert/dupclean/pkg/logging"
	"github.com/arthur-debert/dupclean/pkg/report"
	"github.com/arthur-debert/dupclean/pkg/scanner"
	"github.com/arthur-debert/dupclean/pkg/types"
)

// Options holds options for the report command.
type Options struct {
	// SearchRoot is the directory scanned for duplicates.
	SearchRoot string
	// Destination receives the report artifact.
	Destination string
	// Type is the raw --type value; folder is the default for report.
	Type string
	// Name keeps only entries with this exact base name.
	Name string
	// Cleanup switches to empty-directory reporting. Type and Name are
	// ignored in cleanup mode, matching the long-standing behavior of
	// the original tool.
	Cleanup bool
	// SkipNames lists directory names pruned from the walk.
	SkipNames []string
	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS
}

// Generate scans for duplicates (or empty directories in cleanup mode)
// and persists a report when anything was found.
//
// When the scan succeeds but the artifact cannot be written, the
// returned result still carries the gathered data alongside the error,
// so the data-gathering phase can be reported as a success and the
// persistence phase as a failure.
func Generate(opts Options) (*types.ReportResult, error) {
	logger := logging.GetLogger("commands.report")
	logger.Info().
		Str("search_root", opts.SearchRoot).
		Str("destination", opts.Destination).
		Bool("cleanup", opts.Cleanup).
		Msg("Generating report")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	if opts.Cleanup {
		return generateEmptyDirReport(fsys, opts)
	}
	return generateDuplicateReport(fsys, opts)
}

func generateDuplicateReport(fsys types.FS, opts Options) (*types.ReportResult, error) {
	target := scanner.ResolveTarget(opts.Type, types.KindDirectory)
	filter := scanner.Filter{Target: target, Name: opts.Name}

	ix, err := scanner.Index(fsys, opts.SearchRoot, filter, opts.SkipNames)
	if err != nil {
		return nil, err
	}

	groups := scanner.Duplicates(ix)
	result := &types.ReportResult{
		TotalDuplicates: len(groups),
		Groups:          groups,
	}
	if len(groups) == 0 {
		return result, nil
	}

	path, err := report.WriteDuplicateReport(fsys, opts.Destination, groups, time.Now())
	if err != nil {
		return result, err
	}
	result.ArtifactPath = path
	return result, nil
}

func generateEmptyDirReport(fsys types.FS, opts Options) (*types.ReportResult, error) {
	dirs, err := scanner.FindEmptyDirs(fsys, opts.SearchRoot)
	if err != nil {
		return nil, err
	}

	result := &types.ReportResult{
		Cleanup:   true,
		EmptyDirs: dirs,
	}
	if len(dirs) == 0 {
		return result, nil
	}

	path, err := report.WriteEmptyDirReport(fsys, opts.Destination, dirs, time.Now())
	if err != nil {
		return result, err
	}
	result.ArtifactPath = path
	return result, nil
}
