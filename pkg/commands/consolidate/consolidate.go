// Package consolidate implements the consolidate command: merging the
// distinct contents of .txt files into one artifact.
package consolidate

import (
	"strings"
	"time"

	contents "github.com/arthur-debert/dupclean/pkg/consolidate"
	"github.com/arthur-debert/dupclean/pkg/errors"
	"github.com/arthur-debert/dupclean/pkg/filesystem"
	"github.com/arthur-debert/dupclean/pkg/logging"
	"github.com/arthur-debert/dupclean/pkg/report"
	"github.com/arthur-debert/dupclean/pkg/types"
)

// Options holds options for the consolidate command.
type Options struct {
	// SearchRoot is the directory scanned for text files.
	SearchRoot string
	// Destination receives the consolidated artifact.
	Destination string
	// Type must be ".txt"; any other value is a configuration error.
	Type string
	// SkipNames lists directory names pruned from the walk.
	SkipNames []string
	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS
}

// Consolidate gathers every distinct .txt content under the search root
// and writes one merged artifact. When no non-empty content is found,
// no file is written.
func Consolidate(opts Options) (*types.ConsolidateResult, error) {
	logger := logging.GetLogger("commands.consolidate")
	logger.Info().
		Str("search_root", opts.SearchRoot).
		Str("destination", opts.Destination).
		Msg("Consolidating text files")

	if !strings.EqualFold(opts.Type, ".txt") {
		return nil, errors.Newf(errors.ErrInvalidType, "the consolidate command only supports --type .txt, got %q", opts.Type)
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	col, err := contents.Collect(fsys, opts.SearchRoot, ".txt", opts.SkipNames)
	if err != nil {
		return nil, err
	}

	result := &types.ConsolidateResult{
		DistinctCount:   len(col.Contents),
		FilesRead:       col.FilesRead,
		UnreadableFiles: col.Unreadable,
	}
	if len(col.Contents) == 0 {
		return result, nil
	}

	path, err := report.WriteText(fsys, opts.Destination, report.ConsolidatedName, col.Merged(), time.Now())
	if err != nil {
		return result, err
	}
	result.ArtifactPath = path
	return result, nil
}
