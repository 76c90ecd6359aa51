// Package move implements the move command: relocating duplicates (or,
// with All, every matching item) into a destination directory.
package move

import (
	"github.com/arthur-debert/dupclean/pkg/filesystem"
	"github.com/arthur-debert/dupclean/pkg/logging"
	"github.com/arthur-debert/dupclean/pkg/relocate"
	"github.com/arthur-debert/dupclean/pkg/scanner"
	"github.com/arthur-debert/dupclean/pkg/types"
)

// Options holds options for the move command.
type Options struct {
	// SearchRoot is the directory scanned.
	SearchRoot string
	// Destination receives the moved items.
	Destination string
	// Type is the raw --type value; file is the default for move.
	Type string
	// Name keeps only entries with this exact base name.
	Name string
	// All moves every matching item, not only duplicates.
	All bool
	// DryRun computes outcomes without touching the filesystem.
	DryRun bool
	// SkipNames lists directory names pruned from the walk.
	SkipNames []string
	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS
}

// MoveItems scans for matching items and moves the selected batch
// (duplicates only, or everything with All) into the destination,
// collision-safe. The first occurrence of each name always stays put
// unless All is set.
func MoveItems(opts Options) (*types.RelocateResult, error) {
	logger := logging.GetLogger("commands.move")
	logger.Info().
		Str("search_root", opts.SearchRoot).
		Str("destination", opts.Destination).
		Bool("all", opts.All).
		Bool("dry_run", opts.DryRun).
		Msg("Moving items")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	target := scanner.ResolveTarget(opts.Type, types.KindFile)
	filter := scanner.Filter{Target: target, Name: opts.Name}

	ix, err := scanner.Index(fsys, opts.SearchRoot, filter, opts.SkipNames)
	if err != nil {
		return nil, err
	}

	var batch []string
	if opts.All {
		batch = scanner.AllItems(ix)
	} else {
		batch = scanner.DuplicateItems(scanner.Duplicates(ix))
	}

	result := &types.RelocateResult{Destination: opts.Destination}
	if len(batch) == 0 {
		return result, nil
	}

	outcomes, err := relocate.New(fsys, opts.DryRun).Move(batch, opts.Destination)
	if err != nil {
		return nil, err
	}
	result.Outcomes = outcomes
	result.Summary = types.Summarize(outcomes)
	return result, nil
}
