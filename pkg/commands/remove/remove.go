// Package remove implements the delete command: deleting duplicates
// (or, with All, every matching item), and pruning empty directories in
// cleanup mode.
package remove

import (
	"github.com/arthur-debert/dupclean/pkg/filesystem"
	"github.com/arthur-debert/dupclean/pkg/logging"
	"github.com/arthur-debert/dupclean/pkg/relocate"
	"github.com/arthur-debert/dupclean/pkg/scanner"
	"github.com/arthur-debert/dupclean/pkg/types"
)

// Options holds options for the delete command.
type Options struct {
	// SearchRoot is the directory scanned.
	SearchRoot string
	// Type is the raw --type value; file is the default for delete.
	Type string
	// Name keeps only entries with this exact base name.
	Name string
	// All deletes every matching item, not only duplicates.
	All bool
	// Cleanup prunes empty directories bottom-up instead of deleting
	// duplicates. Type and Name are ignored in cleanup mode.
	Cleanup bool
	// DryRun computes outcomes without touching the filesystem.
	DryRun bool
	// SkipNames lists directory names pruned from the walk.
	SkipNames []string
	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS
}

// DeleteItems scans for matching items and deletes the selected batch:
// duplicates only by default, everything with All, or empty directories
// with Cleanup. The search root is never deleted in cleanup mode.
func DeleteItems(opts Options) (*types.RelocateResult, error) {
	logger := logging.GetLogger("commands.remove")
	logger.Info().
		Str("search_root", opts.SearchRoot).
		Bool("all", opts.All).
		Bool("cleanup", opts.Cleanup).
		Bool("dry_run", opts.DryRun).
		Msg("Deleting items")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	reloc := relocate.New(fsys, opts.DryRun)

	if opts.Cleanup {
		// Validate the root the same way a scan would before pruning.
		if err := scanner.Walk(fsys, opts.SearchRoot, nil, func(types.Entry) error { return nil }); err != nil {
			return nil, err
		}
		outcomes := reloc.PruneEmptyDirs(opts.SearchRoot)
		return &types.RelocateResult{
			Outcomes: outcomes,
			Summary:  types.Summarize(outcomes),
		}, nil
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

	result := &types.RelocateResult{}
	if len(batch) == 0 {
		return result, nil
	}

	outcomes := reloc.Delete(batch)
	result.Outcomes = outcomes
	result.Summary = types.Summarize(outcomes)
	return result, nil
}
