// Package moveout implements the move-out command: flattening nested
// content up into the reference directory. In file mode every file
// below the reference directory is pulled up; in folder mode the
// deepest directory containing files is relocated as a whole unit.
package moveout

import (
	"path/filepath"

	"github.com/arthur-debert/dupclean/pkg/filesystem"
	"github.com/arthur-debert/dupclean/pkg/logging"
	"github.com/arthur-debert/dupclean/pkg/relocate"
	"github.com/arthur-debert/dupclean/pkg/scanner"
	"github.com/arthur-debert/dupclean/pkg/types"
)

// Options holds options for the move-out command.
type Options struct {
	// SearchRoot is the directory scanned for nested content.
	SearchRoot string
	// ReferenceRoot is the directory content is flattened into,
	// normally the invocation directory.
	ReferenceRoot string
	// Type is the raw --type value; file is the default for move-out.
	Type string
	// DryRun computes outcomes without touching the filesystem.
	DryRun bool
	// SkipNames lists directory names pruned from the walk.
	SkipNames []string
	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS
}

// MoveOut flattens nested content into the reference root,
// collision-safe. Folder mode relocates the single deepest directory
// that directly contains files; file mode relocates every file not
// already directly inside the reference root.
func MoveOut(opts Options) (*types.MoveOutResult, error) {
	logger := logging.GetLogger("commands.moveout")
	logger.Info().
		Str("search_root", opts.SearchRoot).
		Str("reference_root", opts.ReferenceRoot).
		Str("type", opts.Type).
		Bool("dry_run", opts.DryRun).
		Msg("Moving nested content out")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	target := scanner.ResolveTarget(opts.Type, types.KindFile)
	if target.Kind == types.KindDirectory {
		return moveOutDeepestFolder(fsys, opts)
	}
	return moveOutFiles(fsys, opts)
}

func moveOutDeepestFolder(fsys types.FS, opts Options) (*types.MoveOutResult, error) {
	deepest, err := scanner.DeepestDirWithFiles(fsys, opts.SearchRoot, opts.ReferenceRoot)
	if err != nil {
		return nil, err
	}

	result := &types.MoveOutResult{}
	if deepest == "" {
		return result, nil
	}

	outcomes, err := relocate.New(fsys, opts.DryRun).Move([]string{deepest}, opts.ReferenceRoot)
	if err != nil {
		return nil, err
	}
	result.Outcomes = outcomes
	result.Summary = types.Summarize(outcomes)
	if len(outcomes) > 0 && outcomes[0].Status == types.OutcomeMoved {
		result.FolderMoved = deepest
	}
	return result, nil
}

func moveOutFiles(fsys types.FS, opts Options) (*types.MoveOutResult, error) {
	absRef, err := filepath.Abs(opts.ReferenceRoot)
	if err != nil {
		return nil, err
	}

	// Collect first, then move: relocating while walking would revisit
	// moved files at their new location.
	var batch []string
	err = scanner.Walk(fsys, opts.SearchRoot, opts.SkipNames, func(entry types.Entry) error {
		if entry.Kind != types.KindFile {
			return nil
		}
		dir, err := filepath.Abs(filepath.Dir(entry.Path))
		if err != nil || dir == absRef {
			return nil
		}
		batch = append(batch, entry.Path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &types.MoveOutResult{}
	if len(batch) == 0 {
		return result, nil
	}

	outcomes, err := relocate.New(fsys, opts.DryRun).Move(batch, opts.ReferenceRoot)
	if err != nil {
		return nil, err
	}
	result.Outcomes = outcomes
	result.Summary = types.Summarize(outcomes)
	return result, nil
}
