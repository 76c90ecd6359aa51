package scanner

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/dupclean/pkg/errors"
	"github.com/arthur-debert/dupclean/pkg/logging"
	"github.com/arthur-debert/dupclean/pkg/types"
)

// WalkFunc is called for every entry discovered under the root. The
// root itself is not reported. Returning an error stops the walk.
type WalkFunc func(entry types.Entry) error

// Walk traverses root depth-first, parent before children, visiting
// every file and directory below it. Children are sorted by name before
// recursing so that discovery order is reproducible, which is what the
// "first occurrence is the original" rule depends on.
//
// Directory names in skipNames are pruned from the walk. Unreadable
// directories are logged and skipped rather than failing the walk.
// Walk fails with ErrNotADirectory when root does not exist or is not
// a directory.
func Walk(fsys types.FS, root string, skipNames []string, fn WalkFunc) error {
	info, err := fsys.Stat(root)
	if err != nil || !info.IsDir() {
		return errors.Newf(errors.ErrNotADirectory, "provided search location %q is not a valid directory", root)
	}

	skip := make(map[string]bool, len(skipNames))
	for _, name := range skipNames {
		skip[name] = true
	}

	return walkDir(fsys, root, 1, skip, fn)
}

func walkDir(fsys types.FS, dir string, depth int, skip map[string]bool, fn WalkFunc) error {
	logger := logging.GetLogger("scanner.walk")

	children, err := fsys.ReadDir(dir)
	if err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("Cannot read directory, skipping")
		return nil
	}
	sort.Slice(children, func(i, j int) bool { return children[i].Name() < children[j].Name() })

	for _, child := range children {
		entry := types.Entry{
			Name:  child.Name(),
			Path:  filepath.Join(dir, child.Name()),
			Kind:  kindOf(child),
			Depth: depth,
		}
		if entry.Kind == types.KindDirectory && skip[entry.Name] {
			continue
		}
		if err := fn(entry); err != nil {
			return err
		}
		if entry.Kind == types.KindDirectory {
			if err := walkDir(fsys, entry.Path, depth+1, skip, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func kindOf(entry fs.DirEntry) types.Kind {
	if entry.IsDir() {
		return types.KindDirectory
	}
	return types.KindFile
}
