package scanner

import (
	"path/filepath"

	"github.com/arthur-debert/dupclean/pkg/errors"
	"github.com/arthur-debert/dupclean/pkg/types"
)

// FindEmptyDirs returns every directory under root, including root
// itself, that has no direct children. Evaluation is top-down against
// the state of the tree at scan time; directories that would become
// empty after deletions elsewhere do not qualify.
func FindEmptyDirs(fsys types.FS, root string) ([]types.EmptyDir, error) {
	info, err := fsys.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotADirectory, "provided search location %q is not a valid directory", root)
	}

	var empty []types.EmptyDir
	appendIfEmpty := func(dir string) {
		children, err := fsys.ReadDir(dir)
		if err == nil && len(children) == 0 {
			abs, absErr := filepath.Abs(dir)
			if absErr != nil {
				abs = dir
			}
			empty = append(empty, types.EmptyDir{Name: filepath.Base(dir), Location: abs})
		}
	}

	appendIfEmpty(root)
	err = Walk(fsys, root, nil, func(entry types.Entry) error {
		if entry.Kind == types.KindDirectory {
			appendIfEmpty(entry.Path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return empty, nil
}
