package scanner

import (
	"path/filepath"

	"github.com/arthur-debert/dupclean/pkg/paths"
	"github.com/arthur-debert/dupclean/pkg/types"
)

// DeepestDirWithFiles finds the directory under root that directly
// contains at least one file and lies deepest relative to referenceRoot.
// The reference root itself is never a candidate; the scan root is,
// when it differs from the reference root. Ties are broken by walk
// discovery order: among equally deep directories the first one found
// wins, which with the sorted walk means the lexicographically first.
//
// Returns the empty string when no directory below root holds a file.
func DeepestDirWithFiles(fsys types.FS, root, referenceRoot string) (string, error) {
	absRef, err := filepath.Abs(referenceRoot)
	if err != nil {
		return "", err
	}

	deepest := ""
	maxDepth := -1
	consider := func(dir string) {
		abs, err := filepath.Abs(dir)
		if err != nil || abs == absRef {
			return
		}
		if !hasDirectFile(fsys, dir) {
			return
		}
		if depth := paths.Depth(absRef, abs); depth > maxDepth {
			maxDepth = depth
			deepest = dir
		}
	}

	consider(root)
	err = Walk(fsys, root, nil, func(entry types.Entry) error {
		if entry.Kind == types.KindDirectory {
			consider(entry.Path)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return deepest, nil
}

func hasDirectFile(fsys types.FS, dir string) bool {
	children, err := fsys.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, child := range children {
		if !child.IsDir() {
			return true
		}
	}
	return false
}
