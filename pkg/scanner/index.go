package scanner

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dupclean/pkg/logging"
	"github.com/arthur-debert/dupclean/pkg/types"
)

// Filter selects which walked entries reach the index.
type Filter struct {
	Target Target
	// Name keeps only entries whose base name equals it exactly.
	Name string
}

// Matches reports whether the entry passes the filter. The extension
// filter applies to files only and is case-insensitive.
func (f Filter) Matches(entry types.Entry) bool {
	if entry.Kind != f.Target.Kind {
		return false
	}
	if f.Name != "" && entry.Name != f.Name {
		return false
	}
	if f.Target.Ext != "" && entry.Kind == types.KindFile {
		if !strings.EqualFold(filepath.Ext(entry.Name), f.Target.Ext) {
			return false
		}
	}
	return true
}

// Index walks root and groups every entry passing the filter under its
// base name, in discovery order. Each matching entry appears exactly
// once, under exactly its own name.
func Index(fsys types.FS, root string, filter Filter, skipNames []string) (*types.NameIndex, error) {
	logger := logging.GetLogger("scanner.index")

	ix := types.NewNameIndex()
	err := Walk(fsys, root, skipNames, func(entry types.Entry) error {
		if filter.Matches(entry) {
			ix.Add(entry.Name, entry.Path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", root).
		Int("names", ix.Len()).
		Msg("Index built")
	return ix, nil
}
