// Package consolidate merges the distinct contents of text files into a
// single artifact. Distinctness is by exact content equality after
// stripping leading and trailing whitespace, not by file identity.
package consolidate

import (
	"strings"

	"github.com/arthur-debert/dupclean/pkg/logging"
	"github.com/arthur-debert/dupclean/pkg/scanner"
	"github.com/arthur-debert/dupclean/pkg/types"
)

// Collection holds the distinct contents gathered from a scan.
type Collection struct {
	// Contents are the distinct non-empty values in first-seen order.
	Contents []string
	// FilesRead counts files successfully read.
	FilesRead int
	// Unreadable lists files that could not be read and were skipped.
	Unreadable []string
}

// Merged joins the distinct contents with one blank line between them.
func (c Collection) Merged() string {
	return strings.Join(c.Contents, "\n\n")
}

// Collect walks root for files with the given extension, reads each as
// text, and keeps every distinct stripped content once, in the order
// first seen. Unreadable files are logged and skipped; empty contents
// are dropped.
func Collect(fsys types.FS, root, ext string, skipNames []string) (Collection, error) {
	logger := logging.GetLogger("consolidate")

	filter := scanner.Filter{Target: scanner.Target{Kind: types.KindFile, Ext: ext}}
	ix, err := scanner.Index(fsys, root, filter, skipNames)
	if err != nil {
		return Collection{}, err
	}

	var col Collection
	seen := make(map[string]bool)
	for _, path := range scanner.AllItems(ix) {
		data, err := fsys.ReadFile(path)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Cannot read file, skipping")
			col.Unreadable = append(col.Unreadable, path)
			continue
		}
		col.FilesRead++

		content := strings.TrimSpace(string(data))
		if content == "" || seen[content] {
			continue
		}
		seen[content] = true
		col.Contents = append(col.Contents, content)
	}

	logger.Debug().
		Int("read", col.FilesRead).
		Int("distinct", len(col.Contents)).
		Msg("Collection complete")
	return col, nil
}
