package relocate

import (
	"fmt"
	"path/filepath"
	"strings"
)

// resolveDestination picks a free path for baseName inside destDir. The
// canonical name is used when available; otherwise a numeric suffix is
// appended until a free name is found: stem_1.ext, stem_2.ext for
// files, name_1, name_2 for directories.
//
// A destination counts as taken when it exists on the filesystem or has
// already been claimed earlier in the same batch, so dry runs resolve
// the same names a real run would.
func (r *Relocator) resolveDestination(destDir, baseName string, isDir bool) string {
	candidate := filepath.Join(destDir, baseName)
	if r.isFree(candidate) {
		return candidate
	}

	stem := baseName
	ext := ""
	if !isDir {
		ext = filepath.Ext(baseName)
		stem = strings.TrimSuffix(baseName, ext)
	}

	for counter := 1; ; counter++ {
		candidate = filepath.Join(destDir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		if r.isFree(candidate) {
			return candidate
		}
	}
}

func (r *Relocator) isFree(path string) bool {
	if r.claimed[path] {
		return false
	}
	_, err := r.fs.Stat(path)
	return err != nil
}
