// Package report writes dupclean's persisted artifacts: the duplicate
// report, the empty-directory report, and consolidated text files. All
// artifacts follow the same non-overwriting naming rule.
package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/dupclean/pkg/errors"
	"github.com/arthur-debert/dupclean/pkg/logging"
	"github.com/arthur-debert/dupclean/pkg/types"
)

// Canonical artifact names. When the canonical name is taken, a
// timestamp is inserted before the extension.
const (
	DuplicateReportName = "duplicate_report.json"
	EmptyDirReportName  = "empty-directories.json"
	ConsolidatedName    = "consolidated.txt"

	// timestampFormat is second-resolution and sortable.
	timestampFormat = "20060102150405"
)

// jsonIndent matches the four-space indentation of the reports users of
// this tool already parse.
const jsonIndent = "    "

// ResolveArtifactPath creates dir if needed and returns a path inside
// it that does not exist yet: the canonical name when free, otherwise
// the name with a timestamp suffix, with a numeric suffix on top should
// two runs land in the same second. Prior artifacts are never
// overwritten.
func ResolveArtifactPath(fsys types.FS, dir, canonical string, now time.Time) (string, error) {
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create artifact directory %s", dir)
	}

	path := filepath.Join(dir, canonical)
	if !exists(fsys, path) {
		return path, nil
	}

	ext := filepath.Ext(canonical)
	stem := strings.TrimSuffix(canonical, ext)
	stamp := now.Format(timestampFormat)

	path = filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, stamp, ext))
	for counter := 2; exists(fsys, path); counter++ {
		path = filepath.Join(dir, fmt.Sprintf("%s_%s_%d%s", stem, stamp, counter, ext))
	}
	return path, nil
}

func exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// duplicateReport is the persisted duplicate report payload.
type duplicateReport struct {
	TotalDuplicates int                 `json:"total_duplicates"`
	Duplicates      map[string][]string `json:"duplicates"`
}

// WriteDuplicateReport persists the duplicate groups as JSON in dir and
// returns the artifact path.
func WriteDuplicateReport(fsys types.FS, dir string, groups []types.DuplicateGroup, now time.Time) (string, error) {
	logger := logging.GetLogger("report")

	payload := duplicateReport{
		TotalDuplicates: len(groups),
		Duplicates:      make(map[string][]string, len(groups)),
	}
	for _, g := range groups {
		payload.Duplicates[g.Name] = g.Paths
	}

	path, err := writeJSON(fsys, dir, DuplicateReportName, payload, now)
	if err != nil {
		return "", err
	}
	logger.Info().Str("path", path).Int("groups", len(groups)).Msg("Duplicate report written")
	return path, nil
}

// emptyDirReport is the persisted empty-directory report payload.
type emptyDirReport struct {
	TotalEmptyDirectories int              `json:"total_empty_directories"`
	EmptyDirectories      []types.EmptyDir `json:"empty_directories"`
}

// WriteEmptyDirReport persists the empty-directory listing as JSON in
// dir and returns the artifact path.
func WriteEmptyDirReport(fsys types.FS, dir string, dirs []types.EmptyDir, now time.Time) (string, error) {
	logger := logging.GetLogger("report")

	payload := emptyDirReport{
		TotalEmptyDirectories: len(dirs),
		EmptyDirectories:      dirs,
	}

	path, err := writeJSON(fsys, dir, EmptyDirReportName, payload, now)
	if err != nil {
		return "", err
	}
	logger.Info().Str("path", path).Int("dirs", len(dirs)).Msg("Empty-directory report written")
	return path, nil
}

// WriteText persists plain-text content under the canonical name in dir
// (consolidated artifacts) and returns the artifact path.
func WriteText(fsys types.FS, dir, canonical, content string, now time.Time) (string, error) {
	path, err := ResolveArtifactPath(fsys, dir, canonical, now)
	if err != nil {
		return "", err
	}
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot write artifact %s", path)
	}
	return path, nil
}

func writeJSON(fsys types.FS, dir, canonical string, payload interface{}, now time.Time) (string, error) {
	path, err := ResolveArtifactPath(fsys, dir, canonical, now)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(payload, "", jsonIndent)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot marshal report")
	}
	if err := fsys.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot write artifact %s", path)
	}
	return path, nil
}
