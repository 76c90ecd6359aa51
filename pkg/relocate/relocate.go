package relocate

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dupclean/pkg/errors"
	"github.com/arthur-debert/dupclean/pkg/logging"
	"github.com/arthur-debert/dupclean/pkg/types"
)

// Relocator moves or deletes batches of paths. It re-checks existence
// immediately before every action so that a path removed by an earlier
// item, or by another process, is skipped instead of failing the batch.
type Relocator struct {
	fs      types.FS
	dryRun  bool
	claimed map[string]bool
	logger  zerolog.Logger
}

// New creates a Relocator. With dryRun set, every outcome is computed,
// including collision-resolved destinations, but nothing is touched.
func New(fsys types.FS, dryRun bool) *Relocator {
	return &Relocator{
		fs:      fsys,
		dryRun:  dryRun,
		claimed: make(map[string]bool),
		logger:  logging.GetLogger("relocate"),
	}
}

// Move relocates the sources into destDir in input order, collision-safe.
// The returned error is non-nil only when destDir cannot be created; per-item
// failures are reported through the outcomes.
func (r *Relocator) Move(sources []string, destDir string) ([]types.Outcome, error) {
	if !r.dryRun {
		if err := r.fs.MkdirAll(destDir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create destination directory %s", destDir)
		}
	}

	outcomes := make([]types.Outcome, 0, len(sources))
	for _, source := range sources {
		outcomes = append(outcomes, r.moveOne(source, destDir))
	}
	return outcomes, nil
}

func (r *Relocator) moveOne(source, destDir string) types.Outcome {
	// Lstat, not Stat: a symlink is moved as the link itself, and a
	// dangling link still counts as present.
	info, err := r.fs.Lstat(source)
	if err != nil {
		r.logger.Info().Str("source", source).Msg("Source not found, skipping")
		return types.Outcome{Status: types.OutcomeSkippedMissing, Source: source}
	}

	dest := r.resolveDestination(destDir, filepath.Base(source), info.IsDir())
	r.claimed[dest] = true

	if r.dryRun {
		return types.Outcome{Status: types.OutcomeMoved, Source: source, Destination: dest, DryRun: true}
	}

	// Rename is atomic on POSIX but does not cross filesystems; a
	// cross-device move surfaces as a per-item failure.
	if err := r.fs.Rename(source, dest); err != nil {
		r.logger.Error().Err(err).Str("source", source).Str("dest", dest).Msg("Move failed")
		return types.Outcome{Status: types.OutcomeFailed, Source: source, Err: err}
	}

	r.logger.Info().Str("source", source).Str("dest", dest).Msg("Moved")
	return types.Outcome{Status: types.OutcomeMoved, Source: source, Destination: dest}
}

// Delete removes the sources in input order. Files are removed directly;
// directories are removed with their whole subtree.
func (r *Relocator) Delete(sources []string) []types.Outcome {
	outcomes := make([]types.Outcome, 0, len(sources))
	for _, source := range sources {
		outcomes = append(outcomes, r.deleteOne(source))
	}
	return outcomes
}

func (r *Relocator) deleteOne(source string) types.Outcome {
	// Lstat so a symlink is removed as the link, never its target.
	info, err := r.fs.Lstat(source)
	if err != nil {
		r.logger.Info().Str("source", source).Msg("Source not found, skipping")
		return types.Outcome{Status: types.OutcomeSkippedMissing, Source: source}
	}

	if r.dryRun {
		return types.Outcome{Status: types.OutcomeDeleted, Source: source, DryRun: true}
	}

	if info.IsDir() {
		err = r.fs.RemoveAll(source)
	} else {
		err = r.fs.Remove(source)
	}
	if err != nil {
		r.logger.Error().Err(err).Str("source", source).Msg("Delete failed")
		return types.Outcome{Status: types.OutcomeFailed, Source: source, Err: err}
	}

	r.logger.Info().Str("source", source).Bool("dir", info.IsDir()).Msg("Deleted")
	return types.Outcome{Status: types.OutcomeDeleted, Source: source}
}
