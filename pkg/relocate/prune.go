package relocate

import (
	"path/filepath"

	"github.com/arthur-debert/dupclean/pkg/types"
)

// PruneEmptyDirs deletes empty directories under root bottom-up:
// children are evaluated and removed before their parent, so a
// directory left empty by its children's removal is removed in the same
// pass. The root itself is never deleted. One Outcome is produced per
// directory that was (or in a dry run, would be) removed, in deletion
// order, plus a Failed outcome for any directory that could not be
// removed.
func (r *Relocator) PruneEmptyDirs(root string) []types.Outcome {
	var outcomes []types.Outcome
	// removed tracks directories already pruned this pass so a dry run
	// can cascade the same way a real run does.
	removed := make(map[string]bool)
	r.pruneDir(root, root, removed, &outcomes)
	return outcomes
}

func (r *Relocator) pruneDir(dir, root string, removed map[string]bool, outcomes *[]types.Outcome) {
	children, err := r.fs.ReadDir(dir)
	if err != nil {
		return
	}

	remaining := 0
	for _, child := range children {
		path := filepath.Join(dir, child.Name())
		if child.IsDir() {
			r.pruneDir(path, root, removed, outcomes)
			if !removed[path] {
				remaining++
			}
		} else {
			remaining++
		}
	}

	if dir == root || remaining > 0 {
		return
	}

	if r.dryRun {
		removed[dir] = true
		*outcomes = append(*outcomes, types.Outcome{Status: types.OutcomeDeleted, Source: dir, DryRun: true})
		return
	}

	if err := r.fs.Remove(dir); err != nil {
		r.logger.Error().Err(err).Str("dir", dir).Msg("Cannot remove empty directory")
		*outcomes = append(*outcomes, types.Outcome{Status: types.OutcomeFailed, Source: dir, Err: err})
		return
	}

	removed[dir] = true
	r.logger.Info().Str("dir", dir).Msg("Removed empty directory")
	*outcomes = append(*outcomes, types.Outcome{Status: types.OutcomeDeleted, Source: dir})
}
