package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dupclean/pkg/commands/move"
	"github.com/arthur-debert/dupclean/pkg/logging"
)

var moveFlags scanFlags

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move duplicate files or folders to a directory",
	Long: `Move duplicates (all but the first occurrence of each name) into the
destination directory, resolving name collisions with a numeric suffix.
With --all, every matching item is moved instead of only duplicates.
Defaults to files when --type is not given; destination defaults to
./duplicate.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		warnCleanupIgnored(moveFlags.cleanup)

		rc, err := newRunContext()
		if err != nil {
			return err
		}
		root, err := rc.searchRoot(moveFlags.searchLocation)
		if err != nil {
			return err
		}

		result, err := move.MoveItems(move.Options{
			SearchRoot:  root,
			Destination: rc.destination(moveFlags.location, rc.cfg.Destinations.Duplicate),
			Type:        moveFlags.typeArg,
			Name:        moveFlags.name,
			All:         moveFlags.all,
			DryRun:      dryRun,
			SkipNames:   rc.cfg.Scan.SkipNames,
		})
		if err != nil {
			return err
		}

		r := newRenderer()
		if len(result.Outcomes) == 0 {
			if moveFlags.all {
				r.Info("No items found to move.")
			} else {
				r.Info("No duplicates found to move.")
			}
			return nil
		}
		r.Outcomes("Move", result.Outcomes, result.Summary)
		return nil
	},
}

// warnCleanupIgnored mirrors the long-standing behavior of accepting
// --cleanup on unsupported commands with a warning instead of an error.
func warnCleanupIgnored(cleanup bool) {
	if cleanup {
		logger := logging.GetLogger("cli")
		logger.Warn().Msg("The --cleanup option is only supported with report and delete; ignoring")
	}
}

func init() {
	addScanFlags(moveCmd, &moveFlags)
	moveCmd.Flags().BoolVar(&moveFlags.all, "all", false, "Move every matching item, not only duplicates")
	moveCmd.Flags().BoolVar(&moveFlags.cleanup, "cleanup", false, "Ignored; only supported with report and delete")
	_ = moveCmd.Flags().MarkHidden("cleanup")
}
