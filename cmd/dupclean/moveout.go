package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dupclean/pkg/commands/moveout"
)

var moveOutFlags scanFlags

var moveOutCmd = &cobra.Command{
	Use:   "move-out",
	Short: "Move nested content up into the current directory",
	Long: `Flatten nested content into the current directory. With the default
--type file, every file in a nested directory is moved up. With --type
folder, the deepest directory containing files is moved up as a whole
unit. Name collisions are resolved with a numeric suffix.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		warnCleanupIgnored(moveOutFlags.cleanup)

		rc, err := newRunContext()
		if err != nil {
			return err
		}
		root, err := rc.searchRoot(moveOutFlags.searchLocation)
		if err != nil {
			return err
		}

		result, err := moveout.MoveOut(moveout.Options{
			SearchRoot:    root,
			ReferenceRoot: rc.pth.ReferenceRoot(),
			Type:          moveOutFlags.typeArg,
			DryRun:        dryRun,
			SkipNames:     rc.cfg.Scan.SkipNames,
		})
		if err != nil {
			return err
		}

		r := newRenderer()
		if len(result.Outcomes) == 0 {
			if moveOutFlags.typeArg == "folder" {
				r.Info("No nested folder with files found to move.")
			} else {
				r.Info("No nested files found to move.")
			}
			return nil
		}
		r.Outcomes("Move out", result.Outcomes, result.Summary)
		return nil
	},
}

func init() {
	addScanFlags(moveOutCmd, &moveOutFlags)
	moveOutCmd.Flags().BoolVar(&moveOutFlags.cleanup, "cleanup", false, "Ignored; only supported with report and delete")
	_ = moveOutCmd.Flags().MarkHidden("cleanup")
}
