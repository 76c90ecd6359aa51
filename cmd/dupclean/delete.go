package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dupclean/pkg/commands/remove"
)

var deleteFlags scanFlags

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete duplicate files or folders",
	Long: `Delete duplicates (all but the first occurrence of each name) from the
search location. With --all, every matching item is deleted. With
--cleanup, empty directories are pruned bottom-up instead; the search
location itself is never removed. Defaults to files when --type is not
given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rc, err := newRunContext()
		if err != nil {
			return err
		}
		root, err := rc.searchRoot(deleteFlags.searchLocation)
		if err != nil {
			return err
		}

		result, err := remove.DeleteItems(remove.Options{
			SearchRoot: root,
			Type:       deleteFlags.typeArg,
			Name:       deleteFlags.name,
			All:        deleteFlags.all,
			Cleanup:    deleteFlags.cleanup,
			DryRun:     dryRun,
			SkipNames:  rc.cfg.Scan.SkipNames,
		})
		if err != nil {
			return err
		}

		r := newRenderer()
		if len(result.Outcomes) == 0 {
			switch {
			case deleteFlags.cleanup:
				r.Info("No empty directories found.")
			case deleteFlags.all:
				r.Info("No items found to delete.")
			default:
				r.Info("No duplicates found to delete.")
			}
			return nil
		}
		r.Outcomes("Delete", result.Outcomes, result.Summary)
		return nil
	},
}

func init() {
	addScanFlags(deleteCmd, &deleteFlags)
	deleteCmd.Flags().BoolVar(&deleteFlags.all, "all", false, "Delete every matching item, not only duplicates")
	deleteCmd.Flags().BoolVar(&deleteFlags.cleanup, "cleanup", false, "Recursively delete empty directories instead of duplicates")
}
