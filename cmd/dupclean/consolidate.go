package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dupclean/pkg/commands/consolidate"
)

var consolidateFlags scanFlags

var consolidateCmd = &cobra.Command{
	Use:   "consolidate",
	Short: "Consolidate all .txt files into one file with unique data",
	Long: `Read every .txt file under the search location and write one file
containing each distinct content exactly once, separated by a blank
line. Only --type .txt is supported; destination defaults to
./consolidated.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		warnCleanupIgnored(consolidateFlags.cleanup)

		rc, err := newRunContext()
		if err != nil {
			return err
		}
		root, err := rc.searchRoot(consolidateFlags.searchLocation)
		if err != nil {
			return err
		}

		result, err := consolidate.Consolidate(consolidate.Options{
			SearchRoot:  root,
			Destination: rc.destination(consolidateFlags.location, rc.cfg.Destinations.Consolidate),
			Type:        consolidateFlags.typeArg,
			SkipNames:   rc.cfg.Scan.SkipNames,
		})
		if result != nil {
			newRenderer().ConsolidateResult(result)
		}
		return err
	},
}

func init() {
	addScanFlags(consolidateCmd, &consolidateFlags)
	consolidateCmd.Flags().BoolVar(&consolidateFlags.cleanup, "cleanup", false, "Ignored; only supported with report and delete")
	_ = consolidateCmd.Flags().MarkHidden("cleanup")
}
