package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dupclean/pkg/commands/report"
	"github.com/arthur-debert/dupclean/pkg/logging"
)

var reportFlags scanFlags

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a report of duplicate files or folders",
	Long: `Generate a JSON report of duplicate files or folders under the search
location. Defaults to folders when --type is not given. With --cleanup,
an empty-directories report is generated instead and --type/--name are
ignored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if reportFlags.cleanup && (reportFlags.typeArg != "" || reportFlags.name != "") {
			logger := logging.GetLogger("cli")
			logger.Warn().Msg("--type and --name are ignored with --cleanup")
		}

		rc, err := newRunContext()
		if err != nil {
			return err
		}
		root, err := rc.searchRoot(reportFlags.searchLocation)
		if err != nil {
			return err
		}

		result, err := report.Generate(report.Options{
			SearchRoot:  root,
			Destination: rc.destination(reportFlags.location, rc.cfg.Destinations.Report),
			Type:        reportFlags.typeArg,
			Name:        reportFlags.name,
			Cleanup:     reportFlags.cleanup,
			SkipNames:   rc.cfg.Scan.SkipNames,
		})
		if result != nil {
			newRenderer().ReportResult(result)
		}
		return err
	},
}

func init() {
	addScanFlags(reportCmd, &reportFlags)
	reportCmd.Flags().BoolVar(&reportFlags.cleanup, "cleanup", false, "Report empty directories instead of duplicates")
}
