package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dupclean/pkg/display"
	"github.com/arthur-debert/dupclean/pkg/errors"
	"github.com/arthur-debert/dupclean/pkg/logging"
)

var (
	verbosity int
	dryRun    bool
	noColor   bool

	rootCmd = &cobra.Command{
		Use:   "dupclean",
		Short: "Find and clean up duplicate files and folders",
		Long: `dupclean scans a directory tree for files or folders sharing the same
name and reports, relocates, deletes, or consolidates them. Detection is
by name only; the first occurrence found is kept as the original.

Always test on noncritical data before using any file-modifying command.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// A bare invocation is an error: every action needs an
			// explicit command.
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidCommand, "no command provided")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// newRenderer builds the stdout renderer with terminal auto-detection.
func newRenderer() *display.Renderer {
	format := display.DetectFormat(os.Stdout)
	if noColor {
		format = display.FormatText
	}
	return display.NewRenderer(os.Stdout, format)
}

func init() {
	// Verbosity flag for logging
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	// Dry-run flag
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")

	// Color control
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(moveOutCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(consolidateCmd)
	rootCmd.AddCommand(genConfigCmd)
	rootCmd.AddCommand(manualCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for dupclean`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dupclean version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}
