package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dupclean/pkg/config"
	"github.com/arthur-debert/dupclean/pkg/errors"
	"github.com/arthur-debert/dupclean/pkg/paths"
)

// scanFlags are the modifier options shared by the scanning commands.
type scanFlags struct {
	typeArg        string
	location       string
	name           string
	searchLocation string
	all            bool
	cleanup        bool
}

// addScanFlags registers the common modifier flags on cmd. Which of
// them are honored depends on the command.
func addScanFlags(cmd *cobra.Command, f *scanFlags) {
	cmd.Flags().StringVar(&f.typeArg, "type", "", "Item type to process: file, folder, or an extension like .txt")
	cmd.Flags().StringVar(&f.location, "location", "", "Destination path (accepts path=<value> or a bare value)")
	cmd.Flags().StringVar(&f.name, "name", "", "Exact file or folder name to filter on")
	cmd.Flags().StringVar(&f.searchLocation, "search-location", "", "Base directory for the scan (accepts path=<value>); defaults to the current directory")
}

// runContext resolves configuration and the reference root once per
// invocation.
type runContext struct {
	cfg *config.Config
	pth *paths.Paths
}

func newRunContext() (*runContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	pth, err := paths.New("")
	if err != nil {
		return nil, err
	}
	return &runContext{cfg: cfg, pth: pth}, nil
}

// searchRoot resolves the scan root: the --search-location flag, then
// the configured scan root, then the reference root. A root that is not
// an existing directory is a configuration error, reported before any
// filesystem action.
func (rc *runContext) searchRoot(flagValue string) (string, error) {
	root := rc.pth.ReferenceRoot()
	switch {
	case flagValue != "":
		root = paths.ExpandHome(paths.ParseLocation(flagValue))
	case rc.cfg.Scan.Root != "":
		root = paths.ExpandHome(rc.cfg.Scan.Root)
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", errors.Newf(errors.ErrNotADirectory, "provided search location %q is not a valid directory", root)
	}
	return root, nil
}

// destination resolves an artifact or relocation destination: the
// --location flag when given, otherwise the configured directory name
// anchored at the reference root.
func (rc *runContext) destination(flagValue, configured string) string {
	if flagValue != "" {
		return paths.ExpandHome(paths.ParseLocation(flagValue))
	}
	if filepath.IsAbs(configured) {
		return configured
	}
	return filepath.Join(rc.pth.ReferenceRoot(), configured)
}
