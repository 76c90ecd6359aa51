// Package paths provides centralized path handling for dupclean:
// reference-root resolution, the path= argument form, default
// destination directories, and XDG locations for config and state.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dupclean/pkg/errors"
)

// Default destination directory names, relative to the reference root.
// These match the artifact layout users of the original tool expect and
// are overridable through configuration or --location.
const (
	// DefaultReportDir receives duplicate and empty-directory reports
	DefaultReportDir = "reports"

	// DefaultConsolidateDir receives consolidated text artifacts
	DefaultConsolidateDir = "consolidated"

	// DefaultDuplicateDir receives moved duplicates
	DefaultDuplicateDir = "duplicate"

	// ConfigFileName is the user configuration file name
	ConfigFileName = "config.toml"

	// AppDirName is the directory name for dupclean-specific files
	AppDirName = "dupclean"
)

// Paths resolves every location an operation needs from one explicit
// reference root. The reference root is captured once at startup
// (normally the invocation directory) and threaded through commands, so
// the core never reads the process working directory implicitly.
type Paths struct {
	referenceRoot string
}

// New creates a Paths anchored at referenceRoot. An empty root falls
// back to the process working directory.
func New(referenceRoot string) (*Paths, error) {
	root := referenceRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
		}
		root = wd
	}
	abs, err := filepath.Abs(ExpandHome(root))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid reference root %q", root)
	}
	return &Paths{referenceRoot: abs}, nil
}

// ReferenceRoot returns the absolute reference directory.
func (p *Paths) ReferenceRoot() string {
	return p.referenceRoot
}

// ReportDir returns the default destination for reports.
func (p *Paths) ReportDir() string {
	return filepath.Join(p.referenceRoot, DefaultReportDir)
}

// ConsolidateDir returns the default destination for consolidated artifacts.
func (p *Paths) ConsolidateDir() string {
	return filepath.Join(p.referenceRoot, DefaultConsolidateDir)
}

// DuplicateDir returns the default destination for moved duplicates.
func (p *Paths) DuplicateDir() string {
	return filepath.Join(p.referenceRoot, DefaultDuplicateDir)
}

// ParseLocation extracts the path from a location argument, accepting
// both the "path=<value>" form and a bare value.
func ParseLocation(arg string) string {
	if strings.HasPrefix(arg, "path=") {
		return strings.SplitN(arg, "=", 2)[1]
	}
	return arg
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// ConfigFilePath returns the XDG location of the user config file.
func ConfigFilePath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// Depth returns the number of path segments between root and path.
// Depth(root, root) is 0; direct children are 1. Both arguments must be
// absolute or both relative to the same base.
func Depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(os.PathSeparator)) + 1
}
