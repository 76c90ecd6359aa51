// Package genconfig implements the gen-config command.
package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/dupclean/pkg/config"
	"github.com/arthur-debert/dupclean/pkg/errors"
	"github.com/arthur-debert/dupclean/pkg/filesystem"
	"github.com/arthur-debert/dupclean/pkg/logging"
	"github.com/arthur-debert/dupclean/pkg/paths"
	"github.com/arthur-debert/dupclean/pkg/types"
)

// Options holds options for the gen-config command.
type Options struct {
	// Write saves the config to the XDG config path instead of only
	// returning it.
	Write bool
	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS
}

// GenConfig returns the annotated default configuration and, with
// Write set, saves it to the user config path. An existing config file
// is never overwritten.
func GenConfig(opts Options) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &types.GenConfigResult{ConfigContent: config.GetDefaultsContent()}
	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	target := paths.ConfigFilePath()
	if _, err := fsys.Stat(target); err == nil {
		return nil, errors.Newf(errors.ErrInvalidInput, "config file already exists at %s", target)
	}

	if err := fsys.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create config directory for %s", target)
	}
	if err := fsys.WriteFile(target, []byte(result.ConfigContent), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write config file %s", target)
	}

	logger.Info().Str("path", target).Msg("Config file written")
	result.WrittenPath = target
	return result, nil
}
