package genconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dupclean/pkg/commands/genconfig"
	"github.com/arthur-debert/dupclean/pkg/errors"
	"github.com/arthur-debert/dupclean/pkg/paths"
	"github.com/arthur-debert/dupclean/pkg/testutil"
)

func TestGenConfig_ReturnsContent(t *testing.T) {
	result, err := genconfig.GenConfig(genconfig.Options{})
	require.NoError(t, err)

	assert.Contains(t, result.ConfigContent, "[destinations]")
	assert.Empty(t, result.WrittenPath)
}

func TestGenConfig_WritesToConfigPath(t *testing.T) {
	fsys, _ := testutil.NewMemoryFS()

	result, err := genconfig.GenConfig(genconfig.Options{Write: true, FileSystem: fsys})
	require.NoError(t, err)

	assert.Equal(t, paths.ConfigFilePath(), result.WrittenPath)
	data, err := fsys.ReadFile(result.WrittenPath)
	require.NoError(t, err)
	assert.Equal(t, result.ConfigContent, string(data))
}

func TestGenConfig_NeverOverwrites(t *testing.T) {
	fsys, _ := testutil.NewMemoryFS()

	_, err := genconfig.GenConfig(genconfig.Options{Write: true, FileSystem: fsys})
	require.NoError(t, err)

	_, err = genconfig.GenConfig(genconfig.Options{Write: true, FileSystem: fsys})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInvalidInput))
}
