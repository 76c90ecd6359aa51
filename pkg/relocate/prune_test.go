package relocate_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dupclean/pkg/filesystem"
	"github.com/arthur-debert/dupclean/pkg/relocate"
	"github.com/arthur-debert/dupclean/pkg/testutil"
	"github.com/arthur-debert/dupclean/pkg/types"
)

func TestPruneEmptyDirs_CascadesBottomUp(t *testing.T) {
	// Setup: m/n both empty once n is gone
	root := testutil.TempDir(t)
	testutil.CreateDir(t, root, filepath.Join("m", "n"))

	// Execute
	outcomes := relocate.New(filesystem.NewOS(), false).PruneEmptyDirs(root)

	// Verify: n removed before m, root untouched
	require.Len(t, outcomes, 2)
	assert.Equal(t, filepath.Join(root, "m", "n"), outcomes[0].Source)
	assert.Equal(t, filepath.Join(root, "m"), outcomes[1].Source)
	assert.False(t, testutil.Exists(t, filepath.Join(root, "m")))
	assert.True(t, testutil.Exists(t, root), "the protected root is never removed")
}

func TestPruneEmptyDirs_NonEmptyDirsSurvive(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.BuildTree(t, root, map[string]string{
		"keep/file.txt": "x",
		"keep/empty/":   "",
	})

	outcomes := relocate.New(filesystem.NewOS(), false).PruneEmptyDirs(root)

	require.Len(t, outcomes, 1)
	assert.Equal(t, filepath.Join(root, "keep", "empty"), outcomes[0].Source)
	assert.True(t, testutil.Exists(t, filepath.Join(root, "keep", "file.txt")))
	assert.True(t, testutil.Exists(t, filepath.Join(root, "keep")))
}

func TestPruneEmptyDirs_EmptyRootUntouched(t *testing.T) {
	root := testutil.TempDir(t)

	outcomes := relocate.New(filesystem.NewOS(), false).PruneEmptyDirs(root)

	assert.Empty(t, outcomes)
	assert.True(t, testutil.Exists(t, root))
}

func TestPruneEmptyDirs_DryRunSimulatesCascade(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.CreateDir(t, root, filepath.Join("m", "n"))

	outcomes := relocate.New(filesystem.NewOS(), true).PruneEmptyDirs(root)

	// The dry run reports the same cascade, nothing is deleted.
	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.True(t, o.DryRun)
		assert.Equal(t, types.OutcomeDeleted, o.Status)
	}
	assert.True(t, testutil.Exists(t, filepath.Join(root, "m", "n")))
}
