package relocate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dupclean/pkg/filesystem"
	"github.com/arthur-debert/dupclean/pkg/relocate"
	"github.com/arthur-debert/dupclean/pkg/testutil"
	"github.com/arthur-debert/dupclean/pkg/types"
)

func TestMove_RelocatesFiles(t *testing.T) {
	// Setup
	root := testutil.TempDir(t)
	src := testutil.CreateFile(t, root, "x.txt", "content")
	dest := filepath.Join(root, "duplicate")

	// Execute
	outcomes, err := relocate.New(filesystem.NewOS(), false).Move([]string{src}, dest)
	require.NoError(t, err)

	// Verify
	require.Len(t, outcomes, 1)
	assert.Equal(t, types.OutcomeMoved, outcomes[0].Status)
	assert.Equal(t, filepath.Join(dest, "x.txt"), outcomes[0].Destination)
	assert.False(t, testutil.Exists(t, src))
	assert.True(t, testutil.Exists(t, outcomes[0].Destination))
}

func TestMove_CollisionGetsNumericSuffix(t *testing.T) {
	// Setup: destination already holds x.txt
	root := testutil.TempDir(t)
	src := testutil.CreateFile(t, root, "a/x.txt", "new")
	dest := testutil.CreateDir(t, root, "duplicate")
	testutil.CreateFile(t, dest, "x.txt", "old")

	// Execute
	outcomes, err := relocate.New(filesystem.NewOS(), false).Move([]string{src}, dest)
	require.NoError(t, err)

	// Verify: x_1.txt, never an overwrite
	require.Len(t, outcomes, 1)
	assert.Equal(t, filepath.Join(dest, "x_1.txt"), outcomes[0].Destination)
	data, err := os.ReadFile(filepath.Join(dest, "x.txt"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestMove_DirectoryCollisionSuffixAfterName(t *testing.T) {
	root := testutil.TempDir(t)
	src := testutil.CreateDir(t, root, filepath.Join("nested", "q"))
	testutil.CreateFile(t, src, "f.txt", "x")
	dest := testutil.CreateDir(t, root, "out")
	testutil.CreateDir(t, dest, "q")

	outcomes, err := relocate.New(filesystem.NewOS(), false).Move([]string{src}, dest)
	require.NoError(t, err)

	require.Len(t, outcomes, 1)
	assert.Equal(t, filepath.Join(dest, "q_1"), outcomes[0].Destination)
	assert.True(t, testutil.Exists(t, filepath.Join(dest, "q_1", "f.txt")))
}

func TestMove_MissingSourceIsSkippedNotFailed(t *testing.T) {
	root := testutil.TempDir(t)
	present := testutil.CreateFile(t, root, "here.txt", "x")
	missing := filepath.Join(root, "gone.txt")
	dest := filepath.Join(root, "dest")

	outcomes, err := relocate.New(filesystem.NewOS(), false).Move([]string{missing, present}, dest)
	require.NoError(t, err)

	require.Len(t, outcomes, 2)
	assert.Equal(t, types.OutcomeSkippedMissing, outcomes[0].Status)
	assert.Equal(t, types.OutcomeMoved, outcomes[1].Status, "batch continues past a missing source")
}

func TestMove_SameNameTwiceInOneBatch(t *testing.T) {
	// Two duplicates with the same base name moved in one batch must
	// land under distinct names.
	root := testutil.TempDir(t)
	src1 := testutil.CreateFile(t, root, "a/x.txt", "1")
	src2 := testutil.CreateFile(t, root, "b/x.txt", "2")
	dest := filepath.Join(root, "dest")

	outcomes, err := relocate.New(filesystem.NewOS(), false).Move([]string{src1, src2}, dest)
	require.NoError(t, err)

	require.Len(t, outcomes, 2)
	assert.Equal(t, filepath.Join(dest, "x.txt"), outcomes[0].Destination)
	assert.Equal(t, filepath.Join(dest, "x_1.txt"), outcomes[1].Destination)
}

func TestMove_DryRunTouchesNothing(t *testing.T) {
	root := testutil.TempDir(t)
	src := testutil.CreateFile(t, root, "x.txt", "content")
	dest := filepath.Join(root, "dest")

	outcomes, err := relocate.New(filesystem.NewOS(), true).Move([]string{src}, dest)
	require.NoError(t, err)

	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].DryRun)
	assert.Equal(t, types.OutcomeMoved, outcomes[0].Status)
	assert.True(t, testutil.Exists(t, src), "source untouched")
	assert.False(t, testutil.Exists(t, dest), "destination not created")
}

func TestMove_DryRunResolvesCollisionsAcrossBatch(t *testing.T) {
	root := testutil.TempDir(t)
	src1 := testutil.CreateFile(t, root, "a/x.txt", "1")
	src2 := testutil.CreateFile(t, root, "b/x.txt", "2")
	dest := filepath.Join(root, "dest")

	outcomes, err := relocate.New(filesystem.NewOS(), true).Move([]string{src1, src2}, dest)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dest, "x.txt"), outcomes[0].Destination)
	assert.Equal(t, filepath.Join(dest, "x_1.txt"), outcomes[1].Destination,
		"dry run predicts the same names a real run would use")
}

func TestDelete_FilesAndDirectories(t *testing.T) {
	root := testutil.TempDir(t)
	file := testutil.CreateFile(t, root, "f.txt", "x")
	dir := testutil.CreateDir(t, root, "sub")
	testutil.CreateFile(t, dir, "inner.txt", "x")

	outcomes := relocate.New(filesystem.NewOS(), false).Delete([]string{file, dir})

	require.Len(t, outcomes, 2)
	assert.Equal(t, types.OutcomeDeleted, outcomes[0].Status)
	assert.Equal(t, types.OutcomeDeleted, outcomes[1].Status)
	assert.False(t, testutil.Exists(t, file))
	assert.False(t, testutil.Exists(t, dir), "directory subtree removed recursively")
}

func TestDelete_MissingSourceSkipped(t *testing.T) {
	root := testutil.TempDir(t)

	outcomes := relocate.New(filesystem.NewOS(), false).Delete([]string{filepath.Join(root, "gone")})

	require.Len(t, outcomes, 1)
	assert.Equal(t, types.OutcomeSkippedMissing, outcomes[0].Status)
}

func TestMove_DanglingSymlinkIsMovedAsItself(t *testing.T) {
	root := testutil.TempDir(t)
	link := filepath.Join(root, "ghost.txt")
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.txt"), link))
	dest := filepath.Join(root, "duplicate")

	outcomes, err := relocate.New(filesystem.NewOS(), false).Move([]string{link}, dest)
	require.NoError(t, err)

	// The link target does not exist, but the link does; it is moved,
	// not skipped.
	require.Len(t, outcomes, 1)
	assert.Equal(t, types.OutcomeMoved, outcomes[0].Status)
	_, err = os.Lstat(filepath.Join(dest, "ghost.txt"))
	assert.NoError(t, err)
	_, err = os.Lstat(link)
	assert.True(t, os.IsNotExist(err))
}

func TestDelete_SymlinkRemovesLinkNotTarget(t *testing.T) {
	root := testutil.TempDir(t)
	target := testutil.CreateFile(t, root, "real.txt", "content")
	link := filepath.Join(root, "alias.txt")
	require.NoError(t, os.Symlink(target, link))

	outcomes := relocate.New(filesystem.NewOS(), false).Delete([]string{link})

	require.Len(t, outcomes, 1)
	assert.Equal(t, types.OutcomeDeleted, outcomes[0].Status)
	assert.False(t, testutil.Exists(t, link))
	assert.True(t, testutil.Exists(t, target))
}

func TestSummarize(t *testing.T) {
	outcomes := []types.Outcome{
		{Status: types.OutcomeMoved},
		{Status: types.OutcomeMoved},
		{Status: types.OutcomeSkippedMissing},
		{Status: types.OutcomeFailed},
	}
	s := types.Summarize(outcomes)
	assert.Equal(t, 2, s.Moved)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 0, s.Deleted)
}
