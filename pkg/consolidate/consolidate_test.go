package consolidate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dupclean/pkg/consolidate"
	"github.com/arthur-debert/dupclean/pkg/filesystem"
	"github.com/arthur-debert/dupclean/pkg/testutil"
)

func TestCollect_DistinctContentsFirstSeenOrder(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.BuildTree(t, root, map[string]string{
		"a/one.txt":   "hi\n",
		"b/two.txt":   "hi",
		"c/three.txt": "bye",
	})

	col, err := consolidate.Collect(filesystem.NewOS(), root, ".txt", nil)
	require.NoError(t, err)

	assert.Equal(t, 3, col.FilesRead)
	assert.Equal(t, []string{"hi", "bye"}, col.Contents)
	assert.Equal(t, "hi\n\nbye", col.Merged())
}

func TestCollect_DropsEmptyContents(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.BuildTree(t, root, map[string]string{
		"blank.txt": "   \n\t\n",
		"real.txt":  "keep me",
	})

	col, err := consolidate.Collect(filesystem.NewOS(), root, ".txt", nil)
	require.NoError(t, err)

	assert.Equal(t, 2, col.FilesRead)
	assert.Equal(t, []string{"keep me"}, col.Contents)
}

func TestCollect_IgnoresOtherExtensions(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.BuildTree(t, root, map[string]string{
		"note.txt": "text",
		"note.md":  "markdown",
	})

	col, err := consolidate.Collect(filesystem.NewOS(), root, ".txt", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"text"}, col.Contents)
}

func TestCollect_NoMatchesYieldsEmptyCollection(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.CreateFile(t, root, "data.csv", "1,2,3")

	col, err := consolidate.Collect(filesystem.NewOS(), root, ".txt", nil)
	require.NoError(t, err)

	assert.Zero(t, col.FilesRead)
	assert.Empty(t, col.Contents)
	assert.Equal(t, "", col.Merged())
}

func TestCollect_SkipNames(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.BuildTree(t, root, map[string]string{
		"keep/a.txt":         "visible",
		"node_modules/b.txt": "hidden",
	})

	col, err := consolidate.Collect(filesystem.NewOS(), root, ".txt", []string{"node_modules"})
	require.NoError(t, err)

	assert.Equal(t, []string{"visible"}, col.Contents)
}
