package move_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dupclean/pkg/commands/move"
	"github.com/arthur-debert/dupclean/pkg/testutil"
	"github.com/arthur-debert/dupclean/pkg/types"
)

func TestMoveItems_DuplicateFilesOnly(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.BuildTree(t, root, map[string]string{
		"a/song.mp3": "1",
		"b/song.mp3": "2",
		"c/solo.mp3": "3",
	})
	dest := filepath.Join(root, "duplicate")

	result, err := move.MoveItems(move.Options{
		SearchRoot:  root,
		Destination: dest,
		SkipNames:   []string{"duplicate"},
	})
	require.NoError(t, err)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, types.OutcomeMoved, result.Outcomes[0].Status)
	assert.Equal(t, 1, result.Summary.Moved)

	// First occurrence stays, later one moves, unique file untouched.
	assert.True(t, testutil.Exists(t, filepath.Join(root, "a", "song.mp3")))
	assert.False(t, testutil.Exists(t, filepath.Join(root, "b", "song.mp3")))
	assert.True(t, testutil.Exists(t, filepath.Join(root, "c", "solo.mp3")))
	assert.True(t, testutil.Exists(t, filepath.Join(dest, "song.mp3")))
}

func TestMoveItems_CollisionGetsSuffix(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.BuildTree(t, root, map[string]string{
		"a/song.mp3": "1",
		"b/song.mp3": "2",
		"c/song.mp3": "3",
	})
	dest := filepath.Join(root, "duplicate")

	result, err := move.MoveItems(move.Options{
		SearchRoot:  root,
		Destination: dest,
		SkipNames:   []string{"duplicate"},
	})
	require.NoError(t, err)

	require.Len(t, result.Outcomes, 2)
	assert.True(t, testutil.Exists(t, filepath.Join(dest, "song.mp3")))
	assert.True(t, testutil.Exists(t, filepath.Join(dest, "song_1.mp3")))
}

func TestMoveItems_RerunSkipsMissing(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.BuildTree(t, root, map[string]string{
		"a/x.txt": "1",
		"b/x.txt": "2",
	})
	dest := filepath.Join(root, "duplicate")
	opts := move.Options{SearchRoot: root, Destination: dest, SkipNames: []string{"duplicate"}}

	first, err := move.MoveItems(opts)
	require.NoError(t, err)
	require.Equal(t, 1, first.Summary.Moved)

	// Nothing left to move: b/x.txt is gone and a/x.txt is no longer a
	// duplicate.
	second, err := move.MoveItems(opts)
	require.NoError(t, err)
	assert.Empty(t, second.Outcomes)
}

func TestMoveItems_AllMovesEveryMatch(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.BuildTree(t, root, map[string]string{
		"a/report.pdf": "1",
		"b/report.pdf": "2",
		"c/other.pdf":  "3",
	})
	dest := filepath.Join(root, "out")

	result, err := move.MoveItems(move.Options{
		SearchRoot:  root,
		Destination: dest,
		Type:        ".pdf",
		All:         true,
		SkipNames:   []string{"out"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Summary.Moved)
	assert.True(t, testutil.Exists(t, filepath.Join(dest, "report.pdf")))
	assert.True(t, testutil.Exists(t, filepath.Join(dest, "report_1.pdf")))
	assert.True(t, testutil.Exists(t, filepath.Join(dest, "other.pdf")))
}

func TestMoveItems_FolderType(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.BuildTree(t, root, map[string]string{
		"a/photos/x.jpg": "1",
		"b/photos/y.jpg": "2",
	})
	dest := filepath.Join(root, "duplicate")

	result, err := move.MoveItems(move.Options{
		SearchRoot:  root,
		Destination: dest,
		Type:        "folder",
		SkipNames:   []string{"duplicate"},
	})
	require.NoError(t, err)

	require.Equal(t, 1, result.Summary.Moved)
	assert.True(t, testutil.Exists(t, filepath.Join(root, "a", "photos")))
	assert.False(t, testutil.Exists(t, filepath.Join(root, "b", "photos")))
	assert.True(t, testutil.Exists(t, filepath.Join(dest, "photos", "y.jpg")))
}

func TestMoveItems_DryRunTouchesNothing(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.BuildTree(t, root, map[string]string{
		"a/x.txt": "1",
		"b/x.txt": "2",
	})
	dest := filepath.Join(root, "duplicate")

	result, err := move.MoveItems(move.Options{
		SearchRoot:  root,
		Destination: dest,
		DryRun:      true,
		SkipNames:   []string{"duplicate"},
	})
	require.NoError(t, err)

	require.Len(t, result.Outcomes, 1)
	assert.True(t, result.Outcomes[0].DryRun)
	assert.True(t, testutil.Exists(t, filepath.Join(root, "b", "x.txt")))
	_, err = os.Stat(dest)
	assert.True(t, os.IsNotExist(err), "destination not created during dry run")
}
