// Package testutil provides helpers for building filesystem trees in
// tests, against both real temp directories and the in-memory
// filesystem.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/arthur-debert/dupclean/pkg/filesystem"
	"github.com/arthur-debert/dupclean/pkg/types"
)

// TempDir creates a temporary directory for tests and returns its path.
// The directory is automatically cleaned up when the test completes.
func TempDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// CreateFile creates a file with the given content in the specified directory.
// Parent directories are created as needed. It fails the test if the
// file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// BuildTree creates files (map value non-empty) and directories (map
// value empty with trailing handling by key only) under root. Keys are
// slash-separated relative paths; a key ending in "/" creates a bare
// directory.
func BuildTree(t *testing.T, root string, entries map[string]string) {
	t.Helper()

	for rel, content := range entries {
		if rel[len(rel)-1] == '/' {
			CreateDir(t, root, filepath.FromSlash(rel))
			continue
		}
		CreateFile(t, root, filepath.FromSlash(rel), content)
	}
}

// NewMemoryFS returns an afero-backed in-memory types.FS plus the raw
// afero filesystem for direct manipulation.
func NewMemoryFS() (types.FS, afero.Fs) {
	raw := afero.NewMemMapFs()
	return filesystem.NewAferoFS(raw), raw
}

// Exists reports whether path exists on the real filesystem.
func Exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	return err == nil
}
