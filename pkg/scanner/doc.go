// Package scanner implements the read-only half of dupclean: the
// deterministic filesystem walk, name indexing with filters, duplicate
// derivation, empty-directory detection, and deepest-directory
// selection.
//
// All functions take the filesystem as an explicit types.FS so tests
// can run against an in-memory tree. Nothing in this package mutates
// the filesystem.
package scanner
