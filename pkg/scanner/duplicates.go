package scanner

import "github.com/arthur-debert/dupclean/pkg/types"

// Duplicates derives the duplicate groups from an index: every name
// with two or more paths, in first-discovery order. Paths[0] of each
// group is the original and is never a candidate for move or delete.
// This is a pure function of the index.
func Duplicates(ix *types.NameIndex) []types.DuplicateGroup {
	var groups []types.DuplicateGroup
	for _, name := range ix.Names() {
		paths := ix.Paths(name)
		if len(paths) > 1 {
			groups = append(groups, types.DuplicateGroup{Name: name, Paths: paths})
		}
	}
	return groups
}

// AllItems flattens an index into every path it holds, in discovery
// order. Used by the --all variants of move and delete.
func AllItems(ix *types.NameIndex) []string {
	var all []string
	for _, name := range ix.Names() {
		all = append(all, ix.Paths(name)...)
	}
	return all
}

// DuplicateItems flattens duplicate groups into the paths subject to
// move or delete: everything but the original of each group.
func DuplicateItems(groups []types.DuplicateGroup) []string {
	var items []string
	for _, g := range groups {
		items = append(items, g.Duplicates()...)
	}
	return items
}
