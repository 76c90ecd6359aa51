package types

// Kind distinguishes files from directories in scan results.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

// String returns the human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "folder"
	default:
		return "unknown"
	}
}

// Entry is one filesystem object discovered during a walk. Entries are
// immutable snapshots; the underlying object may vanish before it is
// acted on (see relocate).
type Entry struct {
	Name  string // base name
	Path  string // full path as joined from the scan root
	Kind  Kind
	Depth int // distance from the scan root; direct children are 1
}

// NameIndex maps a base name to every path sharing it, in walk discovery
// order. Both the name sequence and each path list preserve first-seen
// ordering, which is what makes "the first occurrence is the original"
// deterministic.
type NameIndex struct {
	names []string
	paths map[string][]string
}

// NewNameIndex returns an empty index.
func NewNameIndex() *NameIndex {
	return &NameIndex{paths: make(map[string][]string)}
}

// Add records a path under name, preserving discovery order.
func (ix *NameIndex) Add(name, path string) {
	if _, seen := ix.paths[name]; !seen {
		ix.names = append(ix.names, name)
	}
	ix.paths[name] = append(ix.paths[name], path)
}

// Names returns every indexed name in first-discovery order.
func (ix *NameIndex) Names() []string {
	return ix.names
}

// Paths returns the discovery-ordered paths recorded for name.
func (ix *NameIndex) Paths(name string) []string {
	return ix.paths[name]
}

// Len returns the number of distinct names in the index.
func (ix *NameIndex) Len() int {
	return len(ix.names)
}

// All returns the underlying name to paths mapping. Callers must not
// mutate the returned slices.
func (ix *NameIndex) All() map[string][]string {
	return ix.paths
}

// DuplicateGroup is a name shared by two or more paths. Paths[0] is the
// original; the rest are duplicates.
type DuplicateGroup struct {
	Name  string
	Paths []string
}

// Duplicates returns Paths without the original.
func (g DuplicateGroup) Duplicates() []string {
	if len(g.Paths) < 2 {
		return nil
	}
	return g.Paths[1:]
}
