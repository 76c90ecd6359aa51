package scanner

import (
	"strings"

	"github.com/arthur-debert/dupclean/pkg/types"
)

// Target resolves the --type argument: which kind of entry an operation
// works on, and an optional extension filter for files.
type Target struct {
	Kind types.Kind
	// Ext is a lowercase extension including the leading dot, empty
	// when no extension filter applies.
	Ext string
}

// ResolveTarget maps a raw --type value to a Target. "file" and
// "folder" select the kind directly; a value starting with a dot
// selects files filtered by that extension; anything else, including an
// empty value, falls back to the command's default kind.
func ResolveTarget(typeArg string, defaultKind types.Kind) Target {
	arg := strings.ToLower(strings.TrimSpace(typeArg))
	switch {
	case arg == "file":
		return Target{Kind: types.KindFile}
	case arg == "folder":
		return Target{Kind: types.KindDirectory}
	case strings.HasPrefix(arg, "."):
		return Target{Kind: types.KindFile, Ext: arg}
	default:
		return Target{Kind: defaultKind}
	}
}
