// Package types holds the shared data model for dupclean: filesystem
// entries discovered during a scan, the name index they are grouped
// into, per-item relocation outcomes, and the narrow FS interface the
// core operates through.
package types
