// Package tree stores ordered, nested key/value data and walks it by path.
//
// A tree is a *Mapping whose values are either nested mappings or leaves.
// Four operations address a location by key (see package keypath):
//
//	Get(m, "a.b.c", def)        value at the path, or def resolved for a missing path
//	Set(m, "a.b.c", v, false)   store v, merging mapping values into existing ones
//	Isset(m, "a.b")             presence test; a stored nil is present
//	Unset(m, "a.b.c")           remove; missing last segment is a no-op
//
// Append adds to a list-like mapping under the next integer key.
//
// # Defaults
//
// The def argument of Get is returned when the path is missing. A Resolver
// is called instead, with the key as passed and the root mapping, so callers
// can compute a fallback or fail:
//
//	v, err := tree.Get(m, "db.host", tree.Strict("database host is required"))
//
// # Concurrency
//
// Mappings are not safe for concurrent use. Readers and writers of the same
// tree must be serialized by the caller.
package tree
