// Package bag wraps a tree in an object with path accessors.
//
//	b, _ := bag.New(map[string]any{"db.host": "localhost"})
//	host, _ := bag.Lookup[string](b, "db.host")
//	_ = b.Merge("db", map[string]any{"port": 5432})
//	db, _ := b.Extend("db", nil)
//
// Keys of the data passed to New and Build are paths themselves, so flat
// dotted data builds a nested tree.
package bag
