// Package json provides a JSON parser implementation for the config package.
//
// Documents are read with github.com/tidwall/gjson, whose iteration follows
// the document, so objects keep their key order in the resulting tree.
// Integral numbers become int, other numbers float64.
package json
