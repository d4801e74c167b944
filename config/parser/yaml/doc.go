// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml with ordered map decoding, so
// the resulting tree keeps keys in document order. Sequences become
// list-like mappings addressable by index ("servers.0.host").
//
// Usage:
//
//	parser := yaml.NewParser()
//	m, err := parser.Parse(data)
package yaml
