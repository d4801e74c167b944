// Package file provides a file-based DataFetcher implementation for the config package.
//
// This package reads configuration data from files on the filesystem.
// It implements the config.DataFetcher interface, returning raw bytes
// for subsequent parsing.
//
// The file is read at construction time and cached, meaning subsequent calls
// to Fetch() return the same data without re-reading the filesystem. This
// provides consistent configuration data throughout the application lifecycle.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/config.yaml")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// A source that may be absent, such as a local override file, is opened
// with Optional. A missing optional file reads as empty data:
//
//	fetcher, err := file.NewFetcher("config.local.yaml", file.Optional())()
//	if fetcher.Missing() {
//	    // nothing to merge
//	}
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Optional only forgives a missing file; a directory path still fails
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
