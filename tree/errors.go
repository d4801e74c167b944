package tree

import (
	"errors"

	"github.com/0xalexb/hjarta-traverse/keypath"
)

// ErrInvalidPath is returned when a key cannot be normalized into a path.
var ErrInvalidPath = keypath.ErrInvalidPath

// ErrEmptyPath is returned by write operations when the key normalizes to no segments.
var ErrEmptyPath = errors.New("path must not be empty")

// ErrMissingIntermediate is returned by Unset when a segment before the last one does not exist.
var ErrMissingIntermediate = errors.New("missing intermediate segment")

// ErrTypeConflict is returned when a walk must descend through a segment holding a leaf value.
var ErrTypeConflict = errors.New("segment holds a leaf value, not a mapping")

// ErrUnknownKey is returned by the Strict default resolver.
var ErrUnknownKey = errors.New("unknown key")

// ErrNilMapping is returned when a write operation is given a nil *Mapping.
var ErrNilMapping = errors.New("mapping must not be nil")
