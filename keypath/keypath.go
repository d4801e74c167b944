package keypath

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// DefaultDelimiter is the delimiter used by Default.
const DefaultDelimiter = "."

// ErrInvalidPath is returned when a key cannot be turned into a path.
var ErrInvalidPath = errors.New("invalid path")

// ErrEmptyDelimiter is returned when a Normalizer is configured with an empty delimiter.
var ErrEmptyDelimiter = errors.New("delimiter must not be empty")

//nolint:gochecknoglobals // immutable default, never reassigned.
var defaultNormalizer = &Normalizer{delimiters: DefaultDelimiter}

// Path is an ordered sequence of segments addressing a location in a tree.
type Path []string

// String joins the segments with the default delimiter.
func (p Path) String() string {
	return strings.Join(p, DefaultDelimiter)
}

// Normalizer converts keys into paths.
// Every character of its delimiter separates segments.
type Normalizer struct {
	delimiters string
}

// Options holds configuration for a Normalizer.
type Options struct {
	Delimiter string
}

// Option defines a function type for configuring a Normalizer.
type Option func(*Options)

// WithDelimiter sets the delimiter characters. "." is used when not set.
// A multi-character value is a set: ".:" splits on both dots and colons.
func WithDelimiter(delimiter string) Option {
	return func(opts *Options) {
		opts.Delimiter = delimiter
	}
}

// New creates a Normalizer. The delimiter is fixed for the lifetime of the Normalizer.
func New(opts ...Option) (*Normalizer, error) {
	options := Options{Delimiter: DefaultDelimiter}

	for _, apply := range opts {
		apply(&options)
	}

	if options.Delimiter == "" {
		return nil, ErrEmptyDelimiter
	}

	return &Normalizer{delimiters: options.Delimiter}, nil
}

// Default returns the shared "." Normalizer.
func Default() *Normalizer {
	return defaultNormalizer
}

// Normalize converts key with the default Normalizer.
func Normalize(key any) (Path, error) {
	return defaultNormalizer.Normalize(key)
}

// Delimiter returns the delimiter characters.
func (n *Normalizer) Delimiter() string {
	return n.delimiters
}

// Normalize converts key into a Path.
//
// Strings are split on runs of delimiter characters and empty segments are
// dropped, so "a..b." becomes [a b]. Sequences (slices and arrays of any
// element type) keep their elements as they are; elements must be scalars.
// A single non-string scalar becomes a one-segment path.
func (n *Normalizer) Normalize(key any) (Path, error) {
	switch k := key.(type) {
	case string:
		return n.split(k), nil
	case Path:
		return append(Path{}, k...), nil
	case []string:
		return append(Path{}, k...), nil
	case []any:
		return fromSequence(k)
	}

	segment, ok := scalarSegment(key)
	if ok {
		return Path{segment}, nil
	}

	rv := reflect.ValueOf(key)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		elements := make([]any, rv.Len())
		for i := range elements {
			elements[i] = rv.Index(i).Interface()
		}

		return fromSequence(elements)
	}

	return nil, fmt.Errorf("%w: unsupported key type %T", ErrInvalidPath, key)
}

func (n *Normalizer) split(key string) Path {
	fields := strings.FieldsFunc(key, func(r rune) bool {
		return strings.ContainsRune(n.delimiters, r)
	})

	return Path(fields)
}

func fromSequence(key []any) (Path, error) {
	path := make(Path, 0, len(key))

	for i, element := range key {
		segment, ok := scalarSegment(element)
		if !ok {
			return nil, fmt.Errorf(
				"%w: multi-dimensional path segments are not supported (element %d is %T)",
				ErrInvalidPath, i, element,
			)
		}

		path = append(path, segment)
	}

	return path, nil
}

// scalarSegment renders a scalar as a segment. Composite values and nil are rejected.
func scalarSegment(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		if v {
			return "1", true
		}

		return "0", true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}
