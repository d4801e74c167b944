package tree

import (
	"fmt"

	"github.com/0xalexb/hjarta-traverse/keypath"
)

//nolint:gochecknoglobals // immutable default, never reassigned.
var defaultEngine = &Engine{normalizer: keypath.Default()}

// Engine walks mappings along paths produced by its Normalizer.
// An Engine holds no tree state and may be shared.
type Engine struct {
	normalizer *keypath.Normalizer
}

// EngineOptions holds configuration for an Engine.
type EngineOptions struct {
	Normalizer *keypath.Normalizer
	Delimiter  string
}

// EngineOption defines a function type for configuring an Engine.
type EngineOption func(*EngineOptions)

// WithNormalizer makes the Engine split keys with normalizer.
func WithNormalizer(normalizer *keypath.Normalizer) EngineOption {
	return func(opts *EngineOptions) {
		opts.Normalizer = normalizer
	}
}

// WithDelimiter makes the Engine split string keys on the given delimiter characters.
// It is ignored when WithNormalizer is also given.
func WithDelimiter(delimiter string) EngineOption {
	return func(opts *EngineOptions) {
		opts.Delimiter = delimiter
	}
}

// NewEngine creates an Engine. Without options it splits keys on ".".
func NewEngine(opts ...EngineOption) (*Engine, error) {
	var options EngineOptions

	for _, apply := range opts {
		apply(&options)
	}

	if options.Normalizer != nil {
		return &Engine{normalizer: options.Normalizer}, nil
	}

	if options.Delimiter == "" {
		return &Engine{normalizer: keypath.Default()}, nil
	}

	normalizer, err := keypath.New(keypath.WithDelimiter(options.Delimiter))
	if err != nil {
		return nil, fmt.Errorf("creating normalizer: %w", err)
	}

	return &Engine{normalizer: normalizer}, nil
}

// DefaultEngine returns the shared "." Engine used by the package-level functions.
func DefaultEngine() *Engine {
	return defaultEngine
}

// Normalizer returns the Normalizer the Engine splits keys with.
func (e *Engine) Normalizer() *keypath.Normalizer {
	return e.normalizer
}

// Get returns the value at key.
//
// When a segment is missing, or its parent is a leaf, def is resolved: a
// Resolver is called with key and m as given, any other value is returned
// as is. An empty path returns m itself.
func (e *Engine) Get(m *Mapping, key any, def any) (any, error) {
	path, err := e.normalizer.Normalize(key)
	if err != nil {
		return nil, err
	}

	value, found := walk(m, path)
	if !found {
		return resolveDefault(def, key, m)
	}

	return value, nil
}

// Isset reports whether a value is stored at key. A stored nil counts as set.
func (e *Engine) Isset(m *Mapping, key any) (bool, error) {
	path, err := e.normalizer.Normalize(key)
	if err != nil {
		return false, err
	}

	_, found := walk(m, path)

	return found, nil
}

// Set stores value at key, creating intermediate mappings as needed.
//
// Mapping-like values replace the existing entry when overwrite is true and
// are merged into it otherwise (see Merge). Leaf values always replace the
// existing entry. Descending through a leaf fails with ErrTypeConflict and
// leaves m unchanged.
func (e *Engine) Set(m *Mapping, key any, value any, overwrite bool) error {
	path, err := e.normalizer.Normalize(key)
	if err != nil {
		return err
	}

	if len(path) == 0 {
		return fmt.Errorf("set: %w", ErrEmptyPath)
	}

	if m == nil {
		return ErrNilMapping
	}

	return set(m, path, From(value), overwrite, path)
}

// Unset removes the value at key. A missing last segment is not an error;
// a missing intermediate segment is ErrMissingIntermediate.
func (e *Engine) Unset(m *Mapping, key any) error {
	path, err := e.normalizer.Normalize(key)
	if err != nil {
		return err
	}

	if len(path) == 0 {
		return fmt.Errorf("unset: %w", ErrEmptyPath)
	}

	return unset(m, path, path)
}

// Append stores value under the next integer key of the mapping at key and
// returns that key. The mapping is created when missing; an empty path appends
// to m itself.
func (e *Engine) Append(m *Mapping, key any, value any) (string, error) {
	path, err := e.normalizer.Normalize(key)
	if err != nil {
		return "", err
	}

	if m == nil {
		return "", ErrNilMapping
	}

	target, err := descend(m, path, path)
	if err != nil {
		return "", err
	}

	index := target.nextIndex()
	target.Put(index, From(value))

	return index, nil
}

// Get calls Get on the default Engine.
func Get(m *Mapping, key any, def any) (any, error) {
	return defaultEngine.Get(m, key, def)
}

// Isset calls Isset on the default Engine.
func Isset(m *Mapping, key any) (bool, error) {
	return defaultEngine.Isset(m, key)
}

// Set calls Set on the default Engine.
func Set(m *Mapping, key any, value any, overwrite bool) error {
	return defaultEngine.Set(m, key, value, overwrite)
}

// Unset calls Unset on the default Engine.
func Unset(m *Mapping, key any) error {
	return defaultEngine.Unset(m, key)
}

// Append calls Append on the default Engine.
func Append(m *Mapping, key any, value any) (string, error) {
	return defaultEngine.Append(m, key, value)
}

func walk(m *Mapping, path keypath.Path) (any, bool) {
	var current any = m

	for _, segment := range path {
		node, ok := current.(*Mapping)
		if !ok {
			return nil, false
		}

		current, ok = node.Lookup(segment)
		if !ok {
			return nil, false
		}
	}

	return current, true
}

func set(m *Mapping, path keypath.Path, value any, overwrite bool, full keypath.Path) error {
	head, tail := path[0], path[1:]

	if len(tail) > 0 {
		child, err := childMapping(m, head, full)
		if err != nil {
			return err
		}

		return set(child, tail, value, overwrite, full)
	}

	incoming, isMapping := value.(*Mapping)
	if !isMapping || overwrite {
		m.Put(head, value)

		return nil
	}

	existing, ok := m.values[head].(*Mapping)
	if !ok {
		existing = NewMapping()
		m.Put(head, existing)
	}

	Merge(existing, incoming)

	return nil
}

func unset(m *Mapping, path keypath.Path, full keypath.Path) error {
	head, tail := path[0], path[1:]

	if len(tail) == 0 {
		m.Delete(head)

		return nil
	}

	value, ok := m.Lookup(head)
	if !ok {
		return fmt.Errorf("%w: %q in %q", ErrMissingIntermediate, head, full.String())
	}

	child, ok := value.(*Mapping)
	if !ok {
		return fmt.Errorf("%w: %q in %q", ErrTypeConflict, head, full.String())
	}

	return unset(child, tail, full)
}

// descend returns the mapping at path, creating missing ones.
func descend(m *Mapping, path keypath.Path, full keypath.Path) (*Mapping, error) {
	current := m

	for _, segment := range path {
		child, err := childMapping(current, segment, full)
		if err != nil {
			return nil, err
		}

		current = child
	}

	return current, nil
}

// childMapping returns the mapping under key, creating it when absent.
func childMapping(m *Mapping, key string, full keypath.Path) (*Mapping, error) {
	value, ok := m.Lookup(key)
	if !ok {
		child := NewMapping()
		m.Put(key, child)

		return child, nil
	}

	child, ok := value.(*Mapping)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %q", ErrTypeConflict, key, full.String())
	}

	return child, nil
}
