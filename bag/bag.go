package bag

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-traverse/tree"
)

// ErrEmptyValue is returned by Extend when the value at the key is empty.
var ErrEmptyValue = errors.New("value is empty")

// ErrTypeMismatch is returned by Lookup when the stored value has a different type.
var ErrTypeMismatch = errors.New("type mismatch")

// Strict returns a default resolver failing with tree.ErrUnknownKey for a missing key.
func Strict(message string) tree.Resolver {
	return tree.Strict(message)
}

// Bag owns a tree and exposes the traversal operations on it.
//
// A Bag holds either a mapping or a single leaf value (a single-value root).
// It is not safe for concurrent use.
type Bag struct {
	engine *tree.Engine
	items  any
}

// Options holds configuration for a Bag.
type Options struct {
	Engine *tree.Engine
}

// Option defines a function type for configuring a Bag.
type Option func(*Options)

// WithEngine makes the Bag walk its tree with engine.
func WithEngine(engine *tree.Engine) Option {
	return func(opts *Options) {
		opts.Engine = engine
	}
}

// New creates a Bag. Mapping-like data is built into the Bag with overwrite,
// a leaf becomes a single-value root, and nil leaves the Bag empty.
func New(data any, opts ...Option) (*Bag, error) {
	b := &Bag{engine: engineFrom(opts)}

	if data == nil {
		return b, nil
	}

	if _, ok := tree.AsMapping(data); !ok {
		b.items = data

		return b, nil
	}

	err := b.Build(data, true)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// Wrap returns a Bag owning root as is. Unlike New, keys of root are not
// split into paths, so literal keys such as "example.com" or "" survive.
// A nil root gives an empty Bag.
func Wrap(root *tree.Mapping, opts ...Option) *Bag {
	b := &Bag{engine: engineFrom(opts)}

	if root != nil {
		b.items = root
	}

	return b
}

func engineFrom(opts []Option) *tree.Engine {
	options := Options{Engine: tree.DefaultEngine()}

	for _, apply := range opts {
		apply(&options)
	}

	if options.Engine == nil {
		return tree.DefaultEngine()
	}

	return options.Engine
}

// Build sets every top-level pair of data in order. Keys are paths, so a key
// "db.host" nests, and later pairs overwrite or merge over earlier ones.
func (b *Bag) Build(data any, overwrite bool) error {
	pairs, ok := tree.AsMapping(data)
	if !ok {
		return fmt.Errorf("build: %w: %T is not mapping-like", tree.ErrInvalidPath, data)
	}

	root := b.ensureMapping()

	var err error

	pairs.Range(func(key string, value any) bool {
		err = b.engine.Set(root, key, value, overwrite)

		return err == nil
	})

	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	return nil
}

// Get returns the value at key, resolving def when it is missing.
// A nil or empty key returns everything held by the Bag, and a single-value
// root is returned for any key.
func (b *Bag) Get(key any, def any) (any, error) {
	root, isMapping := b.items.(*tree.Mapping)
	if key == nil || !isMapping {
		return b.items, nil
	}

	return b.engine.Get(root, key, def)
}

// Extend returns the value at key wrapped in a new Bag. Empty values
// (nil, false, zero numbers, "", "0" and empty mappings) fail with ErrEmptyValue.
//
// The value goes through New, so its keys are read as paths again: a stored
// key "a.b" comes back as "b" nested under "a". Use Wrap on a mapping taken with Get
// to keep literal keys.
func (b *Bag) Extend(key any, def any) (*Bag, error) {
	value, err := b.Get(key, def)
	if err != nil {
		return nil, err
	}

	if isEmpty(value) {
		return nil, fmt.Errorf("%w at %v", ErrEmptyValue, key)
	}

	return New(value, WithEngine(b.engine))
}

// Set stores value at key, replacing nested mappings wholesale.
func (b *Bag) Set(key any, value any) error {
	return b.set(key, value, true)
}

// Merge stores value at key, merging mapping values into existing ones.
func (b *Bag) Merge(key any, value any) error {
	return b.set(key, value, false)
}

func (b *Bag) set(key any, value any, overwrite bool) error {
	root, err := b.isRootKey(key)
	if err != nil {
		return err
	}

	if root {
		if _, ok := tree.AsMapping(value); ok {
			return b.Build(value, overwrite)
		}

		b.items = value

		return nil
	}

	return b.engine.Set(b.ensureMapping(), key, value, overwrite)
}

// Isset reports whether a value is stored at key.
// For a single-value root it reports whether that value is non-nil.
func (b *Bag) Isset(key any) (bool, error) {
	root, ok := b.items.(*tree.Mapping)
	if !ok {
		return b.items != nil, nil
	}

	return b.engine.Isset(root, key)
}

// Unset removes the value at key. For a single-value root it clears the Bag.
func (b *Bag) Unset(key any) error {
	root, ok := b.items.(*tree.Mapping)
	if !ok {
		b.items = nil

		return nil
	}

	return b.engine.Unset(root, key)
}

// Append adds value to the list-like mapping at key and returns its index key.
func (b *Bag) Append(key any, value any) (string, error) {
	return b.engine.Append(b.ensureMapping(), key, value)
}

// All returns everything held by the Bag: the root mapping, the single value, or nil.
func (b *Bag) All() any {
	return b.items
}

// Mapping returns the root mapping, or nil for a single-value or empty Bag.
func (b *Bag) Mapping() *tree.Mapping {
	root, _ := b.items.(*tree.Mapping)

	return root
}

// MarshalYAML renders what the Bag holds.
func (b *Bag) MarshalYAML() (any, error) {
	if root, ok := b.items.(*tree.Mapping); ok {
		return root.MarshalYAML()
	}

	return b.items, nil
}

// MarshalJSON renders what the Bag holds.
func (b *Bag) MarshalJSON() ([]byte, error) {
	if root, ok := b.items.(*tree.Mapping); ok {
		return root.MarshalJSON()
	}

	return jsonLeaf(b.items)
}

// ensureMapping replaces a single-value root with an empty mapping.
func (b *Bag) ensureMapping() *tree.Mapping {
	root, ok := b.items.(*tree.Mapping)
	if !ok {
		root = tree.NewMapping()
		b.items = root
	}

	return root
}

func (b *Bag) isRootKey(key any) (bool, error) {
	if key == nil {
		return true, nil
	}

	path, err := b.engine.Normalizer().Normalize(key)
	if err != nil {
		return false, err
	}

	return len(path) == 0, nil
}
