package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-traverse/bag"
	"github.com/0xalexb/hjarta-traverse/tree"

	"github.com/goccy/go-yaml"
	"go.uber.org/multierr"
)

// ErrPathNotFound is returned when the selected path does not exist in the loaded tree.
var ErrPathNotFound = errors.New("path not found")

// ErrNoSources is returned when a tree is loaded without sources or defaults.
var ErrNoSources = errors.New("no sources configured")

// ErrUnsupportedFormat is returned when no parser matches a file extension.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrEmptyName is returned when a tree module is created without a name.
var ErrEmptyName = errors.New("tree name must not be empty")

// ErrMissingKey is returned by Required for every absent key.
var ErrMissingKey = errors.New("missing required key")

// Parser defines an interface for parsing raw data into a tree.
// Keys of the resulting mapping are taken literally; they are never split into paths.
type Parser interface {
	Parse(data []byte) (*tree.Mapping, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Rule checks a loaded tree.
type Rule func(*bag.Bag) error

// Required returns a Rule failing with ErrMissingKey for every key that is not set.
func Required(keys ...any) Rule {
	return func(b *bag.Bag) error {
		var errs error

		for _, key := range keys {
			isSet, err := b.Isset(key)
			if err != nil {
				errs = multierr.Append(errs, err)

				continue
			}

			if !isSet {
				errs = multierr.Append(errs, fmt.Errorf("%w: %v", ErrMissingKey, key))
			}
		}

		return errs
	}
}

// Load reads every source in order and merges them into one tree: later
// sources win over earlier ones, mappings are merged recursively. Defaults,
// when given, lie underneath all sources. With a path, only the tree at that
// path is returned.
func Load(opts ...Option) (*bag.Bag, error) {
	options := newOptions(opts)

	if len(options.Sources) == 0 && options.Defaults == nil {
		return nil, ErrNoSources
	}

	engine, err := tree.NewEngine(tree.WithDelimiter(options.Delimiter))
	if err != nil {
		return nil, fmt.Errorf("configuring engine: %w", err)
	}

	loaded, err := bag.New(tree.NewMapping(), bag.WithEngine(engine))
	if err != nil {
		return nil, fmt.Errorf("creating tree: %w", err)
	}

	if options.Defaults != nil {
		err = loaded.Build(options.Defaults, true)
		if err != nil {
			return nil, fmt.Errorf("applying defaults: %w", err)
		}

		slog.Info("defaults applied", slog.String("path", options.Path))
	}

	for i, open := range options.Sources {
		err = mergeSource(loaded.Mapping(), i, open)
		if err != nil {
			return nil, err
		}
	}

	selected, err := selectPath(loaded, options.Path, engine)
	if err != nil {
		return nil, err
	}

	var errs error
	for _, rule := range options.Rules {
		errs = multierr.Append(errs, rule(selected))
	}

	if errs != nil {
		return nil, fmt.Errorf("validating error: %w", errs)
	}

	return selected, nil
}

// TreeProvider returns a function that reads and parses one source into a tree.
func TreeProvider(path string, opts ...Option) func(Parser, DataFetcher) (*bag.Bag, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*bag.Bag, error) {
		all := append([]Option{WithSource(parser, dataSourcer)}, opts...)

		return Load(append(all, WithPath(path))...)
	}
}

// Provider returns a function that reads and parses data, selects the tree at
// path, decodes it into target, sets defaults, and validates it.
func Provider[T any](target *T, path string, opts ...Option) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		loaded, err := TreeProvider(path, opts...)(parser, dataSourcer)
		if err != nil {
			return nil, err
		}

		err = Decode(loaded, target)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

// Decode fills target from the tree held by b using its yaml struct tags.
func Decode(b *bag.Bag, target any) error {
	if b.All() == nil {
		return nil
	}

	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding tree: %w", err)
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

func mergeSource(root *tree.Mapping, index int, open SourceOpener) error {
	source, err := open()
	if err != nil {
		return fmt.Errorf("opening source %d: %w", index, err)
	}

	name := source.Name
	if name == "" {
		name = fmt.Sprintf("source %d", index)
	}

	data, err := source.Fetcher.Fetch()
	if err != nil {
		return fmt.Errorf("reading data error: %w", err)
	}

	if len(data) == 0 && source.Optional {
		slog.Debug("empty optional source skipped", slog.String("source", name))

		return nil
	}

	parsed, err := source.Parser.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing error in %s: %w", name, err)
	}

	tree.Merge(root, parsed)
	slog.Debug("source loaded", slog.String("source", name), slog.Int("keys", parsed.Len()))

	return nil
}

func selectPath(loaded *bag.Bag, path string, engine *tree.Engine) (*bag.Bag, error) {
	if path == "" {
		return loaded, nil
	}

	value, err := loaded.Get(path, bag.Strict(""))
	if errors.Is(err, tree.ErrUnknownKey) {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}

	if root, ok := value.(*tree.Mapping); ok {
		return bag.Wrap(root.Clone(), bag.WithEngine(engine)), nil
	}

	selected, err := bag.New(value, bag.WithEngine(engine))
	if err != nil {
		return nil, fmt.Errorf("selecting %q: %w", path, err)
	}

	return selected, nil
}
