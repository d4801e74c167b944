package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/0xalexb/hjarta-traverse/config/fetcher/file"
	hclparser "github.com/0xalexb/hjarta-traverse/config/parser/hcl"
	jsonparser "github.com/0xalexb/hjarta-traverse/config/parser/json"
	tomlparser "github.com/0xalexb/hjarta-traverse/config/parser/toml"
	yamlparser "github.com/0xalexb/hjarta-traverse/config/parser/yaml"
)

// Source pairs a fetcher with the parser for its data.
// Empty data from an Optional source is skipped instead of parsed.
type Source struct {
	Name     string
	Parser   Parser
	Fetcher  DataFetcher
	Optional bool
}

// SourceOpener creates a Source when the tree is loaded.
type SourceOpener func() (Source, error)

// Options holds configuration for loading a tree.
type Options struct {
	Sources   []SourceOpener
	Defaults  any
	Rules     []Rule
	Path      string
	Delimiter string
}

// Option defines a function type for applying load options.
type Option func(*Options)

func newOptions(opts []Option) Options {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return options
}

// WithSource adds a source read with fetcher and parsed with parser.
func WithSource(parser Parser, fetcher DataFetcher) Option {
	return func(opts *Options) {
		opts.Sources = append(opts.Sources, func() (Source, error) {
			return Source{Parser: parser, Fetcher: fetcher}, nil
		})
	}
}

// WithFile adds a file source. The parser is chosen by the file extension
// and the file is read when the tree is loaded.
func WithFile(path string) Option {
	return withFile(path, false)
}

// WithOptionalFile adds a file source that is skipped when the file does not exist or is empty.
func WithOptionalFile(path string) Option {
	return withFile(path, true)
}

func withFile(path string, optional bool) Option {
	return func(opts *Options) {
		opts.Sources = append(opts.Sources, func() (Source, error) {
			parser, err := ParserFor(path)
			if err != nil {
				return Source{}, err
			}

			var fetcherOpts []file.Option
			if optional {
				fetcherOpts = append(fetcherOpts, file.Optional())
			}

			fetcher, err := file.NewFetcher(path, fetcherOpts...)()
			if err != nil {
				return Source{}, err
			}

			return Source{Name: fetcher.Path(), Parser: parser, Fetcher: fetcher, Optional: optional}, nil
		})
	}
}

// WithDefaults sets data lying underneath all sources.
// Its keys are paths, so {"db.port": 5432} nests.
func WithDefaults(data any) Option {
	return func(opts *Options) {
		opts.Defaults = data
	}
}

// WithRules adds rules checked against the selected tree.
func WithRules(rules ...Rule) Option {
	return func(opts *Options) {
		opts.Rules = append(opts.Rules, rules...)
	}
}

// WithPath selects the tree at path instead of the whole document.
func WithPath(path string) Option {
	return func(opts *Options) {
		opts.Path = path
	}
}

// WithDelimiter sets the delimiter characters used for paths and default keys.
func WithDelimiter(delimiter string) Option {
	return func(opts *Options) {
		opts.Delimiter = delimiter
	}
}

// ParserFor returns the parser for a file name based on its extension.
//
//nolint:ireturn // callers only need the Parser behaviour.
func ParserFor(path string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlparser.NewParser(), nil
	case ".json":
		return jsonparser.NewParser(), nil
	case ".toml":
		return tomlparser.NewParser(), nil
	case ".hcl", ".tfvars":
		return hclparser.NewParser(hclparser.WithFilename(filepath.Base(path))), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}
