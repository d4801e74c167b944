package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/0xalexb/hjarta-traverse/tree"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrNotMapping is returned when the document root is neither a mapping nor a sequence.
var ErrNotMapping = errors.New("document root is not a mapping")

// Parser implements config.Parser interface for YAML data.
// Mappings keep the order of the document.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a YAML document into a tree. A document without content
// gives an empty mapping.
func (p *Parser) Parse(data []byte) (*tree.Mapping, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var doc any

	err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if doc == nil {
		return tree.NewMapping(), nil
	}

	m, ok := tree.AsMapping(normalize(doc))
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, doc)
	}

	return m, nil
}

// normalize turns decoded integers into int where they fit.
func normalize(value any) any {
	switch v := value.(type) {
	case yaml.MapSlice:
		items := make(yaml.MapSlice, 0, len(v))
		for _, item := range v {
			items = append(items, yaml.MapItem{Key: normalizeKey(item.Key), Value: normalize(item.Value)})
		}

		return items
	case []any:
		list := make([]any, 0, len(v))
		for _, element := range v {
			list = append(list, normalize(element))
		}

		return list
	case uint64:
		if v <= math.MaxInt {
			return int(v)
		}

		return v
	case int64:
		if v >= math.MinInt && v <= math.MaxInt {
			return int(v)
		}

		return v
	default:
		return value
	}
}

func normalizeKey(key any) any {
	if key == nil {
		return ""
	}

	return key
}
