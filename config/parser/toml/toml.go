package toml

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/0xalexb/hjarta-traverse/tree"

	"github.com/pelletier/go-toml/v2"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements config.Parser interface for TOML data.
// TOML tables decode without order, so keys are sorted.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a TOML document into a tree.
func (p *Parser) Parse(data []byte) (*tree.Mapping, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var doc map[string]any

	err := toml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	normalized, _ := normalize(doc).(map[string]any)

	return tree.FromMap(normalized), nil
}

// normalize turns int64 values into int where they fit.
func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, element := range v {
			result[key] = normalize(element)
		}

		return result
	case []any:
		list := make([]any, 0, len(v))
		for _, element := range v {
			list = append(list, normalize(element))
		}

		return list
	case int64:
		if v >= math.MinInt && v <= math.MaxInt {
			return int(v)
		}

		return v
	default:
		return value
	}
}
