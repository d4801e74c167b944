package json

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/0xalexb/hjarta-traverse/tree"

	"github.com/tidwall/gjson"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrInvalidJSON is returned when the input is not valid JSON.
var ErrInvalidJSON = errors.New("invalid json")

// ErrNotMapping is returned when the document root is neither an object nor an array.
var ErrNotMapping = errors.New("document root is not an object")

// Parser implements config.Parser interface for JSON data.
// Objects keep the order of the document.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a JSON document into a tree.
func (p *Parser) Parse(data []byte) (*tree.Mapping, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	result := gjson.ParseBytes(data)
	if !result.IsObject() && !result.IsArray() {
		return nil, ErrNotMapping
	}

	m, _ := convert(result).(*tree.Mapping)

	return m, nil
}

func convert(result gjson.Result) any {
	switch {
	case result.IsObject():
		m := tree.NewMapping()

		result.ForEach(func(key, value gjson.Result) bool {
			m.Put(key.String(), convert(value))

			return true
		})

		return m
	case result.IsArray():
		m := tree.NewMapping()
		index := 0

		result.ForEach(func(_, value gjson.Result) bool {
			m.Put(strconv.Itoa(index), convert(value))
			index++

			return true
		})

		return m
	}

	switch result.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		return number(result)
	case gjson.String:
		return result.Str
	default:
		return nil
	}
}

// number keeps integral literals as int and everything else as float64.
func number(result gjson.Result) any {
	i, err := strconv.ParseInt(result.Raw, 10, strconv.IntSize)
	if err == nil {
		return int(i)
	}

	return result.Num
}
