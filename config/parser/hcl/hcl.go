package hcl

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/big"
	"slices"
	"strconv"

	"github.com/0xalexb/hjarta-traverse/tree"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// DefaultFilename names the source in diagnostics when no filename is set.
const DefaultFilename = "config.hcl"

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrUnsupportedValue is returned for values that have no tree representation.
var ErrUnsupportedValue = errors.New("unsupported value")

// Parser implements config.Parser interface for HCL attribute files
// (name = value pairs, as in .tfvars). Blocks, variables and functions are not supported.
type Parser struct {
	filename string
}

// Option defines a function type for configuring a Parser.
type Option func(*Parser)

// WithFilename sets the filename reported in diagnostics.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// NewParser creates a new HCL parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{filename: DefaultFilename}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse parses HCL attributes into a tree. Top-level attributes keep their
// source order; object keys are sorted.
func (p *Parser) Parse(data []byte) (*tree.Mapping, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	file, diags := hclsyntax.ParseConfig(data, p.filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse error: %w", diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse error: %w", diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}

	slices.SortFunc(ordered, func(a, b *hcl.Attribute) int {
		return a.Range.Start.Byte - b.Range.Start.Byte
	})

	m := tree.NewMapping()

	for _, attr := range ordered {
		value, valueDiags := attr.Expr.Value(nil)
		if valueDiags.HasErrors() {
			return nil, fmt.Errorf("evaluating %q: %w", attr.Name, valueDiags)
		}

		native, err := ctyToTree(value)
		if err != nil {
			return nil, fmt.Errorf("in attribute %q: %w", attr.Name, err)
		}

		m.Put(attr.Name, native)
	}

	return m, nil
}

// ctyToTree converts a cty.Value into tree values. Null and unknown values become nil.
func ctyToTree(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		return number(v.AsBigFloat()), nil

	case ty == cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(v, &b); err != nil {
			return nil, fmt.Errorf("converting bool: %w", err)
		}

		return b, nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		list := tree.NewMapping()
		index := 0

		for it := v.ElementIterator(); it.Next(); {
			_, element := it.Element()

			native, err := ctyToTree(element)
			if err != nil {
				return nil, err
			}

			list.Put(strconv.Itoa(index), native)
			index++
		}

		return list, nil

	case ty.IsObjectType() || ty.IsMapType():
		m := tree.NewMapping()

		for it := v.ElementIterator(); it.Next(); {
			key, element := it.Element()

			native, err := ctyToTree(element)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}

			m.Put(key.AsString(), native)
		}

		return m, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, ty.FriendlyName())
	}
}

// number keeps integral values as int and everything else as float64.
func number(f *big.Float) any {
	if f.IsInt() {
		if i, accuracy := f.Int64(); accuracy == big.Exact && i >= math.MinInt && i <= math.MaxInt {
			return int(i)
		}
	}

	value, _ := f.Float64()

	return value
}
