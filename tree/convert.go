package tree

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
)

// From converts a Go value into a tree value.
//
// Mapping-like values become *Mapping: yaml.MapSlice keeps its order, Go maps
// with string keys are taken in sorted key order, and slices (other than
// []byte) become list-like mappings keyed "0".."n-1". A *Mapping is deep-copied.
// Everything else is returned unchanged as a leaf.
func From(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case *Mapping:
		if v == nil {
			return nil
		}

		return v.Clone()
	case Mapping:
		return v.Clone()
	case map[string]any:
		return FromMap(v)
	case yaml.MapSlice:
		return fromMapSlice(v)
	case []any:
		return fromList(len(v), func(i int) any { return v[i] })
	case []byte, string, bool, int, int64, float64:
		return value
	}

	return fromReflect(value)
}

// FromMap converts a Go map into a Mapping with keys in sorted order.
func FromMap(values map[string]any) *Mapping {
	m := NewMapping()

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	for _, key := range keys {
		m.Put(key, From(values[key]))
	}

	return m
}

// AsMapping converts value with From and reports whether the result is a Mapping.
func AsMapping(value any) (*Mapping, bool) {
	m, ok := From(value).(*Mapping)

	return m, ok
}

func fromMapSlice(items yaml.MapSlice) *Mapping {
	m := NewMapping()

	for _, item := range items {
		m.Put(fmt.Sprint(item.Key), From(item.Value))
	}

	return m
}

func fromList(length int, at func(int) any) *Mapping {
	m := NewMapping()

	for i := range length {
		m.Put(strconv.Itoa(i), From(at(i)))
	}

	return m
}

// fromReflect handles typed maps and slices such as map[string]string or []int.
func fromReflect(value any) any {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return value
		}

		m := NewMapping()

		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			switch {
			case a.String() < b.String():
				return -1
			case a.String() > b.String():
				return 1
			default:
				return 0
			}
		})

		for _, key := range keys {
			m.Put(key.String(), From(rv.MapIndex(key).Interface()))
		}

		return m
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return value
		}

		return fromList(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	default:
		return value
	}
}
