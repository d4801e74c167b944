package bag

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/0xalexb/hjarta-traverse/tree"
)

// Lookup returns the value at key as T. A missing key fails with
// tree.ErrUnknownKey, also on an empty Bag, and a value of another type with
// ErrTypeMismatch. A single-value root is returned for any key, as with Get.
func Lookup[T any](b *Bag, key any) (T, error) {
	var zero T

	isSet, err := b.Isset(key)
	if err != nil {
		return zero, err
	}

	if !isSet {
		_, err = Strict("")(key, b.Mapping())

		return zero, err
	}

	value, err := b.Get(key, Strict(""))
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w at %v: have %T, want %T", ErrTypeMismatch, key, value, zero)
	}

	return typed, nil
}

// LookupOr returns the value at key as T, or def when the key is missing.
func LookupOr[T any](b *Bag, key any, def T) (T, error) {
	isSet, err := b.Isset(key)
	if err != nil {
		return def, err
	}

	if !isSet {
		return def, nil
	}

	return Lookup[T](b, key)
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == "" || v == "0"
	case *tree.Mapping:
		return v.Len() == 0
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	default:
		return false
	}
}

func jsonLeaf(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", value, err)
	}

	return data, nil
}
