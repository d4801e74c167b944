package tree

import (
	"slices"
	"strconv"
)

// Mapping is an ordered, string-keyed node of a tree.
// Values are either nested *Mapping nodes or leaves of any other type, nil included.
// New keys are appended; replacing a key keeps its position.
//
// The zero value is an empty Mapping ready to use. A nil *Mapping reads as empty.
type Mapping struct {
	keys   []string
	values map[string]any
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{}
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns the keys in order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// Lookup returns the value stored under key and whether the key is present.
func (m *Mapping) Lookup(key string) (any, bool) {
	if m == nil {
		return nil, false
	}

	value, ok := m.values[key]

	return value, ok
}

// Put stores value under key as is.
func (m *Mapping) Put(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}

	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Delete removes key and reports whether it was present.
func (m *Mapping) Delete(key string) bool {
	if m == nil {
		return false
	}

	if _, exists := m.values[key]; !exists {
		return false
	}

	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })

	return true
}

// Range calls fn for every key in order until fn returns false.
// fn must not add or remove keys of m.
func (m *Mapping) Range(fn func(key string, value any) bool) {
	if m == nil {
		return
	}

	for _, key := range m.keys {
		if !fn(key, m.values[key]) {
			return
		}
	}
}

// Clone returns a deep copy. Leaves are copied by value; nested mappings are cloned.
func (m *Mapping) Clone() *Mapping {
	if m == nil {
		return nil
	}

	clone := &Mapping{
		keys:   slices.Clone(m.keys),
		values: make(map[string]any, len(m.values)),
	}

	for key, value := range m.values {
		clone.values[key] = cloneValue(value)
	}

	return clone
}

// IsList reports whether the keys are exactly "0".."n-1" in order.
// Empty mappings are not lists.
func (m *Mapping) IsList() bool {
	if m.Len() == 0 {
		return false
	}

	for i, key := range m.keys {
		if key != strconv.Itoa(i) {
			return false
		}
	}

	return true
}

// ToMap converts the tree into plain Go values: list-like mappings become []any,
// other mappings map[string]any.
func (m *Mapping) ToMap() map[string]any {
	if m == nil {
		return nil
	}

	result := make(map[string]any, len(m.keys))

	for _, key := range m.keys {
		result[key] = plainValue(m.values[key])
	}

	return result
}

// nextIndex returns the key following the largest non-negative integer key.
func (m *Mapping) nextIndex() string {
	next := 0

	for _, key := range m.keys {
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 || strconv.Itoa(index) != key {
			continue
		}

		if index >= next {
			next = index + 1
		}
	}

	return strconv.Itoa(next)
}

func cloneValue(value any) any {
	if nested, ok := value.(*Mapping); ok {
		return nested.Clone()
	}

	return value
}

func plainValue(value any) any {
	nested, ok := value.(*Mapping)
	if !ok {
		return value
	}

	if nested.IsList() {
		list := make([]any, 0, nested.Len())
		for _, key := range nested.keys {
			list = append(list, plainValue(nested.values[key]))
		}

		return list
	}

	return nested.ToMap()
}
