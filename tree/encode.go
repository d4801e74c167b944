package tree

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MarshalYAML renders the mapping as an ordered YAML mapping, or as a sequence
// when it is list-like.
func (m *Mapping) MarshalYAML() (any, error) {
	return yamlValue(m), nil
}

func yamlValue(value any) any {
	nested, ok := value.(*Mapping)
	if !ok {
		return value
	}

	if nested == nil {
		return nil
	}

	if nested.IsList() {
		list := make([]any, 0, nested.Len())
		for _, key := range nested.keys {
			list = append(list, yamlValue(nested.values[key]))
		}

		return list
	}

	items := make(yaml.MapSlice, 0, nested.Len())
	for _, key := range nested.keys {
		items = append(items, yaml.MapItem{Key: key, Value: yamlValue(nested.values[key])})
	}

	return items
}

// MarshalJSON renders the mapping as a JSON object in key order, or as an
// array when it is list-like.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	err := writeJSON(&buf, m)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, value any) error {
	nested, ok := value.(*Mapping)
	if !ok {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding %T: %w", value, err)
		}

		buf.Write(data)

		return nil
	}

	if nested == nil {
		buf.WriteString("null")

		return nil
	}

	if nested.IsList() {
		buf.WriteByte('[')

		for i, key := range nested.keys {
			if i > 0 {
				buf.WriteByte(',')
			}

			err := writeJSON(buf, nested.values[key])
			if err != nil {
				return err
			}
		}

		buf.WriteByte(']')

		return nil
	}

	buf.WriteByte('{')

	for i, key := range nested.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(key)
		if err != nil {
			return fmt.Errorf("encoding key %q: %w", key, err)
		}

		buf.Write(name)
		buf.WriteByte(':')

		err = writeJSON(buf, nested.values[key])
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
	}

	buf.WriteByte('}')

	return nil
}
