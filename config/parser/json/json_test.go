package json

import (
	"testing"

	"github.com/0xalexb/hjarta-traverse/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_Document(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`{
  "name": "test-app",
  "port": 8080,
  "ratio": 0.25,
  "big": 1e3,
  "debug": true,
  "off": false,
  "none": null,
  "tags": ["a", "b"],
  "db": {"host": "localhost"}
}`)

	m, err := parser.Parse(data)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"name":  "test-app",
		"port":  8080,
		"ratio": 0.25,
		"big":   1000.0,
		"debug": true,
		"off":   false,
		"none":  nil,
		"tags":  []any{"a", "b"},
		"db":    map[string]any{"host": "localhost"},
	}, m.ToMap())
}

func TestParser_Parse_KeepsDocumentOrder(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	m, err := parser.Parse([]byte(`{"z": 1, "a": {"y": 1, "b": 2}, "m": 3}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	nested, err := tree.Get(m, "a", nil)
	require.NoError(t, err)

	nestedMapping, ok := nested.(*tree.Mapping)
	require.True(t, ok)
	assert.Equal(t, []string{"y", "b"}, nestedMapping.Keys())
}

func TestParser_Parse_RootArray(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	m, err := parser.Parse([]byte(`[{"host": "a"}, {"host": "b"}]`))
	require.NoError(t, err)

	host, err := tree.Get(m, "1.host", nil)
	require.NoError(t, err)
	assert.Equal(t, "b", host)
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty", nil, ErrEmptyData},
		{"whitespace", []byte("  \n"), ErrEmptyData},
		{"invalid", []byte(`{"a": `), ErrInvalidJSON},
		{"scalar root", []byte(`"text"`), ErrNotMapping},
		{"number root", []byte(`42`), ErrNotMapping},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, err := NewParser().Parse(tc.data)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, m)
		})
	}
}
