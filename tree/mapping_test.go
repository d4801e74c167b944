package tree_test

import (
	"encoding/json"
	"testing"

	"github.com/0xalexb/hjarta-traverse/tree"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapping_ZeroValue(t *testing.T) {
	t.Parallel()

	var m tree.Mapping

	assert.Equal(t, 0, m.Len())

	m.Put("a", 1)

	value, ok := m.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 1, value)
}

func TestMapping_NilReadsAsEmpty(t *testing.T) {
	t.Parallel()

	var m *tree.Mapping

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	assert.False(t, m.Delete("a"))
	assert.Nil(t, m.ToMap())

	_, ok := m.Lookup("a")
	assert.False(t, ok)
}

func TestMapping_Order(t *testing.T) {
	t.Parallel()

	m := tree.NewMapping()
	m.Put("z", 1)
	m.Put("a", 2)
	m.Put("m", 3)
	m.Put("z", 4)

	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	require.True(t, m.Delete("a"))
	assert.Equal(t, []string{"z", "m"}, m.Keys())

	var visited []string

	m.Range(func(key string, _ any) bool {
		visited = append(visited, key)

		return true
	})
	assert.Equal(t, []string{"z", "m"}, visited)
}

func TestMapping_RangeStops(t *testing.T) {
	t.Parallel()

	m := tree.FromMap(map[string]any{"a": 1, "b": 2, "c": 3})

	count := 0

	m.Range(func(string, any) bool {
		count++

		return count < 2
	})
	assert.Equal(t, 2, count)
}

func TestMapping_CloneIsDeep(t *testing.T) {
	t.Parallel()

	m := tree.FromMap(map[string]any{"a": map[string]any{"b": 1}})
	clone := m.Clone()

	require.NoError(t, tree.Set(clone, "a.b", 2, true))

	original, err := tree.Get(m, "a.b", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, original)
}

func TestMapping_IsList(t *testing.T) {
	t.Parallel()

	list, ok := tree.AsMapping([]any{"a", "b"})
	require.True(t, ok)
	assert.True(t, list.IsList())

	assert.False(t, tree.NewMapping().IsList())
	assert.False(t, tree.FromMap(map[string]any{"0": 1, "2": 2}).IsList())
	assert.False(t, tree.FromMap(map[string]any{"a": 1}).IsList())
}

func TestFrom_Conversions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		value    any
		expected map[string]any
	}{
		{
			name:     "map",
			value:    map[string]any{"b": 1, "a": map[string]any{"c": 2}},
			expected: map[string]any{"a": map[string]any{"c": 2}, "b": 1},
		},
		{
			name:     "typed map",
			value:    map[string]string{"k": "v"},
			expected: map[string]any{"k": "v"},
		},
		{
			name:     "map slice",
			value:    yaml.MapSlice{{Key: "x", Value: yaml.MapSlice{{Key: "y", Value: 1}}}},
			expected: map[string]any{"x": map[string]any{"y": 1}},
		},
		{
			name:     "typed slice inside map",
			value:    map[string]any{"ports": []int{80, 443}},
			expected: map[string]any{"ports": []any{80, 443}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, ok := tree.AsMapping(tc.value)
			require.True(t, ok)
			assert.Equal(t, tc.expected, m.ToMap())
		})
	}
}

func TestFrom_Leaves(t *testing.T) {
	t.Parallel()

	assert.Nil(t, tree.From(nil))
	assert.Equal(t, "s", tree.From("s"))
	assert.Equal(t, []byte("raw"), tree.From([]byte("raw")))
	assert.Equal(t, map[int]string{1: "a"}, tree.From(map[int]string{1: "a"}))

	_, ok := tree.AsMapping(42)
	assert.False(t, ok)
}

func TestFromMap_SortsKeys(t *testing.T) {
	t.Parallel()

	m := tree.FromMap(map[string]any{"c": 1, "a": 2, "b": 3})
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
}

func TestMapping_MarshalJSON(t *testing.T) {
	t.Parallel()

	m := tree.NewMapping()
	require.NoError(t, tree.Set(m, "name", "app", true))
	require.NoError(t, tree.Set(m, "db.port", 5432, true))
	require.NoError(t, tree.Set(m, "tags", []any{"a", "b"}, true))
	require.NoError(t, tree.Set(m, "empty", nil, true))

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"app","db":{"port":5432},"tags":["a","b"],"empty":null}`, string(data))
	assert.Equal(t, `{"name":"app","db":{"port":5432},"tags":["a","b"],"empty":null}`, string(data))
}

func TestMapping_MarshalJSONError(t *testing.T) {
	t.Parallel()

	m := tree.NewMapping()
	m.Put("bad", make(chan int))

	_, err := json.Marshal(m)
	require.Error(t, err)
}

func TestMapping_MarshalYAML(t *testing.T) {
	t.Parallel()

	m := tree.NewMapping()
	require.NoError(t, tree.Set(m, "name", "app", true))
	require.NoError(t, tree.Set(m, "port", 8080, true))

	data, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "name: app\nport: 8080\n", string(data))
}

func TestMapping_MarshalYAMLKeepsOrder(t *testing.T) {
	t.Parallel()

	m := tree.NewMapping()
	require.NoError(t, tree.Set(m, "zeta.inner", 1, true))
	require.NoError(t, tree.Set(m, "alpha", []any{"x"}, true))

	data, err := yaml.Marshal(m)
	require.NoError(t, err)

	var decoded yaml.MapSlice

	err = yaml.UnmarshalWithOptions(data, &decoded, yaml.UseOrderedMap())
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, "zeta", decoded[0].Key)
	assert.Equal(t, "alpha", decoded[1].Key)
}
