package libcsd_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	libcsd "github.com/bellrise/libcsd"
)

func TestListJSON(t *testing.T) {
	data, err := json.Marshal(libcsd.NewList(1, 2, 3))
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2, 3]`, string(data))

	l := libcsd.NewList(9)
	require.NoError(t, json.Unmarshal([]byte(`[4, 5]`), l))
	assert.Equal(t, []int{4, 5}, l.Slice())

	assert.Error(t, json.Unmarshal([]byte(`{"a": 1}`), l))
}

func TestListYAML(t *testing.T) {
	data, err := yaml.Marshal(libcsd.NewList("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, "- a\n- b\n", string(data))

	var l libcsd.List[string]
	require.NoError(t, yaml.Unmarshal([]byte("- x\n- y\n- z\n"), &l))
	assert.Equal(t, []string{"x", "y", "z"}, l.Slice())
}

func TestMapYAMLKeepsOrder(t *testing.T) {
	m := libcsd.NewMap[string, int]().Append("z", 1).Append("a", 2).Append("m", 3)
	data, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "z: 1\na: 2\nm: 3\n", string(data))

	var back libcsd.Map[string, int]
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, []string{"z", "a", "m"}, back.Keys().Slice())
	assert.True(t, back.Equal(m))
}

func TestMapYAMLRejectsSequence(t *testing.T) {
	var m libcsd.Map[string, int]
	assert.Error(t, yaml.Unmarshal([]byte("- 1\n- 2\n"), &m))
}

func TestMapYAMLNested(t *testing.T) {
	type doc struct {
		Name   string                       `yaml:"name"`
		Fields *libcsd.Map[string, string] `yaml:"fields"`
	}
	src := "name: probe\nfields:\n    b: two\n    a: one\n"
	var d doc
	require.NoError(t, yaml.Unmarshal([]byte(src), &d))
	require.NotNil(t, d.Fields)
	assert.Equal(t, []string{"b", "a"}, d.Fields.Keys().Slice())

	out, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestMapJSON(t *testing.T) {
	m := libcsd.NewMap[int, string]().Append(2, "b").Append(1, "a")
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key": 2, "value": "b"}, {"key": 1, "value": "a"}]`, string(data))

	back := libcsd.NewMap[int, string]()
	require.NoError(t, json.Unmarshal(data, back))
	assert.True(t, back.Equal(m))

	require.NoError(t, json.Unmarshal([]byte(`[{"key": 1, "value": "x"}, {"key": 1, "value": "y"}]`), back))
	assert.Equal(t, 1, back.Len())
	assert.Equal(t, "y", mustGet(t, back, 1))
}

func TestMaybeJSON(t *testing.T) {
	type wrapper struct {
		M libcsd.Maybe[int] `json:"m"`
	}
	data, err := json.Marshal(wrapper{M: libcsd.Some(3)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"m": 3}`, string(data))

	data, err = json.Marshal(wrapper{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"m": null}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"m": 8}`), &w))
	v, ok := w.M.Peek()
	assert.True(t, ok)
	assert.Equal(t, 8, v)

	require.NoError(t, json.Unmarshal([]byte(`{"m": null}`), &w))
	assert.False(t, w.M.IsOK())
}

func TestMaybeYAML(t *testing.T) {
	type holder struct {
		Opt libcsd.Maybe[int] `yaml:"opt"`
	}
	tests := []struct {
		name string
		in   libcsd.Maybe[int]
		want string
	}{
		{"some", libcsd.Some(5), "opt: 5\n"},
		{"none", libcsd.None[int](), "opt: null\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := yaml.Marshal(holder{Opt: tt.in})
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))

			var h holder
			require.NoError(t, yaml.Unmarshal(data, &h))
			assert.Equal(t, tt.in.IsOK(), h.Opt.IsOK())
			got, _ := h.Opt.Peek()
			want, _ := tt.in.Peek()
			assert.Equal(t, want, got)
		})
	}

	var h holder
	err := yaml.Unmarshal([]byte("opt: [1, 2]\n"), &h)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maybe:")
}
