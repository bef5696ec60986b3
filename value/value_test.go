package value_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/jsonns/value"
)

func TestObject_SetKeepsPosition(t *testing.T) {
	o := value.NewObject(0)
	o.Set("b", 1)
	o.Set("a", 2)
	o.Set("b", 3)

	assert.Equal(t, []string{"b", "a"}, o.Keys())
	v, ok := o.Get("b")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestObject_Delete(t *testing.T) {
	o := value.ObjectOf(
		value.Member{Key: "x", Value: 1},
		value.Member{Key: "y", Value: 2},
		value.Member{Key: "z", Value: 3},
	)
	o.Delete("y")
	o.Delete("missing")

	assert.Equal(t, []string{"x", "z"}, o.Keys())
	v, ok := o.Get("z")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = o.Get("y")
	assert.False(t, ok)
}

func TestObject_ZeroValue(t *testing.T) {
	var o value.Object
	assert.Equal(t, 0, o.Len())
	o.Set("k", "v")
	assert.Equal(t, 1, o.Len())
}

func TestAsObject_SortsPlainMaps(t *testing.T) {
	o, ok := value.AsObject(map[string]any{"c": 1, "a": 2, "b": 3})
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, o.Keys())

	_, ok = value.AsObject("nope")
	assert.False(t, ok)
	_, ok = value.AsObject((*value.Object)(nil))
	assert.False(t, ok)
}

func TestMarshalJSON_PreservesOrder(t *testing.T) {
	o := value.ObjectOf(
		value.Member{Key: "z", Value: "last"},
		value.Member{Key: "a", Value: []any{json.Number("1"), true, nil}},
		value.Member{Key: "m", Value: value.ObjectOf(value.Member{Key: "k", Value: "v"})},
	)
	b, err := value.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"last","a":[1,true,null],"m":{"k":"v"}}`, string(b))
}

func TestEqual(t *testing.T) {
	a := value.ObjectOf(
		value.Member{Key: "a", Value: json.Number("1.0")},
		value.Member{Key: "b", Value: []any{"x"}},
	)
	b := map[string]any{"b": []any{"x"}, "a": float64(1)}
	assert.True(t, value.Equal(a, b))

	assert.False(t, value.Equal(a, map[string]any{"a": float64(1)}))
	assert.False(t, value.Equal([]any{"x"}, []any{"y"}))
	assert.False(t, value.Equal("1", json.Number("1")))
	assert.True(t, value.Equal(nil, nil))
	assert.False(t, value.Equal(nil, false))
}

func TestClone_IsDeep(t *testing.T) {
	inner := value.ObjectOf(value.Member{Key: "k", Value: "v"})
	orig := value.ObjectOf(value.Member{Key: "inner", Value: inner})

	cp, ok := value.Clone(orig).(*value.Object)
	require.True(t, ok)
	inner.Set("k", "changed")

	got, _ := cp.Get("inner")
	v, _ := got.(*value.Object).Get("k")
	assert.Equal(t, "v", v)
}
