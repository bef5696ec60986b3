package gojson_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/jsonns"
	"github.com/reoring/jsonns/source/gojson"
	"github.com/reoring/jsonns/value"
)

func TestDriver_DecodesOrderedTree(t *testing.T) {
	d := gojson.Driver()
	assert.Equal(t, "go-json", d.Name())

	v, err := jsonns.Decode(d.NewBytes([]byte(`{"b":[1,{"c":null}],"a":"x","t":true}`)))
	require.NoError(t, err)

	o := v.(*value.Object)
	assert.Equal(t, []string{"b", "a", "t"}, o.Keys())
	b, _ := o.Get("b")
	arr := b.([]any)
	assert.Equal(t, json.Number("1"), arr[0])
	assert.True(t, value.Equal(arr[1], map[string]any{"c": nil}))
}

func TestDriver_Process(t *testing.T) {
	in := []byte(`{"@context":{"foo":"http://example.com/ns#"},"foo:hello":"world"}`)
	out, err := jsonns.New().AddRule("bar", "http://example.com/ns#").ProcessSource(gojson.Driver().NewBytes(in))
	require.NoError(t, err)
	assert.True(t, value.Equal(out, map[string]any{"bar:hello": "world"}))
}

func TestDriver_SyntaxError(t *testing.T) {
	_, err := jsonns.Decode(gojson.NewBytes([]byte(`{"a" 1}`)))
	_, ok := jsonns.AsIssues(err)
	assert.True(t, ok)
}
