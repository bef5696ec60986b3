package engine_test

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eng "github.com/reoring/jsonns/internal/engine"
	jsonsrc "github.com/reoring/jsonns/source/json"
	"github.com/reoring/jsonns/value"
)

func TestDecodeValue_Ordered(t *testing.T) {
	v, err := eng.DecodeValue(jsonsrc.NewBytes([]byte(`{"z":1,"a":[true,null,"s"],"m":{}}`)), nil)
	require.NoError(t, err)

	o, ok := v.(*value.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, o.Keys())

	z, _ := o.Get("z")
	assert.Equal(t, json.Number("1"), z)
	a, _ := o.Get("a")
	assert.Equal(t, []any{true, nil, "s"}, a)
}

func TestDecodeValue_Float64(t *testing.T) {
	v, err := eng.DecodeValue(jsonsrc.NewBytes([]byte(`2.5`)), eng.Float64)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
}

func TestDecodeValue_Truncated(t *testing.T) {
	_, err := eng.DecodeValue(jsonsrc.NewBytes([]byte(`[1,`)), nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestEnforcement_DuplicateWarn(t *testing.T) {
	var issues []eng.SimpleIssue
	src := eng.WrapWithEnforcement(jsonsrc.NewBytes([]byte(`{"a":{"x~/y":1,"x~/y":2}}`)), eng.EnforceOptions{
		OnDuplicate: eng.DupWarn,
		IssueSink:   func(si eng.SimpleIssue) { issues = append(issues, si) },
	})
	_, err := eng.DecodeValue(src, nil)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "/a/x~0~1y", issues[0].Path)
	assert.Equal(t, "duplicate_key", issues[0].Code)
}

func TestEnforcement_DuplicateError(t *testing.T) {
	src := eng.WrapWithEnforcement(jsonsrc.NewBytes([]byte(`{"a":1,"a":2}`)), eng.EnforceOptions{OnDuplicate: eng.DupError})
	_, err := eng.DecodeValue(src, nil)

	var ie eng.IssueError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "/a", ie.Path)
}

func TestEnforcement_SameKeyInSiblingsIsFine(t *testing.T) {
	src := eng.WrapWithEnforcement(jsonsrc.NewBytes([]byte(`[{"a":1},{"a":2}]`)), eng.EnforceOptions{OnDuplicate: eng.DupError})
	_, err := eng.DecodeValue(src, nil)
	require.NoError(t, err)
}

func TestEnforcement_MaxBytes(t *testing.T) {
	src := eng.WrapWithEnforcement(jsonsrc.NewBytes([]byte(`["aaaaaaaaaa","bbbbbbbbbb"]`)), eng.EnforceOptions{MaxBytes: 10})
	_, err := eng.DecodeValue(src, nil)

	var ie eng.IssueError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "truncated", ie.Code)
}

func TestEnforceOptions_Disabled(t *testing.T) {
	assert.True(t, eng.EnforceOptions{}.Disabled())
	assert.False(t, eng.EnforceOptions{MaxDepth: 1}.Disabled())
}
