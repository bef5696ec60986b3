package jsonns_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/jsonns"
	"github.com/reoring/jsonns/i18n"
	"github.com/reoring/jsonns/value"
)

func TestDecode_DuplicateKey_Error(t *testing.T) {
	opt := jsonns.ParseOpt{Strictness: jsonns.Strictness{OnDuplicateKey: jsonns.Error}}
	_, err := jsonns.Decode(jsonns.JSONBytes([]byte(`[{"a":1,"a":2}]`)), opt)
	require.Error(t, err)

	iss, ok := jsonns.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, jsonns.CodeDuplicateKey, iss[0].Code)
	assert.Equal(t, "/0/a", iss[0].Path)
}

func TestDecode_DuplicateKey_WarnLastWins(t *testing.T) {
	var got []jsonns.Issue
	opt := jsonns.ParseOpt{Strictness: jsonns.Strictness{OnDuplicateKey: jsonns.Warn}}
	v, err := jsonns.DecodeWithIssues(jsonns.JSONBytes([]byte(`{"a":1,"b":{"c":1,"c":2},"a":3}`)), opt, func(is jsonns.Issue) {
		got = append(got, is)
	})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "/b/c", got[0].Path)
	assert.Equal(t, "/a", got[1].Path)

	o := v.(*value.Object)
	assert.Equal(t, []string{"a", "b"}, o.Keys())
	assert.True(t, value.Equal(v, map[string]any{"a": 3.0, "b": map[string]any{"c": 2.0}}))
}

func TestDecode_DuplicateKey_IgnoredByDefault(t *testing.T) {
	v, err := jsonns.Decode(jsonns.JSONBytes([]byte(`{"a":1,"a":2}`)))
	require.NoError(t, err)
	assert.True(t, value.Equal(v, map[string]any{"a": 2.0}))
}

func TestDecode_MaxDepth(t *testing.T) {
	opt := jsonns.ParseOpt{MaxDepth: 2}
	_, err := jsonns.Decode(jsonns.JSONBytes([]byte(`{"a":{"b":1}}`)), opt)
	require.NoError(t, err)

	_, err = jsonns.Decode(jsonns.JSONBytes([]byte(`{"a":{"b":[1]}}`)), opt)
	iss, ok := jsonns.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, jsonns.CodeParseError, iss[0].Code)
	assert.Equal(t, "/a/b", iss[0].Path)
}

func TestDecodeReader_MaxBytes(t *testing.T) {
	opt := jsonns.ParseOpt{MaxBytes: 8}
	_, err := jsonns.DecodeReader(strings.NewReader(`{"a":"long value"}`), opt)
	iss, ok := jsonns.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, jsonns.CodeTruncated, iss[0].Code)

	_, err = jsonns.DecodeReader(strings.NewReader(`{"a":1}`), opt)
	require.NoError(t, err)
}

func TestDecode_Float64Mode(t *testing.T) {
	v, err := jsonns.Decode(jsonns.JSONBytes([]byte(`[1.5]`)), jsonns.ParseOpt{Numbers: jsonns.NumberFloat64})
	require.NoError(t, err)
	assert.Equal(t, []any{1.5}, v)
}

func TestDecode_Errors(t *testing.T) {
	for name, in := range map[string]string{
		"empty":     ``,
		"truncated": `{"a": [1, 2`,
		"trailing":  `{} {}`,
		"garbage":   `{"a" 1}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := jsonns.Decode(jsonns.JSONBytes([]byte(in)))
			iss, ok := jsonns.AsIssues(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, jsonns.CodeParseError, iss[0].Code)
			assert.NotEmpty(t, iss.Error())
		})
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := jsonns.Issues{
		{Path: "/a", Code: jsonns.CodeDuplicateKey},
		{Path: "/b", Code: jsonns.CodeDuplicateKey},
		{Path: "/c", Code: jsonns.CodeDuplicateKey},
		{Path: "/d", Code: jsonns.CodeParseError},
	}
	s := iss.Error()
	assert.Contains(t, s, "duplicate_key at /a: duplicate key")
	assert.Contains(t, s, "(total 4)")
	assert.NotContains(t, s, "/d")
}

func TestIssue_Text(t *testing.T) {
	t.Cleanup(func() { i18n.SetLanguage("en") })

	assert.Equal(t, "boom", jsonns.Issue{Code: jsonns.CodeParseError, Message: "boom"}.Text())
	assert.Equal(t, "input exceeds the size limit", jsonns.Issue{Code: jsonns.CodeTruncated}.Text())

	i18n.SetLanguage("ja")
	assert.Equal(t, "解析エラー", jsonns.Issue{Code: jsonns.CodeParseError}.Text())
}

func TestJSONDriver_Swap(t *testing.T) {
	t.Cleanup(jsonns.UseDefaultJSONDriver)
	assert.Equal(t, "encoding/json", jsonns.CurrentJSONDriver().Name())

	jsonns.SetJSONDriver(nil)
	assert.Equal(t, "encoding/json", jsonns.CurrentJSONDriver().Name())
}
