package jsonns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/jsonns"
)

func TestTargetContext_Compact(t *testing.T) {
	var target jsonns.TargetContext
	target.AddRule("ex", "http://example.com/ns#").AddRule("", "http://schema.org/")

	assert.Equal(t, "ex:hello", target.Compact("http://example.com/ns#hello"))
	assert.Equal(t, "name", target.Compact("http://schema.org/name"))
	assert.Equal(t, "http://other/x", target.Compact("http://other/x"))
	assert.Equal(t, "ex:", target.Compact("http://example.com/ns#"))
}

func TestTargetContext_FirstMatchWins(t *testing.T) {
	var target jsonns.TargetContext
	target.AddRule("short", "http://example.com/").AddRule("long", "http://example.com/ns#")

	assert.Equal(t, "short:ns#a", target.Compact("http://example.com/ns#a"))
}

func TestTargetContext_EmptyIsIdentity(t *testing.T) {
	var target jsonns.TargetContext
	for _, iri := range []string{"http://example.com/ns#a", "urn:x", ""} {
		assert.Equal(t, iri, target.Compact(iri))
	}
}

func TestParseTargetRules(t *testing.T) {
	target, err := jsonns.ParseTargetRules("ex: http://example.com/ns#\n: http://schema.org/\n")
	require.NoError(t, err)
	assert.Equal(t, []jsonns.Rule{
		{Prefix: "ex", Base: "http://example.com/ns#"},
		{Prefix: "", Base: "http://schema.org/"},
	}, target.Rules)

	target, err = jsonns.ParseTargetRules("  -\n")
	require.NoError(t, err)
	assert.Empty(t, target.Rules)

	_, err = jsonns.ParseTargetRules("ex http://example.com/")
	require.ErrorIs(t, err, jsonns.ErrInvalidRule)
}

func TestTargetContext_StringRoundTrips(t *testing.T) {
	in := "a: http://a/\n: http://b/"
	target, err := jsonns.ParseTargetRules(in)
	require.NoError(t, err)
	assert.Equal(t, in, target.String())
	assert.Equal(t, "-", jsonns.TargetContext{}.String())
}
