// Package jsonns implements JSON-NS, a small subset of JSON-LD that gives
// plain JSON documents namespaced property names.
//
// A document may declare prefixes, aliases, a default namespace, a default
// language and per-property container mappings in inline @context objects.
// A Processor resolves every property name and @type value of the document to
// an absolute IRI, then rewords those IRIs according to its TargetContext:
//
//	input := []byte(`{"@context": {"foo": "http://example.com/ns#"}, "foo:hello": "world"}`)
//
//	p := jsonns.New().AddRule("bar", "http://example.com/ns#")
//	out, err := p.ProcessBytes(input)
//	// out: {"bar:hello":"world"}
//
// Without rules the output carries absolute IRIs ("http://example.com/ns#hello").
// A rule with an empty prefix sets the default namespace of the output, so
// properties in it come out unprefixed, which suits decoding into structs.
//
// Processing is lenient: context entries, names and values that cannot be
// interpreted are dropped from the output rather than failing the document.
// Errors are only returned when raw input cannot be decoded at all.
//
// Trees use the types of package value. Decoding goes through a pluggable
// JSONDriver; importing github.com/reoring/jsonns/source switches it to
// goccy/go-json.
package jsonns
