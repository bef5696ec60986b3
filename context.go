package jsonns

import (
	"maps"
	"strings"

	"github.com/reoring/jsonns/value"
)

// Context holds the rules a document is interpreted with.
//
// A Processor carries a Context that acts as external context for every
// document it processes. Inline @context declarations extend a copy of it for
// the subtree they appear in.
//
// All tables are keyed by the literal property name as it appears in the
// document.
type Context struct {
	// Vocab is the default namespace for names that are not a keyword, CURIE
	// or absolute IRI. Empty when unset.
	Vocab string
	// Language is the default language for internationalised properties that
	// don't specify one. Empty when unset.
	Language string
	// Prefixes maps CURIE prefixes to their base IRIs.
	Prefixes map[string]string
	// Aliases maps literal property names to the name they stand for.
	Aliases map[string]string
	// Containers maps literal property names to a container mapping keyword.
	// Only @language has defined behavior.
	Containers map[string]string
}

// NewContext returns a context built from an @context declaration. A nil
// declaration yields an empty context.
func NewContext(decl any) *Context {
	c := &Context{}
	c.Merge(decl)
	return c
}

// Clone returns a copy that can be extended without affecting c.
func (c *Context) Clone() *Context {
	if c == nil {
		return &Context{}
	}
	return &Context{
		Vocab:      c.Vocab,
		Language:   c.Language,
		Prefixes:   maps.Clone(c.Prefixes),
		Aliases:    maps.Clone(c.Aliases),
		Containers: maps.Clone(c.Containers),
	}
}

// Reset clears all accumulated state.
func (c *Context) Reset() {
	*c = Context{}
}

// Merge merges an @context value into c. The value may be null (which resets
// the context), an object, or an array of those processed in order. Anything
// else, such as a remote context reference, is ignored.
func (c *Context) Merge(decl any) {
	for item := range oneOrMany(decl) {
		if item == nil {
			c.Reset()
			continue
		}
		if obj, ok := value.AsObject(item); ok {
			c.MergeObject(obj)
		}
	}
}

// MergeObject merges a single @context object into c. Malformed entries are
// skipped.
func (c *Context) MergeObject(obj *value.Object) {
	obj.Range(func(key string, v any) bool {
		if IsKeyword(key) {
			c.mergeKeyword(key, v)
		} else {
			c.mergeTerm(key, v)
		}
		return true
	})
}

func (c *Context) mergeKeyword(key string, v any) {
	switch key {
	case KeywordVocab:
		if s, ok := v.(string); ok && IsAbsoluteIRI(s) {
			c.Vocab = s
		} else if v == nil {
			c.Vocab = ""
		}
	case KeywordLanguage:
		if s, ok := v.(string); ok {
			c.Language = s
		} else if v == nil {
			c.Language = ""
		}
	}
}

func (c *Context) mergeTerm(key string, v any) {
	if v == nil {
		delete(c.Prefixes, key)
		delete(c.Aliases, key)
		delete(c.Containers, key)
		return
	}
	if s, ok := v.(string); ok {
		if IsCURIEPrefix(key) && IsAbsoluteIRI(s) {
			c.Prefixes = put(c.Prefixes, key, s)
		}
		return
	}
	def, ok := value.AsObject(v)
	if !ok {
		return
	}
	if id, ok := def.Get(KeywordID); ok {
		if s, ok := id.(string); ok && !IsKeyword(s) {
			c.Aliases = put(c.Aliases, key, s)
		}
	}
	if container, ok := def.Get(KeywordContainer); ok {
		if s, ok := container.(string); ok {
			c.Containers = put(c.Containers, key, s)
		}
	}
}

// Expand resolves name to an absolute IRI.
//
// A name may be a CURIE with a declared prefix, an absolute IRI in any other
// scheme (returned unchanged), or a term in the default namespace. Keywords
// and terms without a default namespace do not expand.
func (c *Context) Expand(name string) (string, bool) {
	if IsKeyword(name) {
		return "", false
	}
	if prefix, suffix, ok := strings.Cut(name, ":"); ok {
		if base, ok := c.Prefixes[prefix]; ok {
			return base + suffix, true
		}
		return name, true
	}
	if c.Vocab != "" {
		return c.Vocab + name, true
	}
	return "", false
}

// Alias returns the name a literal property name stands for.
func (c *Context) Alias(key string) string {
	if alias, ok := c.Aliases[key]; ok {
		return alias
	}
	return key
}

// Container returns the container mapping for a literal property name.
func (c *Context) Container(key string) string {
	return c.Containers[key]
}

func put(m map[string]string, k, v string) map[string]string {
	if m == nil {
		m = make(map[string]string)
	}
	m[k] = v
	return m
}
