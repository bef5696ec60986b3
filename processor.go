package jsonns

import (
	"io"
	"log/slog"

	"github.com/reoring/jsonns/value"
)

// Processor rewrites documents from their own namespaces into the target
// context.
//
// The zero value is ready to use: no external context, and an output that
// contains only absolute IRIs. A Processor is not modified while processing,
// so one instance may serve concurrent calls as long as nobody changes its
// fields meanwhile.
//
// Output should not itself be treated as a JSON-NS document; processing it a
// second time may give unexpected results.
type Processor struct {
	// Context is the external context documents are interpreted with, before
	// any inline @context.
	Context Context
	// Target is the context the output is reworded to.
	Target TargetContext
	// Logger, when set, receives debug records for every dropped property or
	// type. It never affects output.
	Logger *slog.Logger
}

// New returns a Processor with empty contexts.
func New() *Processor {
	return &Processor{}
}

// AddRule appends a rule to the target context.
func (p *Processor) AddRule(prefix, base string) *Processor {
	p.Target.AddRule(prefix, base)
	return p
}

// ProcessValue processes any tree value using the configured contexts.
func (p *Processor) ProcessValue(v any) any {
	return p.processValue(v, &p.Context)
}

// ProcessObject processes an object using the configured contexts.
func (p *Processor) ProcessObject(obj *value.Object) *value.Object {
	return p.processObject(obj, &p.Context)
}

// ProcessSource decodes a document from src and processes it. Errors only
// report input that could not be decoded.
func (p *Processor) ProcessSource(src Source, opts ...ParseOpt) (any, error) {
	v, err := Decode(src, opts...)
	if err != nil {
		return nil, err
	}
	return p.ProcessValue(v), nil
}

// ProcessBytes decodes, processes and re-encodes a JSON document.
func (p *Processor) ProcessBytes(data []byte, opts ...ParseOpt) ([]byte, error) {
	v, err := p.ProcessSource(JSONBytes(data), opts...)
	if err != nil {
		return nil, err
	}
	out, err := value.Marshal(v)
	if err != nil {
		return nil, Issues{{Code: CodeEncodeError, Path: "/", Message: err.Error(), Offset: -1, Cause: err}}
	}
	return out, nil
}

// ProcessReader decodes a document from r and processes it. The size limit of
// opts is applied before decoding.
func (p *Processor) ProcessReader(r io.Reader, opts ...ParseOpt) (any, error) {
	v, err := DecodeReader(r, opts...)
	if err != nil {
		return nil, err
	}
	return p.ProcessValue(v), nil
}

func (p *Processor) processValue(v any, ctx *Context) any {
	if arr, ok := v.([]any); ok {
		out := make([]any, len(arr))
		for i, item := range arr {
			out[i] = p.processValue(item, ctx)
		}
		return out
	}
	if obj, ok := value.AsObject(v); ok {
		return p.processObject(obj, ctx)
	}
	return v
}

func (p *Processor) processObject(obj *value.Object, ctx *Context) *value.Object {
	// The local context applies to this object and its subtree only.
	if decl, ok := obj.Get(KeywordContext); ok {
		local := ctx.Clone()
		local.Merge(decl)
		ctx = local
	}

	out := value.NewObject(obj.Len())
	obj.Range(func(key string, v any) bool {
		if IsKeyword(key) {
			p.processKeyword(out, key, v, ctx)
			return true
		}

		iri, ok := ctx.Expand(ctx.Alias(key))
		if !ok {
			p.dropped("property does not expand", key)
			return true
		}
		name := p.Target.Compact(iri)

		// Container mappings are looked up by the literal property name.
		if ctx.Container(key) == KeywordLanguage {
			lm, ok := languageMap(v, ctx.Language)
			if !ok {
				p.dropped("language-mapped property is not a string or object", key)
				return true
			}
			out.Set(name, lm)
			return true
		}
		// Colliding output names overwrite earlier ones.
		out.Set(name, p.processValue(v, ctx))
		return true
	})
	return out
}

func (p *Processor) processKeyword(out *value.Object, key string, v any, ctx *Context) {
	switch key {
	case KeywordID:
		if s, ok := v.(string); ok && IsAbsoluteIRI(s) {
			out.Set(key, s)
			return
		}
		p.dropped("@id is not an absolute IRI", key)
	case KeywordType:
		var types []any
		for item := range oneOrMany(v) {
			s, ok := item.(string)
			if !ok {
				p.dropped("@type entry is not a string", key)
				continue
			}
			iri, ok := ctx.Expand(s)
			if !ok {
				p.dropped("@type entry does not expand", s)
				continue
			}
			types = append(types, p.Target.Compact(iri))
		}
		if len(types) > 0 {
			out.Set(key, types)
		}
	}
	// @context is already applied; other keywords are not supported.
}

// languageMap normalises an internationalised value. A string becomes a
// single entry for lang; an object keeps only its string entries.
func languageMap(v any, lang string) (*value.Object, bool) {
	if s, ok := v.(string); ok {
		return value.ObjectOf(value.Member{Key: lang, Value: s}), true
	}
	obj, ok := value.AsObject(v)
	if !ok {
		return nil, false
	}
	out := value.NewObject(obj.Len())
	obj.Range(func(tag string, text any) bool {
		if s, ok := text.(string); ok {
			out.Set(tag, s)
		}
		return true
	})
	return out, true
}

func (p *Processor) dropped(reason, name string) {
	if p.Logger == nil {
		return
	}
	p.Logger.Debug("jsonns: dropped", slog.String("reason", reason), slog.String("name", name))
}
