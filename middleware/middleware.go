// Package middleware processes JSON-NS request bodies at HTTP boundaries.
//
// Process wraps a net/http handler; the echo and gin subpackages (separate
// modules) adapt the same flow to those frameworks.
package middleware

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/reoring/jsonns"
)

// ctxKeyDocument is a typed context key for storing a Document.
type ctxKeyDocument struct{}

// Document is a processed request body.
type Document struct {
	// Value is the body rewritten into the processor's target context.
	Value any
	// Warnings holds non-fatal issues reported while decoding.
	Warnings jsonns.Issues
}

// ContextWithDocument attaches a Document to the context.
func ContextWithDocument(ctx context.Context, d Document) context.Context {
	return context.WithValue(ctx, ctxKeyDocument{}, d)
}

// DocumentFromContext retrieves a Document from context.
func DocumentFromContext(ctx context.Context) (Document, bool) {
	d, ok := ctx.Value(ctxKeyDocument{}).(Document)
	return d, ok
}

// DefaultParseOpt returns a recommended default for HTTP JSON boundaries.
// - Duplicate keys are errors
// - Bodies are capped at 1 MiB and 64 levels of nesting
func DefaultParseOpt() jsonns.ParseOpt {
	return jsonns.ParseOpt{
		Strictness: jsonns.Strictness{OnDuplicateKey: jsonns.Error},
		MaxDepth:   64,
		MaxBytes:   1 << 20,
	}
}

// Defaults replaces a zero ParseOpt with DefaultParseOpt.
func Defaults(opt jsonns.ParseOpt) jsonns.ParseOpt {
	if opt == (jsonns.ParseOpt{}) {
		return DefaultParseOpt()
	}
	return opt
}

// Decode reads the request body and processes it with p.
func Decode(r *http.Request, p *jsonns.Processor, opt jsonns.ParseOpt) (Document, error) {
	var d Document
	v, err := jsonns.DecodeReaderWithIssues(r.Body, opt, func(is jsonns.Issue) {
		d.Warnings = append(d.Warnings, is)
	})
	if err != nil {
		return Document{}, err
	}
	d.Value = p.ProcessValue(v)
	return d, nil
}

// ErrorPayload shapes Issues for JSON responses.
func ErrorPayload(issues []jsonns.Issue) map[string]any {
	out := make([]map[string]any, len(issues))
	for i, it := range issues {
		out[i] = map[string]any{"path": it.Path, "code": it.Code, "message": it.Text()}
	}
	return map[string]any{"issues": out}
}

// StatusFor maps a decode failure to an HTTP status.
func StatusFor(issues jsonns.Issues) int {
	for _, it := range issues {
		if it.Code == jsonns.CodeTruncated {
			return http.StatusRequestEntityTooLarge
		}
	}
	return http.StatusBadRequest
}

// Process decodes and processes the request body with p, stores the Document
// in the request context, and answers with the issues when the body cannot
// be decoded. A zero opt means DefaultParseOpt.
func Process(p *jsonns.Processor, opt jsonns.ParseOpt) func(http.Handler) http.Handler {
	opt = Defaults(opt)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d, err := Decode(r, p, opt)
			if err != nil {
				iss, ok := jsonns.AsIssues(err)
				if !ok {
					iss = jsonns.Issues{{Code: jsonns.CodeParseError, Path: "/", Message: err.Error(), Offset: -1}}
				}
				WriteJSON(w, StatusFor(iss), ErrorPayload(iss))
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithDocument(r.Context(), d)))
		})
	}
}

// WriteJSON writes v as a JSON response. Ordered objects keep their key order.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
