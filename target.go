package jsonns

import (
	"fmt"
	"strings"
)

// Rule maps a base IRI to an output prefix. An empty Prefix stands for the
// default namespace of the output document.
type Rule struct {
	Prefix string
	Base   string
}

// TargetContext holds the rules the output document is reworded with.
//
// For every absolute IRI about to be written, the first rule whose Base is a
// prefix of the IRI wins. Rules are tried in order, not by best match. With no
// rules the output contains only absolute IRIs.
type TargetContext struct {
	Rules []Rule
}

// AddRule appends a rule.
func (t *TargetContext) AddRule(prefix, base string) *TargetContext {
	t.Rules = append(t.Rules, Rule{Prefix: prefix, Base: base})
	return t
}

// Compact rewrites an absolute IRI into a CURIE or a bare term when a rule
// matches, and returns it unchanged otherwise.
func (t *TargetContext) Compact(iri string) string {
	for _, r := range t.Rules {
		suffix, ok := strings.CutPrefix(iri, r.Base)
		if !ok {
			continue
		}
		if r.Prefix == "" {
			return suffix
		}
		return r.Prefix + ":" + suffix
	}
	return iri
}

// ParseTargetRules parses the line-oriented rule format:
//
//	ex: http://example.com/ns#
//	: http://schema.org/
//
// Each line is split on the first ": ". A lone "-" stands for no rules.
func ParseTargetRules(text string) (TargetContext, error) {
	var t TargetContext
	text = strings.TrimSpace(text)
	if text == "-" || text == "" {
		return t, nil
	}
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		prefix, base, ok := strings.Cut(line, ": ")
		if !ok {
			return TargetContext{}, fmt.Errorf("line %d %q: %w", i+1, line, ErrInvalidRule)
		}
		t.AddRule(prefix, base)
	}
	return t, nil
}

// String renders the rules in the format accepted by ParseTargetRules.
func (t TargetContext) String() string {
	if len(t.Rules) == 0 {
		return "-"
	}
	lines := make([]string, len(t.Rules))
	for i, r := range t.Rules {
		lines[i] = r.Prefix + ": " + r.Base
	}
	return strings.Join(lines, "\n")
}
