// Package config loads processor settings from YAML or JSON files.
//
// A file has up to three top-level sections:
//
//	context:                 # external context, same forms as @context
//	  "@vocab": http://schema.org/
//	  ex: http://example.com/ns#
//	target:                  # ordered rules; first match wins
//	  - {prefix: ex, base: "http://example.com/ns#"}
//	  - {prefix: "", base: "http://schema.org/"}
//	parse:
//	  duplicateKeys: warn    # ignore | warn | error
//	  maxDepth: 64
//	  maxBytes: 1048576
//	  numbers: json          # json | float
//
// The target section may also be a mapping from prefix to base; its order in
// the file is kept.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reoring/jsonns"
)

// ErrInvalidConfig is wrapped by every error reported for file contents.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the parsed form of a configuration file.
type Config struct {
	// Context is the raw external context declaration, nil when absent.
	Context any
	Target  []jsonns.Rule
	Parse   jsonns.ParseOpt
}

type parseSection struct {
	DuplicateKeys string `yaml:"duplicateKeys"`
	MaxDepth      int    `yaml:"maxDepth"`
	MaxBytes      int64  `yaml:"maxBytes"`
	Numbers       string `yaml:"numbers"`
}

type ruleEntry struct {
	Prefix string  `yaml:"prefix"`
	Base   *string `yaml:"base"`
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses configuration data. JSON is accepted as a subset of YAML.
func Parse(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg := &Config{}
	if doc.Kind == 0 {
		return cfg, nil
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must be a mapping", ErrInvalidConfig, root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		var err error
		switch key.Value {
		case "context":
			cfg.Context, err = ToValue(val)
		case "target":
			cfg.Target, err = parseTarget(val)
		case "parse":
			cfg.Parse, err = parseOptions(val)
		default:
			err = fmt.Errorf("%w: line %d: unknown key %q", ErrInvalidConfig, key.Line, key.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the rule list.
func (c *Config) Validate() error {
	for i, r := range c.Target {
		if r.Base == "" {
			return fmt.Errorf("%w: target rule %d has an empty base", ErrInvalidConfig, i+1)
		}
	}
	return nil
}

// Processor builds a processor configured with the file's context and rules.
func (c *Config) Processor() *jsonns.Processor {
	p := jsonns.New()
	p.Context = *jsonns.NewContext(c.Context)
	p.Target.Rules = append(p.Target.Rules, c.Target...)
	return p
}

func parseTarget(n *yaml.Node) ([]jsonns.Rule, error) {
	switch n.Kind {
	case yaml.MappingNode:
		rules := make([]jsonns.Rule, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: base for prefix %q must be a string", ErrInvalidConfig, v.Line, k.Value)
			}
			rules = append(rules, jsonns.Rule{Prefix: k.Value, Base: v.Value})
		}
		return rules, nil
	case yaml.SequenceNode:
		rules := make([]jsonns.Rule, 0, len(n.Content))
		for _, item := range n.Content {
			var e ruleEntry
			if err := item.Decode(&e); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidConfig, item.Line, err)
			}
			if e.Base == nil {
				return nil, fmt.Errorf("%w: line %d: rule without base", ErrInvalidConfig, item.Line)
			}
			rules = append(rules, jsonns.Rule{Prefix: e.Prefix, Base: *e.Base})
		}
		return rules, nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, nil
		}
		// The line-oriented rule format also works as a block scalar.
		t, err := jsonns.ParseTargetRules(n.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidConfig, n.Line, err)
		}
		return t.Rules, nil
	}
	return nil, fmt.Errorf("%w: line %d: target must be a list, mapping or rule text", ErrInvalidConfig, n.Line)
}

func parseOptions(n *yaml.Node) (jsonns.ParseOpt, error) {
	var s parseSection
	if err := n.Decode(&s); err != nil {
		return jsonns.ParseOpt{}, fmt.Errorf("%w: line %d: %v", ErrInvalidConfig, n.Line, err)
	}
	opt := jsonns.ParseOpt{MaxDepth: s.MaxDepth, MaxBytes: s.MaxBytes}
	sev, err := ParseSeverity(s.DuplicateKeys)
	if err != nil {
		return jsonns.ParseOpt{}, err
	}
	opt.Strictness.OnDuplicateKey = sev
	switch s.Numbers {
	case "", "json":
		opt.Numbers = jsonns.NumberJSONNumber
	case "float":
		opt.Numbers = jsonns.NumberFloat64
	default:
		return jsonns.ParseOpt{}, fmt.Errorf("%w: unknown numbers mode %q", ErrInvalidConfig, s.Numbers)
	}
	if opt.MaxDepth < 0 || opt.MaxBytes < 0 {
		return jsonns.ParseOpt{}, fmt.Errorf("%w: limits must not be negative", ErrInvalidConfig)
	}
	return opt, nil
}

// ParseSeverity maps "ignore", "warn" and "error" to a jsonns.Severity. The
// empty string means ignore.
func ParseSeverity(s string) (jsonns.Severity, error) {
	switch s {
	case "", "ignore":
		return jsonns.Ignore, nil
	case "warn":
		return jsonns.Warn, nil
	case "error":
		return jsonns.Error, nil
	}
	return jsonns.Ignore, fmt.Errorf("%w: unknown severity %q", ErrInvalidConfig, s)
}
