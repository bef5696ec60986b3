package jsonns

// NumberMode dictates how numbers are decoded.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve json.Number (exact round-trip).
	NumberFloat64                      // Decode to float64 (with potential precision loss).
)

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement while decoding raw input.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn or Error on duplicate JSON keys.
}

// ParseOpt bundles decoding options. The zero value decodes leniently with
// exact numbers and no limits.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int   // 0 means unlimited.
	MaxBytes   int64 // 0 means unlimited.
	Numbers    NumberMode
}
