package jsonns

import (
	"errors"
	"io"

	eng "github.com/reoring/jsonns/internal/engine"
)

// Decode builds a tree from src. Objects are returned as *value.Object in
// input order. Only one top-level value is accepted.
func Decode(src Source, opts ...ParseOpt) (any, error) {
	return DecodeWithIssues(src, lastOpt(opts), nil)
}

// DecodeWithIssues is Decode with a sink for non-fatal issues, such as
// duplicate keys when OnDuplicateKey is Warn.
func DecodeWithIssues(src Source, opt ParseOpt, sink func(Issue)) (any, error) {
	if src == nil {
		return nil, singleIssue(CodeParseError, "nil source")
	}
	var tokens eng.TokenSource = src
	eo := eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
	}
	if sink != nil {
		eo.IssueSink = func(si eng.SimpleIssue) {
			sink(Issue{Path: si.Path, Code: si.Code, Message: si.Message, Offset: src.Location()})
		}
	}
	if !eo.Disabled() {
		tokens = eng.WrapWithEnforcement(tokens, eo)
	}

	v, err := eng.DecodeValue(tokens, numberConv(opt.Numbers))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, singleIssue(CodeParseError, "empty input")
		}
		return nil, toIssues(err, src.Location())
	}
	if _, err := tokens.NextToken(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, toIssues(err, src.Location())
		}
		return nil, Issues{{Code: CodeParseError, Path: "/", Message: "unexpected data after top-level value", Offset: src.Location()}}
	}
	return v, nil
}

// DecodeReader decodes a single document from r. When MaxBytes is set the size
// cap is enforced up front, since not every driver reports offsets.
func DecodeReader(r io.Reader, opts ...ParseOpt) (any, error) {
	return DecodeReaderWithIssues(r, lastOpt(opts), nil)
}

// DecodeReaderWithIssues is DecodeReader with a sink for non-fatal issues.
func DecodeReaderWithIssues(r io.Reader, opt ParseOpt, sink func(Issue)) (any, error) {
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return nil, singleIssue(CodeParseError, err.Error())
		}
		if int64(len(data)) > opt.MaxBytes {
			return nil, Issues{{Code: CodeTruncated, Path: "/", Message: "max bytes exceeded", Offset: opt.MaxBytes}}
		}
		return DecodeWithIssues(JSONBytes(data), opt, sink)
	}
	return DecodeWithIssues(JSONReader(r), opt, sink)
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return ParseOpt{}
	}
	return opts[len(opts)-1]
}

func numberConv(m NumberMode) eng.NumberConv {
	if m == NumberFloat64 {
		return eng.Float64
	}
	return eng.JSONNumber
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}
