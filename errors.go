package jsonns

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/jsonns/i18n"
	eng "github.com/reoring/jsonns/internal/engine"
)

// Issue codes. Only input that cannot be turned into a tree produces issues;
// the namespace transform itself never fails.
const (
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeTruncated    = "truncated"
	CodeEncodeError  = "encode_error"
)

// ErrInvalidRule reports a malformed target rule line.
var ErrInvalidRule = errors.New("jsonns: invalid target rule")

// Issue represents a single input problem.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/name).
	Code    string // One of the codes listed above.
	Message string
	Offset  int64 // Byte offset in the input source (-1 when unknown).
	Cause   error // Optional: underlying error.
}

// Text returns the issue message, or the translated description of its code
// when the message is empty.
func (it Issue) Text() string {
	if it.Message != "" {
		return it.Message
	}
	return i18n.T(it.Code, map[string]string{"path": it.Path})
}

// Issues is a collection of input problems that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. duplicate_key at /a: key 'a' duplicated
		fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Text())
	}
	if n := len(iss); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes of the issues to errors.Is and errors.As.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func toIssues(err error, offset int64) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{{Code: ie.Code, Path: ie.Path, Message: ie.Message, Offset: offset}}
	}
	return Issues{{Code: CodeParseError, Path: "/", Message: err.Error(), Offset: offset, Cause: err}}
}

func singleIssue(code, msg string) Issues {
	return Issues{{Code: code, Path: "/", Message: msg, Offset: -1}}
}
