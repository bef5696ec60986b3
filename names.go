package jsonns

import (
	"iter"
	"strings"
)

// Reserved keywords with defined behavior.
const (
	KeywordContext   = "@context"
	KeywordID        = "@id"
	KeywordType      = "@type"
	KeywordVocab     = "@vocab"
	KeywordLanguage  = "@language"
	KeywordContainer = "@container"
)

// IsKeyword reports whether s is a reserved keyword.
func IsKeyword(s string) bool {
	return strings.HasPrefix(s, "@")
}

// IsAbsoluteIRI reports whether s is treated as an absolute identifier: it
// contains a colon and is not a keyword. No further validation is applied.
func IsAbsoluteIRI(s string) bool {
	return strings.Contains(s, ":") && !IsKeyword(s)
}

// IsCURIEPrefix reports whether s can be declared as a CURIE prefix.
func IsCURIEPrefix(s string) bool {
	return s != "" && !strings.Contains(s, ":") && !IsKeyword(s)
}

// oneOrMany yields the elements of an array, or v itself otherwise.
func oneOrMany(v any) iter.Seq[any] {
	return func(yield func(any) bool) {
		arr, ok := v.([]any)
		if !ok {
			yield(v)
			return
		}
		for _, item := range arr {
			if !yield(item) {
				return
			}
		}
	}
}
