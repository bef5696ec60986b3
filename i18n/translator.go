// Package i18n supplies human messages for issue codes.
package i18n

import "sync/atomic"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "path").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "parse_error":
			return "解析エラー"
		case "duplicate_key":
			return "キーが重複しています"
		case "truncated":
			return "入力が上限を超えました"
		case "encode_error":
			return "出力を生成できません"
		}
	default: // "en"
		switch code {
		case "parse_error":
			return "invalid JSON"
		case "duplicate_key":
			return "duplicate key"
		case "truncated":
			return "input exceeds the size limit"
		case "encode_error":
			return "output could not be encoded"
		}
	}
	return code
}

type holder struct{ Translator }

var current atomic.Pointer[holder]

func init() { SetLanguage("en") }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	current.Store(&holder{dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation. nil restores the
// English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		SetLanguage("en")
		return
	}
	current.Store(&holder{tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return current.Load().Message(code, data) }
