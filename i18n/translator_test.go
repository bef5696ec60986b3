package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X-" + code }

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	t.Cleanup(func() { SetLanguage("en") })

	assert.Equal(t, "duplicate key", T("duplicate_key", nil))
	assert.Equal(t, "no_such_code", T("no_such_code", nil))

	SetLanguage("ja")
	assert.Equal(t, "キーが重複しています", T("duplicate_key", nil))

	SetLanguage("fr")
	assert.Equal(t, "invalid JSON", T("parse_error", nil))
}

func TestSetTranslator(t *testing.T) {
	t.Cleanup(func() { SetTranslator(nil) })

	SetTranslator(upper{})
	assert.Equal(t, "X-truncated", T("truncated", nil))

	SetTranslator(nil)
	assert.Equal(t, "input exceeds the size limit", T("truncated", nil))
}
