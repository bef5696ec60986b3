package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/jsonns"
	_ "github.com/reoring/jsonns/source"
)

func TestImportSwitchesDefaultDriver(t *testing.T) {
	assert.Equal(t, "go-json", jsonns.CurrentJSONDriver().Name())
}
