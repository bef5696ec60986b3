//go:build gojson

package jsonns_test

import (
	"github.com/reoring/jsonns"
	drv "github.com/reoring/jsonns/source/gojson"
)

func init() {
	jsonns.SetJSONDriver(drv.Driver())
}
