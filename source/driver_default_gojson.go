// Package source switches the process-wide JSON driver to goccy/go-json when
// imported for its side effect.
package source

import (
	"github.com/reoring/jsonns"
	drvgojson "github.com/reoring/jsonns/source/gojson"
)

// init in a separate package to avoid import cycle in root. This sets go-json as default driver.
func init() { jsonns.SetJSONDriver(drvgojson.Driver()) }
