//go:build compilefail_convert

package compilefail

import (
	"github.com/hupe1980/vecunits/quantity"
	"github.com/hupe1980/vecunits/unit"
)

// Meters cannot be cast to seconds.
var _ = quantity.Convert[unit.Second](quantity.New[unit.Length, unit.Meter](1.0))
