//go:build compilefail_add

package compilefail

import (
	"github.com/hupe1980/vecunits/quantity"
	"github.com/hupe1980/vecunits/unit"
)

// Meters and seconds cannot be added.
var _ = quantity.Add(
	quantity.New[unit.Length, unit.Meter](1.0),
	quantity.New[unit.Time, unit.Second](1.0),
)
