//go:build compilefail_mixed_axes

package compilefail

import (
	"github.com/hupe1980/vecunits"
	"github.com/hupe1980/vecunits/unit"
)

// A time axis in a length vector.
var _ = vecunits.New[float64, unit.Length, unit.Meter, unit.Second, unit.Meter](1, 2, 3)
