//go:build compilefail_combine

package compilefail

import (
	"github.com/hupe1980/vecunits"
	"github.com/hupe1980/vecunits/unit"
)

// A length vector and a velocity vector cannot be combined.
var _ = vecunits.Combine(
	vecunits.New[float64, unit.Length, unit.Meter, unit.Meter, unit.Meter](1, 2, 3),
	vecunits.New[float64, unit.Velocity, unit.MeterPerSecond, unit.MeterPerSecond, unit.MeterPerSecond](1, 2, 3),
)
