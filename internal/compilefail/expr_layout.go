//go:build compilefail_expr_layout

package compilefail

import (
	"github.com/hupe1980/vecunits"
	"github.com/hupe1980/vecunits/unit"
)

var (
	a = vecunits.New[float64, unit.Length, unit.Meter, unit.Meter, unit.Meter](1, 2, 3)
	b = vecunits.New[float64, unit.Length, unit.Foot, unit.Meter, unit.Meter](1, 2, 3)
)

// Lazy expressions require identical layouts.
var _ = a.Plus(&b)
