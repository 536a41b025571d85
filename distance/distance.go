package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/vecunits"
	"github.com/hupe1980/vecunits/unit"
)

// SquaredL2 returns the squared Euclidean distance between a and b in the
// squared canonical unit of D.
func SquaredL2[T unit.Number, D unit.Dimension, A1, A2, A3 unit.Unit[D], B1, B2, B3 unit.Unit[D]](
	a vecunits.Vector3[T, D, A1, A2, A3],
	b vecunits.Vector3[T, D, B1, B2, B3],
) float64 {
	ca, cb := a.Canonical(), b.Canonical()
	var d float64
	for i := range ca {
		diff := ca[i] - cb[i]
		d += diff * diff
	}
	return d
}

// L2 returns the Euclidean distance between a and b in the canonical unit of D.
func L2[T unit.Number, D unit.Dimension, A1, A2, A3 unit.Unit[D], B1, B2, B3 unit.Unit[D]](
	a vecunits.Vector3[T, D, A1, A2, A3],
	b vecunits.Vector3[T, D, B1, B2, B3],
) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// Norm returns the length of v in the canonical unit of D.
func Norm[T unit.Number, D unit.Dimension, U1, U2, U3 unit.Unit[D]](v vecunits.Vector3[T, D, U1, U2, U3]) float64 {
	c := v.Canonical()
	return math.Sqrt(c[0]*c[0] + c[1]*c[1] + c[2]*c[2])
}

// Cosine returns the cosine similarity of a and b.
// Returns 0 if either vector has zero length.
func Cosine[T unit.Number, D unit.Dimension, A1, A2, A3 unit.Unit[D], B1, B2, B3 unit.Unit[D]](
	a vecunits.Vector3[T, D, A1, A2, A3],
	b vecunits.Vector3[T, D, B1, B2, B3],
) float64 {
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	ca, cb := a.Canonical(), b.Canonical()
	return (ca[0]*cb[0] + ca[1]*cb[1] + ca[2]*cb[2]) / (na * nb)
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricSquaredL2
	MetricCosine
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricCosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation between vectors of one layout.
type Func[T unit.Number, D unit.Dimension, U1, U2, U3 unit.Unit[D]] func(a, b vecunits.Vector3[T, D, U1, U2, U3]) float64

// Provider returns the distance function for the given metric.
func Provider[T unit.Number, D unit.Dimension, U1, U2, U3 unit.Unit[D]](m Metric) (Func[T, D, U1, U2, U3], error) {
	switch m {
	case MetricL2:
		return L2[T, D, U1, U2, U3, U1, U2, U3], nil
	case MetricSquaredL2:
		return SquaredL2[T, D, U1, U2, U3, U1, U2, U3], nil
	case MetricCosine:
		return Cosine[T, D, U1, U2, U3, U1, U2, U3], nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
