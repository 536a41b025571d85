package vecunits

import (
	"github.com/hupe1980/vecunits/quantity"
	"github.com/hupe1980/vecunits/unit"
)

// Combine eagerly returns a + b. Axis i of the result is a[i] + b[i] in the
// unit of a's axis i; b is converted axis by axis first.
//
// Combine is commutative in value but not in unit layout: the result always
// has the layout of a.
func Combine[T unit.Number, D unit.Dimension, A1, A2, A3 unit.Unit[D], B1, B2, B3 unit.Unit[D]](
	a Vector3[T, D, A1, A2, A3],
	b Vector3[T, D, B1, B2, B3],
) Vector3[T, D, A1, A2, A3] {
	return Vector3[T, D, A1, A2, A3]{
		x: quantity.Add(a.x, b.x),
		y: quantity.Add(a.y, b.y),
		z: quantity.Add(a.z, b.z),
	}
}

// Difference eagerly returns a - b in the layout of a.
func Difference[T unit.Number, D unit.Dimension, A1, A2, A3 unit.Unit[D], B1, B2, B3 unit.Unit[D]](
	a Vector3[T, D, A1, A2, A3],
	b Vector3[T, D, B1, B2, B3],
) Vector3[T, D, A1, A2, A3] {
	return Vector3[T, D, A1, A2, A3]{
		x: quantity.Sub(a.x, b.x),
		y: quantity.Sub(a.y, b.y),
		z: quantity.Sub(a.z, b.z),
	}
}

// Convert re-expresses v in the layout (To1, To2, To3).
func Convert[To1, To2, To3 unit.Unit[D], T unit.Number, D unit.Dimension, U1, U2, U3 unit.Unit[D]](
	v Vector3[T, D, U1, U2, U3],
) Vector3[T, D, To1, To2, To3] {
	return Vector3[T, D, To1, To2, To3]{
		x: quantity.Convert[To1](v.x),
		y: quantity.Convert[To2](v.y),
		z: quantity.Convert[To3](v.z),
	}
}

// Dot returns the dot product of a and b.
//
// b is first converted into the layout of a, axis by axis, and the raw
// products are summed in T. The result is in the squared units of a: cm^2
// for a vector in centimeters, or a mix of squared units when a's axes
// differ. For vectors of one layout the result is exact for integer T.
// Use DotCanonical for a value that does not depend on the operand order.
func Dot[T unit.Number, D unit.Dimension, A1, A2, A3 unit.Unit[D], B1, B2, B3 unit.Unit[D]](
	a Vector3[T, D, A1, A2, A3],
	b Vector3[T, D, B1, B2, B3],
) T {
	u := a.Raw()
	w := Convert[A1, A2, A3](b).Raw()
	return u[0]*w[0] + u[1]*w[1] + u[2]*w[2]
}

// DotCanonical returns the dot product of a and b in the squared canonical
// unit of D (m^2 for lengths). Both operands are converted to canonical
// float64 values first, so DotCanonical(a, b) == DotCanonical(b, a) for any
// two layouts.
func DotCanonical[T unit.Number, D unit.Dimension, A1, A2, A3 unit.Unit[D], B1, B2, B3 unit.Unit[D]](
	a Vector3[T, D, A1, A2, A3],
	b Vector3[T, D, B1, B2, B3],
) float64 {
	ca, cb := a.Canonical(), b.Canonical()
	return ca[0]*cb[0] + ca[1]*cb[1] + ca[2]*cb[2]
}

// Cross returns the cross product a x b.
//
// b is first converted into the layout of a, axis by axis, then
//
//	(a2 b3 - a3 b2, a3 b1 - a1 b3, a1 b2 - a2 b1)
//
// is computed on raw values. The result keeps the layout of a. When a's axes
// use different units the terms mix those units, and the result is tagged
// with D although a true cross product has dimension D^2. Use CrossIn to
// normalize every component into one unit first.
func Cross[T unit.Number, D unit.Dimension, A1, A2, A3 unit.Unit[D], B1, B2, B3 unit.Unit[D]](
	a Vector3[T, D, A1, A2, A3],
	b Vector3[T, D, B1, B2, B3],
) Vector3[T, D, A1, A2, A3] {
	u := a.Raw()
	w := Convert[A1, A2, A3](b).Raw()
	return New[T, D, A1, A2, A3](
		u[1]*w[2]-u[2]*w[1],
		u[2]*w[0]-u[0]*w[2],
		u[0]*w[1]-u[1]*w[0],
	)
}

// CrossIn returns the cross product a x b with all six components converted
// into unit U first. The result uses U on every axis.
func CrossIn[U unit.Unit[D], T unit.Number, D unit.Dimension, A1, A2, A3 unit.Unit[D], B1, B2, B3 unit.Unit[D]](
	a Vector3[T, D, A1, A2, A3],
	b Vector3[T, D, B1, B2, B3],
) Vector3[T, D, U, U, U] {
	return Cross(Convert[U, U, U](a), b)
}
