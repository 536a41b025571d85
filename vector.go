package vecunits

import (
	"fmt"

	"github.com/hupe1980/vecunits/quantity"
	"github.com/hupe1980/vecunits/unit"
)

// Vector3 is a 3-dimensional vector whose axes carry independent units of
// one shared dimension D.
//
// U1, U2 and U3 are the units of the x, y and z axis. They may differ (x in
// meters, y in feet) but must all be units of D; any other combination does
// not compile.
//
// Vector3 is a value type. The zero value is the zero vector.
type Vector3[T unit.Number, D unit.Dimension, U1 unit.Unit[D], U2 unit.Unit[D], U3 unit.Unit[D]] struct {
	x quantity.Quantity[D, U1, T]
	y quantity.Quantity[D, U2, T]
	z quantity.Quantity[D, U3, T]
}

// New returns the vector (x, y, z). Each scalar is taken literally in the
// unit of its own axis.
func New[T unit.Number, D unit.Dimension, U1 unit.Unit[D], U2 unit.Unit[D], U3 unit.Unit[D]](x, y, z T) Vector3[T, D, U1, U2, U3] {
	return Vector3[T, D, U1, U2, U3]{
		x: quantity.New[D, U1](x),
		y: quantity.New[D, U2](y),
		z: quantity.New[D, U3](z),
	}
}

// FromQuantities returns the vector (x, y, z) built from pre-built
// quantities. The axis units are taken from the quantities.
func FromQuantities[T unit.Number, D unit.Dimension, U1 unit.Unit[D], U2 unit.Unit[D], U3 unit.Unit[D]](
	x quantity.Quantity[D, U1, T],
	y quantity.Quantity[D, U2, T],
	z quantity.Quantity[D, U3, T],
) Vector3[T, D, U1, U2, U3] {
	return Vector3[T, D, U1, U2, U3]{x: x, y: y, z: z}
}

// X returns the x component.
func (v Vector3[T, D, U1, U2, U3]) X() quantity.Quantity[D, U1, T] { return v.x }

// Y returns the y component.
func (v Vector3[T, D, U1, U2, U3]) Y() quantity.Quantity[D, U2, T] { return v.y }

// Z returns the z component.
func (v Vector3[T, D, U1, U2, U3]) Z() quantity.Quantity[D, U3, T] { return v.z }

// SetX replaces the x component.
func (v *Vector3[T, D, U1, U2, U3]) SetX(q quantity.Quantity[D, U1, T]) { v.x = q }

// SetY replaces the y component.
func (v *Vector3[T, D, U1, U2, U3]) SetY(q quantity.Quantity[D, U2, T]) { v.y = q }

// SetZ replaces the z component.
func (v *Vector3[T, D, U1, U2, U3]) SetZ(q quantity.Quantity[D, U3, T]) { v.z = q }

// At returns the raw value of axis i (0, 1 or 2) without unit information.
//
// At is the evaluation primitive of the expression mechanism. It panics if
// i is out of range.
func (v Vector3[T, D, U1, U2, U3]) At(i int) T {
	switch i {
	case 0:
		return v.x.Value()
	case 1:
		return v.y.Value()
	case 2:
		return v.z.Value()
	default:
		panic(fmt.Sprintf("vecunits: axis index %d out of range [0, 3)", i))
	}
}

// Units returns the axis units. It ties a Vector3 to the Operand interface
// of its own layout.
func (v Vector3[T, D, U1, U2, U3]) Units() (U1, U2, U3) {
	return v.x.Unit(), v.y.Unit(), v.z.Unit()
}

// Raw returns the raw axis values.
func (v Vector3[T, D, U1, U2, U3]) Raw() [3]T {
	return [3]T{v.x.Value(), v.y.Value(), v.z.Value()}
}

// Canonical returns the axis values expressed in the canonical unit of D.
func (v Vector3[T, D, U1, U2, U3]) Canonical() [3]float64 {
	return [3]float64{v.x.Canonical(), v.y.Canonical(), v.z.Canonical()}
}

// Scale multiplies every axis by s. Units are unchanged.
func (v Vector3[T, D, U1, U2, U3]) Scale(s T) Vector3[T, D, U1, U2, U3] {
	return Vector3[T, D, U1, U2, U3]{x: v.x.Scale(s), y: v.y.Scale(s), z: v.z.Scale(s)}
}

// Div divides every axis by s. Units are unchanged.
func (v Vector3[T, D, U1, U2, U3]) Div(s T) Vector3[T, D, U1, U2, U3] {
	return Vector3[T, D, U1, U2, U3]{x: v.x.Div(s), y: v.y.Div(s), z: v.z.Div(s)}
}

// Neg returns -v.
func (v Vector3[T, D, U1, U2, U3]) Neg() Vector3[T, D, U1, U2, U3] {
	return Vector3[T, D, U1, U2, U3]{x: v.x.Neg(), y: v.y.Neg(), z: v.z.Neg()}
}

// Sum returns v + o. Neither operand is modified.
func (v Vector3[T, D, U1, U2, U3]) Sum(o Vector3[T, D, U1, U2, U3]) Vector3[T, D, U1, U2, U3] {
	return Combine(v, o)
}

// Dot returns the dot product of v and o. See the package-level Dot.
func (v Vector3[T, D, U1, U2, U3]) Dot(o Vector3[T, D, U1, U2, U3]) T {
	return Dot(v, o)
}

// Cross returns the cross product of v and o. See the package-level Cross.
func (v Vector3[T, D, U1, U2, U3]) Cross(o Vector3[T, D, U1, U2, U3]) Vector3[T, D, U1, U2, U3] {
	return Cross(v, o)
}

// String formats v as "(x ux, y uy, z uz)".
func (v Vector3[T, D, U1, U2, U3]) String() string {
	return fmt.Sprintf("(%s, %s, %s)", v.x, v.y, v.z)
}
