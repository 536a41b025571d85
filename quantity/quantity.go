package quantity

import (
	"fmt"

	"github.com/hupe1980/vecunits/unit"
)

// Quantity is a raw value of type T measured in unit U of dimension D.
//
// The zero value is zero in unit U.
type Quantity[D unit.Dimension, U unit.Unit[D], T unit.Number] struct {
	v T
}

// New wraps raw as a quantity in unit U. No conversion is performed.
func New[D unit.Dimension, U unit.Unit[D], T unit.Number](raw T) Quantity[D, U, T] {
	return Quantity[D, U, T]{v: raw}
}

// Value returns the raw value, uninterpreted.
func (q Quantity[D, U, T]) Value() T {
	return q.v
}

// Unit returns the unit of q.
func (q Quantity[D, U, T]) Unit() U {
	var u U
	return u
}

// Canonical returns the value expressed in the canonical unit of D.
func (q Quantity[D, U, T]) Canonical() float64 {
	return unit.Canonical[D, U](q.v)
}

// Scale multiplies the raw value by s. The unit is unchanged.
func (q Quantity[D, U, T]) Scale(s T) Quantity[D, U, T] {
	return Quantity[D, U, T]{v: q.v * s}
}

// Div divides the raw value by s. The unit is unchanged.
//
// Division by zero follows the semantics of T.
func (q Quantity[D, U, T]) Div(s T) Quantity[D, U, T] {
	return Quantity[D, U, T]{v: q.v / s}
}

// Neg returns -q.
func (q Quantity[D, U, T]) Neg() Quantity[D, U, T] {
	return Quantity[D, U, T]{v: -q.v}
}

// String formats q as "<value> <symbol>".
func (q Quantity[D, U, T]) String() string {
	var u U
	return fmt.Sprintf("%v %s", q.v, u.Symbol())
}

// Convert re-expresses q in unit To of the same dimension.
//
// The raw value is multiplied by From.Factor / To.Factor.
func Convert[To unit.Unit[D], D unit.Dimension, From unit.Unit[D], T unit.Number](q Quantity[D, From, T]) Quantity[D, To, T] {
	return Quantity[D, To, T]{v: unit.Convert[D, From, To](q.v)}
}

// Add returns a + b in the unit of a. b is converted first.
func Add[D unit.Dimension, L unit.Unit[D], R unit.Unit[D], T unit.Number](a Quantity[D, L, T], b Quantity[D, R, T]) Quantity[D, L, T] {
	return Quantity[D, L, T]{v: a.v + unit.Convert[D, R, L](b.v)}
}

// Sub returns a - b in the unit of a. b is converted first.
func Sub[D unit.Dimension, L unit.Unit[D], R unit.Unit[D], T unit.Number](a Quantity[D, L, T], b Quantity[D, R, T]) Quantity[D, L, T] {
	return Quantity[D, L, T]{v: a.v - unit.Convert[D, R, L](b.v)}
}
