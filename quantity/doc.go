// Package quantity provides scalar values tagged with a unit.
//
// A Quantity[D, U, T] stores a raw value of type T interpreted strictly in
// unit U of dimension D. Changing the unit is always explicit:
//
//	d := quantity.New[unit.Length, unit.Foot](3.0)
//	cm := quantity.Convert[unit.Centimeter](d) // 91.44 cm
//
// Add and Sub combine two quantities of the same dimension; the result is
// expressed in the unit of the left operand:
//
//	s := quantity.Add(d, cm) // 6 ft
//
// Mixing dimensions does not compile.
package quantity
