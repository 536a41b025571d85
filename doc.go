// Package vecunits provides 3-dimensional vectors whose axes carry
// independent physical units of one shared dimension.
//
// A vector may hold x in meters, y in centimeters and z in feet. The
// compiler guarantees that all three units measure the same dimension;
// mixing a length axis with a time axis does not build.
//
// # Quick Start
//
//	a := vecunits.New[float64, unit.Length, unit.Meter, unit.Centimeter, unit.Foot](1, 2, 3)
//	b := vecunits.New[float64, unit.Length, unit.Meter, unit.Centimeter, unit.Foot](4, 5, 6)
//
//	s := a.Sum(b)   // (5 m, 7 cm, 9 ft)
//	c := a.Cross(b) // (-3 m, 6 cm, -3 ft)
//	d := a.Dot(b)   // 32, raw products in the units of a
//	m := vecunits.DotCanonical(a, b) // m^2
//
// # Eager and Lazy Arithmetic
//
// Eager operations (Sum, Combine, Difference, Cross, Dot, Scale) compute
// immediately and return new values. Combine and Difference accept operands
// of different layouts; the result is expressed in the units of the left
// operand.
//
// Lazy operations build an Expr that snapshots its vector operands and
// computes nothing until materialized:
//
//	e := a.Plus(&b).Minus(&c) // no arithmetic yet
//	r := e.Eval()             // one pass, three reads per leaf
//
// Expressions require identical layouts on both sides. Modifying a vector
// after it was used in an expression does not change the expression.
//
// # Serialization
//
// ToRecord and FromRecord convert between vectors and their runtime form
// (unit symbols plus values). The codec package persists records.
package vecunits
