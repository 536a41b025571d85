// Package unit provides the dimension and unit metadata consumed by vecunits.
//
// A Dimension is a zero-size marker type (Length, Time, ...). A unit is a
// zero-size type implementing Unit[D] for exactly one dimension D, so the
// compiler rejects any attempt to use a unit where a unit of another
// dimension is expected:
//
//	var _ unit.Unit[unit.Length] = unit.Foot{}   // ok
//	var _ unit.Unit[unit.Length] = unit.Second{} // does not compile
//
// # Conversion
//
// Every unit carries a factor to the canonical unit of its dimension
// (meter, second, kilogram, ...). Ratio returns the multiplier converting a
// raw value from one unit into another of the same dimension:
//
//	r := unit.Ratio[unit.Length, unit.Foot, unit.Centimeter]() // 30.48
//
// # Custom Units
//
// Any zero-size type with Dimension, Factor and Symbol methods is a unit:
//
//	type Furlong struct{}
//
//	func (Furlong) Dimension() unit.Length { return unit.Length{} }
//	func (Furlong) Factor() float64       { return 201.168 }
//	func (Furlong) Symbol() string        { return "fur" }
//
// Register makes a custom unit known to the runtime registry used when
// decoding serialized vectors.
package unit
