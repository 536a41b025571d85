package vecunits

import (
	"fmt"

	"github.com/hupe1980/vecunits/quantity"
	"github.com/hupe1980/vecunits/unit"
)

// Record is the runtime form of a Vector3: unit symbols and raw values.
//
// Records are what codecs persist. Values are stored as float64, which is
// exact for every integer of magnitude up to 2^53.
type Record struct {
	Units  [3]string  `json:"units"`
	Values [3]float64 `json:"values"`
}

// ToRecord returns the Record of v.
func ToRecord[T unit.Number, D unit.Dimension, U1, U2, U3 unit.Unit[D]](v Vector3[T, D, U1, U2, U3]) Record {
	u1, u2, u3 := v.Units()
	return Record{
		Units:  [3]string{u1.Symbol(), u2.Symbol(), u3.Symbol()},
		Values: [3]float64{float64(v.x.Value()), float64(v.y.Value()), float64(v.z.Value())},
	}
}

// FromRecord decodes r into dst.
//
// An axis whose symbol differs from the target unit is converted when both
// units are registered and share the dimension of dst. Unknown symbols
// return an error wrapping unit.ErrUnknownUnit; foreign dimensions return
// *ErrDimensionMismatch. dst is left untouched on error.
func FromRecord[T unit.Number, D unit.Dimension, U1, U2, U3 unit.Unit[D]](r Record, dst *Vector3[T, D, U1, U2, U3]) error {
	targets := [3]unit.Info{unit.Describe[D, U1](), unit.Describe[D, U2](), unit.Describe[D, U3]()}

	var vals [3]float64
	for i, target := range targets {
		v, err := decodeAxis(i, r.Units[i], r.Values[i], target)
		if err != nil {
			return err
		}
		vals[i] = v
	}

	dst.x = quantity.New[D, U1](T(vals[0]))
	dst.y = quantity.New[D, U2](T(vals[1]))
	dst.z = quantity.New[D, U3](T(vals[2]))
	return nil
}

// FromRecordExact decodes r into dst and requires every axis symbol to match
// the target unit. Mismatches return *ErrUnitMismatch.
func FromRecordExact[T unit.Number, D unit.Dimension, U1, U2, U3 unit.Unit[D]](r Record, dst *Vector3[T, D, U1, U2, U3]) error {
	targets := [3]unit.Info{unit.Describe[D, U1](), unit.Describe[D, U2](), unit.Describe[D, U3]()}
	for i, target := range targets {
		if r.Units[i] != target.Symbol {
			return &ErrUnitMismatch{Axis: i, Expected: target.Symbol, Actual: r.Units[i]}
		}
	}

	dst.x = quantity.New[D, U1](T(r.Values[0]))
	dst.y = quantity.New[D, U2](T(r.Values[1]))
	dst.z = quantity.New[D, U3](T(r.Values[2]))
	return nil
}

func decodeAxis(axis int, symbol string, value float64, target unit.Info) (float64, error) {
	if symbol == target.Symbol {
		return value, nil
	}

	src, err := unit.Resolve(symbol)
	if err != nil {
		return 0, &ErrUnitMismatch{Axis: axis, Expected: target.Symbol, Actual: symbol, cause: err}
	}
	if !src.Compatible(target) {
		return 0, &ErrDimensionMismatch{Axis: axis, Expected: target.Dimension, Actual: src.Dimension}
	}
	return value * src.RatioTo(target), nil
}

// String implements fmt.Stringer.
func (r Record) String() string {
	return fmt.Sprintf("(%v %s, %v %s, %v %s)",
		r.Values[0], r.Units[0], r.Values[1], r.Units[1], r.Values[2], r.Units[2])
}
