package vecunits

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/vecunits/quantity"
	"github.com/hupe1980/vecunits/testutil"
	"github.com/hupe1980/vecunits/unit"
)

// countingOperand records how often each axis is read.
type countingOperand struct {
	v     mixed
	reads *[3]int
}

func (c countingOperand) At(i int) float64 {
	c.reads[i]++
	return c.v.At(i)
}

func (c countingOperand) Units() (unit.Meter, unit.Centimeter, unit.Foot) {
	return c.v.Units()
}

func TestExprEval(t *testing.T) {
	a := newMixed(1, 2, 3)
	b := newMixed(4, 5, 6)
	c := newMixed(0.5, 0.5, 0.5)

	t.Run("Sum", func(t *testing.T) {
		assert.Equal(t, [3]float64{5, 7, 9}, a.Plus(&b).Eval().Raw())
	})

	t.Run("Chain", func(t *testing.T) {
		e := a.Plus(&b).Minus(&c)
		assert.Equal(t, OpSub, e.Op())
		assert.Equal(t, [3]float64{4.5, 6.5, 8.5}, e.Eval().Raw())
	})

	t.Run("NestedRight", func(t *testing.T) {
		// a - (b - c)
		e := a.Minus(b.Minus(&c))
		assert.Equal(t, [3]float64{-2.5, -2.5, -2.5}, e.Eval().Raw())
	})

	t.Run("At", func(t *testing.T) {
		e := a.Plus(&b)
		assert.Equal(t, 7.0, e.At(1))
		assert.Panics(t, func() { e.At(3) })
	})

	t.Run("Units", func(t *testing.T) {
		u1, u2, u3 := a.Plus(&b).Units()
		assert.Equal(t, "m", u1.Symbol())
		assert.Equal(t, "cm", u2.Symbol())
		assert.Equal(t, "ft", u3.Symbol())
	})
}

func TestExprIsLazy(t *testing.T) {
	a := newMixed(1, 2, 3)
	var rb, rc, rd [3]int
	b := countingOperand{v: newMixed(4, 5, 6), reads: &rb}
	c := countingOperand{v: newMixed(7, 8, 9), reads: &rc}
	d := countingOperand{v: newMixed(1, 1, 1), reads: &rd}

	e := a.Plus(b).Minus(c).Plus(d)
	for _, reads := range []*[3]int{&rb, &rc, &rd} {
		assert.Equal(t, [3]int{0, 0, 0}, *reads, "building an expression evaluates nothing")
	}

	r := e.Eval()
	assert.Equal(t, [3]float64{-1, 0, 1}, r.Raw())
	for _, reads := range []*[3]int{&rb, &rc, &rd} {
		assert.Equal(t, [3]int{1, 1, 1}, *reads, "each leaf is read once per axis")
	}
}

func TestExprSnapshotsOperands(t *testing.T) {
	tests := []struct {
		name  string
		build func(a, b *mixed) Expr[float64, unit.Length, unit.Meter, unit.Centimeter, unit.Foot]
	}{
		{"Pointer", func(a, b *mixed) Expr[float64, unit.Length, unit.Meter, unit.Centimeter, unit.Foot] { return a.Plus(b) }},
		{"Value", func(a, b *mixed) Expr[float64, unit.Length, unit.Meter, unit.Centimeter, unit.Foot] { return a.Plus(*b) }},
		{"Nested", func(a, b *mixed) Expr[float64, unit.Length, unit.Meter, unit.Centimeter, unit.Foot] {
			return a.Plus(b).Minus(b).Plus(b)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newMixed(1, 2, 3)
			b := newMixed(4, 5, 6)

			e := tt.build(&a, &b)
			a.SetX(quantity.New[unit.Length, unit.Meter](100.0))
			b = newMixed(10, 10, 10)

			assert.Equal(t, [3]float64{5, 7, 9}, e.Eval().Raw())
		})
	}
}

func TestZeroExprPanics(t *testing.T) {
	var e Expr[float64, unit.Length, unit.Meter, unit.Centimeter, unit.Foot]
	assert.PanicsWithValue(t, "vecunits: evaluating an Expr that was not built with Plus or Minus", func() { e.At(0) })
	assert.Panics(t, func() { e.Eval() })
}

func TestAssign(t *testing.T) {
	a := newMixed(1, 2, 3)
	b := newMixed(4, 5, 6)

	a.Assign(a.Plus(&b))
	assert.Equal(t, [3]float64{5, 7, 9}, a.Raw())

	var dst mixed
	dst.Assign(&b)
	assert.Equal(t, b, dst)
}

func TestLazyMatchesEager(t *testing.T) {
	rng := testutil.NewRNG(4711)
	triples := rng.Triples(400, -1e4, 1e4)

	for i := 0; i < len(triples); i += 4 {
		a := newMixed(triples[i][0], triples[i][1], triples[i][2])
		b := newMixed(triples[i+1][0], triples[i+1][1], triples[i+1][2])
		c := newMixed(triples[i+2][0], triples[i+2][1], triples[i+2][2])
		d := newMixed(triples[i+3][0], triples[i+3][1], triples[i+3][2])

		lazy := a.Plus(&b).Minus(&c).Plus(&d).Eval()
		eager := Combine(Difference(Combine(a, b), c), d)
		assert.Equal(t, eager.Raw(), lazy.Raw())

		roundTrip := a.Plus(&b).Minus(&b).Eval()
		assertRawInDelta(t, a.Raw(), roundTrip.Raw(), 1e-9)
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "+", OpAdd.String())
	assert.Equal(t, "-", OpSub.String())
	assert.Equal(t, "Op(9)", Op(9).String())
}

func BenchmarkExprEval(b *testing.B) {
	x := newMixed(1, 2, 3)
	y := newMixed(4, 5, 6)
	z := newMixed(7, 8, 9)

	b.ReportAllocs()
	var sink mixed
	for b.Loop() {
		sink.Assign(x.Plus(&y).Minus(&z).Plus(&x))
	}
	_ = sink
}

func BenchmarkEagerCombine(b *testing.B) {
	x := newMixed(1, 2, 3)
	y := newMixed(4, 5, 6)
	z := newMixed(7, 8, 9)

	b.ReportAllocs()
	var sink mixed
	for b.Loop() {
		sink = Combine(Difference(Combine(x, y), z), x)
	}
	_ = sink
}
