package vecunits

import (
	"fmt"

	"github.com/hupe1980/vecunits/quantity"
	"github.com/hupe1980/vecunits/unit"
)

// Operand is anything that evaluates element-wise into a vector with the
// axis layout (U1, U2, U3): a *Vector3, a Vector3 snapshot, or an Expr.
//
// The Units method carries the layout in the method set, so operands of a
// different layout do not satisfy the interface.
type Operand[T unit.Number, D unit.Dimension, U1 unit.Unit[D], U2 unit.Unit[D], U3 unit.Unit[D]] interface {
	// At returns the raw value of axis i.
	At(i int) T
	// Units returns the axis units.
	Units() (U1, U2, U3)
}

// Op is the operator of an expression node.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Expr is a lazy, non-owning description of left op right.
//
// Building an Expr performs no arithmetic. Values are computed only when the
// expression is indexed with At, materialized with Eval, or assigned with
// Vector3.Assign. A chain such as a.Plus(&b).Minus(&c) is evaluated in a
// single pass: materializing it reads every leaf exactly once per axis and
// computes no intermediate vectors.
//
// Vector operands are copied into the node when it is built, whether they
// are passed by value or by pointer, so later writes to those vectors do not
// reach the expression. Other Operand implementations are held as given.
// Expressions are built with Plus and Minus; the zero Expr has no operands
// and panics when evaluated.
type Expr[T unit.Number, D unit.Dimension, U1 unit.Unit[D], U2 unit.Unit[D], U3 unit.Unit[D]] struct {
	left, right Operand[T, D, U1, U2, U3]
	op          Op
}

// Plus returns the lazy expression v + o.
func (v Vector3[T, D, U1, U2, U3]) Plus(o Operand[T, D, U1, U2, U3]) Expr[T, D, U1, U2, U3] {
	return Expr[T, D, U1, U2, U3]{left: v, right: snapshot(o), op: OpAdd}
}

// Minus returns the lazy expression v - o.
func (v Vector3[T, D, U1, U2, U3]) Minus(o Operand[T, D, U1, U2, U3]) Expr[T, D, U1, U2, U3] {
	return Expr[T, D, U1, U2, U3]{left: v, right: snapshot(o), op: OpSub}
}

// snapshot replaces a *Vector3 operand with a copy of the vector.
func snapshot[T unit.Number, D unit.Dimension, U1, U2, U3 unit.Unit[D]](o Operand[T, D, U1, U2, U3]) Operand[T, D, U1, U2, U3] {
	if p, ok := o.(*Vector3[T, D, U1, U2, U3]); ok && p != nil {
		return *p
	}
	return o
}

// Assign materializes o into v.
//
// All three axes are evaluated before v is written, so o may reference v.
func (v *Vector3[T, D, U1, U2, U3]) Assign(o Operand[T, D, U1, U2, U3]) {
	x, y, z := o.At(0), o.At(1), o.At(2)
	v.x = quantity.New[D, U1](x)
	v.y = quantity.New[D, U2](y)
	v.z = quantity.New[D, U3](z)
}

// Plus returns the lazy expression e + o.
func (e Expr[T, D, U1, U2, U3]) Plus(o Operand[T, D, U1, U2, U3]) Expr[T, D, U1, U2, U3] {
	return Expr[T, D, U1, U2, U3]{left: e, right: snapshot(o), op: OpAdd}
}

// Minus returns the lazy expression e - o.
func (e Expr[T, D, U1, U2, U3]) Minus(o Operand[T, D, U1, U2, U3]) Expr[T, D, U1, U2, U3] {
	return Expr[T, D, U1, U2, U3]{left: e, right: snapshot(o), op: OpSub}
}

// Op returns the operator of the root node.
func (e Expr[T, D, U1, U2, U3]) Op() Op {
	return e.op
}

// At evaluates axis i of the expression, descending through nested nodes.
func (e Expr[T, D, U1, U2, U3]) At(i int) T {
	if e.left == nil || e.right == nil {
		panic("vecunits: evaluating an Expr that was not built with Plus or Minus")
	}
	l, r := e.left.At(i), e.right.At(i)
	if e.op == OpSub {
		return l - r
	}
	return l + r
}

// Units returns the axis units of the expression.
func (e Expr[T, D, U1, U2, U3]) Units() (U1, U2, U3) {
	var (
		u1 U1
		u2 U2
		u3 U3
	)
	return u1, u2, u3
}

// Eval materializes the expression into a new vector.
func (e Expr[T, D, U1, U2, U3]) Eval() Vector3[T, D, U1, U2, U3] {
	var v Vector3[T, D, U1, U2, U3]
	v.Assign(e)
	return v
}
