// package pytuple implements fixed arity heterogeneous records.
// Tuples are immutable: fields are set at construction and read positionally.
package pytuple

import (
	"github.com/oilgo/mylib/internal/pyeq"
	"github.com/oilgo/mylib/pystr"
)

type Tuple2[A, B any] struct {
	a A
	b B
}

func New2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{a: a, b: b}
}

func (t Tuple2[A, B]) At0() A { return t.a }
func (t Tuple2[A, B]) At1() B { return t.b }

// Equal compares field by field, using each field's Equal method when it has one.
func (t Tuple2[A, B]) Equal(o Tuple2[A, B]) bool {
	return pyeq.Equal(t.a, o.a) && pyeq.Equal(t.b, o.b)
}

func (t Tuple2[A, B]) Repr() pystr.Str {
	return repr(t.a, t.b)
}

type Tuple3[A, B, C any] struct {
	a A
	b B
	c C
}

func New3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{a: a, b: b, c: c}
}

func (t Tuple3[A, B, C]) At0() A { return t.a }
func (t Tuple3[A, B, C]) At1() B { return t.b }
func (t Tuple3[A, B, C]) At2() C { return t.c }

func (t Tuple3[A, B, C]) Equal(o Tuple3[A, B, C]) bool {
	return pyeq.Equal(t.a, o.a) && pyeq.Equal(t.b, o.b) && pyeq.Equal(t.c, o.c)
}

func (t Tuple3[A, B, C]) Repr() pystr.Str {
	return repr(t.a, t.b, t.c)
}

type Tuple4[A, B, C, D any] struct {
	a A
	b B
	c C
	d D
}

func New4[A, B, C, D any](a A, b B, c C, d D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{a: a, b: b, c: c, d: d}
}

func (t Tuple4[A, B, C, D]) At0() A { return t.a }
func (t Tuple4[A, B, C, D]) At1() B { return t.b }
func (t Tuple4[A, B, C, D]) At2() C { return t.c }
func (t Tuple4[A, B, C, D]) At3() D { return t.d }

func (t Tuple4[A, B, C, D]) Equal(o Tuple4[A, B, C, D]) bool {
	return pyeq.Equal(t.a, o.a) && pyeq.Equal(t.b, o.b) &&
		pyeq.Equal(t.c, o.c) && pyeq.Equal(t.d, o.d)
}

func (t Tuple4[A, B, C, D]) Repr() pystr.Str {
	return repr(t.a, t.b, t.c, t.d)
}

// repr formats fields as (x, y, ...).
func repr(fields ...any) pystr.Str {
	out := []byte{'('}
	for i, f := range fields {
		if i > 0 {
			out = append(out, ',', ' ')
		}
		out = append(out, pystr.ReprOf(f).String()...)
	}
	out = append(out, ')')
	return pystr.FromBytes(out)
}
