package pystr

import "github.com/oilgo/mylib/pyerr"

// StrIter walks the bytes of a Str.
// Next may run past the end; check Done before calling Value.
type StrIter struct {
	s Str
	i int
}

func (it *StrIter) Next() {
	it.i++
}

func (it *StrIter) Done() bool {
	return it.i >= len(it.s.s)
}

// Value returns the current byte as a one byte Str.
// It raises IndexError when Done.
func (it *StrIter) Value() Str {
	if it.Done() {
		pyerr.Raise(&pyerr.IndexError{What: "string iterator", Index: it.i, Len: len(it.s.s)})
	}
	return Chr(int(it.s.s[it.i]))
}
