package pystr

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

const hexDigits = "0123456789abcdef"

// Reprer is implemented by values with a source-language repr.
type Reprer interface {
	Repr() Str
}

// anyValuer is implemented by pylist.List.
type anyValuer interface {
	AnyValues() []any
}

// anyItemer is implemented by pydict.Dict.
type anyItemer interface {
	AnyItems() iter.Seq2[any, any]
}

// Repr returns s quoted the way the source language's repr() quotes byte strings.
func (s Str) Repr() Str {
	return Str{s: string(AppendRepr(nil, s))}
}

// Repr returns s quoted and escaped.
func Repr(s Str) Str {
	return s.Repr()
}

// AppendRepr appends the quoted form of s to dst.
//
// Single quotes are used unless s contains a single quote and no double
// quote. The chosen quote and backslash are escaped, \t \n \r use their
// short escapes, and other bytes outside printable ASCII are written as \xhh.
func AppendRepr(dst []byte, s Str) []byte {
	quote := byte('\'')
	if strings.IndexByte(s.s, '\'') >= 0 && strings.IndexByte(s.s, '"') < 0 {
		quote = '"'
	}
	dst = append(dst, quote)
	for i := 0; i < len(s.s); i++ {
		c := s.s[i]
		switch {
		case c == quote || c == '\\':
			dst = append(dst, '\\', c)
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case !isPrint(c):
			dst = append(dst, '\\', 'x', hexDigits[c>>4], hexDigits[c&0xf])
		default:
			dst = append(dst, c)
		}
	}
	return append(dst, quote)
}

// ReprOf returns the repr of an arbitrary runtime value.
// nil and nil pointers to Str, List or Dict are None.
// Lists and dicts repr each of their elements.
func ReprOf(x any) Str {
	switch x := x.(type) {
	case nil:
		return New("None")
	case *Str:
		if x == nil {
			return New("None")
		}
		return x.Repr()
	case Reprer:
		return x.Repr()
	case anyValuer:
		if isNilPtr(x) {
			return New("None")
		}
		return reprList(x)
	case anyItemer:
		if isNilPtr(x) {
			return New("None")
		}
		return reprDict(x)
	case string:
		return New(x).Repr()
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return StrOf(x)
	default:
		return New(fmt.Sprint(x))
	}
}

// StrOf returns the source language's str() of an arbitrary runtime value.
func StrOf(x any) Str {
	switch x := x.(type) {
	case nil:
		return New("None")
	case Str:
		return x
	case *Str:
		if x == nil {
			return New("None")
		}
		return *x
	case string:
		return New(x)
	case bool:
		if x {
			return New("True")
		}
		return New("False")
	case int:
		return FromInt(x)
	case int8:
		return FromInt(x)
	case int16:
		return FromInt(x)
	case int32:
		return FromInt(x)
	case int64:
		return FromInt(x)
	case uint:
		return FromInt(x)
	case uint8:
		return FromInt(x)
	case uint16:
		return FromInt(x)
	case uint32:
		return FromInt(x)
	case uint64:
		return FromInt(x)
	case anyValuer, anyItemer:
		return ReprOf(x)
	case fmt.Stringer:
		return New(x.String())
	case Reprer:
		return x.Repr()
	default:
		return New(fmt.Sprint(x))
	}
}

// reprList formats a list as [x, y, ...].
func reprList(l anyValuer) Str {
	out := []byte{'['}
	for i, v := range l.AnyValues() {
		if i > 0 {
			out = append(out, ',', ' ')
		}
		out = append(out, ReprOf(v).s...)
	}
	out = append(out, ']')
	return Str{s: string(out)}
}

// reprDict formats a dict as {k: v, ...} in iteration order.
func reprDict(d anyItemer) Str {
	out := []byte{'{'}
	first := true
	for k, v := range d.AnyItems() {
		if !first {
			out = append(out, ',', ' ')
		}
		first = false
		out = append(out, ReprOf(k).s...)
		out = append(out, ':', ' ')
		out = append(out, ReprOf(v).s...)
	}
	out = append(out, '}')
	return Str{s: string(out)}
}

func isNilPtr(x any) bool {
	v := reflect.ValueOf(x)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
