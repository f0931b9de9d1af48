package pyio

import (
	"fmt"
	"strings"

	"github.com/oilgo/mylib/pyerr"
	"github.com/oilgo/mylib/pystr"
)

// Format implements the source language's format % args for %s, %d, %r and %%.
// A substitution may carry a '-' flag and a decimal width.
//
// Like a compiled format function it clears the shared Buf, appends each
// literal and substitution, and returns a snapshot. Arguments whose
// conversion could itself format are converted before the buffer is taken.
//
// Argument count mismatches raise TypeError; malformed formats raise ValueError.
func Format(format string, args ...any) pystr.Str {
	parts := parseFormat(format)
	var n int
	for _, p := range parts {
		if p.verb != 0 {
			n++
		}
	}
	switch {
	case len(args) < n:
		pyerr.Raise(&pyerr.TypeError{Msg: "not enough arguments for format string"})
	case len(args) > n:
		pyerr.Raise(&pyerr.TypeError{Msg: "not all arguments converted during string formatting"})
	}

	emits := make([]func(*BufWriter), 0, len(parts))
	var ai int
	for _, p := range parts {
		if p.verb == 0 {
			lit := p.lit
			emits = append(emits, func(b *BufWriter) { b.WriteConst(lit) })
			continue
		}
		emits = append(emits, p.emitter(args[ai]))
		ai++
	}

	b := Buf()
	b.Clear()
	for _, emit := range emits {
		emit(b)
	}
	return b.GetValue()
}

type formatPart struct {
	verb  byte // 0 for literal parts
	lit   string
	width int
	left  bool
}

func parseFormat(format string) []formatPart {
	var parts []formatPart
	for i := 0; i < len(format); {
		j := strings.IndexByte(format[i:], '%')
		if j < 0 {
			parts = append(parts, formatPart{lit: format[i:]})
			break
		}
		if j > 0 {
			parts = append(parts, formatPart{lit: format[i : i+j]})
		}
		k := i + j + 1
		if k < len(format) && format[k] == '%' {
			parts = append(parts, formatPart{lit: "%"})
			i = k + 1
			continue
		}
		var p formatPart
		if k < len(format) && format[k] == '-' {
			p.left = true
			k++
		}
		for k < len(format) && format[k] >= '0' && format[k] <= '9' {
			p.width = p.width*10 + int(format[k]-'0')
			k++
		}
		if k >= len(format) {
			pyerr.Raise(&pyerr.ValueError{Msg: "incomplete format"})
		}
		switch c := format[k]; c {
		case 's', 'd', 'r':
			p.verb = c
		default:
			pyerr.Raise(&pyerr.ValueError{Msg: fmt.Sprintf("unsupported format character '%c' (0x%x) at index %d", c, c, k)})
		}
		parts = append(parts, p)
		i = k + 1
	}
	return parts
}

// emitter converts x for p and returns the function that appends it.
func (p formatPart) emitter(x any) func(*BufWriter) {
	if p.width == 0 {
		switch x := x.(type) {
		case int:
			if p.verb == 'd' {
				return func(b *BufWriter) { b.FormatD(x) }
			}
		case pystr.Str:
			switch p.verb {
			case 's':
				return func(b *BufWriter) { b.FormatS(x) }
			case 'r':
				return func(b *BufWriter) { b.FormatR(x) }
			}
		}
	}
	var s pystr.Str
	switch p.verb {
	case 'd':
		s = formatInt(x)
	case 's':
		s = pystr.StrOf(x)
	case 'r':
		s = pystr.ReprOf(x)
	}
	s = pad(s, p.width, p.left)
	return func(b *BufWriter) { b.FormatS(s) }
}

func formatInt(x any) pystr.Str {
	switch x := x.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return pystr.StrOf(x)
	case bool:
		if x {
			return pystr.New("1")
		}
		return pystr.New("0")
	}
	pyerr.Raise(&pyerr.TypeError{Msg: "%d format: a number is required, not " + typeName(x)})
	panic("unreachable")
}

func typeName(x any) string {
	switch x := x.(type) {
	case nil:
		return "NoneType"
	case *pystr.Str:
		if x == nil {
			return "NoneType"
		}
		return "str"
	case pystr.Str, string:
		return "str"
	}
	return fmt.Sprintf("%T", x)
}

func pad(s pystr.Str, width int, left bool) pystr.Str {
	n := width - s.Len()
	if n <= 0 {
		return s
	}
	spaces := pystr.Repeat(pystr.New(" "), n)
	if left {
		return pystr.Concat(s, spaces)
	}
	return pystr.Concat(spaces, s)
}
