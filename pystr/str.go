// package pystr implements the immutable byte string of the runtime.
//
// A Str is a sequence of bytes with an explicit length. It is not assumed to
// hold UTF-8 and no operation decodes it. Every operation that produces a new
// Str copies: a substring never shares storage with its source.
package pystr

import (
	"bytes"
	"strings"

	"go.brendoncarroll.net/exp/slices2"

	"github.com/oilgo/mylib/internal/pyindex"
	"github.com/oilgo/mylib/pyerr"
	"github.com/oilgo/mylib/pylist"
)

// Str is an immutable byte string.
// The zero value is the empty string. Str is comparable; == is byte-exact equality.
type Str struct {
	s string
}

// New returns a Str with the bytes of x.
func New(x string) Str {
	return Str{s: x}
}

// FromBytes returns a Str holding a copy of b.
func FromBytes(b []byte) Str {
	return Str{s: string(b)}
}

func (s Str) Len() int {
	return len(s.s)
}

// String returns the bytes of s as a Go string.
func (s Str) String() string {
	return s.s
}

// Bytes returns a copy of the bytes of s.
func (s Str) Bytes() []byte {
	return []byte(s.s)
}

// At returns the byte at i, after normalization.
func (s Str) At(i int) byte {
	j, ok := pyindex.Index(i, len(s.s))
	if !ok {
		pyerr.Raise(&pyerr.IndexError{What: "string index", Index: i, Len: len(s.s)})
	}
	return s.s[j]
}

// Index returns s[i] as a one byte Str.
func (s Str) Index(i int) Str {
	return Chr(int(s.At(i)))
}

// SliceFrom returns s[beg:].
func (s Str) SliceFrom(beg int) Str {
	return s.Slice(beg, len(s.s))
}

// Slice returns s[beg:end].
// Bounds outside the string after normalization raise IndexError.
func (s Str) Slice(beg, end int) Str {
	b, e, ok := pyindex.Bounds(beg, end, len(s.s))
	if !ok {
		pyerr.Raise(&pyerr.IndexError{What: "string slice", Index: beg, Len: len(s.s)})
	}
	return Str{s: strings.Clone(s.s[b:e])}
}

// Equal is byte-exact equality.
func (s Str) Equal(other Str) bool {
	return s.s == other.s
}

func (s Str) IsDigit() bool {
	return s.all(isDigit)
}

func (s Str) IsAlpha() bool {
	return s.all(isAlpha)
}

func (s Str) IsSpace() bool {
	return s.all(isSpace)
}

func (s Str) IsUpper() bool {
	return s.all(isUpper)
}

func (s Str) IsLower() bool {
	return s.all(isLower)
}

// all reports whether every byte satisfies pred.
// The empty string never does.
func (s Str) all(pred func(byte) bool) bool {
	if len(s.s) == 0 {
		return false
	}
	for i := 0; i < len(s.s); i++ {
		if !pred(s.s[i]) {
			return false
		}
	}
	return true
}

func (s Str) StartsWith(prefix Str) bool {
	return strings.HasPrefix(s.s, prefix.s)
}

func (s Str) EndsWith(suffix Str) bool {
	return strings.HasSuffix(s.s, suffix.s)
}

// Strip removes leading and trailing whitespace.
func (s Str) Strip() Str {
	return s.LStrip().RStrip()
}

func (s Str) LStrip() Str {
	return s.lstrip(isSpace)
}

func (s Str) RStrip() Str {
	return s.rstrip(isSpace)
}

// StripChars removes leading and trailing bytes found in chars.
func (s Str) StripChars(chars Str) Str {
	in := chars.contains
	return s.lstrip(in).rstrip(in)
}

func (s Str) LStripChars(chars Str) Str {
	return s.lstrip(chars.contains)
}

func (s Str) RStripChars(chars Str) Str {
	return s.rstrip(chars.contains)
}

func (s Str) contains(c byte) bool {
	return strings.IndexByte(s.s, c) >= 0
}

func (s Str) lstrip(drop func(byte) bool) Str {
	i := 0
	for i < len(s.s) && drop(s.s[i]) {
		i++
	}
	return Str{s: strings.Clone(s.s[i:])}
}

func (s Str) rstrip(drop func(byte) bool) Str {
	j := len(s.s)
	for j > 0 && drop(s.s[j-1]) {
		j--
	}
	return Str{s: strings.Clone(s.s[:j])}
}

// SplitLines breaks s at \n, \r and \r\n.
// If keep is true the line terminators are kept on each line.
// A terminator at the very end does not start another line.
func (s Str) SplitLines(keep bool) *pylist.List[Str] {
	out := pylist.New[Str]()
	beg := 0
	for i := 0; i < len(s.s); {
		c := s.s[i]
		if c != '\n' && c != '\r' {
			i++
			continue
		}
		eol := i + 1
		if c == '\r' && eol < len(s.s) && s.s[eol] == '\n' {
			eol++
		}
		if keep {
			out.Append(New(strings.Clone(s.s[beg:eol])))
		} else {
			out.Append(New(strings.Clone(s.s[beg:i])))
		}
		beg, i = eol, eol
	}
	if beg < len(s.s) {
		out.Append(New(strings.Clone(s.s[beg:])))
	}
	return out
}

// Split breaks s at every occurrence of sep.
// An empty sep raises ValueError.
func (s Str) Split(sep Str) *pylist.List[Str] {
	if len(sep.s) == 0 {
		pyerr.Raise(&pyerr.ValueError{Msg: "empty separator"})
	}
	parts := strings.Split(s.s, sep.s)
	return pylist.New(slices2.Map(parts, func(x string) Str {
		return New(strings.Clone(x))
	})...)
}

// Replace substitutes new for every non-overlapping occurrence of old,
// scanning left to right. Replaced text is not rescanned.
// An empty old inserts new before every byte and at the end.
func (s Str) Replace(old, new Str) Str {
	if len(old.s) == 0 {
		var b strings.Builder
		b.Grow(len(s.s) + (len(s.s)+1)*len(new.s))
		for i := 0; i < len(s.s); i++ {
			b.WriteString(new.s)
			b.WriteByte(s.s[i])
		}
		b.WriteString(new.s)
		return Str{s: b.String()}
	}
	return Str{s: strings.ReplaceAll(s.s, old.s, new.s)}
}

// Join concatenates items with s between consecutive elements.
func (s Str) Join(items *pylist.List[Str]) Str {
	switch items.Len() {
	case 0:
		return Str{}
	case 1:
		return items.Index(0)
	}
	var b bytes.Buffer
	for i, item := range items.All() {
		if i > 0 {
			b.WriteString(s.s)
		}
		b.WriteString(item.s)
	}
	return Str{s: b.String()}
}

// Contains is byte-exact substring search.
func (s Str) Contains(needle Str) bool {
	return strings.Contains(s.s, needle.s)
}

// Find returns the offset of the first occurrence of needle, or -1.
func (s Str) Find(needle Str) int {
	return strings.Index(s.s, needle.s)
}

// Count returns the number of non-overlapping occurrences of needle.
func (s Str) Count(needle Str) int {
	if len(needle.s) == 0 {
		return len(s.s) + 1
	}
	return strings.Count(s.s, needle.s)
}

// Upper maps ASCII lower case letters to upper case.
func (s Str) Upper() Str {
	return s.mapBytes(func(c byte) byte {
		if isLower(c) {
			return c - 'a' + 'A'
		}
		return c
	})
}

// Lower maps ASCII upper case letters to lower case.
func (s Str) Lower() Str {
	return s.mapBytes(func(c byte) byte {
		if isUpper(c) {
			return c - 'A' + 'a'
		}
		return c
	})
}

func (s Str) mapBytes(fn func(byte) byte) Str {
	b := []byte(s.s)
	for i := range b {
		b[i] = fn(b[i])
	}
	return Str{s: string(b)}
}

func (s Str) Iter() *StrIter {
	return &StrIter{s: s}
}
