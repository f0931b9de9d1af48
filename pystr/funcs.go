package pystr

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/oilgo/mylib/pyerr"
)

// Concat returns a + b.
func Concat(a, b Str) Str {
	return Str{s: a.s + b.s}
}

// Repeat returns n copies of s. n <= 0 yields the empty string.
// A result longer than the largest int raises ValueError.
func Repeat[N constraints.Integer](s Str, n N) Str {
	if n <= 0 || len(s.s) == 0 {
		return Str{}
	}
	if uint64(n) > uint64(math.MaxInt/len(s.s)) {
		pyerr.Raise(&pyerr.ValueError{Msg: "repeated string is too long"})
	}
	return Str{s: strings.Repeat(s.s, int(n))}
}

// Equals is byte-exact equality.
func Equals(a, b Str) bool {
	return a.s == b.s
}

// MaybeEquals compares optional strings. nil is equal only to nil.
func MaybeEquals(a, b *Str) bool {
	if a == nil || b == nil {
		return a == b
	}
	return Equals(*a, *b)
}

// Chr returns the one byte string holding i.
// i outside [0, 255] raises ValueError.
func Chr(i int) Str {
	if i < 0 || i > 0xff {
		pyerr.Raise(&pyerr.ValueError{Msg: "chr() arg not in range(256)"})
	}
	return Str{s: string([]byte{byte(i)})}
}

// Ord returns the byte of a one byte string.
func Ord(s Str) int {
	if len(s.s) != 1 {
		pyerr.Raise(&pyerr.TypeError{Msg: "ord() expected a character, but string of length " + strconv.Itoa(len(s.s)) + " found"})
	}
	return int(s.s[0])
}

// FromInt returns the decimal form of i, with a leading '-' if negative.
func FromInt[I constraints.Integer](i I) Str {
	return Str{s: string(AppendInt(nil, i))}
}

// AppendInt appends the decimal form of i to dst.
func AppendInt[I constraints.Integer](dst []byte, i I) []byte {
	if isSigned[I]() {
		return strconv.AppendInt(dst, int64(i), 10)
	}
	return strconv.AppendUint(dst, uint64(i), 10)
}

func isSigned[I constraints.Integer]() bool {
	var zero I
	return zero-1 < 0
}

// ParseInt parses a decimal integer with an optional sign.
// Surrounding whitespace is ignored.
func ParseInt(s Str) (int, error) {
	x := s.Strip().s
	n, err := strconv.ParseInt(x, 10, strconv.IntSize)
	if err != nil {
		return 0, &pyerr.ValueError{Msg: "invalid literal for int() with base 10: " + Repr(s).s}
	}
	return int(n), nil
}

// ToInt is the source language's int(s). Failure raises ValueError.
func ToInt(s Str) int {
	n, err := ParseInt(s)
	if err != nil {
		pyerr.Raise(err.(*pyerr.ValueError))
	}
	return n
}
