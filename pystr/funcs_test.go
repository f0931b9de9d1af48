package pystr_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oilgo/mylib/pydict"
	"github.com/oilgo/mylib/pyerr"
	"github.com/oilgo/mylib/pylist"
	"github.com/oilgo/mylib/pystr"
	"github.com/oilgo/mylib/pytuple"
)

func TestEquals(t *testing.T) {
	t.Parallel()
	xs := testStrings()
	for i := range xs {
		for j := range xs {
			if i == j {
				assert.True(t, pystr.Equals(xs[i], xs[j]))
			} else {
				assert.False(t, pystr.Equals(xs[i], xs[j]), "%q %q", xs[i], xs[j])
			}
			assert.Equal(t, pystr.Equals(xs[i], xs[j]), pystr.Equals(xs[j], xs[i]))
		}
	}
	assert.False(t, pystr.Equals(s("ab"), s("abc")))
}

func TestMaybeEquals(t *testing.T) {
	t.Parallel()
	a, b, c := s("x"), s("x"), s("y")
	assert.True(t, pystr.MaybeEquals(nil, nil))
	assert.False(t, pystr.MaybeEquals(nil, &a))
	assert.False(t, pystr.MaybeEquals(&a, nil))
	assert.True(t, pystr.MaybeEquals(&a, &b))
	assert.False(t, pystr.MaybeEquals(&a, &c))
}

func TestConcatRepeat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, s("foobar"), pystr.Concat(s("foo"), s("bar")))
	assert.Equal(t, s("foo"), pystr.Concat(s("foo"), s("")))
	assert.Equal(t, s(""), pystr.Repeat(s("ab"), 0))
	assert.Equal(t, s(""), pystr.Repeat(s("ab"), -3))
	assert.Equal(t, s("ababab"), pystr.Repeat(s("ab"), 3))
	assert.Equal(t, s("   "), pystr.Repeat(s(" "), uint8(3)))
}

func TestRepeatTooLong(t *testing.T) {
	t.Parallel()
	tcs := []func(){
		func() { pystr.Repeat(s("a"), uint64(math.MaxUint64)) },
		func() { pystr.Repeat(s("a"), uint(math.MaxInt)+1) },
		func() { pystr.Repeat(s("ab"), math.MaxInt/2+1) },
	}
	for i, fn := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			err := pyerr.Try(fn)
			require.True(t, pyerr.Is(err, pyerr.KindValue), "%v", err)
		})
	}
	assert.Equal(t, s(""), pystr.Repeat(s(""), uint64(math.MaxUint64)))
}

func TestChrOrd(t *testing.T) {
	t.Parallel()
	require.Equal(t, s("A"), pystr.Chr(65))
	require.Equal(t, s("\x00"), pystr.Chr(0))
	require.Equal(t, 255, pystr.Ord(pystr.Chr(255)))
	err := pyerr.Try(func() { pystr.Chr(256) })
	require.True(t, pyerr.Is(err, pyerr.KindValue))
	err = pyerr.Try(func() { pystr.Ord(s("ab")) })
	require.True(t, pyerr.Is(err, pyerr.KindType))
}

func TestFromInt(t *testing.T) {
	t.Parallel()
	assert.Equal(t, s("-7"), pystr.FromInt(-7))
	assert.Equal(t, s("0"), pystr.FromInt(0))
	assert.Equal(t, s("42"), pystr.FromInt(int8(42)))
	assert.Equal(t, s("-2147483648"), pystr.FromInt(int32(math.MinInt32)))
	assert.Equal(t, s("-9223372036854775808"), pystr.FromInt(int64(math.MinInt64)))
	assert.Equal(t, s("18446744073709551615"), pystr.FromInt(uint64(math.MaxUint64)))
	assert.Equal(t, s("255"), pystr.FromInt(uint8(255)))
}

func TestParseInt(t *testing.T) {
	t.Parallel()
	good := map[string]int{
		"0":      0,
		"42":     42,
		"-42":    -42,
		"+7":     7,
		"  12\n": 12,
	}
	for in, want := range good {
		got, err := pystr.ParseInt(s(in))
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
		require.Equal(t, want, pystr.ToInt(s(in)))
	}
	for i, in := range []string{"", "  ", "1.5", "0x10", "1_000", "abc", "99999999999999999999999"} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := pystr.ParseInt(s(in))
			require.True(t, pyerr.Is(err, pyerr.KindValue))
			err = pyerr.Try(func() { pystr.ToInt(s(in)) })
			require.True(t, pyerr.Is(err, pyerr.KindValue))
		})
	}
}

func TestRepr(t *testing.T) {
	t.Parallel()
	tcs := map[string]string{
		"":         `''`,
		"abc":      `'abc'`,
		"it's":     `"it's"`,
		`say "hi"`: `'say "hi"'`,
		`'"`:       `'\'"'`,
		"a\\b":     `'a\\b'`,
		"\t\n\r":   `'\t\n\r'`,
		"\x00\x7f": `'\x00\x7f'`,
		"\xff\x1b": `'\xff\x1b'`,
	}
	for in, want := range tcs {
		assert.Equal(t, want, pystr.Repr(s(in)).String(), "repr(%q)", in)
	}
}

func TestReprOfStrOf(t *testing.T) {
	t.Parallel()
	x := s("a")
	var none *pystr.Str
	assert.Equal(t, s("None"), pystr.ReprOf(nil))
	assert.Equal(t, s("None"), pystr.ReprOf(none))
	assert.Equal(t, s("'a'"), pystr.ReprOf(x))
	assert.Equal(t, s("'a'"), pystr.ReprOf(&x))
	assert.Equal(t, s("True"), pystr.ReprOf(true))
	assert.Equal(t, s("-3"), pystr.ReprOf(-3))

	assert.Equal(t, s("None"), pystr.StrOf(none))
	assert.Equal(t, s("a"), pystr.StrOf(x))
	assert.Equal(t, s("a"), pystr.StrOf(&x))
	assert.Equal(t, s("False"), pystr.StrOf(false))
	assert.Equal(t, s("12"), pystr.StrOf(uint16(12)))
}

func TestReprOfContainers(t *testing.T) {
	t.Parallel()
	l := pylist.New(s("a"), s("it's"))
	assert.Equal(t, `['a', "it's"]`, pystr.ReprOf(l).String())
	assert.Equal(t, `['a', "it's"]`, pystr.StrOf(l).String())
	assert.Equal(t, "[]", pystr.ReprOf(pylist.New[int]()).String())
	assert.Equal(t, "[[1, 2], []]", pystr.ReprOf(pylist.New(pylist.New(1, 2), pylist.New[int]())).String())

	d := pydict.New[pystr.Str, int]()
	d.Set(s("x"), 1)
	d.Set(s("y"), 2)
	assert.Equal(t, "{'x': 1, 'y': 2}", pystr.ReprOf(d).String())
	assert.Equal(t, "{'x': 1, 'y': 2}", pystr.StrOf(d).String())
	assert.Equal(t, "{}", pystr.ReprOf(pydict.New[int, int]()).String())

	tup := pytuple.New2(s("k"), pylist.New(s("a"), s("b")))
	assert.Equal(t, "('k', ['a', 'b'])", tup.Repr().String())

	var nl *pylist.List[int]
	var nd *pydict.Dict[int, int]
	assert.Equal(t, "None", pystr.ReprOf(nl).String())
	assert.Equal(t, "None", pystr.StrOf(nd).String())
}
