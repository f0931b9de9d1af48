// package pyerr defines the exception kinds raised by the runtime.
//
// Operations which the source language reports with an exception raise by
// panicking with one of the error types in this package.  Generated code
// recovers them at a handling point with Try.
package pyerr

import (
	"errors"
	"fmt"
)

// Kind identifies an exception kind.
type Kind int

const (
	KindIndex Kind = iota
	KindKey
	KindEOF
	KindNotImplemented
	KindAssertion
	KindValue
	KindType
)

func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "IndexError"
	case KindKey:
		return "KeyError"
	case KindEOF:
		return "EOFError"
	case KindNotImplemented:
		return "NotImplementedError"
	case KindAssertion:
		return "AssertionError"
	case KindValue:
		return "ValueError"
	case KindType:
		return "TypeError"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Exception is implemented by every error type in this package.
type Exception interface {
	error
	Kind() Kind
}

type IndexError struct {
	// What names the operation, e.g. "string index" or "pop from empty list"
	What  string
	Index int
	Len   int
}

func (e *IndexError) Kind() Kind { return KindIndex }

func (e *IndexError) Error() string {
	return fmt.Sprintf("IndexError: %s out of range (index=%d len=%d)", e.What, e.Index, e.Len)
}

type KeyError struct {
	Key     any
	// KeyRepr is the source-language repr of Key, if known
	KeyRepr string
}

func (e *KeyError) Kind() Kind { return KindKey }

func (e *KeyError) Error() string {
	if e.KeyRepr != "" {
		return "KeyError: " + e.KeyRepr
	}
	return fmt.Sprintf("KeyError: %v", e.Key)
}

type EOFError struct{}

func (e *EOFError) Kind() Kind { return KindEOF }

func (e *EOFError) Error() string {
	return "EOFError"
}

type NotImplementedError struct {
	What string
}

func (e *NotImplementedError) Kind() Kind { return KindNotImplemented }

func (e *NotImplementedError) Error() string {
	if e.What == "" {
		return "NotImplementedError"
	}
	return "NotImplementedError: " + e.What
}

// AssertionError is an internal invariant violation.
// Msg is optional.
type AssertionError struct {
	Msg string
}

func (e *AssertionError) Kind() Kind { return KindAssertion }

func (e *AssertionError) Error() string {
	if e.Msg == "" {
		return "AssertionError"
	}
	return "AssertionError: " + e.Msg
}

type ValueError struct {
	Msg string
}

func (e *ValueError) Kind() Kind { return KindValue }

func (e *ValueError) Error() string {
	return "ValueError: " + e.Msg
}

type TypeError struct {
	Msg string
}

func (e *TypeError) Kind() Kind { return KindType }

func (e *TypeError) Error() string {
	return "TypeError: " + e.Msg
}

// Raise signals exc to the nearest enclosing Try.
func Raise(exc Exception) {
	panic(exc)
}

// Assert raises an AssertionError carrying msg if cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		Raise(&AssertionError{Msg: msg})
	}
}

// Try calls fn and returns any Exception it raised.
// Panics which are not Exceptions are propagated unchanged.
func Try(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if exc, ok := r.(Exception); ok {
			err = exc
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

// KindOf returns the Kind of the Exception in err's chain.
func KindOf(err error) (Kind, bool) {
	var exc Exception
	if errors.As(err, &exc) {
		return exc.Kind(), true
	}
	return 0, false
}

// Is reports whether err carries an Exception of kind k.
func Is(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}
