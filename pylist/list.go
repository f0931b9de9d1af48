// package pylist implements the growable, indexable sequence used by generated code.
package pylist

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/oilgo/mylib/internal/pyeq"
	"github.com/oilgo/mylib/internal/pyindex"
	"github.com/oilgo/mylib/pyerr"
)

// List is an ordered collection of values, all the same type, accessed by index.
// Negative indices count from the end.
// A List owns its backing storage; slicing copies.
type List[T any] struct {
	vs []T
}

// New returns a List holding a copy of vs.
func New[T any](vs ...T) *List[T] {
	return &List[T]{vs: slices.Clone(vs)}
}

// WithCap returns an empty List with room for n elements.
func WithCap[T any](n int) *List[T] {
	return &List[T]{vs: make([]T, 0, n)}
}

func (l *List[T]) Len() int {
	return len(l.vs)
}

// Index returns the element at i, raising IndexError if i is out of range.
func (l *List[T]) Index(i int) T {
	return *l.Ref(i)
}

// Get is Index without the exception.
func (l *List[T]) Get(i int) (T, bool) {
	j, ok := pyindex.Index(i, len(l.vs))
	if !ok {
		var zero T
		return zero, false
	}
	return l.vs[j], true
}

// Ref returns a pointer to the element at i for in-place assignment.
// The pointer is invalidated by any operation that grows or shrinks the List.
func (l *List[T]) Ref(i int) *T {
	j, ok := pyindex.Index(i, len(l.vs))
	if !ok {
		pyerr.Raise(&pyerr.IndexError{What: "list index", Index: i, Len: len(l.vs)})
	}
	return &l.vs[j]
}

// SetIndex performs l[i] = v.
func (l *List[T]) SetIndex(i int, v T) {
	*l.Ref(i) = v
}

// SliceFrom returns l[beg:].
func (l *List[T]) SliceFrom(beg int) *List[T] {
	return l.Slice(beg, len(l.vs))
}

// Slice returns a new List holding l[beg:end].
func (l *List[T]) Slice(beg, end int) *List[T] {
	b, e, ok := pyindex.Bounds(beg, end, len(l.vs))
	if !ok {
		pyerr.Raise(&pyerr.IndexError{What: fmt.Sprintf("list slice [%d:%d]", beg, end), Index: beg, Len: len(l.vs)})
	}
	return New(l.vs[b:e]...)
}

func (l *List[T]) Append(v T) {
	l.vs = append(l.vs, v)
}

// Extend appends every element of other.
func (l *List[T]) Extend(other *List[T]) {
	l.vs = append(l.vs, other.vs...)
}

// Insert places v before index i.
// Like the source language, i is clamped to the List rather than checked.
func (l *List[T]) Insert(i int, v T) {
	i = max(0, min(pyindex.Normalize(i, len(l.vs)), len(l.vs)))
	l.vs = slices.Insert(l.vs, i, v)
}

// Pop removes and returns the last element.
func (l *List[T]) Pop() T {
	if len(l.vs) == 0 {
		pyerr.Raise(&pyerr.IndexError{What: "pop from empty list", Index: -1, Len: 0})
	}
	last := len(l.vs) - 1
	v := l.vs[last]
	var zero T
	l.vs[last] = zero
	l.vs = l.vs[:last]
	return v
}

// PopAt removes and returns the element at i.
func (l *List[T]) PopAt(i int) T {
	j, ok := pyindex.Index(i, len(l.vs))
	if !ok {
		pyerr.Raise(&pyerr.IndexError{What: "pop index", Index: i, Len: len(l.vs)})
	}
	v := l.vs[j]
	l.vs = slices.Delete(l.vs, j, j+1)
	return v
}

// Clear removes all elements, keeping the allocation.
func (l *List[T]) Clear() {
	clear(l.vs)
	l.vs = l.vs[:0]
}

func (l *List[T]) Reverse() {
	slices.Reverse(l.vs)
}

// Sort sorts the List in place. The sort is stable.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	slices.SortStableFunc(l.vs, cmp)
}

// Contains reports whether needle is an element of l.
// Elements are compared with an Equal(T) bool method when T has one,
// and with == otherwise. Elements == cannot compare raise TypeError.
func (l *List[T]) Contains(needle T) bool {
	return l.Find(needle) >= 0
}

// Find returns the position of the first element equal to needle, or -1.
func (l *List[T]) Find(needle T) int {
	for i := range l.vs {
		if pyeq.Equal(l.vs[i], needle) {
			return i
		}
	}
	return -1
}

// Equal reports whether l and other hold equal elements in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	if l == nil || other == nil {
		return l == other
	}
	return slices.EqualFunc(l.vs, other.vs, pyeq.Equal[T])
}

// Values returns a copy of the elements.
func (l *List[T]) Values() []T {
	return slices.Clone(l.vs)
}

// All iterates over the index, element pairs.
// The bounds are re-read on every step, see ListIter.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(l.vs); i++ {
			if !yield(i, l.vs[i]) {
				return
			}
		}
	}
}

// AnyValues returns the elements as untyped values.
// pystr.ReprOf uses it to print a List of any element type.
func (l *List[T]) AnyValues() []any {
	out := make([]any, len(l.vs))
	for i, v := range l.vs {
		out[i] = v
	}
	return out
}

func (l *List[T]) Iter() *ListIter[T] {
	return &ListIter[T]{l: l}
}

func (l *List[T]) String() string {
	sb := strings.Builder{}
	sb.WriteString("[")
	for i := range l.vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", l.vs[i])
	}
	sb.WriteString("]")
	return sb.String()
}
