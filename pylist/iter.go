package pylist

// ListIter walks a List from front to back.
//
// Done compares against the List's current length on every call, so
// appending during iteration extends the walk. Mutating the List while a
// ListIter is live is the caller's responsibility.
type ListIter[T any] struct {
	l *List[T]
	i int
}

func (it *ListIter[T]) Next() {
	it.i++
}

func (it *ListIter[T]) Done() bool {
	return it.i >= len(it.l.vs)
}

// Value returns the current element. It raises IndexError when Done.
func (it *ListIter[T]) Value() T {
	return it.l.Index(it.i)
}
