// package pydict implements the associative map used by generated code.
package pydict

import (
	"fmt"
	"iter"
	"strings"

	"github.com/oilgo/mylib/pyerr"
	"github.com/oilgo/mylib/pylist"
	"github.com/oilgo/mylib/pystr"
	"github.com/oilgo/mylib/pytuple"
)

// Dict maps unique keys to values and remembers insertion order.
// Keys are compared with ==, which is byte-exact for pystr.Str keys.
// Overwriting a key keeps its original position.
type Dict[K comparable, V any] struct {
	pos  map[K]int
	keys []K
	vals []V
}

func New[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{pos: make(map[K]int)}
}

// FromItems builds a Dict from key, value pairs.
// Later pairs overwrite earlier ones.
func FromItems[K comparable, V any](items ...pytuple.Tuple2[K, V]) *Dict[K, V] {
	d := New[K, V]()
	for _, item := range items {
		d.Set(item.At0(), item.At1())
	}
	return d
}

func (d *Dict[K, V]) Len() int {
	return len(d.keys)
}

// Get returns the value for k, raising KeyError if k is absent.
func (d *Dict[K, V]) Get(k K) V {
	v, ok := d.Lookup(k)
	if !ok {
		raiseKeyError(k)
	}
	return v
}

// GetOr returns the value for k, or def if k is absent.
func (d *Dict[K, V]) GetOr(k K, def V) V {
	if v, ok := d.Lookup(k); ok {
		return v
	}
	return def
}

func (d *Dict[K, V]) Lookup(k K) (V, bool) {
	i, ok := d.pos[k]
	if !ok {
		var zero V
		return zero, false
	}
	return d.vals[i], true
}

func (d *Dict[K, V]) Contains(k K) bool {
	_, ok := d.pos[k]
	return ok
}

// Set inserts or overwrites the value for k.
func (d *Dict[K, V]) Set(k K, v V) {
	if i, ok := d.pos[k]; ok {
		d.vals[i] = v
		return
	}
	d.pos[k] = len(d.keys)
	d.keys = append(d.keys, k)
	d.vals = append(d.vals, v)
}

// Delete removes k, raising KeyError if it is absent.
func (d *Dict[K, V]) Delete(k K) {
	i, ok := d.pos[k]
	if !ok {
		raiseKeyError(k)
	}
	delete(d.pos, k)
	copy(d.keys[i:], d.keys[i+1:])
	copy(d.vals[i:], d.vals[i+1:])
	last := len(d.keys) - 1
	var zk K
	var zv V
	d.keys[last], d.vals[last] = zk, zv
	d.keys, d.vals = d.keys[:last], d.vals[:last]
	for j := i; j < len(d.keys); j++ {
		d.pos[d.keys[j]] = j
	}
}

func (d *Dict[K, V]) Clear() {
	clear(d.pos)
	clear(d.keys)
	clear(d.vals)
	d.keys, d.vals = d.keys[:0], d.vals[:0]
}

// Keys returns a new List of the keys in insertion order.
func (d *Dict[K, V]) Keys() *pylist.List[K] {
	return pylist.New(d.keys...)
}

// Values returns a new List of the values in insertion order.
func (d *Dict[K, V]) Values() *pylist.List[V] {
	return pylist.New(d.vals...)
}

// Items returns a new List of key, value pairs in insertion order.
func (d *Dict[K, V]) Items() *pylist.List[pytuple.Tuple2[K, V]] {
	out := pylist.WithCap[pytuple.Tuple2[K, V]](len(d.keys))
	for i := range d.keys {
		out.Append(pytuple.New2(d.keys[i], d.vals[i]))
	}
	return out
}

// All iterates over key, value pairs in insertion order.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < len(d.keys); i++ {
			if !yield(d.keys[i], d.vals[i]) {
				return
			}
		}
	}
}

// AnyItems is All with the key and value types erased.
// pystr.ReprOf uses it to print a Dict of any key and value types.
func (d *Dict[K, V]) AnyItems() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for k, v := range d.All() {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (d *Dict[K, V]) Iter() *DictIter[K, V] {
	return &DictIter[K, V]{d: d}
}

func (d *Dict[K, V]) String() string {
	sb := strings.Builder{}
	sb.WriteString("{")
	for i := range d.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", d.keys[i], d.vals[i])
	}
	sb.WriteString("}")
	return sb.String()
}

// DictIter walks a Dict in insertion order.
// Mutating the Dict while a DictIter is live is the caller's responsibility.
type DictIter[K comparable, V any] struct {
	d *Dict[K, V]
	i int
}

func (it *DictIter[K, V]) Next() {
	it.i++
}

func (it *DictIter[K, V]) Done() bool {
	return it.i >= len(it.d.keys)
}

// Key returns the current key. It raises IndexError when Done.
func (it *DictIter[K, V]) Key() K {
	it.check()
	return it.d.keys[it.i]
}

// Value returns the current value. It raises IndexError when Done.
func (it *DictIter[K, V]) Value() V {
	it.check()
	return it.d.vals[it.i]
}

func (it *DictIter[K, V]) check() {
	if it.Done() {
		pyerr.Raise(&pyerr.IndexError{What: "dict iterator", Index: it.i, Len: len(it.d.keys)})
	}
}

func raiseKeyError(k any) {
	pyerr.Raise(&pyerr.KeyError{Key: k, KeyRepr: pystr.ReprOf(k).String()})
}
