// package pyeq implements value equality for the runtime's containers.
package pyeq

import (
	"fmt"
	"reflect"

	"github.com/oilgo/mylib/pyerr"
)

// Equal compares a and b.
// Values with an Equal(T) bool method are compared with it, everything else with ==.
// Values that == cannot compare, such as slices, raise TypeError.
func Equal[T any](a, b T) bool {
	if e, ok := any(a).(interface{ Equal(T) bool }); ok {
		return e.Equal(b)
	}
	x, y := any(a), any(b)
	if !canCompare(x) || !canCompare(y) {
		pyerr.Raise(&pyerr.TypeError{Msg: fmt.Sprintf("cannot compare values of type %T and %T", x, y)})
	}
	return x == y
}

func canCompare(x any) bool {
	if x == nil {
		return true
	}
	return reflect.ValueOf(x).Comparable()
}
