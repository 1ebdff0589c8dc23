package tag

import (
	"fmt"
	"math"
	"slices"
)

// Clone returns a deep copy of t.  Scalars are values already; arrays and
// containers are copied so that the result shares nothing with t.
func Clone(t Tag) Tag {
	switch x := t.(type) {
	case Byte, Short, Int, Long, Float, Double, String:
		return x
	case ByteArray:
		return slices.Clone(x)
	case IntArray:
		return slices.Clone(x)
	case LongArray:
		return slices.Clone(x)
	case *Compound:
		res := &Compound{
			Keys:   slices.Clone(x.Keys),
			Values: make([]Tag, len(x.Values)),
		}
		for i, v := range x.Values {
			res.Values[i] = Clone(v)
		}
		return res
	case *List:
		res := &List{Subtype: x.Subtype, Values: make([]Tag, len(x.Values))}
		for i, v := range x.Values {
			res.Values[i] = Clone(v)
		}
		return res
	default:
		panic(fmt.Sprintf("unknown tag %T", t))
	}
}

// Equal reports whether a and b have the same kind and value.  Compounds
// are compared as mappings, so key order does not matter; lists compare
// element by element and must agree on their subtype.  Floating point
// values compare by bit pattern, which makes a NaN equal to itself.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Byte, Short, Int, Long, String:
		return a == b
	case Float:
		return math.Float32bits(float32(x)) == math.Float32bits(float32(b.(Float)))
	case Double:
		return math.Float64bits(float64(x)) == math.Float64bits(float64(b.(Double)))
	case ByteArray:
		return slices.Equal(x, b.(ByteArray))
	case IntArray:
		return slices.Equal(x, b.(IntArray))
	case LongArray:
		return slices.Equal(x, b.(LongArray))
	case *Compound:
		y := b.(*Compound)
		if x.Len() != y.Len() {
			return false
		}
		for i, k := range x.Keys {
			yv, ok := y.Get(k)
			if !ok || !Equal(x.Values[i], yv) {
				return false
			}
		}
		return true
	case *List:
		y := b.(*List)
		if x.Subtype != y.Subtype || x.Len() != y.Len() {
			return false
		}
		for i := range x.Values {
			if !Equal(x.Values[i], y.Values[i]) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("unknown tag %T", a))
	}
}

// AsInt64 returns the value of an integer tag of any width.
func AsInt64(t Tag) (int64, bool) {
	switch x := t.(type) {
	case Byte:
		return int64(x), true
	case Short:
		return int64(x), true
	case Int:
		return int64(x), true
	case Long:
		return int64(x), true
	default:
		return 0, false
	}
}
