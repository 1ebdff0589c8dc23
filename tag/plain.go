package tag

import "fmt"

// Plain converts t to untyped Go values: integers become int64, floats
// float64, arrays []int64, compounds map[string]any and lists []any.
// Kind information below the top level is lost.
func Plain(t Tag) any {
	switch x := t.(type) {
	case Byte, Short, Int, Long:
		v, _ := AsInt64(x)
		return v
	case Float:
		return float64(x)
	case Double:
		return float64(x)
	case String:
		return string(x)
	case ByteArray:
		res := make([]int64, len(x))
		for i, v := range x {
			res[i] = int64(v)
		}
		return res
	case IntArray:
		res := make([]int64, len(x))
		for i, v := range x {
			res[i] = int64(v)
		}
		return res
	case LongArray:
		return []int64(x)
	case *Compound:
		res := make(map[string]any, x.Len())
		for i, k := range x.Keys {
			res[k] = Plain(x.Values[i])
		}
		return res
	case *List:
		res := make([]any, len(x.Values))
		for i, v := range x.Values {
			res[i] = Plain(v)
		}
		return res
	default:
		panic(fmt.Sprintf("unknown tag %T", t))
	}
}
