package tag

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxDisplayString is the number of characters of a string value shown by
// Render before it is cut short with an ellipsis.
const MaxDisplayString = 40

const ellipsis = "…"

// Render returns the one line summary of t shown next to it in a tree view.
// It is for display only; see EditableText for the editable form.
func Render(t Tag) string {
	switch x := t.(type) {
	case *Compound:
		return fmt.Sprintf("%d entries", x.Len())
	case *List:
		if x.Untyped() {
			return fmt.Sprintf("%d items", x.Len())
		}
		return fmt.Sprintf("%d items of %s", x.Len(), x.Subtype)
	case ByteArray:
		return fmt.Sprintf("%d values", len(x))
	case IntArray:
		return fmt.Sprintf("%d values", len(x))
	case LongArray:
		return fmt.Sprintf("%d values", len(x))
	case Byte, Short, Int, Long, Float, Double:
		s, _ := EditableText(x)
		return s
	case String:
		s := string(x)
		if utf8.RuneCountInString(s) <= MaxDisplayString {
			return s
		}
		runes := []rune(s)
		return string(runes[:MaxDisplayString-3]) + ellipsis
	default:
		panic(fmt.Sprintf("unknown tag %T", t))
	}
}

// EditableText returns the text form of a scalar or array tag which Coerce
// turns back into an equal tag.  Containers have no editable text and
// report false.
func EditableText(t Tag) (string, bool) {
	switch x := t.(type) {
	case *Compound, *List:
		return "", false
	case Byte:
		return strconv.FormatInt(int64(x), 10), true
	case Short:
		return strconv.FormatInt(int64(x), 10), true
	case Int:
		return strconv.FormatInt(int64(x), 10), true
	case Long:
		return strconv.FormatInt(int64(x), 10), true
	case Float:
		return formatFloat(float64(x), 32), true
	case Double:
		return formatFloat(float64(x), 64), true
	case String:
		return string(x), true
	case ByteArray:
		return joinInts(len(x), func(i int) int64 { return int64(x[i]) }), true
	case IntArray:
		return joinInts(len(x), func(i int) int64 { return int64(x[i]) }), true
	case LongArray:
		return joinInts(len(x), func(i int) int64 { return x[i] }), true
	default:
		panic(fmt.Sprintf("unknown tag %T", t))
	}
}

// formatFloat uses the shortest representation which parses back to the
// same value at the given width, keeping a ".0" on integral values.
func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

func joinInts(n int, at func(int) int64) string {
	parts := make([]string, n)
	for i := range n {
		parts[i] = strconv.FormatInt(at(i), 10)
	}
	return strings.Join(parts, ", ")
}
