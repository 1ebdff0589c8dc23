package tag

import "fmt"

// Kind identifies one member of the closed set of tag kinds.  The numeric
// values are the type ids used by the binary format.
type Kind byte

const (
	// EndKind is the subtype of an empty list that has not yet received
	// its first element.
	EndKind Kind = iota
	ByteKind
	ShortKind
	IntKind
	LongKind
	FloatKind
	DoubleKind
	ByteArrayKind
	StringKind
	ListKind
	CompoundKind
	IntArrayKind
	LongArrayKind
)

var kindNames = map[Kind]string{
	EndKind:       "End",
	ByteKind:      "Byte",
	ShortKind:     "Short",
	IntKind:       "Int",
	LongKind:      "Long",
	FloatKind:     "Float",
	DoubleKind:    "Double",
	ByteArrayKind: "ByteArray",
	StringKind:    "String",
	ListKind:      "List",
	CompoundKind:  "Compound",
	IntArrayKind:  "IntArray",
	LongArrayKind: "LongArray",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}

// ParseKind maps a kind name such as "Int" or "Compound" to its Kind.
// "End" is accepted so that untyped list subtypes survive a round trip.
func ParseKind(name string) (Kind, error) {
	for k, s := range kindNames {
		if s == name {
			return k, nil
		}
	}
	return EndKind, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds returns every kind a tag can have, in the order offered to users
// when adding a new tag.
func Kinds() []Kind {
	return []Kind{
		ByteKind,
		ShortKind,
		IntKind,
		LongKind,
		FloatKind,
		DoubleKind,
		StringKind,
		ByteArrayKind,
		IntArrayKind,
		LongArrayKind,
		CompoundKind,
		ListKind,
	}
}

func (k Kind) IsContainer() bool {
	return k == CompoundKind || k == ListKind
}

func (k Kind) IsInteger() bool {
	switch k {
	case ByteKind, ShortKind, IntKind, LongKind:
		return true
	default:
		return false
	}
}

func (k Kind) IsFloat() bool {
	return k == FloatKind || k == DoubleKind
}

func (k Kind) IsArray() bool {
	switch k {
	case ByteArrayKind, IntArrayKind, LongArrayKind:
		return true
	default:
		return false
	}
}
