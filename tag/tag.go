package tag

import (
	"fmt"
	"slices"
)

// Tag is a node of a tag tree.  The set of implementations is closed: the
// scalar kinds, the three numeric arrays, *Compound and *List.
type Tag interface {
	Kind() Kind
	isTag()
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	String    string
	ByteArray []int8
	IntArray  []int32
	LongArray []int64
)

func (Byte) Kind() Kind      { return ByteKind }
func (Short) Kind() Kind     { return ShortKind }
func (Int) Kind() Kind       { return IntKind }
func (Long) Kind() Kind      { return LongKind }
func (Float) Kind() Kind     { return FloatKind }
func (Double) Kind() Kind    { return DoubleKind }
func (String) Kind() Kind    { return StringKind }
func (ByteArray) Kind() Kind { return ByteArrayKind }
func (IntArray) Kind() Kind  { return IntArrayKind }
func (LongArray) Kind() Kind { return LongArrayKind }
func (*Compound) Kind() Kind { return CompoundKind }
func (*List) Kind() Kind     { return ListKind }

func (Byte) isTag()      {}
func (Short) isTag()     {}
func (Int) isTag()       {}
func (Long) isTag()      {}
func (Float) isTag()     {}
func (Double) isTag()    {}
func (String) isTag()    {}
func (ByteArray) isTag() {}
func (IntArray) isTag()  {}
func (LongArray) isTag() {}
func (*Compound) isTag() {}
func (*List) isTag()     {}

// Compound is an insertion ordered mapping of unique keys to tags.  Keys[i]
// names Values[i].
type Compound struct {
	Keys   []string
	Values []Tag
}

func NewCompound() *Compound {
	return &Compound{}
}

func (c *Compound) Len() int {
	return len(c.Keys)
}

// IndexOf returns the position of key, or -1.
func (c *Compound) IndexOf(key string) int {
	return slices.Index(c.Keys, key)
}

func (c *Compound) Has(key string) bool {
	return c.IndexOf(key) != -1
}

// Get returns the tag under key.  The boolean distinguishes an absent key.
func (c *Compound) Get(key string) (Tag, bool) {
	i := c.IndexOf(key)
	if i == -1 {
		return nil, false
	}
	return c.Values[i], true
}

// Set replaces the value under key in place, or appends key at the end.
func (c *Compound) Set(key string, v Tag) {
	if i := c.IndexOf(key); i != -1 {
		c.Values[i] = v
		return
	}
	c.Keys = append(c.Keys, key)
	c.Values = append(c.Values, v)
}

// Remove deletes key and reports whether it was present.
func (c *Compound) Remove(key string) bool {
	i := c.IndexOf(key)
	if i == -1 {
		return false
	}
	c.Keys = slices.Delete(c.Keys, i, i+1)
	c.Values = slices.Delete(c.Values, i, i+1)
	return true
}

// List is an ordered sequence of tags sharing the kind Subtype.  An empty
// list may carry EndKind until its first element fixes the subtype.
type List struct {
	Subtype Kind
	Values  []Tag
}

func NewList() *List {
	return &List{Subtype: EndKind}
}

// NewListOf builds a list from values which must all share one kind.
func NewListOf(values ...Tag) (*List, error) {
	l := NewList()
	for i, v := range values {
		if l.Subtype == EndKind {
			l.Subtype = v.Kind()
		}
		if v.Kind() != l.Subtype {
			return nil, fmt.Errorf("list element %d is %s, list is of %s", i, v.Kind(), l.Subtype)
		}
		l.Values = append(l.Values, v)
	}
	return l, nil
}

func (l *List) Len() int {
	return len(l.Values)
}

func (l *List) Untyped() bool {
	return l.Subtype == EndKind
}

// IsContainer reports whether t is a *Compound or a *List.
func IsContainer(t Tag) bool {
	switch t.(type) {
	case *Compound, *List:
		return true
	default:
		return false
	}
}
