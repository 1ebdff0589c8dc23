package nbt

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/signadot/nbtedit/debug"
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tree"
)

// Encode writes doc as one named root tag.  Untyped lists are written
// with an End subtype.
func Encode(doc *tree.Document, opts ...EncodeOption) ([]byte, error) {
	o := &encodeOpts{}
	for _, f := range opts {
		f(o)
	}
	if doc == nil || doc.Root == nil {
		return nil, fmt.Errorf("%w: no root", ErrEncode)
	}
	e := &encoder{}
	e.buf = append(e.buf, byte(doc.Root.Kind()))
	if err := e.str(doc.Name); err != nil {
		return nil, fmt.Errorf("%w: root name: %w", ErrEncode, err)
	}
	if err := e.payload(doc.Root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if debug.Codec() {
		debug.Logf("nbt: encoded %q (%s, %d bytes)\n", doc.Name, o.compression, len(e.buf))
	}
	if o.compression != Gzip {
		return e.buf, nil
	}
	out := bytes.NewBuffer(nil)
	zw := gzip.NewWriter(out)
	if _, err := zw.Write(e.buf); err != nil {
		return nil, fmt.Errorf("%w: gzip: %w", ErrEncode, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: gzip: %w", ErrEncode, err)
	}
	return out.Bytes(), nil
}

type encoder struct {
	buf []byte
}

func (e *encoder) str(s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("string of %d bytes is too long", len(s))
	}
	e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(len(s)))
	e.buf = append(e.buf, s...)
	return nil
}

func (e *encoder) length(n int) error {
	if n > math.MaxInt32 {
		return fmt.Errorf("length %d is too long", n)
	}
	e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(n))
	return nil
}

func (e *encoder) payload(t tag.Tag) error {
	switch x := t.(type) {
	case tag.Byte:
		e.buf = append(e.buf, byte(x))
	case tag.Short:
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(x))
	case tag.Int:
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(x))
	case tag.Long:
		e.buf = binary.BigEndian.AppendUint64(e.buf, uint64(x))
	case tag.Float:
		e.buf = binary.BigEndian.AppendUint32(e.buf, math.Float32bits(float32(x)))
	case tag.Double:
		e.buf = binary.BigEndian.AppendUint64(e.buf, math.Float64bits(float64(x)))
	case tag.String:
		return e.str(string(x))
	case tag.ByteArray:
		if err := e.length(len(x)); err != nil {
			return err
		}
		for _, b := range x {
			e.buf = append(e.buf, byte(b))
		}
	case tag.IntArray:
		if err := e.length(len(x)); err != nil {
			return err
		}
		for _, v := range x {
			e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(v))
		}
	case tag.LongArray:
		if err := e.length(len(x)); err != nil {
			return err
		}
		for _, v := range x {
			e.buf = binary.BigEndian.AppendUint64(e.buf, uint64(v))
		}
	case *tag.List:
		e.buf = append(e.buf, byte(x.Subtype))
		if err := e.length(x.Len()); err != nil {
			return err
		}
		for i, v := range x.Values {
			if v.Kind() != x.Subtype {
				return fmt.Errorf("[%d]: %s in list of %s", i, v.Kind(), x.Subtype)
			}
			if err := e.payload(v); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
	case *tag.Compound:
		for i, k := range x.Keys {
			v := x.Values[i]
			e.buf = append(e.buf, byte(v.Kind()))
			if err := e.str(k); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			if err := e.payload(v); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
		e.buf = append(e.buf, byte(tag.EndKind))
	default:
		panic(fmt.Sprintf("unknown tag %T", t))
	}
	return nil
}
