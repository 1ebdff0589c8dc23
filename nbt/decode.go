package nbt

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/signadot/nbtedit/debug"
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tree"
)

var (
	ErrDecode = errors.New("nbt decode error")
	ErrEncode = errors.New("nbt encode error")
)

var gzipMagic = []byte{0x1f, 0x8b}

// Detect reports the compression of d from its leading bytes.
func Detect(d []byte) Compression {
	if bytes.HasPrefix(d, gzipMagic) {
		return Gzip
	}
	return None
}

// Decode reads one named root tag from d, which may be gzip compressed.
// It returns the document and the compression it found.
func Decode(d []byte, opts ...DecodeOption) (*tree.Document, Compression, error) {
	o := &decodeOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	comp := Detect(d)
	if comp == Gzip {
		zr, err := gzip.NewReader(bytes.NewReader(d))
		if err != nil {
			return nil, comp, fmt.Errorf("%w: gzip: %w", ErrDecode, err)
		}
		defer zr.Close()
		d, err = io.ReadAll(zr)
		if err != nil {
			return nil, comp, fmt.Errorf("%w: gzip: %w", ErrDecode, err)
		}
	}
	dec := &decoder{buf: d, opts: o}
	doc, err := dec.root()
	if err != nil {
		return nil, comp, fmt.Errorf("%w: at offset %d: %w", ErrDecode, dec.off, err)
	}
	if dec.off != len(d) && debug.Codec() {
		debug.Logf("nbt: ignoring %d trailing bytes\n", len(d)-dec.off)
	}
	if debug.Codec() {
		debug.Logf("nbt: decoded %q (%s, %d bytes)\n", doc.Name, comp, len(d))
	}
	return doc, comp, nil
}

type decoder struct {
	buf  []byte
	off  int
	opts *decodeOpts
}

func (d *decoder) next(n int) ([]byte, error) {
	if n < 0 || len(d.buf)-d.off < n {
		return nil, io.ErrUnexpectedEOF
	}
	res := d.buf[d.off : d.off+n]
	d.off += n
	return res, nil
}

func (d *decoder) u8() (byte, error) {
	b, err := d.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *decoder) u16() (uint16, error) {
	b, err := d.next(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (d *decoder) u32() (uint32, error) {
	b, err := d.next(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (d *decoder) u64() (uint64, error) {
	b, err := d.next(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (d *decoder) length() (int, error) {
	n, err := d.u32()
	if err != nil {
		return 0, err
	}
	if int32(n) < 0 {
		return 0, fmt.Errorf("negative length %d", int32(n))
	}
	return int(n), nil
}

func (d *decoder) str() (string, error) {
	n, err := d.u16()
	if err != nil {
		return "", err
	}
	b, err := d.next(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (d *decoder) kind() (tag.Kind, error) {
	b, err := d.u8()
	if err != nil {
		return 0, err
	}
	k := tag.Kind(b)
	if k > tag.LongArrayKind {
		return 0, fmt.Errorf("%w: id %d", tag.ErrUnknownKind, b)
	}
	return k, nil
}

func (d *decoder) root() (*tree.Document, error) {
	k, err := d.kind()
	if err != nil {
		return nil, err
	}
	if k == tag.EndKind {
		return nil, errors.New("root tag is End")
	}
	name, err := d.str()
	if err != nil {
		return nil, err
	}
	t, err := d.payload(k, 0)
	if err != nil {
		return nil, err
	}
	return &tree.Document{Name: name, Root: t}, nil
}

func (d *decoder) payload(k tag.Kind, depth int) (tag.Tag, error) {
	if depth > d.opts.maxDepth {
		return nil, fmt.Errorf("nesting deeper than %d", d.opts.maxDepth)
	}
	switch k {
	case tag.ByteKind:
		b, err := d.u8()
		return tag.Byte(int8(b)), err
	case tag.ShortKind:
		v, err := d.u16()
		return tag.Short(int16(v)), err
	case tag.IntKind:
		v, err := d.u32()
		return tag.Int(int32(v)), err
	case tag.LongKind:
		v, err := d.u64()
		return tag.Long(int64(v)), err
	case tag.FloatKind:
		v, err := d.u32()
		return tag.Float(math.Float32frombits(v)), err
	case tag.DoubleKind:
		v, err := d.u64()
		return tag.Double(math.Float64frombits(v)), err
	case tag.StringKind:
		s, err := d.str()
		return tag.String(s), err
	case tag.ByteArrayKind:
		n, err := d.length()
		if err != nil {
			return nil, err
		}
		b, err := d.next(n)
		if err != nil {
			return nil, err
		}
		res := make(tag.ByteArray, n)
		for i := range b {
			res[i] = int8(b[i])
		}
		return res, nil
	case tag.IntArrayKind:
		n, err := d.length()
		if err != nil {
			return nil, err
		}
		if _, err := d.next(4 * n); err != nil {
			return nil, err
		}
		b := d.buf[d.off-4*n : d.off]
		res := make(tag.IntArray, n)
		for i := range res {
			res[i] = int32(binary.BigEndian.Uint32(b[4*i:]))
		}
		return res, nil
	case tag.LongArrayKind:
		n, err := d.length()
		if err != nil {
			return nil, err
		}
		if _, err := d.next(8 * n); err != nil {
			return nil, err
		}
		b := d.buf[d.off-8*n : d.off]
		res := make(tag.LongArray, n)
		for i := range res {
			res[i] = int64(binary.BigEndian.Uint64(b[8*i:]))
		}
		return res, nil
	case tag.ListKind:
		return d.list(depth)
	case tag.CompoundKind:
		return d.compound(depth)
	default:
		return nil, fmt.Errorf("%w: %s has no payload", tag.ErrUnknownKind, k)
	}
}

func (d *decoder) list(depth int) (tag.Tag, error) {
	sub, err := d.kind()
	if err != nil {
		return nil, err
	}
	n, err := d.length()
	if err != nil {
		return nil, err
	}
	l := tag.NewList()
	if sub == tag.EndKind {
		if n != 0 {
			return nil, fmt.Errorf("list of End with %d items", n)
		}
		return l, nil
	}
	l.Subtype = sub
	// every payload is at least one byte
	if n > len(d.buf)-d.off {
		return nil, io.ErrUnexpectedEOF
	}
	l.Values = make([]tag.Tag, 0, n)
	for i := 0; i < n; i++ {
		v, err := d.payload(sub, depth+1)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		l.Values = append(l.Values, v)
	}
	return l, nil
}

func (d *decoder) compound(depth int) (tag.Tag, error) {
	c := tag.NewCompound()
	for {
		k, err := d.kind()
		if err != nil {
			return nil, err
		}
		if k == tag.EndKind {
			return c, nil
		}
		name, err := d.str()
		if err != nil {
			return nil, err
		}
		v, err := d.payload(k, depth+1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		c.Set(name, v)
	}
}
