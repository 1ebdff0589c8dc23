package nbt

import (
	"errors"
	"fmt"
)

// Compression is the outer wrapping of an NBT stream.
type Compression int

const (
	// Auto keeps whatever compression the document was loaded with.
	Auto Compression = iota
	None
	Gzip
)

var ErrBadCompression = errors.New("bad compression")

func ParseCompression(v string) (Compression, error) {
	c, ok := map[string]Compression{
		"":     Auto,
		"auto": Auto,
		"none": None,
		"raw":  None,
		"gzip": Gzip,
		"gz":   Gzip,
	}[v]
	if ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadCompression, v)
}

func (c Compression) String() string {
	d, err := c.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (c Compression) MarshalText() ([]byte, error) {
	switch c {
	case Auto:
		return []byte("auto"), nil
	case None:
		return []byte("none"), nil
	case Gzip:
		return []byte("gzip"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a compression>", c)
	}
}

func (c *Compression) UnmarshalText(d []byte) error {
	pc, err := ParseCompression(string(d))
	if err != nil {
		return err
	}
	*c = pc
	return nil
}

// DefaultMaxDepth bounds container nesting on decode.
const DefaultMaxDepth = 512

type decodeOpts struct {
	maxDepth int
}

type DecodeOption func(*decodeOpts)

// MaxDepth sets the deepest container nesting Decode accepts.
func MaxDepth(n int) DecodeOption {
	return func(o *decodeOpts) { o.maxDepth = n }
}

type encodeOpts struct {
	compression Compression
}

type EncodeOption func(*encodeOpts)

// EncodeCompression selects the wrapping of the encoded stream.  Auto
// encodes uncompressed.
func EncodeCompression(c Compression) EncodeOption {
	return func(o *encodeOpts) { o.compression = c }
}
