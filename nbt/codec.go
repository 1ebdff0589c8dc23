package nbt

import "github.com/signadot/nbtedit/tree"

// Codec loads and saves documents, remembering the compression of the last
// document loaded so that Save with Auto writes it back the same way.
type Codec struct {
	Compression Compression
	MaxDepth    int

	loaded Compression
}

func (c *Codec) Load(d []byte) (*tree.Document, error) {
	var opts []DecodeOption
	if c.MaxDepth > 0 {
		opts = append(opts, MaxDepth(c.MaxDepth))
	}
	doc, comp, err := Decode(d, opts...)
	if err != nil {
		return nil, err
	}
	c.loaded = comp
	return doc, nil
}

func (c *Codec) Save(doc *tree.Document) ([]byte, error) {
	return Encode(doc, EncodeCompression(c.Effective()))
}

// Effective is the compression Save will use.
func (c *Codec) Effective() Compression {
	if c.Compression != Auto {
		return c.Compression
	}
	if c.loaded == Gzip {
		return Gzip
	}
	return None
}
