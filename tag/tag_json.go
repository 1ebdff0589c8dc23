package tag

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// The typed JSON form of a tag is an object
//
//	{"type": <kind name>, "value": <value>}
//
// with an extra "subtype" member for lists.  Compound values are objects
// whose members appear in key order, lists and arrays are JSON arrays, and
// non finite floats are the strings "NaN", "+Inf" and "-Inf".

// MarshalJSON encodes t in the typed JSON form.
func MarshalJSON(t Tag) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, t Tag) error {
	buf.WriteString(`{"type":"`)
	buf.WriteString(t.Kind().String())
	buf.WriteByte('"')
	if l, ok := t.(*List); ok {
		buf.WriteString(`,"subtype":"`)
		buf.WriteString(l.Subtype.String())
		buf.WriteByte('"')
	}
	buf.WriteString(`,"value":`)
	switch x := t.(type) {
	case Byte, Short, Int, Long:
		v, _ := AsInt64(x)
		buf.WriteString(strconv.FormatInt(v, 10))
	case Float:
		writeJSONFloat(buf, float64(x), 32)
	case Double:
		writeJSONFloat(buf, float64(x), 64)
	case String:
		d, err := json.Marshal(string(x))
		if err != nil {
			return err
		}
		buf.Write(d)
	case ByteArray:
		writeJSONInts(buf, len(x), func(i int) int64 { return int64(x[i]) })
	case IntArray:
		writeJSONInts(buf, len(x), func(i int) int64 { return int64(x[i]) })
	case LongArray:
		writeJSONInts(buf, len(x), func(i int) int64 { return x[i] })
	case *Compound:
		buf.WriteByte('{')
		for i, k := range x.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(buf, x.Values[i]); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		}
		buf.WriteByte('}')
	case *List:
		buf.WriteByte('[')
		for i, v := range x.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	default:
		panic(fmt.Sprintf("unknown tag %T", t))
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONFloat(buf *bytes.Buffer, f float64, bits int) {
	switch {
	case math.IsNaN(f):
		buf.WriteString(`"NaN"`)
	case math.IsInf(f, 1):
		buf.WriteString(`"+Inf"`)
	case math.IsInf(f, -1):
		buf.WriteString(`"-Inf"`)
	default:
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, bits))
	}
}

func writeJSONInts(buf *bytes.Buffer, n int, at func(int) int64) {
	buf.WriteByte('[')
	for i := range n {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.FormatInt(at(i), 10))
	}
	buf.WriteByte(']')
}

// UnmarshalJSON decodes the typed JSON form produced by MarshalJSON.
// Compound member order is preserved.
func UnmarshalJSON(d []byte) (Tag, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after tag")
	}
	return fromJSONValue(v)
}

type jsonMember struct {
	Key   string
	Value any
}

// jsonObject keeps members in document order.
type jsonObject []jsonMember

func (o jsonObject) get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			var res jsonObject
			for dec.More() {
				kTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				k, ok := kTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", kTok)
				}
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				res = append(res, jsonMember{Key: k, Value: v})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		case '[':
			res := []any{}
			for dec.More() {
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				res = append(res, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", x)
		}
	default:
		return x, nil
	}
}

func fromJSONValue(v any) (Tag, error) {
	obj, ok := v.(jsonObject)
	if !ok {
		return nil, fmt.Errorf("expected typed tag object, got %T", v)
	}
	kv, ok := obj.get("type")
	if !ok {
		return nil, fmt.Errorf("typed tag without \"type\"")
	}
	kName, ok := kv.(string)
	if !ok {
		return nil, fmt.Errorf("\"type\" must be a string, got %T", kv)
	}
	kind, err := ParseKind(kName)
	if err != nil {
		return nil, err
	}
	val, ok := obj.get("value")
	if !ok {
		return nil, fmt.Errorf("%s tag without \"value\"", kind)
	}
	switch kind {
	case ByteKind, ShortKind, IntKind, LongKind:
		n, ok := val.(json.Number)
		if !ok {
			return nil, fmt.Errorf("%w: %s value %v", ErrInvalidInteger, kind, val)
		}
		return Coerce(kind, n.String())
	case FloatKind, DoubleKind:
		switch x := val.(type) {
		case json.Number:
			return Coerce(kind, x.String())
		case string:
			return Coerce(kind, x)
		default:
			return nil, fmt.Errorf("%w: %s value %v", ErrInvalidFloat, kind, val)
		}
	case StringKind:
		s, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("String value must be a string, got %T", val)
		}
		return String(s), nil
	case ByteArrayKind, IntArrayKind, LongArrayKind:
		arr, ok := val.([]any)
		if !ok {
			return nil, fmt.Errorf("%s value must be an array, got %T", kind, val)
		}
		buf := bytes.NewBuffer(nil)
		for i, e := range arr {
			n, ok := e.(json.Number)
			if !ok {
				return nil, fmt.Errorf("%w: %s element %d is %v", ErrInvalidInteger, kind, i, e)
			}
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(n.String())
		}
		return Coerce(kind, buf.String())
	case CompoundKind:
		members, ok := val.(jsonObject)
		if !ok {
			return nil, fmt.Errorf("Compound value must be an object, got %T", val)
		}
		res := NewCompound()
		for _, m := range members {
			if res.Has(m.Key) {
				return nil, fmt.Errorf("duplicate key %q", m.Key)
			}
			child, err := fromJSONValue(m.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", m.Key, err)
			}
			res.Set(m.Key, child)
		}
		return res, nil
	case ListKind:
		arr, ok := val.([]any)
		if !ok {
			return nil, fmt.Errorf("List value must be an array, got %T", val)
		}
		res := NewList()
		if sv, ok := obj.get("subtype"); ok {
			sName, ok := sv.(string)
			if !ok {
				return nil, fmt.Errorf("\"subtype\" must be a string, got %T", sv)
			}
			if res.Subtype, err = ParseKind(sName); err != nil {
				return nil, err
			}
		}
		for i, e := range arr {
			child, err := fromJSONValue(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			if res.Subtype == EndKind {
				res.Subtype = child.Kind()
			}
			if child.Kind() != res.Subtype {
				return nil, fmt.Errorf("[%d]: %s element in list of %s", i, child.Kind(), res.Subtype)
			}
			res.Values = append(res.Values, child)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}
