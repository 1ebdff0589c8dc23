package tag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Coerce builds a tag of the given kind from user supplied text.
//
// Containers ignore text and come back empty, a list with EndKind subtype.
// Strings take text verbatim.  Integers accept decimal and 0x, 0o and 0b
// prefixed literals with an optional sign; a zero padded literal such as 010
// is invalid.  On error no tag is returned.  Integer values which do not fit
// the width of kind are rejected with ErrOutOfRange rather than wrapped.
// Arrays are comma separated integer lists, optionally enclosed in a single
// pair of brackets; empty elements are skipped.
func Coerce(kind Kind, text string) (Tag, error) {
	switch kind {
	case CompoundKind:
		return NewCompound(), nil
	case ListKind:
		return NewList(), nil
	case StringKind:
		return String(text), nil
	case ByteKind:
		v, err := ParseInt(text, 8)
		return scalar(Byte(v), err)
	case ShortKind:
		v, err := ParseInt(text, 16)
		return scalar(Short(v), err)
	case IntKind:
		v, err := ParseInt(text, 32)
		return scalar(Int(v), err)
	case LongKind:
		v, err := ParseInt(text, 64)
		return scalar(Long(v), err)
	case FloatKind:
		v, err := parseFloat(text, 32)
		return scalar(Float(v), err)
	case DoubleKind:
		v, err := parseFloat(text, 64)
		return scalar(Double(v), err)
	case ByteArrayKind:
		vs, err := parseIntList(text, 8)
		if err != nil {
			return nil, err
		}
		res := make(ByteArray, len(vs))
		for i, v := range vs {
			res[i] = int8(v)
		}
		return res, nil
	case IntArrayKind:
		vs, err := parseIntList(text, 32)
		if err != nil {
			return nil, err
		}
		res := make(IntArray, len(vs))
		for i, v := range vs {
			res[i] = int32(v)
		}
		return res, nil
	case LongArrayKind:
		vs, err := parseIntList(text, 64)
		if err != nil {
			return nil, err
		}
		return LongArray(vs), nil
	default:
		return nil, fmt.Errorf("%w: cannot create a tag of kind %s", ErrUnknownKind, kind)
	}
}

func scalar(t Tag, err error) (Tag, error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ParseInt parses an integer literal the way Coerce does for a kind of the
// given bit width.  A leading zero followed by more digits is rejected
// rather than read as octal.
func ParseInt(text string, bits int) (int64, error) {
	s := strings.TrimSpace(text)
	if zeroPadded(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInteger, s)
	}
	v, err := strconv.ParseInt(s, 0, bits)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		lo, hi := intBounds(bits)
		return 0, fmt.Errorf("%w: %q is outside [%d, %d]", ErrOutOfRange, s, lo, hi)
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidInteger, s)
}

// zeroPadded reports whether s, after its sign, is a 0 followed by
// further digits or underscores other than an all zero literal.
func zeroPadded(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	if c := s[1]; c < '0' || c > '9' {
		if c != '_' {
			return false
		}
	}
	return strings.Trim(s, "0_") != ""
}

func intBounds(bits int) (int64, int64) {
	hi := int64(1)<<(bits-1) - 1
	return -hi - 1, hi
}

// overflowing floats become infinities, as they would when typed into a
// float field of the game.
func parseFloat(text string, bits int) (float64, error) {
	s := strings.TrimSpace(text)
	v, err := strconv.ParseFloat(s, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFloat, s)
	}
	return v, nil
}

func parseIntList(text string, bits int) ([]int64, error) {
	s := strings.TrimSpace(text)
	if len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" {
		return []int64{}, nil
	}
	parts := strings.Split(s, ",")
	res := make([]int64, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := ParseInt(part, bits)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		res = append(res, v)
	}
	return res, nil
}
