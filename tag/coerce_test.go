package tag

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		kind Kind
		text string
		want Tag
	}{
		{ByteKind, "12", Byte(12)},
		{ByteKind, "-128", Byte(-128)},
		{ShortKind, " 0x10 ", Short(16)},
		{IntKind, "-0x10", Int(-16)},
		{IntKind, "2147483647", Int(math.MaxInt32)},
		{IntKind, "0", Int(0)},
		{IntKind, "-0", Int(0)},
		{ShortKind, "0o17", Short(15)},
		{ByteKind, "-0b101", Byte(-5)},
		{IntArrayKind, "0, 0x0, 10", IntArray{0, 0, 10}},
		{LongKind, "9223372036854775807", Long(math.MaxInt64)},
		{FloatKind, "1.5", Float(1.5)},
		{DoubleKind, "-2.25e3", Double(-2250)},
		{StringKind, "  minecraft:stone ", String("  minecraft:stone ")},
		{StringKind, "", String("")},
		{ByteArrayKind, "[1, -2, 3]", ByteArray{1, -2, 3}},
		{ByteArrayKind, "", ByteArray{}},
		{IntArrayKind, "200", IntArray{200}},
		{IntArrayKind, " [ ] ", IntArray{}},
		{IntArrayKind, "1,,2,", IntArray{1, 2}},
		{LongArrayKind, "0x7fffffffffffffff, -1", LongArray{math.MaxInt64, -1}},
	}
	for _, tt := range tests {
		got, err := Coerce(tt.kind, tt.text)
		if err != nil {
			t.Errorf("Coerce(%s, %q) error: %v", tt.kind, tt.text, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Coerce(%s, %q) mismatch (-want +got):\n%s", tt.kind, tt.text, diff)
		}
	}
}

func TestCoerceContainers(t *testing.T) {
	c, err := Coerce(CompoundKind, "ignored")
	if err != nil {
		t.Fatal(err)
	}
	if cc, ok := c.(*Compound); !ok || cc.Len() != 0 {
		t.Errorf("Coerce(Compound) = %#v, want empty compound", c)
	}
	l, err := Coerce(ListKind, "1,2")
	if err != nil {
		t.Fatal(err)
	}
	if ll, ok := l.(*List); !ok || ll.Len() != 0 || !ll.Untyped() {
		t.Errorf("Coerce(List) = %#v, want empty untyped list", l)
	}
}

func TestCoerceErrors(t *testing.T) {
	tests := []struct {
		kind Kind
		text string
		want error
	}{
		{IntKind, "not-a-number", ErrInvalidInteger},
		{IntKind, "", ErrInvalidInteger},
		{IntKind, "1.5", ErrInvalidInteger},
		{ByteKind, "128", ErrOutOfRange},
		{ShortKind, "-40000", ErrOutOfRange},
		{LongKind, "99999999999999999999", ErrOutOfRange},
		{FloatKind, "one", ErrInvalidFloat},
		{DoubleKind, "", ErrInvalidFloat},
		{ByteArrayKind, "200", ErrOutOfRange},
		{ByteArrayKind, "1, x", ErrInvalidInteger},
		{IntArrayKind, "1;2", ErrInvalidInteger},
		{IntKind, "010", ErrInvalidInteger},
		{IntKind, "-007", ErrInvalidInteger},
		{LongKind, "+0_1", ErrInvalidInteger},
		{IntArrayKind, "1, 010", ErrInvalidInteger},
		{EndKind, "", ErrUnknownKind},
	}
	for _, tt := range tests {
		got, err := Coerce(tt.kind, tt.text)
		if !errors.Is(err, tt.want) {
			t.Errorf("Coerce(%s, %q) error = %v, want %v", tt.kind, tt.text, err, tt.want)
		}
		if got != nil {
			t.Errorf("Coerce(%s, %q) = %#v on error, want nil", tt.kind, tt.text, got)
		}
	}
}

func TestEditableTextRoundTrip(t *testing.T) {
	tags := []Tag{
		Byte(-7),
		Short(300),
		Int(-123456),
		Long(math.MinInt64),
		Float(0.1),
		Float(3),
		Float(float32(math.Inf(1))),
		Double(1e-300),
		Double(42),
		Double(math.Inf(-1)),
		String("with, commas and [brackets]"),
		String(""),
		ByteArray{-128, 0, 127},
		ByteArray{},
		IntArray{1, 2, 3},
		LongArray{math.MinInt64, math.MaxInt64},
	}
	for _, tg := range tags {
		text, ok := EditableText(tg)
		if !ok {
			t.Errorf("EditableText(%#v) not editable", tg)
			continue
		}
		got, err := Coerce(tg.Kind(), text)
		if err != nil {
			t.Errorf("Coerce(%s, %q) error: %v", tg.Kind(), text, err)
			continue
		}
		if !Equal(tg, got) {
			t.Errorf("round trip of %#v through %q gave %#v", tg, text, got)
		}
	}
}

func TestEditableTextContainers(t *testing.T) {
	for _, tg := range []Tag{NewCompound(), NewList()} {
		if _, ok := EditableText(tg); ok {
			t.Errorf("EditableText(%s) should not be editable", tg.Kind())
		}
	}
}
