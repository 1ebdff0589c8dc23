package tag

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	typed, err := NewListOf(Int(1), Int(2))
	if err != nil {
		t.Fatal(err)
	}
	comp := NewCompound()
	comp.Set("a", Byte(1))
	comp.Set("b", NewList())

	tests := []struct {
		name string
		tag  Tag
		want string
	}{
		{"compound", comp, "2 entries"},
		{"empty compound", NewCompound(), "0 entries"},
		{"untyped list", NewList(), "0 items"},
		{"typed list", typed, "2 items of Int"},
		{"byte array", ByteArray{1, 2, 3}, "3 values"},
		{"long array", LongArray{}, "0 values"},
		{"byte", Byte(-3), "-3"},
		{"long", Long(1 << 40), "1099511627776"},
		{"float", Float(1.5), "1.5"},
		{"integral double", Double(2), "2.0"},
		{"short string", String("minecraft:stone"), "minecraft:stone"},
		{"forty chars", String(strings.Repeat("x", 40)), strings.Repeat("x", 40)},
		{"long string", String(strings.Repeat("é", 41)), strings.Repeat("é", 37) + "…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.tag); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderKeepsEditableString(t *testing.T) {
	long := String(strings.Repeat("y", 100))
	text, _ := EditableText(long)
	if text != string(long) {
		t.Errorf("EditableText truncated a string value")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range append(Kinds(), EndKind) {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Errorf("ParseKind(%q): %v", k.String(), err)
			continue
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %s", k.String(), got)
		}
	}
	if _, err := ParseKind("Bool"); err == nil {
		t.Errorf("ParseKind(Bool) should fail")
	}
}
