package tpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	tests := []struct {
		path Path
		want string
	}{
		{Path{}, ""},
		{Of("Inventory"), "Inventory"},
		{Of("Inventory", 0), "Inventory[0]"},
		{Of("Inventory", 0, "tag", "display"), "Inventory[0].tag.display"},
		{Of(2), "[2]"},
		{Of(2, 3, "a"), "[2][3].a"},
		{Of("a.b", "c"), "a.b.c"},
	}
	for _, tt := range tests {
		if got := tt.path.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestQuotedRoundTrip(t *testing.T) {
	paths := []Path{
		{},
		Of("Inventory", 3, "id"),
		Of(0),
		Of("a.b", "c[1]", 4),
		Of("it's", `back\slash`),
		Of(""),
		Of("with space", 0, "minecraft:stone"),
	}
	for _, p := range paths {
		q := p.Quoted()
		got, err := Parse(q)
		if err != nil {
			t.Errorf("Parse(%q): %v", q, err)
			continue
		}
		if !got.Equal(p) {
			t.Errorf("Parse(%q) = %v, want %v", q, got, p)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want []any
	}{
		{"", nil},
		{"a", []any{"a"}},
		{"a.b[0]", []any{"a", "b", 0}},
		{"[1][2]", []any{1, 2}},
		{"'x.y'.z", []any{"x.y", "z"}},
		{"minecraft:stone", []any{"minecraft:stone"}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(Of(tt.want...)) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{".a", "a..b", "a[", "a[x]", "a[-1]", "a.", "'open", "[0]b"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) should fail", bad)
		}
	}
}

func TestParentAppend(t *testing.T) {
	p := Of("a", 1, "b")
	parent := p.Parent()
	if !parent.Equal(Of("a", 1)) {
		t.Errorf("Parent() = %v", parent)
	}
	child := parent.Append(Field("c"))
	if !p.Equal(Of("a", 1, "b")) {
		t.Errorf("Append through Parent() modified the original: %v", p)
	}
	if !child.Equal(Of("a", 1, "c")) {
		t.Errorf("Append() = %v", child)
	}
	if !Path(nil).Parent().IsRoot() {
		t.Errorf("root parent should be root")
	}
	last, ok := p.Last()
	if !ok {
		t.Fatal("Last() on non-root path")
	}
	if diff := cmp.Diff("b", *last.Field); diff != "" {
		t.Errorf("Last() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := (Path{}).Last(); ok {
		t.Errorf("Last() on root should report false")
	}
}
