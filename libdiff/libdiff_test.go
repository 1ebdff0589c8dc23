package libdiff

import (
	"strings"
	"testing"

	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tag/tpath"
	"github.com/signadot/nbtedit/tree"
)

func ints(t *testing.T, vs ...int32) *tag.List {
	t.Helper()
	l := tag.NewList()
	for _, v := range vs {
		l.Subtype = tag.IntKind
		l.Values = append(l.Values, tag.Int(v))
	}
	return l
}

func compound(kvs ...any) *tag.Compound {
	c := tag.NewCompound()
	for i := 0; i < len(kvs); i += 2 {
		c.Set(kvs[i].(string), kvs[i+1].(tag.Tag))
	}
	return c
}

func TestDiffApplyReverse(t *testing.T) {
	tests := []struct {
		name     string
		from, to tag.Tag
	}{
		{"equal", compound("a", tag.Int(1)), compound("a", tag.Int(1))},
		{"scalar", compound("a", tag.Int(1)), compound("a", tag.Int(2))},
		{"kind", compound("a", tag.Int(1)), compound("a", tag.String("1"))},
		{"add remove", compound("a", tag.Int(1), "b", tag.Byte(0)), compound("b", tag.Byte(0), "c", tag.Long(3))},
		{"list insert", compound("l", ints(t, 1, 2, 3)), compound("l", ints(t, 1, 4, 2, 3, 5))},
		{"list remove", compound("l", ints(t, 1, 2, 3, 4)), compound("l", ints(t, 2, 4))},
		{"list replace", compound("l", ints(t, 1, 2, 3)), compound("l", ints(t, 7, 8, 9, 10))},
		{"list to empty", compound("l", ints(t, 1, 2)), compound("l", ints(t))},
		{"subtype", compound("l", ints(t, 1)), compound("l", mustList(t, tag.String("x")))},
		{"nested", compound("inv", mustList(t, compound("id", tag.String("a")), compound("id", tag.String("b")))),
			compound("inv", mustList(t, compound("id", tag.String("b"))))},
		{"arrays", compound("a", tag.IntArray{1, 2}), compound("a", tag.IntArray{1, 3})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := Diff(tt.from, tt.to)
			if tag.Equal(tt.from, tt.to) != (len(changes) == 0) {
				t.Fatalf("Diff gave %d changes for equal=%v", len(changes), tag.Equal(tt.from, tt.to))
			}
			doc := &tree.Document{Root: tag.Clone(tt.from)}
			if err := Apply(doc, changes); err != nil {
				t.Fatalf("Apply: %v\n%s", err, Format(changes, false))
			}
			if !tag.Equal(doc.Root, tt.to) {
				t.Fatalf("Apply(Diff) does not reach to:\n%s", Format(changes, false))
			}
			if err := Apply(doc, Reverse(changes)); err != nil {
				t.Fatalf("Apply(Reverse): %v", err)
			}
			if !tag.Equal(doc.Root, tt.from) {
				t.Errorf("Apply(Reverse(Diff)) does not restore from")
			}
		})
	}
}

func mustList(t *testing.T, vs ...tag.Tag) *tag.List {
	t.Helper()
	l, err := tag.NewListOf(vs...)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestDiffListRemove(t *testing.T) {
	changes := Diff(compound("l", ints(t, 1, 2, 3)), compound("l", ints(t, 1, 3)))
	if len(changes) != 1 {
		t.Fatalf("got %d changes:\n%s", len(changes), Format(changes, false))
	}
	c := changes[0]
	if c.Op != OpRemove || !c.Path.Equal(tpath.Of("l", 1)) || !tag.Equal(c.From, tag.Int(2)) {
		t.Errorf("change = %+v", c)
	}
}

func TestDiffRootKind(t *testing.T) {
	changes := Diff(tag.NewCompound(), tag.NewList())
	if len(changes) != 1 || changes[0].Op != OpKind || !changes[0].Path.IsRoot() {
		t.Errorf("changes = %+v", changes)
	}
}

func TestFormat(t *testing.T) {
	from := compound("Name", tag.String("abc"), "Level", tag.Int(3), "Old", tag.Byte(1))
	to := compound("Name", tag.String("abXc"), "Level", tag.String("3"), "New", tag.Short(2))
	got := Format(Diff(from, to), false)
	want := strings.Join([]string{
		`~ Name: "ab{+X+}c"`,
		`! Level: Int 3 -> String "3"`,
		`- Old: Byte 1`,
		`+ New: Short 2`,
		``,
	}, "\n")
	if got != want {
		t.Errorf("Format =\n%s\nwant\n%s", got, want)
	}
}

func TestDiffText(t *testing.T) {
	if got := DiffText("abc", "abXc", false); got != "ab{+X+}c" {
		t.Errorf("DiffText insert = %q", got)
	}
	if got := DiffText("abXc", "abc", false); got != "ab[-X-]c" {
		t.Errorf("DiffText delete = %q", got)
	}
	if got := DiffText("same", "same", false); got != "same" {
		t.Errorf("DiffText equal = %q", got)
	}
}
