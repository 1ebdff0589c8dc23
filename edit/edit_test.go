package edit

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tag/tpath"
	"github.com/signadot/nbtedit/tree"
)

func newDoc(t *testing.T) *tree.Document {
	t.Helper()
	nums, err := tag.NewListOf(tag.Int(1), tag.Int(2), tag.Int(3))
	if err != nil {
		t.Fatal(err)
	}
	root := tag.NewCompound()
	root.Set("a", tag.Byte(1))
	root.Set("b", tag.String("two"))
	root.Set("c", tag.Int(3))
	root.Set("nums", nums)
	root.Set("empty", tag.NewList())
	root.Set("sub", tag.NewCompound())
	return &tree.Document{Name: "", Root: root}
}

func keys(doc *tree.Document) string {
	return strings.Join(doc.Root.(*tag.Compound).Keys, ",")
}

func get(t *testing.T, doc *tree.Document, elts ...any) tag.Tag {
	t.Helper()
	ref, err := tree.Resolve(doc.Root, tpath.Of(elts...))
	if err != nil {
		t.Fatalf("Resolve(%v): %v", elts, err)
	}
	return ref.Tag
}

func TestRename(t *testing.T) {
	doc := newDoc(t)
	p, err := Rename(doc, tpath.Of("a"), "z")
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal(tpath.Of("z")) {
		t.Errorf("Rename returned %s, want z", p)
	}
	if got := keys(doc); got != "b,c,nums,empty,sub,z" {
		t.Errorf("keys after rename = %s", got)
	}
	if !tag.Equal(get(t, doc, "z"), tag.Byte(1)) {
		t.Errorf("renamed value changed")
	}
}

func TestRenameSameNameIsNoop(t *testing.T) {
	doc := newDoc(t)
	p, err := Rename(doc, tpath.Of("b"), "b")
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal(tpath.Of("b")) {
		t.Errorf("Rename returned %s", p)
	}
	if got := keys(doc); got != "a,b,c,nums,empty,sub" {
		t.Errorf("no-op rename reordered keys: %s", got)
	}
}

func TestRenameErrors(t *testing.T) {
	tests := []struct {
		name string
		path tpath.Path
		to   string
		want error
	}{
		{"duplicate", tpath.Of("a"), "c", ErrDuplicateName},
		{"blank", tpath.Of("a"), "  ", ErrEmptyName},
		{"empty", tpath.Of("a"), "", ErrEmptyName},
		{"list element", tpath.Of("nums", 0), "x", ErrNotCompoundEntry},
		{"root", tpath.Path{}, "x", ErrNotCompoundEntry},
		{"missing", tpath.Of("nope"), "x", tree.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := newDoc(t)
			_, err := Rename(doc, tt.path, tt.to)
			if !errors.Is(err, tt.want) {
				t.Errorf("Rename error = %v, want %v", err, tt.want)
			}
			if got := keys(doc); got != "a,b,c,nums,empty,sub" {
				t.Errorf("failed rename changed keys: %s", got)
			}
		})
	}
}

func TestInsertIntoListPromotes(t *testing.T) {
	doc := newDoc(t)
	p, err := InsertIntoList(doc, tpath.Of("empty"), tag.String("x"))
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal(tpath.Of("empty", 0)) {
		t.Errorf("InsertIntoList returned %s", p)
	}
	l := get(t, doc, "empty").(*tag.List)
	if l.Subtype != tag.StringKind {
		t.Fatalf("subtype = %s, want String", l.Subtype)
	}
	_, err = InsertIntoList(doc, tpath.Of("empty"), tag.Int(1))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("second insert error = %v, want ErrTypeMismatch", err)
	}
	if l.Len() != 1 || l.Subtype != tag.StringKind {
		t.Errorf("failed insert changed the list: %d items of %s", l.Len(), l.Subtype)
	}
	if _, err := InsertIntoList(doc, tpath.Of("empty"), tag.String("y")); err != nil {
		t.Errorf("insert of matching kind: %v", err)
	}
}

func TestInsertIntoCompound(t *testing.T) {
	doc := newDoc(t)
	p, err := InsertIntoCompound(doc, tpath.Of("sub"), "k", tag.Long(5))
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal(tpath.Of("sub", "k")) {
		t.Errorf("InsertIntoCompound returned %s", p)
	}
	if _, err := InsertIntoCompound(doc, tpath.Of("sub"), "k", tag.Long(6)); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate insert error = %v", err)
	}
	if !tag.Equal(get(t, doc, "sub", "k"), tag.Long(5)) {
		t.Errorf("duplicate insert replaced the value")
	}
	if _, err := InsertIntoCompound(doc, tpath.Of("nums"), "k", tag.Int(1)); !errors.Is(err, ErrNotContainer) {
		t.Errorf("insert into list as compound error = %v", err)
	}
}

func TestInsertDispatch(t *testing.T) {
	doc := newDoc(t)
	if _, err := Insert(doc, tpath.Of("nums"), "ignored", tag.Int(4)); err != nil {
		t.Fatal(err)
	}
	if n := get(t, doc, "nums").(*tag.List).Len(); n != 4 {
		t.Errorf("list has %d items, want 4", n)
	}
	if _, err := Insert(doc, tpath.Of("a"), "x", tag.Int(4)); !errors.Is(err, ErrNotContainer) {
		t.Errorf("insert into scalar error = %v", err)
	}
}

func TestDelete(t *testing.T) {
	doc := newDoc(t)
	parent, err := Delete(doc, tpath.Of("nums", 0))
	if err != nil {
		t.Fatal(err)
	}
	if !parent.Equal(tpath.Of("nums")) {
		t.Errorf("Delete returned %s", parent)
	}
	if !tag.Equal(get(t, doc, "nums", 0), tag.Int(2)) {
		t.Errorf("later elements did not shift down")
	}
	if _, err := Delete(doc, tpath.Of("b")); err != nil {
		t.Fatal(err)
	}
	if got := keys(doc); got != "a,c,nums,empty,sub" {
		t.Errorf("keys after delete = %s", got)
	}
}

func TestDeleteRoot(t *testing.T) {
	doc := newDoc(t)
	if _, err := Delete(doc, tpath.Path{}); !errors.Is(err, ErrRoot) {
		t.Errorf("Delete(root) error = %v, want ErrRoot", err)
	}
	if doc.Root == nil {
		t.Errorf("root was removed")
	}
}

func TestReplace(t *testing.T) {
	doc := newDoc(t)
	if err := Replace(doc, tpath.Of("a"), tag.String("now a string")); err != nil {
		t.Fatal(err)
	}
	if !tag.Equal(get(t, doc, "a"), tag.String("now a string")) {
		t.Errorf("replace in compound failed")
	}
	if got := keys(doc); got != "a,b,c,nums,empty,sub" {
		t.Errorf("replace moved the key: %s", got)
	}
	if err := Replace(doc, tpath.Of("nums", 1), tag.Short(2)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("replace with wrong list kind error = %v", err)
	}
	if err := Replace(doc, tpath.Of("nums", 1), tag.Int(20)); err != nil {
		t.Fatal(err)
	}
	newRoot := tag.NewCompound()
	if err := Replace(doc, tpath.Path{}, newRoot); err != nil {
		t.Fatal(err)
	}
	if doc.Root != tag.Tag(newRoot) {
		t.Errorf("root was not replaced")
	}
}

func TestReplaceAfterFailedCoerce(t *testing.T) {
	doc := newDoc(t)
	before := tag.Clone(doc.Root)
	v, err := tag.Coerce(tag.IntKind, "not-a-number")
	if !errors.Is(err, tag.ErrInvalidInteger) {
		t.Fatalf("Coerce error = %v", err)
	}
	if err == nil {
		_ = Replace(doc, tpath.Of("c"), v)
	}
	if !tag.Equal(before, doc.Root) {
		t.Errorf("tree changed after a failed coerce")
	}
}

func TestSortList(t *testing.T) {
	doc := newDoc(t)
	err := SortList(doc, tpath.Of("nums"), func(a, b tag.Tag) bool {
		return a.(tag.Int) > b.(tag.Int)
	})
	if err != nil {
		t.Fatal(err)
	}
	want, _ := tag.NewListOf(tag.Int(3), tag.Int(2), tag.Int(1))
	if !tag.Equal(get(t, doc, "nums"), want) {
		t.Errorf("sorted list = %v", get(t, doc, "nums"))
	}
}

func TestAllowedKinds(t *testing.T) {
	doc := newDoc(t)
	if n := len(AllowedKinds(get(t, doc, "sub"))); n != len(tag.Kinds()) {
		t.Errorf("compound allows %d kinds", n)
	}
	if n := len(AllowedKinds(get(t, doc, "empty"))); n != len(tag.Kinds()) {
		t.Errorf("untyped list allows %d kinds", n)
	}
	got := AllowedKinds(get(t, doc, "nums"))
	if len(got) != 1 || got[0] != tag.IntKind {
		t.Errorf("typed list allows %v", got)
	}
	if AllowedKinds(tag.Int(1)) != nil {
		t.Errorf("scalar allows kinds")
	}
}

func TestInsertIntoListAt(t *testing.T) {
	doc := newDoc(t)
	p, err := InsertIntoListAt(doc, tpath.Of("nums"), 0, tag.Int(0))
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal(tpath.Of("nums", 0)) {
		t.Errorf("InsertIntoListAt returned %s", p)
	}
	want, _ := tag.NewListOf(tag.Int(0), tag.Int(1), tag.Int(2), tag.Int(3))
	if !tag.Equal(get(t, doc, "nums"), want) {
		t.Errorf("list = %v", get(t, doc, "nums"))
	}
	if _, err := InsertIntoListAt(doc, tpath.Of("nums"), 9, tag.Int(9)); !errors.Is(err, tree.ErrNotFound) {
		t.Errorf("out of range insert error = %v", err)
	}
}
