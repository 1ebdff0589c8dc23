package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tree"
)

func player(t *testing.T) *tree.Document {
	t.Helper()
	mk := func(slot int8, id string, count int8) *tag.Compound {
		c := tag.NewCompound()
		c.Set("Slot", tag.Byte(slot))
		c.Set("id", tag.String(id))
		c.Set("Count", tag.Byte(count))
		return c
	}
	inv, err := tag.NewListOf(mk(0, "minecraft:stone", 64), mk(1, "minecraft:torch", 3), mk(2, "other:thing", 40))
	if err != nil {
		t.Fatal(err)
	}
	root := tag.NewCompound()
	root.Set("Health", tag.Float(20))
	root.Set("Inventory", inv)
	return &tree.Document{Root: root}
}

func paths(refs []tree.NodeRef) []string {
	var res []string
	for _, r := range refs {
		res = append(res, r.Path.String())
	}
	return res
}

func TestFind(t *testing.T) {
	doc := player(t)
	tests := []struct {
		expr string
		want []string
	}{
		{`name == "Count" && value > 32`, []string{"Inventory[0].Count", "Inventory[2].Count"}},
		{`kind == "String" && value startsWith "minecraft:"`, []string{"Inventory[0].id", "Inventory[1].id"}},
		{`kind == "List" && size == 3`, []string{"Inventory"}},
		{`depth == 0`, []string{""}},
		{`name == "Health" && at("Inventory[1].Count") == 3`, []string{"Health"}},
		{`at("Nope") == nil && depth == 1`, []string{"Health", "Inventory"}},
		{`false`, nil},
	}
	for _, tt := range tests {
		got, err := Find(doc, tt.expr)
		if err != nil {
			t.Errorf("Find(%s): %v", tt.expr, err)
			continue
		}
		if diff := cmp.Diff(tt.want, paths(got)); diff != "" {
			t.Errorf("Find(%s) (-want +got):\n%s", tt.expr, diff)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	doc := player(t)
	for _, src := range []string{`name ==`, `depth + 1`, `nosuchvar == 1`} {
		if _, err := Find(doc, src); !errors.Is(err, ErrQuery) {
			t.Errorf("Find(%s) error = %v, want ErrQuery", src, err)
		}
	}
}
