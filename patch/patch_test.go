package patch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tree"
)

func doc() *tree.Document {
	root := tag.NewCompound()
	root.Set("z", tag.Int(1))
	root.Set("Health", tag.Float(20))
	root.Set("a", tag.Long(9007199254740993))
	return &tree.Document{Name: "Data", Root: root}
}

func TestApply(t *testing.T) {
	d := doc()
	p := []byte(`[
		{"op": "replace", "path": "/value/Health/value", "value": 5.5},
		{"op": "add", "path": "/value/m", "value": {"type": "String", "value": "x"}},
		{"op": "add", "path": "/value/b", "value": {"type": "Byte", "value": 2}},
		{"op": "remove", "path": "/value/z"}
	]`)
	out, err := Apply(d, p)
	require.NoError(t, err)
	assert.Equal(t, "Data", out.Name)
	c := out.Root.(*tag.Compound)
	assert.Equal(t, []string{"Health", "a", "b", "m"}, c.Keys)
	h, _ := c.Get("Health")
	assert.Equal(t, tag.Tag(tag.Float(5.5)), h)
	a, _ := c.Get("a")
	assert.Equal(t, tag.Tag(tag.Long(9007199254740993)), a)

	assert.True(t, tag.Equal(doc().Root, d.Root), "input document changed")
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name  string
		patch string
	}{
		{"not a patch", `{"op": "add"}`},
		{"missing path", `[{"op": "remove", "path": "/value/nope"}]`},
		{"not a tag", `[{"op": "replace", "path": "/value/z", "value": 3}]`},
		{"bad kind", `[{"op": "replace", "path": "/value/z/type", "value": "Huge"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(doc(), []byte(tt.patch))
			assert.True(t, errors.Is(err, ErrPatch), "error = %v", err)
		})
	}
}

func TestFromYAML(t *testing.T) {
	j, err := FromYAML([]byte("- op: remove\n  path: /value/z\n"))
	require.NoError(t, err)
	out, err := Apply(doc(), j)
	require.NoError(t, err)
	assert.False(t, out.Root.(*tag.Compound).Has("z"))
}
