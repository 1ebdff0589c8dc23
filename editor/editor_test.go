package editor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signadot/nbtedit/edit"
	"github.com/signadot/nbtedit/inventory"
	"github.com/signadot/nbtedit/nbt"
	"github.com/signadot/nbtedit/tag"
	"github.com/signadot/nbtedit/tag/tpath"
	"github.com/signadot/nbtedit/tree"
)

func item(slot int8, id string, count int8) *tag.Compound {
	c := tag.NewCompound()
	c.Set("Slot", tag.Byte(slot))
	c.Set("id", tag.String(id))
	c.Set("Count", tag.Byte(count))
	return c
}

func playerDoc(t *testing.T) *tree.Document {
	t.Helper()
	inv, err := tag.NewListOf(item(0, "minecraft:stone", 64), item(103, "minecraft:iron_helmet", 1))
	require.NoError(t, err)
	root := tag.NewCompound()
	root.Set("Health", tag.Float(20))
	root.Set("Score", tag.Int(5))
	root.Set("Pos", tag.LongArray{1, 2, 3})
	root.Set("Tags", tag.NewList())
	root.Set("Inventory", inv)
	root.Set("EnderItems", tag.NewList())
	return &tree.Document{Name: "Player", Root: root}
}

func newSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(&SessionConfig{Codec: &nbt.Codec{}})
	s.SetDocument(playerDoc(t))
	return s
}

func selected(t *testing.T, s *Session) string {
	t.Helper()
	p, ok := s.SelectionPath()
	require.True(t, ok, "nothing selected")
	return displayPath(p)
}

func TestOpenSelectsRoot(t *testing.T) {
	s := newSession(t)
	d, err := s.Save()
	require.NoError(t, err)

	s2 := NewSession(&SessionConfig{Codec: &nbt.Codec{}})
	require.NoError(t, s2.Open(d))
	assert.Equal(t, "(root)", selected(t, s2))
	assert.True(t, tag.Equal(s.Document().Root, s2.Document().Root))
	assert.NotEqual(t, s.ID, s2.ID)
}

type badCodec struct{}

var errBad = errors.New("bad bytes")

func (badCodec) Load([]byte) (*tree.Document, error) { return nil, errBad }
func (badCodec) Save(*tree.Document) ([]byte, error) { return nil, errBad }

func TestCodecErrorsPassThrough(t *testing.T) {
	s := NewSession(&SessionConfig{Codec: badCodec{}})
	assert.ErrorIs(t, s.Open([]byte{1}), errBad)
	assert.Nil(t, s.Document())
	_, err := s.Save()
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestSaveFile(t *testing.T) {
	s := newSession(t)
	assert.ErrorIs(t, s.SaveFile(""), ErrNoFile)

	path := filepath.Join(t.TempDir(), "player.dat")
	require.NoError(t, s.SaveFile(path))
	assert.Equal(t, path, s.File)

	s2 := NewSession(&SessionConfig{Codec: &nbt.Codec{}})
	require.NoError(t, s2.OpenFile(path))
	assert.Equal(t, "Player", s2.Document().Name)

	_, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, s2.SaveFile(""))
}

func TestDetail(t *testing.T) {
	s := newSession(t)
	d := s.Detail()
	assert.Equal(t, Detail{
		Path: "(root)", Kind: tag.CompoundKind, Mode: ModeMessage,
		Message: ContainerText, CanAdd: true,
	}, d)

	require.NoError(t, s.Select(tpath.Of("Health")))
	d = s.Detail()
	assert.Equal(t, ModeEntry, d.Mode)
	assert.Equal(t, HintFloat, d.Hint)
	assert.Equal(t, "20.0", d.Value)
	assert.Equal(t, "Health", d.Name)
	assert.True(t, d.NameEditable)
	assert.True(t, d.CanApply)
	assert.True(t, d.CanDelete)
	assert.False(t, d.CanAdd)

	require.NoError(t, s.Select(tpath.Of("Pos")))
	d = s.Detail()
	assert.Equal(t, ModeText, d.Mode)
	assert.Equal(t, HintArray, d.Hint)
	assert.Equal(t, "1, 2, 3", d.Value)

	require.NoError(t, s.Select(tpath.Of("Inventory", 0)))
	d = s.Detail()
	assert.Equal(t, "Inventory[0]", d.Path)
	assert.Equal(t, "0", d.Name)
	assert.False(t, d.NameEditable)
	assert.False(t, d.CanApply)
	assert.True(t, d.CanAdd)

	require.NoError(t, s.Select(tpath.Of("Inventory", 0, "id")))
	assert.Equal(t, HintString, s.Detail().Hint)
	require.NoError(t, s.Select(tpath.Of("Score")))
	assert.Equal(t, HintInteger, s.Detail().Hint)

	s.ClearSelection()
	d = s.Detail()
	assert.Equal(t, NoSelection, d.Message)
	assert.False(t, d.CanApply || d.CanAdd || d.CanDelete)
}

func TestApplyRenameAndValue(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Select(tpath.Of("Score")))
	require.NoError(t, s.Apply(" Points ", "0x10"))
	assert.Equal(t, "Points", selected(t, s))
	root := s.Document().Root.(*tag.Compound)
	assert.False(t, root.Has("Score"))
	assert.Equal(t, "Points", root.Keys[len(root.Keys)-1])
	v, _ := root.Get("Points")
	assert.Equal(t, tag.Tag(tag.Int(16)), v)
	assert.Equal(t, "16", s.Detail().Value)
}

func TestApplyIsAllOrNothing(t *testing.T) {
	tests := []struct {
		name, newName, value string
		want                 error
	}{
		{"bad value", "Points", "many", tag.ErrInvalidInteger},
		{"blank name", "  ", "7", edit.ErrEmptyName},
		{"duplicate", "Health", "7", edit.ErrDuplicateName},
		{"overflow", "Points", "3000000000", tag.ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t)
			require.NoError(t, s.Select(tpath.Of("Score")))
			err := s.Apply(tt.newName, tt.value)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, tag.Equal(playerDoc(t).Root, s.Document().Root), "document changed")
			assert.Equal(t, "Score", selected(t, s))
		})
	}
}

func TestApplyContainerRenamesOnly(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Select(tpath.Of("Tags")))
	require.NoError(t, s.Apply("Labels", "ignored"))
	assert.Equal(t, "Labels", selected(t, s))
	ref, err := s.Selection()
	require.NoError(t, err)
	assert.Equal(t, tag.ListKind, ref.Tag.Kind())
}

func TestApplyListElement(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Select(tpath.Of("Inventory", 0, "Count")))
	require.NoError(t, s.Apply("Count", "12"))
	require.NoError(t, s.Select(tpath.Of("Inventory", 0, "Count")))
	assert.Equal(t, "12", s.Detail().Value)
}

func TestAddChild(t *testing.T) {
	s := newSession(t)
	var got ChildRequest
	err := s.AddChild(ChildPrompterFunc(func(req ChildRequest) (ChildInput, error) {
		got = req
		return ChildInput{Name: "XpLevel", Kind: tag.IntKind, Value: "30"}, nil
	}))
	require.NoError(t, err)
	assert.True(t, got.RequireName)
	assert.False(t, got.KindFixed)
	assert.Equal(t, tag.Kinds(), got.Kinds)
	assert.Equal(t, "XpLevel", selected(t, s))
}

func TestAddChildPromotesList(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Select(tpath.Of("Tags")))
	add := func(k tag.Kind, v string) error {
		require.NoError(t, s.Select(tpath.Of("Tags")))
		return s.AddChild(ChildPrompterFunc(func(req ChildRequest) (ChildInput, error) {
			return ChildInput{Kind: k, Value: v}, nil
		}))
	}
	require.NoError(t, add(tag.StringKind, "builder"))
	assert.Equal(t, "Tags[0]", selected(t, s))

	require.NoError(t, s.Select(tpath.Of("Tags")))
	req, err := s.ChildRequest()
	require.NoError(t, err)
	assert.True(t, req.KindFixed)
	assert.Equal(t, []tag.Kind{tag.StringKind}, req.Kinds)
	assert.False(t, req.RequireName)

	assert.ErrorIs(t, add(tag.IntKind, "1"), edit.ErrTypeMismatch)
	ref, _ := s.Lookup(tpath.Of("Tags"))
	assert.Equal(t, 1, ref.Tag.(*tag.List).Len())
}

func TestAddChildErrors(t *testing.T) {
	tests := []struct {
		name string
		in   ChildInput
		err  error
		want error
	}{
		{"cancelled", ChildInput{}, ErrCancelled, ErrCancelled},
		{"no name", ChildInput{Kind: tag.IntKind, Value: "1"}, nil, edit.ErrEmptyName},
		{"no value", ChildInput{Name: "x", Kind: tag.IntKind}, nil, ErrMissingValue},
		{"bad value", ChildInput{Name: "x", Kind: tag.ByteArrayKind, Value: "1, 300"}, nil, tag.ErrOutOfRange},
		{"duplicate", ChildInput{Name: "Health", Kind: tag.FloatKind, Value: "1"}, nil, edit.ErrDuplicateName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t)
			err := s.AddChild(ChildPrompterFunc(func(ChildRequest) (ChildInput, error) {
				return tt.in, tt.err
			}))
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, tag.Equal(playerDoc(t).Root, s.Document().Root), "document changed")
		})
	}
}

func TestAddChildContainerNeedsNoValue(t *testing.T) {
	s := newSession(t)
	err := s.AddChild(ChildPrompterFunc(func(ChildRequest) (ChildInput, error) {
		return ChildInput{Name: "Extra", Kind: tag.CompoundKind}, nil
	}))
	require.NoError(t, err)
	ref, err := s.Selection()
	require.NoError(t, err)
	assert.Equal(t, 0, ref.Tag.(*tag.Compound).Len())
}

func TestAddChildNotContainer(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Select(tpath.Of("Health")))
	_, err := s.ChildRequest()
	assert.ErrorIs(t, err, edit.ErrNotContainer)
}

func TestDelete(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Select(tpath.Of("Inventory", 0)))
	require.NoError(t, s.Delete())
	assert.Equal(t, "Inventory", selected(t, s))
	ref, _ := s.Lookup(tpath.Of("Inventory", 0, "id"))
	assert.Equal(t, tag.Tag(tag.String("minecraft:iron_helmet")), ref.Tag)

	require.NoError(t, s.Select(tpath.Path{}))
	assert.ErrorIs(t, s.Delete(), edit.ErrRoot)
}

func TestInventories(t *testing.T) {
	s := newSession(t)
	views, err := s.Inventories()
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Inventory", views[0].Layout.Title)
	assert.Equal(t, "Ender Chest", views[1].Layout.Title)
	assert.Equal(t, "Slot 0\nminecraft:stone ×64", views[0].Grid[3][0].Text())
	assert.Equal(t, "Helmet\nminecraft:iron_helmet ×1", views[0].Special[3].Text())

	s.SetDocument(&tree.Document{Root: tag.NewCompound()})
	views, err = s.Inventories()
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestEditSlot(t *testing.T) {
	s := newSession(t)
	var req inventory.Request
	err := s.EditSlot("Inventory", 5, SlotPrompterFunc(func(r inventory.Request) (inventory.Action, error) {
		req = r
		return inventory.Save{Slot: 5, ID: "minecraft:torch", Count: 16}, nil
	}))
	require.NoError(t, err)
	assert.False(t, req.CanDelete())
	assert.Equal(t, inventory.Save{Slot: 5, Count: 1}, req.Defaults())
	assert.Equal(t, "Inventory", selected(t, s))

	ref, _ := s.Lookup(tpath.Of("Inventory", 1, "id"))
	assert.Equal(t, tag.Tag(tag.String("minecraft:torch")), ref.Tag)

	err = s.EditSlot("Ender Chest", 0, SlotPrompterFunc(func(inventory.Request) (inventory.Action, error) {
		return inventory.Delete{}, nil
	}))
	assert.ErrorIs(t, err, inventory.ErrNothingToDelete)

	err = s.EditSlot("Inventory", 0, SlotPrompterFunc(func(inventory.Request) (inventory.Action, error) {
		return inventory.Cancelled{}, nil
	}))
	assert.ErrorIs(t, err, ErrCancelled)

	assert.ErrorIs(t, s.EditSlot("Pockets", 0, nil), inventory.ErrNotInventory)
}

func TestRows(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Select(tpath.Of("Score")))
	rows := s.Rows()
	require.NotEmpty(t, rows)
	assert.Equal(t, "Player", rows[0].Label)
	assert.Equal(t, `Player Compound: 6 entries`, rows[0].Line)
	assert.Equal(t, 0, rows[0].Depth)
	var sel []string
	for _, r := range rows {
		if r.Selected {
			sel = append(sel, r.Line)
		}
	}
	assert.Equal(t, []string{"Score Int: 5"}, sel)
	assert.Equal(t, "[0] Compound: 3 entries", rows[6].Line)
	assert.Equal(t, 2, rows[6].Depth)
}

func TestNoDocument(t *testing.T) {
	s := NewSession(&SessionConfig{Codec: &nbt.Codec{}})
	_, err := s.Selection()
	assert.ErrorIs(t, err, ErrNoDocument)
	assert.ErrorIs(t, s.Select(tpath.Path{}), ErrNoDocument)
	assert.ErrorIs(t, s.Delete(), ErrNoDocument)
	assert.ErrorIs(t, s.EditSlot("Inventory", 0, nil), ErrNoDocument)
	assert.Nil(t, s.Rows())
}
