package encode

import (
	"strings"

	"github.com/signadot/nbtedit/tag"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind tag.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	TagColor
	ValueColor
	SepColor
	IndexColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	kinds := append([]tag.Kind{tag.EndKind}, tag.Kinds()...)
	for _, k := range kinds {
		able := Colorable{Kind: k, Attr: TagColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = IndexColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = ValueColor
		switch {
		case k.IsInteger(), k.IsFloat():
			colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
		case k.IsArray():
			colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
		case k.IsContainer():
			colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
		case k == tag.StringKind:
			colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
		default:
			colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
		}
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k tag.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k tag.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
