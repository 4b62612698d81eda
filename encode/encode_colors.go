package encode

import (
	"strings"

	"github.com/hdanswers/answerset/ans"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ans.ValueType
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	IndexColor
	SepColor
	ValueColor
	UnansweredColor
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
	types := append(ans.Types(), ans.UnknownType)
	for _, t := range types {
		able := Colorable{Type: t, Attr: NameColor}
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = IndexColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = UnansweredColor
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ans.TextType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Type = ans.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = ans.DateType
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Type = ans.TrueFalseType
	colors.Map[able] = color.CyanString
	able.Type = ans.MultipleChoiceType
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ans.ValueType, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ans.ValueType, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
