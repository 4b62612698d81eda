package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hdanswers/answerset/ans"
	"github.com/hdanswers/answerset/format"
	"github.com/hdanswers/answerset/parse"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func sample() *ans.Collection {
	c := ans.New()
	c.Title = `Q&A "draft"`
	c.Add(ans.NewAnswer("Editor Full Name", ans.TextType))
	c.Add(ans.NewAnswerFromNode("Author Full Name", ans.TextType, ans.NewRepeat(
		ans.NewRepeat(ans.NewLeaf(ans.Text("A <b>")), ans.NewLeaf(ans.TextValue{})),
		ans.NewRepeat(),
	)))
	price := ans.NewAnswer("Price", ans.NumberType)
	price.SetValue(ans.Number(decimal.RequireFromString("10.25")))
	price.Save = false
	c.Add(price)
	due := ans.NewAnswer("Due", ans.DateType)
	due.SetValue(ans.Date(time.Date(2013, 4, 5, 0, 0, 0, 0, time.UTC)))
	due.UserExtendible = false
	c.Add(due)
	tf := ans.NewRepeatedAnswer("Flags", ans.TrueFalseType)
	tf.SetValue(ans.TrueFalse(true), 0)
	tf.SetValue(ans.WithLocked(ans.TrueFalse(false), true), 1)
	c.Add(tf)
	mc := ans.NewAnswer("Colors", ans.MultipleChoiceType)
	mc.SetValue(ans.MultipleChoice("red", "blue & green"))
	c.Add(mc)
	return c
}

const sampleXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<AnswerSet title="Q&amp;A &#34;draft&#34;" version="1.1" useMangledNames="false">
  <Answer name="Editor Full Name">
    <TextValue unans="true"/>
  </Answer>
  <Answer name="Author Full Name">
    <RptValue>
      <RptValue>
        <TextValue>A &lt;b&gt;</TextValue>
        <TextValue unans="true"/>
      </RptValue>
      <RptValue></RptValue>
    </RptValue>
  </Answer>
  <Answer name="Price" save="false">
    <NumValue>10.25</NumValue>
  </Answer>
  <Answer name="Due" userExtendible="false">
    <DateValue>2013-04-05</DateValue>
  </Answer>
  <Answer name="Flags">
    <RptValue>
      <TFValue>true</TFValue>
      <TFValue userModifiable="false">false</TFValue>
    </RptValue>
  </Answer>
  <Answer name="Colors">
    <MCValue><SelValue>red</SelValue><SelValue>blue &amp; green</SelValue></MCValue>
  </Answer>
</AnswerSet>
`

func TestWriteXML(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteXML(sample(), buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sampleXML, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestXMLRoundTrip(t *testing.T) {
	c := sample()
	c2, err := parse.ReadXML([]byte(MustXML(c)))
	if err != nil {
		t.Fatal(err)
	}
	assertSame(t, c, c2)
	if got := MustXML(c2); got != sampleXML {
		t.Errorf("second write differs:\n%s", got)
	}
}

func TestEmptyRepeatRoundTrip(t *testing.T) {
	doc := `<AnswerSet><Answer name="x"><RptValue><RptValue></RptValue></RptValue></Answer></AnswerSet>`
	c, err := parse.ReadXML([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	out := MustString(c, EncodeWire(true))
	want := `<Answer name="x"><RptValue><RptValue></RptValue></RptValue></Answer>`
	if !strings.Contains(out, want) {
		t.Errorf("got %s\nwant it to contain %s", out, want)
	}
	if strings.Contains(out, "\n") {
		t.Errorf("wire output has line breaks")
	}
}

func TestWriteXMLPlaceholders(t *testing.T) {
	c := ans.New()
	a := ans.NewRepeatedAnswer("Kids", ans.NumberType)
	a.SetValue(ans.Number(decimal.NewFromInt(2)), 2)
	c.Add(a)
	c.Add(ans.NewAnswer("Untyped", ans.UnknownType))
	out := MustString(c, Indent(0))
	for _, want := range []string{
		"<RptValue>\n<NumValue unans=\"true\"/>\n<NumValue unans=\"true\"/>\n<NumValue>2</NumValue>\n</RptValue>",
		"<TextValue unans=\"true\"/>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestWriteXMLUnknownTypeReadsBackAsText(t *testing.T) {
	c := ans.New()
	c.Add(ans.NewAnswer("Untyped", ans.UnknownType))
	c2, err := parse.ReadXML([]byte(MustXML(c)))
	if err != nil {
		t.Fatal(err)
	}
	a, err := c2.Answer("Untyped")
	if err != nil {
		t.Fatal(err)
	}
	if a.Type() != ans.TextType || a.Answered() {
		t.Errorf("got %s answered=%v, want an unanswered Text answer", a.Type(), a.Answered())
	}
}

func TestWriteXMLRejectsUnrepresentableText(t *testing.T) {
	tests := []struct {
		name string
		c    func() *ans.Collection
	}{
		{"bad utf8 name", func() *ans.Collection {
			c := ans.New()
			c.Add(ans.NewAnswer("bad\xff", ans.TextType))
			return c
		}},
		{"control char value", func() *ans.Collection {
			c := ans.New()
			a := ans.NewAnswer("v", ans.TextType)
			a.SetValue(ans.Text("v\x01"))
			c.Add(a)
			return c
		}},
		{"bad utf8 choice", func() *ans.Collection {
			c := ans.New()
			a := ans.NewAnswer("mc", ans.MultipleChoiceType)
			a.SetValue(ans.MultipleChoice("ok", "\xc3"))
			c.Add(a)
			return c
		}},
		{"control char title", func() *ans.Collection {
			c := ans.New()
			c.Title = "t\x00"
			return c
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			err := WriteXML(tt.c(), buf)
			if !errors.Is(err, ErrXMLText) {
				t.Errorf("got %v, want ErrXMLText", err)
			}
		})
	}

	c := ans.New()
	a := ans.NewAnswer("Replacement \uFFFD ok", ans.TextType)
	a.SetValue(ans.Text("tab\tand \U0001F600"))
	c.Add(a)
	c2, err := parse.ReadXML([]byte(MustXML(c)))
	if err != nil {
		t.Fatal(err)
	}
	got, err := c2.Answer("replacement \uFFFD ok")
	if err != nil {
		t.Fatal(err)
	}
	v, err := ans.GetValue[ans.TextValue](got)
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "tab\tand \U0001F600" {
		t.Errorf("got %q", v.String())
	}
}

func TestFormatsRoundTrip(t *testing.T) {
	for _, f := range []format.Format{format.XMLFormat, format.JSONFormat, format.YAMLFormat} {
		t.Run(f.String(), func(t *testing.T) {
			c := sample()
			buf := &bytes.Buffer{}
			if err := Encode(c, buf, EncodeFormat(f)); err != nil {
				t.Fatal(err)
			}
			c2, err := parse.Parse(buf.Bytes())
			if err != nil {
				t.Fatalf("%v\n%s", err, buf)
			}
			assertSame(t, c, c2)
		})
	}
}

func TestWriteText(t *testing.T) {
	out := MustString(sample(), EncodeFormat(format.TextFormat))
	want := `Editor Full Name: <unanswered>
Author Full Name[0][0]: A <b>
Author Full Name[0][1]: <unanswered>
Author Full Name[1]: []
Price: 10.25
Due: 2013-04-05
Flags[0]: true
Flags[1]: false (locked)
Colors: red|blue & green
`
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWriteTextColors(t *testing.T) {
	colors := NewColors()
	colors.Map = map[Colorable]func(string, ...any) string{
		{Type: ans.NumberType, Attr: ValueColor}: func(s string, _ ...any) string { return "<" + s + ">" },
	}
	out := MustString(sample(), EncodeFormat(format.TextFormat), EncodeColors(colors))
	if !strings.Contains(out, "Price: <10.25>") {
		t.Errorf("color not applied:\n%s", out)
	}
}

// assertSame compares names, flags and the value at every leaf path.
func assertSame(t *testing.T, want, got *ans.Collection) {
	t.Helper()
	if diff := cmp.Diff(want.Names(), got.Names()); diff != "" {
		t.Fatalf("names (-want +got):\n%s", diff)
	}
	for name, a := range want.All() {
		b, ok := got.TryGetAnswer(name)
		if !ok {
			t.Fatalf("%s missing", name)
		}
		if a.IsRepeated() != b.IsRepeated() || a.Answered() != b.Answered() || a.Type() != b.Type() {
			t.Errorf("%s: repeated %v/%v answered %v/%v type %s/%s", name,
				a.IsRepeated(), b.IsRepeated(), a.Answered(), b.Answered(), a.Type(), b.Type())
		}
		if a.Save != b.Save || a.UserExtendible != b.UserExtendible {
			t.Errorf("%s: flags differ", name)
		}
		a.Root().Walk(func(path []int, n *ans.Node) error {
			if n.IsRepeat() {
				m := nodeAt(b.Root(), path)
				if m == nil || !m.IsRepeat() || m.Len() != n.Len() {
					t.Errorf("%s%v: repeat shape differs", name, path)
				}
				return nil
			}
			va, _ := a.Value(path...)
			vb, _ := b.Value(path...)
			if !ans.Equal(va, vb) {
				t.Errorf("%s%v: %v != %v", name, path, va, vb)
			}
			return nil
		})
	}
}

func nodeAt(n *ans.Node, path []int) *ans.Node {
	for _, i := range path {
		if n == nil {
			return nil
		}
		n = n.Child(i)
	}
	return n
}
