package ans

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func TestCollectionJSON(t *testing.T) {
	c := New()
	c.Title = "t"
	author := NewAnswerFromNode("Author", TextType, authorTree())
	author.Save = false
	c.Add(author)
	mc := NewAnswer("Colors", MultipleChoiceType)
	mc.SetValue(WithLocked(MultipleChoice("red", "blue"), true))
	c.Add(mc)
	num := NewAnswer("Count", NumberType)
	num.SetValue(Number(decimal.RequireFromString("1.50")))
	c.Add(num)

	d, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	res := New()
	if err := json.Unmarshal(d, res); err != nil {
		t.Fatalf("unmarshal %s: %v", d, err)
	}
	if res.Title != "t" || res.AnswerCount() != 3 {
		t.Fatalf("got title %q count %d", res.Title, res.AnswerCount())
	}
	a := mustAnswer(t, res, "author")
	if a.Save || !a.UserExtendible || !a.IsRepeated() {
		t.Errorf("metadata lost: save=%v ext=%v rpt=%v", a.Save, a.UserExtendible, a.IsRepeated())
	}
	if a.Root().Child(1).Len() != 0 || !a.Root().Child(1).IsRepeat() {
		t.Error("empty repeat lost")
	}
	v, _ := GetValue[TextValue](a)
	if v.Value != "A" {
		t.Errorf("author = %q", v.Value)
	}
	m, _ := GetValue[MultipleChoiceValue](mustAnswer(t, res, "Colors"))
	if m.String() != "red|blue" || m.UserModifiable() {
		t.Errorf("colors = %q locked=%v", m, !m.UserModifiable())
	}
	n, _ := GetValue[NumberValue](mustAnswer(t, res, "Count"))
	if !n.Value.Equal(decimal.RequireFromString("1.5")) {
		t.Errorf("count = %s", n.Value)
	}
}

func TestCollectionJSONErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"two payloads": `{"answers":[{"name":"a","value":{"text":"x","tf":true}}]}`,
		"no payload":   `{"answers":[{"name":"a","value":{}}]}`,
		"no name":      `{"answers":[{"value":{"text":"x"}}]}`,
		"duplicate":    `{"answers":[{"name":"a","value":{"text":"x"}},{"name":"A","value":{"text":"y"}}]}`,
		"scalar value": `{"answers":[{"name":"a","value":"x"}]}`,
		"bad number":   `{"answers":[{"name":"a","value":{"num":"one"}}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			err := json.Unmarshal([]byte(doc), New())
			if !errors.Is(err, ErrParse) {
				t.Errorf("got %v, want ErrParse", err)
			}
		})
	}
}
