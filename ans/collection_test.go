package ans

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollectionCaseInsensitive(t *testing.T) {
	c := New()
	c.Add(NewAnswer("Name", TextType))
	for _, name := range []string{"Name", "NAME", "name", "nAmE"} {
		a, ok := c.TryGetAnswer(name)
		if !ok {
			t.Errorf("TryGetAnswer(%q) failed", name)
			continue
		}
		if a.Name() != "Name" {
			t.Errorf("TryGetAnswer(%q).Name() = %q, want original case", name, a.Name())
		}
	}
	if _, ok := c.TryGetAnswer("does not exist"); ok {
		t.Error("lookup of a missing name succeeded")
	}
	if _, err := c.Answer("does not exist"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Answer on missing name = %v, want ErrNotFound", err)
	}
}

func TestCollectionFoldsUnicode(t *testing.T) {
	c := New()
	c.Add(NewAnswer("Straße", TextType))
	if _, ok := c.TryGetAnswer("STRASSE"); !ok {
		t.Error("full case folding expected")
	}
}

func TestCollectionOrderAndReplace(t *testing.T) {
	c := New()
	for _, n := range []string{"b", "A", "c"} {
		c.Add(NewAnswer(n, TextType))
	}
	repl := NewAnswer("a", NumberType)
	c.Add(repl)
	if diff := cmp.Diff([]string{"b", "a", "c"}, c.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	if c.AnswerCount() != 3 {
		t.Errorf("AnswerCount = %d, want 3", c.AnswerCount())
	}
	if !c.Remove("B") {
		t.Fatal("Remove(B) failed")
	}
	if diff := cmp.Diff([]string{"a", "c"}, c.Names()); diff != "" {
		t.Errorf("names after remove (-want +got):\n%s", diff)
	}
	if a, ok := c.TryGetAnswer("C"); !ok || a.Name() != "c" {
		t.Error("index not rebuilt after remove")
	}
	if c.Remove("B") {
		t.Error("second remove should report false")
	}
}

func TestCollectionOverlay(t *testing.T) {
	base := New()
	x := NewAnswer("X", TextType)
	x.SetValue(Text("old"))
	base.Add(x)
	base.Add(NewAnswer("Y", TextType))

	top := New()
	x2 := NewAnswer("x", TextType)
	x2.SetValue(Text("new"))
	top.Add(x2)
	top.Add(NewAnswer("Z", TextType))

	res := base.Clone()
	res.Overlay(top)
	if diff := cmp.Diff([]string{"x", "Y", "Z"}, res.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	v, _ := GetValue[TextValue](mustAnswer(t, res, "X"))
	if v.Value != "new" {
		t.Errorf("overlay did not replace X, got %q", v.Value)
	}
	v, _ = GetValue[TextValue](mustAnswer(t, base, "X"))
	if v.Value != "old" {
		t.Errorf("overlay modified the base collection")
	}
}

func TestCollectionAll(t *testing.T) {
	c := New()
	c.Add(NewAnswer("one", TextType))
	c.Add(NewAnswer("two", TextType))
	var got []string
	for name := range c.All() {
		got = append(got, name)
		break
	}
	if diff := cmp.Diff([]string{"one"}, got); diff != "" {
		t.Errorf("early break (-want +got):\n%s", diff)
	}
}

func mustAnswer(t *testing.T, c *Collection, name string) *Answer {
	t.Helper()
	a, err := c.Answer(name)
	if err != nil {
		t.Fatal(err)
	}
	return a
}
