package ans

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestAnswerIndexFallback(t *testing.T) {
	a := NewAnswerFromNode("Author Full Name", TextType, authorTree())
	if !a.IsRepeated() {
		t.Fatal("expected repeated answer")
	}
	check := func(want string, answered bool, indices ...int) {
		t.Helper()
		v, err := GetValue[TextValue](a, indices...)
		if err != nil {
			t.Fatalf("GetValue(%v): %v", indices, err)
		}
		if v.IsAnswered() != answered {
			t.Errorf("GetValue(%v).IsAnswered() = %v, want %v", indices, v.IsAnswered(), answered)
		}
		if answered && v.Value != want {
			t.Errorf("GetValue(%v) = %q, want %q", indices, v.Value, want)
		}
	}
	check("A", true, 0, 0)
	check("", false, 0, 1)
	check("", false, 1)
	check("", false, 1, 0)
	check("A", true)
	check("A", true, 0)
	check("A", true, 0, 0, 0)
}

func TestAnswerChildCount(t *testing.T) {
	a := NewAnswerFromNode("Author Full Name", TextType, authorTree())
	for _, tt := range []struct {
		indices []int
		want    int
	}{
		{nil, 1},
		{[]int{0}, 1},
		{[]int{1}, 0},
	} {
		got, err := a.GetChildCount(tt.indices...)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("GetChildCount(%v) = %d, want %d", tt.indices, got, tt.want)
		}
	}
	if _, err := a.GetChildCount(-1); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("GetChildCount(-1) = %v, want ErrInvalidIndex", err)
	}
	s := NewAnswer("scalar", TextType)
	if n, _ := s.GetChildCount(); n != 0 {
		t.Errorf("scalar child count = %d, want 0", n)
	}
}

func TestAnswerTypeMismatch(t *testing.T) {
	a := NewAnswer("Name", TextType)
	if err := a.SetValue(Text("x")); err != nil {
		t.Fatal(err)
	}
	if _, err := GetValue[DateValue](a); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("GetValue[DateValue] on Text answer = %v, want ErrTypeMismatch", err)
	}
	if err := a.SetValue(TrueFalse(true)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("SetValue(TrueFalse) on Text answer = %v, want ErrTypeMismatch", err)
	}
	v, err := GetValue[TextValue](a)
	if err != nil || v.Value != "x" {
		t.Errorf("answer should be unchanged after a failed set, got %v %v", v, err)
	}
}

func TestAnswerSetValue(t *testing.T) {
	a := NewRepeatedAnswer("Children", NumberType)
	vals := []int64{3, 5, 8}
	for i, n := range vals {
		if err := a.SetValue(Number(decimal.NewFromInt(n)), i); err != nil {
			t.Fatal(err)
		}
	}
	if !a.IsRepeated() || !a.Answered() {
		t.Fatal("expected an answered repeated answer")
	}
	if n, _ := a.GetChildCount(); n != len(vals) {
		t.Errorf("child count = %d, want %d", n, len(vals))
	}
	for i, n := range vals {
		v, err := GetValue[NumberValue](a, i)
		if err != nil {
			t.Fatal(err)
		}
		if !v.Value.Equal(decimal.NewFromInt(n)) {
			t.Errorf("value %d = %s, want %d", i, v.Value, n)
		}
	}
	if err := a.SetValue(Number(decimal.NewFromInt(1)), 6); err != nil {
		t.Fatal(err)
	}
	if a.Root().Len() != 7 {
		t.Errorf("raw length = %d, want 7", a.Root().Len())
	}
	v, _ := GetValue[NumberValue](a, 4)
	if v.IsAnswered() {
		t.Errorf("padding value should be unanswered")
	}
	if v, _ := GetValue[NumberValue](a, 0); !v.Value.Equal(decimal.NewFromInt(3)) {
		t.Errorf("out of range write changed child 0 to %s", v.Value)
	}
}

func TestAnswerUnknownTypeBinds(t *testing.T) {
	a := NewRepeatedAnswer("x", UnknownType)
	if v, err := a.Value(0); err != nil || v != nil {
		t.Errorf("untyped empty answer = %v, %v; want nil, nil", v, err)
	}
	d := time.Date(2013, 4, 5, 13, 0, 0, 0, time.Local)
	if err := a.SetValue(Date(d), 0); err != nil {
		t.Fatal(err)
	}
	if a.Type() != DateType {
		t.Errorf("type = %s, want Date", a.Type())
	}
	got, err := GetValue[DateValue](a, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "2013-04-05" {
		t.Errorf("date = %s", got)
	}
}

func TestAnswerIsRepeatedFixed(t *testing.T) {
	a := NewAnswer("scalar", TextType)
	if err := a.SetValue(Text("v"), 3, 2); err != nil {
		t.Fatal(err)
	}
	if a.IsRepeated() || a.Root().IsRepeat() {
		t.Error("a scalar answer must not become repeated")
	}
}

func TestAnswerInsertDeleteIndex(t *testing.T) {
	a := NewRepeatedAnswer("x", TextType)
	for i, s := range []string{"a", "b", "c"} {
		if err := a.SetValue(Text(s), i); err != nil {
			t.Fatal(err)
		}
	}
	if err := a.InsertIndex(1); err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "", "b", "c"}
	for i, w := range want {
		v, _ := a.Value(i)
		if v.String() != w {
			t.Errorf("after insert [%d] = %q, want %q", i, v, w)
		}
	}
	if err := a.DeleteIndex(0); err != nil {
		t.Fatal(err)
	}
	if v, _ := a.Value(0); v.IsAnswered() {
		t.Errorf("after delete [0] should be the inserted placeholder, got %q", v)
	}
	if err := a.DeleteIndex(9); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("DeleteIndex(9) = %v, want ErrInvalidIndex", err)
	}
	if err := NewAnswer("s", TextType).InsertIndex(0); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("InsertIndex on scalar = %v, want ErrInvalidIndex", err)
	}
}

func TestAnswerClone(t *testing.T) {
	a := NewAnswerFromNode("x", TextType, authorTree())
	b := a.Clone()
	if err := b.SetValue(Text("B"), 0, 0); err != nil {
		t.Fatal(err)
	}
	v, _ := GetValue[TextValue](a, 0, 0)
	if v.Value != "A" {
		t.Errorf("clone shares tree with original")
	}
}
