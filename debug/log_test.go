package debug

import (
	"testing"

	"github.com/hdanswers/answerset/ans"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTraceResolve(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	old := Logger()
	SetLogger(zap.New(core))
	defer logger.Store(old)
	traceResolve()
	defer ans.SetResolveTrace(nil)

	a := ans.NewRepeatedAnswer("Kids", ans.TextType)
	if err := a.SetValue(ans.Text("x"), 1); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Value(5); err != nil {
		t.Fatal(err)
	}
	c := ans.New()
	c.Add(ans.NewRepeatedAnswer("Empty", ans.TextType))
	e, _ := c.Answer("Empty")
	if _, err := e.Value(0); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"resolve write [1]: [node repeat=false",
		"resolve read [5]: [node repeat=false",
		"resolve read [0]: [no node]",
	} {
		if n := logs.FilterMessageSnippet(want).Len(); n != 1 {
			t.Errorf("%q logged %d times, want 1; all: %v", want, n, logs.All())
		}
	}
}
