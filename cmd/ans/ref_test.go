package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestParseRef(t *testing.T) {
	ref, file, err := parseRef("get", []string{"Author Full Name", "1", "0", "a.anx"})
	if err != nil {
		t.Fatal(err)
	}
	if file != "a.anx" {
		t.Errorf("file = %q", file)
	}
	want := ansRef{Name: "Author Full Name", Indices: []int{1, 0}}
	if diff := cmp.Diff(want, ref); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := ref.String(); got != "Author Full Name[1][0]" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseRefErrors(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"a.anx"},
		{"", "a.anx"},
		{"Name", "x", "a.anx"},
		{"Name", "-1", "a.anx"},
	} {
		if _, _, err := parseRef("get", args); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%q: got %v, want usage error", args, err)
		}
	}
}

func TestSetValueType(t *testing.T) {
	cfg := &SetConfig{}
	if got, err := cfg.valueType(0); err != nil || got != 0 {
		t.Errorf("default: got %v, %v", got, err)
	}
	cfg.Type = "Date"
	if got, _ := cfg.valueType(0); got.String() != "Date" {
		t.Errorf("got %v", got)
	}
	cfg.Type = "Unknown"
	if _, err := cfg.valueType(0); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v, want usage error", err)
	}
}
