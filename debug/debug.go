package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Resolve bool
	Encode  bool
	Patch   bool
	Diff    bool
	Eval    bool
	Decode  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("ANS_DEBUG_PARSE")
	d.Resolve = boolEnv("ANS_DEBUG_RESOLVE")
	d.Encode = boolEnv("ANS_DEBUG_ENCODE")
	d.Patch = boolEnv("ANS_DEBUG_PATCH")
	d.Diff = boolEnv("ANS_DEBUG_DIFF")
	d.Eval = boolEnv("ANS_DEBUG_EVAL")
	d.Decode = boolEnv("ANS_DEBUG_DECODE")
	if d.Resolve {
		traceResolve()
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Resolve() bool {
	return d.Resolve
}
func Encode() bool {
	return d.Encode
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
func Eval() bool {
	return d.Eval
}
func Decode() bool {
	return d.Decode
}
