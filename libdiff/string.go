package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText returns a character diff of two text answers, line based when
// both are multi line.
func DiffText(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	return diffCfg.DiffCleanupSemantic(diffs)
}

// TextDiffSize is the number of inserted and deleted characters.
func TextDiffSize(diffs []diffpatch.Diff) int {
	res := 0
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			res += len(diffs[i].Text)
		}
	}
	return res
}
