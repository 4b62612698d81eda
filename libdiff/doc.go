// Package libdiff compares answer sets.
//
// # Usage
//
//	res := libdiff.Diff(old, new)
//	if !res.Empty() {
//	    res.Print(os.Stdout, true)
//	}
//
// Answers are matched by folded name. Within an answer, trees are compared
// position by position: leaves by value, repeats by their children.
//
// # Related Packages
//
//   - github.com/hdanswers/answerset/ans - the answer store
//   - github.com/hdanswers/answerset/patch - apply changes to answer sets
package libdiff
