package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"
)

// ansRef is an answer name with a repeat position.
type ansRef struct {
	Name    string
	Indices []int
}

func (r ansRef) String() string {
	s := r.Name
	for _, i := range r.Indices {
		s += "[" + strconv.Itoa(i) + "]"
	}
	return s
}

// parseRef reads "name idx... file" from args. The file is always last.
func parseRef(cmd string, args []string) (ansRef, string, error) {
	if len(args) < 2 {
		return ansRef{}, "", fmt.Errorf("%w: %s requires a name and a file", cli.ErrUsage, cmd)
	}
	ref := ansRef{Name: args[0]}
	if ref.Name == "" {
		return ansRef{}, "", fmt.Errorf("%w: empty answer name", cli.ErrUsage)
	}
	for _, a := range args[1 : len(args)-1] {
		i, err := strconv.Atoi(a)
		if err != nil || i < 0 {
			return ansRef{}, "", fmt.Errorf("%w: invalid index %q", cli.ErrUsage, a)
		}
		ref.Indices = append(ref.Indices, i)
	}
	return ref, args[len(args)-1], nil
}
