package parse

import (
	"fmt"

	"github.com/hdanswers/answerset/format"
)

// Pos is a 1-based position in an XML document.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("line=%d, col=%d", p.Line, p.Col)
}

type parseOpts struct {
	format    format.Format
	detect    bool
	positions map[string]Pos
}

type ParseOption func(*parseOpts)

func ParseXML() ParseOption {
	return ParseFormat(format.XMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) {
		o.format = f
		o.detect = false
	}
}

// ParsePositions records, for each answer read from XML, the position just
// past its start tag. Keys are folded answer names, see ans.FoldName.
func ParsePositions(m map[string]Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	res := &parseOpts{detect: true}
	for _, f := range opts {
		f(res)
	}
	return res
}
