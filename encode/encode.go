package encode

import (
	"fmt"
	"io"

	"github.com/hdanswers/answerset/ans"
	"github.com/hdanswers/answerset/debug"
	"github.com/hdanswers/answerset/format"
)

type EncState struct {
	indent int
	wire   bool
	format format.Format

	Color func(ans.ValueType, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent: 2,
		Color:  func(_ ans.ValueType, _ ColorAttr, s string) string { return s },
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes c to w in the format selected by opts, XML by default.
func Encode(c *ans.Collection, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if debug.Encode() {
		debug.Logf("encode %v as %s", c, es.format)
	}
	switch es.format {
	case format.XMLFormat:
		return writeXML(c, w, es)
	case format.JSONFormat:
		return writeJSON(c, w, es)
	case format.YAMLFormat:
		return writeYAML(c, w, es)
	case format.TextFormat:
		return writeText(c, w, es)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

// WriteXML writes c as an answer file. Format options are ignored. A name or
// value holding invalid UTF-8 or a character XML 1.0 excludes fails with
// ErrXMLText rather than being altered.
func WriteXML(c *ans.Collection, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	es.format = format.XMLFormat
	return writeXML(c, w, es)
}
