package encode

import "github.com/hdanswers/answerset/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Indent sets the number of spaces per nesting level.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n >= 0 {
			es.indent = n
		}
	}
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}

// EncodeWire produces compact output: no line breaks or indentation.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
