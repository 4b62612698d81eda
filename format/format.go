package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	XMLFormat Format = iota
	JSONFormat
	YAMLFormat
	TextFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"x":    XMLFormat,
		"xml":  XMLFormat,
		"anx":  XMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"text": TextFormat,
		"txt":  TextFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case XMLFormat:
		return []byte("xml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case TextFormat:
		return []byte("text"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsXML() bool  { return f == XMLFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Readable reports whether answer sets can be parsed from f.
func (f Format) Readable() bool { return f != TextFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case XMLFormat:
		return ".anx"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case TextFormat:
		return ".txt"
	default:
		return ""
	}
}

// Detect guesses the format of an answer document from its first
// significant byte.
func Detect(d []byte) Format {
	for _, c := range d {
		switch c {
		case ' ', '\t', '\r', '\n', 0xEF, 0xBB, 0xBF:
			continue
		case '<':
			return XMLFormat
		case '{', '[':
			return JSONFormat
		}
		return YAMLFormat
	}
	return XMLFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{XMLFormat, JSONFormat, YAMLFormat, TextFormat}
}
