// Package parse reads answer sets from XML answer files and from the JSON
// and YAML renditions of the same model.
package parse

import (
	"errors"
	"fmt"

	"github.com/hdanswers/answerset/ans"
	"github.com/hdanswers/answerset/debug"
	"github.com/hdanswers/answerset/format"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Parse reads an answer set in the format selected by opts. Without a
// format option the format is detected from the content.
func Parse(d []byte, opts ...ParseOption) (*ans.Collection, error) {
	pOpts := newParseOpts(opts)
	f := pOpts.format
	if pOpts.detect {
		f = format.Detect(d)
	}
	if debug.Parse() {
		debug.Logf("parse %d bytes as %s", len(d), f)
	}
	switch f {
	case format.XMLFormat:
		return readXML(d, pOpts)
	case format.JSONFormat:
		return readJSON(d)
	case format.YAMLFormat:
		jd, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return readJSON(jd)
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormat, f)
	}
}

func readJSON(d []byte) (*ans.Collection, error) {
	res := ans.New()
	if err := json.Unmarshal(d, res); err != nil {
		if errors.Is(err, ErrParse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}
