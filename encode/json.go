package encode

import (
	"io"
	"strings"

	"github.com/hdanswers/answerset/ans"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

func marshalJSON(c *ans.Collection, es *EncState) ([]byte, error) {
	if es.wire || es.indent == 0 {
		return json.Marshal(c)
	}
	return json.MarshalIndent(c, "", strings.Repeat(" ", es.indent))
}

func writeJSON(c *ans.Collection, w io.Writer, es *EncState) error {
	d, err := marshalJSON(c, es)
	if err != nil {
		return err
	}
	if !es.wire {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

func writeYAML(c *ans.Collection, w io.Writer, es *EncState) error {
	d, err := json.Marshal(c)
	if err != nil {
		return err
	}
	y, err := yaml.JSONToYAML(d)
	if err != nil {
		return err
	}
	_, err = w.Write(y)
	return err
}
