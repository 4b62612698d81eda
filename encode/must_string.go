package encode

import (
	"bytes"

	"github.com/hdanswers/answerset/ans"
)

func MustString(c *ans.Collection, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(c, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func MustXML(c *ans.Collection) string {
	return MustString(c)
}
