package parse

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/hdanswers/answerset/ans"
)

var (
	ErrParse         = ans.ErrParse
	ErrFormat        = fmt.Errorf("%w: unreadable format", ErrParse)
	ErrUnknownElem   = fmt.Errorf("%w: unknown element", ErrParse)
	ErrBadAttr       = fmt.Errorf("%w: bad attribute", ErrParse)
	ErrDuplicateName = fmt.Errorf("%w: duplicate answer", ErrParse)
)

var posRE = regexp.MustCompile(`line=(\d+), col=(\d+)`)

// ErrPos extracts the position carried by an XML read error.
func ErrPos(err error) (Pos, bool) {
	if err == nil {
		return Pos{}, false
	}
	m := posRE.FindStringSubmatch(err.Error())
	if m == nil {
		return Pos{}, false
	}
	line, _ := strconv.Atoi(m[1])
	col, _ := strconv.Atoi(m[2])
	return Pos{Line: line, Col: col}, true
}
