// Package patch applies changes to answer sets: RFC 6902 JSON patches over
// the JSON model of a collection, and overlays of whole collections.
package patch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hdanswers/answerset/ans"
	"github.com/hdanswers/answerset/debug"
	"github.com/hdanswers/answerset/format"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

var ErrPatch = errors.New("patch error")

// JSON applies an RFC 6902 patch to the JSON model of c and returns the
// result as a new collection. c is not modified. The patch may be given
// as JSON or YAML.
//
// In addition to numeric indices, the segment after /answers/ in a path
// or from pointer may name an answer; it is matched ignoring case against
// the answers of c before any operation is applied.
//
//	[{"op": "replace", "path": "/answers/Author Full Name/value/0/0/text", "value": "B"}]
func JSON(c *ans.Collection, doc []byte) (*ans.Collection, error) {
	if format.Detect(doc) == format.YAMLFormat {
		jd, err := yaml.YAMLToJSON(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
		doc = jd
	}
	doc, err := resolveNames(c, doc)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("json patch %d ops on %v", len(ops), c)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res := ans.New()
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	return res, nil
}

// Overlay returns a copy of dst with the answers of each src added in turn,
// replacing answers of the same name.
func Overlay(dst *ans.Collection, srcs ...*ans.Collection) *ans.Collection {
	res := dst.Clone()
	for _, src := range srcs {
		res.Overlay(src)
	}
	if debug.Patch() {
		debug.Logf("overlay %d sets onto %v", len(srcs), res)
	}
	return res
}

const answersPrefix = "/answers/"

func resolveNames(c *ans.Collection, doc []byte) ([]byte, error) {
	var ops []map[string]any
	if err := json.Unmarshal(doc, &ops); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	index := map[string]int{}
	for i, name := range c.Names() {
		index[ans.FoldName(name)] = i
	}
	changed := false
	for _, op := range ops {
		for _, key := range []string{"path", "from"} {
			p, ok := op[key].(string)
			if !ok || !strings.HasPrefix(p, answersPrefix) {
				continue
			}
			seg, rest, _ := strings.Cut(p[len(answersPrefix):], "/")
			if seg == "-" {
				continue
			}
			if _, err := strconv.Atoi(seg); err == nil {
				continue
			}
			i, ok := index[ans.FoldName(unescape(seg))]
			if !ok {
				return nil, fmt.Errorf("%w: %s %q: %w", ErrPatch, key, p, ans.ErrNotFound)
			}
			np := answersPrefix + strconv.Itoa(i)
			if rest != "" {
				np += "/" + rest
			}
			op[key] = np
			changed = true
		}
	}
	if !changed {
		return doc, nil
	}
	return json.Marshal(ops)
}

func unescape(seg string) string {
	return strings.ReplaceAll(strings.ReplaceAll(seg, "~1", "/"), "~0", "~")
}
