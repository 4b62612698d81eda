package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hdanswers/answerset/ans"
	"github.com/hdanswers/answerset/encode"
	"github.com/hdanswers/answerset/format"
	"github.com/hdanswers/answerset/parse"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getAnsFile reads the answer file at path ("-" is standard input) and
// returns it with the format it was read in.
func getAnsFile(cc *cli.Context, cfg *MainConfig, path string) (*ans.Collection, format.Format, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, 0, err
	}
	f := format.Detect(d)
	if cfg.InFormat != nil {
		f = *cfg.InFormat
	} else if iof, ok := cfg.ioFormat(); ok {
		f = iof
	}
	c, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, 0, err
	}
	theLog.Debugw("read answer file", "path", path, "format", f, "answers", c.AnswerCount())
	return c, f, nil
}

// getish reads arg as a string (-s) or a file (-f). Neither means string.
func getish(s, f bool, cc *cli.Context, arg string) ([]byte, error) {
	if s && f {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if !f {
		return []byte(arg), nil
	}
	d, err := readInput(cc, arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	return d, nil
}

func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func isStdin(path string) bool {
	return strings.TrimSpace(path) == "-"
}

func encodeString(c *ans.Collection, opts ...encode.EncodeOption) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(c, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFile(path string, d []byte) error {
	return os.WriteFile(path, d, 0644)
}
