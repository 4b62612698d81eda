package main

import (
	"errors"
	"fmt"

	"github.com/hdanswers/answerset/ans"
	"github.com/hdanswers/answerset/encode"
	"github.com/hdanswers/answerset/format"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	ref, file, err := parseRef("get", args)
	if err != nil {
		return err
	}
	c, _, err := getAnsFile(cc, cfg.MainConfig, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	a, err := c.Answer(ref.Name)
	if err != nil {
		return fmt.Errorf("error getting %s: %w", ref, err)
	}
	v, err := a.Value(ref.Indices...)
	if err != nil {
		return fmt.Errorf("error getting %s: %w", ref, err)
	}
	var leaf *ans.Node
	if v != nil {
		leaf = ans.NewLeaf(v)
	}
	_, err = fmt.Fprintln(cc.Out, encode.TextValue(leaf, a.Type(), cfg.colorFunc(cc)))
	return err
}

func (cfg *MainConfig) colorFunc(cc *cli.Context) func(ans.ValueType, encode.ColorAttr, string) string {
	if !cfg.colored(cc.Out) {
		return nil
	}
	return encode.NewColors().Color
}

func countChildren(cfg *CountConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Count.Parse(cc, args)
	if err != nil {
		cfg.Count.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	ref, file, err := parseRef("count", args)
	if err != nil {
		return err
	}
	c, _, err := getAnsFile(cc, cfg.MainConfig, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	n := 0
	a, err := c.Answer(ref.Name)
	switch {
	case errors.Is(err, ans.ErrNotFound):
	case err != nil:
		return err
	default:
		n, err = a.GetChildCount(ref.Indices...)
		if err != nil {
			return fmt.Errorf("error counting %s: %w", ref, err)
		}
	}
	_, err = fmt.Fprintln(cc.Out, n)
	return err
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 3 {
		return fmt.Errorf("%w: set requires a name, a value and a file", cli.ErrUsage)
	}
	raw := args[1]
	ref, file, err := parseRef("set", append([]string{args[0]}, args[2:]...))
	if err != nil {
		return err
	}
	if cfg.InPlace && isStdin(file) {
		return fmt.Errorf("%w: -w needs a file, not standard input", cli.ErrUsage)
	}
	c, inFormat, err := getAnsFile(cc, cfg.MainConfig, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	a, ok := c.TryGetAnswer(ref.Name)
	if !ok {
		t, err := cfg.valueType(ans.TextType)
		if err != nil {
			return err
		}
		if cfg.Repeat || len(ref.Indices) > 0 {
			a = ans.NewRepeatedAnswer(ref.Name, t)
		} else {
			a = ans.NewAnswer(ref.Name, t)
		}
		c.Add(a)
	}
	t := a.Type()
	if t == ans.UnknownType {
		if t, err = cfg.valueType(ans.TextType); err != nil {
			return err
		}
	}
	var v ans.Value
	if cfg.Unans {
		v = ans.Unanswered(t)
	} else if v, err = ans.ParseValue(t, raw); err != nil {
		return fmt.Errorf("error setting %s: %w", ref, err)
	}
	if err := a.SetValue(ans.WithLocked(v, cfg.Locked), ref.Indices...); err != nil {
		return fmt.Errorf("error setting %s: %w", ref, err)
	}
	theLog.Debugw("set", "ref", ref.String(), "value", v.String(), "type", t)
	if !cfg.InPlace {
		return encode.Encode(c, cc.Out, cfg.encOpts(cc.Out, inFormat)...)
	}
	return writeBack(cfg.MainConfig, file, c, inFormat)
}

// valueType is the -type option, or def when it is not given.
func (cfg *SetConfig) valueType(def ans.ValueType) (ans.ValueType, error) {
	if cfg.Type == "" {
		return def, nil
	}
	var t ans.ValueType
	if err := t.UnmarshalText([]byte(cfg.Type)); err != nil || t == ans.UnknownType {
		return 0, fmt.Errorf("%w: -type %q", cli.ErrUsage, cfg.Type)
	}
	return t, nil
}

func writeBack(cfg *MainConfig, file string, c *ans.Collection, f format.Format) error {
	opts := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat(f)),
		encode.EncodeWire(cfg.WireOut),
		encode.Indent(cfg.Indent),
	}
	if !encode.FormatFromOpts(opts...).Readable() {
		return fmt.Errorf("%w: cannot write %s back to %s", cli.ErrUsage, encode.FormatFromOpts(opts...), file)
	}
	s, err := encodeString(c, opts...)
	if err != nil {
		return err
	}
	if err := writeFile(file, s); err != nil {
		return fmt.Errorf("error writing %s: %w", file, err)
	}
	theLog.Infow("wrote", "file", file, "answers", c.AnswerCount())
	return nil
}
