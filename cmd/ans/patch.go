package main

import (
	"fmt"

	"github.com/hdanswers/answerset/ans"
	"github.com/hdanswers/answerset/encode"
	"github.com/hdanswers/answerset/format"
	anspatch "github.com/hdanswers/answerset/patch"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch and answer files", cli.ErrUsage)
	}
	doc, err := getish(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return err
	}
	for _, file := range inputArgs(args[1:]) {
		c, f, err := getAnsFile(cc, cfg.MainConfig, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := anspatch.JSON(c, doc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out, f)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

func overlay(cfg *OverlayConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Overlay.Parse(cc, args)
	if err != nil {
		cfg.Overlay.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: overlay requires a base and at least one other file", cli.ErrUsage)
	}
	var (
		base   *ans.Collection
		others []*ans.Collection
		f      format.Format
	)
	for i, file := range args {
		c, ff, err := getAnsFile(cc, cfg.MainConfig, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if i == 0 {
			base, f = c, ff
			continue
		}
		others = append(others, c)
	}
	res := anspatch.Overlay(base, others...)
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out, f)...)
}
