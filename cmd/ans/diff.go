package main

import (
	"fmt"

	"github.com/hdanswers/answerset/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, _, err := getAnsFile(cc, cfg.MainConfig, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, _, err := getAnsFile(cc, cfg.MainConfig, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	d := libdiff.Diff(a, b)
	if d.Empty() {
		return nil
	}
	if err := d.Print(cc.Out, cfg.colored(cc.Out)); err != nil {
		return fmt.Errorf("error writing diff: %w", err)
	}
	return cli.ExitCodeErr(1)
}
