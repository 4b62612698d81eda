package main

import (
	"fmt"

	"github.com/hdanswers/answerset/eval"

	"github.com/scott-cotton/cli"
)

func ansEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src, err := getish(false, cfg.File, cc, args[0])
	if err != nil {
		return err
	}
	if cfg.File && isStdin(args[0]) && len(args) == 1 {
		return fmt.Errorf("%w: standard input cannot hold both the expression and the answers", cli.ErrUsage)
	}
	for _, file := range inputArgs(args[1:]) {
		c, _, err := getAnsFile(cc, cfg.MainConfig, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		var out string
		if cfg.Template {
			out, err = eval.Expand(c, string(src))
		} else {
			var v any
			v, err = eval.Eval(c, string(src))
			out = eval.Format(v)
		}
		if err != nil {
			return fmt.Errorf("error evaluating against %s: %w", file, err)
		}
		if _, err := fmt.Fprintln(cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}
