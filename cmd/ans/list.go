package main

import (
	"fmt"
	"io"

	"github.com/hdanswers/answerset/ans"
	"github.com/hdanswers/answerset/eval"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	files := inputArgs(args)
	for _, file := range files {
		c, _, err := getAnsFile(cc, cfg.MainConfig, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if len(files) > 1 {
			fmt.Fprintf(cc.Out, "# %s\n", file)
		}
		if err := listAnswers(cfg, cc.Out, c); err != nil {
			return fmt.Errorf("error listing %s: %w", file, err)
		}
	}
	return nil
}

func listAnswers(cfg *ListConfig, w io.Writer, c *ans.Collection) error {
	var sel []*ans.Answer
	if cfg.Where != "" {
		res, err := eval.Where(c, cfg.Where)
		if err != nil {
			return err
		}
		sel = res
	} else {
		for _, a := range c.All() {
			sel = append(sel, a)
		}
	}
	for _, a := range sel {
		if !cfg.Long {
			if _, err := fmt.Fprintln(w, a.Name()); err != nil {
				return err
			}
			continue
		}
		n, err := a.GetChildCount()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\trepeated=%t\tanswered=%t\tcount=%d\n",
			a.Name(), a.Type(), a.IsRepeated(), a.Answered(), n); err != nil {
			return err
		}
	}
	return nil
}
