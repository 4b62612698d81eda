package main

import (
	"fmt"
	"io"

	"github.com/hdanswers/answerset/encode"
	"github.com/hdanswers/answerset/format"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputArgs(args)
	for i, file := range files {
		if err := viewFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	c, _, err := getAnsFile(cc, cfg.MainConfig, file)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	if err := encode.Encode(c, w, cfg.encOpts(w, format.TextFormat)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}
