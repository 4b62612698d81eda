package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 2, LogLevel: "warn"}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: xml/x, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: xml/x, json/j, yaml/y, text",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ans").
		WithSynopsis("ans [opts] command [opts]").
		WithDescription("ans is a tool for working with answer files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ansMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			CountCommand(cfg),
			ListCommand(cfg),
			EvalCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			OverlayCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view answer files, as a listing unless a format is given").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <name> [idx...] <file>").
		WithDescription("get the value of an answer at a repeat position").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [opts] <name> <value> [idx...] <file>").
		WithDescription("set the value of an answer, creating the answer if needed").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func CountCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CountConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Count, "count").
		WithAliases("c").
		WithSynopsis("count <name> [idx...] <file>").
		WithDescription("print the number of answered children at a repeat position").
		WithRun(func(cc *cli.Context, args []string) error {
			return countChildren(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [-where expr] [-l] [files]").
		WithDescription(listDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

const listDescription = `list the answer names in answer files.

With -where, only answers for which the expression is true are listed.
The expression sees name, type, isRepeated, isAnswered and children for the
answer at hand, and the functions value, answered, count, repeated and has
over the whole set, for example

  ans list -where 'isRepeated && children > 2' answers.anx
  ans list -where 'type == "Date" && !isAnswered' answers.anx`

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-t] [-f] <expr> [files]").
		WithDescription("evaluate an expression, or expand a $[expr] template, against answer files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ansEval(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-r] a b").
		WithDescription("diff answer files, exiting with 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-s|-f] <patch> [files]").
		WithDescription(patchDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

const patchDescription = `apply a JSON patch (RFC 6902), given in json or yaml, to answer files.

Patch paths address the json form of an answer set. An answer may be named
instead of numbered, for example

  - op: replace
    path: /answers/Author Full Name/value/rpt/0/text
    value: Jane`

func OverlayCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OverlayConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Overlay, "overlay").
		WithAliases("ov").
		WithSynopsis("overlay base others...").
		WithDescription("add the answers of each other file to base in turn, replacing answers of the same name").
		WithRun(func(cc *cli.Context, args []string) error {
			return overlay(cfg, cc, args)
		})
}
