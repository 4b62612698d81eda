package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hdanswers/answerset/encode"
	"github.com/hdanswers/answerset/format"
	"github.com/hdanswers/answerset/parse"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='output with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	X    bool `cli:"name=x aliases=xml desc='do i/o in xml answer files'"`
	J    bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y    bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	Text bool `cli:"name=text desc='output a readable listing'"`

	Indent   int    `cli:"name=indent desc='spaces per nesting level'"`
	LogLevel string `cli:"name=log-level desc='log level: debug, info, warn or error'"`
	Config   string `cli:"name=config desc='yaml config file (default $ANS_CONFIG)'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	colorFromConfig bool

	Main *cli.Command
}

// FileConfig is the content of a -config file. Settings given on the
// command line take precedence.
type FileConfig struct {
	Format   string `yaml:"format"`
	Color    *bool  `yaml:"color"`
	Indent   *int   `yaml:"indent"`
	LogLevel string `yaml:"logLevel"`
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// isSet reports whether the main option name was given on the command line.
func (cfg *MainConfig) isSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) loadConfig() error {
	path := cfg.Config
	if path == "" {
		path = os.Getenv("ANS_CONFIG")
	}
	if path == "" {
		return nil
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config %s: %w", path, err)
	}
	fc := &FileConfig{}
	if err := yaml.Unmarshal(d, fc); err != nil {
		return fmt.Errorf("error decoding config %s: %w", path, err)
	}
	return cfg.applyConfig(fc)
}

func (cfg *MainConfig) applyConfig(fc *FileConfig) error {
	if fc.Format != "" && cfg.OutFormat == nil && count(cfg.X, cfg.J, cfg.Y, cfg.Text) == 0 {
		f, err := format.ParseFormat(fc.Format)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		cfg.OutFormat = &f
	}
	if fc.Color != nil && !cfg.isSet("color") {
		cfg.Color = *fc.Color
		cfg.colorFromConfig = true
	}
	if fc.Indent != nil && !cfg.isSet("indent") {
		cfg.Indent = *fc.Indent
	}
	if fc.LogLevel != "" && !cfg.isSet("log-level") {
		cfg.LogLevel = fc.LogLevel
	}
	return nil
}

func (cfg *MainConfig) ioFormat() (format.Format, bool) {
	switch {
	case cfg.X:
		return format.XMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	}
	return 0, false
}

// parseOpts selects the input format; without one it is detected.
func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.InFormat != nil {
		return []parse.ParseOption{parse.ParseFormat(*cfg.InFormat)}
	}
	if f, ok := cfg.ioFormat(); ok {
		return []parse.ParseOption{parse.ParseFormat(f)}
	}
	return nil
}

func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Text {
		return format.TextFormat
	}
	if f, ok := cfg.ioFormat(); ok {
		return f
	}
	return def
}

func (cfg *MainConfig) encOpts(w io.Writer, def format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat(def)),
		encode.EncodeWire(cfg.WireOut),
		encode.Indent(cfg.Indent),
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colored reports whether output to w gets colors: -color or the config
// file decide, otherwise colors are used on a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.isSet("color") || cfg.colorFromConfig {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Type    string `cli:"name=type desc='type of a new answer: Text, Number, Date, TrueFalse or MultipleChoice'"`
	Unans   bool   `cli:"name=unans desc='store an unanswered value'"`
	Locked  bool   `cli:"name=locked desc='mark the value as not user modifiable'"`
	Repeat  bool   `cli:"name=r desc='create a new answer as repeated'"`
	InPlace bool   `cli:"name=w desc='write the result back to the file'"`
	Set     *cli.Command
}

type CountConfig struct {
	*MainConfig
	Count *cli.Command
}

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='expression selecting answers'"`
	Long  bool   `cli:"name=l desc='show type, repetition, answered and count'"`
	List  *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Template bool `cli:"name=t desc='expand $[expr] in the argument as a template'"`
	File     bool `cli:"name=f desc='read the expression or template from a file'"`
	Eval     *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Diff    *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`
	Patch  *cli.Command
}

type OverlayConfig struct {
	*MainConfig
	Overlay *cli.Command
}
