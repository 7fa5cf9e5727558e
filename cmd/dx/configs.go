package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/dx-format/go-dx/encode"
	"github.com/signadot/dx-format/go-dx/format"
	"github.com/signadot/dx-format/go-dx/human"
	"github.com/signadot/dx-format/go-dx/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool   `cli:"name=color desc='output with color'"`
	Comments bool   `cli:"name=c desc='keep comments'"`
	Ditto    bool   `cli:"name=ditto desc='compress repeated table cells when encoding'"`
	Preset   string `cli:"name=preset desc='human preset: default, ascii or compact'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
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

func (cfg *MainConfig) inFormat(path string, def format.Format) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if path == "-" {
		return def
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParseComments(cfg.Comments)}
}

func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	if cfg.Main == nil {
		return nil
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeComments(cfg.Comments),
		encode.EncodeDitto(cfg.Ditto),
	}
	if c := cfg.colors(w); c != nil {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

func (cfg *MainConfig) humanConfig(w io.Writer) (human.Config, error) {
	var c human.Config
	switch cfg.Preset {
	case "", "default":
		c = human.Default()
	case "ascii":
		c = human.ASCII()
	case "compact":
		c = human.Compact()
	default:
		return c, fmt.Errorf("%w: unknown preset %q", cli.ErrUsage, cfg.Preset)
	}
	return c.WithPreserveComments(cfg.Comments).WithColors(cfg.colors(w)), nil
}

type EncodeConfig struct {
	*MainConfig
	Encode *cli.Command
}

type DecodeConfig struct {
	*MainConfig
	Table string `cli:"name=table desc='table binding to filter'"`
	Where string `cli:"name=where desc='keep rows of -table matching this expression'"`
	Get   string `cli:"name=get desc='print the value at a path such as h[0].n'"`

	Decode *cli.Command
}

type CompareConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the comparison'"`
	Text    bool `cli:"name=text desc='show a line diff of the canonical dense forms'"`
	Quiet   bool `cli:"name=q desc='only set the exit code'"`

	Compare *cli.Command
}

type BenchConfig struct {
	*MainConfig
	N     int  `cli:"name=n desc='iterations per file'"`
	Agent bool `cli:"name=agent desc='run a gops diagnostics agent while benchmarking'"`

	Bench *cli.Command
}

type ValidateConfig struct {
	*MainConfig
	JSON     bool `cli:"name=json desc='print results as json'"`
	Saveable bool `cli:"name=saveable desc='also report whether each input is saveable'"`

	Validate *cli.Command
}

type SchemaConfig struct {
	*MainConfig
	Schema *cli.Command
}
