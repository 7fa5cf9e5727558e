package main

import (
	"fmt"

	"github.com/signadot/dx-format/go-dx/convert"
	"github.com/signadot/dx-format/go-dx/format"
	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/query"

	"github.com/scott-cotton/cli"
)

func decodeCmd(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	if (cfg.Where == "") != (cfg.Table == "") {
		return fmt.Errorf("%w: -where and -table go together", cli.ErrUsage)
	}
	if cfg.Get != "" {
		return decodeGet(cfg, cc, args)
	}
	var each func(*ir.Document) (*ir.Document, error)
	if cfg.Where != "" {
		each = func(doc *ir.Document) (*ir.Document, error) {
			return query.Select(doc, cfg.Table, cfg.Where)
		}
	}
	return cfg.convertFiles(cc, args, format.DenseFormat, format.HumanFormat, each)
}

func decodeGet(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	for _, file := range inputs(args) {
		doc, err := cfg.loadDoc(cc, file, format.DenseFormat)
		if err != nil {
			return err
		}
		v, err := doc.Lookup(cfg.Get)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		s, err := convert.ValueYAML(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, s)
	}
	return nil
}
