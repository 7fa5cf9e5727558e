package main

import (
	"fmt"

	"github.com/signadot/dx-format/go-dx/encode"
	"github.com/signadot/dx-format/go-dx/format"
	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/libdiff"

	"github.com/scott-cotton/cli"
)

func compareCmd(cfg *CompareConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compare.Parse(cc, args)
	if err != nil {
		cfg.Compare.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: compare requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.loadDoc(cc, args[0], format.DenseFormat)
	if err != nil {
		return err
	}
	b, err := cfg.loadDoc(cc, args[1], format.DenseFormat)
	if err != nil {
		return err
	}
	if ir.CompareDocuments(a, b) == 0 {
		return nil
	}
	if !cfg.Quiet {
		if err := compareOut(cfg, cc, a, b); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

func compareOut(cfg *CompareConfig, cc *cli.Context, a, b *ir.Document) error {
	if cfg.Text {
		if cfg.Reverse {
			a, b = b, a
		}
		da, err := encode.EncodeBytes(a)
		if err != nil {
			return err
		}
		db, err := encode.EncodeBytes(b)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write([]byte(libdiff.DiffText(string(da), string(db))))
		return err
	}
	changes := libdiff.Documents(a, b)
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	for _, c := range changes {
		if _, err := fmt.Fprintln(cc.Out, c.String()); err != nil {
			return err
		}
	}
	return nil
}
