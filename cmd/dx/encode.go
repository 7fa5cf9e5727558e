package main

import (
	"github.com/signadot/dx-format/go-dx/format"

	"github.com/scott-cotton/cli"
)

func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.convertFiles(cc, args, format.JSONFormat, format.DenseFormat, nil)
}
