package main

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/dx-format/go-dx/validate"

	"github.com/scott-cotton/cli"
)

type fileResult struct {
	File     string `json:"file"`
	Saveable *bool  `json:"saveable,omitempty"`
	validate.Result
}

func validateCmd(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := false
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		res := fileResult{File: file, Result: validate.Validate(string(d), cfg.parseOpts()...)}
		if cfg.Saveable {
			ok := validate.IsSaveableBytes(d)
			res.Saveable = &ok
		}
		failed = failed || !res.Success
		if err := printResult(cfg, cc, &res); err != nil {
			return err
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func printResult(cfg *ValidateConfig, cc *cli.Context, res *fileResult) error {
	if cfg.JSON {
		d, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", d)
		return err
	}
	save := ""
	if res.Saveable != nil {
		save = fmt.Sprintf(" (saveable: %t)", *res.Saveable)
	}
	if res.Success {
		_, err := fmt.Fprintf(cc.Out, "%s: ok%s\n", res.File, save)
		return err
	}
	msg := fmt.Sprintf("%s:%d:%d: %s%s", res.File, res.Line, res.Column, res.Error, save)
	if res.Hint != "" {
		msg += "\n  hint: " + res.Hint
	}
	_, err := fmt.Fprintln(cc.Out, msg)
	return err
}
