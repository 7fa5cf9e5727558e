package main

import (
	"fmt"
	"time"

	"github.com/signadot/dx-format/go-dx/encode"
	"github.com/signadot/dx-format/go-dx/human"
	"github.com/signadot/dx-format/go-dx/parse"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func benchCmd(cfg *BenchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Bench.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.N <= 0 {
		return fmt.Errorf("%w: -n must be positive", cli.ErrUsage)
	}
	if cfg.Agent {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		}
		defer agent.Close()
	}
	hc, err := cfg.humanConfig(nil)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if err := benchOne(cfg, cc, file, d, hc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

type stage struct {
	name string
	run  func() error
}

func benchOne(cfg *BenchConfig, cc *cli.Context, file string, d []byte, hc human.Config) error {
	doc, err := parse.Parse(d)
	if err != nil {
		return err
	}
	dense := string(d)
	h, err := human.ToHuman(dense, hc)
	if err != nil {
		return err
	}
	stages := []stage{
		{"parse", func() error { _, err := parse.Parse(d); return err }},
		{"encode", func() error { _, err := encode.EncodeBytes(doc); return err }},
		{"to-human", func() error { _, err := human.ToHuman(dense, hc); return err }},
		{"to-dense", func() error { _, err := human.ToDense(h, hc); return err }},
	}
	fmt.Fprintf(cc.Out, "%s: %d bytes dense, %d bytes human\n", file, len(d), len(h))
	for _, s := range stages {
		start := time.Now()
		for range cfg.N {
			if err := s.run(); err != nil {
				return fmt.Errorf("%s: %w", s.name, err)
			}
		}
		el := time.Since(start)
		per := el / time.Duration(cfg.N)
		mbs := float64(len(d)) / per.Seconds() / (1 << 20)
		fmt.Fprintf(cc.Out, "  %-9s %12s/op %10.1f MiB/s\n", s.name, per, mbs)
	}
	return nil
}
