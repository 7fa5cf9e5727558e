package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/dx-format/go-dx/convert"
	"github.com/signadot/dx-format/go-dx/encode"
	"github.com/signadot/dx-format/go-dx/format"
	"github.com/signadot/dx-format/go-dx/human"
	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/parse"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// inputs returns args, or stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func (cfg *MainConfig) decodeDoc(d []byte, f format.Format) (*ir.Document, error) {
	switch f {
	case format.DenseFormat:
		return parse.Parse(d, cfg.parseOpts()...)
	case format.HumanFormat:
		hc, err := cfg.humanConfig(nil)
		if err != nil {
			return nil, err
		}
		return human.Read(string(d), hc)
	case format.JSONFormat:
		return convert.FromJSON(d)
	case format.YAMLFormat:
		return convert.FromYAML(d)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
}

func (cfg *MainConfig) loadDoc(cc *cli.Context, path string, def format.Format) (*ir.Document, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	doc, err := cfg.decodeDoc(d, cfg.inFormat(path, def))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return doc, nil
}

func (cfg *MainConfig) writeDoc(w io.Writer, doc *ir.Document, f format.Format) error {
	var (
		out []byte
		err error
	)
	switch f {
	case format.DenseFormat:
		return encode.Encode(doc, w, cfg.encOpts(w)...)
	case format.HumanFormat:
		hc, herr := cfg.humanConfig(w)
		if herr != nil {
			return herr
		}
		var s string
		s, err = human.Render(doc, hc)
		out = []byte(s)
	case format.JSONFormat:
		out, err = convert.ToJSON(doc)
	case format.YAMLFormat:
		out, err = convert.ToYAML(doc)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// convertFiles loads each input and writes it in the output format,
// separating documents with ---.
func (cfg *MainConfig) convertFiles(cc *cli.Context, args []string, in, out format.Format, each func(*ir.Document) (*ir.Document, error)) error {
	files := inputs(args)
	for i, file := range files {
		doc, err := cfg.loadDoc(cc, file, in)
		if err != nil {
			return err
		}
		if each != nil {
			doc, err = each(doc)
			if err != nil {
				return fmt.Errorf("error processing %s: %w", file, err)
			}
		}
		if err := cfg.writeDoc(cc.Out, doc, cfg.outFormat(out)); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if i < len(files)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
