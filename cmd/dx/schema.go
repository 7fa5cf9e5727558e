package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/dx-format/go-dx/format"
	"github.com/signadot/dx-format/go-dx/ir"

	"github.com/scott-cotton/cli"
)

func schemaCmd(cfg *SchemaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Schema.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		doc, err := cfg.loadDoc(cc, file, format.DenseFormat)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "# %s\n", file)
		for _, b := range doc.Bindings {
			name := b.Name
			if name == ir.RootName {
				name = "."
			}
			writeSchema(cc.Out, name, b.Value, 0)
		}
	}
	return nil
}

func writeSchema(w io.Writer, name string, v *ir.Value, depth int) {
	ind := strings.Repeat("  ", depth)
	switch v.Type {
	case ir.RecordType:
		fmt.Fprintf(w, "%s%s: record\n", ind, name)
		for _, f := range v.Fields {
			writeSchema(w, f.Name, f.Value, depth+1)
		}
	case ir.ArrayType:
		fmt.Fprintf(w, "%s%s: array[%d]\n", ind, name, len(v.Items))
	case ir.TableType:
		cols := make([]string, len(v.Table.Columns))
		for i, c := range v.Table.Columns {
			cols[i] = c.Name + ":" + c.Hint.String()
		}
		fmt.Fprintf(w, "%s%s: table(%s) rows=%d\n", ind, name, strings.Join(cols, " "), len(v.Table.Rows))
	default:
		fmt.Fprintf(w, "%s%s: %s\n", ind, name, v.Type)
	}
}
