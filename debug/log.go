package debug

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/signadot/dx-format/go-dx/convert"
	"github.com/signadot/dx-format/go-dx/ir"
)

// Logf writes to stderr. *ir.Value and *ir.Document arguments are rendered
// as flow YAML.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Value:
			s, err := convert.ValueYAML(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Value] %v", x)
				continue
			}
			args[i] = s
		case *ir.Document:
			out, err := yaml.MarshalWithOptions(convert.ToGo(x), yaml.Flow(true))
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Document] %v", x)
				continue
			}
			args[i] = string(out)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
