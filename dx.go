// Package dx reads and writes the dx dense format and its human readable
// counterpart.
//
// A dense document is a sequence of named bindings: records, streams
// (arrays) and typed tables, plus an optional ghost root record. Parse
// turns dense text into an *ir.Document and Encode turns one back into
// canonical dense text. ToHuman and ToDense convert between the dense and
// human forms; Validate and IsSaveable check text without building a
// document.
//
// Every function is safe for concurrent use. Limits are enforced per call.
package dx

import (
	"github.com/signadot/dx-format/go-dx/encode"
	"github.com/signadot/dx-format/go-dx/human"
	"github.com/signadot/dx-format/go-dx/ir"
	"github.com/signadot/dx-format/go-dx/parse"
	"github.com/signadot/dx-format/go-dx/validate"
)

// Parse decodes dense text.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Document, error) {
	return parse.Parse(d, opts...)
}

// Encode returns the canonical dense text of doc. Comments are kept and
// repeated table cells become ditto marks; encode.EncodeComments(false) and
// encode.EncodeDitto(false) turn these off.
func Encode(doc *ir.Document, opts ...encode.EncodeOption) ([]byte, error) {
	return encode.EncodeBytes(doc, opts...)
}

// ToHuman converts dense text to its human form under cfg.
func ToHuman(dense string, cfg human.Config) (string, error) {
	return human.ToHuman(dense, cfg)
}

// ToDense converts human text back to canonical dense text.
func ToDense(text string, cfg human.Config) (string, error) {
	return human.ToDense(text, cfg)
}

// Validate parses text and reports the first problem, if any.
func Validate(text string) validate.Result {
	return validate.Validate(text)
}

// IsSaveable reports whether text looks complete enough to persist, for
// example while it is being typed. It does not allocate.
func IsSaveable(text string) bool {
	return validate.IsSaveable(text)
}

func MaxInputSize() int      { return validate.MaxInputSize() }
func MaxTableRows() int      { return validate.MaxTableRows() }
func MaxRecursionDepth() int { return validate.MaxRecursionDepth() }
