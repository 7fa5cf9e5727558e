// Package encode encodes documents to dx dense text.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	...
//	var buf bytes.Buffer
//	if err := encode.Encode(doc, &buf); err != nil {
//	    return err
//	}
//
//	// Without ditto compression or comments
//	err = encode.Encode(doc, w, encode.EncodeDitto(false), encode.EncodeComments(false))
//
// The dense grammar has no escapes. A string which would be misread in its
// position (a '^' in a record value, a '|' in a stream item, a blank in a
// table cell, text which infers as a number) fails with ir.ErrEncoding
// rather than being written ambiguously. Nothing is written to w on error.
//
// # Related Packages
//
//   - github.com/signadot/dx-format/go-dx/ir - document model
//   - github.com/signadot/dx-format/go-dx/parse - dense text to document
package encode
