// Package parse parses dx dense text into a document.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// Tighter guards for untrusted input
//	doc, err := parse.Parse(data, parse.WithLimits(parse.Limits{MaxTableRows: 1000}))
//
// Each call builds its own parse context (aliases, pending comments,
// the open table) so Parse is safe to call from many goroutines at once.
//
// Errors are positioned *ir.SyntaxError values whose Kind is one of the ir
// sentinels; test with errors.Is.
//
// # Related Packages
//
//   - github.com/signadot/dx-format/go-dx/ir - document model
//   - github.com/signadot/dx-format/go-dx/encode - document to dense text
//   - github.com/signadot/dx-format/go-dx/token - line classification
package parse
