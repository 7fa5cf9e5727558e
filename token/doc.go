// Package token provides line level lexing for dx dense text.
//
// [Lines] iterates the input line by line without copying. [Classify] decides
// the statement kind of a line from its leading structural bytes, [Cells]
// splits row text on blanks and [Infer] applies lexical inference to a
// literal. Nothing in this package returns errors: malformed content is
// reported by the parser, which has the line and column context.
package token
