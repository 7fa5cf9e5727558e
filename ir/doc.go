// Package ir provides the value model shared by the dense parser, the encoder
// and the human formatter.
//
// # Overview
//
// A parsed dense document is an ordered list of named bindings. Each binding
// holds a record, an array or a table. The reserved empty name holds the
// anonymous root record, which is produced by ghost root and loose
// key:value statements.
//
// # Values
//
// Value is a tagged union. The Type field decides which of the remaining
// fields carry the payload:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - IntType: Int
//   - FloatType: Float
//   - StringType: String
//   - ArrayType: Items
//   - RecordType: Fields, in insertion order
//   - TableType: Table
//
// Consumers switch on Type and handle every case.
//
// # Tables
//
// A Table carries its column schema and its rows. Each row holds exactly one
// value per column, auto-increment columns included, so that consumers never
// need to recompute generated values. Hints are fixed once the table header
// has been read.
//
// # Errors
//
// The error taxonomy used by every package lives here. Positioned failures
// are *SyntaxError values which unwrap to one of the Err* sentinels, so
// callers can test them with errors.Is and extract positions with errors.As.
//
// # Thread Safety
//
// Values are not synchronized. A document produced by a parse call is owned
// by the caller and is not modified by the encoder or the formatter.
package ir
