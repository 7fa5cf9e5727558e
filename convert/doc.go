// Package convert bridges dx documents and JSON or YAML.
//
// Importing maps the top level of a JSON or YAML mapping onto bindings:
//
//   - a scalar becomes a field of the root record
//   - a mapping becomes a record binding
//   - a sequence of mappings sharing the same scalar keys becomes a table
//   - any other sequence becomes an array binding
//
// Exporting is the reverse: root fields come first, then one key per
// binding, with tables written as sequences of mappings.
package convert
