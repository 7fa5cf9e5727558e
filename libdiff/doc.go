// Package libdiff computes structural differences between dx documents
// and line differences between texts.
package libdiff
