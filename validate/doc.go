// Package validate reports the first error in dense text as a positioned
// result and decides whether a buffer being edited is complete enough to
// save.
package validate
