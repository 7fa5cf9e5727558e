// Package format names the document formats the dx tools read and write.
package format
